package store

// KV is the narrow durable key/value contract the persisted cell depends on.
// Store satisfies it with the meta table; tests inject MemKV.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemKV is an in-memory KV used in tests and anywhere persistence is not
// wanted.
type MemKV struct {
	m map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{m: make(map[string]string)}
}

func (kv *MemKV) Get(key string) (string, bool) {
	v, ok := kv.m[key]
	return v, ok
}

func (kv *MemKV) Set(key, value string) error {
	kv.m[key] = value
	return nil
}
