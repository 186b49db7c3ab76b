package store

// Cell keeps a single string value in sync with a durable KV entry. The
// value is seeded from the store at creation and written through on every
// Set.
type Cell struct {
	kv    KV
	key   string
	value string
}

// NewCell returns a cell holding the stored value for key, or fallback when
// the store has none.
func NewCell(kv KV, key, fallback string) *Cell {
	c := &Cell{kv: kv, key: key, value: fallback}
	if v, ok := kv.Get(key); ok {
		c.value = v
	}
	return c
}

func (c *Cell) Value() string { return c.value }

// Set updates the in-memory value and writes it through, one durable write
// per call. A failed write is dropped: the in-memory value stays correct for
// the current session.
func (c *Cell) Set(value string) {
	c.value = value
	_ = c.kv.Set(c.key, value)
}
