package store

import (
	"errors"
	"testing"
)

func TestCellSeedsFromStore(t *testing.T) {
	kv := NewMemKV()
	kv.Set("search", "Redux")

	c := NewCell(kv, "search", "fallback")
	if got := c.Value(); got != "Redux" {
		t.Errorf("expected stored value Redux, got %q", got)
	}
}

func TestCellFallsBackWhenAbsent(t *testing.T) {
	c := NewCell(NewMemKV(), "search", "React")
	if got := c.Value(); got != "React" {
		t.Errorf("expected fallback React, got %q", got)
	}
}

func TestCellSetWritesThrough(t *testing.T) {
	kv := NewMemKV()
	c := NewCell(kv, "search", "")

	c.Set("Redux")

	if got := c.Value(); got != "Redux" {
		t.Errorf("in-memory value = %q, want Redux", got)
	}
	stored, ok := kv.Get("search")
	if !ok || stored != "Redux" {
		t.Errorf("stored value = (%q, %v), want (Redux, true)", stored, ok)
	}

	// A fresh cell over the same store sees the persisted value.
	again := NewCell(kv, "search", "fallback")
	if got := again.Value(); got != "Redux" {
		t.Errorf("persisted value not visible to new cell, got %q", got)
	}
}

type failingKV struct{}

func (failingKV) Get(string) (string, bool) { return "", false }
func (failingKV) Set(string, string) error  { return errors.New("store unavailable") }

func TestCellDropsWriteFailures(t *testing.T) {
	c := NewCell(failingKV{}, "search", "")

	c.Set("Redux") // must not panic or surface the error

	if got := c.Value(); got != "Redux" {
		t.Errorf("in-memory value must survive a failed write, got %q", got)
	}
}

func TestCellAcceptsAnyString(t *testing.T) {
	kv := NewMemKV()
	c := NewCell(kv, "search", "")

	for _, v := range []string{"", " ", "日本語", "a\nb", `"quoted"`} {
		c.Set(v)
		if got := c.Value(); got != v {
			t.Errorf("Set(%q) then Value() = %q", v, got)
		}
	}
}
