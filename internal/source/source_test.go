package source

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSimulatedFetchReturnsSeed(t *testing.T) {
	src := NewSimulated(time.Millisecond, false)

	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 seed stories, got %d", len(got))
	}
	if got[0].Title != "React" || got[1].Title != "Redux" {
		t.Errorf("unexpected seed order: %v", got)
	}
}

func TestSimulatedFetchReturnsCopy(t *testing.T) {
	src := NewSimulated(0, false)

	first, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	first[0].Title = "mutated"

	second, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if second[0].Title != "React" {
		t.Errorf("caller mutation leaked into the source: %v", second[0])
	}
}

func TestSimulatedFetchFailure(t *testing.T) {
	src := NewSimulated(time.Millisecond, true)

	got, err := src.Fetch(context.Background())
	if !errors.Is(err, ErrLoadFailed) {
		t.Errorf("expected ErrLoadFailed, got %v", err)
	}
	if got != nil {
		t.Errorf("failed fetch must not carry a collection, got %v", got)
	}
}

func TestSimulatedFetchHonorsContext(t *testing.T) {
	src := NewSimulated(time.Hour, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Fetch(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSeedHasUniqueIDs(t *testing.T) {
	seed := Seed()
	seen := make(map[int]bool)
	for _, st := range seed {
		if seen[st.ObjectID] {
			t.Errorf("duplicate ObjectID %d in seed", st.ObjectID)
		}
		seen[st.ObjectID] = true
	}
}
