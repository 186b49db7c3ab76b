// Package source provides the story repositories: a simulated delayed fetch
// used by default, and a live RSS-backed source.
package source

import (
	"context"
	"errors"
	"time"

	"github.com/hackstories/hackstories/internal/story"
)

// ErrLoadFailed is the terminal outcome of a failed simulated load.
var ErrLoadFailed = errors.New("loading stories failed")

// Source produces the full story collection. Each call yields exactly one
// terminal outcome, either the collection or an error; there are no partial
// results and no built-in retries.
type Source interface {
	Fetch(ctx context.Context) (story.Stories, error)
}

// Seed returns the built-in demo collection.
func Seed() story.Stories {
	return story.Stories{
		{
			ObjectID:    0,
			Title:       "React",
			URL:         "https://reactjs.org/",
			Author:      "Jordan Walke",
			NumComments: 3,
			Points:      4,
		},
		{
			ObjectID:    1,
			Title:       "Redux",
			URL:         "https://redux.js.org/",
			Author:      "Dan Abramov, Andrew Clark",
			NumComments: 2,
			Points:      5,
		},
	}
}

// Simulated models a remote endpoint: the collection becomes available only
// after Latency has elapsed. With Fail set every call produces ErrLoadFailed
// instead, after the same delay.
type Simulated struct {
	Stories story.Stories
	Latency time.Duration
	Fail    bool
}

// NewSimulated returns a simulated source serving the built-in seed.
func NewSimulated(latency time.Duration, fail bool) *Simulated {
	return &Simulated{Stories: Seed(), Latency: latency, Fail: fail}
}

func (s *Simulated) Fetch(ctx context.Context) (story.Stories, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.Latency):
	}
	if s.Fail {
		return nil, ErrLoadFailed
	}
	out := make(story.Stories, len(s.Stories))
	copy(out, s.Stories)
	return out, nil
}
