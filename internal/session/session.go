// Package session sequences loading, user actions, and the search term over
// the story collection. It owns no I/O itself: the caller runs the fetch and
// reports its outcome back through Resolve.
package session

import (
	"github.com/hackstories/hackstories/internal/store"
	"github.com/hackstories/hackstories/internal/story"
)

// Phase is the load lifecycle of a session.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Session owns the canonical story collection and its load lifecycle. All
// mutation funnels through story.Reduce, applied in call order.
//
// Methods must be called from a single goroutine; the bubbletea update loop
// satisfies this, so no locking is needed.
type Session struct {
	phase    Phase
	stories  story.Stories
	baseline story.Stories
	term     *store.Cell
	loadErr  error
}

// New returns an idle session. baseline is the collection Restore falls back
// to until a load succeeds.
func New(term *store.Cell, baseline story.Stories) *Session {
	return &Session{term: term, baseline: baseline}
}

// Begin marks a load as outstanding and reports whether the caller should
// start one. It returns false while a fetch is already in flight: at most
// one is outstanding at a time.
func (s *Session) Begin() bool {
	if s.phase == Loading {
		return false
	}
	s.phase = Loading
	s.loadErr = nil
	return true
}

// Resolve applies the terminal outcome of a fetch: either the full
// collection or an error, never both. A completion arriving when no load is
// outstanding belongs to a torn-down fetch and is discarded. Failure leaves
// the collection at its last known-good value.
func (s *Session) Resolve(stories story.Stories, err error) {
	if s.phase != Loading {
		return
	}
	if err != nil {
		s.phase = Failed
		s.loadErr = err
		return
	}
	s.phase = Loaded
	s.stories = story.Reduce(s.stories, story.SetStories{Stories: stories})
	s.baseline = stories
}

// Dispatch applies an action against the current collection immediately,
// regardless of any outstanding fetch.
func (s *Session) Dispatch(a story.Action) {
	s.stories = story.Reduce(s.stories, a)
}

// Remove dismisses a single story.
func (s *Session) Remove(st story.Story) {
	s.Dispatch(story.RemoveStory{Story: st})
}

// Restore puts back the most recent successful load's collection. Before any
// load has succeeded it restores the baseline given to New.
func (s *Session) Restore() {
	s.Dispatch(story.SetStories{Stories: s.baseline})
}

// Visible projects the collection through the current search term. Computed
// fresh on every call.
func (s *Session) Visible() story.Stories {
	return story.Filter(s.stories, s.term.Value())
}

func (s *Session) Stories() story.Stories { return s.stories }

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) IsLoading() bool { return s.phase == Loading }

// IsError reports whether the most recent load failed. It resets only when
// a new load begins.
func (s *Session) IsError() bool { return s.phase == Failed }

// Err returns the failure of the most recent load, or nil.
func (s *Session) Err() error {
	if s.phase != Failed {
		return nil
	}
	return s.loadErr
}

// Term returns the current search term.
func (s *Session) Term() string { return s.term.Value() }

// SetTerm updates the search term and persists it through the cell.
func (s *Session) SetTerm(term string) { s.term.Set(term) }
