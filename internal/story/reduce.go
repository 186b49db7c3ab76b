package story

import "fmt"

// Action describes one transition of the story collection. The action set is
// closed: the unexported marker method keeps implementations inside this
// package, so Reduce's type switch covers every case that can exist.
type Action interface {
	isAction()
}

// SetStories replaces the whole collection with its payload. Used both for a
// completed load and for restoring a previous collection; prior state is
// discarded wholesale, never merged.
type SetStories struct {
	Stories Stories
}

// RemoveStory excludes the single story whose ObjectID matches the payload.
// Removing an absent story is a no-op.
type RemoveStory struct {
	Story Story
}

func (SetStories) isAction()  {}
func (RemoveStory) isAction() {}

// Reduce returns the next collection for the given action. It never mutates
// its input and the same (state, action) pair always yields an equal result.
// An action outside the closed set is a contract violation and panics.
func Reduce(state Stories, action Action) Stories {
	switch a := action.(type) {
	case SetStories:
		return a.Stories
	case RemoveStory:
		out := make(Stories, 0, len(state))
		for _, st := range state {
			if st.ObjectID != a.Story.ObjectID {
				out = append(out, st)
			}
		}
		if len(out) == len(state) {
			return state
		}
		return out
	default:
		panic(fmt.Sprintf("story: unknown action %T", action))
	}
}
