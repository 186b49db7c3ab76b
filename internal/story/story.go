// Package story holds the canonical story collection and the pure state
// transitions over it. Nothing here does I/O; loading and persistence live
// in the source and store packages.
package story

// Story is a single list entry. Identity is ObjectID: no two stories in a
// collection share one.
type Story struct {
	ObjectID    int
	URL         string
	Title       string
	Author      string
	NumComments int
	Points      int
}

// Stories is an ordered collection. Insertion order is display order.
type Stories []Story

// Contains reports whether the collection holds a story with the given id.
func (s Stories) Contains(id int) bool {
	for _, st := range s {
		if st.ObjectID == id {
			return true
		}
	}
	return false
}
