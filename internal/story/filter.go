package story

import "strings"

// Filter returns the stories whose title contains term as a case-insensitive
// substring, preserving order. An empty term matches everything and returns
// the input unchanged. Case folding is plain strings.ToLower with no
// locale-specific collation.
func Filter(stories Stories, term string) Stories {
	if term == "" {
		return stories
	}
	needle := strings.ToLower(term)
	var out Stories
	for _, st := range stories {
		if strings.Contains(strings.ToLower(st.Title), needle) {
			out = append(out, st)
		}
	}
	return out
}
