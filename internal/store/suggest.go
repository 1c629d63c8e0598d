package store

import (
	"strings"

	"swipetodo/internal/model"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance caps how far a title may be from the query and still be offered.
const maxSuggestDistance = 3

// Suggest returns the task whose title is closest to query by edit distance.
// It is used for the empty-state hint only; it never changes what Filtered returns.
func (s *Store) Suggest(query string) (model.Task, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return model.Task{}, false
	}
	best := -1
	var out model.Task
	for _, t := range s.tasks {
		d := levenshtein.ComputeDistance(q, strings.ToLower(t.Title))
		if d > maxSuggestDistance {
			continue
		}
		// Ties keep the earlier task.
		if best < 0 || d < best {
			best = d
			out = t
		}
	}
	return out, best >= 0
}
