package store

import (
	"strings"

	"swipetodo/internal/model"
)

// Store owns the task list and the search query for one screen.
//
// It is not safe for concurrent use; the TUI mutates it only from Update.
type Store struct {
	tasks []model.Task
	query string
}

func New() *Store {
	return &Store{}
}

// NewWithTasks seeds a store. Blank titles and duplicate ids are dropped;
// seeded ids are kept as given.
func NewWithTasks(tasks []model.Task) *Store {
	s := New()
	seen := map[int]bool{}
	for _, t := range tasks {
		if strings.TrimSpace(t.Title) == "" || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		s.tasks = append(s.tasks, t)
	}
	return s
}

// NewWithTitles seeds a store with ids 1..n over the non-blank titles.
func NewWithTitles(titles []string) *Store {
	tasks := make([]model.Task, 0, len(titles))
	for _, title := range titles {
		if strings.TrimSpace(title) == "" {
			continue
		}
		tasks = append(tasks, model.Task{ID: len(tasks) + 1, Title: title})
	}
	return NewWithTasks(tasks)
}

// nextID is one more than the largest id held, or 1 when empty.
func (s *Store) nextID() int {
	maxID := 0
	for _, t := range s.tasks {
		maxID = max(maxID, t.ID)
	}
	return maxID + 1
}

// Add appends a task. Whitespace-only titles are ignored.
// The title is stored verbatim.
func (s *Store) Add(title string) (model.Task, bool) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, false
	}
	t := model.Task{ID: s.nextID(), Title: title}
	s.tasks = append(s.tasks, t)
	return t, true
}

// Delete removes the task with id. Missing ids are a no-op.
func (s *Store) Delete(id int) bool {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) SetQuery(q string) { s.query = q }

func (s *Store) Query() string { return s.query }

func (s *Store) Len() int { return len(s.tasks) }

// Tasks returns a copy of the full list in insertion order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Find(id int) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Filtered returns the tasks whose title contains the query, case-insensitively,
// in insertion order. An empty query matches everything.
func (s *Store) Filtered() []model.Task {
	return Filter(s.tasks, s.query)
}

func Filter(tasks []model.Task, query string) []model.Task {
	q := strings.ToLower(query)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) {
			out = append(out, t)
		}
	}
	return out
}
