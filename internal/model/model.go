package model

// Task is a single to-do entry.
//
// Tasks are never edited in place: they are created by the store's Add and
// destroyed by Delete.
type Task struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// DefaultSeedTitles are the tasks a fresh screen starts with.
var DefaultSeedTitles = []string{"Task 1", "Task 2", "Task 3"}
