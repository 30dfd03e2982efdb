// Package api provides a client for the TodayView sync API.
package api

import "time"

// Task represents a task as served by the sync API.
type Task struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Notes     string `json:"notes,omitempty"` // markdown
	Done      bool   `json:"done"`
	Priority  int    `json:"priority"` // 1 (highest) .. 4 (default)
	DueDate   string `json:"due_date,omitempty"` // YYYY-MM-DD
	Order     int    `json:"order"`
	CreatedAt string `json:"created_at"`
}

// ItemID returns the task's stable identifier.
func (t Task) ItemID() string { return t.ID }

// dueTime parses DueDate in the local timezone. Returns the zero time when
// the task has no due date or the date is malformed.
func (t Task) dueTime() time.Time {
	if t.DueDate == "" {
		return time.Time{}
	}
	parsed, err := time.ParseInLocation("2006-01-02", t.DueDate, time.Local)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// IsDueToday reports whether the task is due on the current local day.
func (t Task) IsDueToday() bool {
	due := t.dueTime()
	if due.IsZero() {
		return false
	}
	now := time.Now()
	return due.Year() == now.Year() && due.YearDay() == now.YearDay()
}

// IsOverdue reports whether the task's due date has passed and the task is
// still open.
func (t Task) IsOverdue() bool {
	due := t.dueTime()
	if due.IsZero() || t.Done {
		return false
	}
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return due.Before(startOfDay)
}

// PaginatedResponse is the envelope the sync API uses for cursor-paginated
// collections.
type PaginatedResponse[T any] struct {
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor"`
}

// CreateTaskRequest represents the request body for creating a task.
type CreateTaskRequest struct {
	Content  string `json:"content"`
	Notes    string `json:"notes,omitempty"`
	Priority int    `json:"priority,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
}

// UpdateTaskRequest represents the request body for updating a task.
// Nil pointer fields are left untouched by the server.
type UpdateTaskRequest struct {
	Content  *string `json:"content,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Priority *int    `json:"priority,omitempty"`
	DueDate  *string `json:"due_date,omitempty"`
}

// ReorderRequest carries the full desired task order for persisting a
// client-side reorder.
type ReorderRequest struct {
	IDs []string `json:"ids"`
}
