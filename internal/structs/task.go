// Package structs holds the task entity, its read view and request bodies.
package structs

import "fmt"

// Task is a stored to-do item. It never carries derived state.
type Task struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Deadline    Date     `json:"deadline"`
	Completed   bool     `json:"completed"`
}

// Clone returns a copy the caller may keep.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// TaskBody is the set of user-editable fields, as submitted by the add and
// edit forms or the JSON API.
type TaskBody struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description"`
	Priority    string `form:"priority" json:"priority" validate:"required,oneof=Low Medium High"`
	Deadline    string `form:"deadline" json:"deadline" validate:"required,datetime=2006-01-02"`
}

// ReadTask is the presentation view of a task.
type ReadTask struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Deadline    Date     `json:"deadline"`
	Completed   bool     `json:"completed"`
	DaysLeft    *int     `json:"days_left,omitempty"`
}

// NewReadTask builds a view without days_left.
func NewReadTask(t *Task) *ReadTask {
	return &ReadTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Deadline:    t.Deadline,
		Completed:   t.Completed,
	}
}

// WithDaysLeft annotates the view with the distance from today to the deadline.
func (r *ReadTask) WithDaysLeft(today Date) *ReadTask {
	n := r.Deadline.DaysSince(today)
	r.DaysLeft = &n
	return r
}

// Overdue reports whether the deadline has passed.
func (r *ReadTask) Overdue() bool {
	return r.DaysLeft != nil && *r.DaysLeft < 0
}

// DueLabel renders days_left for display.
func (r *ReadTask) DueLabel() string {
	if r.DaysLeft == nil {
		return ""
	}
	n := *r.DaysLeft
	switch {
	case n == 0:
		return "Due today"
	case n == 1:
		return "1 day left"
	case n > 1:
		return fmt.Sprintf("%d days left", n)
	case n == -1:
		return "Overdue by 1 day"
	default:
		return fmt.Sprintf("Overdue by %d days", -n)
	}
}
