package structs

import "strings"

// Priority is the urgency label of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the accepted labels in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority canonicalises s case-insensitively. Unknown labels are
// returned trimmed but otherwise untouched so validation can reject them.
func ParsePriority(s string) Priority {
	s = strings.TrimSpace(s)
	for _, p := range Priorities {
		if strings.EqualFold(s, string(p)) {
			return p
		}
	}
	return Priority(s)
}

func (p Priority) String() string { return string(p) }
