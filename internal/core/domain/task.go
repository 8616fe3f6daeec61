package domain

import "time"

// TaskStatus tracks progress of a unit of work on a deal.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
)

// TaskPriority ranks a task's urgency.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is a unit of work tied to a deal, owned by exactly one deal.
// TaskID is unique within the owning deal.
type Task struct {
	TaskID      string       `json:"taskID"`
	Description string       `json:"description"`
	AssignedTo  string       `json:"assignedTo"` // UserID reference
	CreatedBy   string       `json:"createdBy"`  // UserID reference
	CreatedAt   time.Time    `json:"createdAt"`
	DueAt       *time.Time   `json:"dueAt,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Comments    []Comment    `json:"comments,omitempty"`
}

func (t Task) clone() Task {
	out := t
	if t.DueAt != nil {
		due := *t.DueAt
		out.DueAt = &due
	}
	if t.Comments != nil {
		out.Comments = append([]Comment(nil), t.Comments...)
	}
	return out
}
