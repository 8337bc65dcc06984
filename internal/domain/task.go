package domain

import "time"

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
	TaskStatusOnHold     TaskStatus = "ON_HOLD"
	TaskStatusOverdue    TaskStatus = "OVERDUE"
)

// TaskPriority enumerates urgency levels.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// Task is a unit of work assigned to a user.
type Task struct {
	ID           string
	Title        string
	Description  string
	DueDate      *time.Time
	Priority     TaskPriority
	AssignedToID *string
	Status       TaskStatus
	CreatedAt    time.Time
}
