package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/repository"
)

// TaskService handles task CRUD and status transitions.
type TaskService struct {
	tasks repository.TaskRepository
}

// NewTaskService builds the service.
func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns tasks matching the filter.
func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return s.tasks.ListWithFilter(ctx, filter)
}

// Get returns a task by id.
func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// Create stores a new task, defaulting status and priority.
func (s *TaskService) Create(ctx context.Context, task *domain.Task) error {
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	return s.tasks.Create(ctx, task)
}

// Update modifies an existing task.
func (s *TaskService) Update(ctx context.Context, task *domain.Task) error {
	return s.tasks.Update(ctx, task)
}

// UpdateStatus transitions a task to a new status.
func (s *TaskService) UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error) {
	parsed, err := ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Status = parsed
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// ParseTaskStatus validates a raw status string.
func ParseTaskStatus(value string) (domain.TaskStatus, error) {
	switch domain.TaskStatus(value) {
	case domain.TaskStatusPending, domain.TaskStatusInProgress, domain.TaskStatusCompleted,
		domain.TaskStatusCancelled, domain.TaskStatusOnHold, domain.TaskStatusOverdue:
		return domain.TaskStatus(value), nil
	}
	return "", fmt.Errorf("unknown task status %q", value)
}

// ParseTaskPriority validates a raw priority string.
func ParseTaskPriority(value string) (domain.TaskPriority, error) {
	switch domain.TaskPriority(value) {
	case domain.TaskPriorityLow, domain.TaskPriorityMedium, domain.TaskPriorityHigh, domain.TaskPriorityUrgent:
		return domain.TaskPriority(value), nil
	}
	return "", fmt.Errorf("unknown task priority %q", value)
}
