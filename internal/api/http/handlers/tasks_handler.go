package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crm-service/internal/api/dto"
	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/repository"
	"github.com/spec-kit/crm-service/internal/service"
	apperrors "github.com/spec-kit/crm-service/pkg/util"
)

const taskDateLayout = "2006-01-02"

// TasksHandler exposes task CRUD endpoints.
type TasksHandler struct {
	tasks *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{tasks: taskService}
}

// List handles GET /api/tasks.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	filter := repository.TaskFilter{
		Limit:  parseIntQuery(c, "size", 20),
		Offset: parseIntQuery(c, "page", 0) * parseIntQuery(c, "size", 20),
	}

	if status := c.Query("status"); status != "" {
		parsed, err := service.ParseTaskStatus(status)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		filter.Status = &parsed
	}
	if priority := c.Query("priority"); priority != "" {
		parsed, err := service.ParseTaskPriority(priority)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		filter.Priority = &parsed
	}
	if assignedTo := c.Query("assignedTo"); assignedTo != "" {
		filter.AssignedToID = &assignedTo
	}
	if from := c.Query("fromDate"); from != "" {
		parsed, err := time.Parse(taskDateLayout, from)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "fromDate must be YYYY-MM-DD")
		}
		filter.DueFrom = &parsed
	}
	if to := c.Query("toDate"); to != "" {
		parsed, err := time.Parse(taskDateLayout, to)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "toDate must be YYYY-MM-DD")
		}
		filter.DueTo = &parsed
	}

	tasks, err := h.tasks.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": tasks})
}

// Get handles GET /api/tasks/:id.
func (h *TasksHandler) Get(c *fiber.Ctx) error {
	task, err := h.tasks.Get(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": task})
}

// Create handles POST /api/tasks.
func (h *TasksHandler) Create(c *fiber.Ctx) error {
	var req dto.TaskCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" {
		return fiber.NewError(http.StatusBadRequest, "title required")
	}

	task, err := taskFromFields(req.Title, req.Description, req.DueDate, req.Priority, req.Status, req.AssignedToID)
	if err != nil {
		return err
	}

	if err := h.tasks.Create(c.Context(), task); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": task})
}

// Update handles PUT /api/tasks/:id.
func (h *TasksHandler) Update(c *fiber.Ctx) error {
	var req dto.TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" {
		return fiber.NewError(http.StatusBadRequest, "title required")
	}

	task, err := taskFromFields(req.Title, req.Description, req.DueDate, req.Priority, req.Status, req.AssignedToID)
	if err != nil {
		return err
	}
	task.ID = c.Params("id")

	if err := h.tasks.Update(c.Context(), task); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": task})
}

// UpdateStatus handles PATCH /api/tasks/:id/status.
func (h *TasksHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.TaskStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if _, err := service.ParseTaskStatus(req.Status); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	task, err := h.tasks.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": task})
}

// Delete handles DELETE /api/tasks/:id.
func (h *TasksHandler) Delete(c *fiber.Ctx) error {
	if err := h.tasks.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func taskFromFields(title, description, dueDate, priority, status string, assignedTo *string) (*domain.Task, error) {
	task := &domain.Task{
		Title:        title,
		Description:  description,
		AssignedToID: assignedTo,
	}

	if dueDate != "" {
		parsed, err := time.Parse(taskDateLayout, dueDate)
		if err != nil {
			return nil, fiber.NewError(http.StatusBadRequest, "dueDate must be YYYY-MM-DD")
		}
		task.DueDate = &parsed
	}
	if priority != "" {
		parsed, err := service.ParseTaskPriority(priority)
		if err != nil {
			return nil, fiber.NewError(http.StatusBadRequest, err.Error())
		}
		task.Priority = parsed
	}
	if status != "" {
		parsed, err := service.ParseTaskStatus(status)
		if err != nil {
			return nil, fiber.NewError(http.StatusBadRequest, err.Error())
		}
		task.Status = parsed
	}

	return task, nil
}
