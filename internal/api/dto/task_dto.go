package dto

// TaskCreateRequest payload for new tasks. DueDate uses the YYYY-MM-DD form.
type TaskCreateRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DueDate      string  `json:"dueDate"`
	Priority     string  `json:"priority"`
	AssignedToID *string `json:"assignedToId"`
	Status       string  `json:"status"`
}

// TaskUpdateRequest payload for task updates.
type TaskUpdateRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DueDate      string  `json:"dueDate"`
	Priority     string  `json:"priority"`
	AssignedToID *string `json:"assignedToId"`
	Status       string  `json:"status"`
}

// TaskStatusUpdateRequest payload for status transitions.
type TaskStatusUpdateRequest struct {
	Status string `json:"status"`
}
