package dto

// LeadRequest payload for creating or updating a lead.
type LeadRequest struct {
	Name          string  `json:"name"`
	ContactInfo   string  `json:"contactInfo"`
	Source        string  `json:"source"`
	Status        string  `json:"status"`
	AssignedRepID *string `json:"assignedRepId"`
}

// LeadStatusUpdateRequest payload for pipeline transitions.
type LeadStatusUpdateRequest struct {
	Status string `json:"status"`
}
