package domain

import "time"

// LeadStatus enumerates the lead pipeline stages.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusQualified LeadStatus = "QUALIFIED"
	LeadStatusConverted LeadStatus = "CONVERTED"
	LeadStatusLost      LeadStatus = "LOST"
)

// Lead is a potential customer not yet converted.
type Lead struct {
	ID            string
	Name          string
	ContactInfo   string
	Source        string
	Status        LeadStatus
	AssignedRepID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
