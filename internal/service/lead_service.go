package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/repository"
)

// LeadService handles lead CRUD and pipeline transitions.
type LeadService struct {
	leads repository.LeadRepository
}

// NewLeadService builds the service.
func NewLeadService(leads repository.LeadRepository) *LeadService {
	return &LeadService{leads: leads}
}

// List returns all leads.
func (s *LeadService) List(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.List(ctx)
}

// ListByStatus returns leads in the given pipeline stage.
func (s *LeadService) ListByStatus(ctx context.Context, status string) ([]domain.Lead, error) {
	parsed, err := ParseLeadStatus(status)
	if err != nil {
		return nil, err
	}
	return s.leads.ListByStatus(ctx, parsed)
}

// Get returns a lead by id.
func (s *LeadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	return s.leads.GetByID(ctx, id)
}

// Create stores a new lead, defaulting the status to NEW.
func (s *LeadService) Create(ctx context.Context, lead *domain.Lead) error {
	if lead.Status == "" {
		lead.Status = domain.LeadStatusNew
	}
	return s.leads.Create(ctx, lead)
}

// Update modifies an existing lead.
func (s *LeadService) Update(ctx context.Context, lead *domain.Lead) error {
	return s.leads.Update(ctx, lead)
}

// UpdateStatus transitions a lead to a new pipeline stage.
func (s *LeadService) UpdateStatus(ctx context.Context, id, status string) (*domain.Lead, error) {
	parsed, err := ParseLeadStatus(status)
	if err != nil {
		return nil, err
	}

	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lead.Status = parsed
	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// Delete removes a lead.
func (s *LeadService) Delete(ctx context.Context, id string) error {
	return s.leads.Delete(ctx, id)
}

// ParseLeadStatus validates a raw status string.
func ParseLeadStatus(value string) (domain.LeadStatus, error) {
	switch domain.LeadStatus(value) {
	case domain.LeadStatusNew, domain.LeadStatusContacted, domain.LeadStatusQualified,
		domain.LeadStatusConverted, domain.LeadStatusLost:
		return domain.LeadStatus(value), nil
	}
	return "", fmt.Errorf("unknown lead status %q", value)
}
