package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/repository"
)

// SaleService handles sale CRUD. The caller's identity fills in the
// created-by and default assignee fields.
type SaleService struct {
	sales repository.SaleRepository
}

// NewSaleService builds the service.
func NewSaleService(sales repository.SaleRepository) *SaleService {
	return &SaleService{sales: sales}
}

// List returns all sales.
func (s *SaleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.sales.List(ctx)
}

// Get returns a sale by id.
func (s *SaleService) Get(ctx context.Context, id string) (*domain.Sale, error) {
	return s.sales.GetByID(ctx, id)
}

// Create stores a new sale attributed to the caller. The caller becomes the
// assigned rep when none is specified.
func (s *SaleService) Create(ctx context.Context, sale *domain.Sale, callerID string) error {
	if sale.AssignedRepID == nil {
		rep := callerID
		sale.AssignedRepID = &rep
	}
	sale.CreatedBy = callerID
	if sale.Status == "" {
		sale.Status = domain.SaleStatusPending
	}
	return s.sales.Create(ctx, sale)
}

// Update modifies an existing sale, preserving its creator.
func (s *SaleService) Update(ctx context.Context, id string, updated *domain.Sale) (*domain.Sale, error) {
	sale, err := s.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sale.CustomerID = updated.CustomerID
	sale.Amount = updated.Amount
	sale.Status = updated.Status
	sale.Date = updated.Date
	sale.AssignedRepID = updated.AssignedRepID
	sale.Notes = updated.Notes

	if err := s.sales.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete removes a sale.
func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.sales.Delete(ctx, id)
}

// ParseSaleStatus validates a raw status string.
func ParseSaleStatus(value string) (domain.SaleStatus, error) {
	switch domain.SaleStatus(value) {
	case domain.SaleStatusProposal, domain.SaleStatusPending, domain.SaleStatusApproved,
		domain.SaleStatusCompleted, domain.SaleStatusPaymentPending, domain.SaleStatusOnHold,
		domain.SaleStatusCancelled, domain.SaleStatusRefunded:
		return domain.SaleStatus(value), nil
	}
	return "", fmt.Errorf("unknown sale status %q", value)
}
