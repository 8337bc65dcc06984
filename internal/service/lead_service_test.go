package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crm-service/internal/domain"
)

type fakeLeadRepository struct {
	byID map[string]*domain.Lead
}

func newFakeLeadRepository() *fakeLeadRepository {
	return &fakeLeadRepository{byID: make(map[string]*domain.Lead)}
}

func (f *fakeLeadRepository) Create(_ context.Context, lead *domain.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	clone := *lead
	f.byID[lead.ID] = &clone
	return nil
}

func (f *fakeLeadRepository) Update(_ context.Context, lead *domain.Lead) error {
	if _, ok := f.byID[lead.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *lead
	f.byID[lead.ID] = &clone
	return nil
}

func (f *fakeLeadRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeLeadRepository) GetByID(_ context.Context, id string) (*domain.Lead, error) {
	lead, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *lead
	return &clone, nil
}

func (f *fakeLeadRepository) List(_ context.Context) ([]domain.Lead, error) {
	leads := make([]domain.Lead, 0, len(f.byID))
	for _, lead := range f.byID {
		leads = append(leads, *lead)
	}
	return leads, nil
}

func (f *fakeLeadRepository) ListByStatus(_ context.Context, status domain.LeadStatus) ([]domain.Lead, error) {
	var leads []domain.Lead
	for _, lead := range f.byID {
		if lead.Status == status {
			leads = append(leads, *lead)
		}
	}
	return leads, nil
}

func (f *fakeLeadRepository) CountByStatus(_ context.Context) (map[domain.LeadStatus]int64, error) {
	counts := make(map[domain.LeadStatus]int64)
	for _, lead := range f.byID {
		counts[lead.Status]++
	}
	return counts, nil
}

func TestLeadCreateDefaultsToNew(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepository())

	lead := &domain.Lead{Name: "Acme Corp"}
	require.NoError(t, svc.Create(context.Background(), lead))

	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.NotEmpty(t, lead.ID)
}

func TestLeadUpdateStatus(t *testing.T) {
	repo := newFakeLeadRepository()
	svc := NewLeadService(repo)

	lead := &domain.Lead{Name: "Acme Corp"}
	require.NoError(t, svc.Create(context.Background(), lead))

	updated, err := svc.UpdateStatus(context.Background(), lead.ID, "QUALIFIED")
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusQualified, updated.Status)

	stored, err := repo.GetByID(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusQualified, stored.Status)
}

func TestLeadUpdateStatusRejectsUnknownStage(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepository())

	lead := &domain.Lead{Name: "Acme Corp"}
	require.NoError(t, svc.Create(context.Background(), lead))

	_, err := svc.UpdateStatus(context.Background(), lead.ID, "FROZEN")
	assert.Error(t, err)
}

func TestLeadUpdateStatusMissingLead(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepository())

	_, err := svc.UpdateStatus(context.Background(), "missing-id", "CONTACTED")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestParseEnumsRejectUnknownValues(t *testing.T) {
	_, err := ParseLeadStatus("frozen")
	assert.Error(t, err)

	_, err = ParseSaleStatus("NEGOTIATING")
	assert.Error(t, err)

	_, err = ParseTaskStatus("DONE")
	assert.Error(t, err)

	_, err = ParseTaskPriority("CRITICAL")
	assert.Error(t, err)
}
