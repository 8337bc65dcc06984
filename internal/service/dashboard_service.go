package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/persistence"
	"github.com/spec-kit/crm-service/internal/repository"
)

const (
	dashboardCacheKey = "crm:dashboard:summary"
	dashboardCacheTTL = 30 * time.Second
)

// DashboardSummary aggregates counts across all entity types.
type DashboardSummary struct {
	Customers     int64                       `json:"customers"`
	LeadsByStatus map[domain.LeadStatus]int64 `json:"leadsByStatus"`
	SalesCount    int64                       `json:"salesCount"`
	SalesTotal    float64                     `json:"salesTotal"`
	OpenTasks     int64                       `json:"openTasks"`
}

// DashboardService computes the summary and caches it in Redis for a short
// TTL. A cache failure degrades to a direct read, never to an error.
type DashboardService struct {
	customers repository.CustomerRepository
	leads     repository.LeadRepository
	sales     repository.SaleRepository
	tasks     repository.TaskRepository
	cache     *persistence.Redis
	logger    *zap.Logger
}

// NewDashboardService builds the service.
func NewDashboardService(
	customers repository.CustomerRepository,
	leads repository.LeadRepository,
	sales repository.SaleRepository,
	tasks repository.TaskRepository,
	cache *persistence.Redis,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		customers: customers,
		leads:     leads,
		sales:     sales,
		tasks:     tasks,
		cache:     cache,
		logger:    logger,
	}
}

// Summary returns the aggregate view, served from cache when fresh.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	customerCount, err := s.customers.Count(ctx)
	if err != nil {
		return nil, err
	}
	leadCounts, err := s.leads.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.sales.Totals(ctx)
	if err != nil {
		return nil, err
	}
	openTasks, err := s.tasks.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Customers:     customerCount,
		LeadsByStatus: leadCounts,
		SalesCount:    totals.Count,
		SalesTotal:    totals.TotalAmount,
		OpenTasks:     openTasks,
	}
	s.toCache(ctx, summary)
	return summary, nil
}

func (s *DashboardService) fromCache(ctx context.Context) *DashboardSummary {
	if s.cache == nil || s.cache.Client == nil {
		return nil
	}
	raw, err := s.cache.Client.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var summary DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *DashboardService) toCache(ctx context.Context, summary *DashboardSummary) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}
