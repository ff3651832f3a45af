// Package analytics assembles dashboard and workflow statistics from the
// read-only aggregate queries.
package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

const (
	recentActivityLimit = 10
	byMonthWindow       = 6
)

// repo defines the aggregate query interface needed by the service.
type repo interface {
	Totals(ctx context.Context) (roadmaps, requirements, ideas int, err error)
	RoadmapsByStatus(ctx context.Context) (map[string]int, error)
	RequirementsByStatus(ctx context.Context) (map[string]int, error)
	IdeasByTriageStatus(ctx context.Context) (map[string]int, error)
	RequirementsByPriority(ctx context.Context) (map[string]int, error)
	IdeasByImpact(ctx context.Context) (map[string]int, error)
	RoadmapsByMonth(ctx context.Context, months int) ([]domain.MonthCount, error)
	FunnelCounts(ctx context.Context) (completedRoadmaps, completedRequirements, promotedIdeas int, err error)
}

// activityReader supplies the recent-activity strip on the dashboard.
type activityReader interface {
	Recent(ctx context.Context, limit int) ([]domain.ActivityRecord, error)
}

// Service implements analytics operations.
type Service struct {
	log      *slog.Logger
	repo     repo
	activity activityReader
}

// NewService creates a new analytics service instance.
func NewService(logger *slog.Logger, r repo, activity activityReader) *Service {
	return &Service{
		log:      logger.With("service", "analytics"),
		repo:     r,
		activity: activity,
	}
}

// Dashboard returns entity totals, per-status breakdowns, and the most
// recent activity entries.
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	totalRoadmaps, totalRequirements, totalIdeas, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard: %w", err)
	}

	roadmapsByStatus, err := s.repo.RoadmapsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard: %w", err)
	}
	requirementsByStatus, err := s.repo.RequirementsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard: %w", err)
	}
	ideasByTriage, err := s.repo.IdeasByTriageStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard: %w", err)
	}

	recent, err := s.activity.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard: %w", err)
	}

	return &domain.DashboardStats{
		TotalRoadmaps:        totalRoadmaps,
		TotalRequirements:    totalRequirements,
		TotalIdeas:           totalIdeas,
		RoadmapsByStatus:     roadmapsByStatus,
		RequirementsByStatus: requirementsByStatus,
		IdeasByTriageStatus:  ideasByTriage,
		RecentActivity:       recent,
	}, nil
}

// WorkflowStats returns pipeline statistics: roadmap creation by month,
// priority and impact distributions, and completion/promotion rates.
func (s *Service) WorkflowStats(ctx context.Context) (*domain.WorkflowStats, error) {
	byMonth, err := s.repo.RoadmapsByMonth(ctx, byMonthWindow)
	if err != nil {
		return nil, fmt.Errorf("analytics.WorkflowStats: %w", err)
	}
	byPriority, err := s.repo.RequirementsByPriority(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.WorkflowStats: %w", err)
	}
	byImpact, err := s.repo.IdeasByImpact(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.WorkflowStats: %w", err)
	}

	totalRoadmaps, totalRequirements, totalIdeas, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.WorkflowStats: %w", err)
	}
	doneRoadmaps, doneRequirements, promotedIdeas, err := s.repo.FunnelCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.WorkflowStats: %w", err)
	}

	return &domain.WorkflowStats{
		RoadmapsByMonth:           byMonth,
		RequirementsByPriority:    byPriority,
		IdeasByImpact:             byImpact,
		RoadmapCompletionRate:     rate(doneRoadmaps, totalRoadmaps),
		RequirementCompletionRate: rate(doneRequirements, totalRequirements),
		IdeaPromotionRate:         rate(promotedIdeas, totalIdeas),
	}, nil
}

// rate returns part/total, 0 when total is 0.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
