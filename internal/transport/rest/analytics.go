package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
	"github.com/heartmarshall/prodboard-backend/internal/permissions"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	WorkflowStats(ctx context.Context) (*domain.WorkflowStats, error)
}

// AnalyticsHandler serves analytics REST endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type dashboardResponse struct {
	TotalRoadmaps      int                `json:"total_roadmaps"`
	TotalRequirements  int                `json:"total_requirements"`
	TotalIdeas         int                `json:"total_ideas"`
	RoadmapsByStatus   map[string]int     `json:"roadmaps_by_status"`
	RequirementsByStat map[string]int     `json:"requirements_by_status"`
	IdeasByTriage      map[string]int     `json:"ideas_by_triage_status"`
	RecentActivity     []activityResponse `json:"recent_activity"`
}

type monthCountResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type workflowStatsResponse struct {
	RoadmapsByMonth           []monthCountResponse `json:"roadmaps_by_month"`
	RequirementsByPriority    map[string]int       `json:"requirements_by_priority"`
	IdeasByImpact             map[string]int       `json:"ideas_by_impact"`
	RoadmapCompletionRate     float64              `json:"roadmap_completion_rate"`
	RequirementCompletionRate float64              `json:"requirement_completion_rate"`
	IdeaPromotionRate         float64              `json:"idea_promotion_rate"`
}

// Dashboard handles GET /api/analytics/dashboard.
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionViewAnalytics); !ok {
		return
	}

	stats, err := h.svc.Dashboard(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, dashboardResponse{
		TotalRoadmaps:      stats.TotalRoadmaps,
		TotalRequirements:  stats.TotalRequirements,
		TotalIdeas:         stats.TotalIdeas,
		RoadmapsByStatus:   stats.RoadmapsByStatus,
		RequirementsByStat: stats.RequirementsByStatus,
		IdeasByTriage:      stats.IdeasByTriageStatus,
		RecentActivity:     toActivityResponses(stats.RecentActivity),
	})
}

// WorkflowStats handles GET /api/analytics/workflow-stats.
func (h *AnalyticsHandler) WorkflowStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := require(w, r, permissions.ActionViewAnalytics); !ok {
		return
	}

	stats, err := h.svc.WorkflowStats(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	months := make([]monthCountResponse, 0, len(stats.RoadmapsByMonth))
	for _, m := range stats.RoadmapsByMonth {
		months = append(months, monthCountResponse{Month: m.Month, Count: m.Count})
	}

	writeData(w, http.StatusOK, workflowStatsResponse{
		RoadmapsByMonth:           months,
		RequirementsByPriority:    stats.RequirementsByPriority,
		IdeasByImpact:             stats.IdeasByImpact,
		RoadmapCompletionRate:     stats.RoadmapCompletionRate,
		RequirementCompletionRate: stats.RequirementCompletionRate,
		IdeaPromotionRate:         stats.IdeaPromotionRate,
	})
}
