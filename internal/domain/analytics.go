package domain

// DashboardStats is the aggregate view behind the analytics dashboard:
// entity totals, per-status breakdowns, and the most recent activity.
type DashboardStats struct {
	TotalRoadmaps       int
	TotalRequirements   int
	TotalIdeas          int
	RoadmapsByStatus    map[string]int
	RequirementsByStatus map[string]int
	IdeasByTriageStatus map[string]int
	RecentActivity      []ActivityRecord
}

// MonthCount is one bucket of a by-month histogram. Month is formatted
// "YYYY-MM".
type MonthCount struct {
	Month string
	Count int
}

// WorkflowStats describes how work moves through the pipeline: creation rate
// by month, priority/impact distributions, and how much of each funnel has
// reached its terminal state.
type WorkflowStats struct {
	RoadmapsByMonth           []MonthCount
	RequirementsByPriority    map[string]int
	IdeasByImpact             map[string]int
	RoadmapCompletionRate     float64 // completed / total, 0 when empty
	RequirementCompletionRate float64
	IdeaPromotionRate         float64 // promoted / total, 0 when empty
}
