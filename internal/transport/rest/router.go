package rest

import "net/http"

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Roadmap       *RoadmapHandler
	Requirement   *RequirementHandler
	Idea          *IdeaHandler
	Collab        *CollabHandler
	Activity      *ActivityHandler
	Notification  *NotificationHandler
	Analytics     *AnalyticsHandler
	Export        *ExportHandler
	Health        *HealthHandler
	UploadsDir    string
}

// NewRouter mounts all routes on a ServeMux. Authentication is resolved by
// middleware before the mux; per-route role checks live in the handlers.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	mux.HandleFunc("GET /api/roadmaps", h.Roadmap.List)
	mux.HandleFunc("POST /api/roadmaps", h.Roadmap.Create)
	mux.HandleFunc("GET /api/roadmaps/{id}", h.Roadmap.Get)
	mux.HandleFunc("PUT /api/roadmaps/{id}", h.Roadmap.Update)
	mux.HandleFunc("DELETE /api/roadmaps/{id}", h.Roadmap.Delete)
	mux.HandleFunc("POST /api/roadmaps/{id}/approve", h.Roadmap.Approve)

	mux.HandleFunc("GET /api/requirements", h.Requirement.List)
	mux.HandleFunc("POST /api/requirements", h.Requirement.Create)
	mux.HandleFunc("GET /api/requirements/{id}", h.Requirement.Get)
	mux.HandleFunc("PUT /api/requirements/{id}", h.Requirement.Update)
	mux.HandleFunc("DELETE /api/requirements/{id}", h.Requirement.Delete)
	mux.HandleFunc("POST /api/requirements/{id}/validate", h.Requirement.Validate)

	mux.HandleFunc("GET /api/ideas", h.Idea.List)
	mux.HandleFunc("POST /api/ideas", h.Idea.Submit)
	mux.HandleFunc("GET /api/ideas/{id}", h.Idea.Get)
	mux.HandleFunc("PUT /api/ideas/{id}", h.Idea.Update)
	mux.HandleFunc("DELETE /api/ideas/{id}", h.Idea.Delete)
	mux.HandleFunc("POST /api/ideas/{id}/triage", h.Idea.Triage)
	mux.HandleFunc("POST /api/ideas/{id}/promote", h.Idea.Promote)

	mux.HandleFunc("GET /api/comments", h.Collab.ListComments)
	mux.HandleFunc("POST /api/comments", h.Collab.CreateComment)
	mux.HandleFunc("GET /api/attachments", h.Collab.ListAttachments)
	mux.HandleFunc("POST /api/attachments/upload", h.Collab.Upload)
	mux.HandleFunc("DELETE /api/attachments/{id}", h.Collab.DeleteAttachment)

	mux.HandleFunc("GET /api/activity-logs", h.Activity.List)

	mux.HandleFunc("GET /api/notifications", h.Notification.List)
	mux.HandleFunc("PUT /api/notifications/{id}/read", h.Notification.MarkRead)
	mux.HandleFunc("PUT /api/notifications/read-all", h.Notification.MarkAllRead)

	mux.HandleFunc("GET /api/analytics/dashboard", h.Analytics.Dashboard)
	mux.HandleFunc("GET /api/analytics/workflow-stats", h.Analytics.WorkflowStats)

	mux.HandleFunc("POST /api/export/requirements", h.Export.Requirements)
	mux.HandleFunc("POST /api/export/roadmap", h.Export.Roadmap)

	if h.UploadsDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(h.UploadsDir))))
	}

	return mux
}
