// Package app wires configuration, storage, services, and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/activity"
	analyticsrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/analytics"
	attachmentrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/attachment"
	commentrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/comment"
	idearepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/idea"
	notificationrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/notification"
	requirementrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/requirement"
	roadmaprepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/roadmap"
	userrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/prodboard-backend/internal/auth"
	"github.com/heartmarshall/prodboard-backend/internal/config"
	activitysvc "github.com/heartmarshall/prodboard-backend/internal/service/activity"
	analyticssvc "github.com/heartmarshall/prodboard-backend/internal/service/analytics"
	authsvc "github.com/heartmarshall/prodboard-backend/internal/service/auth"
	collabsvc "github.com/heartmarshall/prodboard-backend/internal/service/collab"
	exportsvc "github.com/heartmarshall/prodboard-backend/internal/service/export"
	ideasvc "github.com/heartmarshall/prodboard-backend/internal/service/idea"
	notificationsvc "github.com/heartmarshall/prodboard-backend/internal/service/notification"
	requirementsvc "github.com/heartmarshall/prodboard-backend/internal/service/requirement"
	roadmapsvc "github.com/heartmarshall/prodboard-backend/internal/service/roadmap"
	"github.com/heartmarshall/prodboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/prodboard-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and handlers, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database, logger); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	roadmaps := roadmaprepo.New(pool)
	requirements := requirementrepo.New(pool)
	ideas := idearepo.New(pool)
	comments := commentrepo.New(pool)
	attachments := attachmentrepo.New(pool)
	activities := activityrepo.New(pool)
	notifications := notificationrepo.New(pool)
	analytics := analyticsrepo.New(pool)

	activitySvc := activitysvc.NewService(logger, activities)
	notificationSvc := notificationsvc.NewService(logger, notifications, cfg.Notifications)
	authSvc := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	roadmapSvc := roadmapsvc.NewService(logger, roadmaps, activitySvc, notificationSvc)
	requirementSvc := requirementsvc.NewService(logger, requirements, roadmaps, activitySvc, notificationSvc)
	ideaSvc := ideasvc.NewService(logger, ideas, requirements, txManager, activitySvc, notificationSvc)
	collabSvc := collabsvc.NewService(logger, comments, attachments, roadmaps, requirements, ideas, activitySvc, notificationSvc)
	analyticsSvc := analyticssvc.NewService(logger, analytics, activitySvc)
	exportSvc := exportsvc.NewService(logger, requirements, roadmaps)

	mux := rest.NewRouter(rest.Handlers{
		Auth:         rest.NewAuthHandler(authSvc, logger),
		Roadmap:      rest.NewRoadmapHandler(roadmapSvc, cfg.Pagination, logger),
		Requirement:  rest.NewRequirementHandler(requirementSvc, cfg.Pagination, logger),
		Idea:         rest.NewIdeaHandler(ideaSvc, cfg.Pagination, logger),
		Collab:       rest.NewCollabHandler(collabSvc, cfg.Uploads, logger),
		Activity:     rest.NewActivityHandler(activitySvc, cfg.Pagination, logger),
		Notification: rest.NewNotificationHandler(notificationSvc, logger),
		Analytics:    rest.NewAnalyticsHandler(analyticsSvc, logger),
		Export:       rest.NewExportHandler(exportSvc, logger),
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		UploadsDir:   cfg.Uploads.Dir,
	})

	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		chain = append(chain, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	chain = append(chain, middleware.Auth(jwtManager))
	handler := middleware.Chain(chain...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
