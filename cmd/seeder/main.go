// Command seeder bootstraps a fresh installation: it creates the initial
// admin account and, optionally, a small set of demo entities to explore
// the workflow with. It is intended to be run offline, not as part of the
// main server.
//
// Flags:
//
//	--admin-email     admin account email (default admin@example.com)
//	--admin-password  admin account password (required)
//	--demo            also create a demo roadmap, requirement, and idea
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/activity"
	idearepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/idea"
	notificationrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/notification"
	requirementrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/requirement"
	roadmaprepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/roadmap"
	userrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/prodboard-backend/internal/app"
	"github.com/heartmarshall/prodboard-backend/internal/auth"
	"github.com/heartmarshall/prodboard-backend/internal/config"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
	activitysvc "github.com/heartmarshall/prodboard-backend/internal/service/activity"
	authsvc "github.com/heartmarshall/prodboard-backend/internal/service/auth"
	ideasvc "github.com/heartmarshall/prodboard-backend/internal/service/idea"
	notificationsvc "github.com/heartmarshall/prodboard-backend/internal/service/notification"
	requirementsvc "github.com/heartmarshall/prodboard-backend/internal/service/requirement"
	roadmapsvc "github.com/heartmarshall/prodboard-backend/internal/service/roadmap"
)

func main() {
	adminEmail := flag.String("admin-email", "admin@example.com", "admin account email")
	adminPassword := flag.String("admin-password", "", "admin account password (required)")
	demo := flag.Bool("demo", false, "also create a demo roadmap, requirement, and idea")
	flag.Parse()

	if *adminPassword == "" {
		log.Fatal("--admin-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database, logger); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	users := userrepo.New(pool)
	authSvc := authsvc.NewService(logger, users, jwtManager, cfg.Auth)

	_, err = authSvc.Register(ctx, authsvc.RegisterInput{
		Email:    *adminEmail,
		Name:     "Administrator",
		Password: *adminPassword,
		Role:     domain.RoleAdmin,
	})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		logger.Info("admin account already exists", slog.String("email", *adminEmail))
	case err != nil:
		logger.Error("create admin", slog.String("error", err.Error()))
		os.Exit(1)
	default:
		logger.Info("admin account created", slog.String("email", *adminEmail))
	}

	if !*demo {
		return
	}

	adminUser, err := users.GetByEmail(ctx, *adminEmail)
	if err != nil {
		logger.Error("load admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := seedDemo(ctx, logger, cfg, pool, adminUser.ID); err != nil {
		logger.Error("seed demo data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("demo data created")
}

// seedDemo creates one roadmap, one requirement linked to it, and one idea,
// going through the services so reference IDs, change logs, and activity
// records behave exactly as they do in the running server.
func seedDemo(ctx context.Context, logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, adminID uuid.UUID) error {
	activitySvc := activitysvc.NewService(logger, activityrepo.New(pool))
	notificationSvc := notificationsvc.NewService(logger, notificationrepo.New(pool), cfg.Notifications)

	roadmaps := roadmaprepo.New(pool)
	requirements := requirementrepo.New(pool)
	ideas := idearepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	roadmapSvc := roadmapsvc.NewService(logger, roadmaps, activitySvc, notificationSvc)
	requirementSvc := requirementsvc.NewService(logger, requirements, roadmaps, activitySvc, notificationSvc)
	ideaSvc := ideasvc.NewService(logger, ideas, requirements, txManager, activitySvc, notificationSvc)

	rm, err := roadmapSvc.Create(ctx, adminID, roadmapsvc.CreateInput{
		Name:           "Q4 Platform Launch",
		Timeframe:      "2026-Q4",
		StrategicTheme: "Expand the self-service platform",
		Dependencies:   []string{"billing migration"},
		RiskAssessment: "Dependent on the billing migration landing in Q3",
		SuccessMetrics: map[string]any{"activation_rate": 0.4},
	})
	if err != nil {
		return fmt.Errorf("demo roadmap: %w", err)
	}

	if _, err := requirementSvc.Create(ctx, adminID, requirementsvc.CreateInput{
		Type:               domain.RequirementTypeFeature,
		UserStory:          "As a new customer, I want to onboard without contacting support",
		AcceptanceCriteria: "Signup to first project in under five minutes",
		Priority:           domain.PriorityHigh,
		RoadmapID:          &rm.ID,
	}); err != nil {
		return fmt.Errorf("demo requirement: %w", err)
	}

	if _, err := ideaSvc.Submit(ctx, adminID, ideasvc.SubmitInput{
		Name:             "In-app usage reports",
		ProblemStatement: "Customers ask support for usage numbers every month",
		TargetCustomer:   "team administrators",
	}); err != nil {
		return fmt.Errorf("demo idea: %w", err)
	}

	return nil
}
