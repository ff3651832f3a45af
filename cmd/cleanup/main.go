// Command cleanup removes read notifications older than the configured
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/prodboard-backend/internal/adapter/postgres"
	notificationrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/prodboard-backend/internal/app"
	"github.com/heartmarshall/prodboard-backend/internal/config"
	notificationsvc "github.com/heartmarshall/prodboard-backend/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := notificationsvc.NewService(logger, notificationrepo.New(pool), cfg.Notifications)

	pruned, err := svc.Prune(ctx)
	if err != nil {
		logger.Error("prune failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.Notifications.RetentionDays),
		)
		os.Exit(1)
	}

	logger.Info("prune completed",
		slog.Int("pruned", pruned),
		slog.Int("retention_days", cfg.Notifications.RetentionDays),
	)
}
