package main // Entry point package

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/mehrsa/eventms/internal/config"
	"github.com/mehrsa/eventms/internal/database"
	"github.com/mehrsa/eventms/internal/handler"
	"github.com/mehrsa/eventms/internal/middleware"
	"github.com/mehrsa/eventms/internal/queue"
	"github.com/mehrsa/eventms/internal/repository"
	"github.com/mehrsa/eventms/internal/router"
	queue_publisher "github.com/mehrsa/eventms/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		logrus.WithError(err).Fatal("schema bootstrap failed")
	}

	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)
	tickets := repository.NewTicketRepo(db)
	stats := repository.NewStatsRepo(db)

	ensureAdmin(ctx, users, cfg)

	e := echo.New()
	e.HideBanner = true

	// Distributed rate limiting; skipped when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable; rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	gate := middleware.RequireAdmin(cfg.JWTSecret, users)
	router.Register(e,
		handler.NewAuthHandler(cfg, users),
		handler.NewEventHandler(events, cfg.UploadDir),
		handler.NewTicketHandler(tickets, queue_publisher.PublishTicketPurchased),
		handler.NewAdminHandler(users, events, stats),
		gate, cfg.FrontendURL, cfg.UploadDir)

	// Purchase log consumer runs for the lifetime of the process and
	// reconnects on broker failures.
	go func() {
		if err := queue.StartPurchaseConsumer(); err != nil {
			logrus.WithError(err).Warn("purchase consumer stopped")
		}
	}()

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

// ensureAdmin creates the bootstrap admin account when it does not exist
// yet. Failures are logged but do not prevent startup; the account can be
// created on a later restart.
func ensureAdmin(ctx context.Context, users *repository.UserRepo, cfg config.Config) {
	if _, err := users.GetByEmail(ctx, cfg.AdminEmail); err == nil {
		return
	} else if err != repository.ErrUserNotFound {
		logrus.WithError(err).Warn("admin bootstrap lookup failed")
		return
	}
	if _, err := users.Create(ctx, "Admin", cfg.AdminEmail, cfg.AdminPassword, true, cfg.BcryptCost); err != nil {
		logrus.WithError(err).Warn("admin bootstrap create failed")
		return
	}
	logrus.WithField("email", cfg.AdminEmail).Info("admin account created")
}
