package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/simplify-dev/simplify/db"
	"github.com/simplify-dev/simplify/internal/auth"
	"github.com/simplify-dev/simplify/internal/config"
	"github.com/simplify-dev/simplify/internal/handlers"
	"github.com/simplify-dev/simplify/internal/router"
	"github.com/simplify-dev/simplify/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.Migrate(conn); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	if err := db.Seed(conn); err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		logger.Fatal("Failed to initialize token issuer", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	identity := services.NewIdentity(conn, tokens, logger)
	projects := services.NewProjects(conn, logger)
	engagement := services.NewEngagement(conn, logger)
	submissions := services.NewSubmissions(conn, logger)
	catalog := services.NewCatalog(conn, logger)

	notifier := services.NewNotifier(conn, services.MailConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.AdminEmail,
		Password: cfg.AdminEmailPass,
		Admin:    cfg.AdminEmail,
	}, logger)
	notifier.Start(ctx)
	defer notifier.Stop()

	r := router.New(router.Deps{
		Identity:       identity,
		Auth:           handlers.NewAuthHandler(identity, logger),
		Org:            handlers.NewOrganizationHandler(projects, engagement, submissions, notifier, logger),
		Student:        handlers.NewStudentHandler(projects, engagement, submissions, catalog, notifier, logger),
		Admin:          handlers.NewAdminHandler(catalog, logger),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
