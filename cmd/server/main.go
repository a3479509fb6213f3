package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cartdesk-backend/internal/config"
	"cartdesk-backend/internal/db"
	"cartdesk-backend/internal/handler"
	"cartdesk-backend/internal/repository"
	"cartdesk-backend/internal/server"
	"cartdesk-backend/internal/service"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	if err := pg.EnsureSchema(ctx); err != nil {
		logger.Error("failed to ensure schema", "err", err)
		os.Exit(1)
	}

	// Firebase Auth (optional)
	var firebaseAuth *auth.Client
	if cfg.FirebaseProjectID != "" {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, firebaseOptions(cfg)...)
		if err != nil {
			logger.Error("failed to init firebase app", "err", err)
			os.Exit(1)
		}
		client, err := app.Auth(ctx)
		if err != nil {
			logger.Error("failed to init firebase auth", "err", err)
			os.Exit(1)
		}
		firebaseAuth = client
	}

	// repositories
	userRepo := repository.UserRepository{DB: pg}
	inventoryRepo := repository.InventoryRepository{DB: pg}
	eventRepo := repository.EventRepository{DB: pg}
	goalRepo := repository.GoalRepository{DB: pg}
	cashRepo := repository.CashSessionRepository{DB: pg}

	if err := inventoryRepo.SeedDefaults(ctx); err != nil {
		logger.Warn("inventory seed failed", "err", err)
	}

	// services
	authSvc := service.AuthService{Config: cfg, Users: userRepo, Logger: logger, FirebaseAuth: firebaseAuth}

	// handlers
	healthHandler := handler.HealthHandler{DB: pg}
	authHandler := handler.AuthHandler{Service: &authSvc}
	inventoryHandler := handler.InventoryHandler{Repo: inventoryRepo}
	eventHandler := handler.EventHandler{Repo: eventRepo}
	goalHandler := handler.GoalHandler{Repo: goalRepo}
	cashHandler := handler.CashHandler{Repo: cashRepo, Currency: cfg.DefaultCurrency}
	dashboardHandler := handler.DashboardHandler{Inventory: inventoryRepo, Events: eventRepo, Goals: goalRepo}
	homeHandler := handler.HomeHandler{}

	router := server.NewRouter(cfg, logger, healthHandler, authHandler, inventoryHandler, eventHandler, goalHandler, cashHandler, dashboardHandler, homeHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func firebaseOptions(cfg config.Config) []option.ClientOption {
	if cfg.FirebaseCredFile == "" {
		return nil
	}

	cred := cfg.FirebaseCredFile
	// Allow inline JSON or base64-encoded JSON in env to avoid writing a file.
	if strings.HasPrefix(strings.TrimSpace(cred), "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cred))}
	}
	if decoded, err := base64.StdEncoding.DecodeString(cred); err == nil && strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return []option.ClientOption{option.WithCredentialsJSON(decoded)}
	}

	return []option.ClientOption{option.WithCredentialsFile(cred)}
}
