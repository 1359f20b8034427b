package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"health-info-bot/config"
	_ "health-info-bot/docs" // Swagger docs
	dfDelivery "health-info-bot/internal/bot/delivery/dialogflow"
	waDelivery "health-info-bot/internal/bot/delivery/whatsapp"
	"health-info-bot/internal/bot/usecase"
	"health-info-bot/internal/httpserver"
	"health-info-bot/internal/memory/repository"
	"health-info-bot/internal/memory/repository/inmem"
	"health-info-bot/internal/memory/repository/postgre"
	"health-info-bot/pkg/dialogflow"
	"health-info-bot/pkg/langdetect"
	"health-info-bot/pkg/log"
	"health-info-bot/pkg/mymemory"
	"health-info-bot/pkg/whoint"
)

// @title       Health Info Bot API
// @description Conversational health information: WHO fact sheets, outbreak news, vaccination schedules, in 11 Indian languages.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Health Info Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. User memory store: postgres when configured, in-memory otherwise.
	var memoryRepo repository.Repository = inmem.New()
	if cfg.Database.URL != "" {
		db, dbErr := sql.Open("postgres", cfg.Database.URL)
		if dbErr == nil {
			dbErr = db.PingContext(ctx)
		}
		if dbErr == nil {
			dbErr = postgre.Migrate(ctx, db)
		}
		if dbErr != nil {
			logger.Warnf(ctx, "Postgres unavailable, using in-memory user memory: %v", dbErr)
		} else {
			memoryRepo = postgre.New(db, logger)
			logger.Info(ctx, "✅ Postgres user memory initialized")
		}
	} else {
		logger.Warn(ctx, "DATABASE_URL not set, user memory will not survive restarts")
	}

	// 4. External clients
	whoClient := whoint.NewClient()
	if cfg.WHO.SlugsURL != "" {
		whoClient.SetSlugsURL(cfg.WHO.SlugsURL)
	}

	translator := mymemory.NewClient(cfg.MyMemory.Email)
	detector := langdetect.New()

	nluClient, err := dialogflow.NewClient(ctx, cfg.Dialogflow.ProjectID, []byte(cfg.Dialogflow.CredentialsJSON))
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Dialogflow client: %v", err)
		return
	}

	// 5. Bot core and webhook handlers
	botUC := usecase.New(logger, memoryRepo, whoClient, translator, detector, nluClient)

	// 6. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		DialogflowHandler: dfDelivery.New(logger, botUC),
		WhatsAppHandler:   waDelivery.New(logger, botUC),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
