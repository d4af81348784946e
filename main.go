package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"medrisk/internal"
	"medrisk/internal/config"
	"medrisk/internal/container"
	"medrisk/internal/errors"
	"medrisk/internal/ops"
	"medrisk/ui"
)

func main() {
	// Load .env if present; environment variables win
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	logger := internal.NewDefaultLogger()

	c, err := container.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	// Persistence is optional: without DATABASE_URL the engine serves
	// assessments without an audit trail.
	if cfg.Database.URL != "" {
		db, err := initDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := c.InitWithDatabase(ctx, db); err != nil {
			cancel()
			log.Fatalf("Failed to initialize assessment store: %v", err)
		}
		cancel()
	} else {
		logger.Warn("DATABASE_URL not set, assessment persistence disabled")
	}

	// Ops server first so readiness probes observe the loading phase.
	if cfg.Ops.Enabled {
		opsServer := ops.NewServer(c.Engine, logger)
		go func() {
			if err := opsServer.ListenAndServe(":" + cfg.Ops.Port); err != nil {
				logger.Error("ops server stopped: %v", err)
			}
		}()
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := c.LoadModels(loadCtx); err != nil {
		log.Fatalf("Failed to load disease models: %v", err)
	}
	logger.Info("all disease models ready")

	server := ui.NewServer(c.Engine, c.Matcher, c.KnowledgeBase, c.AssessmentRepo, logger)
	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("API server stopped: %v", err)
	}
}

// initDatabase opens and verifies the PostgreSQL connection
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}
	return db, nil
}
