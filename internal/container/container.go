package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"medrisk/adapters/excel"
	"medrisk/adapters/postgres"
	"medrisk/domain/core"
	"medrisk/engine"
	"medrisk/engine/calibration"
	"medrisk/internal"
	"medrisk/internal/config"
	"medrisk/internal/dataset"
	"medrisk/internal/testkit"
	"medrisk/matcher"
	"medrisk/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure
	DB *sqlx.DB

	// Repositories
	AssessmentRepo ports.AssessmentRepository

	// Core components
	Engine        *engine.Engine
	Matcher       *matcher.Matcher
	KnowledgeBase *matcher.KnowledgeBase

	// Training
	TrainingSource ports.TrainingSource
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	configs := calibration.All()
	c.Engine = engine.New(configs)
	c.KnowledgeBase = matcher.DefaultKnowledgeBase()
	c.Matcher = matcher.New(c.KnowledgeBase)
	c.TrainingSource = buildTrainingSource(cfg, configs, logger)

	return c, nil
}

// InitWithDatabase initializes the optional assessment store
func (c *Container) InitWithDatabase(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	c.DB = db
	c.AssessmentRepo = postgres.NewAssessmentRepository(db)
	c.Logger.Info("assessment store initialized")
	return nil
}

// LoadModels ingests every model's training cohort.
func (c *Container) LoadModels(ctx context.Context) error {
	return c.Engine.Initialize(ctx, c.TrainingSource)
}

// buildTrainingSource selects workbook files when a dataset directory is
// configured, synthetic cohorts otherwise, and wraps either in the cleaning
// and profiling decorator.
func buildTrainingSource(cfg *config.Config, configs []engine.ModelConfig, logger *internal.Logger) ports.TrainingSource {
	features := make(map[core.DiseaseKey][]string, len(configs))
	for _, mc := range configs {
		features[mc.Key] = mc.FeatureOrder
	}

	var inner ports.TrainingSource
	if cfg.Data.DatasetDir != "" {
		logger.Info("loading training cohorts from %s", cfg.Data.DatasetDir)
		inner = excel.NewTrainingReader(cfg.Data.DatasetDir)
	} else {
		logger.Info("no dataset directory configured, generating synthetic cohorts (n=%d, seed=%d)",
			cfg.Data.CohortSize, cfg.Data.Seed)
		genCfg := testkit.DefaultCohortConfig()
		genCfg.CohortSize = cfg.Data.CohortSize
		genCfg.Seed = cfg.Data.Seed
		inner = testkit.NewCohortGenerator(genCfg, configs)
	}

	return dataset.NewProfilingSource(inner, features, logger)
}
