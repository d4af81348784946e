package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"medrisk/models"
	"medrisk/ports"
)

// AssessmentRepositoryImpl implements AssessmentRepository for PostgreSQL
type AssessmentRepositoryImpl struct {
	db *sqlx.DB
}

// NewAssessmentRepository creates a new PostgreSQL assessment repository
func NewAssessmentRepository(db *sqlx.DB) ports.AssessmentRepository {
	return &AssessmentRepositoryImpl{db: db}
}

// EnsureSchema creates the assessments table if it does not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS assessments (
			id UUID PRIMARY KEY,
			disease TEXT NOT NULL,
			kind TEXT NOT NULL,
			request JSONB NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments (created_at DESC)
	`)
	return err
}

// Save persists one completed assessment.
func (r *AssessmentRepositoryImpl) Save(ctx context.Context, a *models.Assessment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO assessments (id, disease, kind, request, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.Disease, a.Kind, a.Request, a.Result, a.CreatedAt)
	return err
}

// ListRecent returns the most recent assessments, newest first.
func (r *AssessmentRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]models.Assessment, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryxContext(ctx, `
		SELECT id, disease, kind, request, result, created_at
		FROM assessments
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []models.Assessment
	for rows.Next() {
		var a models.Assessment
		if err := rows.StructScan(&a); err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}

	return assessments, rows.Err()
}
