package ports

import (
	"context"

	"medrisk/models"
)

// AssessmentRepository persists computed assessments for auditing.
// Optional: the engine runs fully without one configured.
type AssessmentRepository interface {
	Save(ctx context.Context, assessment *models.Assessment) error
	ListRecent(ctx context.Context, limit int) ([]models.Assessment, error)
}
