package ports

import (
	"context"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
)

// TrainingSource supplies the already-parsed labeled training set for one
// disease model. Implementations own file formats and parsing; the engine
// only ever sees clean records. Rows with non-finite features are dropped
// during ingestion, which is not an ingestion failure.
type TrainingSource interface {
	Load(ctx context.Context, disease core.DiseaseKey, featureCount int) ([]clinical.TrainingRecord, error)
}
