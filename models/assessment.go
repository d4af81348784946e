package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AssessmentKind distinguishes the request path that produced a record.
type AssessmentKind string

const (
	KindPrediction AssessmentKind = "prediction"
	KindEnsemble   AssessmentKind = "ensemble"
	KindSymptoms   AssessmentKind = "symptoms"
)

// Assessment is one persisted audit record of a computed result. Written
// best-effort after the response is produced; never read inside the scored
// request path.
type Assessment struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Disease   string          `db:"disease" json:"disease"`
	Kind      AssessmentKind  `db:"kind" json:"kind"`
	Request   json.RawMessage `db:"request" json:"request"`
	Result    json.RawMessage `db:"result" json:"result"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
