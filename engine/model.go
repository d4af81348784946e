package engine

import (
	"math"
	"sync/atomic"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
)

// RecommendationTiers holds the three fixed recommendation sets keyed only
// by risk score band. Selection is independent of the classifier verdict:
// a classifier-negative query can still carry the High tier when the rule
// score demands it, and vice versa.
type RecommendationTiers struct {
	Low      []string `json:"low"`
	Moderate []string `json:"moderate"`
	High     []string `json:"high"`
}

// ForScore selects the tier for a 0-100 risk score using the disease's
// boundaries.
func (t RecommendationTiers) ForScore(score int, b clinical.RiskBoundaries) []string {
	switch b.LevelFor(score) {
	case clinical.RiskHigh:
		return t.High
	case clinical.RiskModerate:
		return t.Moderate
	default:
		return t.Low
	}
}

// ModelConfig is the complete per-disease configuration value object:
// feature order, calibration ranges, threshold rules, score boundaries,
// recommendation tiers and k. All behavioral variation between diseases
// lives here as data; the engine itself is generic.
type ModelConfig struct {
	Key             core.DiseaseKey         `json:"key"`
	Name            string                  `json:"name"`
	FeatureOrder    []string                `json:"feature_order"`
	Ranges          []clinical.FeatureRange `json:"ranges"`
	Rules           []ThresholdRule         `json:"rules"`
	Boundaries      clinical.RiskBoundaries `json:"boundaries"`
	Tiers           RecommendationTiers     `json:"tiers"`
	ProfileFeatures []string                `json:"profile_features"`
	K               int                     `json:"k"`
}

// DiseaseModel composes normalizer, distance classifier, risk scorer and
// recommendation lookup over one disease's training set and calibration
// table. The training set is immutable once Ready, so concurrent Predict
// calls need no locking.
type DiseaseModel struct {
	cfg      ModelConfig
	state    atomic.Int32
	training []clinical.TrainingRecord // normalized features, set once before Ready
	rawCount int
}

// NewDiseaseModel creates an Uninitialized model for the given calibration.
func NewDiseaseModel(cfg ModelConfig) *DiseaseModel {
	return &DiseaseModel{cfg: cfg}
}

// Config returns the model's calibration table.
func (m *DiseaseModel) Config() ModelConfig {
	return m.cfg
}

// State returns the current lifecycle state.
func (m *DiseaseModel) State() clinical.ModelState {
	return clinical.ModelState(m.state.Load())
}

// TrainingSize returns the number of retained training records.
func (m *DiseaseModel) TrainingSize() int {
	if m.State() != clinical.StateReady {
		return 0
	}
	return len(m.training)
}

// BeginLoading transitions Uninitialized -> Loading. The lifecycle is
// one-way and set once at startup.
func (m *DiseaseModel) BeginLoading() error {
	if !m.state.CompareAndSwap(int32(clinical.StateUninitialized), int32(clinical.StateLoading)) {
		return core.NewNotReadyError(m.cfg.Name, m.State().String())
	}
	return nil
}

// CompleteLoading normalizes and stores the ingested records, then
// transitions Loading -> Ready. Ready with an empty training set is valid:
// queries route to the Insufficient Data sentinel, which is a normal
// result, not an error.
func (m *DiseaseModel) CompleteLoading(records []clinical.TrainingRecord) error {
	if m.State() != clinical.StateLoading {
		return core.NewNotReadyError(m.cfg.Name, m.State().String())
	}

	normalized := make([]clinical.TrainingRecord, 0, len(records))
	for _, rec := range records {
		if len(rec.Features) != len(m.cfg.FeatureOrder) || !rec.IsFinite() {
			continue
		}
		normalized = append(normalized, clinical.TrainingRecord{
			Features: NormalizeVector(rec.Features, m.cfg.Ranges),
			Label:    rec.Label,
		})
	}

	m.training = normalized
	m.rawCount = len(records)
	if !m.state.CompareAndSwap(int32(clinical.StateLoading), int32(clinical.StateReady)) {
		return core.NewNotReadyError(m.cfg.Name, m.State().String())
	}
	return nil
}

// validate rejects malformed query vectors. A failed request affects only
// itself: nothing here touches shared state.
func (m *DiseaseModel) validate(features []float64) error {
	if len(features) != len(m.cfg.FeatureOrder) {
		return core.NewVectorLengthError(m.cfg.Name, len(m.cfg.FeatureOrder), len(features))
	}
	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return core.NewNonFiniteError(m.cfg.Name, m.cfg.FeatureOrder[i])
		}
	}
	return nil
}

// featureMap pairs the fixed-order vector with its feature names for the
// rule scorer and profile snapshot.
func (m *DiseaseModel) featureMap(features []float64) map[string]float64 {
	named := make(map[string]float64, len(features))
	for i, name := range m.cfg.FeatureOrder {
		named[name] = features[i]
	}
	return named
}

// Predict runs the full per-query composition: validate -> normalize ->
// classify, with the rule scorer running independently on the raw vector,
// merged into one PredictionResult.
func (m *DiseaseModel) Predict(features []float64) (clinical.PredictionResult, error) {
	if state := m.State(); state != clinical.StateReady {
		return clinical.PredictionResult{}, core.NewNotReadyError(m.cfg.Name, state.String())
	}
	if err := m.validate(features); err != nil {
		return clinical.PredictionResult{}, err
	}

	named := m.featureMap(features)

	if len(m.training) == 0 {
		return m.insufficientDataResult(named), nil
	}

	verdict := Classify(m.training, NormalizeVector(features, m.cfg.Ranges), m.cfg.K)
	score, factors := ScoreRisk(named, m.cfg.Rules)

	return clinical.PredictionResult{
		Disease:         m.cfg.Name,
		Prediction:      verdict.Prediction,
		Confidence:      verdict.Confidence,
		RiskScore:       score,
		RiskLevel:       m.cfg.Boundaries.LevelFor(score),
		RiskFactors:     factors,
		Recommendations: m.cfg.Tiers.ForScore(score, m.cfg.Boundaries),
		PatientProfile:  ProfileSnapshot(named, m.cfg.ProfileFeatures),
	}, nil
}

// insufficientDataResult is the degraded sentinel for a Ready model with an
// empty training set. Well-formed, never an error.
func (m *DiseaseModel) insufficientDataResult(named map[string]float64) clinical.PredictionResult {
	return clinical.PredictionResult{
		Disease:         m.cfg.Name,
		Prediction:      0,
		Confidence:      50,
		RiskScore:       0,
		RiskLevel:       clinical.RiskUnknown,
		RiskFactors:     []string{"Insufficient training data for this condition"},
		Recommendations: insufficientDataRecommendations,
		PatientProfile:  ProfileSnapshot(named, m.cfg.ProfileFeatures),
	}
}

var insufficientDataRecommendations = []string{
	"Assessment could not be computed from reference data",
	"Consult a physician for an in-person evaluation",
	"Retry once the service has loaded its reference cohort",
}
