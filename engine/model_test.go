package engine

import (
	"math"
	"testing"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
)

func testConfig() ModelConfig {
	return ModelConfig{
		Key:          "testcond",
		Name:         "Test Condition",
		FeatureOrder: []string{"a", "b"},
		Ranges:       []clinical.FeatureRange{{Min: 0, Max: 10}, {Min: 0, Max: 10}},
		Rules: []ThresholdRule{
			{Feature: "a", Bands: []ScoreBand{{AtLeast: Bound(5), Points: 40, Factor: "High A"}}},
		},
		Boundaries: clinical.RiskBoundaries{Moderate: 30, High: 60},
		Tiers: RecommendationTiers{
			Low:      []string{"low tier"},
			Moderate: []string{"moderate tier"},
			High:     []string{"high tier"},
		},
		ProfileFeatures: []string{"a"},
		K:               3,
	}
}

func readyModel(t *testing.T, records []clinical.TrainingRecord) *DiseaseModel {
	t.Helper()
	m := NewDiseaseModel(testConfig())
	if err := m.BeginLoading(); err != nil {
		t.Fatalf("BeginLoading: %v", err)
	}
	if err := m.CompleteLoading(records); err != nil {
		t.Fatalf("CompleteLoading: %v", err)
	}
	return m
}

func TestModelLifecycleIsOneWay(t *testing.T) {
	m := NewDiseaseModel(testConfig())
	if m.State() != clinical.StateUninitialized {
		t.Fatalf("initial state = %v, want uninitialized", m.State())
	}

	if err := m.BeginLoading(); err != nil {
		t.Fatalf("BeginLoading: %v", err)
	}
	if err := m.BeginLoading(); err == nil {
		t.Error("second BeginLoading should fail")
	}

	if err := m.CompleteLoading(nil); err != nil {
		t.Fatalf("CompleteLoading: %v", err)
	}
	if m.State() != clinical.StateReady {
		t.Errorf("state = %v, want ready", m.State())
	}
	if err := m.CompleteLoading(nil); err == nil {
		t.Error("CompleteLoading after Ready should fail")
	}
}

func TestPredictBeforeReadyFailsFast(t *testing.T) {
	m := NewDiseaseModel(testConfig())
	_, err := m.Predict([]float64{1, 2})
	if !core.IsNotReadyError(err) {
		t.Errorf("err = %v, want model-not-ready", err)
	}

	if err := m.BeginLoading(); err != nil {
		t.Fatalf("BeginLoading: %v", err)
	}
	_, err = m.Predict([]float64{1, 2})
	if !core.IsNotReadyError(err) {
		t.Errorf("err during loading = %v, want model-not-ready", err)
	}
}

func TestPredictRejectsMalformedVectors(t *testing.T) {
	m := readyModel(t, []clinical.TrainingRecord{rec(1, 9, 9), rec(0, 1, 1)})

	_, err := m.Predict([]float64{1})
	if !core.IsMalformedInputError(err) {
		t.Errorf("short vector err = %v, want malformed input", err)
	}

	_, err = m.Predict([]float64{math.NaN(), 2})
	if !core.IsMalformedInputError(err) {
		t.Errorf("NaN err = %v, want malformed input", err)
	}

	_, err = m.Predict([]float64{math.Inf(1), 2})
	if !core.IsMalformedInputError(err) {
		t.Errorf("Inf err = %v, want malformed input", err)
	}
}

func TestPredictMergesClassifierAndRules(t *testing.T) {
	m := readyModel(t, []clinical.TrainingRecord{
		rec(1, 9, 9), rec(1, 8, 8), rec(1, 9, 8),
		rec(0, 1, 1), rec(0, 2, 2), rec(0, 1, 2),
	})

	result, err := m.Predict([]float64{9, 9})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if result.Disease != "Test Condition" {
		t.Errorf("disease = %q", result.Disease)
	}
	if result.Prediction != 1 {
		t.Errorf("prediction = %d, want 1", result.Prediction)
	}
	if result.Confidence != 100 {
		t.Errorf("confidence = %d, want 100", result.Confidence)
	}
	if result.RiskScore != 40 {
		t.Errorf("risk score = %d, want 40", result.RiskScore)
	}
	if result.RiskLevel != clinical.RiskModerate {
		t.Errorf("risk level = %v, want Moderate", result.RiskLevel)
	}
	if len(result.RiskFactors) != 1 || result.RiskFactors[0] != "High A" {
		t.Errorf("risk factors = %v", result.RiskFactors)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0] != "moderate tier" {
		t.Errorf("recommendations = %v, want moderate tier", result.Recommendations)
	}
	if result.PatientProfile["a"] != 9 {
		t.Errorf("patient profile = %v", result.PatientProfile)
	}
}

// The recommendation tier follows the rule score alone: a classifier-negative
// query still carries the tier its score demands.
func TestRecommendationsKeyedByScoreNotPrediction(t *testing.T) {
	m := readyModel(t, []clinical.TrainingRecord{
		rec(0, 9, 1), rec(0, 8, 1), rec(0, 9, 2),
	})

	result, err := m.Predict([]float64{9, 1})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if result.Prediction != 0 {
		t.Fatalf("prediction = %d, want 0", result.Prediction)
	}
	if result.RiskScore != 40 || result.Recommendations[0] != "moderate tier" {
		t.Errorf("score=%d recs=%v, want score-keyed moderate tier", result.RiskScore, result.Recommendations)
	}
}

func TestPredictInsufficientDataSentinel(t *testing.T) {
	m := readyModel(t, nil)

	result, err := m.Predict([]float64{9, 9})
	if err != nil {
		t.Fatalf("sentinel must not be an error, got %v", err)
	}
	if result.Prediction != 0 || result.Confidence != 50 || result.RiskScore != 0 {
		t.Errorf("sentinel = %+v, want prediction 0, confidence 50, score 0", result)
	}
	if result.RiskLevel != clinical.RiskUnknown {
		t.Errorf("risk level = %v, want Unknown", result.RiskLevel)
	}
	if len(result.RiskFactors) == 0 || len(result.Recommendations) == 0 {
		t.Error("sentinel must carry placeholder factors and recommendations")
	}
}

func TestCompleteLoadingDropsMalformedRecords(t *testing.T) {
	m := NewDiseaseModel(testConfig())
	if err := m.BeginLoading(); err != nil {
		t.Fatalf("BeginLoading: %v", err)
	}
	records := []clinical.TrainingRecord{
		rec(1, 9, 9),
		rec(0, 1),              // wrong length
		rec(1, math.NaN(), 2),  // non-finite
		rec(0, 2, math.Inf(1)), // non-finite
		rec(0, 1, 1),
	}
	if err := m.CompleteLoading(records); err != nil {
		t.Fatalf("CompleteLoading: %v", err)
	}
	if m.TrainingSize() != 2 {
		t.Errorf("training size = %d, want 2", m.TrainingSize())
	}
}
