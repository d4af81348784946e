package engine

import (
	"context"
	"errors"
	"testing"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
)

type stubSource struct {
	records map[core.DiseaseKey][]clinical.TrainingRecord
	failFor core.DiseaseKey
}

func (s *stubSource) Load(ctx context.Context, disease core.DiseaseKey, featureCount int) ([]clinical.TrainingRecord, error) {
	if disease == s.failFor {
		return nil, errors.New("ingestion failed")
	}
	return s.records[disease], nil
}

func twoModelEngine() *Engine {
	cfgA := testConfig()
	cfgA.Key = "alpha"
	cfgB := testConfig()
	cfgB.Key = "beta"
	cfgB.Name = "Beta Condition"
	return New([]ModelConfig{cfgA, cfgB})
}

func TestInitializeLoadsEveryModel(t *testing.T) {
	eng := twoModelEngine()
	source := &stubSource{records: map[core.DiseaseKey][]clinical.TrainingRecord{
		"alpha": {rec(1, 9, 9), rec(0, 1, 1)},
		"beta":  {rec(1, 8, 8), rec(0, 2, 2)},
	}}

	if err := eng.Initialize(context.Background(), source); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !eng.Ready() {
		t.Error("engine not ready")
	}

	statuses := eng.Status()
	if len(statuses) != 2 {
		t.Fatalf("statuses = %d, want 2", len(statuses))
	}
	if statuses[0].Key != "alpha" || statuses[1].Key != "beta" {
		t.Errorf("status order = %s, %s, want registration order", statuses[0].Key, statuses[1].Key)
	}
	for _, st := range statuses {
		if st.State != "ready" || st.TrainingSize != 2 {
			t.Errorf("status %+v, want ready with 2 records", st)
		}
	}
}

func TestInitializeSourceFailureLeavesOnlyThatModelNotReady(t *testing.T) {
	eng := twoModelEngine()
	source := &stubSource{
		records: map[core.DiseaseKey][]clinical.TrainingRecord{
			"alpha": {rec(1, 9, 9), rec(0, 1, 1)},
		},
		failFor: "beta",
	}

	if err := eng.Initialize(context.Background(), source); err == nil {
		t.Fatal("expected ingestion error")
	}
	if eng.Ready() {
		t.Error("engine must not report ready with a failed model")
	}

	alpha, err := eng.Model("alpha")
	if err != nil {
		t.Fatalf("Model(alpha): %v", err)
	}
	if alpha.State() != clinical.StateReady {
		t.Errorf("alpha state = %v, want ready despite sibling failure", alpha.State())
	}

	if _, err := eng.Predict("beta", []float64{1, 2}); !core.IsNotReadyError(err) {
		t.Errorf("beta predict err = %v, want model-not-ready", err)
	}
}

// ctxCheckingSource honors context cancellation and forces the alpha load
// to start only after beta's failure, so any shared cancellation between
// sibling ingestions would surface here.
type ctxCheckingSource struct {
	betaFailed chan struct{}
}

func (s *ctxCheckingSource) Load(ctx context.Context, disease core.DiseaseKey, featureCount int) ([]clinical.TrainingRecord, error) {
	if disease == "beta" {
		close(s.betaFailed)
		return nil, errors.New("ingestion failed")
	}
	<-s.betaFailed
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []clinical.TrainingRecord{rec(1, 9, 9), rec(0, 1, 1)}, nil
}

func TestInitializeDoesNotCancelSiblingIngestion(t *testing.T) {
	eng := twoModelEngine()
	source := &ctxCheckingSource{betaFailed: make(chan struct{})}

	if err := eng.Initialize(context.Background(), source); err == nil {
		t.Fatal("expected ingestion error from beta")
	}

	alpha, err := eng.Model("alpha")
	if err != nil {
		t.Fatalf("Model(alpha): %v", err)
	}
	if alpha.State() != clinical.StateReady {
		t.Errorf("alpha state = %v, want ready: sibling failure must not cancel its load", alpha.State())
	}
}

func TestPredictUnknownDiseaseRouting(t *testing.T) {
	eng := twoModelEngine()
	if _, err := eng.Predict("gamma", []float64{1, 2}); !core.IsNotFoundError(err) {
		t.Errorf("err = %v, want not-found", err)
	}
	if _, err := eng.EnsemblePredict("gamma", []float64{1, 2}); !core.IsNotFoundError(err) {
		t.Errorf("ensemble err = %v, want not-found", err)
	}
}
