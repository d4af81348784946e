package engine

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
	"medrisk/ports"
)

// Engine holds the five disease models and routes queries to them.
// Models are registered at construction and loaded once at startup;
// after that the engine is read-only and safe for concurrent use.
type Engine struct {
	models map[core.DiseaseKey]*DiseaseModel
	order  []core.DiseaseKey
}

// New creates an engine with one Uninitialized model per calibration.
func New(configs []ModelConfig) *Engine {
	e := &Engine{models: make(map[core.DiseaseKey]*DiseaseModel, len(configs))}
	for _, cfg := range configs {
		e.models[cfg.Key] = NewDiseaseModel(cfg)
		e.order = append(e.order, cfg.Key)
	}
	return e
}

// Initialize ingests every model's training set concurrently. Readiness is
// tracked per model: a model that finishes loading serves queries even
// while a sibling is still ingesting, and a source error leaves only that
// model non-Ready.
func (e *Engine) Initialize(ctx context.Context, source ports.TrainingSource) error {
	// Plain group, no shared cancellation: one model's source failure must
	// not abort a sibling's in-flight ingestion.
	var g errgroup.Group

	for _, key := range e.order {
		model := e.models[key]
		g.Go(func() error {
			if err := model.BeginLoading(); err != nil {
				return err
			}
			records, err := source.Load(ctx, model.cfg.Key, len(model.cfg.FeatureOrder))
			if err != nil {
				return err
			}
			if err := model.CompleteLoading(records); err != nil {
				return err
			}
			log.Printf("[Engine] %s model ready (%d records, k=%d)",
				model.cfg.Name, model.TrainingSize(), model.cfg.K)
			return nil
		})
	}

	return g.Wait()
}

// Model resolves a disease key to its model.
func (e *Engine) Model(key core.DiseaseKey) (*DiseaseModel, error) {
	model, ok := e.models[key]
	if !ok {
		return nil, core.NewNotFoundError("disease", key.String())
	}
	return model, nil
}

// Predict runs one disease's full assessment on a fixed-order raw vector.
func (e *Engine) Predict(key core.DiseaseKey, features []float64) (clinical.PredictionResult, error) {
	model, err := e.Model(key)
	if err != nil {
		return clinical.PredictionResult{}, err
	}
	return model.Predict(features)
}

// EnsemblePredict runs one disease's ensemble assessment.
func (e *Engine) EnsemblePredict(key core.DiseaseKey, features []float64) (EnsembleVerdict, error) {
	model, err := e.Model(key)
	if err != nil {
		return EnsembleVerdict{}, err
	}
	return model.EnsemblePredict(features)
}

// ModelStatus is the per-model readiness view exposed by the status
// endpoints.
type ModelStatus struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	State        string   `json:"state"`
	TrainingSize int      `json:"training_size"`
	K            int      `json:"k"`
	Features     []string `json:"features"`
}

// Status reports every model in registration order.
func (e *Engine) Status() []ModelStatus {
	statuses := make([]ModelStatus, 0, len(e.order))
	for _, key := range e.order {
		model := e.models[key]
		statuses = append(statuses, ModelStatus{
			Key:          key.String(),
			Name:         model.cfg.Name,
			State:        model.State().String(),
			TrainingSize: model.TrainingSize(),
			K:            model.cfg.K,
			Features:     model.cfg.FeatureOrder,
		})
	}
	return statuses
}

// Ready reports whether every registered model reached Ready.
func (e *Engine) Ready() bool {
	for _, key := range e.order {
		if e.models[key].State() != clinical.StateReady {
			return false
		}
	}
	return true
}
