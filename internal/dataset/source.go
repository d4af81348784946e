package dataset

import (
	"context"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
	"medrisk/internal"
	"medrisk/ports"
)

// ProfilingSource wraps a TrainingSource, cleaning each cohort and logging
// its statistical profile before handing it to the engine.
type ProfilingSource struct {
	inner    ports.TrainingSource
	features map[core.DiseaseKey][]string
	logger   *internal.Logger
}

// NewProfilingSource decorates inner with cleaning and profiling. features
// maps each disease to its feature order, used for summary labels.
func NewProfilingSource(inner ports.TrainingSource, features map[core.DiseaseKey][]string, logger *internal.Logger) *ProfilingSource {
	return &ProfilingSource{inner: inner, features: features, logger: logger}
}

// Load implements ports.TrainingSource.
func (s *ProfilingSource) Load(ctx context.Context, disease core.DiseaseKey, featureCount int) ([]clinical.TrainingRecord, error) {
	records, err := s.inner.Load(ctx, disease, featureCount)
	if err != nil {
		return nil, err
	}

	cleaned, dropped := Clean(records, featureCount)
	if dropped > 0 {
		s.logger.Warn("%s cohort: dropped %d malformed rows", disease, dropped)
	}

	profile, err := Profile(cleaned, s.features[disease])
	if err != nil {
		s.logger.Warn("%s cohort: profiling failed: %v", disease, err)
		return cleaned, nil
	}
	s.logger.Info("%s cohort: %d rows, %d positive", disease, profile.Rows, profile.Positives)
	for _, f := range profile.Features {
		s.logger.Debug("%s %s: min=%.2f max=%.2f mean=%.2f median=%.2f sd=%.2f",
			disease, f.Name, f.Min, f.Max, f.Mean, f.Median, f.StdDev)
	}
	return cleaned, nil
}
