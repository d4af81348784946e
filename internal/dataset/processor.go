package dataset

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"medrisk/domain/clinical"
)

// FeatureSummary holds descriptive statistics for one feature column of a
// training cohort, computed over the retained rows only.
type FeatureSummary struct {
	Name   string  `json:"name"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// CohortProfile describes an ingested training cohort: row counts, class
// balance and per-feature statistics. Logged at startup for every model.
type CohortProfile struct {
	Rows      int              `json:"rows"`
	Dropped   int              `json:"dropped"`
	Positives int              `json:"positives"`
	Features  []FeatureSummary `json:"features"`
}

// Clean drops records with the wrong vector length or non-finite values.
// Returns the retained rows and the number dropped.
func Clean(records []clinical.TrainingRecord, featureCount int) ([]clinical.TrainingRecord, int) {
	kept := make([]clinical.TrainingRecord, 0, len(records))
	for _, rec := range records {
		if len(rec.Features) != featureCount || !rec.IsFinite() {
			continue
		}
		kept = append(kept, rec)
	}
	return kept, len(records) - len(kept)
}

// Profile computes the cohort profile for a cleaned training set.
func Profile(records []clinical.TrainingRecord, featureOrder []string) (CohortProfile, error) {
	profile := CohortProfile{Rows: len(records)}
	for _, rec := range records {
		if rec.Label == 1 {
			profile.Positives++
		}
	}
	if len(records) == 0 {
		return profile, nil
	}

	columns := make([][]float64, len(featureOrder))
	for i := range columns {
		columns[i] = make([]float64, len(records))
	}
	for r, rec := range records {
		for c, v := range rec.Features {
			if c >= len(columns) {
				break
			}
			columns[c][r] = v
		}
	}

	for i, name := range featureOrder {
		summary, err := summarize(name, columns[i])
		if err != nil {
			return CohortProfile{}, fmt.Errorf("feature %s: %w", name, err)
		}
		profile.Features = append(profile.Features, summary)
	}
	return profile, nil
}

func summarize(name string, values []float64) (FeatureSummary, error) {
	min, err := stats.Min(values)
	if err != nil {
		return FeatureSummary{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return FeatureSummary{}, err
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return FeatureSummary{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return FeatureSummary{}, err
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return FeatureSummary{}, err
	}
	return FeatureSummary{Name: name, Min: min, Max: max, Mean: mean, Median: median, StdDev: stdDev}, nil
}
