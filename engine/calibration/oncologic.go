package calibration

import (
	"medrisk/domain/clinical"
	"medrisk/engine"
)

// Oncologic returns the breast tumor malignancy calibration over the ten
// mean cell-nucleus morphology measurements of a fine-needle aspirate.
func Oncologic() engine.ModelConfig {
	return engine.ModelConfig{
		Key:  KeyOncologic,
		Name: "Breast Cancer (Malignancy)",
		FeatureOrder: []string{
			"radius_mean", "texture_mean", "perimeter_mean", "area_mean",
			"smoothness_mean", "compactness_mean", "concavity_mean",
			"concave_points_mean", "symmetry_mean", "fractal_dimension_mean",
		},
		Ranges: []clinical.FeatureRange{
			{Min: 6.98, Max: 28.11},  // radius mean
			{Min: 9.71, Max: 39.28},  // texture mean
			{Min: 43.8, Max: 188.5},  // perimeter mean
			{Min: 143.5, Max: 2501},  // area mean
			{Min: 0.05, Max: 0.16},   // smoothness mean
			{Min: 0.02, Max: 0.35},   // compactness mean
			{Min: 0, Max: 0.43},      // concavity mean
			{Min: 0, Max: 0.2},       // concave points mean
			{Min: 0.1, Max: 0.3},     // symmetry mean
			{Min: 0.05, Max: 0.1},    // fractal dimension mean
		},
		Rules: []engine.ThresholdRule{
			{Feature: "radius_mean", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(17.5), Points: 25, Factor: "Large mean nuclear radius"},
				{AtLeast: engine.Bound(15), Points: 15, Factor: "Enlarged mean nuclear radius"},
			}},
			{Feature: "concave_points_mean", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(0.08), Points: 25, Factor: "High concave point density"},
				{AtLeast: engine.Bound(0.05), Points: 15, Factor: "Elevated concave point density"},
			}},
			{Feature: "concavity_mean", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(0.2), Points: 20, Factor: "Pronounced contour concavity"},
				{AtLeast: engine.Bound(0.1), Points: 10, Factor: "Elevated contour concavity"},
			}},
			{Feature: "area_mean", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(1000), Points: 15, Factor: "Large mean nuclear area"},
				{AtLeast: engine.Bound(700), Points: 10, Factor: "Enlarged mean nuclear area"},
			}},
			{Feature: "texture_mean", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(25), Points: 15, Factor: "High nuclear texture variance"},
				{AtLeast: engine.Bound(20), Points: 8, Factor: "Elevated nuclear texture variance"},
			}},
		},
		Boundaries: clinical.RiskBoundaries{Moderate: 45, High: 70},
		Tiers: engine.RecommendationTiers{
			Low: []string{
				"Continue routine screening at the recommended interval",
				"Perform regular self-examination",
			},
			Moderate: []string{
				"Schedule a follow-up imaging study within one month",
				"Discuss the findings with your physician",
				"Consider a repeat fine-needle aspirate",
			},
			High: []string{
				"Consult an oncologist promptly",
				"Request a biopsy for histopathological confirmation",
				"Schedule staging imaging as directed by your care team",
			},
		},
		ProfileFeatures: []string{"radius_mean", "area_mean", "concavity_mean", "concave_points_mean"},
		K:               7,
	}
}
