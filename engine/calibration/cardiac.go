package calibration

import (
	"medrisk/domain/clinical"
	"medrisk/engine"
)

// Cardiac returns the coronary heart disease calibration. Feature order
// follows the standard cardiology screening vector.
func Cardiac() engine.ModelConfig {
	return engine.ModelConfig{
		Key:  KeyCardiac,
		Name: "Coronary Heart Disease",
		FeatureOrder: []string{
			"age", "sex", "chest_pain_type", "resting_bp", "cholesterol",
			"fasting_bs", "rest_ecg", "max_heart_rate", "exercise_angina", "oldpeak",
		},
		Ranges: []clinical.FeatureRange{
			{Min: 29, Max: 77},   // age
			{Min: 0, Max: 1},     // sex (1 = male)
			{Min: 0, Max: 3},     // chest pain type
			{Min: 94, Max: 200},  // resting systolic BP, mmHg
			{Min: 126, Max: 564}, // serum cholesterol, mg/dL
			{Min: 0, Max: 1},     // fasting blood sugar > 120 mg/dL
			{Min: 0, Max: 2},     // resting ECG result
			{Min: 71, Max: 202},  // max heart rate achieved
			{Min: 0, Max: 1},     // exercise-induced angina
			{Min: 0, Max: 6.2},   // ST depression (oldpeak)
		},
		Rules: []engine.ThresholdRule{
			{Feature: "resting_bp", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(140), Points: 25, Factor: "Stage 2 hypertension (systolic 140 or above)"},
				{AtLeast: engine.Bound(130), Points: 15, Factor: "Stage 1 hypertension (systolic 130-139)"},
			}},
			{Feature: "cholesterol", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(240), Points: 25, Factor: "High total cholesterol (240 or above)"},
				{AtLeast: engine.Bound(200), Points: 10, Factor: "Borderline high cholesterol (200-239)"},
			}},
			{Feature: "age", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(60), Points: 20, Factor: "Age 60 or older"},
				{AtLeast: engine.Bound(45), Points: 10, Factor: "Age 45-59"},
			}},
			{Feature: "max_heart_rate", Bands: []engine.ScoreBand{
				{LessThan: engine.Bound(100), Points: 10, Factor: "Low maximum heart rate under exertion"},
			}},
			{Feature: "exercise_angina", Bands: []engine.ScoreBand{
				{Equals: engine.Bound(1), Points: 15, Factor: "Exercise-induced angina"},
			}},
			{Feature: "oldpeak", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(2), Points: 10, Factor: "Significant exercise ST depression"},
			}},
			{Feature: "fasting_bs", Bands: []engine.ScoreBand{
				{Equals: engine.Bound(1), Points: 10, Factor: "Fasting blood sugar above 120 mg/dL"},
			}},
		},
		Boundaries: clinical.RiskBoundaries{Moderate: 35, High: 65},
		Tiers: engine.RecommendationTiers{
			Low: []string{
				"Keep up regular cardiovascular exercise",
				"Recheck blood pressure and lipids annually",
			},
			Moderate: []string{
				"Schedule a lipid panel and blood pressure review",
				"Adopt a low-sodium, low-saturated-fat diet",
				"Discuss cardiovascular risk with your physician",
			},
			High: []string{
				"Consult a cardiologist promptly",
				"Request an ECG and stress test",
				"Monitor blood pressure daily",
				"Avoid strenuous exertion until cleared by a physician",
			},
		},
		ProfileFeatures: []string{"resting_bp", "cholesterol", "max_heart_rate", "age"},
		K:               7,
	}
}
