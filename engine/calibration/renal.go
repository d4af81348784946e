package calibration

import (
	"medrisk/domain/clinical"
	"medrisk/engine"
)

// Renal returns the chronic kidney disease calibration over the numeric
// subset of the standard nephrology screening panel.
func Renal() engine.ModelConfig {
	return engine.ModelConfig{
		Key:  KeyRenal,
		Name: "Chronic Kidney Disease",
		FeatureOrder: []string{
			"blood_pressure", "specific_gravity", "albumin", "blood_glucose",
			"blood_urea", "serum_creatinine", "sodium", "potassium", "hemoglobin",
		},
		Ranges: []clinical.FeatureRange{
			{Min: 50, Max: 180},      // blood pressure, mmHg
			{Min: 1.005, Max: 1.025}, // urine specific gravity
			{Min: 0, Max: 5},         // urine albumin grade
			{Min: 22, Max: 490},      // blood glucose random, mg/dL
			{Min: 1.5, Max: 391},     // blood urea, mg/dL
			{Min: 0.4, Max: 76},      // serum creatinine, mg/dL
			{Min: 4.5, Max: 163},     // sodium, mEq/L
			{Min: 2.5, Max: 47},      // potassium, mEq/L
			{Min: 3.1, Max: 17.8},    // hemoglobin, g/dL
		},
		Rules: []engine.ThresholdRule{
			{Feature: "serum_creatinine", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(5), Points: 35, Factor: "Severely elevated serum creatinine"},
				{AtLeast: engine.Bound(1.4), Points: 25, Factor: "Elevated serum creatinine"},
			}},
			{Feature: "blood_urea", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(100), Points: 25, Factor: "Severely elevated blood urea"},
				{AtLeast: engine.Bound(50), Points: 15, Factor: "Elevated blood urea"},
			}},
			{Feature: "hemoglobin", Bands: []engine.ScoreBand{
				{LessThan: engine.Bound(8), Points: 20, Factor: "Severe anemia (hemoglobin below 8)"},
				{LessThan: engine.Bound(11), Points: 10, Factor: "Anemia (hemoglobin below 11)"},
			}},
			{Feature: "albumin", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(3), Points: 20, Factor: "Heavy albuminuria"},
				{AtLeast: engine.Bound(1), Points: 10, Factor: "Albumin present in urine"},
			}},
			{Feature: "blood_pressure", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(100), Points: 15, Factor: "Severe hypertension"},
				{AtLeast: engine.Bound(90), Points: 10, Factor: "Elevated blood pressure"},
			}},
			{Feature: "blood_glucose", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(180), Points: 10, Factor: "Elevated random blood glucose"},
			}},
		},
		Boundaries: clinical.RiskBoundaries{Moderate: 30, High: 60},
		Tiers: engine.RecommendationTiers{
			Low: []string{
				"Stay hydrated and limit excess dietary sodium",
				"Recheck kidney function at your next routine visit",
			},
			Moderate: []string{
				"Schedule a renal function panel (creatinine, urea, eGFR)",
				"Monitor blood pressure weekly",
				"Limit protein and sodium intake pending results",
			},
			High: []string{
				"Consult a nephrologist promptly",
				"Request urinalysis and a full renal function panel this week",
				"Review all current medications for renal dosing",
				"Monitor blood pressure daily",
			},
		},
		ProfileFeatures: []string{"serum_creatinine", "blood_urea", "hemoglobin", "blood_pressure"},
		K:               7,
	}
}
