package calibration

import (
	"medrisk/domain/clinical"
	"medrisk/engine"
)

// Hepatic returns the chronic liver disease calibration over the standard
// hepatology blood panel.
func Hepatic() engine.ModelConfig {
	return engine.ModelConfig{
		Key:  KeyHepatic,
		Name: "Chronic Liver Disease",
		FeatureOrder: []string{
			"age", "total_bilirubin", "direct_bilirubin", "alkaline_phosphatase",
			"alt", "ast", "total_proteins", "albumin", "ag_ratio",
		},
		Ranges: []clinical.FeatureRange{
			{Min: 4, Max: 90},     // age
			{Min: 0.4, Max: 75},   // total bilirubin, mg/dL
			{Min: 0.1, Max: 19.7}, // direct bilirubin, mg/dL
			{Min: 63, Max: 2110},  // alkaline phosphatase, IU/L
			{Min: 10, Max: 2000},  // ALT (SGPT), IU/L
			{Min: 10, Max: 4929},  // AST (SGOT), IU/L
			{Min: 2.7, Max: 9.6},  // total proteins, g/dL
			{Min: 0.9, Max: 5.5},  // albumin, g/dL
			{Min: 0.3, Max: 2.8},  // albumin/globulin ratio
		},
		Rules: []engine.ThresholdRule{
			{Feature: "total_bilirubin", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(3), Points: 30, Factor: "Markedly elevated total bilirubin"},
				{AtLeast: engine.Bound(1.2), Points: 15, Factor: "Elevated total bilirubin"},
			}},
			{Feature: "alt", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(100), Points: 20, Factor: "Markedly elevated ALT"},
				{AtLeast: engine.Bound(40), Points: 10, Factor: "Elevated ALT"},
			}},
			{Feature: "ast", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(100), Points: 15, Factor: "Markedly elevated AST"},
				{AtLeast: engine.Bound(40), Points: 8, Factor: "Elevated AST"},
			}},
			{Feature: "alkaline_phosphatase", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(300), Points: 15, Factor: "Elevated alkaline phosphatase"},
			}},
			{Feature: "albumin", Bands: []engine.ScoreBand{
				{LessThan: engine.Bound(2.8), Points: 20, Factor: "Severely low serum albumin"},
				{LessThan: engine.Bound(3.5), Points: 10, Factor: "Low serum albumin"},
			}},
			{Feature: "ag_ratio", Bands: []engine.ScoreBand{
				{LessThan: engine.Bound(1), Points: 10, Factor: "Reversed albumin/globulin ratio"},
			}},
		},
		Boundaries: clinical.RiskBoundaries{Moderate: 35, High: 65},
		Tiers: engine.RecommendationTiers{
			Low: []string{
				"Limit alcohol intake and maintain a healthy weight",
				"Recheck liver enzymes at your next routine visit",
			},
			Moderate: []string{
				"Schedule a full liver function panel",
				"Avoid alcohol and hepatotoxic medications",
				"Discuss viral hepatitis screening with your physician",
			},
			High: []string{
				"Consult a hepatologist promptly",
				"Request an abdominal ultrasound and repeat liver panel",
				"Stop all alcohol consumption immediately",
				"Review every current medication for hepatic load",
			},
		},
		ProfileFeatures: []string{"total_bilirubin", "alt", "ast", "albumin"},
		K:               7,
	}
}
