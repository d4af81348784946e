package calibration

import (
	"medrisk/domain/clinical"
	"medrisk/engine"
)

// Metabolic returns the type 2 diabetes calibration. Feature order follows
// the standard glucose-tolerance screening vector; k=9 per the reference
// tuning for this domain.
func Metabolic() engine.ModelConfig {
	return engine.ModelConfig{
		Key:  KeyMetabolic,
		Name: "Type 2 Diabetes",
		FeatureOrder: []string{
			"pregnancies", "glucose", "blood_pressure", "skin_thickness",
			"insulin", "bmi", "pedigree", "age",
		},
		Ranges: []clinical.FeatureRange{
			{Min: 0, Max: 17},      // pregnancies
			{Min: 0, Max: 200},     // glucose, mg/dL (2h OGTT)
			{Min: 0, Max: 122},     // diastolic blood pressure, mmHg
			{Min: 0, Max: 99},      // triceps skin fold, mm
			{Min: 0, Max: 846},     // serum insulin, mu U/mL
			{Min: 0, Max: 67},      // BMI
			{Min: 0.078, Max: 2.42}, // diabetes pedigree function
			{Min: 21, Max: 81},     // age
		},
		Rules: []engine.ThresholdRule{
			{Feature: "glucose", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(140), Points: 35, Factor: "Elevated glucose (hyperglycemic range)"},
				{AtLeast: engine.Bound(100), Points: 20, Factor: "Glucose above normal fasting range"},
			}},
			{Feature: "bmi", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(30), Points: 20, Factor: "Obesity (BMI 30 or above)"},
				{AtLeast: engine.Bound(25), Points: 10, Factor: "Overweight (BMI 25-29.9)"},
			}},
			{Feature: "age", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(45), Points: 10, Factor: "Age 45 or older"},
			}},
			{Feature: "blood_pressure", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(80), Points: 10, Factor: "Elevated diastolic blood pressure"},
			}},
			{Feature: "insulin", Bands: []engine.ScoreBand{
				{Equals: engine.Bound(0), Points: 10, Factor: "Serum insulin unmeasured or absent"},
				{AtLeast: engine.Bound(166), Points: 10, Factor: "Elevated serum insulin"},
			}},
			{Feature: "pedigree", Bands: []engine.ScoreBand{
				{AtLeast: engine.Bound(0.5), Points: 15, Factor: "Strong family history of diabetes"},
			}},
		},
		Boundaries: clinical.RiskBoundaries{Moderate: 40, High: 70},
		Tiers: engine.RecommendationTiers{
			Low: []string{
				"Maintain a balanced diet and regular physical activity",
				"Recheck fasting glucose at your next routine visit",
			},
			Moderate: []string{
				"Schedule an HbA1c test within the next month",
				"Reduce refined sugar intake and increase aerobic exercise",
				"Monitor weight and blood pressure monthly",
			},
			High: []string{
				"Consult an endocrinologist promptly",
				"Request fasting glucose and HbA1c testing this week",
				"Begin daily blood glucose monitoring",
				"Review diet with a clinical nutritionist",
			},
		},
		ProfileFeatures: []string{"glucose", "bmi", "blood_pressure", "age"},
		K:               9,
	}
}
