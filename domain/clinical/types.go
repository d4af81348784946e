package clinical

import (
	"math"

	"medrisk/domain/core"
)

// TrainingRecord is one labeled row of a disease model's training set.
// Feature order and vector length are fixed per disease domain.
type TrainingRecord struct {
	Features []float64 `json:"features"`
	Label    int       `json:"label"`
}

// IsFinite reports whether every feature value is a finite number.
// Records failing this check are dropped at ingestion, never stored.
func (r TrainingRecord) IsFinite() bool {
	for _, v := range r.Features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FeatureRange is a hand-calibrated {min,max} reference range for one
// feature index. Ranges come from domain reference tables, not from the
// training data, and are applied identically to training and query vectors.
type FeatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RiskLevel is the qualitative band derived from the rule-based risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	// RiskUnknown appears only on the Insufficient Data sentinel result.
	RiskUnknown RiskLevel = "Unknown"
)

// RiskBoundaries holds a disease's score cutoffs. Boundaries differ per
// disease and are part of its calibration table.
type RiskBoundaries struct {
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

// LevelFor maps a 0-100 score onto the disease's qualitative bands.
func (b RiskBoundaries) LevelFor(score int) RiskLevel {
	switch {
	case score >= b.High:
		return RiskHigh
	case score >= b.Moderate:
		return RiskModerate
	default:
		return RiskLow
	}
}

// ClassifierVerdict is the output of one binary classifier on one query.
type ClassifierVerdict struct {
	Prediction int `json:"prediction"`
	Confidence int `json:"confidence"`
	Neighbors  int `json:"neighbors"`
}

// PredictionResult is the merged per-disease assessment. Field names and
// value ranges are the stable boundary the presentation layer depends on:
// confidence and risk_score are clamped integers in [0,100], risk_level is
// one of the RiskLevel literals.
type PredictionResult struct {
	Disease         string             `json:"disease"`
	Prediction      int                `json:"prediction"`
	Confidence      int                `json:"confidence"`
	RiskScore       int                `json:"risk_score"`
	RiskLevel       RiskLevel          `json:"risk_level"`
	RiskFactors     []string           `json:"risk_factors"`
	Recommendations []string           `json:"recommendations"`
	PatientProfile  map[string]float64 `json:"patient_profile"`
}

// Severity is a disease's inherent severity tier in the symptom knowledge base.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySerious  Severity = "serious"
)

// Urgency is the care-seeking tier derived from severity and match count.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyUrgent    Urgency = "urgent"
	UrgencySoon      Urgency = "soon"
	UrgencyRoutine   Urgency = "routine"
)

// Gender for demographic risk modifiers.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// AgeBand is an inclusive age interval.
type AgeBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether age falls inside the band.
func (b AgeBand) Contains(age int) bool {
	return age >= b.Min && age <= b.Max
}

// DiseaseDefinition is one entry of the symptom-matcher knowledge base.
// Immutable after construction; declaration order is meaningful for
// tie-breaking in ranked output.
type DiseaseDefinition struct {
	Name            string             `json:"name"`
	Symptoms        []core.SymptomID   `json:"symptoms"`
	Severity        Severity           `json:"severity"`
	HighRiskAges    *AgeBand           `json:"high_risk_ages,omitempty"`
	GenderModifiers map[Gender]float64 `json:"gender_modifiers,omitempty"`
	Specialization  string             `json:"specialization"`
	Recommendations []string           `json:"recommendations"`
}

// SymptomDefinition describes one selectable symptom.
type SymptomDefinition struct {
	ID       core.SymptomID `json:"id"`
	Label    string         `json:"label"`
	Category string         `json:"category"`
	Severity Severity       `json:"severity"`
}

// MultiDiseaseMatch is one ranked entry of a symptom query result.
// Computed fresh per request, never cached or mutated afterward.
type MultiDiseaseMatch struct {
	Disease         string   `json:"disease"`
	Confidence      int      `json:"confidence"`
	MatchedSymptoms int      `json:"matched_symptoms"`
	TotalSymptoms   int      `json:"total_symptoms"`
	Severity        Severity `json:"severity"`
	Urgency         Urgency  `json:"urgency"`
	Specialization  string   `json:"specialization"`
	Recommendations []string `json:"recommendations"`
}

// ModelState tracks a disease model's one-way readiness lifecycle.
type ModelState int32

const (
	StateUninitialized ModelState = iota
	StateLoading
	StateReady
)

// String returns the lifecycle state name.
func (s ModelState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// ClampPercent clamps v to the [0,100] integer range used by confidence
// and risk score throughout the result contract.
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
