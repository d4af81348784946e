package engine

import (
	"reflect"
	"testing"
)

func glucoseRule() ThresholdRule {
	return ThresholdRule{Feature: "glucose", Bands: []ScoreBand{
		{AtLeast: Bound(140), Points: 35, Factor: "Elevated glucose"},
		{AtLeast: Bound(100), Points: 20, Factor: "Borderline glucose"},
	}}
}

func TestScoreBandMatches(t *testing.T) {
	tests := []struct {
		name  string
		band  ScoreBand
		value float64
		want  bool
	}{
		{"at-least inclusive", ScoreBand{AtLeast: Bound(140)}, 140, true},
		{"at-least below", ScoreBand{AtLeast: Bound(140)}, 139.9, false},
		{"less-than exclusive", ScoreBand{LessThan: Bound(100)}, 100, false},
		{"less-than below", ScoreBand{LessThan: Bound(100)}, 99, true},
		{"interval hit", ScoreBand{AtLeast: Bound(100), LessThan: Bound(140)}, 120, true},
		{"interval miss high", ScoreBand{AtLeast: Bound(100), LessThan: Bound(140)}, 140, false},
		{"equals hit", ScoreBand{Equals: Bound(0)}, 0, true},
		{"equals miss", ScoreBand{Equals: Bound(0)}, 0.5, false},
		{"all bounds unset never matches", ScoreBand{}, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.band.Matches(tt.value); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestScoreRiskFirstMatchingBandWins(t *testing.T) {
	score, factors := ScoreRisk(map[string]float64{"glucose": 160}, []ThresholdRule{glucoseRule()})
	if score != 35 {
		t.Errorf("score = %d, want 35 (most severe band only)", score)
	}
	if !reflect.DeepEqual(factors, []string{"Elevated glucose"}) {
		t.Errorf("factors = %v, want [Elevated glucose]", factors)
	}
}

func TestScoreRiskSumsAcrossRules(t *testing.T) {
	rules := []ThresholdRule{
		glucoseRule(),
		{Feature: "bmi", Bands: []ScoreBand{{AtLeast: Bound(30), Points: 20, Factor: "Obesity"}}},
		{Feature: "insulin", Bands: []ScoreBand{{Equals: Bound(0), Points: 10, Factor: "Missing insulin measurement"}}},
	}

	score, factors := ScoreRisk(map[string]float64{"glucose": 120, "bmi": 31, "insulin": 0}, rules)
	if score != 50 {
		t.Errorf("score = %d, want 50", score)
	}
	if len(factors) != 3 {
		t.Errorf("factors = %v, want 3 entries", factors)
	}
}

func TestScoreRiskClampsAtHundred(t *testing.T) {
	rules := []ThresholdRule{
		{Feature: "a", Bands: []ScoreBand{{AtLeast: Bound(0), Points: 60, Factor: "A"}}},
		{Feature: "b", Bands: []ScoreBand{{AtLeast: Bound(0), Points: 60, Factor: "B"}}},
	}
	score, _ := ScoreRisk(map[string]float64{"a": 1, "b": 1}, rules)
	if score != 100 {
		t.Errorf("score = %d, want 100 (clamped)", score)
	}
}

func TestScoreRiskNoMatchesYieldsZeroAndEmptyFactors(t *testing.T) {
	score, factors := ScoreRisk(map[string]float64{"glucose": 80}, []ThresholdRule{glucoseRule()})
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
	if factors == nil || len(factors) != 0 {
		t.Errorf("factors = %#v, want empty non-nil slice", factors)
	}
}

func TestScoreRiskIgnoresUnknownRuleFeature(t *testing.T) {
	rules := []ThresholdRule{{Feature: "missing", Bands: []ScoreBand{{AtLeast: Bound(0), Points: 50}}}}
	score, _ := ScoreRisk(map[string]float64{"glucose": 80}, rules)
	if score != 0 {
		t.Errorf("score = %d, want 0 when rule feature absent", score)
	}
}

func TestProfileSnapshot(t *testing.T) {
	features := map[string]float64{"glucose": 160, "bmi": 32, "age": 50}
	profile := ProfileSnapshot(features, []string{"glucose", "bmi", "unknown"})
	if len(profile) != 2 || profile["glucose"] != 160 || profile["bmi"] != 32 {
		t.Errorf("profile = %v, want glucose and bmi only", profile)
	}
}
