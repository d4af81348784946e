package engine

import (
	"medrisk/domain/clinical"
)

// ScoreBand is one threshold band of a rule. A band matches when every set
// bound holds for the raw feature value; unset bounds are ignored. Within a
// rule, bands are ordered most-severe first and the first match wins.
type ScoreBand struct {
	AtLeast  *float64 `json:"at_least,omitempty"`
	LessThan *float64 `json:"less_than,omitempty"`
	Equals   *float64 `json:"equals,omitempty"`
	Points   int      `json:"points"`
	Factor   string   `json:"factor"`
}

// Matches reports whether the raw value falls inside the band.
func (b ScoreBand) Matches(v float64) bool {
	if b.Equals != nil && v != *b.Equals {
		return false
	}
	if b.AtLeast != nil && v < *b.AtLeast {
		return false
	}
	if b.LessThan != nil && v >= *b.LessThan {
		return false
	}
	return b.Equals != nil || b.AtLeast != nil || b.LessThan != nil
}

// ThresholdRule maps one named raw feature to a point contribution via an
// ordered band table. Rules are fixed calibration data, never derived from
// the training set.
type ThresholdRule struct {
	Feature string      `json:"feature"`
	Bands   []ScoreBand `json:"bands"`
}

// Bound is a convenience constructor for band bound pointers.
func Bound(v float64) *float64 {
	return &v
}

// ScoreRisk evaluates every rule against the named raw feature values,
// sums the first matching band of each rule and clamps to [0,100]. The
// same band matches produce the human-readable risk factor list; only
// triggered thresholds are reported. Deterministic and independent of the
// distance classifier by design.
func ScoreRisk(features map[string]float64, rules []ThresholdRule) (int, []string) {
	score := 0
	factors := []string{}

	for _, rule := range rules {
		value, ok := features[rule.Feature]
		if !ok {
			continue
		}
		for _, band := range rule.Bands {
			if band.Matches(value) {
				score += band.Points
				if band.Points > 0 && band.Factor != "" {
					factors = append(factors, band.Factor)
				}
				break
			}
		}
	}

	return clinical.ClampPercent(score), factors
}

// ProfileSnapshot extracts the compact patient profile of key raw values
// reported alongside each result.
func ProfileSnapshot(features map[string]float64, keys []string) map[string]float64 {
	profile := make(map[string]float64, len(keys))
	for _, key := range keys {
		if v, ok := features[key]; ok {
			profile[key] = v
		}
	}
	return profile
}
