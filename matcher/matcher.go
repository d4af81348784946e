package matcher

import (
	"math"
	"sort"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
)

// maxMatches bounds how many candidate diseases a single check returns.
const maxMatches = 5

const ageRiskMultiplier = 1.2

// Query is one symptom check request. Age and Gender are optional; when
// absent the corresponding confidence modifiers are skipped.
type Query struct {
	Symptoms []core.SymptomID
	Age      *int
	Gender   *clinical.Gender
}

// Matcher scores reported symptoms against a knowledge base. Stateless and
// safe for concurrent use.
type Matcher struct {
	kb *KnowledgeBase
}

func New(kb *KnowledgeBase) *Matcher {
	return &Matcher{kb: kb}
}

// Match returns up to maxMatches candidate diseases ordered by descending
// confidence. Diseases with zero symptom overlap are excluded. Equal
// confidence preserves knowledge-base declaration order.
func (m *Matcher) Match(q Query) ([]clinical.MultiDiseaseMatch, error) {
	reported := make(map[core.SymptomID]struct{}, len(q.Symptoms))
	for _, id := range q.Symptoms {
		if id == "" {
			continue
		}
		reported[id] = struct{}{}
	}
	if len(reported) == 0 {
		return nil, core.ErrNoSymptoms
	}

	matches := make([]clinical.MultiDiseaseMatch, 0, len(m.kb.diseases))
	for _, disease := range m.kb.diseases {
		matched := matchedSymptoms(disease, reported)
		if len(matched) == 0 {
			continue
		}

		confidence := float64(len(matched)) / float64(len(disease.Symptoms)) * 100
		if q.Age != nil && disease.HighRiskAges != nil && disease.HighRiskAges.Contains(*q.Age) {
			confidence *= ageRiskMultiplier
		}
		if q.Gender != nil {
			if mod, ok := disease.GenderModifiers[*q.Gender]; ok {
				confidence *= mod
			}
		}

		matches = append(matches, clinical.MultiDiseaseMatch{
			Disease:         disease.Name,
			Confidence:      clinical.ClampPercent(int(math.Round(confidence))),
			MatchedSymptoms: len(matched),
			TotalSymptoms:   len(disease.Symptoms),
			Severity:        disease.Severity,
			Urgency:         urgencyFor(disease.Severity, len(matched)),
			Specialization:  disease.Specialization,
			Recommendations: disease.Recommendations,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches, nil
}

func matchedSymptoms(disease clinical.DiseaseDefinition, reported map[core.SymptomID]struct{}) []core.SymptomID {
	var matched []core.SymptomID
	for _, id := range disease.Symptoms {
		if _, ok := reported[id]; ok {
			matched = append(matched, id)
		}
	}
	return matched
}

// urgencyFor maps severity and overlap depth to a triage urgency tier.
func urgencyFor(severity clinical.Severity, matched int) clinical.Urgency {
	switch {
	case severity == clinical.SeveritySerious && matched >= 3:
		return clinical.UrgencyEmergency
	case severity == clinical.SeveritySerious || matched >= 4:
		return clinical.UrgencyUrgent
	case severity == clinical.SeverityModerate:
		return clinical.UrgencySoon
	default:
		return clinical.UrgencyRoutine
	}
}
