package engine

import (
	"math"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
)

// ModelVote is one classifier's raw verdict, retained verbatim in the
// combined result for transparency to the presentation layer.
type ModelVote struct {
	Model      string `json:"model"`
	Prediction int    `json:"prediction"`
	Confidence int    `json:"confidence"`
}

// EnsembleVerdict is the combined result of two or more classifiers
// assessing the same query.
type EnsembleVerdict struct {
	Prediction int         `json:"prediction"`
	Confidence int         `json:"confidence"`
	Majority   bool        `json:"majority"`
	Votes      []ModelVote `json:"votes"`
}

// CombineVotes merges classifier verdicts by majority rule on the binary
// prediction. A tie goes to the side holding the single most confident
// voter; when those confidences are also equal, the lowest prediction wins.
// The rule is explicit rather than left to map iteration order. Unified
// confidence is the mean of the agreeing voters when a majority agrees,
// otherwise the winning side's confidence alone.
func CombineVotes(votes []ModelVote) (EnsembleVerdict, error) {
	if len(votes) < 2 {
		return EnsembleVerdict{}, core.ErrTooFewVoters
	}

	counts := map[int]int{}
	best := map[int]int{} // side -> highest individual confidence
	for _, v := range votes {
		counts[v.Prediction]++
		if v.Confidence > best[v.Prediction] {
			best[v.Prediction] = v.Confidence
		}
	}

	winner, winnerCount, tied := 0, -1, false
	for side, count := range counts {
		switch {
		case count > winnerCount:
			winner, winnerCount, tied = side, count, false
		case count == winnerCount:
			tied = true
			if best[side] > best[winner] || (best[side] == best[winner] && side < winner) {
				winner = side
			}
		}
	}

	sum, agreeing := 0, 0
	for _, v := range votes {
		if v.Prediction == winner {
			sum += v.Confidence
			agreeing++
		}
	}

	majority := !tied && winnerCount*2 > len(votes)
	confidence := best[winner]
	if majority && agreeing > 0 {
		confidence = int(math.Round(float64(sum) / float64(agreeing)))
	}

	return EnsembleVerdict{
		Prediction: winner,
		Confidence: clinical.ClampPercent(confidence),
		Majority:   majority,
		Votes:      votes,
	}, nil
}

// EnsemblePredict assesses one query with three independent voters over the
// same inputs: the primary KNN at the model's configured k, a nearest-
// centroid classifier over the same normalized training set, and a rule
// verdict derived from the risk score (positive iff the score reaches the
// disease's High boundary).
func (m *DiseaseModel) EnsemblePredict(features []float64) (EnsembleVerdict, error) {
	if state := m.State(); state != clinical.StateReady {
		return EnsembleVerdict{}, core.NewNotReadyError(m.cfg.Name, state.String())
	}
	if err := m.validate(features); err != nil {
		return EnsembleVerdict{}, err
	}

	normalized := NormalizeVector(features, m.cfg.Ranges)
	named := m.featureMap(features)

	knn := Classify(m.training, normalized, m.cfg.K)
	centroid := ClassifyCentroid(m.training, normalized)

	score, _ := ScoreRisk(named, m.cfg.Rules)
	rulePrediction := 0
	ruleConfidence := 100 - score
	if score >= m.cfg.Boundaries.High {
		rulePrediction = 1
		ruleConfidence = score
	}

	return CombineVotes([]ModelVote{
		{Model: "knn", Prediction: knn.Prediction, Confidence: knn.Confidence},
		{Model: "centroid", Prediction: centroid.Prediction, Confidence: centroid.Confidence},
		{Model: "risk_rules", Prediction: rulePrediction, Confidence: clinical.ClampPercent(ruleConfidence)},
	})
}
