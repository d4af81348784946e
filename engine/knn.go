package engine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"medrisk/domain/clinical"
)

// Classify runs a k-nearest-neighbor majority vote over the training set.
// It is a pure function of its inputs: no shared state survives between
// calls, so concurrent queries against the same training set are safe.
//
// An empty training set short-circuits to the neutral verdict
// {prediction:0, confidence:50, neighbors:0} without any computation.
// Vote ties are broken by the lowest numeric label; the rule is explicit
// rather than left to map iteration order.
func Classify(training []clinical.TrainingRecord, query []float64, k int) clinical.ClassifierVerdict {
	if len(training) == 0 {
		return clinical.ClassifierVerdict{Prediction: 0, Confidence: 50, Neighbors: 0}
	}
	if k < 1 {
		k = 1
	}
	if k > len(training) {
		k = len(training)
	}

	type neighbor struct {
		distance float64
		label    int
	}

	neighbors := make([]neighbor, len(training))
	for i, rec := range training {
		neighbors[i] = neighbor{
			distance: floats.Distance(query, rec.Features, 2),
			label:    rec.Label,
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].distance < neighbors[j].distance
	})

	votes := map[int]int{}
	for _, n := range neighbors[:k] {
		votes[n.label]++
	}

	winner, winnerVotes := 0, -1
	for label, count := range votes {
		if count > winnerVotes || (count == winnerVotes && label < winner) {
			winner, winnerVotes = label, count
		}
	}

	confidence := int(math.Round(float64(winnerVotes) / float64(k) * 100))

	return clinical.ClassifierVerdict{
		Prediction: winner,
		Confidence: clinical.ClampPercent(confidence),
		Neighbors:  k,
	}
}

// ClassifyCentroid assigns the query to the nearest class centroid of the
// training set. It serves as an independent second opinion in ensemble
// assessments; confidence is the relative margin between the two centroid
// distances, scaled to [50,100].
func ClassifyCentroid(training []clinical.TrainingRecord, query []float64) clinical.ClassifierVerdict {
	if len(training) == 0 {
		return clinical.ClassifierVerdict{Prediction: 0, Confidence: 50, Neighbors: 0}
	}

	dims := len(training[0].Features)
	sums := map[int][]float64{}
	counts := map[int]int{}
	for _, rec := range training {
		if _, ok := sums[rec.Label]; !ok {
			sums[rec.Label] = make([]float64, dims)
		}
		floats.Add(sums[rec.Label], rec.Features)
		counts[rec.Label]++
	}

	// Single-class training set: every query lands on that class.
	if len(sums) == 1 {
		for label := range sums {
			return clinical.ClassifierVerdict{Prediction: label, Confidence: 50, Neighbors: counts[label]}
		}
	}

	type centroid struct {
		label    int
		distance float64
	}
	centroids := make([]centroid, 0, len(sums))
	for label, sum := range sums {
		mean := make([]float64, dims)
		for i, v := range sum {
			mean[i] = v / float64(counts[label])
		}
		centroids = append(centroids, centroid{label: label, distance: floats.Distance(query, mean, 2)})
	}

	sort.Slice(centroids, func(i, j int) bool {
		if centroids[i].distance == centroids[j].distance {
			return centroids[i].label < centroids[j].label
		}
		return centroids[i].distance < centroids[j].distance
	})

	best, runnerUp := centroids[0], centroids[1]
	confidence := 50
	if total := best.distance + runnerUp.distance; total > 0 {
		margin := (runnerUp.distance - best.distance) / total // [0,1]
		confidence = int(math.Round(50 + margin*50))
	}

	return clinical.ClassifierVerdict{
		Prediction: best.label,
		Confidence: clinical.ClampPercent(confidence),
		Neighbors:  counts[best.label],
	}
}
