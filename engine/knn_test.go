package engine

import (
	"testing"

	"medrisk/domain/clinical"
)

func rec(label int, features ...float64) clinical.TrainingRecord {
	return clinical.TrainingRecord{Features: features, Label: label}
}

func TestClassifyEmptyTrainingSet(t *testing.T) {
	got := Classify(nil, []float64{0.5}, 7)
	want := clinical.ClassifierVerdict{Prediction: 0, Confidence: 50, Neighbors: 0}
	if got != want {
		t.Errorf("Classify(empty) = %+v, want %+v", got, want)
	}
}

func TestClassifyMajorityVote(t *testing.T) {
	// Five positives closer to the query than the two negatives: 5 of 7
	// neighbors vote positive, confidence rounds 5/7 to 71.
	training := []clinical.TrainingRecord{
		rec(1, 0.1), rec(1, 0.2), rec(1, 0.3), rec(1, 0.4), rec(1, 0.5),
		rec(0, 0.6), rec(0, 0.7),
		rec(0, 5.0), rec(0, 6.0),
	}

	got := Classify(training, []float64{0}, 7)
	if got.Prediction != 1 {
		t.Errorf("prediction = %d, want 1", got.Prediction)
	}
	if got.Confidence != 71 {
		t.Errorf("confidence = %d, want 71", got.Confidence)
	}
	if got.Neighbors != 7 {
		t.Errorf("neighbors = %d, want 7", got.Neighbors)
	}
}

func TestClassifyKClampedToTrainingSize(t *testing.T) {
	training := []clinical.TrainingRecord{rec(1, 0.1), rec(1, 0.2), rec(0, 0.9)}

	got := Classify(training, []float64{0}, 9)
	if got.Neighbors != 3 {
		t.Errorf("neighbors = %d, want 3 (clamped)", got.Neighbors)
	}
	if got.Prediction != 1 {
		t.Errorf("prediction = %d, want 1", got.Prediction)
	}
}

func TestClassifyMinimumK(t *testing.T) {
	training := []clinical.TrainingRecord{rec(0, 0.1), rec(1, 0.9)}
	got := Classify(training, []float64{0}, 0)
	if got.Neighbors != 1 {
		t.Errorf("neighbors = %d, want 1", got.Neighbors)
	}
}

func TestClassifyTieBreaksToLowestLabel(t *testing.T) {
	training := []clinical.TrainingRecord{rec(0, 0.1), rec(1, 0.2)}

	got := Classify(training, []float64{0}, 2)
	if got.Prediction != 0 {
		t.Errorf("tied vote prediction = %d, want 0", got.Prediction)
	}
	if got.Confidence != 50 {
		t.Errorf("tied vote confidence = %d, want 50", got.Confidence)
	}
}

func TestClassifyCentroid(t *testing.T) {
	training := []clinical.TrainingRecord{
		rec(0, 0.1, 0.1), rec(0, 0.2, 0.2),
		rec(1, 0.8, 0.8), rec(1, 0.9, 0.9),
	}

	got := ClassifyCentroid(training, []float64{0.85, 0.85})
	if got.Prediction != 1 {
		t.Errorf("prediction = %d, want 1", got.Prediction)
	}
	if got.Confidence < 50 || got.Confidence > 100 {
		t.Errorf("confidence = %d, want within [50,100]", got.Confidence)
	}

	got = ClassifyCentroid(training, []float64{0.15, 0.15})
	if got.Prediction != 0 {
		t.Errorf("prediction = %d, want 0", got.Prediction)
	}
}

func TestClassifyCentroidSingleClass(t *testing.T) {
	training := []clinical.TrainingRecord{rec(1, 0.5), rec(1, 0.6)}
	got := ClassifyCentroid(training, []float64{0})
	if got.Prediction != 1 || got.Confidence != 50 {
		t.Errorf("single class verdict = %+v, want prediction 1 confidence 50", got)
	}
}

func TestClassifyCentroidEmpty(t *testing.T) {
	got := ClassifyCentroid(nil, []float64{0})
	want := clinical.ClassifierVerdict{Prediction: 0, Confidence: 50, Neighbors: 0}
	if got != want {
		t.Errorf("ClassifyCentroid(empty) = %+v, want %+v", got, want)
	}
}
