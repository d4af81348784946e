package testkit

import (
	"context"
	"testing"

	"medrisk/engine"
	"medrisk/engine/calibration"
)

func TestCohortGeneratorIsDeterministic(t *testing.T) {
	configs := calibration.All()
	cfg := DefaultCohortConfig()
	cfg.CohortSize = 50

	a, err := NewCohortGenerator(cfg, configs).Load(context.Background(), calibration.KeyMetabolic, 8)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := NewCohortGenerator(cfg, configs).Load(context.Background(), calibration.KeyMetabolic, 8)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(a) != 50 || len(b) != 50 {
		t.Fatalf("cohort sizes = %d, %d, want 50", len(a), len(b))
	}
	for i := range a {
		if a[i].Label != b[i].Label {
			t.Fatalf("label mismatch at row %d", i)
		}
		for j := range a[i].Features {
			if a[i].Features[j] != b[i].Features[j] {
				t.Fatalf("feature mismatch at row %d col %d", i, j)
			}
		}
	}
}

func TestCohortGeneratorRespectsCalibratedRanges(t *testing.T) {
	configs := calibration.All()
	cfg := DefaultCohortConfig()
	cfg.CohortSize = 200
	gen := NewCohortGenerator(cfg, configs)

	var metabolic engine.ModelConfig
	for _, mc := range configs {
		if mc.Key == calibration.KeyMetabolic {
			metabolic = mc
		}
	}

	records, err := gen.Load(context.Background(), calibration.KeyMetabolic, len(metabolic.FeatureOrder))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	positives := 0
	for _, rec := range records {
		if rec.Label != 0 && rec.Label != 1 {
			t.Fatalf("label = %d, want binary", rec.Label)
		}
		if rec.Label == 1 {
			positives++
		}
		for j, v := range rec.Features {
			r := metabolic.Ranges[j]
			if v < r.Min || v > r.Max {
				t.Fatalf("feature %s = %v outside calibrated range %+v", metabolic.FeatureOrder[j], v, r)
			}
		}
	}

	// Class balance should land near the configured positive rate.
	if positives < 40 || positives > 130 {
		t.Errorf("positives = %d of 200, implausible for rate %.2f", positives, cfg.PositiveRate)
	}
}

func TestCohortGeneratorUnknownDisease(t *testing.T) {
	gen := NewCohortGenerator(DefaultCohortConfig(), calibration.All())
	if _, err := gen.Load(context.Background(), "nonexistent", 4); err == nil {
		t.Error("expected error for unknown disease")
	}
}

func TestCohortsAreSeparableEnoughToClassify(t *testing.T) {
	configs := calibration.All()
	cfg := DefaultCohortConfig()
	cfg.CohortSize = 120
	gen := NewCohortGenerator(cfg, configs)

	eng := engine.New(configs)
	if err := eng.Initialize(context.Background(), gen); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !eng.Ready() {
		t.Fatal("engine not ready after initialization")
	}

	// A query at the high end of every range should classify positive.
	var metabolic engine.ModelConfig
	for _, mc := range configs {
		if mc.Key == calibration.KeyMetabolic {
			metabolic = mc
		}
	}
	high := make([]float64, len(metabolic.Ranges))
	for i, r := range metabolic.Ranges {
		high[i] = r.Min + 0.9*(r.Max-r.Min)
	}

	result, err := eng.Predict(calibration.KeyMetabolic, high)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if result.Prediction != 1 {
		t.Errorf("high-end query prediction = %d, want 1", result.Prediction)
	}
}
