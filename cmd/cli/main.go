// Command cli runs a one-shot risk assessment from the terminal, loading
// synthetic cohorts unless -data points at a dataset directory.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"medrisk/adapters/excel"
	"medrisk/domain/core"
	"medrisk/engine"
	"medrisk/engine/calibration"
	"medrisk/internal/testkit"
	"medrisk/ports"
)

func main() {
	disease := flag.String("disease", "", "disease key: cardiac, metabolic, renal, hepatic, oncologic")
	features := flag.String("features", "", "comma-separated name=value pairs, e.g. glucose=160,bmi=32")
	ensemble := flag.Bool("ensemble", false, "run the three-voter ensemble instead of the single assessment")
	dataDir := flag.String("data", "", "dataset directory with per-disease workbooks (synthetic cohorts when empty)")
	seed := flag.Int64("seed", 42, "synthetic cohort seed")
	flag.Parse()

	if *disease == "" || *features == "" {
		flag.Usage()
		os.Exit(2)
	}

	key, err := core.ParseDiseaseKey(*disease)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -disease:", err)
		os.Exit(2)
	}

	configs := calibration.All()
	eng := engine.New(configs)

	var source ports.TrainingSource
	if *dataDir != "" {
		source = excel.NewTrainingReader(*dataDir)
	} else {
		cfg := testkit.DefaultCohortConfig()
		cfg.Seed = *seed
		source = testkit.NewCohortGenerator(cfg, configs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := eng.Initialize(ctx, source); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load models:", err)
		os.Exit(1)
	}

	model, err := eng.Model(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unknown disease:", *disease)
		os.Exit(2)
	}

	vector, err := parseFeatures(*features, model.Config().FeatureOrder)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var result interface{}
	if *ensemble {
		result, err = model.EnsemblePredict(vector)
	} else {
		result, err = model.Predict(vector)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "assessment failed:", err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, "encode result:", err)
		os.Exit(1)
	}
}

func parseFeatures(raw string, order []string) ([]float64, error) {
	named := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid feature pair %q (want name=value)", pair)
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %v", parts[0], err)
		}
		named[strings.ToLower(parts[0])] = v
	}

	vector := make([]float64, len(order))
	for i, name := range order {
		v, ok := named[name]
		if !ok {
			return nil, fmt.Errorf("missing feature %s (required: %s)", name, strings.Join(order, ", "))
		}
		vector[i] = v
	}
	return vector, nil
}
