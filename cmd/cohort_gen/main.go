// Command cohort_gen writes deterministic synthetic training workbooks for
// every disease model, one xlsx or csv file per disease, for local
// development and load testing.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"medrisk/domain/clinical"
	"medrisk/engine"
	"medrisk/engine/calibration"
	"medrisk/internal/testkit"
)

func main() {
	out := flag.String("out", "data", "output directory")
	rows := flag.Int("rows", 400, "records per disease")
	format := flag.String("format", "xlsx", "output format: xlsx or csv")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	flag.Parse()

	if *rows < 10 {
		fmt.Fprintln(os.Stderr, "rows must be >= 10")
		os.Exit(2)
	}
	if *format != "xlsx" && *format != "csv" {
		fmt.Fprintln(os.Stderr, "format must be xlsx or csv")
		os.Exit(2)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "error creating output directory:", err)
		os.Exit(1)
	}

	configs := calibration.All()
	genCfg := testkit.DefaultCohortConfig()
	genCfg.CohortSize = *rows
	genCfg.Seed = *seed
	gen := testkit.NewCohortGenerator(genCfg, configs)

	for _, cfg := range configs {
		records, err := gen.Load(context.Background(), cfg.Key, len(cfg.FeatureOrder))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error generating %s cohort: %v\n", cfg.Key, err)
			os.Exit(1)
		}

		path := filepath.Join(*out, cfg.Key.String()+"."+*format)
		switch *format {
		case "csv":
			err = writeCSV(path, cfg, records)
		default:
			err = writeWorkbook(path, cfg, records)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d records)\n", path, len(records))
	}
}

func writeWorkbook(path string, cfg engine.ModelConfig, records []clinical.TrainingRecord) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := append(append([]interface{}{}, toAny(cfg.FeatureOrder)...), "label")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, rec := range records {
		row := make([]interface{}, 0, len(rec.Features)+1)
		for _, v := range rec.Features {
			row = append(row, v)
		}
		row = append(row, rec.Label)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeCSV(path string, cfg engine.ModelConfig, records []clinical.TrainingRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(append(append([]string{}, cfg.FeatureOrder...), "label")); err != nil {
		return err
	}
	for _, rec := range records {
		row := make([]string, 0, len(rec.Features)+1)
		for _, v := range rec.Features {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		row = append(row, strconv.Itoa(rec.Label))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
