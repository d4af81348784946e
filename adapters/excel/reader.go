package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
)

// TrainingReader loads per-disease training workbooks from a dataset
// directory. It looks for <dir>/<disease>.xlsx first, then <dir>/<disease>.csv.
// Each file carries a header row followed by numeric rows; the final column
// is the binary label, every preceding column a feature.
type TrainingReader struct {
	dir string
}

func NewTrainingReader(dir string) *TrainingReader {
	return &TrainingReader{dir: dir}
}

// Load implements ports.TrainingSource. Rows with the wrong column count or
// unparseable cells are dropped with a log line rather than failing the load;
// the model layer applies its own finite-value filter on top.
func (r *TrainingReader) Load(ctx context.Context, disease core.DiseaseKey, featureCount int) ([]clinical.TrainingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, fileType, err := r.resolvePath(disease)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch fileType {
	case "csv":
		rows, err = readCSVRows(path)
	default:
		rows, err = readSheetRows(path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: need a header row and at least one data row", path)
	}

	records := parseRows(rows[1:], featureCount, string(disease))
	log.Printf("[TrainingReader] %s: %d of %d rows usable (%s)",
		disease, len(records), len(rows)-1, fileType)
	return records, nil
}

func (r *TrainingReader) resolvePath(disease core.DiseaseKey) (string, string, error) {
	xlsx := filepath.Join(r.dir, string(disease)+".xlsx")
	if _, err := os.Stat(xlsx); err == nil {
		return xlsx, "xlsx", nil
	}
	csvPath := filepath.Join(r.dir, string(disease)+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		return csvPath, "csv", nil
	}
	return "", "", core.NewNotFoundError("training file", string(disease))
}

func readSheetRows(path string) ([][]string, error) {
	start := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s of %s: %w", sheet, path, err)
	}
	log.Printf("[TrainingReader] %s read in %.2fms (%d rows)",
		filepath.Base(path), float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %w", path, err)
	}
	return rows, nil
}

func parseRows(rows [][]string, featureCount int, tag string) []clinical.TrainingRecord {
	var records []clinical.TrainingRecord
	dropped := 0
	for i, row := range rows {
		rec, ok := parseRow(row, featureCount)
		if !ok {
			dropped++
			if dropped <= 5 {
				log.Printf("[TrainingReader] %s: dropping row %d (%d cells, want %d)",
					tag, i+2, len(row), featureCount+1)
			}
			continue
		}
		records = append(records, rec)
	}
	if dropped > 5 {
		log.Printf("[TrainingReader] %s: %d malformed rows dropped in total", tag, dropped)
	}
	return records
}

func parseRow(row []string, featureCount int) (clinical.TrainingRecord, bool) {
	if len(row) != featureCount+1 {
		return clinical.TrainingRecord{}, false
	}

	features := make([]float64, featureCount)
	for i := 0; i < featureCount; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return clinical.TrainingRecord{}, false
		}
		features[i] = v
	}

	label, err := strconv.Atoi(strings.TrimSpace(row[featureCount]))
	if err != nil || (label != 0 && label != 1) {
		return clinical.TrainingRecord{}, false
	}

	return clinical.TrainingRecord{Features: features, Label: label}, true
}
