package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"medrisk/domain/core"
)

func writeCSVFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestLoadCSVCohort(t *testing.T) {
	dir := t.TempDir()
	writeCSVFile(t, dir, "metabolic.csv",
		"glucose,bmi,label\n"+
			"160,32,1\n"+
			"90,22,0\n"+
			"abc,30,1\n"+ // unparseable cell, dropped
			"120,28,2\n"+ // non-binary label, dropped
			"100,25\n"+ // short row, dropped
			"140,31,1\n")

	records, err := NewTrainingReader(dir).Load(context.Background(), "metabolic", 2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("records = %d, want 3 well-formed rows", len(records))
	}
	if records[0].Features[0] != 160 || records[0].Label != 1 {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1].Label != 0 {
		t.Errorf("second record label = %d, want 0", records[1].Label)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewTrainingReader(t.TempDir()).Load(context.Background(), "cardiac", 10)
	if !core.IsNotFoundError(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestLoadHeaderOnlyFile(t *testing.T) {
	dir := t.TempDir()
	writeCSVFile(t, dir, "renal.csv", "a,b,label\n")

	if _, err := NewTrainingReader(dir).Load(context.Background(), "renal", 2); err == nil {
		t.Error("expected error for file without data rows")
	}
}

func TestLoadHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewTrainingReader(t.TempDir()).Load(ctx, "cardiac", 10); err == nil {
		t.Error("expected context error")
	}
}
