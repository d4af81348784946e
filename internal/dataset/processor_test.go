package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medrisk/domain/clinical"
)

func TestCleanDropsMalformedRecords(t *testing.T) {
	records := []clinical.TrainingRecord{
		{Features: []float64{1, 2}, Label: 1},
		{Features: []float64{1}, Label: 0},                // wrong length
		{Features: []float64{math.NaN(), 2}, Label: 1},    // non-finite
		{Features: []float64{1, math.Inf(-1)}, Label: 0},  // non-finite
		{Features: []float64{3, 4}, Label: 0},
	}

	kept, dropped := Clean(records, 2)
	assert.Len(t, kept, 2)
	assert.Equal(t, 3, dropped)
}

func TestProfileComputesSummaries(t *testing.T) {
	records := []clinical.TrainingRecord{
		{Features: []float64{1, 10}, Label: 1},
		{Features: []float64{2, 20}, Label: 0},
		{Features: []float64{3, 30}, Label: 1},
	}

	profile, err := Profile(records, []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, 3, profile.Rows)
	assert.Equal(t, 2, profile.Positives)
	require.Len(t, profile.Features, 2)

	a := profile.Features[0]
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, 1.0, a.Min)
	assert.Equal(t, 3.0, a.Max)
	assert.Equal(t, 2.0, a.Mean)
	assert.Equal(t, 2.0, a.Median)

	b := profile.Features[1]
	assert.Equal(t, 20.0, b.Mean)
}

func TestProfileEmptyCohort(t *testing.T) {
	profile, err := Profile(nil, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Rows)
	assert.Empty(t, profile.Features)
}
