package chemplot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/gobonds"
	"github.com/rmera/gobonds/chemstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func water(Te *testing.T) *chem.Molecule {
	Te.Helper()
	mol, err := chem.MoleculeFromRecords([]chem.Record{
		{"O", 0, 0, 0},
		{"H", 0.9572, 0, 0},
		{"H", -0.2400, 0.9266, 0},
	})
	require.NoError(Te, err)
	return mol
}

func TestWriteHistogram(Te *testing.T) {
	var buf bytes.Buffer
	require.NoError(Te, WriteHistogram(&buf, water(Te), 5, "water", "png"))
	assert.True(Te, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestSaveHistogram(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "hist.svg")
	require.NoError(Te, SaveHistogram(water(Te), 3, "water", name))
	info, err := os.Stat(name)
	require.NoError(Te, err)
	assert.NotZero(Te, info.Size())
}

func TestHistogramErrors(Te *testing.T) {
	_, err := BondLengthHistogram(nil, 5, "empty")
	assert.Error(Te, err)
	_, err = BondLengthHistogram([]float64{1, 2}, 0, "nobins")
	assert.Error(Te, err)
	mol, err := chem.MoleculeFromRecords([]chem.Record{{"He", 0, 0, 0}})
	require.NoError(Te, err)
	assert.Error(Te, WriteHistogram(&bytes.Buffer{}, mol, 5, "He", "png"))
}

func TestHistogramBinsMatchStats(Te *testing.T) {
	lengths := []float64{0.96, 0.96, 1.09, 1.10, 1.20, 1.54, 1.54, 1.54}
	for _, bins := range []int{1, 3, 7} {
		_, err := BondLengthHistogram(lengths, bins, "bins")
		require.NoError(Te, err)
		H := chemstat.LengthHistogram(lengths, bins)
		h := histBars(H)
		div, counts := H.Dividers(), H.Counts()
		require.Len(Te, h.Bins, bins)
		total := 0.0
		for i, b := range h.Bins {
			assert.Equal(Te, div[i], b.Min)
			assert.Equal(Te, div[i+1], b.Max)
			assert.Equal(Te, counts[i], b.Weight)
			total += b.Weight
		}
		assert.Equal(Te, float64(len(lengths)), total)
	}
}
