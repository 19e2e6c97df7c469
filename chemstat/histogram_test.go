package chemstat

import (
	"encoding/json"
	"testing"

	chem "github.com/rmera/gobonds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistogram(Te *testing.T) {
	raw := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44}
	H := NewHistogram([]float64{0, 1, 2, 3, 4, 8}, raw)
	//8 and 44 are off limits
	assert.Equal(Te, 19, H.Total())
	assert.Equal(Te, []float64{2, 4, 2, 4, 7}, H.Counts())
	//the input is not modified
	assert.Equal(Te, 6.0, raw[1])

	H.Normalize()
	assert.True(Te, H.Normalized())
	assert.InDelta(Te, 4.0/19, H.Counts()[1], 1e-12)
	H.Normalize()
	assert.InDelta(Te, 4.0/19, H.Counts()[1], 1e-12)
	H.UnNormalize()
	assert.InDelta(Te, 4.0, H.Counts()[1], 1e-12)

	assert.Panics(Te, func() { NewHistogram([]float64{1}, raw) })
	assert.Panics(Te, func() { NewHistogram([]float64{2, 1}, raw) })

	j, err := json.Marshal(H)
	require.NoError(Te, err)
	assert.Contains(Te, string(j), `"total":19`)
	assert.Contains(Te, H.String(), " 0.0000- 1.0000     2.000")
}

func TestDividers(Te *testing.T) {
	assert.Equal(Te, []float64{0, 0.5, 1}, Dividers(0, 1, 2))
	assert.Panics(Te, func() { Dividers(0, 1, 0) })
	assert.Panics(Te, func() { Dividers(1, 1, 3) })
}

func TestBondLengthHistogram(Te *testing.T) {
	m := mol(Te, []chem.Record{
		{"O", 0, 0, 0},
		{"H", 1.0, 0, 0},
		{"H", 0, 0.9, 0},
		{"C", 5, 0, 0},
		{"O", 6.2, 0, 0},
	})
	H := BondLengthHistogram(m, 3)
	require.NotNil(Te, H)
	assert.Equal(Te, 3, H.Total())
	assert.Equal(Te, []float64{2, 0, 1}, H.Counts())
	assert.InDelta(Te, 0.9, H.Dividers()[0], 1e-12)

	m = mol(Te, []chem.Record{{"He", 0, 0, 0}})
	assert.Nil(Te, BondLengthHistogram(m, 3))
}

func TestLengthHistogram(Te *testing.T) {
	assert.Nil(Te, LengthHistogram(nil, 4))
	//all the lengths equal still give a valid range.
	H := LengthHistogram([]float64{1.1, 1.1}, 2)
	require.NotNil(Te, H)
	assert.Equal(Te, []float64{2, 0}, H.Counts())
	H = LengthHistogram([]float64{1, 2, 3, 4}, 2)
	assert.Equal(Te, 4, H.Total())
	assert.Equal(Te, []float64{2, 2}, H.Counts())
}
