package chemstat

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	chem "github.com/rmera/gobonds"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Histogram is a distribution of values (usually bond lengths) over
//bins delimited by increasing dividers.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//Dividers returns n+1 evenly spaced dividers for n bins between min and max.
//It panics if n < 1 or min >= max.
func Dividers(min, max float64, n int) []float64 {
	if n < 1 || !(min < max) {
		panic(fmt.Sprintf("chemstat.Dividers: invalid range %g-%g with %d bins", min, max, n))
	}
	return floats.Span(make([]float64, n+1), min, max)
}

//NewHistogram returns the histogram of rawdata over the bins given by dividers,
//which need at least 2 elements, in increasing order. Values outside the
//dividers are omitted. rawdata is not modified.
func NewHistogram(dividers []float64, rawdata []float64) *Histogram {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("chemstat.NewHistogram: dividers must be at least 2, in increasing order")
	}
	H := &Histogram{dividers: append([]float64(nil), dividers...)}
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, dividers[len(dividers)-1])
	data = data[:maxi]
	mini := sort.SearchFloat64s(data, dividers[0])
	data = data[mini:]
	H.total = len(data)
	H.histo = stat.Histogram(nil, H.dividers, data, nil)
	return H
}

//BondLengthHistogram returns the histogram of the bond lengths of m over n
//bins spanning the shortest to the longest bond. It returns nil if m has no bonds.
func BondLengthHistogram(m *chem.Molecule, n int) *Histogram {
	return LengthHistogram(BondLengths(m), n)
}

//LengthHistogram returns the histogram of lengths over n bins of the same
//width that span all of them, or nil if lengths is empty.
func LengthHistogram(lengths []float64, n int) *Histogram {
	if len(lengths) == 0 {
		return nil
	}
	min, max := floats.Min(lengths), floats.Max(lengths)
	//the last divider is exclusive, so the longest bond needs room.
	max += 1e-6 * (1 + max - min)
	return NewHistogram(Dividers(min, max, n), lengths)
}

//Total returns the number of values counted.
func (H *Histogram) Total() int {
	return H.total
}

//Counts returns a copy of the value of each bin.
func (H *Histogram) Counts() []float64 {
	return append([]float64(nil), H.histo...)
}

//Dividers returns a copy of the dividers of the histogram.
func (H *Histogram) Dividers() []float64 {
	return append([]float64(nil), H.dividers...)
}

//Normalized returns true if the histogram is normalized
func (H *Histogram) Normalized() bool {
	return H.normalized
}

//Normalize divides each bin by the total, so the bins sum to 1.
func (H *Histogram) Normalize() {
	H.normaunnorma(true)
}

//UnNormalize undoes Normalize
func (H *Histogram) UnNormalize() {
	H.normaunnorma(false)
}

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || normalize == H.normalized {
		return
	}
	n := float64(H.total)
	if normalize {
		n = 1 / n
	}
	H.normalized = normalize
	floats.Scale(n, H.histo)
}

//String prints one line per bin, with its limits and its value.
func (H *Histogram) String() string {
	lines := make([]string, 0, len(H.histo))
	for i, v := range H.histo {
		lines = append(lines, fmt.Sprintf("%7.4f-%7.4f %9.3f", H.dividers[i], H.dividers[i+1], v))
	}
	return strings.Join(lines, "\n")
}

func (H *Histogram) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: H.normalized,
		Total:      H.total,
		Dividers:   H.dividers,
		Histo:      H.histo,
	})
}
