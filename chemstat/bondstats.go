package chemstat

import (
	"fmt"
	"math"
	"sort"

	chem "github.com/rmera/gobonds"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BondLengths returns the length of each bond of m, in the order of m.Bonds().
func BondLengths(m *chem.Molecule) []float64 {
	bonds := m.Bonds()
	ret := make([]float64, len(bonds))
	for i, b := range bonds {
		ret[i] = m.BondLength(b)
	}
	return ret
}

// Summary holds simple statistics over a set of bond lengths.
type Summary struct {
	N                   int
	Mean, Std, Min, Max float64
}

func (S Summary) String() string {
	if S.N == 0 {
		return "no bonds"
	}
	return fmt.Sprintf("%d bonds, length %.4f +/- %.4f A (min %.4f, max %.4f)", S.N, S.Mean, S.Std, S.Min, S.Max)
}

// Summarize returns the statistics for the lengths in l. The standard
// deviation is the unbiased one, and 0 for a single length.
// An empty l gives the zero Summary.
func Summarize(l []float64) Summary {
	if len(l) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(l, nil)
	if len(l) == 1 || math.IsNaN(std) {
		std = 0
	}
	return Summary{N: len(l), Mean: mean, Std: std, Min: floats.Min(l), Max: floats.Max(l)}
}

// BondSummary is Summarize(BondLengths(m)).
func BondSummary(m *chem.Molecule) Summary {
	return Summarize(BondLengths(m))
}

// PairCount is the number of bonds between two elements.
type PairCount struct {
	Pair   string //the two symbols, sorted and joined by a dash, e.g. "H-O"
	Count  int
	Length Summary
}

// PairCounts groups the bonds of m by the elements of their atoms.
// The result is sorted by pair.
func PairCounts(m *chem.Molecule) []PairCount {
	groups := make(map[string][]float64)
	for _, b := range m.Bonds() {
		s1, s2 := m.Atom(b.I).Symbol(), m.Atom(b.J).Symbol()
		if s2 < s1 {
			s1, s2 = s2, s1
		}
		k := s1 + "-" + s2
		groups[k] = append(groups[k], m.BondLength(b))
	}
	ret := make([]PairCount, 0, len(groups))
	for k, v := range groups {
		ret = append(ret, PairCount{Pair: k, Count: len(v), Length: Summarize(v)})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Pair < ret[j].Pair })
	return ret
}

// Overbonded returns the indexes of the atoms that end up with more bonds
// than their maximal valence. This happens because each atom only caps
// its own proposals, not the bonds proposed to it by others.
func Overbonded(m *chem.Molecule) []int {
	var ret []int
	for i := 0; i < m.Len(); i++ {
		if m.Degree(i) > m.Atom(i).MaximalValence() {
			ret = append(ret, i)
		}
	}
	return ret
}
