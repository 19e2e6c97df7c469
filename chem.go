/*
 * chem.go, part of gobonds.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

package chem

import (
	"fmt"
	"sort"
	"strings"
)

/**Note: Accessors here panic instead of returning errors when given an index out of range.
 * This is because they are "fundamental" functions. If something goes wrong here, the program
 * is way-most likely wrong and should crash.**/

// Molecule is a set of atoms and the bonds among them. The bonds are
// assigned when the Molecule is created and never change afterwards.
// A Molecule is safe for concurrent reads.
type Molecule struct {
	atoms     Atoms
	bonds     *BondSet
	sorted    []Bond
	proposed  [][]int
	adjacent  [][]int
	tolerance float64
}

// NewMolecule returns a molecule with a copy of the given atoms, in the
// same order, and with its bonds assigned. The order of the atoms matters,
// as bonds refer to atoms by their index.
func NewMolecule(atoms []Atom, opts ...Option) *Molecule {
	o := resolveOptions(opts)
	M := &Molecule{
		atoms:     make(Atoms, len(atoms)),
		bonds:     NewBondSet(),
		tolerance: o.tolerance,
	}
	copy(M.atoms, atoms)
	M.proposed = perceive(M.atoms, o)
	proposals := 0
	for i, p := range M.proposed {
		for _, j := range p {
			M.bonds.Add(i, j)
		}
		proposals += len(p)
		if o.log.V(2).Enabled() {
			o.log.V(2).Info("bonds proposed", "atom", i, "symbol", M.atoms[i].Symbol(), "partners", p)
		}
	}
	M.sorted = M.bonds.Sorted()
	M.adjacent = make([][]int, len(M.atoms))
	for _, b := range M.sorted {
		M.adjacent[b.I] = append(M.adjacent[b.I], b.J)
		M.adjacent[b.J] = append(M.adjacent[b.J], b.I)
	}
	for _, v := range M.adjacent {
		sort.Ints(v)
	}
	o.log.V(1).Info("bonds assigned", "atoms", len(M.atoms), "proposals", proposals,
		"bonds", len(M.sorted), "tolerance", o.tolerance, "workers", o.workers)
	return M
}

// MoleculeFromRecords builds the atoms for the given records and returns
// the molecule they form. If any record has an unknown element symbol, no
// molecule is built and the error, which wraps ErrUnknownElement, names
// the record.
func MoleculeFromRecords(recs []Record, opts ...Option) (*Molecule, error) {
	ats, err := AtomsFromRecords(recs)
	if err != nil {
		return nil, errDecorate(err, "MoleculeFromRecords")
	}
	return NewMolecule(ats, opts...), nil
}

// Len returns the number of atoms.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

// Atom returns the atom with index i. Panics if out of range.
func (M *Molecule) Atom(i int) Atom {
	if i < 0 || i >= len(M.atoms) {
		panic(fmt.Sprintf("Molecule: Requested Atom %d out of bounds", i))
	}
	return M.atoms[i]
}

// Atoms returns a copy of the atoms, in order.
func (M *Molecule) Atoms() Atoms {
	ret := make(Atoms, len(M.atoms))
	copy(ret, M.atoms)
	return ret
}

// Tolerance returns the bonding tolerance used to build the molecule.
func (M *Molecule) Tolerance() float64 {
	return M.tolerance
}

// Bonds returns a copy of the bonds, sorted by their first and then
// second index.
func (M *Molecule) Bonds() []Bond {
	ret := make([]Bond, len(M.sorted))
	copy(ret, M.sorted)
	return ret
}

// NBonds returns the number of bonds.
func (M *Molecule) NBonds() int {
	return len(M.sorted)
}

// HasBond returns true if atoms i and j are bonded.
func (M *Molecule) HasBond(i, j int) bool {
	return M.bonds.Has(i, j)
}

// Proposed returns the indexes of the atoms that atom i proposed to bond
// to in its own pass, closest first. It has at most
// M.Atom(i).MaximalValence() elements.
func (M *Molecule) Proposed(i int) []int {
	M.Atom(i) //bounds check
	ret := make([]int, len(M.proposed[i]))
	copy(ret, M.proposed[i])
	return ret
}

// Neighbours returns the indexes of the atoms bonded to atom i, in
// increasing order. This includes the bonds proposed by other atoms, so
// it can be longer than Proposed(i).
func (M *Molecule) Neighbours(i int) []int {
	M.Atom(i)
	ret := make([]int, len(M.adjacent[i]))
	copy(ret, M.adjacent[i])
	return ret
}

// Degree returns the number of bonds of atom i.
func (M *Molecule) Degree(i int) int {
	M.Atom(i)
	return len(M.adjacent[i])
}

// BondEnds returns the positions of the two atoms in B.
// Panics if B refers to atoms not in the molecule.
func (M *Molecule) BondEnds(B Bond) (Position, Position) {
	return M.Atom(B.I).Position(), M.Atom(B.J).Position()
}

// BondLength returns the distance between the atoms in B, in A.
func (M *Molecule) BondLength(B Bond) float64 {
	p1, p2 := M.BondEnds(B)
	return p1.DistanceTo(p2)
}

// BondMidpoint returns the point halfway between the atoms in B.
func (M *Molecule) BondMidpoint(B Bond) Position {
	p1, p2 := M.BondEnds(B)
	return p1.Midpoint(p2)
}

// Centroid returns the geometric center of the molecule.
func (M *Molecule) Centroid() Position {
	ps := make([]Position, len(M.atoms))
	for i, a := range M.atoms {
		ps[i] = a.Position()
	}
	return Centroid(ps...)
}

// Formula returns the molecular formula of the molecule. See Formula.
func (M *Molecule) Formula() string {
	return Formula(M.atoms)
}

// Formula returns the molecular formula of ats in Hill order: C, then H,
// then the rest alphabetically, or everything alphabetically if there is no C.
func Formula(ats Atomer) string {
	counts := make(map[string]int)
	for i := 0; i < ats.Len(); i++ {
		counts[ats.Atom(i).Symbol()]++
	}
	syms := make([]string, 0, len(counts))
	for s := range counts {
		syms = append(syms, s)
	}
	_, hasC := counts["C"]
	rank := func(s string) int {
		if !hasC {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.Slice(syms, func(i, j int) bool {
		ri, rj := rank(syms[i]), rank(syms[j])
		if ri != rj {
			return ri < rj
		}
		return syms[i] < syms[j]
	})
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s)
		if counts[s] > 1 {
			fmt.Fprintf(&b, "%d", counts[s])
		}
	}
	return b.String()
}

func (M *Molecule) String() string {
	return fmt.Sprintf("%s: %d atoms, %d bonds", M.Formula(), M.Len(), M.NBonds())
}
