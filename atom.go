/*
 * atom.go, part of gobonds.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package chem

import "fmt"

const (
	// BondTolerance multiplies the sum of the covalent radii of two atoms
	// to give the longest distance at which they are considered bonded.
	BondTolerance = 1.3
	// IdenticalAtomDistance is the distance under which two atoms are taken
	// to be the same one, and thus never bonded.
	IdenticalAtomDistance = 1e-8
)

// Atom is an element placed at a position. Atoms are immutable; the zero
// value is not a valid Atom, use NewAtom or NewAtomZ.
type Atom struct {
	z   int
	pos Position
}

// NewAtom returns an atom of the element with the given symbol. It returns
// an error wrapping ErrUnknownElement if the symbol is not recognized.
func NewAtom(symbol string, pos Position) (Atom, error) {
	z, err := AtomicNumber(symbol)
	if err != nil {
		return Atom{}, errDecorate(err, "NewAtom")
	}
	return Atom{z: z, pos: pos}, nil
}

// NewAtomZ returns an atom with atomic number z. It returns an error
// wrapping ErrAtomicNumber if z is not in [1,118].
func NewAtomZ(z int, pos Position) (Atom, error) {
	if err := checkAtomicNumber(z); err != nil {
		return Atom{}, errDecorate(err, "NewAtomZ")
	}
	return Atom{z: z, pos: pos}, nil
}

// AtomicNumber returns the atomic number of the atom.
func (A Atom) AtomicNumber() int { return A.z }

// Symbol returns the element symbol of the atom.
func (A Atom) Symbol() string { return Symbol(A.z) }

// Position returns the position of the atom.
func (A Atom) Position() Position { return A.pos }

// CovalentRadius returns the covalent radius of the atom, in A.
func (A Atom) CovalentRadius() float64 { return CovalentRadius(A.z) }

// MaximalValence returns the maximum number of bonds the atom proposes.
func (A Atom) MaximalValence() int { return MaximalValence(A.z) }

// Color returns the display color of the atom.
func (A Atom) Color() RGB { return Color(A.z) }

// Mass returns the mass of the atom, or 0 if not known.
func (A Atom) Mass() float64 { return Mass(A.z) }

// DistanceTo returns the distance between A and B, in A.
func (A Atom) DistanceTo(B Atom) float64 {
	return A.pos.DistanceTo(B.pos)
}

// CouldBeBondedTo returns true if A and B are closer than BondTolerance times
// the sum of their covalent radii, and not at the same position.
// It is symmetric in A and B.
func (A Atom) CouldBeBondedTo(B Atom) bool {
	return A.CouldBeBondedToWithin(B, BondTolerance)
}

// CouldBeBondedToWithin is like CouldBeBondedTo, but with the given
// tolerance instead of BondTolerance.
func (A Atom) CouldBeBondedToWithin(B Atom, tolerance float64) bool {
	return A.couldBeBonded(A.DistanceTo(B), B, tolerance)
}

func (A Atom) couldBeBonded(r float64, B Atom, tolerance float64) bool {
	return r > IdenticalAtomDistance && r < tolerance*(A.CovalentRadius()+B.CovalentRadius())
}

// Equal returns true if A and B are the same element at (very nearly) the
// same position.
func (A Atom) Equal(B Atom) bool {
	return A.z == B.z && A.pos.IsVeryCloseTo(B.pos)
}

func (A Atom) String() string {
	return fmt.Sprintf("%s %s", A.Symbol(), A.pos)
}

// Neighbour is a candidate bonding partner: the index of the atom in
// the molecule and its distance to the atom whose neighbour it is.
type Neighbour struct {
	Index    int
	Distance float64
}

// NeighboursIn returns the atoms of mol that could be bonded to A, in the
// order in which they appear in mol. A itself, if present, is excluded
// by the distance check.
func (A Atom) NeighboursIn(mol Atomer) []Neighbour {
	return A.neighboursWithin(mol, BondTolerance)
}

func (A Atom) neighboursWithin(mol Atomer, tolerance float64) []Neighbour {
	var ret []Neighbour
	for i := 0; i < mol.Len(); i++ {
		B := mol.Atom(i)
		r := A.DistanceTo(B)
		if A.couldBeBonded(r, B, tolerance) {
			ret = append(ret, Neighbour{Index: i, Distance: r})
		}
	}
	return ret
}

// Atoms is a list of atoms. It implements Atomer.
type Atoms []Atom

// Len returns the number of atoms.
func (A Atoms) Len() int { return len(A) }

// Atom returns the ith atom. Panics if i is out of range.
func (A Atoms) Atom(i int) Atom { return A[i] }

// Record is an atom as read from a coordinate file: an element symbol and
// cartesian coordinates, in A. The symbol is not validated until the
// record is turned into an Atom.
type Record struct {
	Symbol  string
	X, Y, Z float64
}

// Atom returns the Atom described by the record.
func (R Record) Atom() (Atom, error) {
	a, err := NewAtom(R.Symbol, NewPosition(R.X, R.Y, R.Z))
	if err != nil {
		return a, errDecorate(err, "Record.Atom")
	}
	return a, nil
}

// AtomsFromRecords turns all records into atoms, in order. It stops at the
// first record with an unknown symbol, returning an error that names the
// record's index.
func AtomsFromRecords(recs []Record) (Atoms, error) {
	ret := make(Atoms, 0, len(recs))
	for i, r := range recs {
		a, err := r.Atom()
		if err != nil {
			return nil, newCError(err, "AtomsFromRecords", "record %d", i)
		}
		ret = append(ret, a)
	}
	return ret, nil
}
