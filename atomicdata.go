/*
 * atomicdata.go, part of gobonds.
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

// MaxAtomicNumber is the largest atomic number recognized (Og).
const MaxAtomicNumber = 118

// Defaults for the elements missing from the tables below.
const (
	DefaultCovalentRadius = 2.0 // Angstrom
	DefaultMaximalValence = 6
)

// DefaultColor is the color of the elements without a tabulated one.
var DefaultColor = RGB{252, 252, 252}

const picometersToAngstroms = 0.01

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Array returns the channels as an array, in R, G, B order.
func (c RGB) Array() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

//The element symbols, index = atomic number - 1
var symbols = [MaxAtomicNumber]string{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne", "Na", "Mg",
	"Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca", "Sc", "Ti", "V", "Cr",
	"Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br",
	"Kr", "Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd",
	"Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe", "Cs", "Ba", "La",
	"Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er",
	"Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au",
	"Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md",
	"No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var symbolIndex = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for i, s := range symbols {
		m[s] = i + 1
	}
	return m
}()

//Covalent radii in picometers, H to Rn.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//C is the sp3 radius, Mn, Fe and Co the high spin ones.
var covalentRadiiPm = [...]float64{
	31, 28,
	128, 96, 84, 76, 71, 66, 57, 58,
	166, 141, 121, 111, 107, 105, 102, 106,
	203, 176, 170, 160, 153, 139, 161, 152, 150, 124, 132, 122, 122, 120, 119, 120, 120, 116,
	220, 195, 190, 175, 164, 154, 147, 146, 142, 139, 145, 144, 142, 139, 139, 138, 139, 140,
	244, 215,
	207, 204, 203, 201, 199, 198, 198, 196, 194, 192, 192, 189, 190, 187, 187,
	175, 170, 162, 151, 144, 141, 136, 136, 132, 145, 146, 148, 140, 150, 150,
}

//Maximal number of bonds, H to Sr. 0 means the element doesn't bond.
var maximalValences = [...]int{
	1, 0,
	1, 2, 3, 4, 5, 2, 1, 0,
	1, 2, 3, 4, 5, 6, 7, 0,
	1, 2, 3, 4, 5, 6, 7, 7, 5, 4, 4, 6, 3, 4, 5, 6, 7, 2,
	1, 2,
}

//Display colors, H to Cl.
var colors = [...]RGB{
	{191, 191, 191}, // H
	{208, 255, 255}, // He
	{217, 123, 255}, // Li
	{176, 255, 0},   // Be
	{255, 178, 179}, // B
	{102, 102, 102}, // C
	{12, 12, 255},   // N
	{255, 0, 0},     // O
	{112, 181, 255}, // F
	{166, 229, 248}, // Ne
	{183, 88, 251},  // Na
	{82, 255, 0},    // Mg
	{196, 165, 165}, // Al
	{121, 154, 153}, // Si
	{255, 119, 0},   // P
	{179, 179, 0},   // S
	{0, 244, 0},     // Cl
}

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.003,
	"Li": 6.94,
	"B":  10.81,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
	"Ne": 20.18,
	"Ar": 39.95,
	"Al": 26.98,
}

// AtomicNumber returns the atomic number for the given element symbol. The
// lookup is case-sensitive ("Co" is cobalt, "CO" is an error). There is no
// fallback: an unknown symbol returns an error wrapping ErrUnknownElement.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbolIndex[symbol]
	if !ok {
		return 0, newCError(ErrUnknownElement, "AtomicNumber", "symbol %q", symbol)
	}
	return z, nil
}

// Symbol returns the element symbol for the atomic number z, or the
// empty string if z is not in [1,118].
func Symbol(z int) string {
	if z < 1 || z > MaxAtomicNumber {
		return ""
	}
	return symbols[z-1]
}

// Symbols returns a copy of the 118 element symbols, index = atomic number - 1.
func Symbols() []string {
	ret := make([]string, len(symbols))
	copy(ret, symbols[:])
	return ret
}

func checkAtomicNumber(z int) error {
	if z < 1 || z > MaxAtomicNumber {
		return newCError(ErrAtomicNumber, "checkAtomicNumber", "%d", z)
	}
	return nil
}

// CovalentRadius returns the covalent radius, in A, of the element with
// atomic number z. Elements beyond the table (Fr onwards) get
// DefaultCovalentRadius.
func CovalentRadius(z int) float64 {
	if z < 1 || z > len(covalentRadiiPm) {
		return DefaultCovalentRadius
	}
	return covalentRadiiPm[z-1] * picometersToAngstroms
}

// MaximalValence returns the maximum number of bonds an atom with atomic
// number z is allowed to propose. Elements beyond the table (Y onwards)
// get DefaultMaximalValence.
func MaximalValence(z int) int {
	if z < 1 || z > len(maximalValences) {
		return DefaultMaximalValence
	}
	return maximalValences[z-1]
}

// Color returns the display color for the atomic number z, or DefaultColor
// if the element has none tabulated (Ar onwards).
func Color(z int) RGB {
	if z < 1 || z > len(colors) {
		return DefaultColor
	}
	return colors[z-1]
}

// Mass returns the atomic mass of the element z, or 0 if it is not known.
func Mass(z int) float64 {
	return symbolMass[Symbol(z)]
}

// ElementInfo is a summary of the tabulated data for one element.
type ElementInfo struct {
	Z              int
	Symbol         string
	CovalentRadius float64
	MaximalValence int
	Color          RGB
	Mass           float64
}

func (E ElementInfo) String() string {
	return fmt.Sprintf("%s (Z=%d) r=%.2f A maxval=%d", E.Symbol, E.Z, E.CovalentRadius, E.MaximalValence)
}

// Element returns all the tabulated data for the atomic number z.
func Element(z int) (ElementInfo, error) {
	if err := checkAtomicNumber(z); err != nil {
		return ElementInfo{}, errDecorate(err, "Element")
	}
	return ElementInfo{
		Z:              z,
		Symbol:         Symbol(z),
		CovalentRadius: CovalentRadius(z),
		MaximalValence: MaximalValence(z),
		Color:          Color(z),
		Mass:           Mass(z),
	}, nil
}
