/*
 * json.go, part of gobonds.
 *
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
 *
 */

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/gobonds"
)

//Atom is a ready-to-serialize container for an atom.
type Atom struct {
	Index    int
	Symbol   string
	Z        int
	Position [3]float64
	Radius   float64
	Color    [3]uint8
}

//Bond is a ready-to-serialize container for a bond.
type Bond struct {
	I, J     int
	Length   float64
	Midpoint [3]float64
}

//Document contains everything a renderer needs to draw a molecule.
type Document struct {
	Title string
	Atoms []Atom
	Bonds []Bond
}

func array(p chem.Position) [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

//NewDocument builds the document for m.
func NewDocument(m *chem.Molecule, title string) *Document {
	D := &Document{
		Title: title,
		Atoms: make([]Atom, 0, m.Len()),
		Bonds: make([]Bond, 0, m.NBonds()),
	}
	for i := 0; i < m.Len(); i++ {
		at := m.Atom(i)
		D.Atoms = append(D.Atoms, Atom{
			Index:    i,
			Symbol:   at.Symbol(),
			Z:        at.AtomicNumber(),
			Position: array(at.Position()),
			Radius:   at.CovalentRadius(),
			Color:    at.Color().Array(),
		})
	}
	for _, b := range m.Bonds() {
		D.Bonds = append(D.Bonds, Bond{
			I:        b.I,
			J:        b.J,
			Length:   m.BondLength(b),
			Midpoint: array(m.BondMidpoint(b)),
		})
	}
	return D
}

//Records returns the element and coordinates of each atom in the
//document, in order, ready to build a molecule again.
func (D *Document) Records() []chem.Record {
	ret := make([]chem.Record, len(D.Atoms))
	for i, a := range D.Atoms {
		ret[i] = chem.Record{Symbol: a.Symbol, X: a.Position[0], Y: a.Position[1], Z: a.Position[2]}
	}
	return ret
}

//Encode writes the JSON document for m to w, followed by a newline.
func Encode(w io.Writer, m *chem.Molecule, title string) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(NewDocument(m, title)); err != nil {
		return NewError("postprocess", "chemjson.Encode", err)
	}
	return nil
}

//Decode reads one JSON document from r. The atom indexes must match
//their positions in the document, and bonds can only refer to atoms in it.
func Decode(r io.Reader) (*Document, error) {
	const funcname = "chemjson.Decode"
	D := new(Document)
	if err := json.NewDecoder(r).Decode(D); err != nil {
		return nil, NewError("input", funcname, err)
	}
	for i, a := range D.Atoms {
		if a.Index != i {
			return nil, NewError("input", funcname, fmt.Errorf("atom %d has index %d", i, a.Index))
		}
	}
	for _, b := range D.Bonds {
		if b.I < 0 || b.J < 0 || b.I >= len(D.Atoms) || b.J >= len(D.Atoms) || b.I == b.J {
			return nil, NewError("input", funcname, fmt.Errorf("invalid bond %d-%d for %d atoms", b.I, b.J, len(D.Atoms)))
		}
	}
	return D, nil
}

//Error is an easily JSON-serializable error type, so a failure
//can be reported to the calling program in the same format as the results.
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput       bool //Was it while reading the input?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Function      string //which go function gave the error
	Message       string //the error itself
	err           error
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Unwrap returns the error J was built from.
func (J *Error) Unwrap() error {
	return J.err
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//NewError takes an error and some additional info to create a json-marshal-ble error.
//where can be "input", "postprocess" or anything else, which means the error happened
//while processing.
func NewError(where, function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error(), err: err}
	switch where {
	case "input":
		jerr.InInput = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	return jerr
}
