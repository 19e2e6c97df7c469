/*
 * position.go, part of gobonds.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// VeryClose is the absolute tolerance, per coordinate, used by IsVeryCloseTo.
const VeryClose = 1e-16

// Position is a point in 3D space, in A. It is a value type; all the
// operations return new Positions.
type Position struct {
	X, Y, Z float64
}

// NewPosition returns the Position (x, y, z).
func NewPosition(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z}
}

// PositionFromVec converts a gonum r3.Vec into a Position.
func PositionFromVec(v r3.Vec) Position {
	return Position(v)
}

// Vec returns P as a gonum r3.Vec.
func (P Position) Vec() r3.Vec {
	return r3.Vec(P)
}

// Add returns P+Q.
func (P Position) Add(Q Position) Position {
	return Position(r3.Add(P.Vec(), Q.Vec()))
}

// Sub returns P-Q.
func (P Position) Sub(Q Position) Position {
	return Position(r3.Sub(P.Vec(), Q.Vec()))
}

// Scale returns f*P.
func (P Position) Scale(f float64) Position {
	return Position(r3.Scale(f, P.Vec()))
}

// Div returns P/f. Dividing by zero gives infinities or NaNs, as with floats.
func (P Position) Div(f float64) Position {
	return Position{P.X / f, P.Y / f, P.Z / f}
}

// Neg returns -P.
func (P Position) Neg() Position {
	return P.Scale(-1)
}

// Midpoint returns the point halfway between P and Q.
func (P Position) Midpoint(Q Position) Position {
	return P.Add(Q).Div(2)
}

// DistanceTo returns the euclidean distance between P and Q.
// NaN and infinite coordinates propagate to the result.
func (P Position) DistanceTo(Q Position) float64 {
	return r3.Norm(r3.Sub(P.Vec(), Q.Vec()))
}

// IsVeryCloseTo returns true if each coordinate of P differs from the
// corresponding one of Q by less than VeryClose. The tolerance is absolute,
// so this is only meaningful to decide whether two positions are really
// the same one, not as a general numerical comparison.
func (P Position) IsVeryCloseTo(Q Position) bool {
	return math.Abs(P.X-Q.X) < VeryClose &&
		math.Abs(P.Y-Q.Y) < VeryClose &&
		math.Abs(P.Z-Q.Z) < VeryClose
}

func (P Position) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", P.X, P.Y, P.Z)
}

// Centroid returns the average of the given positions, or the origin
// if none is given.
func Centroid(ps ...Position) Position {
	var c Position
	if len(ps) == 0 {
		return c
	}
	for _, p := range ps {
		c = c.Add(p)
	}
	return c.Div(float64(len(ps)))
}
