/*
 * bonds.go, part of gobonds.
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
	"sort"
)

// Bond is an undirected bond between the atoms with indexes I and J in
// a molecule. I < J always holds for a Bond obtained from NewBond, so
// {i,j} and {j,i} are the same value and the same map key.
type Bond struct {
	I, J int
}

// NewBond returns the bond between atoms i and j, in either order.
// Panics if i == j, as a self-bond can only come from a programming error.
func NewBond(i, j int) Bond {
	if i == j {
		panic(fmt.Sprintf("NewBond: attempted to bond atom %d to itself", i))
	}
	if i > j {
		i, j = j, i
	}
	return Bond{I: i, J: j}
}

// Contains returns true if the atom with index i is one of the ends of B.
func (B Bond) Contains(i int) bool {
	return B.I == i || B.J == i
}

// Cross returns the index of the atom at the other end of the bond from
// origin. Panics if origin is not in the bond.
func (B Bond) Cross(origin int) int {
	if origin == B.I {
		return B.J
	}
	if origin == B.J {
		return B.I
	}
	panic(fmt.Sprintf("Trying to cross bond %v: origin %d is not present in the bond", B, origin)) //programming error
}

func (B Bond) String() string {
	return fmt.Sprintf("%d-%d", B.I, B.J)
}

//sortBonds sorts by the first and then the second index.
func sortBonds(b []Bond) {
	sort.Slice(b, func(i, j int) bool {
		if b[i].I != b[j].I {
			return b[i].I < b[j].I
		}
		return b[i].J < b[j].J
	})
}

// BondSet is a set of bonds. Since bonds are normalized, a bond
// added as {i,j} and later as {j,i} is stored only once.
// The zero value is not usable, use NewBondSet.
type BondSet struct {
	m map[Bond]struct{}
}

// NewBondSet returns an empty set.
func NewBondSet() *BondSet {
	return &BondSet{m: make(map[Bond]struct{})}
}

// Add inserts the bond between i and j, and returns false if it was
// already present.
func (S *BondSet) Add(i, j int) bool {
	b := NewBond(i, j)
	if _, ok := S.m[b]; ok {
		return false
	}
	S.m[b] = struct{}{}
	return true
}

// Has returns true if the bond between i and j, in any order, is in the set.
func (S *BondSet) Has(i, j int) bool {
	if i == j {
		return false
	}
	_, ok := S.m[NewBond(i, j)]
	return ok
}

// Len returns the number of bonds in the set.
func (S *BondSet) Len() int {
	return len(S.m)
}

// Sorted returns the bonds in the set, sorted by the first and then
// the second index.
func (S *BondSet) Sorted() []Bond {
	ret := make([]Bond, 0, len(S.m))
	for b := range S.m {
		ret = append(ret, b)
	}
	sortBonds(ret)
	return ret
}

// Touching returns the bonds in the set that contain atom i, sorted.
func (S *BondSet) Touching(i int) []Bond {
	var ret []Bond
	for b := range S.m {
		if b.Contains(i) {
			ret = append(ret, b)
		}
	}
	sortBonds(ret)
	return ret
}
