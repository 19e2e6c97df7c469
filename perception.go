/*
 * perception.go, part of gobonds.
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

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

// Option configures the bond perception.
type Option func(*options)

type options struct {
	tolerance float64
	workers   int
	log       logr.Logger
}

func resolveOptions(opts []Option) options {
	o := options{
		tolerance: BondTolerance,
		workers:   1,
		log:       logr.Discard(),
	}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// WithTolerance sets the factor applied to the sum of covalent radii to
// get the bonding cutoff. The default is BondTolerance. Panics if tol is
// not positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(fmt.Sprintf("WithTolerance: tolerance must be positive, got %v", tol))
	}
	return func(o *options) { o.tolerance = tol }
}

// WithWorkers sets how many atoms have their neighbours searched at the
// same time. Values below 2 mean a sequential search. The bonds obtained
// do not depend on this setting.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger. V(1) logs a summary of each perception,
// V(2) the bonds proposed by each atom.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// propose returns the indexes of the atoms that atom i proposes to bond
// to: its candidate neighbours sorted by distance (ties keep the atom
// order), up to its maximal valence.
func propose(mol Atomer, i int, tolerance float64) []int {
	at := mol.Atom(i)
	neighs := at.neighboursWithin(mol, tolerance)
	sort.SliceStable(neighs, func(a, b int) bool { return neighs[a].Distance < neighs[b].Distance })
	n := at.MaximalValence()
	if n > len(neighs) {
		n = len(neighs)
	}
	ret := make([]int, n)
	for k := 0; k < n; k++ {
		ret[k] = neighs[k].Index
	}
	return ret
}

// PerceiveBonds returns, for each atom in mol, the bonds it proposes in
// its own pass, as the indexes of the partner atoms, closest first.
// Each atom is considered independently of the others, so an atom can be
// proposed as a partner by more atoms than its own maximal valence.
func PerceiveBonds(mol Atomer, opts ...Option) [][]int {
	o := resolveOptions(opts)
	return perceive(mol, o)
}

func perceive(mol Atomer, o options) [][]int {
	n := mol.Len()
	proposals := make([][]int, n)
	if o.workers < 2 || n < 2 {
		for i := 0; i < n; i++ {
			proposals[i] = propose(mol, i, o.tolerance)
		}
		return proposals
	}
	//each goroutine only writes its own element of proposals,
	//and mol is only read.
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			proposals[i] = propose(mol, i, o.tolerance)
			return nil
		})
	}
	_ = g.Wait() //propose doesn't fail
	return proposals
}
