/*
 * doc.go, part of gobonds.
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

/*
Package chem infers the connectivity of a molecule from the cartesian
coordinates and the element of each of its atoms. The result is a
molecular graph (atoms as nodes, bonds as edges) that other programs can
render or analyze.

	**Capabilities**

    Element data (covalent radius, maximal valence, display color, mass)
	for all 118 elements, with documented defaults for the elements
	whose values are not tabulated.

    Atoms are built from an element symbol and a position. Unknown symbols
	are a hard error.

    Bonds are assigned with a per-atom greedy rule: each atom takes its
	closest candidate partners, up to its maximal valence, among the atoms
	closer than 1.3 times the sum of the covalent radii. The proposals of
	all atoms are merged into one set of undirected bonds.

    The neighbour search can run concurrently over the atoms, with results
	identical to the sequential run.

The subpackages build on the Molecule type: chemgraph exposes it as a gonum
graph, chemjson serializes it for external renderers, chemstat and chemplot
summarize bond lengths, and xyz reads and writes (optionally compressed)
XYZ files.

The bond assignment is a heuristic. An atom can end up with more bonds than
its maximal valence when its neighbours propose bonds to it, and no bond
orders, charges or periodic boundaries are considered.
*/
package chem
