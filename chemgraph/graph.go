package chemgraph

import (
	"fmt"
	"math"
	"sort"

	chem "github.com/rmera/gobonds"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a node of the graph. Its ID is the index of the atom in the molecule.
type Atom struct {
	chem.Atom
	index int
}

func (A *Atom) ID() int64 {
	return int64(A.index)
}

// Index returns the index of the atom in the molecule.
func (A *Atom) Index() int {
	return A.index
}

// Bond is an edge of the graph, weighted by the bond length.
type Bond struct {
	chem.Bond
	At1, At2 *Atom
	length   float64
}

func (B *Bond) Weight() float64 {
	return B.length
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

// ReversedEdge returns a new Bond with the ends swapped. B is not modified.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1, length: B.length}
}

// Topology implements the gonum graph.WeightedUndirected interface
// for a molecule. It is read-only.
type Topology struct {
	atoms []*Atom
	bonds map[chem.Bond]*Bond
	adj   [][]int
}

// NewTopology returns the graph for mol, with one node per atom and
// one edge per bond.
func NewTopology(mol chem.Bonder) *Topology {
	T := &Topology{
		atoms: make([]*Atom, mol.Len()),
		bonds: make(map[chem.Bond]*Bond),
		adj:   make([][]int, mol.Len()),
	}
	for i := range T.atoms {
		T.atoms[i] = &Atom{Atom: mol.Atom(i), index: i}
	}
	for _, b := range mol.Bonds() {
		a1, a2 := T.atoms[b.I], T.atoms[b.J]
		T.bonds[b] = &Bond{Bond: b, At1: a1, At2: a2, length: a1.DistanceTo(a2.Atom)}
		T.adj[b.I] = append(T.adj[b.I], b.J)
		T.adj[b.J] = append(T.adj[b.J], b.I)
	}
	for _, v := range T.adj {
		sort.Ints(v)
	}
	return T
}

func (T *Topology) has(id int64) bool {
	return id >= 0 && id < int64(len(T.atoms))
}

// Node returns the atom with the given ID, or nil if it doesn't exist.
func (T *Topology) Node(id int64) graph.Node {
	if !T.has(id) {
		return nil
	}
	return T.atoms[id]
}

func (T *Topology) Nodes() graph.Nodes {
	if len(T.atoms) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(T.atoms))
	for i, a := range T.atoms {
		nodes[i] = a
	}
	return iterator.NewOrderedNodes(nodes)
}

// From returns the atoms bonded to the atom with the given ID.
func (T *Topology) From(id int64) graph.Nodes {
	if !T.has(id) || len(T.adj[id]) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(T.adj[id]))
	for _, j := range T.adj[id] {
		nodes = append(nodes, T.atoms[j])
	}
	return iterator.NewOrderedNodes(nodes)
}

func (T *Topology) bond(uid, vid int64) *Bond {
	if !T.has(uid) || !T.has(vid) || uid == vid {
		return nil
	}
	b, ok := T.bonds[chem.NewBond(int(uid), int(vid))]
	if !ok {
		return nil
	}
	if b.At1.ID() != uid {
		return b.ReversedEdge().(*Bond)
	}
	return b
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	return T.bond(xid, yid) != nil
}

// Edge returns the bond from u to v, or nil. Since the graph is
// undirected, it is the same bond as from v to u, with the ends swapped.
func (T *Topology) Edge(uid, vid int64) graph.Edge {
	return T.WeightedEdge(uid, vid)
}

func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	return T.WeightedEdge(xid, yid)
}

func (T *Topology) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	b := T.bond(uid, vid)
	if b == nil {
		return nil
	}
	return b
}

func (T *Topology) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	return T.WeightedEdge(xid, yid)
}

// Weight returns the length of the bond between x and y. It returns 0 if x
// and y are the same atom, and +Inf and false if they are not bonded.
func (T *Topology) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	b := T.bond(xid, yid)
	if b == nil {
		return math.Inf(1), false
	}
	return b.Weight(), true
}

// Fragments returns the connected components of mol, i.e. the groups of
// atoms that are linked by bonds, as sorted slices of atom indexes.
// The fragments are sorted by their first index.
func Fragments(mol chem.Bonder) [][]int {
	cc := topo.ConnectedComponents(NewTopology(mol))
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		f := make([]int, len(c))
		for i, n := range c {
			f[i] = int(n.ID())
		}
		sort.Ints(f)
		ret = append(ret, f)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// ShortestPath returns the indexes of the atoms in the path from atom
// from to atom to that minimizes the sum of bond lengths, both ends
// included, and the length of the path. If there is no such path, it
// returns nil and +Inf. It returns an error if an index is out of range.
func ShortestPath(mol chem.Bonder, from, to int) ([]int, float64, error) {
	if from < 0 || from >= mol.Len() || to < 0 || to >= mol.Len() {
		return nil, 0, fmt.Errorf("chemgraph.ShortestPath: atom index (%d or %d) out of range for %d atoms", from, to, mol.Len())
	}
	T := NewTopology(mol)
	sh := path.DijkstraFrom(T.Node(int64(from)), T)
	nodes, w := sh.To(int64(to))
	if len(nodes) == 0 {
		return nil, math.Inf(1), nil
	}
	ret := make([]int, len(nodes))
	for i, n := range nodes {
		ret[i] = int(n.ID())
	}
	return ret, w, nil
}
