package chem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAtom(Te *testing.T, sym string, x, y, z float64) Atom {
	Te.Helper()
	a, err := NewAtom(sym, NewPosition(x, y, z))
	require.NoError(Te, err)
	return a
}

func TestNewAtom(Te *testing.T) {
	a := mustAtom(Te, "O", 1, 2, 3)
	assert.Equal(Te, 8, a.AtomicNumber())
	assert.Equal(Te, "O", a.Symbol())
	assert.Equal(Te, NewPosition(1, 2, 3), a.Position())
	assert.InDelta(Te, 0.66, a.CovalentRadius(), 1e-12)
	assert.Equal(Te, 2, a.MaximalValence())
	assert.Equal(Te, RGB{255, 0, 0}, a.Color())

	_, err := NewAtom("Xx", Position{})
	assert.True(Te, errors.Is(err, ErrUnknownElement))

	b, err := NewAtomZ(87, Position{})
	require.NoError(Te, err)
	assert.Equal(Te, "Fr", b.Symbol())
	assert.Equal(Te, DefaultCovalentRadius, b.CovalentRadius())
	_, err = NewAtomZ(0, Position{})
	assert.True(Te, errors.Is(err, ErrAtomicNumber))
}

func TestAtomEqual(Te *testing.T) {
	a := mustAtom(Te, "C", 0, 0, 0)
	assert.True(Te, a.Equal(mustAtom(Te, "C", 0, 0, 0)))
	assert.False(Te, a.Equal(mustAtom(Te, "N", 0, 0, 0)))
	assert.False(Te, a.Equal(mustAtom(Te, "C", 0, 0, 1e-9)))
}

func TestCouldBeBonded(Te *testing.T) {
	h1 := mustAtom(Te, "H", 0, 0, 0)
	h2 := mustAtom(Te, "H", 0, 0, 0.74)
	far := mustAtom(Te, "H", 0, 0, 5)
	assert.True(Te, h1.CouldBeBondedTo(h2))
	assert.True(Te, h2.CouldBeBondedTo(h1))
	assert.False(Te, h1.CouldBeBondedTo(far))
	//an atom is never bonded to itself or to an atom at the same place
	assert.False(Te, h1.CouldBeBondedTo(h1))
	assert.False(Te, h1.CouldBeBondedTo(mustAtom(Te, "H", 0, 0, 1e-9)))
	//the cutoff is strict: 1.3*(0.31+0.31)=0.806
	assert.True(Te, h1.CouldBeBondedTo(mustAtom(Te, "H", 0, 0, 0.805)))
	assert.False(Te, h1.CouldBeBondedTo(mustAtom(Te, "H", 0, 0, 0.807)))
	//a larger tolerance reaches farther
	assert.True(Te, h1.CouldBeBondedToWithin(mustAtom(Te, "H", 0, 0, 0.9), 1.5))
}

func TestNeighboursIn(Te *testing.T) {
	mol := Atoms{
		mustAtom(Te, "C", 0, 0, 0),
		mustAtom(Te, "H", 0, 0, 1.1),
		mustAtom(Te, "H", 8, 0, 0),
		mustAtom(Te, "H", 1.0, 0, 0),
	}
	n := mol[0].NeighboursIn(mol)
	require.Len(Te, n, 2)
	//scan order, not distance order
	assert.Equal(Te, 1, n[0].Index)
	assert.InDelta(Te, 1.1, n[0].Distance, 1e-12)
	assert.Equal(Te, 3, n[1].Index)
	assert.InDelta(Te, 1.0, n[1].Distance, 1e-12)
	assert.Empty(Te, mol[2].NeighboursIn(mol))
}

func TestAtomsFromRecords(Te *testing.T) {
	ats, err := AtomsFromRecords([]Record{{"H", 0, 0, 0}, {"Cl", 0, 0, 1.3}})
	require.NoError(Te, err)
	require.Len(Te, ats, 2)
	assert.Equal(Te, 17, ats[1].AtomicNumber())

	_, err = AtomsFromRecords([]Record{{"H", 0, 0, 0}, {"Xx", 1, 0, 0}})
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrUnknownElement))
	assert.Contains(Te, err.Error(), "record 1")
	assert.Contains(Te, err.Error(), `"Xx"`)
}
