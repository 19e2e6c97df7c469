package chem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolRoundTrip(Te *testing.T) {
	syms := Symbols()
	require.Len(Te, syms, MaxAtomicNumber)
	for i, s := range syms {
		z, err := AtomicNumber(s)
		require.NoError(Te, err, s)
		assert.Equal(Te, i+1, z)
		assert.Equal(Te, s, Symbol(z))
	}
	assert.Equal(Te, "", Symbol(0))
	assert.Equal(Te, "", Symbol(119))
}

func TestUnknownSymbols(Te *testing.T) {
	for _, s := range []string{"Xx", "", "CO", "h", "Uuo"} {
		_, err := AtomicNumber(s)
		require.Error(Te, err, s)
		assert.True(Te, errors.Is(err, ErrUnknownElement), s)
	}
}

func TestCovalentRadii(Te *testing.T) {
	assert.InDelta(Te, 0.31, CovalentRadius(1), 1e-12)
	assert.InDelta(Te, 0.76, CovalentRadius(6), 1e-12)
	assert.InDelta(Te, 2.03, CovalentRadius(19), 1e-12) //K
	assert.InDelta(Te, 1.20, CovalentRadius(35), 1e-12) //Br
	assert.InDelta(Te, 1.50, CovalentRadius(86), 1e-12) //Rn, last tabulated
	//Fr and beyond are not tabulated
	assert.Equal(Te, DefaultCovalentRadius, CovalentRadius(87))
	assert.Equal(Te, DefaultCovalentRadius, CovalentRadius(118))
}

func TestMaximalValences(Te *testing.T) {
	assert.Equal(Te, 1, MaximalValence(1))
	assert.Equal(Te, 0, MaximalValence(2))
	assert.Equal(Te, 4, MaximalValence(6))
	assert.Equal(Te, 2, MaximalValence(8))
	assert.Equal(Te, 2, MaximalValence(38))
	assert.Equal(Te, DefaultMaximalValence, MaximalValence(39))
}

func TestColors(Te *testing.T) {
	assert.Equal(Te, RGB{255, 0, 0}, Color(8))
	assert.Equal(Te, RGB{0, 244, 0}, Color(17))
	assert.Equal(Te, DefaultColor, Color(18))
	assert.Equal(Te, DefaultColor, Color(87))
	assert.Equal(Te, [3]uint8{12, 12, 255}, Color(7).Array())
}

func TestElement(Te *testing.T) {
	e, err := Element(6)
	require.NoError(Te, err)
	assert.Equal(Te, "C", e.Symbol)
	assert.Equal(Te, 4, e.MaximalValence)
	assert.InDelta(Te, 12.01, e.Mass, 1e-9)

	_, err = Element(0)
	assert.True(Te, errors.Is(err, ErrAtomicNumber))
	_, err = Element(119)
	assert.True(Te, errors.Is(err, ErrAtomicNumber))
}
