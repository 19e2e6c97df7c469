package chemjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	chem "github.com/rmera/gobonds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func water(Te *testing.T) *chem.Molecule {
	Te.Helper()
	mol, err := chem.MoleculeFromRecords([]chem.Record{
		{"O", 0, 0, 0},
		{"H", 0.9572, 0, 0},
		{"H", -0.2400, 0.9266, 0},
	})
	require.NoError(Te, err)
	return mol
}

func TestEncodeDecode(Te *testing.T) {
	mol := water(Te)
	var buf bytes.Buffer
	require.NoError(Te, Encode(&buf, mol, "water"))
	assert.True(Te, strings.HasSuffix(buf.String(), "\n"))

	D, err := Decode(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, "water", D.Title)
	require.Len(Te, D.Atoms, 3)
	assert.Equal(Te, "O", D.Atoms[0].Symbol)
	assert.Equal(Te, 8, D.Atoms[0].Z)
	assert.InDelta(Te, 0.66, D.Atoms[0].Radius, 1e-12)
	assert.Equal(Te, [3]uint8{255, 0, 0}, D.Atoms[0].Color)
	assert.Equal(Te, [3]uint8{191, 191, 191}, D.Atoms[1].Color)
	require.Len(Te, D.Bonds, 2)
	assert.Equal(Te, 0, D.Bonds[0].I)
	assert.Equal(Te, 1, D.Bonds[0].J)
	assert.InDelta(Te, 0.9572, D.Bonds[0].Length, 1e-12)
	assert.InDelta(Te, 0.4786, D.Bonds[0].Midpoint[0], 1e-12)

	//the records rebuild the same molecule
	again, err := chem.MoleculeFromRecords(D.Records())
	require.NoError(Te, err)
	assert.Equal(Te, mol.Bonds(), again.Bonds())
}

func TestDecodeErrors(Te *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	require.Error(Te, err)
	var jerr *Error
	require.True(Te, errors.As(err, &jerr))
	assert.True(Te, jerr.InInput)
	assert.Equal(Te, "chemjson.Decode", jerr.Function)

	_, err = Decode(strings.NewReader(`{"Atoms":[{"Index":1,"Symbol":"H"}]}`))
	assert.ErrorContains(Te, err, "atom 0 has index 1")

	_, err = Decode(strings.NewReader(`{"Atoms":[{"Index":0,"Symbol":"H"}],"Bonds":[{"I":0,"J":3}]}`))
	assert.ErrorContains(Te, err, "invalid bond 0-3")
}

func TestErrorMarshal(Te *testing.T) {
	cause := errors.New("boom")
	jerr := NewError("process", "main", cause)
	assert.True(Te, errors.Is(jerr, cause))
	m := make(map[string]any)
	require.NoError(Te, json.Unmarshal(jerr.Marshal(), &m))
	assert.Equal(Te, true, m["IsError"])
	assert.Equal(Te, true, m["InProcess"])
	assert.Equal(Te, "boom", m["Message"])
	assert.Equal(Te, []string{"a"}, jerr.Decorate("a"))
}
