package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoWaters = `6
two waters
O   0.0000  0.0000  0.0000
H   0.9572  0.0000  0.0000
H  -0.2400  0.9266  0.0000
O   5.0000  0.0000  0.0000
H   5.9572  0.0000  0.0000
H   4.7600  0.9266  0.0000
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errout bytes.Buffer
	code := execute(args, &out, &errout)
	return code, out.String(), errout.String()
}

func TestPerceive(t *testing.T) {
	name := writeFile(t, "w.xyz", twoWaters)
	code, out, errout := run(t, "perceive", name)
	require.Equal(t, 0, code, errout)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "    0     1 O  H    0.9572", lines[0])

	//no bonds at all with a tiny tolerance
	code, out, _ = run(t, "perceive", "--tolerance", "0.1", name)
	require.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestPerceiveJSONRoundTrip(t *testing.T) {
	name := writeFile(t, "w.xyz", twoWaters)
	plot := filepath.Join(filepath.Dir(name), "hist.png")
	code, out, errout := run(t, "perceive", "-o", "json", "--plot", plot, "--bins", "4", name)
	require.Equal(t, 0, code, errout)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "two waters", doc["Title"])
	assert.Len(t, doc["Bonds"], 4)
	_, err := os.Stat(plot)
	assert.NoError(t, err)

	//the document can be read back
	jname := filepath.Join(filepath.Dir(name), "w.json")
	require.NoError(t, os.WriteFile(jname, []byte(out), 0o644))
	code, out, errout = run(t, "fragments", jname)
	require.Equal(t, 0, code, errout)
	assert.Equal(t, "0 H2O [0 1 2]\n1 H2O [3 4 5]\n", out)
}

func TestPerceiveNoBondsWithPlot(t *testing.T) {
	name := writeFile(t, "he.xyz", "1\nhelium\nHe 0 0 0\n")
	plot := filepath.Join(filepath.Dir(name), "hist.png")
	code, out, errout := run(t, "perceive", "--plot", plot, name)
	require.Equal(t, 0, code, errout)
	assert.Empty(t, out)
	_, err := os.Stat(plot)
	assert.True(t, os.IsNotExist(err))
}

func TestStats(t *testing.T) {
	name := writeFile(t, "w.xyz", twoWaters)
	code, out, errout := run(t, "stats", "--output", "json", name)
	require.Equal(t, 0, code, errout)
	var r statsReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "H4O2", r.Formula)
	assert.Equal(t, 4, r.Bonds)
	assert.Equal(t, 2, r.Fragments)
	require.Len(t, r.Pairs, 1)
	assert.Equal(t, "H-O", r.Pairs[0].Pair)
	assert.Empty(t, r.Overbonded)

	code, out, _ = run(t, "stats", name)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "H4O2, 6 atoms, 2 fragments")
}

func TestPath(t *testing.T) {
	name := writeFile(t, "w.xyz", twoWaters)
	code, out, errout := run(t, "path", name, "1", "2")
	require.Equal(t, 0, code, errout)
	assert.True(t, strings.HasPrefix(out, "[1 0 2] "))

	code, _, errout = run(t, "path", name, "1", "4")
	assert.Equal(t, 1, code)
	assert.Contains(t, errout, "not connected")
}

func TestConfigAndEnv(t *testing.T) {
	name := writeFile(t, "w.xyz", twoWaters)
	cfg := writeFile(t, "gobonds.yaml", "output: json\n")
	code, out, errout := run(t, "fragments", "--config", cfg, name)
	require.Equal(t, 0, code, errout)
	assert.JSONEq(t, "[[0,1,2],[3,4,5]]", out)

	t.Setenv("GOBONDS_OUTPUT", "text")
	code, out, _ = run(t, "fragments", "--config", cfg, name)
	require.Equal(t, 0, code)
	assert.Equal(t, "0 H2O [0 1 2]\n1 H2O [3 4 5]\n", out)
}

func TestErrors(t *testing.T) {
	code, _, errout := run(t, "perceive", filepath.Join(t.TempDir(), "missing.xyz"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errout, "Error:")

	bad := writeFile(t, "bad.xyz", "2\n\nH 0 0 0\nXx 0 0 1\n")
	code, _, errout = run(t, "perceive", "-o", "json", bad)
	assert.Equal(t, 1, code)
	var jerr map[string]any
	require.NoError(t, json.Unmarshal([]byte(errout), &jerr))
	assert.Equal(t, true, jerr["IsError"])
	assert.Contains(t, jerr["Message"], "Xx")

	for _, tol := range []string{"-1", "0"} {
		code, _, errout = run(t, "perceive", "--tolerance", tol, bad)
		assert.Equal(t, 1, code, tol)
		assert.Contains(t, errout, "tolerance must be positive", tol)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "gobonds dev (commit: unknown)\n", out)
}
