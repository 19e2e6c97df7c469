/*
 * xyz.go, part of gobonds.
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

//Package xyz reads and writes molecules in the XYZ format: a line with
//the number of atoms, a title line, and one line per atom with its
//element symbol and its Cartesian coordinates in Angstrom. Files with
//the .gz or .zst (.zstd) extensions are compressed and decompressed
//transparently.
package xyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/gobonds"
)

var (
	//ErrFormat is returned for lines that can't be parsed.
	ErrFormat = errors.New("ill formatted XYZ data")
	//ErrAtomCount is returned when the number of atoms declared in the
	//first line is not the number of atom lines read.
	ErrAtomCount = errors.New("number of atoms declared not equal to that provided")
)

//Frame is the content of an XYZ file.
type Frame struct {
	Title   string
	Records []chem.Record
}

//Molecule builds the molecule for the frame, perceiving its bonds.
func (F *Frame) Molecule(opts ...chem.Option) (*chem.Molecule, error) {
	return chem.MoleculeFromRecords(F.Records, opts...)
}

//Read reads one XYZ frame from r. Blank atom lines are skipped, extra
//columns after the coordinates are ignored and CR LF line endings are
//accepted.
func Read(r io.Reader) (*Frame, error) {
	xyz := bufio.NewReader(r)
	F := new(Frame)
	natoms := -1
	for lineno := 1; ; lineno++ {
		line, rerr := xyz.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, rerr
		}
		if rerr == io.EOF && line == "" {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		switch {
		case lineno == 1:
			var err error
			natoms, err = strconv.Atoi(strings.TrimSpace(line))
			if err != nil || natoms < 0 {
				return nil, fmt.Errorf("xyz: can't read the number of atoms from %q: %w", line, ErrFormat)
			}
			F.Records = make([]chem.Record, 0, min(natoms, 4096))
		case lineno == 2:
			F.Title = strings.TrimSpace(line)
		case strings.TrimSpace(line) == "":
			continue
		default:
			rec, err := parseRecord(line)
			if err != nil {
				return nil, fmt.Errorf("xyz: line %d: %w", lineno, err)
			}
			F.Records = append(F.Records, rec)
		}
		if rerr == io.EOF {
			break
		}
	}
	if natoms < 0 {
		return nil, fmt.Errorf("xyz: empty input: %w", ErrFormat)
	}
	if natoms != len(F.Records) {
		return nil, fmt.Errorf("xyz: %d atoms declared, %d read: %w", natoms, len(F.Records), ErrAtomCount)
	}
	return F, nil
}

func parseRecord(line string) (chem.Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return chem.Record{}, fmt.Errorf("%q has less than 4 fields: %w", line, ErrFormat)
	}
	var c [3]float64
	for i := range c {
		var err error
		c[i], err = strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return chem.Record{}, fmt.Errorf("can't read coordinate %q: %w", fields[i+1], ErrFormat)
		}
	}
	return chem.Record{Symbol: fields[0], X: c[0], Y: c[1], Z: c[2]}, nil
}

//Write writes m to w in XYZ format, with the given title. Newlines in
//the title are replaced by spaces.
func Write(w io.Writer, m *chem.Molecule, title string) error {
	out := bufio.NewWriter(w)
	title = strings.NewReplacer("\r", " ", "\n", " ").Replace(title)
	fmt.Fprintf(out, "%d\n%s\n", m.Len(), title)
	for i := 0; i < m.Len(); i++ {
		at := m.Atom(i)
		p := at.Position()
		fmt.Fprintf(out, "%-2s %14.8f %14.8f %14.8f\n", at.Symbol(), p.X, p.Y, p.Z)
	}
	return out.Flush()
}

func compression(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

//ReadFile reads the XYZ file name, decompressing it according to its extension.
func ReadFile(name string) (*Frame, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	switch compression(name) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xyz: %s: %w", name, err)
		}
		defer gz.Close()
		r = gz
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xyz: %s: %w", name, err)
		}
		rc := zr.IOReadCloser()
		defer rc.Close()
		r = rc
	}
	F, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return F, nil
}

//WriteFile writes m into the file name, which is created or truncated,
//compressing it according to its extension.
func WriteFile(name string, m *chem.Molecule, title string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	var w io.WriteCloser
	switch compression(name) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst", ".zstd":
		w, err = zstd.NewWriter(f)
		if err != nil {
			return err
		}
	default:
		return Write(f, m, title)
	}
	if err = Write(w, m, title); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
