/*
 * histogram.go, part of gobonds
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package chemplot

import (
	"fmt"
	"image/color"
	"io"

	chem "github.com/rmera/gobonds"
	"github.com/rmera/gobonds/chemstat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Default size of the plots.
const (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

func basicHistPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Bond length (A)"
	p.Y.Label.Text = "Bonds"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//BondLengthHistogram returns a histogram plot of the lengths given, with
//the given number of bins. The bins are the ones of chemstat.LengthHistogram.
//It returns an error if there are no lengths or bins is not positive.
func BondLengthHistogram(lengths []float64, bins int, title string) (*plot.Plot, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("chemplot: no bond lengths to plot")
	}
	if bins < 1 {
		return nil, fmt.Errorf("chemplot: invalid number of bins %d", bins)
	}
	p := basicHistPlot(title)
	p.Add(histBars(chemstat.LengthHistogram(lengths, bins)))
	return p, nil
}

//histBars turns H into the gonum plotter for it, one bar per bin.
func histBars(H *chemstat.Histogram) *plotter.Histogram {
	div, counts := H.Dividers(), H.Counts()
	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(counts)),
		Width:     div[len(div)-1] - div[0],
		FillColor: color.RGBA{R: 102, G: 102, B: 255, A: 255},
	}
	h.LineStyle = plotter.DefaultLineStyle
	for i, c := range counts {
		h.Bins[i] = plotter.HistogramBin{Min: div[i], Max: div[i+1], Weight: c}
	}
	return h
}

//MoleculeHistogram is BondLengthHistogram for the bonds of m.
func MoleculeHistogram(m *chem.Molecule, bins int, title string) (*plot.Plot, error) {
	return BondLengthHistogram(chemstat.BondLengths(m), bins, title)
}

//SaveHistogram plots the bond length histogram of m into filename. The
//format is chosen from the file extension (png, svg, pdf, etc).
func SaveHistogram(m *chem.Molecule, bins int, title, filename string) error {
	p, err := MoleculeHistogram(m, bins, title)
	if err != nil {
		return err
	}
	return p.Save(Width, Height, filename)
}

//WriteHistogram writes the bond length histogram of m to w in the given format.
func WriteHistogram(w io.Writer, m *chem.Molecule, bins int, title, format string) error {
	p, err := MoleculeHistogram(m, bins, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
