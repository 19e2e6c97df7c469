package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	chem "github.com/rmera/gobonds"
	"github.com/rmera/gobonds/chemgraph"
	"github.com/rmera/gobonds/chemjson"
	"github.com/rmera/gobonds/chemplot"
	"github.com/rmera/gobonds/chemstat"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func readDocument(name string) (*chemjson.Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	D, err := chemjson.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return D, nil
}

func printJSON(cmd *cobra.Command, data any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func newPerceiveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perceive FILE",
		Short: "Print the bonds of a molecule",
		Long: "perceive prints one line per bond with the indexes and elements of its atoms\n" +
			"and its length in Angstrom, or the whole molecule as a JSON document with\n" +
			"--output json. With --plot, a histogram of the bond lengths is also written.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mol, title, err := a.load(args[0])
			if err != nil {
				return err
			}
			switch f := a.cfg.Plot.File; {
			case f != "" && mol.NBonds() == 0:
				a.zlog.Warn("no bonds, histogram not written", zap.String("file", f))
			case f != "":
				if err := chemplot.SaveHistogram(mol, a.cfg.Plot.Bins, title, f); err != nil {
					return fmt.Errorf("can't write the histogram: %w", err)
				}
				a.log.Info("histogram written", "file", f)
			}
			if a.jsonOutput() {
				return chemjson.Encode(cmd.OutOrStdout(), mol, title)
			}
			out := cmd.OutOrStdout()
			for _, b := range mol.Bonds() {
				fmt.Fprintf(out, "%5d %5d %-2s %-2s %8.4f\n", b.I, b.J, mol.Atom(b.I).Symbol(), mol.Atom(b.J).Symbol(), mol.BondLength(b))
			}
			return nil
		},
	}
	cmd.Flags().String("plot", "", "write a bond length histogram to this file (png, svg, pdf)")
	cmd.Flags().Int("bins", 0, "histogram bins")
	for key, flag := range map[string]string{"plot.file": "plot", "plot.bins": "bins"} {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	return cmd
}

type statsReport struct {
	Title      string
	Formula    string
	Atoms      int
	Bonds      int
	Length     chemstat.Summary
	Pairs      []chemstat.PairCount
	Overbonded []int
	Fragments  int
	Histogram  *chemstat.Histogram `json:",omitempty"`
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print bond statistics of a molecule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mol, title, err := a.load(args[0])
			if err != nil {
				return err
			}
			r := statsReport{
				Title:      title,
				Formula:    mol.Formula(),
				Atoms:      mol.Len(),
				Bonds:      mol.NBonds(),
				Length:     chemstat.BondSummary(mol),
				Pairs:      chemstat.PairCounts(mol),
				Overbonded: chemstat.Overbonded(mol),
				Fragments:  len(chemgraph.Fragments(mol)),
				Histogram:  chemstat.BondLengthHistogram(mol, a.cfg.Plot.Bins),
			}
			if a.jsonOutput() {
				return printJSON(cmd, r)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s, %d atoms, %d fragments\n", args[0], r.Formula, r.Atoms, r.Fragments)
			fmt.Fprintln(out, r.Length)
			for _, p := range r.Pairs {
				fmt.Fprintf(out, "%-6s %5d %8.4f %8.4f\n", p.Pair, p.Count, p.Length.Mean, p.Length.Std)
			}
			for _, i := range r.Overbonded {
				at := mol.Atom(i)
				fmt.Fprintf(out, "atom %d (%s) has %d bonds, maximal valence %d\n", i, at.Symbol(), mol.Degree(i), at.MaximalValence())
			}
			if r.Histogram != nil {
				fmt.Fprintln(out, r.Histogram)
			}
			return nil
		},
	}
}

func newFragmentsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fragments FILE",
		Short: "List the groups of atoms connected by bonds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mol, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			frags := chemgraph.Fragments(mol)
			if a.jsonOutput() {
				return printJSON(cmd, frags)
			}
			out := cmd.OutOrStdout()
			for i, f := range frags {
				ats := make(chem.Atoms, len(f))
				for j, idx := range f {
					ats[j] = mol.Atom(idx)
				}
				fmt.Fprintf(out, "%d %s %v\n", i, chem.Formula(ats), f)
			}
			return nil
		},
	}
}

type pathReport struct {
	Atoms  []int
	Length float64
}

func newPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE FROM TO",
		Short: "Print the shortest chain of bonds between two atoms",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ends [2]int
			for i, s := range args[1:] {
				var err error
				if ends[i], err = strconv.Atoi(s); err != nil {
					return fmt.Errorf("invalid atom index %q", s)
				}
			}
			mol, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			p, l, err := chemgraph.ShortestPath(mol, ends[0], ends[1])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("atoms %d and %d are not connected", ends[0], ends[1])
			}
			if a.jsonOutput() {
				return printJSON(cmd, pathReport{Atoms: p, Length: l})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v %.4f\n", p, l)
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// No configuration is needed to print the version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gobonds %s (commit: %s)\n", version, commit)
		},
	}
}
