package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	chem "github.com/rmera/gobonds"
	"github.com/rmera/gobonds/chemjson"
	"github.com/rmera/gobonds/internal/config"
	"github.com/rmera/gobonds/internal/logging"
	"github.com/rmera/gobonds/xyz"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries what the commands share once the configuration is loaded.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
	zlog       *zap.Logger
	log        logr.Logger
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gobonds",
		Short: "Perceive covalent bonds from atomic coordinates",
		Long: "gobonds assigns covalent bonds to the atoms of a molecule from their elements\n" +
			"and Cartesian coordinates, using covalent radii and maximal valences.",
		Version:           fmt.Sprintf("%s (commit: %s)", version, commit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.init() },
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.zlog != nil {
				_ = a.zlog.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.Float64P("tolerance", "t", config.DefaultTolerance, "bond tolerance factor applied to the sum of covalent radii")
	pf.IntP("workers", "w", 0, "goroutines for the neighbour search (0: one per CPU)")
	pf.StringP("output", "o", config.DefaultOutput, "output format (text, json)")
	pf.String("log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (console, json)")
	for key, flag := range map[string]string{
		"tolerance":  "tolerance",
		"workers":    "workers",
		"output":     "output",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
	cmd.AddCommand(
		newPerceiveCommand(a),
		newStatsCommand(a),
		newFragmentsCommand(a),
		newPathCommand(a),
		newVersionCommand(),
	)
	return cmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	z, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	a.cfg, a.zlog, a.log = cfg, z, logging.Logr(z)
	return nil
}

func (a *app) options() []chem.Option {
	return []chem.Option{
		chem.WithTolerance(a.cfg.Tolerance),
		chem.WithWorkers(a.cfg.Workers),
		chem.WithLogger(a.log),
	}
}

// load reads the molecule in name, which can be a gobonds JSON document
// (.json) or an XYZ file, and perceives its bonds. It also returns the
// title of the file.
func (a *app) load(name string) (*chem.Molecule, string, error) {
	var recs []chem.Record
	var title string
	if strings.ToLower(filepath.Ext(name)) == ".json" {
		D, err := readDocument(name)
		if err != nil {
			return nil, "", err
		}
		recs, title = D.Records(), D.Title
	} else {
		F, err := xyz.ReadFile(name)
		if err != nil {
			return nil, "", err
		}
		recs, title = F.Records, F.Title
	}
	mol, err := chem.MoleculeFromRecords(recs, a.options()...)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	a.log.Info("molecule read", "file", name, "atoms", mol.Len(), "bonds", mol.NBonds())
	return mol, title, nil
}

func (a *app) jsonOutput() bool {
	return a.cfg != nil && a.cfg.Output == config.OutputJSON
}

// execute runs the command line args and returns the exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{v: config.NewViper(), log: logr.Discard()}
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		if a.jsonOutput() {
			fmt.Fprintf(stderr, "%s\n", chemjson.NewError("process", cmd.Name(), err).Marshal())
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
