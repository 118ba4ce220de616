// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"

	"github.com/strfem/gotruss/fem"
	"github.com/strfem/gotruss/inp"
	"github.com/strfem/gotruss/out"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd returns the root command with its subcommands. Settings are read from (in order of
// precedence) flags, GOTRUSS_* environment variables, an optional gotruss.yaml file and defaults
func newRootCmd(v *viper.Viper) *cobra.Command {

	root := &cobra.Command{
		Use:   "gotruss",
		Short: "Linear static analysis of pin-jointed trusses",
		Long: `Linear static analysis of 2D and 3D pin-jointed trusses using the
finite element method.

The model is defined in a JSON file with materials, sections, nodes,
elements, supports, load cases and combinations.

Subcommands:
  run    - solve all load cases and combinations
  check  - validate the model and factorise the global matrix`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
	}

	// settings
	def := fem.DefaultSettings()
	v.SetDefault("condmax", def.CondMax)
	v.SetDefault("restol", def.ResTol)
	v.SetDefault("workers", def.Nworkers)
	v.SetDefault("verbose", def.Verbose)
	pf := root.PersistentFlags()
	pf.String("config", "", "Path to configuration file (default: ./gotruss.yaml if present)")
	pf.Float64("condmax", def.CondMax, "Maximum allowed condition number of the matrix of free equations")
	pf.Float64("restol", def.ResTol, "Maximum allowed relative residual of linear solutions")
	pf.Int("workers", def.Nworkers, "Number of goroutines to formulate elements")
	pf.BoolP("verbose", "v", def.Verbose, "Show messages")
	for _, key := range []string{"config", "condmax", "restol", "workers", "verbose"} {
		v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(newRunCmd(v), newCheckCmd(v))
	return root
}

// newRunCmd returns the command that solves a model
func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <model.json>",
		Short: "Solve all load cases and combinations of a model",
		Long: `Solve all load cases and then all combinations of a truss model and
print a report with displacements, reactions and axial forces.

Examples:
  gotruss run data/bracket01.json
  gotruss run data/bracket01.json --xlsx bracket01.xlsx
  GOTRUSS_WORKERS=4 gotruss run big.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModel(v, args[0])
		},
	}
	cmd.Flags().String("xlsx", "", "Path to spreadsheet with results")
	v.BindPFlag("xlsx", cmd.Flags().Lookup("xlsx"))
	return cmd
}

// newCheckCmd returns the command that validates a model
func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check <model.json>",
		Short: "Validate a model and factorise its global matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkModel(v, args[0])
		},
	}
}

// runModel reads, solves and reports a model
func runModel(v *viper.Viper, fnpath string) (err error) {
	mdl, err := inp.ReadModel(fnpath)
	if err != nil {
		return
	}
	analysis, err := fem.NewMain(mdl, settings(v))
	if err != nil {
		return
	}
	results, err := analysis.Run()
	if err != nil {
		return
	}
	for _, res := range results {
		io.Pf("%s\n", out.Report(analysis.Dom, res))
	}
	if fn := v.GetString("xlsx"); fn != "" {
		err = out.WriteXlsx(fn, analysis.Dom, results)
		if err != nil {
			return
		}
		io.PfGreen("file <%s> written\n", fn)
	}
	return
}

// checkModel reads a model and builds the system without solving it
func checkModel(v *viper.Viper, fnpath string) (err error) {
	mdl, err := inp.ReadModel(fnpath)
	if err != nil {
		return
	}
	analysis, err := fem.NewMain(mdl, settings(v))
	if err != nil {
		return
	}
	dom := analysis.Dom
	io.Pf("model       = %s\n", mdl.Key)
	io.Pf("ndim        = %d\n", mdl.Ndim)
	io.Pf("nodes       = %d\n", len(dom.Nodes))
	io.Pf("elements    = %d\n", len(dom.Elems))
	io.Pf("equations   = %d (free = %d, constrained = %d)\n", dom.Ny, dom.Part.Nf(), dom.Part.Nc())
	io.Pf("load cases  = %d\n", len(mdl.LoadCases))
	io.Pf("combos      = %d\n", len(mdl.Combos))
	io.Pf("cond(K_ff)  = %g\n", analysis.LinSol.Cond)
	io.PfGreen("OK\n")
	return
}

// settings returns the analysis settings
func settings(v *viper.Viper) fem.Settings {
	return fem.Settings{
		CondMax:  v.GetFloat64("condmax"),
		ResTol:   v.GetFloat64("restol"),
		Nworkers: v.GetInt("workers"),
		Verbose:  v.GetBool("verbose"),
	}
}

// loadConfig reads environment variables and the configuration file
func loadConfig(v *viper.Viper) (err error) {
	v.SetEnvPrefix("GOTRUSS")
	v.AutomaticEnv()
	if fn := v.GetString("config"); fn != "" {
		v.SetConfigFile(fn)
		return v.ReadInConfig()
	}
	v.SetConfigName("gotruss")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return
}
