package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/sparsecode/dataset"
	"github.com/born-ml/sparsecode/display"
	"github.com/born-ml/sparsecode/sparse"
)

var (
	demoConfigPath string
	demoCfg        = defaultDemoConfig()
)

// demoCmd implements the 'sparsecode demo' command.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Learn a dictionary from CSV or synthetic data",
	Long: `Run the full sparse coding pipeline: load a data matrix from a CSV
file (one sample per record) or synthesize Gaussian data, initialize
dictionary and codes from a seeded normal distribution, run the
alternating solver, and optionally write the learned atoms to a PNG.

Example usage:
  sparsecode demo                              # Synthetic data
  sparsecode demo --input=patches.csv          # CSV data
  sparsecode demo --sparsity=0.3 --iters=200   # Stronger penalty
  sparsecode demo --out=atoms.png              # Render learned atoms
  sparsecode demo --config=demo.yaml           # YAML overrides`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoCfg.Input, "input", "", "CSV file with one sample per record (empty for synthetic data)")
	demoCmd.Flags().StringVar(&demoCfg.Out, "out", "", "PNG path for the learned atom grid (empty to skip rendering)")
	demoCmd.Flags().IntVar(&demoCfg.Atoms, "atoms", demoCfg.Atoms, "Number of dictionary atoms")
	demoCmd.Flags().Float64Var(&demoCfg.Sparsity, "sparsity", demoCfg.Sparsity, "L1 penalty weight")
	demoCmd.Flags().IntVar(&demoCfg.MaxIters, "iters", demoCfg.MaxIters, "Outer iterations")
	demoCmd.Flags().IntVar(&demoCfg.MaxInnerIters, "inner-iters", demoCfg.MaxInnerIters, "Coordinate-descent sweeps per phase")
	demoCmd.Flags().IntVar(&demoCfg.Dims, "dims", demoCfg.Dims, "Sample dimension for synthetic data")
	demoCmd.Flags().IntVar(&demoCfg.Samples, "samples", demoCfg.Samples, "Sample count for synthetic data")
	demoCmd.Flags().Uint64Var(&demoCfg.Seed, "seed", demoCfg.Seed, "Random seed for data and initialization")
	demoCmd.Flags().StringVar(&demoConfigPath, "config", "", "YAML config file; values present in it override the flags")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoConfigPath != "" {
		if err := loadDemoConfig(demoConfigPath, &demoCfg); err != nil {
			return err
		}
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		x   *mat.Dense
		err error
	)
	if demoCfg.Input != "" {
		x, err = dataset.LoadCSV(demoCfg.Input)
		if err != nil {
			return err
		}
	} else {
		x = dataset.Randn(demoCfg.Dims, demoCfg.Samples, 1, rand.NewSource(demoCfg.Seed))
	}

	l, n := x.Dims()
	a := dataset.Randn(l, demoCfg.Atoms, 1, rand.NewSource(demoCfg.Seed+1))
	s := dataset.Randn(demoCfg.Atoms, n, 1, rand.NewSource(demoCfg.Seed+2))
	logger.Info().
		Int("dims", l).
		Int("samples", n).
		Int("atoms", demoCfg.Atoms).
		Float64("sparsity", demoCfg.Sparsity).
		Msg("starting sparse coding")

	start := time.Now()
	energy, err := sparse.Learn(x, a, s, sparse.Config{
		Sparsity:      demoCfg.Sparsity,
		MaxIters:      demoCfg.MaxIters,
		MaxInnerIters: demoCfg.MaxInnerIters,
		Logger:        &logger,
	})
	if err != nil {
		return err
	}
	logger.Info().
		Dur("elapsed", time.Since(start)).
		Float64("final_energy", energy[len(energy)-1]).
		Msg("sparse coding finished")

	if demoCfg.Out != "" {
		if err := display.SavePNG(demoCfg.Out, a, 0); err != nil {
			return fmt.Errorf("render atoms: %w", err)
		}
		logger.Info().Str("path", demoCfg.Out).Msg("wrote atom grid")
	}

	return nil
}
