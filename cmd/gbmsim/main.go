// Command gbmsim runs Monte Carlo GBM price simulations from the command line.
//
// Usage:
//
//	gbmsim probe
//	gbmsim run --price 100 --mu 0.08 --sigma 0.2 --steps 252 --paths 2000000
//	gbmsim run --engine simd --seed 42 --threads 8 ...
//	gbmsim estimate --csv prices.csv --start 2023-01-03 --end 2024-01-02 --steps 252
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-gbm/estimate"
	"github.com/cwbudde/algo-gbm/internal/cpu"
	"github.com/cwbudde/algo-gbm/series"
	"github.com/cwbudde/algo-gbm/sim"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gbmsim",
		Short: "Monte Carlo GBM price simulation",
		Long: `gbmsim simulates future asset price trajectories under Geometric
Brownian Motion, using the fastest engine the hardware supports.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newProbeCmd(),
		newRunCmd(),
		newEstimateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print detected hardware capabilities",
		Run: func(cmd *cobra.Command, args []string) {
			caps := sim.ProbeCapabilities()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "CPU:\t%s\n", cpu.VendorString())
			fmt.Fprintf(w, "Wide vector (AVX2+FMA):\t%v\n", caps.WideVector)
			fmt.Fprintf(w, "Wide vector 512 (AVX-512):\t%v\n", caps.WideVector512)
			fmt.Fprintf(w, "Hardware threads:\t%d\n", caps.Threads)
			fmt.Fprintf(w, "Cache line:\t%d bytes\n", caps.CacheLineBytes)
			fmt.Fprintf(w, "Auto engine at 252 steps:\t%s\n", sim.Select(caps, 252, 1_000_000))
			w.Flush()
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		engineName string
		price      float64
		mu         float64
		variance   float64
		sigma      float64
		steps      int
		paths      int
		threads    int
		seed       uint64
		display    int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation with explicit parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := sim.ParseEngine(engineName)
			if err != nil {
				return err
			}

			// Derive variance from volatility unless given explicitly.
			if !cmd.Flags().Changed("variance") {
				variance = sigma * sigma
			}

			p := sim.Parameters{
				StartingPrice: price,
				Mu:            mu,
				Variance:      variance,
				Sigma:         sigma,
				Steps:         steps,
				Paths:         paths,
			}

			res, err := sim.Simulate(p,
				sim.WithEngine(engine),
				sim.WithThreads(threads),
				sim.WithSeed(seed),
				sim.WithDisplayPaths(display),
			)
			if err != nil {
				return err
			}

			printResult(res, paths)

			return nil
		},
	}

	cmd.Flags().StringVar(&engineName, "engine", "auto", "engine: auto, scalar, mt, simd")
	cmd.Flags().Float64Var(&price, "price", 100, "starting price")
	cmd.Flags().Float64Var(&mu, "mu", 0, "normalized drift over the horizon")
	cmd.Flags().Float64Var(&variance, "variance", 0, "normalized variance (defaults to sigma^2)")
	cmd.Flags().Float64Var(&sigma, "sigma", 0, "normalized volatility over the horizon")
	cmd.Flags().IntVar(&steps, "steps", 252, "time steps per path")
	cmd.Flags().IntVar(&paths, "paths", 1_000_000, "number of paths")
	cmd.Flags().IntVar(&threads, "threads", 0, "worker threads (0 = all hardware threads)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed (0 = entropy)")
	cmd.Flags().IntVar(&display, "display", 0, "full trajectories to retain")

	return cmd
}

func newEstimateCmd() *cobra.Command {
	var (
		csvPath  string
		startStr string
		endStr   string
		steps    int
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate normalized GBM parameters from a CSV price series",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := series.LoadFile(csvPath)
			if err != nil {
				return err
			}

			start, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				return fmt.Errorf("invalid start date %q: use YYYY-MM-DD", startStr)
			}

			end, err := time.Parse("2006-01-02", endStr)
			if err != nil {
				return fmt.Errorf("invalid end date %q: use YYYY-MM-DD", endStr)
			}

			closes, err := s.Range(start, end)
			if err != nil {
				return err
			}

			stats, err := estimate.FromPrices(closes, steps)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Training points:\t%d\n", len(closes))
			fmt.Fprintf(w, "Mean log return:\t%.6g\n", stats.Mu)
			fmt.Fprintf(w, "Log return deviation:\t%.6g\n", stats.Deviation)
			fmt.Fprintf(w, "Normalized mu:\t%.6g\n", stats.NormalizedMu)
			fmt.Fprintf(w, "Normalized variance:\t%.6g\n", stats.NormalizedVariance)
			fmt.Fprintf(w, "Normalized sigma:\t%.6g\n", stats.NormalizedDeviation)
			fmt.Fprintf(w, "Starting price:\t%.4f\n", closes[len(closes)-1])
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file with Date and Close columns")
	cmd.Flags().StringVar(&startStr, "start", "", "training start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "training end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&steps, "steps", 252, "prediction steps to normalize for")
	cmd.MarkFlagRequired("csv")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func printResult(res *sim.Result, paths int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Engine:\t%s\n", res.Engine)
	fmt.Fprintf(w, "Paths:\t%d\n", paths)
	fmt.Fprintf(w, "Average terminal price:\t%.4f\n", res.AverageTerminalPrice)
	fmt.Fprintf(w, "Elapsed:\t%s\n", res.Elapsed.Round(time.Microsecond))

	if len(res.DisplayPaths) > 0 {
		fmt.Fprintf(w, "Display paths:\t%d x %d steps\n",
			len(res.DisplayPaths), len(res.DisplayPaths[0]))
	}

	w.Flush()
}
