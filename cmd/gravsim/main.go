package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/universe"
	"github.com/san-kum/gravsim/internal/viz"
)

var (
	configFile  string
	preset      string
	steps       int
	tick        float64
	timeScale   float64
	mode        string
	workers     int
	reportEvery int
	showMetrics bool
	paused      bool
	verbose     bool
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	rootCmd := &cobra.Command{
		Use:           "gravsim",
		Short:         "n-body gravitational simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().IntVar(&reportEvery, "report-every", 0, "print the report every n ticks")
	runCmd.Flags().BoolVar(&showMetrics, "metrics", false, "print exporter metrics")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "print the initial state report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			u, err := cfg.Build()
			if err != nil {
				return err
			}
			fmt.Print(viz.Report(u))
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [body] [body]",
		Short: "run simulation and plot the separation of two bodies",
		Args:  cobra.ExactArgs(2),
		RunE:  plotSeparation,
	}
	addRunFlags(plotCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, reportCmd, plotCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of ticks")
	cmd.Flags().Float64Var(&tick, "tick", config.DefaultTick, "tick duration in seconds")
	cmd.Flags().Float64Var(&timeScale, "time-scale", universe.DefaultTimeScale, "simulated seconds per real second")
	cmd.Flags().StringVar(&mode, "mode", config.DefaultMode, fmt.Sprintf("update mode %v", universe.Modes()))
	cmd.Flags().IntVar(&workers, "workers", 0, "acceleration workers (0 = serial)")
	cmd.Flags().BoolVar(&paused, "paused", false, "start paused")
}

// loadConfig resolves the scenario: config file, else preset, else the
// default, with explicitly set flags applied on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("tick") {
		cfg.Tick = tick
	}
	if flags.Changed("time-scale") {
		cfg.TimeScale = timeScale
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("paused") {
		cfg.Paused = paused
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reporter prints the universe report every n completed steps.
type reporter struct {
	every int
	steps int
}

func (r *reporter) OnStep(u *universe.Universe, dt float64) {
	r.steps++
	if r.steps%r.every == 0 {
		fmt.Println(u.Report())
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	u, err := cfg.Build()
	if err != nil {
		return err
	}

	s := sim.New(u, logger)
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}
	exporter := metrics.NewExporter()
	s.AddObserver(exporter)
	if reportEvery > 0 {
		s.AddObserver(&reporter{every: reportEvery})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d ticks (%s, %gx)...\n", cfg.Steps, u.Mode(), u.TimeScale())
	start := time.Now()

	result, err := s.Run(ctx, cfg.SimConfig())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("steps: %d (paused ticks: %d)\n", result.StepsTaken, result.PausedTicks)
	for _, e := range result.Errors {
		fmt.Printf("error: %v\n", e)
	}
	fmt.Println()
	fmt.Print(viz.Report(u))

	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)

	if showMetrics {
		snap, err := exporter.Snapshot()
		if err != nil {
			return err
		}
		fmt.Println("\nexporter:")
		printMetrics(snap)
	}

	return nil
}

func plotSeparation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.SampleEvery <= 0 {
		cfg.SampleEvery = config.DefaultSampleEvery
	}
	u, err := cfg.Build()
	if err != nil {
		return err
	}

	s := sim.New(u, logger)
	result, err := s.Run(context.Background(), cfg.SimConfig())
	if err != nil {
		return err
	}

	series, err := result.Separation(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Println(viz.Plot(series, fmt.Sprintf("%s-%s separation (m) over %.0f s", args[0], args[1], result.Elapsed)))
	fmt.Println(viz.Sparkline(series, 60))
	return nil
}

func printMetrics(values map[string]float64) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println(viz.Metrics(names, values))
}
