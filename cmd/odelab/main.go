package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhalvorsen/odelab/internal/analysis"
	"github.com/mhalvorsen/odelab/internal/config"
	"github.com/mhalvorsen/odelab/internal/experiment"
	"github.com/mhalvorsen/odelab/internal/storage"
	"github.com/mhalvorsen/odelab/internal/systems"
	"github.com/mhalvorsen/odelab/internal/tui"
	"github.com/mhalvorsen/odelab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	tStop      float64
	solver     string
	tolerance  float64
	initState  []float64
	configFile string
	preset     string
	// phase plot axes
	xAxis int
	yAxis int
	// convergence study
	levels int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step ODE integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "integrate a system and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSystem,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	runCmd.Flags().Float64Var(&tStop, "time", config.DefaultTStop, "integration horizon")
	runCmd.Flags().StringVar(&solver, "solver", "euler", "solver (euler, rk45)")
	runCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "rk45 tolerance")
	runCmd.Flags().Float64SliceVar(&initState, "x0", nil, "initial state (defaults per system)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "watch the integration evolve in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	liveCmd.Flags().Float64Var(&tStop, "time", config.DefaultTStop, "integration horizon")
	liveCmd.Flags().Float64SliceVar(&initState, "x0", nil, "initial state (defaults per system)")

	compareCmd := &cobra.Command{
		Use:   "compare [system]",
		Short: "step-halving convergence study",
		Args:  cobra.ExactArgs(1),
		RunE:  compareSteps,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0.1, "coarsest step size")
	compareCmd.Flags().Float64Var(&tStop, "time", 2.0, "integration horizon")
	compareCmd.Flags().IntVar(&levels, "levels", 5, "number of halvings")

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write the stored trajectory to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, liveCmd, compareCmd, presetsCmd, exportJSONCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig(cmd *cobra.Command, system string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.System = system

	if preset != "" {
		p := config.GetPreset(system, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.System = system
	}

	// CLI flags override preset and file values
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.TStop = tStop
	}
	if cmd.Flags().Changed("solver") {
		cfg.Solver = solver
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("x0") {
		cfg.InitState = initState
	}

	return cfg, nil
}

func runSystem(cmd *cobra.Command, args []string) error {
	system := args[0]

	cfg, err := resolveConfig(cmd, system)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	sys, err := registry.GetSystem(system)
	if err != nil {
		return err
	}

	if cfg.InitState == nil {
		x0, err := registry.DefaultState(system)
		if err != nil {
			return err
		}
		cfg.InitState = x0
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("integrating %s with %s...\n", system, cfg.Solver)
	start := time.Now()

	result, err := experiment.Run(experiment.Config{
		System:    system,
		Solver:    cfg.Solver,
		InitState: cfg.InitState,
		TStop:     cfg.TStop,
		Dt:        cfg.Dt,
		Tolerance: cfg.Tolerance,
	}, sys)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(system, cfg.Dt, cfg.TStop, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Times))
	if result.Solver == "rk45" {
		fmt.Printf("accepted steps: %d\n", result.AcceptedSteps)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tHORIZON\tDT\tSOLVER\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%d\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TStop,
			run.Dt,
			run.Solver,
			run.Samples,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, states, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(viz.Header(fmt.Sprintf("run %s", meta.ID)))
	fmt.Println(viz.KeyValue("system", meta.System))
	fmt.Println(viz.KeyValue("solver", meta.Solver))
	fmt.Println(viz.KeyValue("samples", strconv.Itoa(len(states))))
	fmt.Println()
	fmt.Print(viz.Trajectory(meta.System, states))

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, states, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	portrait := analysis.PhasePortrait(states, xAxis, yAxis)
	if portrait == nil {
		return fmt.Errorf("state index out of range for a %s trajectory", meta.System)
	}

	fmt.Println(viz.Header(fmt.Sprintf("%s phase portrait (x%d, x%d)", meta.System, xAxis, yAxis)))
	fmt.Print(analysis.PhasePortraitToASCII(portrait, 80, 24))

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	system := args[0]

	registry := experiment.NewRegistry()
	sys, err := registry.GetSystem(system)
	if err != nil {
		return err
	}

	x0 := initState
	if x0 == nil {
		if x0, err = registry.DefaultState(system); err != nil {
			return err
		}
	}

	return tui.Run(system, systems.Func(sys), x0, dt, tStop)
}

func compareSteps(cmd *cobra.Command, args []string) error {
	system := args[0]

	registry := experiment.NewRegistry()
	sys, err := registry.GetSystem(system)
	if err != nil {
		return err
	}

	x0, err := registry.DefaultState(system)
	if err != nil {
		return err
	}

	// reference endpoint from a tight adaptive solve
	f := systems.Func(sys)
	result, err := experiment.Run(experiment.Config{
		System:    system,
		Solver:    "rk45",
		InitState: x0,
		TStop:     tStop,
		Dt:        dt,
		Tolerance: 1e-10,
	}, sys)
	if err != nil {
		return err
	}
	exact := result.States[len(result.States)-1][0]

	points, err := analysis.ConvergenceStudy(tStop, dt, x0, f, exact, levels)
	if err != nil {
		return err
	}

	fmt.Printf("convergence of euler on %s (reference endpoint %.8f)\n\n", system, exact)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tENDPOINT\tERROR\tRATIO")

	for i, p := range points {
		ratio := "-"
		if i > 0 && p.Error > 0 {
			ratio = fmt.Sprintf("%.2f", points[i-1].Error/p.Error)
		}
		fmt.Fprintf(w, "%.5f\t%.8f\t%.2e\t%s\n", p.Dt, p.Endpoint, p.Error, ratio)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nestimated order: %.2f\n", analysis.EstimateOrder(points))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	times, states, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	var header strings.Builder
	header.WriteString("time")
	if len(states) > 0 {
		for i := range states[0] {
			fmt.Fprintf(&header, ",x%d", i)
		}
	}
	fmt.Println(header.String())

	for i := range times {
		var row strings.Builder
		row.WriteString(strconv.FormatFloat(times[i], 'g', 17, 64))
		for _, v := range states[i] {
			row.WriteByte(',')
			row.WriteString(strconv.FormatFloat(v, 'g', 17, 64))
		}
		fmt.Println(row.String())
	}

	return nil
}
