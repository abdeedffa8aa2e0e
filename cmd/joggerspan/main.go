package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/flow-eng/joggerspan/internal/bridge"
	"github.com/flow-eng/joggerspan/internal/config"
	"github.com/flow-eng/joggerspan/internal/export"
	"github.com/flow-eng/joggerspan/internal/report"
	"github.com/flow-eng/joggerspan/internal/storage"
	"github.com/flow-eng/joggerspan/internal/tui"
)

var (
	dataDir    string
	length     float64
	velocity   float64
	frequency  float64
	damping    float64
	mass       float64
	configFile string
	preset     string
	graph      bool
	// sweep range
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

func main() {
	// Prompt toggles are plain option values handed to the interactive
	// flow, not process-wide state.
	var opts promptOptions

	rootCmd := &cobra.Command{
		Use:   "joggerspan",
		Short: "peak acceleration of a footbridge span under a passing jogger group",
		Long: "joggerspan estimates the peak vertical acceleration of a single-span,\n" +
			"simply-supported bridge excited by a passing group of joggers, as an\n" +
			"alternative to the HIVOSS / EN 1991-2 jogger load case.",
		// The interactive flow tolerates stray flags the way the
		// original tool did: they are ignored, not errors.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(os.Stdin, os.Stdout, opts)
		},
	}
	rootCmd.Flags().BoolVarP(&opts.Plot, "plot", "p", false, "dump (t, amplitude ratio) pairs for external plotting")
	rootCmd.Flags().BoolVarP(&opts.PromptVelocity, "velocity", "v", false, "prompt for jogger velocity instead of assuming 3 m/s")

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".joggerspan", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "assess a span non-interactively",
		RunE:  runAssess,
	}
	runCmd.Flags().Float64Var(&length, "length", bridge.DefaultLength, "span length [m]")
	runCmd.Flags().Float64Var(&velocity, "velocity", bridge.DefaultVelocity, "jogger velocity [m/s]")
	runCmd.Flags().Float64Var(&frequency, "frequency", bridge.DefaultFrequency, "resonance frequency [Hz]")
	runCmd.Flags().Float64Var(&damping, "damping", bridge.DefaultDamping, "damping ratio [-]")
	runCmd.Flags().Float64Var(&mass, "mass", bridge.DefaultMass, "generalized mass [kg]")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset deck configuration")
	runCmd.Flags().BoolVar(&graph, "graph", false, "plot the displacement trace")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored assessments",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored displacement trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored assessment as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored trace as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "export a stored trace as SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list deck presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			if len(names) == 0 {
				fmt.Println("no presets")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLENGTH\tFREQ\tDAMPING\tMASS")
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.1fm\t%.2fHz\t%.4f\t%.0fkg\n",
					name, cfg.Span.Length, cfg.Span.Frequency, cfg.Span.Damping, cfg.Span.Mass)
			}
			return w.Flush()
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "peak acceleration across a resonance frequency range",
		RunE:  sweepFrequency,
	}
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1.8, "start frequency [Hz]")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 3.6, "end frequency [Hz]")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 60, "number of frequency steps")
	sweepCmd.Flags().Float64Var(&length, "length", bridge.DefaultLength, "span length [m]")
	sweepCmd.Flags().Float64Var(&velocity, "velocity", bridge.DefaultVelocity, "jogger velocity [m/s]")
	sweepCmd.Flags().Float64Var(&damping, "damping", bridge.DefaultDamping, "damping ratio [-]")
	sweepCmd.Flags().Float64Var(&mass, "mass", bridge.DefaultMass, "generalized mass [kg]")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter editor with live results",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(tui.New())
			_, err := p.Run()
			return err
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, presetsCmd, sweepCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAssess(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file.
	if cmd.Flags().Changed("length") {
		cfg.Span.Length = length
	}
	if cmd.Flags().Changed("velocity") {
		cfg.Span.Velocity = velocity
	}
	if cmd.Flags().Changed("frequency") {
		cfg.Span.Frequency = frequency
	}
	if cmd.Flags().Changed("damping") {
		cfg.Span.Damping = damping
	}
	if cmd.Flags().Changed("mass") {
		cfg.Span.Mass = mass
	}

	span := cfg.ToSpan()
	as, err := span.Assess()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	times, ratios := span.Trace(cfg.Trace.Samples, cfg.Trace.Duration)
	runID, err := st.Save(as, times, ratios)
	if err != nil {
		return err
	}

	fmt.Println(report.Summary(as))
	fmt.Printf("run id: %s\n", runID)

	if graph {
		fmt.Println()
		fmt.Println(report.TraceGraph(ratios, "amplitude ratio vs time"))
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
		fmt.Println("no assessments found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tLENGTH\tFREQ\tDAMPING\tMASS\tACCEL")

	for _, run := range runs {
		as := run.Assessment
		fmt.Fprintf(w, "%s\t%s\t%.1fm\t%.2fHz\t%.4f\t%.0fkg\t%.4gm/s²\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			as.Span.Length,
			as.Span.Frequency,
			as.Span.Damping,
			as.Span.Mass,
			as.PeakAcceleration,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	_, ratios, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(ratios) == 0 {
		return fmt.Errorf("no trace data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("span: %.1f m at %.2f Hz\n\n", meta.Assessment.Span.Length, meta.Assessment.Span.Frequency)
	fmt.Println(report.TraceGraph(ratios, "amplitude ratio vs time"))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	times, ratios, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, times, ratios)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, ratios, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no trace data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "amplitude_ratio"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(ratios[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, ratios, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(times) < 2 {
		return fmt.Errorf("no trace data to export")
	}

	svg := export.TraceToSVG(times, ratios, 640, 240)
	if err := os.WriteFile(args[1], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}

func sweepFrequency(cmd *cobra.Command, args []string) error {
	if sweepSteps < 2 {
		return fmt.Errorf("need at least 2 sweep steps")
	}
	if sweepTo <= sweepFrom || sweepFrom <= 0 {
		return fmt.Errorf("invalid sweep range [%g, %g]", sweepFrom, sweepTo)
	}

	accels := make([]float64, sweepSteps)
	worst := 0
	for i := 0; i < sweepSteps; i++ {
		f := sweepFrom + float64(i)*(sweepTo-sweepFrom)/float64(sweepSteps-1)
		span := &bridge.Span{
			Length:    length,
			Velocity:  velocity,
			Frequency: f,
			Damping:   damping,
			Mass:      mass,
		}
		as, err := span.Assess()
		if err != nil {
			return err
		}
		accels[i] = as.PeakAcceleration
		if accels[i] > accels[worst] {
			worst = i
		}
	}

	fmt.Printf("frequency sweep %.2f–%.2f Hz (%.1f m span, z=%.4f, m=%.0f kg)\n\n",
		sweepFrom, sweepTo, length, damping, mass)
	fmt.Println(asciigraph.Plot(accels,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("peak acceleration [m/s²] vs frequency"),
	))

	worstFreq := sweepFrom + float64(worst)*(sweepTo-sweepFrom)/float64(sweepSteps-1)
	fmt.Printf("\nworst case: %.4g m/s² per jogger at %.2f Hz\n", accels[worst], worstFreq)

	return nil
}
