package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"qubitsim/internal/analysis"
	"qubitsim/internal/config"
	"qubitsim/internal/engine"
	"qubitsim/internal/export"
	"qubitsim/internal/storage"
	"qubitsim/internal/viz"
)

var (
	dataDir       string
	durationDays  int
	activationDay int
	seed          int64
	configFile    string
	preset        string
	frameRate     int
	ensembleRuns  int
	svgOut        string
)

// main registers the CLI commands and executes the root command, exiting
// with status 1 if execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "qubitsim",
		Short: "qubit fidelity simulation lab",
		Long: "Simulates qubit fidelity for superconducting and trapped-ion hardware\n" +
			"under thermal drift and correlated 1/f noise, before and after\n" +
			"quantum-error-correction activation.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qubitsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and save the result",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	reportCmd := &cobra.Command{
		Use:   "report [run_id]",
		Short: "pre/post-activation fidelity report",
		Args:  cobra.ExactArgs(1),
		RunE:  reportRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with animated replay",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %d days, activation day %d\n", name, p.DurationDays, p.ActivationDay)
			}
			return nil
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run chart to an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output path (default <run_id>.svg)")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run the configuration across consecutive seeds and average",
		RunE:  runEnsemble,
	}
	addSimFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&ensembleRuns, "runs", 16, "number of ensemble members")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, reportCmd, analyzeCmd, liveCmd, presetsCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, ensembleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&durationDays, "days", config.DefaultDurationDays, "simulation horizon in days")
	cmd.Flags().IntVar(&activationDay, "activation", config.DefaultActivationDay, "error-correction activation day")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file, and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (engine.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return engine.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// Copy so flag overrides below never mutate the shared preset.
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return engine.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("days") {
		cfg.DurationDays = durationDays
	}
	if cmd.Flags().Changed("activation") {
		cfg.ActivationDay = activationDay
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	return cfg.Engine(), nil
}

func summaryMetrics(sum analysis.Summary, res *engine.Result) map[string]float64 {
	return map[string]float64{
		"pre_mean_sc":  sum.SC.PreMean,
		"post_mean_sc": sum.SC.PostMean,
		"gain_sc_pct":  sum.SC.GainPercent,
		"pre_mean_ti":  sum.TI.PreMean,
		"post_mean_ti": sum.TI.PostMean,
		"gain_ti_pct":  sum.TI.GainPercent,
		"temp_corr_sc": sum.SC.TempCorr,
		"temp_corr_ti": sum.TI.TempCorr,
		"mean_temp":    analysis.Mean(res.Temperature),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println("running quantum system simulation...")
	start := time.Now()

	res := eng.Run()
	sum := analysis.Summarize(res, cfg.ActivationDay)

	runID, err := st.Save(cfg, res, summaryMetrics(sum, res))
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n\n", res.Ticks())
	fmt.Println(viz.RenderSummary(sum))

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
	fmt.Fprintln(w, "ID\tTIME\tDAYS\tACTIVATION\tSEED\tGAIN SC\tGAIN TI")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%+.1f%%\t%+.1f%%\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.DurationDays,
			run.ActivationDay,
			run.Seed,
			run.Metrics["gain_sc_pct"],
			run.Metrics["gain_ti_pct"],
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

	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if res.Ticks() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("horizon: %d days, activation day %d, seed %d\n\n", meta.DurationDays, meta.ActivationDay, meta.Seed)

	fmt.Println(viz.FidelityChart(res, meta.ActivationDay))
	fmt.Println()
	fmt.Println(viz.TemperatureChart(res))
	fmt.Println()
	fmt.Println(viz.CorrelationChart(res))

	return nil
}

func reportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.RenderSummary(analysis.Summarize(res, meta.ActivationDay)))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if res.Ticks() == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	series := map[string][]float64{
		"temperature": res.Temperature,
		"fidelity_sc": res.FidelitySC,
	}
	for _, name := range []string{"temperature", "fidelity_sc"} {
		ps := analysis.PowerSpectrum(series[name])
		plotData := ps
		if len(plotData) > 120 {
			plotData = plotData[:120]
		}

		graph := asciigraph.Plot(plotData,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", name)),
		)
		fmt.Println(graph)

		period := analysis.DominantPeriod(series[name])
		if period > 0 {
			fmt.Printf("dominant period: %.1f hours (%.2f days)\n\n", period, period/engine.HoursPerDay)
		}
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	return viz.RunLive(eng.Run(), cfg.ActivationDay, frameRate)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, res)
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ens, err := engine.NewEnsemble(cfg, ensembleRuns, cfg.Seed)
	if err != nil {
		return err
	}

	fmt.Printf("running %d-member ensemble (seeds %d..%d)...\n", ensembleRuns, cfg.Seed, cfg.Seed+int64(ensembleRuns)-1)
	start := time.Now()

	results, err := ens.Run()
	if err != nil {
		return err
	}
	mean := engine.MeanResult(results)

	fmt.Printf("completed in %v\n\n", time.Since(start))
	fmt.Println(viz.FidelityChart(mean, cfg.ActivationDay))
	fmt.Println()
	fmt.Println(viz.RenderSummary(analysis.Summarize(mean, cfg.ActivationDay)))

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	out := svgOut
	if out == "" {
		out = args[0] + ".svg"
	}

	svg := export.FidelitySVG(res, meta.ActivationDay, 1200, 500)
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	res, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, res)
}
