package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/regatta/internal/config"
	"github.com/san-kum/regatta/internal/race"
	"github.com/san-kum/regatta/internal/storage"
	"github.com/san-kum/regatta/internal/viz"
)

var (
	dataDir          string
	boats            int
	finish           int
	windGain         int
	windGainSolarRig int
	solarGain        int
	seed             int64
	maxDays          int
	configFile       string
	preset           string
	frameRate        int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "regatta",
		Short: "monte carlo sail vs. sail+solar race simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".regatta", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "race both fleets with independent weather per boat",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRace(cmd, false)
		},
	}
	addRaceFlags(runCmd)

	pairedCmd := &cobra.Command{
		Use:   "paired",
		Short: "race both fleets under one shared daily weather field",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRace(cmd, true)
		},
	}
	addRaceFlags(pairedCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's mean distance curves",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a race advance day by day",
		RunE:  runLive,
	}
	addRaceFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "days per second")
	liveCmd.Flags().Bool("paired", false, "use shared daily weather")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(runCmd, pairedCmd, listCmd, plotCmd, exportCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRaceFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&boats, "boats", config.DefaultBoats, "boats per fleet")
	cmd.Flags().IntVar(&finish, "finish", config.DefaultFinish, "finish line distance")
	cmd.Flags().IntVar(&windGain, "wind-gain", config.DefaultWindGain, "daily gain on windy days (wind-only rig)")
	cmd.Flags().IntVar(&windGainSolarRig, "wind-gain-solar-rig", config.DefaultWindGain, "daily gain on windy days (wind+solar rig)")
	cmd.Flags().IntVar(&solarGain, "solar-gain", config.DefaultSolarGain, "daily gain on sunny windless days")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().IntVar(&maxDays, "max-days", 0, "stop after this many days (0 = unbounded)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves the effective configuration: preset, then config
// file, then explicit flags on top.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("boats") {
		cfg.Boats = boats
	}
	if cmd.Flags().Changed("finish") {
		cfg.Finish = finish
	}
	if cmd.Flags().Changed("wind-gain") {
		cfg.WindGain = windGain
		if !cmd.Flags().Changed("wind-gain-solar-rig") {
			cfg.WindGainSolarRig = windGain
		}
	}
	if cmd.Flags().Changed("wind-gain-solar-rig") {
		cfg.WindGainSolarRig = windGainSolarRig
	}
	if cmd.Flags().Changed("solar-gain") {
		cfg.SolarGain = solarGain
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("max-days") {
		cfg.MaxDays = maxDays
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRace(cmd *cobra.Command, paired bool) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	gen, err := cfg.Generator()
	if err != nil {
		return err
	}

	driver, err := race.NewDriver(cfg.RaceConfig(), gen)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	mode := "independent"
	simulate := driver.Simulate
	if paired {
		mode = "paired"
		simulate = driver.SimulatePaired
	}

	fmt.Printf("racing %d boats per fleet to %d (%s weather)...\n", cfg.Boats, cfg.Finish, mode)
	start := time.Now()

	out, err := simulate(context.Background(), cfg.Boats)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(mode, cfg.Seed, cfg.RaceConfig(), out)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("days until last arrival: %d\n\n", out.Days)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FLEET\tMIN DAYS\tMEAN DAYS\tMAX DAYS\tMEAN FINAL")
	for _, rig := range []race.Rig{race.WindOnly, race.WindSolar} {
		s := meta.Summaries[rig.String()]
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%d\t%.1f\n", rig, s.MinDays, s.MeanDays, s.MaxDays, s.MeanFinal)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tMODE\tTIME\tBOATS\tFINISH\tDAYS\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Boats,
			run.Finish,
			run.Days,
			run.Seed,
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

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: %s weather\n", meta.Mode)
	fmt.Printf("days: %d\n\n", meta.Days)

	series := make(map[race.Rig][]float64, 2)
	for _, rig := range []race.Rig{race.WindOnly, race.WindSolar} {
		days, err := st.LoadHistories(runID, rig)
		if err != nil {
			return err
		}
		if len(days) == 0 || len(days[0]) == 0 {
			return fmt.Errorf("no data to plot")
		}

		means := make([]float64, len(days))
		for i, row := range days {
			sum := 0
			for _, d := range row {
				sum += d
			}
			means[i] = float64(sum) / float64(len(row))
		}
		series[rig] = means
	}

	fmt.Println(viz.PlotCompare(series[race.WindOnly], series[race.WindSolar],
		"mean distance per day (wind only vs wind+solar)"))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
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

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	gen, err := cfg.Generator()
	if err != nil {
		return err
	}

	paired, err := cmd.Flags().GetBool("paired")
	if err != nil {
		return err
	}

	model, err := viz.NewModel(cfg.RaceConfig(), gen, cfg.Boats, paired, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
