package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mazegen/internal/analysis"
	"github.com/san-kum/mazegen/internal/automation"
	"github.com/san-kum/mazegen/internal/config"
	"github.com/san-kum/mazegen/internal/experiment"
	"github.com/san-kum/mazegen/internal/export"
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
	"github.com/san-kum/mazegen/internal/render"
	"github.com/san-kum/mazegen/internal/storage"
	"github.com/san-kum/mazegen/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool
	logger  = log.New(io.Discard, "", 0)

	width  int
	height int
	startX int
	startY int
	bias   float64
	seed   int64
	// Config file and preset
	configFile string
	preset     string

	// Playback
	frameRate int
	perTick   int
	theme     string
	braille   bool
	gifDelay  int
	record    string

	outFiles  []string
	noSave    bool
	showMaze  bool
	entrances bool
	chartDir  string
	bins      int

	// Sweep
	biasMin   float64
	biasMax   float64
	steps     int
	runs      int
	seedStart int64
	sweepOut  string

	outDir string
)

// main registers the commands and runs the root command. With no
// subcommand it opens the interactive preset menu.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mazegen",
		Short: "randomized frontier maze generator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = log.New(os.Stderr, "[mazegen] ", log.LstdFlags)
			}
		},
		RunE: runMenu,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mazegen", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	addPlaybackFlags(rootCmd)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a maze and store it",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	addMazeFlags(generateCmd)
	generateCmd.Flags().StringSliceVarP(&outFiles, "out", "o", nil, "write the maze to these files (format from extension)")
	generateCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	generateCmd.Flags().BoolVar(&showMaze, "show", false, "print the maze as text")

	liveCmd := &cobra.Command{
		Use:   "live [run_id]",
		Short: "watch a maze being carved",
		Long:  "live replays a stored run, or generates a new maze from the flags when no run is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addMazeFlags(liveCmd)
	addPlaybackFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a stored maze as text",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&entrances, "entrances", true, "open the entrance and exit")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Long:  "export writes a stored run to each --out file, or as JSON to stdout without --out.",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringSliceVarP(&outFiles, "out", "o", nil, "output files (format from extension)")
	exportCmd.Flags().IntVar(&gifDelay, "gif-delay", config.DefaultGIFDelay, "gif frame delay in 1/100 s")
	exportCmd.Flags().StringVar(&configFile, "config", "", "config file for render settings (yaml)")

	verifyCmd := &cobra.Command{
		Use:   "verify [run_id]",
		Short: "check that a stored run is a perfect maze",
		Args:  cobra.ExactArgs(1),
		RunE:  verifyRun,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.New(dataDir).Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats [run_id]",
		Short: "measure a maze",
		Long:  "stats measures a stored run, or a freshly generated maze when no run is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	addMazeFlags(statsCmd)
	statsCmd.Flags().StringVar(&chartDir, "charts", "", "write PNG charts to this directory")
	statsCmd.Flags().IntVar(&bins, "bins", 20, "depth histogram bins")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare maze shape across biases",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&width, "width", 20, "grid width")
	sweepCmd.Flags().IntVar(&height, "height", 20, "grid height")
	sweepCmd.Flags().IntVar(&startX, "start-x", 0, "start column")
	sweepCmd.Flags().IntVar(&startY, "start-y", 0, "start row")
	sweepCmd.Flags().Float64Var(&biasMin, "bias-min", 0, "lowest bias")
	sweepCmd.Flags().Float64Var(&biasMax, "bias-max", 1, "highest bias")
	sweepCmd.Flags().IntVar(&steps, "steps", 11, "number of biases")
	sweepCmd.Flags().IntVar(&runs, "runs", 20, "mazes per bias")
	sweepCmd.Flags().Int64Var(&seedStart, "seed-start", 1, "first seed")
	sweepCmd.Flags().StringVar(&sweepOut, "chart", "", "write a PNG chart to this path")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&outDir, "out-dir", ".", "directory for scenario exports")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tSTART\tBIAS\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t(%d,%d)\t%.2f\t%s\n",
					name, p.Width, p.Height, p.Start.X, p.Start.Y, p.Bias, config.PresetInfo[name])
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "list output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range experiment.NewRegistry().ListFormats() {
				fmt.Printf("  %s\n", f)
			}
		},
	}

	rootCmd.AddCommand(generateCmd, liveCmd, listCmd, showCmd, exportCmd, verifyCmd, deleteCmd,
		statsCmd, sweepCmd, scenarioCmd, presetsCmd, initCmd, formatsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	cmd.Flags().IntVar(&startX, "start-x", 0, "start column")
	cmd.Flags().IntVar(&startY, "start-y", 0, "start row")
	cmd.Flags().Float64Var(&bias, "bias", config.DefaultBias, "probability of taking the oldest candidate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addPlaybackFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().IntVar(&perTick, "per-tick", 1, "events per frame")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	cmd.Flags().BoolVar(&braille, "braille", false, "draw with braille dots")
	cmd.Flags().IntVar(&gifDelay, "gif-delay", config.DefaultGIFDelay, "recording frame delay in 1/100 s")
	cmd.Flags().StringVar(&record, "record", "maze.gif", "recording path")
}

// resolveConfig layers the preset, then the config file, then any flag set
// on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
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
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("start-x") {
		cfg.Start.X = startX
	}
	if flags.Changed("start-y") {
		cfg.Start.Y = startY
	}
	if flags.Changed("bias") {
		cfg.Bias = bias
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.Playback.FPS = frameRate
	}
	if flags.Changed("per-tick") {
		cfg.Playback.PerTick = perTick
	}
	if flags.Changed("theme") {
		cfg.Playback.Theme = theme
	}
	if flags.Changed("gif-delay") {
		cfg.Playback.GIFDelay = gifDelay
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Printf("seed %d", cfg.Seed)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func generate(ctx context.Context, name string, cfg *config.Config) (*experiment.Experiment, *maze.Result, error) {
	exp := experiment.New(experiment.FromConfig(name, cfg))
	if err := exp.Setup(); err != nil {
		return nil, nil, err
	}
	logger.Printf("generating %dx%d from (%d,%d), bias %.3f, seed %d",
		cfg.Width, cfg.Height, cfg.Start.X, cfg.Start.Y, cfg.Bias, cfg.Seed)
	res, err := exp.Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	return exp, res, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	rc, err := cfg.RenderConfig()
	if err != nil {
		return err
	}

	start := time.Now()
	exp, res, err := generate(cmd.Context(), preset, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	meta := exp.Metadata(res)

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(meta, res.Events)
		if err != nil {
			return err
		}
		meta.ID = id
	}

	out := experiment.Output{
		Graph:     exp.Graph(),
		Start:     res.Start,
		Events:    res.Events,
		Meta:      &meta,
		Render:    rc,
		GIF:       export.GIFOptions{Delay: cfg.Playback.GIFDelay, Step: cfg.Playback.GIFStep},
		Entrances: true,
	}
	registry := experiment.NewRegistry()
	for _, path := range outFiles {
		if err := registry.WriteFile(path, out); err != nil {
			return err
		}
		logger.Printf("wrote %s", path)
	}

	fmt.Printf("completed in %v\n", elapsed)
	if meta.ID != "" {
		fmt.Printf("run id: %s\n", meta.ID)
	}
	fmt.Printf("seed: %d\n", cfg.Seed)
	fmt.Printf("events: %d\n", len(res.Events))
	printMetrics(meta.Metrics)

	if showMaze {
		walls, err := render.FromEvents(exp.Graph(), res.Start, res.Events)
		if err != nil {
			return err
		}
		walls.OpenEntrances()
		fmt.Println()
		fmt.Print(render.Text(walls, render.TextOptions{}))
	}
	return nil
}

func printMetrics(metrics map[string]float64) {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, metrics[name])
	}
}

func playbackOptions(title string, cfg *config.Config) (viz.Options, error) {
	rc, err := cfg.RenderConfig()
	if err != nil {
		return viz.Options{}, err
	}
	opts := viz.DefaultOptions()
	opts.Title = title
	opts.FPS = cfg.Playback.FPS
	opts.PerTick = cfg.Playback.PerTick
	opts.Theme = cfg.Playback.Theme
	opts.Braille = braille
	opts.Render = rc
	opts.GIFDelay = cfg.Playback.GIFDelay
	opts.RecordPath = record
	return opts, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		run, err := storage.New(dataDir).LoadRun(args[0])
		if err != nil {
			return err
		}
		opts, err := playbackOptions(run.Meta.ID, cfg)
		if err != nil {
			return err
		}
		m, err := viz.NewModel(run.Graph, run.Meta.Start(), run.Events, nil, opts)
		if err != nil {
			return err
		}
		return viz.Run(m)
	}

	exp, res, err := generate(cmd.Context(), preset, cfg)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%dx%d bias %.2f seed %d", cfg.Width, cfg.Height, cfg.Bias, cfg.Seed)
	opts, err := playbackOptions(title, cfg)
	if err != nil {
		return err
	}
	m, err := viz.NewModel(exp.Graph(), res.Start, res.Events, res.Stats.FrontierSizes, opts)
	if err != nil {
		return err
	}
	return viz.Run(m)
}

// runMenu offers every preset with its size, bias and seed adjustable.
func runMenu(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	bases := make(map[string]*config.Config, len(names))
	choices := make([]viz.Choice, 0, len(names))
	for _, name := range names {
		cfg := config.GetPreset(name)
		cfg.Playback.FPS = frameRate
		cfg.Playback.PerTick = perTick
		cfg.Playback.Theme = theme
		cfg.Playback.GIFDelay = gifDelay
		bases[name] = cfg

		choices = append(choices, viz.Choice{
			Name:        name,
			Description: config.PresetInfo[name],
			Params: []viz.Param{
				{Name: "width", Value: float64(cfg.Width), Step: 1},
				{Name: "height", Value: float64(cfg.Height), Step: 1},
				{Name: "bias", Value: cfg.Bias, Step: 0.05},
				{Name: "seed", Value: 0, Step: 1},
			},
		})
	}

	build := func(choice string, params map[string]float64) (viz.Model, error) {
		cfg := bases[choice].Clone()
		cfg.Width = int(params["width"])
		cfg.Height = int(params["height"])
		cfg.Bias = params["bias"]
		cfg.Seed = int64(params["seed"])
		if cfg.Seed == 0 {
			cfg.Seed = rand.Int63()
		}
		// a preset start may fall outside a shrunken grid
		if cfg.Start.X >= cfg.Width || cfg.Start.Y >= cfg.Height {
			cfg.Start = config.StartConfig{X: cfg.Width / 2, Y: cfg.Height / 2}
		}
		if err := cfg.Validate(); err != nil {
			return viz.Model{}, err
		}
		exp, res, err := generate(context.Background(), choice, cfg)
		if err != nil {
			return viz.Model{}, err
		}
		title := fmt.Sprintf("%s seed %d", choice, cfg.Seed)
		opts, err := playbackOptions(title, cfg)
		if err != nil {
			return viz.Model{}, err
		}
		return viz.NewModel(exp.Graph(), res.Start, res.Events, res.Stats.FrontierSizes, opts)
	}

	return viz.RunMenu(choices, build)
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
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSIZE\tSTART\tBIAS\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t(%d,%d)\t%.3f\t%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.StartX, run.StartY,
			run.Bias,
			run.Seed,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	run, err := storage.New(dataDir).LoadRun(args[0])
	if err != nil {
		return err
	}
	walls, err := render.FromEvents(run.Graph, run.Meta.Start(), run.Events)
	if err != nil {
		return err
	}
	if entrances {
		walls.OpenEntrances()
	}
	fmt.Printf("run: %s (%dx%d, start (%d,%d), bias %.3f, seed %d)\n\n",
		run.Meta.ID, run.Meta.Width, run.Meta.Height, run.Meta.StartX, run.Meta.StartY, run.Meta.Bias, run.Meta.Seed)
	fmt.Print(render.Text(walls, render.TextOptions{}))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	run, err := storage.New(dataDir).LoadRun(args[0])
	if err != nil {
		return err
	}
	if len(outFiles) == 0 {
		return storage.ExportJSONStdout(run.Meta, run.Events)
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		if cfg, err = config.Load(configFile); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cmd.Flags().Changed("gif-delay") {
		cfg.Playback.GIFDelay = gifDelay
	}
	rc, err := cfg.RenderConfig()
	if err != nil {
		return err
	}

	out := experiment.Output{
		Graph:     run.Graph,
		Start:     run.Meta.Start(),
		Events:    run.Events,
		Meta:      run.Meta,
		Render:    rc,
		GIF:       export.GIFOptions{Delay: cfg.Playback.GIFDelay, Step: cfg.Playback.GIFStep},
		Entrances: true,
	}
	registry := experiment.NewRegistry()
	for _, path := range outFiles {
		if err := registry.WriteFile(path, out); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func verifyRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	events, err := st.LoadEvents(args[0])
	if err != nil {
		return err
	}
	g, err := meta.Graph()
	if err != nil {
		return err
	}
	if err := maze.Validate(g, meta.Start(), events); err != nil {
		return fmt.Errorf("run %s is not a perfect maze: %w", meta.ID, err)
	}
	fmt.Printf("ok: %s spans %dx%d with %d events\n", meta.ID, meta.Width, meta.Height, len(events))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	var (
		g        *grid.Graph
		start    grid.Cell
		events   []maze.Event
		genStats *maze.Stats
		label    string
	)

	if len(args) == 1 {
		run, err := storage.New(dataDir).LoadRun(args[0])
		if err != nil {
			return err
		}
		g, start, events, label = run.Graph, run.Meta.Start(), run.Events, run.Meta.ID
	} else {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		exp, res, err := generate(cmd.Context(), preset, cfg)
		if err != nil {
			return err
		}
		g, start, events, genStats = exp.Graph(), res.Start, res.Events, &res.Stats
		label = fmt.Sprintf("seed %d", cfg.Seed)
	}

	st, err := analysis.Analyze(g, start, events)
	if err != nil {
		return err
	}

	fmt.Printf("maze: %s (%dx%d, start (%d,%d))\n\n", label, st.Width, st.Height, st.Start.X, st.Start.Y)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "dead ends\t%d\t(%.1f%%)\n", st.DeadEnds, 100*st.DeadEndRatio())
	fmt.Fprintf(w, "straights\t%d\n", st.Straights)
	fmt.Fprintf(w, "turns\t%d\n", st.Turns)
	fmt.Fprintf(w, "junctions\t%d\n", st.Junctions)
	fmt.Fprintf(w, "crossroads\t%d\n", st.Crossroads)
	fmt.Fprintf(w, "max depth\t%d\tat (%d,%d)\n", st.MaxDepth, st.Deepest.X, st.Deepest.Y)
	fmt.Fprintf(w, "mean depth\t%.2f\t± %.2f\n", st.MeanDepth, st.StdDepth)
	fmt.Fprintf(w, "longest path\t%d\t(%d,%d) to (%d,%d)\n", st.LongestPath,
		st.PathEnds[0].X, st.PathEnds[0].Y, st.PathEnds[1].X, st.PathEnds[1].Y)
	fmt.Fprintf(w, "mean corridor\t%.2f\n", st.MeanCorridor)
	if genStats != nil {
		fmt.Fprintf(w, "pushes\t%d\n", genStats.Pushes)
		fmt.Fprintf(w, "stale pops\t%d\n", genStats.StalePops)
		fmt.Fprintf(w, "front/back pops\t%d/%d\n", genStats.FrontPops, genStats.BackPops)
		fmt.Fprintf(w, "peak frontier\t%d\n", genStats.PeakFrontier)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	hist := st.DepthHistogram(bins)
	data := make([]float64, len(hist))
	for i, n := range hist {
		data[i] = float64(n)
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("cells by depth from start"),
	))

	if genStats != nil && len(genStats.FrontierSizes) > 1 {
		frontier := make([]float64, len(genStats.FrontierSizes))
		for i, n := range genStats.FrontierSizes {
			frontier[i] = float64(n)
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(frontier,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("frontier size per event"),
		))
	}

	if chartDir == "" {
		return nil
	}
	if err := os.MkdirAll(chartDir, 0755); err != nil {
		return err
	}
	depths := make([]float64, 0, len(st.Depths))
	for _, d := range st.Depths {
		if d >= 0 {
			depths = append(depths, float64(d))
		}
	}
	depthPath := filepath.Join(chartDir, "depth.png")
	if err := export.Histogram(depthPath, "Depth from start", "Depth", depths, bins); err != nil {
		return err
	}
	fmt.Printf("\nwrote %s\n", depthPath)
	if genStats != nil {
		frontierPath := filepath.Join(chartDir, "frontier.png")
		if err := export.FrontierChart(frontierPath, *genStats); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", frontierPath)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweep := &automation.BiasSweep{
		Width:     width,
		Height:    height,
		Start:     grid.Cell{X: startX, Y: startY},
		BiasMin:   biasMin,
		BiasMax:   biasMax,
		Steps:     steps,
		Runs:      runs,
		SeedStart: seedStart,
		Progress: func(done, total int, b float64) {
			logger.Printf("bias %.3f done (%d/%d)", b, done, total)
		},
	}

	fmt.Printf("sweeping bias %.2f..%.2f on %dx%d, %d runs each\n\n", biasMin, biasMax, width, height, runs)
	results, err := sweep.Run(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BIAS\tDEAD ENDS\tLONGEST\tMAX DEPTH\tCORRIDOR\tSTALE\tPEAK")
	for _, r := range results {
		s := r.Summary
		fmt.Fprintf(w, "%.3f\t%.3f ± %.3f\t%.1f ± %.1f\t%.1f\t%.2f\t%.0f\t%.0f\n",
			r.Bias, s.DeadEndRatio, s.DeadEndRatioStd, s.LongestPath, s.LongestPathStd,
			s.MaxDepth, s.MeanCorridor, r.MeanStalePops, r.MeanPeakFrontier)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(results) > 2 {
		xs := make([]float64, len(results))
		ys := make([]float64, len(results))
		for i, r := range results {
			xs[i], ys[i] = r.Bias, r.Summary.LongestPath
		}
		fmt.Printf("\nbias vs longest path correlation: %.3f\n", analysis.Correlation(xs, ys))
	}

	if sweepOut != "" {
		if err := automation.SweepChart(sweepOut, results); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", sweepOut)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	runner := &automation.Runner{
		Store:    st,
		Registry: experiment.NewRegistry(),
		OutDir:   outDir,
		Logger:   logger,
	}

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("%s\n", scenario.Description)
	}
	results, err := runner.RunScenario(cmd.Context(), scenario)
	for _, r := range results {
		line := fmt.Sprintf("  %s: %d events", r.Name, len(r.Result.Events))
		if r.RunID != "" {
			line += ", saved as " + r.RunID
		}
		for _, f := range r.Files {
			line += ", " + f
		}
		fmt.Println(line)
	}
	return err
}
