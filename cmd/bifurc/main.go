package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bifurc/internal/config"
	"github.com/san-kum/bifurc/internal/maps"
	"github.com/san-kum/bifurc/internal/render"
	"github.com/san-kum/bifurc/internal/storage"
	"github.com/san-kum/bifurc/internal/sweep"
	"github.com/san-kum/bifurc/internal/tui"
	"github.com/san-kum/bifurc/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	mapName    string
	x0         float64
	rMin       float64
	rMax       float64
	rPoints    int
	skip       int
	samples    int
	workers    int
	dpi        int
	pointSize  float64
	outPath    string
	svgOut     bool
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bifurc",
		Short: "bifurcation diagrams for iterated maps",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bifurc", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "sweep the control parameter and render a diagram",
		RunE:  renderDiagram,
	}
	addSweepFlags(renderCmd)
	addRenderFlags(renderCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "sweep the control parameter and store the samples",
		RunE:  runSweep,
	}
	addSweepFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "sweep with live progress, then render",
		RunE:  runLive,
	}
	addSweepFlags(liveCmd)
	addRenderFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "preview a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	mapsCmd := &cobra.Command{
		Use:   "maps",
		Short: "list registered maps",
		Run: func(cmd *cobra.Command, args []string) {
			registry := maps.NewRegistry()
			for i, name := range registry.List() {
				fmt.Printf("  %d: %s\n", i, name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [map]",
		Short: "list available presets for a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for map: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, mapsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mapName, "map", "logistic", "map name or index")
	cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial state of every trajectory")
	cmd.Flags().Float64Var(&rMin, "r-min", config.DefaultRMin, "minimal control value")
	cmd.Flags().Float64Var(&rMax, "r-max", config.DefaultRMax, "maximal control value")
	cmd.Flags().IntVar(&rPoints, "r-points", config.DefaultRPoints, "number of control values to sample")
	cmd.Flags().IntVar(&skip, "skip", config.DefaultSkip, "transient iterations to discard")
	cmd.Flags().IntVarP(&samples, "samples", "n", config.DefaultSamples, "retained samples per control value")
	cmd.Flags().IntVar(&workers, "n-cpus", config.DefaultWorkers, "worker count")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&dpi, "dpi", config.DefaultDPI, "image resolution")
	cmd.Flags().Float64Var(&pointSize, "point-size", config.DefaultPointSize, "sample radius in pixels")
	cmd.Flags().StringVar(&outPath, "out", config.DefaultOut, "output image path (.png, .jpg, .svg)")
	cmd.Flags().BoolVar(&svgOut, "svg", false, "write SVG instead of a raster image")
}

// resolveConfig merges preset, config file, and flags into the effective
// settings. Flags that were set explicitly win, matching the run command of
// most dynamics tools.
func resolveConfig(cmd *cobra.Command) error {
	if preset != "" {
		cfg := config.GetPreset(mapName, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mapName))
		}
		mapName = cfg.Map
		x0 = cfg.X0
		rMin = cfg.RMin
		rMax = cfg.RMax
		rPoints = cfg.RPoints
		skip = cfg.Skip
		samples = cfg.Samples
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("map") {
			mapName = cfg.Map
		}
		if !cmd.Flags().Changed("x0") {
			x0 = cfg.X0
		}
		if !cmd.Flags().Changed("r-min") {
			rMin = cfg.RMin
		}
		if !cmd.Flags().Changed("r-max") {
			rMax = cfg.RMax
		}
		if !cmd.Flags().Changed("r-points") {
			rPoints = cfg.RPoints
		}
		if !cmd.Flags().Changed("skip") {
			skip = cfg.Skip
		}
		if !cmd.Flags().Changed("samples") {
			samples = cfg.Samples
		}
		if !cmd.Flags().Changed("n-cpus") && cfg.Workers > 0 {
			workers = cfg.Workers
		}
		if cmd.Flags().Lookup("dpi") != nil {
			if !cmd.Flags().Changed("dpi") && cfg.Render.DPI > 0 {
				dpi = cfg.Render.DPI
			}
			if !cmd.Flags().Changed("point-size") && cfg.Render.PointSize > 0 {
				pointSize = cfg.Render.PointSize
			}
			if !cmd.Flags().Changed("out") && cfg.Render.Out != "" {
				outPath = cfg.Render.Out
			}
		}
	}
	return nil
}

// selectMap accepts either a registered name or an integer index, keeping
// CLI parity with tools that number their maps.
func selectMap(registry *maps.Registry, selector string) (maps.Func, string, error) {
	if idx, err := strconv.Atoi(selector); err == nil {
		fn, err := registry.GetIndex(idx)
		if err != nil {
			return nil, "", err
		}
		name, _ := registry.Name(idx)
		return fn, name, nil
	}
	fn, err := registry.Get(selector)
	return fn, selector, err
}

func sweepConfig(fn maps.Func) sweep.Config {
	return sweep.Config{
		Map:     fn,
		X0:      x0,
		RMin:    rMin,
		RMax:    rMax,
		RPoints: rPoints,
		Skip:    skip,
		N:       samples,
		Workers: workers,
	}
}

func renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.DPI = dpi
	opts.PointSize = pointSize
	return opts
}

func writeDiagram(result *sweep.Result) error {
	opts := renderOptions()
	if svgOut || strings.EqualFold(filepath.Ext(outPath), ".svg") {
		doc, err := render.ScatterSVG(result, dpi*16, dpi*9, opts)
		if err != nil {
			return err
		}
		return os.WriteFile(outPath, []byte(doc), 0644)
	}

	img, err := render.Raster(result, opts)
	if err != nil {
		return err
	}
	return render.WriteImage(outPath, img)
}

func renderDiagram(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}

	registry := maps.NewRegistry()
	fn, name, err := selectMap(registry, mapName)
	if err != nil {
		return err
	}

	cfg := sweepConfig(fn)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Printf("sweeping %s map over [%g, %g]...\n", name, rMin, rMax)
	start := time.Now()

	result, err := sweep.NewRunner().Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("computed %d samples in %v\n", result.Len(), time.Since(start).Round(time.Millisecond))

	if err := writeDiagram(result); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := maps.NewRegistry()
	fn, name, err := selectMap(registry, mapName)
	if err != nil {
		return err
	}

	cfg := sweepConfig(fn)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Printf("sweeping %s map over [%g, %g]...\n", name, rMin, rMax)
	start := time.Now()

	result, err := sweep.NewRunner().Run(context.Background(), cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Map:     name,
		X0:      x0,
		RMin:    rMin,
		RMax:    rMax,
		RPoints: rPoints,
		Skip:    skip,
		Samples: samples,
		Workers: workers,
		Elapsed: elapsed.Seconds(),
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed.Round(time.Millisecond))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("columns: %d, samples: %d\n", len(result.Columns), result.Len())
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}

	registry := maps.NewRegistry()
	fn, name, err := selectMap(registry, mapName)
	if err != nil {
		return err
	}

	result, err := tui.Run(context.Background(), sweepConfig(fn), name)
	if err != nil {
		return err
	}

	if err := writeDiagram(result); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
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

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMAP\tRANGE\tPOINTS\tSAMPLES\tWHEN")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t[%g, %g]\t%d\t%d\t%s\n",
			run.ID, run.Map, run.RMin, run.RMax, run.RPoints, run.Samples,
			run.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	fmt.Print(viz.Scatter(result, 100, 28))

	spans := viz.SpanProfile(result)
	if len(spans) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(spans,
			asciigraph.Height(10),
			asciigraph.Width(100),
			asciigraph.Caption("attractor span per control value"),
		))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, result)
}
