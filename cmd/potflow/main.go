package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/potflow/internal/config"
	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/flows"
	"github.com/san-kum/potflow/internal/jacobian"
	"github.com/san-kum/potflow/internal/linalg"
	"github.com/san-kum/potflow/internal/potential"
	"github.com/san-kum/potflow/internal/scan"
	"github.com/san-kum/potflow/internal/storage"
	"github.com/san-kum/potflow/internal/tui"
	"github.com/san-kum/potflow/internal/viz"
)

var (
	dataDir    string
	configFile string
	normName   string
	scheme     string
	step       float64
	workers    int
	x0Arg      string
	xArg       string
	paramArgs  []string
	// scan region
	axisX      int
	axisY      int
	minX, maxX float64
	minY, maxY float64
	resolution int
	save       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "potflow",
		Short: "local potential analysis for vector fields",
		Long: "potflow estimates the change of an implicit scalar potential between\n" +
			"nearby points of a flow, with a reliability score for how conservative\n" +
			"the field looks locally.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".potflow", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	evalCmd := &cobra.Command{
		Use:   "eval [flow]",
		Short: "estimate the potential difference between two points",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEval,
	}
	addPipelineFlags(evalCmd)
	evalCmd.Flags().StringVar(&x0Arg, "x0", "", "reference point, comma separated")
	evalCmd.Flags().StringVar(&xArg, "x", "", "evaluation point, comma separated")
	evalCmd.Flags().BoolVar(&save, "save", false, "persist the run")

	scanCmd := &cobra.Command{
		Use:   "scan [flow]",
		Short: "map rotationality and potential over a region",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	addPipelineFlags(scanCmd)
	scanCmd.Flags().IntVar(&axisX, "axis-x", 0, "state index for the x axis")
	scanCmd.Flags().IntVar(&axisY, "axis-y", 1, "state index for the y axis")
	scanCmd.Flags().Float64Var(&minX, "min-x", -config.DefaultSpan, "x axis lower bound")
	scanCmd.Flags().Float64Var(&maxX, "max-x", config.DefaultSpan, "x axis upper bound")
	scanCmd.Flags().Float64Var(&minY, "min-y", -config.DefaultSpan, "y axis lower bound")
	scanCmd.Flags().Float64Var(&maxY, "max-y", config.DefaultSpan, "y axis upper bound")
	scanCmd.Flags().IntVar(&resolution, "resolution", config.DefaultResolution, "grid resolution per axis")
	scanCmd.Flags().BoolVar(&save, "save", false, "persist the run")

	flowsCmd := &cobra.Command{
		Use:   "flows",
		Short: "list builtin flows",
		RunE:  listFlows,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive rotationality explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(evalCmd, scanCmd, flowsCmd, runsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&normName, "norm", config.DefaultNorm, "matrix norm: frobenius|one|infinity|spectral|max")
	cmd.Flags().StringVar(&scheme, "scheme", config.DefaultScheme, "differencing scheme: central|forward|richardson")
	cmd.Flags().Float64Var(&step, "step", 0, "differencing base step (0 = scheme default)")
	cmd.Flags().IntVar(&workers, "workers", 1, "parallel flow evaluations")
	cmd.Flags().StringArrayVar(&paramArgs, "param", nil, "flow parameter, name=value (repeatable)")
}

// loadConfig merges the optional config file under the flag values.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Flow = args[0]
	}
	if normName != config.DefaultNorm || cfg.Norm == "" {
		cfg.Norm = normName
	}
	if scheme != config.DefaultScheme || cfg.Scheme == "" {
		cfg.Scheme = scheme
	}
	if step > 0 {
		cfg.Step = step
	}
	if workers > 1 {
		cfg.Workers = workers
	}
	return cfg, nil
}

func buildFlow(cfg *config.Config) (flows.Flow, error) {
	fl, err := flows.NewRegistry().Get(cfg.Flow)
	if err != nil {
		return nil, err
	}
	for name, value := range cfg.Params {
		if err := fl.SetParam(name, value); err != nil {
			return nil, err
		}
	}
	for _, arg := range paramArgs {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("malformed --param %q, want name=value", arg)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed --param %q: %w", arg, err)
		}
		if err := fl.SetParam(name, value); err != nil {
			return nil, err
		}
	}
	return fl, nil
}

func buildEstimator(cfg *config.Config) (jacobian.Estimator, error) {
	switch cfg.Scheme {
	case "central", "":
		return &jacobian.Central{Step: cfg.Step, Workers: cfg.Workers}, nil
	case "forward":
		return &jacobian.Forward{Step: cfg.Step}, nil
	case "richardson":
		return &jacobian.Richardson{Step: cfg.Step}, nil
	}
	return nil, fmt.Errorf("unknown scheme: %s", cfg.Scheme)
}

func parsePoint(raw string) (field.Vec, error) {
	parts := strings.Split(raw, ",")
	p := make(field.Vec, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point %q: %w", raw, err)
		}
		p = append(p, v)
	}
	return p, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	fl, err := buildFlow(cfg)
	if err != nil {
		return err
	}
	est, err := buildEstimator(cfg)
	if err != nil {
		return err
	}
	kind, err := linalg.ParseNorm(cfg.Norm)
	if err != nil {
		return err
	}

	x0 := field.Vec(cfg.X0)
	if x0Arg != "" {
		if x0, err = parsePoint(x0Arg); err != nil {
			return err
		}
	}
	if len(x0) == 0 {
		x0 = fl.DefaultPoint()
	}

	x := field.Vec(cfg.X)
	if xArg != "" {
		if x, err = parsePoint(xArg); err != nil {
			return err
		}
	}
	if len(x) == 0 {
		// Default to a small diagonal displacement.
		x = x0.Clone()
		for i := range x {
			x[i] += 0.01
		}
	}

	res, err := potential.Estimate(fl.Eval, x, x0,
		potential.WithNorm(kind), potential.WithEstimator(est))
	if err != nil {
		return err
	}

	fmt.Println(viz.ResultCard(fl.Name(), kind.String(), x0, x, res))

	if save {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.SaveEval(fl.Name(), kind.String(), cfg.Scheme, x0, x, res)
		if err != nil {
			return err
		}
		fmt.Println(viz.Subtle.Render("saved " + runID))
	}
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	fl, err := buildFlow(cfg)
	if err != nil {
		return err
	}
	if fl.Dim() < 2 {
		return fmt.Errorf("scan needs a flow of dimension >= 2, %s has %d", fl.Name(), fl.Dim())
	}
	est, err := buildEstimator(cfg)
	if err != nil {
		return err
	}
	kind, err := linalg.ParseNorm(cfg.Norm)
	if err != nil {
		return err
	}

	// Config file supplies the region; explicitly set flags win.
	sc := cfg.Scan
	flagInt := func(name string, flag, fallback int) int {
		if cmd.Flags().Changed(name) {
			return flag
		}
		return fallback
	}
	flagFloat := func(name string, flag, fallback float64) float64 {
		if cmd.Flags().Changed(name) {
			return flag
		}
		return fallback
	}
	reg := scan.Region{
		AxisX: flagInt("axis-x", axisX, sc.AxisX),
		AxisY: flagInt("axis-y", axisY, sc.AxisY),
		MinX:  flagFloat("min-x", minX, sc.MinX),
		MaxX:  flagFloat("max-x", maxX, sc.MaxX),
		MinY:  flagFloat("min-y", minY, sc.MinY),
		MaxY:  flagFloat("max-y", maxY, sc.MaxY),
	}
	reg.NX = flagInt("resolution", resolution, sc.Resolution)
	reg.NY = reg.NX / 2
	if reg.NY < 2 {
		reg.NY = 2
	}

	base := make(field.Vec, fl.Dim())
	sweepWorkers := cfg.Workers
	if sweepWorkers < 1 {
		sweepWorkers = 1
	}
	g, err := scan.Sweep(fl.Eval, base, reg,
		scan.WithNorm(kind), scan.WithEstimator(est), scan.WithWorkers(sweepWorkers))
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(fmt.Sprintf("rotationality of %s (norm=%s)", fl.Name(), kind)))
	fmt.Print(viz.Heatmap(g.Xs, g.Ys, g.Err, 0, 1, true))

	fmt.Println(viz.Title.Render("potential difference from region center"))
	fmt.Print(viz.Heatmap(g.Xs, g.Ys, g.DV, 0, 0, false))

	// Profile of err along the middle row.
	mid := len(g.Err) / 2
	graph := asciigraph.Plot(g.Err[mid],
		asciigraph.Height(8),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("err along y=%.2f", g.Ys[mid])))
	fmt.Println(graph)

	if save {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.SaveScan(fl.Name(), kind.String(), cfg.Scheme, g)
		if err != nil {
			return err
		}
		fmt.Println(viz.Subtle.Render("saved " + runID))
	}
	return nil
}

func listFlows(cmd *cobra.Command, args []string) error {
	registry := flows.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIM\tPARAMS")
	for _, name := range registry.List() {
		fl, err := registry.Get(name)
		if err != nil {
			return err
		}
		params := make([]string, 0)
		for pname, v := range fl.GetParams() {
			params = append(params, fmt.Sprintf("%s=%g", pname, v))
		}
		sort.Strings(params)
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, fl.Dim(), strings.Join(params, " "))
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tFLOW\tNORM\tDV\tERR")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%+.5g\t%.4f\n",
			run.ID, run.Kind, run.Flow, run.Norm, run.DV, run.Err)
	}
	return w.Flush()
}
