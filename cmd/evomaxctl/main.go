package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"evomax/internal/storage"
	evoapi "evomax/pkg/evomax"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "run":
		return runRun(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "fitness":
		return runFitness(ctx, args[1:])
	case "diagnostics":
		return runDiagnostics(ctx, args[1:])
	case "best":
		return runBest(ctx, args[1:])
	case "objectives":
		return runObjectives(ctx, args[1:])
	case "objective-summary":
		return runObjectiveSummary(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func storeFlags(fs *flag.FlagSet) (storeKind, dbPath, runsDir *string) {
	storeKind = fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath = fs.String("db-path", "evomax.db", "sqlite database path")
	runsDir = fs.String("runs-dir", "runs", "run artifacts directory")
	return storeKind, dbPath, runsDir
}

func newClient(ctx context.Context, storeKind, dbPath, runsDir string) (*evoapi.Client, error) {
	client, err := evoapi.NewClient(evoapi.Options{
		StoreKind: storeKind,
		DBPath:    dbPath,
		RunsDir:   runsDir,
	})
	if err != nil {
		return nil, err
	}
	if err := client.Init(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// parseElitism maps a flag value to the tri-state Config field. Anything
// other than on/off (or a bool literal) is a configuration defect.
func parseElitism(value string) (*bool, error) {
	switch value {
	case "":
		return nil, nil
	case "on", "true", "1":
		on := true
		return &on, nil
	case "off", "false", "0":
		off := false
		return &off, nil
	default:
		return nil, fmt.Errorf("invalid elitism value %q (status code %d): use on or off", value, evoapi.CodeBadElitism)
	}
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind, dbPath, runsDir := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath, *runsDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	storeKind, dbPath, runsDir := storeFlags(fs)
	objective := fs.String("objective", "paraboloid", "objective to maximize")
	dimension := fs.Int("dimension", 2, "number of variables")
	population := fs.Int("population", 0, "population size (0 uses the default)")
	generations := fs.Int("generations", 0, "generation budget (0 uses the default)")
	digits := fs.Int("digits", 0, "decimal digits per variable (0 uses the default)")
	crossover := fs.Float64("crossover", 0, "crossover probability (0 uses the default)")
	mode := fs.Int("mutation-mode", 0, "mutation mode 1..6 (0 uses the default)")
	rate := fs.Float64("mutation-rate", 0, "initial mutation rate (0 uses the default)")
	fdif := fs.Float64("fdif", 0, "fitness differential (0 uses the default)")
	plan := fs.Int("plan", 0, "replacement plan 1..3 (0 uses the default)")
	elitism := fs.String("elitism", "", "elitism: on|off (empty uses the default)")
	tolerance := fs.Float64("tolerance", 0, "convergence tolerance (0 uses the default)")
	window := fs.Int("window", 0, "convergence window (0 default, negative disables)")
	seed := fs.Int64("seed", 0, "random seed (0 uses the default)")
	verbosity := fs.Int("verbosity", 0, "report verbosity 0..2")
	jsonOut := fs.Bool("json", false, "emit the run summary as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	elitismFlag, err := parseElitism(*elitism)
	if err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath, *runsDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Run(ctx, evoapi.RunRequest{
		Objective:           *objective,
		Dimension:           *dimension,
		Population:          *population,
		Generations:         *generations,
		Digits:              *digits,
		CrossoverProb:       *crossover,
		MutationMode:        *mode,
		MutationRate:        *rate,
		FitnessDifferential: *fdif,
		ReplacementPlan:     *plan,
		Elitism:             elitismFlag,
		Tolerance:           *tolerance,
		Window:              *window,
		Seed:                *seed,
		Verbosity:           *verbosity,
	})
	if err != nil {
		return err
	}

	for _, warning := range summary.Warnings {
		fmt.Fprintf(os.Stderr, "warning: status code %d\n", warning)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	fmt.Printf("run_id=%s objective=%s stop=%s generations=%d best_fitness=%.6g\n",
		summary.RunID, summary.Objective, summary.StopReason, summary.Generations, summary.FinalBestFitness)
	fmt.Printf("best_x=%v\n", summary.BestX)
	fmt.Printf("artifacts=%s\n", summary.ArtifactsDir)
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind, dbPath, runsDir := storeFlags(fs)
	limit := fs.Int("limit", 20, "max runs to list")
	jsonOut := fs.Bool("json", false, "emit runs list as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	client, err := newClient(ctx, *storeKind, *dbPath, *runsDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	items, err := client.Runs(ctx, evoapi.RunsRequest{Limit: *limit})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	for _, item := range items {
		fmt.Printf("run_id=%s created_at=%s objective=%s seed=%d pop=%d gens=%d stop=%s best_fitness=%.6g\n",
			item.RunID, item.CreatedAtUTC, item.Objective, item.Seed,
			item.Population, item.Generations, item.StopReason, item.FinalBestFitness)
	}
	return nil
}

func runFitness(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fitness", flag.ContinueOnError)
	storeKind, dbPath, runsDir := storeFlags(fs)
	runID := fs.String("run-id", "", "run to inspect")
	latest := fs.Bool("latest", false, "use the most recent run")
	limit := fs.Int("limit", 0, "show only the last N generations")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath, *runsDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	resolved, history, err := client.FitnessHistory(ctx, evoapi.FitnessHistoryRequest{
		RunID:  *runID,
		Latest: *latest,
		Limit:  *limit,
	})
	if err != nil {
		return err
	}

	fmt.Printf("run_id=%s generations=%d\n", resolved, len(history))
	for i, best := range history {
		fmt.Printf("generation=%d best_fitness=%.6g\n", i+1, best)
	}
	return nil
}

func runDiagnostics(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("diagnostics", flag.ContinueOnError)
	storeKind, dbPath, runsDir := storeFlags(fs)
	runID := fs.String("run-id", "", "run to inspect")
	latest := fs.Bool("latest", false, "use the most recent run")
	limit := fs.Int("limit", 0, "show only the last N generations")
	jsonOut := fs.Bool("json", false, "emit diagnostics as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath, *runsDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	resolved, diagnostics, err := client.Diagnostics(ctx, evoapi.DiagnosticsRequest{
		RunID:  *runID,
		Latest: *latest,
		Limit:  *limit,
	})
	if err != nil {
		return err
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(diagnostics)
	}
	fmt.Printf("run_id=%s\n", resolved)
	for _, d := range diagnostics {
		fmt.Printf("generation=%d new=%d pmut=%.6f best=%.6g second=%.6g median=%.6g mean=%.6g stddev=%.6g\n",
			d.Generation, d.NewMembers, d.MutationRate, d.BestFitness,
			d.SecondFitness, d.MedianFitness, d.MeanFitness, d.StdDevFitness)
	}
	return nil
}

func runBest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("best", flag.ContinueOnError)
	storeKind, dbPath, runsDir := storeFlags(fs)
	runID := fs.String("run-id", "", "run to inspect")
	latest := fs.Bool("latest", false, "use the most recent run")
	jsonOut := fs.Bool("json", false, "emit the solution as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath, *runsDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	solution, err := client.Best(ctx, evoapi.BestRequest{RunID: *runID, Latest: *latest})
	if err != nil {
		return err
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(solution)
	}
	fmt.Printf("run_id=%s fitness=%.6g generation=%d stop=%s\n",
		solution.RunID, solution.Fitness, solution.Generation, solution.StopReason)
	fmt.Printf("x=%v\n", solution.X)
	return nil
}

func runObjectives(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("objectives", flag.ContinueOnError)
	storeKind, dbPath, runsDir := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath, *runsDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	items, err := client.Objectives(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("%-12s %s\n", item.Name, item.Description)
	}
	return nil
}

func runObjectiveSummary(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("objective-summary", flag.ContinueOnError)
	storeKind, dbPath, runsDir := storeFlags(fs)
	jsonOut := fs.Bool("json", false, "emit summaries as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath, *runsDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	items, err := client.ObjectiveSummaries(ctx)
	if err != nil {
		return err
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	for _, item := range items {
		if item.BestRunID == "" {
			fmt.Printf("%-12s best_fitness=n/a\n", item.Name)
			continue
		}
		fmt.Printf("%-12s best_fitness=%.6g best_run=%s\n", item.Name, item.BestFitness, item.BestRunID)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	storeKind, dbPath, runsDir := storeFlags(fs)
	runID := fs.String("run-id", "", "run to export")
	latest := fs.Bool("latest", false, "export the most recent run")
	outDir := fs.String("out", "exports", "destination directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath, *runsDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Export(ctx, evoapi.ExportRequest{
		RunID:  *runID,
		Latest: *latest,
		OutDir: *outDir,
	})
	if err != nil {
		return err
	}

	fmt.Printf("exported run_id=%s to %s\n", summary.RunID, summary.Directory)
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: evomaxctl <init|run|runs|fitness|diagnostics|best|objectives|objective-summary|export> [flags]", msg)
}
