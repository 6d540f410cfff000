package evomax

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"evomax/internal/model"
	"evomax/internal/objective"
	"evomax/internal/stats"
	"evomax/internal/storage"
)

const (
	defaultRunsDir    = "runs"
	defaultExportsDir = "exports"
	defaultDBPath     = "evomax.db"
	defaultDimension  = 2
)

type Options struct {
	StoreKind  string
	DBPath     string
	RunsDir    string
	ExportsDir string
}

// Client ties the solver, the objective catalog, the store and the artifact
// directory into one request-response surface.
type Client struct {
	store    storage.Store
	registry *objective.Registry

	runsDir    string
	exportsDir string
}

type RunRequest struct {
	Objective    string
	Dimension    int
	InitialGuess []float64

	Population          int
	Generations         int
	Digits              int
	CrossoverProb       float64
	MutationMode        int
	MutationRate        float64
	FitnessDifferential float64
	ReplacementPlan     int
	Elitism             *bool
	Tolerance           float64
	Window              int
	Seed                int64
	Verbosity           int
}

type RunSummary struct {
	RunID            string
	Objective        string
	ArtifactsDir     string
	BestX            []float64
	FinalBestFitness float64
	StopReason       string
	Generations      int
	BestByGeneration []float64
	Warnings         []StatusCode
}

type RunsRequest struct {
	Limit int
}

type RunItem struct {
	RunID            string
	CreatedAtUTC     string
	Objective        string
	Seed             int64
	Population       int
	Generations      int
	StopReason       string
	FinalBestFitness float64
}

type FitnessHistoryRequest struct {
	RunID  string
	Latest bool
	Limit  int
}

type DiagnosticsRequest struct {
	RunID  string
	Latest bool
	Limit  int
}

type BestRequest struct {
	RunID  string
	Latest bool
}

type ExportRequest struct {
	RunID  string
	Latest bool
	OutDir string
}

type ExportSummary struct {
	RunID     string
	Directory string
}

type ObjectiveItem struct {
	Name        string
	Description string
}

type ObjectiveSummaryItem struct {
	Name        string
	Description string
	BestFitness float64
	BestRunID   string
}

// builtinObjectives maps catalog names to dimension-parameterized builders.
var builtinObjectives = map[string]func(dims int) objective.Objective{
	"paraboloid": objective.Paraboloid,
	"sphere":     objective.Sphere,
	"rastrigin":  objective.Rastrigin,
	"rosenbrock": objective.Rosenbrock,
	"ackley":     objective.Ackley,
}

func NewClient(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	runsDir := opts.RunsDir
	if runsDir == "" {
		runsDir = defaultRunsDir
	}
	exportsDir := opts.ExportsDir
	if exportsDir == "" {
		exportsDir = defaultExportsDir
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:      store,
		registry:   objective.NewRegistry(),
		runsDir:    runsDir,
		exportsDir: exportsDir,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	if err := c.store.Init(ctx); err != nil {
		return err
	}
	return c.registerDefaultObjectives()
}

func (c *Client) registerDefaultObjectives() error {
	for _, name := range sortedBuiltinNames() {
		if _, err := c.registry.Resolve(name); err == nil {
			continue
		}
		if err := c.registry.Register(builtinObjectives[name](defaultDimension)); err != nil {
			return err
		}
	}
	return nil
}

func sortedBuiltinNames() []string {
	names := make([]string, 0, len(builtinObjectives))
	for name := range builtinObjectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	if req.Objective == "" {
		req.Objective = "paraboloid"
	}
	if req.Dimension <= 0 {
		req.Dimension = defaultDimension
	}
	build, ok := builtinObjectives[req.Objective]
	if !ok {
		return RunSummary{}, fmt.Errorf("unknown objective: %q", req.Objective)
	}
	obj := build(req.Dimension)
	lower, upper := obj.Bounds()

	cfg := Config{
		LowerBounds:         lower,
		UpperBounds:         upper,
		Objective:           obj.Evaluate,
		PopulationSize:      req.Population,
		Generations:         req.Generations,
		Digits:              req.Digits,
		CrossoverProb:       req.CrossoverProb,
		MutationMode:        req.MutationMode,
		MutationRate:        req.MutationRate,
		FitnessDifferential: req.FitnessDifferential,
		ReplacementPlan:     req.ReplacementPlan,
		Elitism:             req.Elitism,
		Tolerance:           req.Tolerance,
		Window:              req.Window,
		Seed:                req.Seed,
		Verbosity:           req.Verbosity,
	}
	if req.Verbosity > 0 {
		cfg.ReportWriter = os.Stdout
	}

	solver, validation, err := New(cfg)
	if err != nil {
		return RunSummary{}, err
	}

	result, err := solver.Solve(ctx, req.InitialGuess)
	if err != nil {
		return RunSummary{}, err
	}

	runID := uuid.NewString()
	solution := model.Solution{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		RunID:      runID,
		X:          result.BestX,
		Fitness:    result.BestF,
		Generation: result.Generations,
		StopReason: result.StopReason,
	}

	if err := c.store.SaveFitnessHistory(ctx, runID, result.BestByGeneration); err != nil {
		return RunSummary{}, err
	}
	if err := c.store.SaveGenerationDiagnostics(ctx, runID, result.Diagnostics); err != nil {
		return RunSummary{}, err
	}
	if err := c.store.SaveBestSolution(ctx, solution); err != nil {
		return RunSummary{}, err
	}
	if err := c.updateObjectiveSummary(ctx, obj, runID, result.BestF); err != nil {
		return RunSummary{}, err
	}

	solvedCfg := cfg.withDefaults()
	runDir, err := stats.WriteRunArtifacts(c.runsDir, stats.RunArtifacts{
		Config: stats.RunConfig{
			RunID:               runID,
			Objective:           obj.Name(),
			Dimension:           req.Dimension,
			LowerBounds:         lower,
			UpperBounds:         upper,
			InitialGuess:        req.InitialGuess,
			PopulationSize:      solvedCfg.PopulationSize,
			Generations:         solvedCfg.Generations,
			Digits:              solvedCfg.Digits,
			CrossoverProb:       solvedCfg.CrossoverProb,
			MutationMode:        solvedCfg.MutationMode,
			MutationRate:        solvedCfg.MutationRate,
			MutationRateMin:     solvedCfg.MutationRateMin,
			MutationRateMax:     solvedCfg.MutationRateMax,
			FitnessDifferential: solvedCfg.FitnessDifferential,
			ReplacementPlan:     solvedCfg.ReplacementPlan,
			Elitism:             *solvedCfg.Elitism,
			Tolerance:           solvedCfg.Tolerance,
			Window:              solvedCfg.Window,
			Seed:                solvedCfg.Seed,
		},
		BestByGeneration:      result.BestByGeneration,
		GenerationDiagnostics: result.Diagnostics,
		Solution:              solution,
		FinalBestFitness:      result.BestF,
	})
	if err != nil {
		return RunSummary{}, err
	}
	if err := stats.AppendRunIndex(c.runsDir, stats.RunIndexEntry{
		RunID:            runID,
		Objective:        obj.Name(),
		PopulationSize:   solvedCfg.PopulationSize,
		Generations:      solvedCfg.Generations,
		Seed:             solvedCfg.Seed,
		StopReason:       result.StopReason,
		FinalBestFitness: result.BestF,
		CreatedAtUTC:     time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return RunSummary{}, err
	}

	return RunSummary{
		RunID:            runID,
		Objective:        obj.Name(),
		ArtifactsDir:     runDir,
		BestX:            result.BestX,
		FinalBestFitness: result.BestF,
		StopReason:       result.StopReason,
		Generations:      result.Generations,
		BestByGeneration: result.BestByGeneration,
		Warnings:         validation.Warnings,
	}, nil
}

func (c *Client) updateObjectiveSummary(ctx context.Context, obj objective.Objective, runID string, bestF float64) error {
	summary, ok, err := c.store.GetObjectiveSummary(ctx, obj.Name())
	if err != nil {
		return err
	}
	if ok && summary.BestFitness >= bestF {
		return nil
	}
	return c.store.SaveObjectiveSummary(ctx, model.ObjectiveSummary{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		Name:        obj.Name(),
		Description: obj.Description(),
		BestFitness: bestF,
		BestRunID:   runID,
	})
}

func (c *Client) Runs(_ context.Context, req RunsRequest) ([]RunItem, error) {
	index, err := stats.ListRunIndex(c.runsDir)
	if err != nil {
		return nil, err
	}
	if req.Limit > 0 && len(index) > req.Limit {
		index = index[:req.Limit]
	}

	items := make([]RunItem, 0, len(index))
	for _, entry := range index {
		items = append(items, RunItem{
			RunID:            entry.RunID,
			CreatedAtUTC:     entry.CreatedAtUTC,
			Objective:        entry.Objective,
			Seed:             entry.Seed,
			Population:       entry.PopulationSize,
			Generations:      entry.Generations,
			StopReason:       entry.StopReason,
			FinalBestFitness: entry.FinalBestFitness,
		})
	}
	return items, nil
}

func (c *Client) resolveRunID(runID string, latest bool) (string, error) {
	if runID != "" {
		return runID, nil
	}
	if !latest {
		return "", fmt.Errorf("run id is required (or request the latest run)")
	}
	index, err := stats.ListRunIndex(c.runsDir)
	if err != nil {
		return "", err
	}
	if len(index) == 0 {
		return "", fmt.Errorf("no runs recorded")
	}
	return index[0].RunID, nil
}

func (c *Client) FitnessHistory(ctx context.Context, req FitnessHistoryRequest) (string, []float64, error) {
	runID, err := c.resolveRunID(req.RunID, req.Latest)
	if err != nil {
		return "", nil, err
	}
	history, ok, err := c.store.GetFitnessHistory(ctx, runID)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, fmt.Errorf("no fitness history for run %s", runID)
	}
	if req.Limit > 0 && len(history) > req.Limit {
		history = history[len(history)-req.Limit:]
	}
	return runID, history, nil
}

func (c *Client) Diagnostics(ctx context.Context, req DiagnosticsRequest) (string, []model.GenerationDiagnostics, error) {
	runID, err := c.resolveRunID(req.RunID, req.Latest)
	if err != nil {
		return "", nil, err
	}
	diagnostics, ok, err := c.store.GetGenerationDiagnostics(ctx, runID)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, fmt.Errorf("no diagnostics for run %s", runID)
	}
	if req.Limit > 0 && len(diagnostics) > req.Limit {
		diagnostics = diagnostics[len(diagnostics)-req.Limit:]
	}
	return runID, diagnostics, nil
}

func (c *Client) Best(ctx context.Context, req BestRequest) (model.Solution, error) {
	runID, err := c.resolveRunID(req.RunID, req.Latest)
	if err != nil {
		return model.Solution{}, err
	}
	solution, ok, err := c.store.GetBestSolution(ctx, runID)
	if err != nil {
		return model.Solution{}, err
	}
	if !ok {
		return model.Solution{}, fmt.Errorf("no solution for run %s", runID)
	}
	return solution, nil
}

func (c *Client) Objectives(_ context.Context) ([]ObjectiveItem, error) {
	items := make([]ObjectiveItem, 0, len(builtinObjectives))
	for _, name := range c.registry.Names() {
		obj, err := c.registry.Resolve(name)
		if err != nil {
			return nil, err
		}
		items = append(items, ObjectiveItem{Name: obj.Name(), Description: obj.Description()})
	}
	return items, nil
}

func (c *Client) ObjectiveSummaries(ctx context.Context) ([]ObjectiveSummaryItem, error) {
	items := make([]ObjectiveSummaryItem, 0, len(builtinObjectives))
	for _, name := range c.registry.Names() {
		obj, err := c.registry.Resolve(name)
		if err != nil {
			return nil, err
		}
		item := ObjectiveSummaryItem{Name: obj.Name(), Description: obj.Description()}
		summary, ok, err := c.store.GetObjectiveSummary(ctx, name)
		if err != nil {
			return nil, err
		}
		if ok {
			item.BestFitness = summary.BestFitness
			item.BestRunID = summary.BestRunID
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Client) Export(_ context.Context, req ExportRequest) (ExportSummary, error) {
	runID, err := c.resolveRunID(req.RunID, req.Latest)
	if err != nil {
		return ExportSummary{}, err
	}
	outDir := req.OutDir
	if outDir == "" {
		outDir = c.exportsDir
	}
	dst, err := stats.ExportRunArtifacts(c.runsDir, runID, outDir)
	if err != nil {
		return ExportSummary{}, err
	}
	return ExportSummary{RunID: runID, Directory: dst}, nil
}
