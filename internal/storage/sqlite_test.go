//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"evomax/internal/model"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "evomax.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	solution := model.Solution{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		RunID:           "run-1",
		X:               []float64{0.5, 0.5},
		Fitness:         -2e-7,
		Generation:      88,
		StopReason:      "converged",
	}
	if err := store.SaveBestSolution(ctx, solution); err != nil {
		t.Fatalf("save solution: %v", err)
	}
	loadedSolution, ok, err := store.GetBestSolution(ctx, "run-1")
	if err != nil {
		t.Fatalf("get solution: %v", err)
	}
	if !ok || loadedSolution.Generation != 88 {
		t.Fatalf("unexpected solution loaded: ok=%t %+v", ok, loadedSolution)
	}

	summary := model.ObjectiveSummary{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		Name:            "paraboloid",
		Description:     "negated 2-d paraboloid centered at 0.5",
		BestFitness:     -2e-7,
		BestRunID:       "run-1",
	}
	if err := store.SaveObjectiveSummary(ctx, summary); err != nil {
		t.Fatalf("save summary: %v", err)
	}
	loadedSummary, ok, err := store.GetObjectiveSummary(ctx, "paraboloid")
	if err != nil {
		t.Fatalf("get summary: %v", err)
	}
	if !ok || loadedSummary.BestRunID != "run-1" {
		t.Fatalf("unexpected summary loaded: ok=%t %+v", ok, loadedSummary)
	}

	history := []float64{-0.5, -0.2, -0.01}
	if err := store.SaveFitnessHistory(ctx, "run-1", history); err != nil {
		t.Fatalf("save history: %v", err)
	}
	loadedHistory, ok, err := store.GetFitnessHistory(ctx, "run-1")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if !ok || len(loadedHistory) != 3 || loadedHistory[2] != history[2] {
		t.Fatalf("unexpected history loaded: ok=%t %+v", ok, loadedHistory)
	}

	diagnostics := []model.GenerationDiagnostics{
		{Generation: 1, NewMembers: 90, MutationRate: 0.005, BestFitness: -0.2},
	}
	if err := store.SaveGenerationDiagnostics(ctx, "run-1", diagnostics); err != nil {
		t.Fatalf("save diagnostics: %v", err)
	}
	loadedDiagnostics, ok, err := store.GetGenerationDiagnostics(ctx, "run-1")
	if err != nil {
		t.Fatalf("get diagnostics: %v", err)
	}
	if !ok || len(loadedDiagnostics) != 1 || loadedDiagnostics[0].NewMembers != 90 {
		t.Fatalf("unexpected diagnostics loaded: ok=%t %+v", ok, loadedDiagnostics)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "evomax.db")

	first := NewSQLiteStore(dbPath)
	if err := first.Init(ctx); err != nil {
		t.Fatalf("first init: %v", err)
	}
	solution := model.Solution{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		RunID:           "persisted-run",
		X:               []float64{0.1},
		Fitness:         -0.16,
	}
	if err := first.SaveBestSolution(ctx, solution); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}

	second := NewSQLiteStore(dbPath)
	if err := second.Init(ctx); err != nil {
		t.Fatalf("second init: %v", err)
	}
	t.Cleanup(func() {
		_ = second.Close()
	})

	loaded, ok, err := second.GetBestSolution(ctx, solution.RunID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if !ok || loaded.RunID != solution.RunID {
		t.Fatalf("expected persisted solution, got ok=%t value=%+v", ok, loaded)
	}
}
