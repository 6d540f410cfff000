package storage

import (
	"context"
	"testing"

	"evomax/internal/model"
)

func TestMemoryStoreBestSolutionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.Solution{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		RunID:           "run-1",
		X:               []float64{0.5, 0.5},
		Fitness:         -1e-6,
		Generation:      42,
		StopReason:      "converged",
	}
	if err := store.SaveBestSolution(ctx, input); err != nil {
		t.Fatalf("save solution: %v", err)
	}

	output, ok, err := store.GetBestSolution(ctx, "run-1")
	if err != nil {
		t.Fatalf("get solution: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted solution")
	}
	if output.RunID != "run-1" || output.Generation != 42 || len(output.X) != 2 {
		t.Fatalf("unexpected solution: %+v", output)
	}

	output.X[0] = 99
	again, _, _ := store.GetBestSolution(ctx, "run-1")
	if again.X[0] == 99 {
		t.Fatal("stored solution shares its slice with the caller")
	}

	if _, ok, _ := store.GetBestSolution(ctx, "run-missing"); ok {
		t.Fatal("unexpected solution for unknown run")
	}
}

func TestMemoryStoreObjectiveSummaryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.ObjectiveSummary{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		Name:            "paraboloid",
		Description:     "negated 2-d paraboloid centered at 0.5",
		BestFitness:     -1e-6,
		BestRunID:       "run-1",
	}
	if err := store.SaveObjectiveSummary(ctx, input); err != nil {
		t.Fatalf("save summary: %v", err)
	}

	output, ok, err := store.GetObjectiveSummary(ctx, "paraboloid")
	if err != nil {
		t.Fatalf("get summary: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted summary")
	}
	if output.BestRunID != "run-1" || output.BestFitness != input.BestFitness {
		t.Fatalf("unexpected summary: %+v", output)
	}
}

func TestMemoryStoreFitnessHistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := []float64{-0.3, -0.1, -0.01}
	if err := store.SaveFitnessHistory(ctx, "run-1", input); err != nil {
		t.Fatalf("save history: %v", err)
	}
	output, ok, err := store.GetFitnessHistory(ctx, "run-1")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted fitness history")
	}
	if len(output) != len(input) || output[2] != input[2] {
		t.Fatalf("unexpected history: %+v", output)
	}

	output[0] = 99
	again, _, _ := store.GetFitnessHistory(ctx, "run-1")
	if again[0] == 99 {
		t.Fatal("stored history shares its slice with the caller")
	}
}

func TestMemoryStoreGenerationDiagnosticsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := []model.GenerationDiagnostics{
		{Generation: 1, NewMembers: 40, MutationRate: 0.005, BestFitness: -0.2, MedianFitness: -0.5},
		{Generation: 2, NewMembers: 35, MutationRate: 0.0075, BestFitness: -0.1, MedianFitness: -0.3},
	}
	if err := store.SaveGenerationDiagnostics(ctx, "run-1", input); err != nil {
		t.Fatalf("save diagnostics: %v", err)
	}
	output, ok, err := store.GetGenerationDiagnostics(ctx, "run-1")
	if err != nil {
		t.Fatalf("get diagnostics: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted diagnostics")
	}
	if len(output) != len(input) || output[1].NewMembers != input[1].NewMembers {
		t.Fatalf("unexpected diagnostics: %+v", output)
	}
}
