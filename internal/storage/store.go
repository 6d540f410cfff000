package storage

import (
	"context"

	"evomax/internal/model"
)

// Store defines persistence operations for optimization run records.
type Store interface {
	Init(ctx context.Context) error
	SaveBestSolution(ctx context.Context, solution model.Solution) error
	GetBestSolution(ctx context.Context, runID string) (model.Solution, bool, error)
	SaveObjectiveSummary(ctx context.Context, summary model.ObjectiveSummary) error
	GetObjectiveSummary(ctx context.Context, name string) (model.ObjectiveSummary, bool, error)
	SaveFitnessHistory(ctx context.Context, runID string, history []float64) error
	GetFitnessHistory(ctx context.Context, runID string) ([]float64, bool, error)
	SaveGenerationDiagnostics(ctx context.Context, runID string, diagnostics []model.GenerationDiagnostics) error
	GetGenerationDiagnostics(ctx context.Context, runID string) ([]model.GenerationDiagnostics, bool, error)
}
