package storage

import (
	"context"
	"sync"

	"evomax/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	solutions   map[string]model.Solution
	summaries   map[string]model.ObjectiveSummary
	history     map[string][]float64
	diagnostics map[string][]model.GenerationDiagnostics
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.solutions = make(map[string]model.Solution)
	s.summaries = make(map[string]model.ObjectiveSummary)
	s.history = make(map[string][]float64)
	s.diagnostics = make(map[string][]model.GenerationDiagnostics)
	return nil
}

func (s *MemoryStore) SaveBestSolution(_ context.Context, solution model.Solution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	solution.X = append([]float64(nil), solution.X...)
	s.solutions[solution.RunID] = solution
	return nil
}

func (s *MemoryStore) GetBestSolution(_ context.Context, runID string) (model.Solution, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	solution, ok := s.solutions[runID]
	if !ok {
		return model.Solution{}, false, nil
	}
	solution.X = append([]float64(nil), solution.X...)
	return solution, true, nil
}

func (s *MemoryStore) SaveObjectiveSummary(_ context.Context, summary model.ObjectiveSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summaries[summary.Name] = summary
	return nil
}

func (s *MemoryStore) GetObjectiveSummary(_ context.Context, name string) (model.ObjectiveSummary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.summaries[name]
	return summary, ok, nil
}

func (s *MemoryStore) SaveFitnessHistory(_ context.Context, runID string, history []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := append([]float64(nil), history...)
	s.history[runID] = copied
	return nil
}

func (s *MemoryStore) GetFitnessHistory(_ context.Context, runID string) ([]float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.history[runID]
	if !ok {
		return nil, false, nil
	}
	copied := append([]float64(nil), history...)
	return copied, true, nil
}

func (s *MemoryStore) SaveGenerationDiagnostics(_ context.Context, runID string, diagnostics []model.GenerationDiagnostics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]model.GenerationDiagnostics, len(diagnostics))
	copy(copied, diagnostics)
	s.diagnostics[runID] = copied
	return nil
}

func (s *MemoryStore) GetGenerationDiagnostics(_ context.Context, runID string) ([]model.GenerationDiagnostics, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	diagnostics, ok := s.diagnostics[runID]
	if !ok {
		return nil, false, nil
	}
	copied := make([]model.GenerationDiagnostics, len(diagnostics))
	copy(copied, diagnostics)
	return copied, true, nil
}
