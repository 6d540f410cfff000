package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Solution is the best point found by a run, in the caller's physical
// coordinates.
type Solution struct {
	VersionedRecord
	RunID      string    `json:"run_id"`
	X          []float64 `json:"x"`
	Fitness    float64   `json:"fitness"`
	Generation int       `json:"generation"`
	StopReason string    `json:"stop_reason"`
}

type GenerationDiagnostics struct {
	Generation    int     `json:"generation"`
	NewMembers    int     `json:"new_members"`
	MutationRate  float64 `json:"mutation_rate"`
	BestFitness   float64 `json:"best_fitness"`
	SecondFitness float64 `json:"second_fitness"`
	MedianFitness float64 `json:"median_fitness"`
	MeanFitness   float64 `json:"mean_fitness"`
	StdDevFitness float64 `json:"stddev_fitness"`
}

// ObjectiveSummary tracks the best fitness ever recorded for a named
// objective across runs.
type ObjectiveSummary struct {
	VersionedRecord
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BestFitness float64 `json:"best_fitness"`
	BestRunID   string  `json:"best_run_id"`
}
