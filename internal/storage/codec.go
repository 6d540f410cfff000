package storage

import (
	"encoding/json"
	"errors"

	"evomax/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeSolution(s model.Solution) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeSolution(data []byte) (model.Solution, error) {
	var solution model.Solution
	if err := json.Unmarshal(data, &solution); err != nil {
		return model.Solution{}, err
	}
	if err := checkVersion(solution.VersionedRecord); err != nil {
		return model.Solution{}, err
	}
	return solution, nil
}

func EncodeObjectiveSummary(s model.ObjectiveSummary) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeObjectiveSummary(data []byte) (model.ObjectiveSummary, error) {
	var summary model.ObjectiveSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return model.ObjectiveSummary{}, err
	}
	if err := checkVersion(summary.VersionedRecord); err != nil {
		return model.ObjectiveSummary{}, err
	}
	return summary, nil
}

func EncodeFitnessHistory(history []float64) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeFitnessHistory(data []byte) ([]float64, error) {
	var history []float64
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func EncodeGenerationDiagnostics(diagnostics []model.GenerationDiagnostics) ([]byte, error) {
	return json.Marshal(diagnostics)
}

func DecodeGenerationDiagnostics(data []byte) ([]model.GenerationDiagnostics, error) {
	var diagnostics []model.GenerationDiagnostics
	if err := json.Unmarshal(data, &diagnostics); err != nil {
		return nil, err
	}
	return diagnostics, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
