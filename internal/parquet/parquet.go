// Package parquet provides data structures and functions for exporting
// analysis run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/skoscan/skoscan/schema"
)

// AnalysisRun represents a single endpoint analysis run with metadata.
// This struct maps to the skoscan_analysis_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// EndpointID references the analyzed endpoint
	EndpointID int64 `parquet:"endpoint_id,snappy"`

	// StartedAt is when the analysis began
	StartedAt time.Time `parquet:"started_at,snappy"`

	// FinishedAt is when the analysis completed (nullable)
	FinishedAt *time.Time `parquet:"finished_at,optional,snappy"`

	// DurationMs is the duration of the analysis run in milliseconds (nullable)
	DurationMs *int64 `parquet:"duration_ms,optional,snappy"`

	// Result contains the JSON-encoded analysis result (nullable)
	Result *string `parquet:"result,optional,snappy"`

	// LogLines is the number of step log entries recorded for the run
	LogLines int32 `parquet:"log_lines,snappy"`
}

// WriteRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteRunsParquet(data []AnalysisRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAnalysisRuns converts schema.AnalysisRun rows to AnalysisRun for
// Parquet export. Stored results are flattened to their JSON form.
func ConvertAnalysisRuns(runs []schema.AnalysisRun) ([]AnalysisRun, error) {
	result := make([]AnalysisRun, len(runs))
	for i, run := range runs {
		var resultJSON *string
		if run.Result != nil {
			encoded, err := json.Marshal(run.Result)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal result for run %d: %w", run.RunID, err)
			}
			s := string(encoded)
			resultJSON = &s
		}
		result[i] = AnalysisRun{
			RunID:      run.RunID,
			EndpointID: run.EndpointID,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
			DurationMs: run.DurationMs,
			Result:     resultJSON,
			LogLines:   int32(len(run.Log)),
		}
	}
	return result, nil
}
