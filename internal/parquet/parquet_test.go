package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/skoscan/skoscan/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRuns() []AnalysisRun {
	now := time.Now()
	started1 := now.Add(-2 * time.Hour)
	finished1 := started1.Add(90 * time.Second)
	durationMs1 := finished1.Sub(started1).Milliseconds()
	result1 := `{"supports_named_graphs":true,"graph_count":12}`

	started2 := now.Add(-10 * time.Minute)
	// Second run failed mid-flight; nullable fields stay nil.

	return []AnalysisRun{
		{
			RunID:      1,
			EndpointID: 7,
			StartedAt:  started1,
			FinishedAt: &finished1,
			DurationMs: &durationMs1,
			Result:     &result1,
			LogLines:   4,
		},
		{
			RunID:      2,
			EndpointID: 7,
			StartedAt:  started2,
			FinishedAt: nil,
			DurationMs: nil,
			Result:     nil,
			LogLines:   2,
		},
	}
}

func TestAnalysisRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(AnalysisRun))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"run_id",
		"endpoint_id",
		"started_at",
		"finished_at",
		"duration_ms",
		"result",
		"log_lines",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "analysis_runs.parquet")

	data := sampleRuns()
	err := WriteRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[AnalysisRun](file)
	defer reader.Close()

	readData := make([]AnalysisRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].RunID, readData[i].RunID)
		assert.Equal(t, data[i].EndpointID, readData[i].EndpointID)
		assert.Equal(t, data[i].LogLines, readData[i].LogLines)
		assert.WithinDuration(t, data[i].StartedAt, readData[i].StartedAt, time.Nanosecond)

		// Check nullable fields
		if data[i].FinishedAt == nil {
			assert.Nil(t, readData[i].FinishedAt)
		} else {
			require.NotNil(t, readData[i].FinishedAt)
			assert.WithinDuration(t, *data[i].FinishedAt, *readData[i].FinishedAt, time.Nanosecond)
		}
		if data[i].DurationMs == nil {
			assert.Nil(t, readData[i].DurationMs)
		} else {
			require.NotNil(t, readData[i].DurationMs)
			assert.Equal(t, *data[i].DurationMs, *readData[i].DurationMs)
		}
		if data[i].Result == nil {
			assert.Nil(t, readData[i].Result)
		} else {
			require.NotNil(t, readData[i].Result)
			assert.Equal(t, *data[i].Result, *readData[i].Result)
		}
	}
}

func TestWriteRunsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_runs.parquet")

	err := WriteRunsParquet([]AnalysisRun{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteRunsParquet_InvalidPath(t *testing.T) {
	err := WriteRunsParquet(sampleRuns(), "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertAnalysisRuns(t *testing.T) {
	started := time.Now().Add(-time.Minute)
	finished := started.Add(2 * time.Second)
	durationMs := finished.Sub(started).Milliseconds()
	supports := true

	runs := []schema.AnalysisRun{
		{
			RunID:      3,
			EndpointID: 9,
			StartedAt:  started,
			FinishedAt: &finished,
			DurationMs: &durationMs,
			Result:     &schema.AnalysisResult{SupportsNamedGraphs: &supports},
			Log: []schema.AnalysisLogEntry{
				{Message: "Checking graph support", Status: schema.SuccessStatus},
				{Message: "Counting languages", Status: schema.SuccessStatus},
			},
		},
		{
			RunID:      4,
			EndpointID: 9,
			StartedAt:  started,
		},
	}

	converted, err := ConvertAnalysisRuns(runs)
	require.NoError(t, err)
	require.Len(t, converted, 2)

	assert.Equal(t, int64(3), converted[0].RunID)
	assert.Equal(t, int32(2), converted[0].LogLines)
	require.NotNil(t, converted[0].Result)
	assert.Contains(t, *converted[0].Result, `"supports_named_graphs":true`)

	assert.Nil(t, converted[1].Result, "runs without a result stay nil")
	assert.Zero(t, converted[1].LogLines)
}
