package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/internal/parquet"
	"github.com/skoscan/skoscan/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// defaultRunsParquetFile is the output path used for Parquet export when no
// explicit file is configured. Parquet is a binary format, so it never goes
// to stdout.
const defaultRunsParquetFile = "skoscan_runs.parquet"

// WriteRuns outputs the analysis run history, dispatching based on the
// output format configured.
func WriteRuns(runs []schema.AnalysisRun, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsCSV(w, runs)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeRunsParquet(runs, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsTable(w, runs)
		}, "Wrote table")
	}
}

// writeRunsParquet exports the run history to a Parquet file.
func writeRunsParquet(runs []schema.AnalysisRun, cfg *contract.Config) error {
	outputPath := cfg.OutputFile
	if outputPath == "" {
		outputPath = defaultRunsParquetFile
	}
	data, err := parquet.ConvertAnalysisRuns(runs)
	if err != nil {
		return err
	}
	if err := parquet.WriteRunsParquet(data, outputPath); err != nil {
		return err
	}
	fmt.Printf("💾 Wrote %d runs to %s\n", len(runs), outputPath)
	return nil
}

// writeRunsTable generates and writes the human-readable run history.
func writeRunsTable(w io.Writer, runs []schema.AnalysisRun) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Run", "Endpoint", "Started", "Duration (ms)", "Graphs", "Steps"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, run := range runs {
		duration := "-"
		if run.DurationMs != nil {
			duration = strconv.FormatInt(*run.DurationMs, 10)
		}
		graphs := schema.UnknownValue
		if run.Result != nil && run.Result.GraphCount != nil {
			graphs = schema.FormatCount(*run.Result.GraphCount)
			if !run.Result.GraphCountExact {
				graphs += "+"
			}
		}
		data = append(data, []string{
			strconv.FormatInt(run.RunID, 10),
			strconv.FormatInt(run.EndpointID, 10),
			run.StartedAt.Format(contract.DateTimeFormat),
			duration,
			graphs,
			strconv.Itoa(len(run.Log)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d runs\n", len(runs)); err != nil {
		return err
	}
	return nil
}

// writeRunsCSV writes the run history in CSV format.
func writeRunsCSV(w io.Writer, runs []schema.AnalysisRun) error {
	header := []string{"run_id", "endpoint_id", "started_at", "finished_at", "duration_ms", "graph_count", "vocab_graph_count", "log_lines"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, run := range runs {
			finished := ""
			if run.FinishedAt != nil {
				finished = run.FinishedAt.Format(contract.DateTimeFormat)
			}
			duration := ""
			if run.DurationMs != nil {
				duration = strconv.FormatInt(*run.DurationMs, 10)
			}
			graphCount := ""
			vocabCount := ""
			if run.Result != nil {
				if run.Result.GraphCount != nil {
					graphCount = strconv.Itoa(*run.Result.GraphCount)
				}
				if run.Result.VocabGraphCount != nil {
					vocabCount = strconv.Itoa(*run.Result.VocabGraphCount)
				}
			}
			rec := []string{
				strconv.FormatInt(run.RunID, 10),
				strconv.FormatInt(run.EndpointID, 10),
				run.StartedAt.Format(contract.DateTimeFormat),
				finished,
				duration,
				graphCount,
				vocabCount,
				strconv.Itoa(len(run.Log)),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
