package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// summaryRow is one derived capability line of the endpoint summary.
type summaryRow struct {
	Field    string          `json:"field"`
	Value    string          `json:"value"`
	Severity schema.Severity `json:"severity"`
}

// WriteSummary outputs the derived capability summary for one endpoint,
// dispatching based on the output format configured.
func WriteSummary(ep *schema.EndpointDescriptor, cfg *contract.Config) error {
	rows := buildSummaryRows(ep)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryJSON(w, ep, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, rows)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, ep, rows, cfg)
		}, "Wrote table")
	}
}

// buildSummaryRows derives the displayable capability rows from the stored
// analysis. Endpoints without an analysis produce Unknown rows throughout.
func buildSummaryRows(ep *schema.EndpointDescriptor) []summaryRow {
	graphSeverity := schema.SecondarySeverity
	if ep != nil && ep.Analysis != nil && ep.Analysis.SupportsNamedGraphs != nil {
		graphSeverity = schema.SuccessSeverity
	}

	rows := []summaryRow{
		{Field: "Graph support", Value: schema.GraphSupportStatus(ep), Severity: graphSeverity},
		{Field: "Graph count", Value: summaryGraphCount(ep), Severity: graphSeverity},
		{Field: "Vocabulary graphs", Value: schema.VocabGraphStatus(ep), Severity: schema.VocabGraphSeverity(ep)},
		{Field: "Duplicate triples", Value: summaryDuplicates(ep), Severity: schema.SecondarySeverity},
		{Field: "Languages", Value: summaryLanguages(ep), Severity: schema.SecondarySeverity},
	}
	return rows
}

// summaryGraphCount renders the stored graph count, marking approximate
// counts with a trailing plus.
func summaryGraphCount(ep *schema.EndpointDescriptor) string {
	if ep == nil || ep.Analysis == nil || ep.Analysis.GraphCount == nil {
		return schema.UnknownValue
	}
	value := schema.FormatCount(*ep.Analysis.GraphCount)
	if !ep.Analysis.GraphCountExact {
		value += "+"
	}
	return value
}

// summaryDuplicates renders the duplicate-triples capability.
func summaryDuplicates(ep *schema.EndpointDescriptor) string {
	if ep == nil || ep.Analysis == nil || ep.Analysis.SupportsNamedGraphs == nil {
		return schema.UnknownValue
	}
	if ep.Analysis.HasDuplicateTriples {
		return schema.YesValue
	}
	return schema.NoValue
}

// summaryLanguages renders the label-language distribution as a short list.
func summaryLanguages(ep *schema.EndpointDescriptor) string {
	if ep == nil || ep.Analysis == nil || len(ep.Analysis.Languages) == 0 {
		return schema.UnknownValue
	}
	parts := make([]string, 0, len(ep.Analysis.Languages))
	for _, lc := range ep.Analysis.Languages {
		lang := lc.Lang
		if lang == "" {
			lang = "(none)"
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", lang, schema.FormatCount(lc.Count)))
	}
	return strings.Join(parts, ", ")
}

// writeSummaryTable generates and writes the human-readable summary.
func writeSummaryTable(w io.Writer, ep *schema.EndpointDescriptor, rows []summaryRow, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Endpoint: %s\n", contract.TruncateURI(ep.URL, getMaxTableURIWidth(cfg))); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Capability", "Value", "Status"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, row := range rows {
		label := contract.GetPlainSeverityLabel(row.Severity)
		if cfg.UseColors {
			label = contract.GetColorSeverityLabel(row.Severity)
		}
		data = append(data, []string{row.Field, row.Value, label})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if desc := schema.VocabGraphDescription(ep); desc != "" {
		if _, err := fmt.Fprintln(w, desc); err != nil {
			return err
		}
	}
	return nil
}

// writeSummaryCSV writes the capability rows in CSV format.
func writeSummaryCSV(w io.Writer, rows []summaryRow) error {
	header := []string{"capability", "value", "status"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, row := range rows {
			rec := []string{row.Field, row.Value, contract.GetPlainSeverityLabel(row.Severity)}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSummaryJSON writes the endpoint summary in JSON format.
func writeSummaryJSON(w io.Writer, ep *schema.EndpointDescriptor, rows []summaryRow) error {
	type JSONSummary struct {
		Endpoint     *schema.EndpointDescriptor `json:"endpoint"`
		Capabilities []summaryRow               `json:"capabilities"`
		Description  string                     `json:"description,omitempty"`
	}
	return writeJSON(w, JSONSummary{
		Endpoint:     ep,
		Capabilities: rows,
		Description:  schema.VocabGraphDescription(ep),
	})
}
