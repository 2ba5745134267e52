package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteConceptLabels outputs the extended labels of one concept, dispatching
// based on the output format configured.
func WriteConceptLabels(conceptURI string, labels []schema.ConceptLabel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeConceptLabelsJSON(w, conceptURI, labels)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeConceptLabelsCSV(w, labels)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeConceptLabelsTable(w, conceptURI, labels, cfg)
		}, "Wrote table")
	}
}

// labelKindName maps a label kind to its display name.
func labelKindName(kind schema.LabelKind) string {
	switch kind {
	case schema.AltLabel:
		return "Alternative"
	case schema.HiddenLabel:
		return "Hidden"
	default:
		return "Preferred"
	}
}

// writeConceptLabelsTable generates and writes the human-readable label list.
func writeConceptLabelsTable(w io.Writer, conceptURI string, labels []schema.ConceptLabel, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Concept: %s\n", contract.TruncateURI(conceptURI, getMaxTableURIWidth(cfg))); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Label", "Language", "Kind"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, label := range labels {
		lang := label.Lang
		if lang == "" {
			lang = "-"
		}
		data = append(data, []string{label.Value, lang, labelKindName(label.Kind)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d labels\n", len(labels)); err != nil {
		return err
	}
	return nil
}

// writeConceptLabelsCSV writes the label list in CSV format.
func writeConceptLabelsCSV(w io.Writer, labels []schema.ConceptLabel) error {
	header := []string{"label", "language", "kind"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, label := range labels {
			rec := []string{label.Value, label.Lang, string(label.Kind)}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeConceptLabelsJSON writes the label list in JSON format.
func writeConceptLabelsJSON(w io.Writer, conceptURI string, labels []schema.ConceptLabel) error {
	type JSONConceptLabels struct {
		Concept string                `json:"concept"`
		Labels  []schema.ConceptLabel `json:"labels"`
	}
	return writeJSON(w, JSONConceptLabels{Concept: conceptURI, Labels: labels})
}
