package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteEndpoints outputs the registered endpoints, dispatching based on the
// output format configured.
func WriteEndpoints(eps []schema.EndpointDescriptor, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, eps)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEndpointsCSV(w, eps)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEndpointsTable(w, eps, cfg)
		}, "Wrote table")
	}
}

// writeEndpointsTable generates and writes the human-readable endpoint list.
func writeEndpointsTable(w io.Writer, eps []schema.EndpointDescriptor, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Name", "URL", "Graphs", "Vocab graphs", "Accesses"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxURIWidth := getMaxTableURIWidth(cfg)
	var data [][]string
	for i := range eps {
		ep := &eps[i]
		data = append(data, []string{
			strconv.FormatInt(ep.ID, 10),
			ep.Name,
			contract.TruncateURI(ep.URL, maxURIWidth),
			schema.GraphSupportStatus(ep),
			schema.VocabGraphStatus(ep),
			strconv.Itoa(ep.AccessCount),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d endpoints\n", len(eps)); err != nil {
		return err
	}
	return nil
}

// writeEndpointsCSV writes the endpoint list in CSV format.
func writeEndpointsCSV(w io.Writer, eps []schema.EndpointDescriptor) error {
	header := []string{"id", "name", "url", "created_at", "access_count", "graph_support", "vocab_graphs"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i := range eps {
			ep := &eps[i]
			rec := []string{
				strconv.FormatInt(ep.ID, 10),
				ep.Name,
				ep.URL,
				ep.CreatedAt.Format(contract.DateTimeFormat),
				strconv.Itoa(ep.AccessCount),
				schema.GraphSupportStatus(ep),
				schema.VocabGraphStatus(ep),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
