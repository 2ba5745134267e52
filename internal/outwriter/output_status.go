package outwriter

import (
	"fmt"
	"io"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"
)

// WriteRegistryStatus outputs the registry status, dispatching based on the
// output format configured. CSV has no sensible shape for the nested table
// sizes, so anything but JSON falls back to the plain text report.
func WriteRegistryStatus(status *schema.RegistryStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeRegistryStatusText(w, status)
	}, "Wrote status")
}

// writeRegistryStatusText writes the plain text status report.
func writeRegistryStatusText(w io.Writer, status *schema.RegistryStatus) error {
	connected := "no"
	if status.Connected {
		connected = "yes"
	}
	if _, err := fmt.Fprintf(w, "Backend: %s\nConnected: %s\n", status.Backend, connected); err != nil {
		return err
	}
	if !status.Connected {
		return nil
	}

	if _, err := fmt.Fprintf(w, "Endpoints: %d\nRuns: %d\n", status.TotalEndpoints, status.TotalRuns); err != nil {
		return err
	}
	if status.TotalRuns > 0 {
		if _, err := fmt.Fprintf(w, "Last run: #%d at %s\nOldest run: %s\n",
			status.LastRunID,
			status.LastRunTime.Format(contract.DateTimeFormat),
			status.OldestRunTime.Format(contract.DateTimeFormat)); err != nil {
			return err
		}
	}
	for table, size := range status.TableSizes {
		if _, err := fmt.Fprintf(w, "Table %s: %d rows\n", table, size); err != nil {
			return err
		}
	}
	return nil
}
