package outwriter

import (
	"fmt"
	"os"

	"github.com/skoscan/skoscan/internal/contract"
	"github.com/skoscan/skoscan/schema"
)

// WriteAnalysisLog prints the step log of an analysis run to stdout, one
// glyph-prefixed line per probe stage. The duration line is printed only
// when the run completed; failed runs carry no timing.
func WriteAnalysisLog(log []schema.AnalysisLogEntry, durationMs int64, cfg *contract.Config) {
	for _, entry := range log {
		glyph := contract.GetLogStatusGlyph(entry.Status, cfg.UseColors)
		fmt.Fprintf(os.Stdout, "%s %s\n", glyph, entry.Message)
	}
	if durationMs > 0 {
		fmt.Fprintf(os.Stdout, "Analysis completed in %d ms\n", durationMs)
	}
}
