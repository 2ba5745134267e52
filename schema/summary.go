package schema

import "strconv"

// Display statuses for derived capability values.
const (
	UnknownValue = "Unknown"
	YesValue     = "Yes"
	NoValue      = "No"
	NoneValue    = "None"
)

// GraphSupportStatus classifies named-graph support of a stored analysis.
// Endpoints without an analysis, or whose graph-support probe never ran,
// report Unknown.
func GraphSupportStatus(ep *EndpointDescriptor) string {
	if ep == nil || ep.Analysis == nil || ep.Analysis.SupportsNamedGraphs == nil {
		return UnknownValue
	}
	if *ep.Analysis.SupportsNamedGraphs {
		return YesValue
	}
	return NoValue
}

// VocabGraphStatus classifies the vocabulary-graph count of a stored analysis
// into a display string: Unknown, None, or a grouped count with noun.
func VocabGraphStatus(ep *EndpointDescriptor) string {
	count, ok := vocabGraphCount(ep)
	if !ok {
		return UnknownValue
	}
	if count == 0 {
		return NoneValue
	}
	return FormatCount(count) + " " + graphNoun(count)
}

// VocabGraphSeverity maps the vocabulary-graph count to a display emphasis
// level: secondary when unknown, warn when zero, success otherwise.
func VocabGraphSeverity(ep *EndpointDescriptor) Severity {
	count, ok := vocabGraphCount(ep)
	switch {
	case !ok:
		return SecondarySeverity
	case count == 0:
		return WarnSeverity
	default:
		return SuccessSeverity
	}
}

// VocabGraphDescription returns a sentence describing vocabulary-graph
// presence, or the empty string when the count is unknown.
//
// The singular form intentionally reads "1 graph contain vocabulary data";
// stored analyses and their consumers assert this exact string, so the
// grammar is kept as-is.
func VocabGraphDescription(ep *EndpointDescriptor) string {
	count, ok := vocabGraphCount(ep)
	if !ok {
		return ""
	}
	if count == 0 {
		return "No graphs contain vocabulary data"
	}
	return FormatCount(count) + " " + graphNoun(count) + " contain vocabulary data"
}

// FormatCount renders n with a period as the thousands separator, e.g.
// 1234 -> "1.234".
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) > 3 {
		var out []byte
		lead := len(s) % 3
		if lead > 0 {
			out = append(out, s[:lead]...)
		}
		for i := lead; i < len(s); i += 3 {
			if len(out) > 0 {
				out = append(out, '.')
			}
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}

// graphNoun returns the singular or plural noun form for a graph count.
func graphNoun(count int) string {
	if count == 1 {
		return "graph"
	}
	return "graphs"
}

// vocabGraphCount extracts the vocabulary-graph count from a stored
// analysis, reporting false when no analysis or count is available.
func vocabGraphCount(ep *EndpointDescriptor) (int, bool) {
	if ep == nil || ep.Analysis == nil || ep.Analysis.VocabGraphCount == nil {
		return 0, false
	}
	return *ep.Analysis.VocabGraphCount, true
}
