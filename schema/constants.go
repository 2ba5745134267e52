package schema

// Custom string types for type safety.
type (
	// LogStatus represents the status of an analysis log entry.
	LogStatus string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the registry.
	DatabaseBackend string

	// Severity represents the display emphasis for a derived capability value.
	Severity string

	// QueryMethod represents how the graph-support probe counted graphs.
	QueryMethod string

	// LabelKind represents the classification of a concept label.
	LabelKind string
)

// All log statuses supported.
const (
	PendingStatus LogStatus = "pending" // default
	SuccessStatus LogStatus = "success"
	ErrorStatus   LogStatus = "error"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All registry backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All severities supported, a three-level ordinal for display emphasis.
const (
	SecondarySeverity Severity = "secondary"
	WarnSeverity      Severity = "warn"
	SuccessSeverity   Severity = "success"
)

// All graph-count query methods supported.
const (
	CountMethod  QueryMethod = "count"  // exact COUNT(DISTINCT ?g)
	SampleMethod QueryMethod = "sample" // LIMIT-bounded enumeration, lower bound
)

// All label kinds supported.
const (
	PrefLabel   LabelKind = "pref"
	AltLabel    LabelKind = "alt"
	HiddenLabel LabelKind = "hidden"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid registry backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
