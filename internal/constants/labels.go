package constants

const (
	// Date layouts shared across the CLI, storage and engines.
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05Z07:00" // RFC3339

	// Placeholder labels for dangling references. Loose foreign keys are
	// expected; display falls back to these instead of failing.
	UnknownProject  = "Unknown Project"
	UnknownSub      = "Unknown Sub"
	UnknownEstimate = "Unknown Estimate"
	Unassigned      = "Unassigned"

	// AttentionLimit caps the dashboard attention list.
	AttentionLimit = 5
)
