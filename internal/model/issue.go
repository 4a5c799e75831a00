package model

// Severity ranks how serious a compliance finding is.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// ValidSeverity reports whether s is one of the three enumerated levels.
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Issue is a single compliance finding produced by the red-flag detector.
// Issues are append-only: produced once, never mutated, and reported in the
// order the strategies emitted them.
type Issue struct {
	Document   string   `json:"document"`
	Section    string   `json:"section"`
	Issue      string   `json:"issue"`
	Severity   Severity `json:"severity"`
	Suggestion string   `json:"suggestion"`

	// Strategy records which detection strategy produced the finding.
	// It is session-local provenance and not part of the wire shape.
	Strategy string `json:"-"`
}
