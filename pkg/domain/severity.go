// Package domain defines the core types of the rule catalog and
// violation model: severities, categories, the fact kind vocabulary,
// rules, call-site facts, and findings.
package domain

// Severity indicates how serious a violation is. It drives finding
// order in reports and blocking decisions in CI.
type Severity string

const (
	// SeverityHigh marks violations that undermine what a test verifies.
	SeverityHigh Severity = "high"

	// SeverityMedium marks violations that make tests brittle or misleading.
	SeverityMedium Severity = "medium"

	// SeverityLow marks style-level violations with a known better alternative.
	SeverityLow Severity = "low"
)

// Severities returns all valid severities from most to least serious.
func Severities() []Severity {
	return []Severity{SeverityHigh, SeverityMedium, SeverityLow}
}

// Rank returns the numeric weight of s. Higher means more serious;
// values outside the enumeration rank zero.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether s is one of the enumerated severities.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// AtLeast reports whether s is as serious as min or more so.
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() >= min.Rank()
}
