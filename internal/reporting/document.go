// Package reporting renders audit results for humans and machines.
package reporting

import (
	"time"

	"github.com/uilint/core/pkg/audit"
	"github.com/uilint/core/pkg/domain"
)

// Version is the report document schema version.
const Version = "1"

// Document is the artifact produced for one audit run.
type Document struct {
	Version     string                 `json:"version"`
	GeneratedAt time.Time              `json:"generatedAt"`
	Root        string                 `json:"root"`
	Reports     []audit.ReportFindings `json:"reports"`
	Warnings    []string               `json:"warnings,omitempty"`
	Summary     Summary                `json:"summary"`
}

// Summary condenses run statistics for the top of a report.
type Summary struct {
	ReportsScanned   int                     `json:"reportsScanned"`
	ReportsEvaluated int                     `json:"reportsEvaluated"`
	ReportsFailed    int                     `json:"reportsFailed"`
	Findings         int                     `json:"findings"`
	BySeverity       map[domain.Severity]int `json:"bySeverity"`
	Suppressed       int                     `json:"suppressed,omitempty"`
	DurationMS       int64                   `json:"durationMs"`
}

// NewDocument assembles the report artifact for one audit run.
func NewDocument(root string, result *audit.Result) *Document {
	doc := &Document{
		Version:     Version,
		GeneratedAt: time.Now().UTC(),
		Root:        root,
		Reports:     result.Reports,
		Summary: Summary{
			ReportsScanned:   result.Stats.ReportsScanned,
			ReportsEvaluated: result.Stats.ReportsEvaluated,
			ReportsFailed:    result.Stats.ReportsFailed,
			Findings:         len(result.Findings()),
			BySeverity:       result.Stats.FindingsBySeverity,
			Suppressed:       result.Stats.FindingsSuppressed,
			DurationMS:       result.Stats.Duration.Milliseconds(),
		},
	}
	for _, e := range result.Errors {
		doc.Warnings = append(doc.Warnings, e.Error())
	}
	return doc
}
