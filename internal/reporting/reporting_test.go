package reporting

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/uilint/core/pkg/audit"
	"github.com/uilint/core/pkg/domain"
)

func sampleResult() *audit.Result {
	return &audit.Result{
		Reports: []audit.ReportFindings{
			{
				Path:     "ui/Login.facts.json",
				TestFile: "src/Login.test.tsx",
				Findings: []domain.Finding{
					{
						RuleID:   "prefer-get-by-role",
						Category: domain.CategoryQueryPriority,
						Severity: domain.SeverityHigh,
						Location: domain.Location{File: "src/Login.test.tsx", StartLine: 42},
						Message:  "Query by role and accessible name instead of reaching into the DOM.",
					},
					{
						RuleID:   "prefer-user-event",
						Category: domain.CategoryInteraction,
						Severity: domain.SeverityMedium,
						Location: domain.Location{File: "src/Login.test.tsx", StartLine: 50},
						Message:  "Simulate input with userEvent.",
					},
				},
			},
			{
				Path:     "ui/Clean.facts.json",
				TestFile: "src/Clean.test.tsx",
				Findings: []domain.Finding{},
			},
		},
		Errors: []audit.AuditError{
			{Err: os.ErrNotExist, Path: "broken.facts.json", Phase: "decode"},
		},
		Stats: audit.AuditStats{
			ReportsScanned:   3,
			ReportsEvaluated: 2,
			ReportsFailed:    1,
			FactsSeen:        5,
			FindingsBySeverity: map[domain.Severity]int{
				domain.SeverityHigh:   1,
				domain.SeverityMedium: 1,
			},
			Duration: 12 * time.Millisecond,
		},
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("/repo", sampleResult())

	if doc.Version != Version {
		t.Errorf("expected document version %q, got %q", Version, doc.Version)
	}
	if doc.Root != "/repo" {
		t.Errorf("expected /repo, got %q", doc.Root)
	}
	if doc.Summary.Findings != 2 {
		t.Errorf("expected 2 findings, got %d", doc.Summary.Findings)
	}
	if doc.Summary.ReportsFailed != 1 {
		t.Errorf("expected 1 failed, got %d", doc.Summary.ReportsFailed)
	}
	if doc.Summary.DurationMS != 12 {
		t.Errorf("expected 12ms, got %d", doc.Summary.DurationMS)
	}
	if len(doc.Warnings) != 1 || !strings.Contains(doc.Warnings[0], "[decode]") {
		t.Errorf("unexpected warnings: %v", doc.Warnings)
	}
	if doc.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
}

func TestWriteJSON(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "reports")

	path, err := WriteJSON(outDir, NewDocument("/repo", sampleResult()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Base(path) != FindingsFile {
		t.Errorf("expected %s, got %q", FindingsFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not valid json: %v", err)
	}
	if decoded.Summary.Findings != 2 {
		t.Errorf("expected 2 findings in artifact, got %d", decoded.Summary.Findings)
	}
	if len(decoded.Reports) != 2 {
		t.Errorf("expected 2 reports in artifact, got %d", len(decoded.Reports))
	}
	if decoded.Reports[0].Findings[0].RuleID != "prefer-get-by-role" {
		t.Errorf("unexpected first finding: %+v", decoded.Reports[0].Findings[0])
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer

	if err := RenderText(&buf, NewDocument("/repo", sampleResult())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"src/Login.test.tsx",
		"HIGH",
		"prefer-get-by-role",
		"src/Login.test.tsx:42",
		"MEDIUM",
		"prefer-user-event",
		"warnings:",
		"[decode] broken.facts.json",
		"2 findings (1 high, 1 medium) across 2 of 3 reports in 12ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\noutput:\n%s", want, out)
		}
	}

	// Clean reports stay out of the listing.
	if strings.Contains(out, "Clean.test.tsx") {
		t.Errorf("clean report should be omitted\noutput:\n%s", out)
	}
}

func TestRenderText_CleanRun(t *testing.T) {
	result := &audit.Result{
		Reports: []audit.ReportFindings{},
		Errors:  []audit.AuditError{},
		Stats: audit.AuditStats{
			FindingsBySeverity: map[domain.Severity]int{},
		},
	}

	var buf bytes.Buffer
	if err := RenderText(&buf, NewDocument("/repo", result)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "0 findings (none)") {
		t.Errorf("expected clean summary, got:\n%s", buf.String())
	}
}
