// Package audit runs a rule catalog over the fact reports an extraction
// front end produced for a project tree.
//
// The runner discovers report files under a root, decodes them, hands
// each report's facts to the evaluator, and aggregates findings into a
// deterministic result. Per-report problems are collected, not fatal:
// one malformed report never hides the findings of the others.
package audit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/uilint/core/pkg/catalog"
	"github.com/uilint/core/pkg/domain"
	"github.com/uilint/core/pkg/evaluator"
)

const (
	// DefaultWorkers indicates that the runner should use GOMAXPROCS as the worker count.
	DefaultWorkers = 0
	// DefaultTimeout is the default audit timeout duration.
	DefaultTimeout = 2 * time.Minute
	// MaxWorkers is the maximum number of concurrent workers allowed.
	MaxWorkers = 256
	// DefaultMaxFileSize is the default maximum report size (4MB).
	DefaultMaxFileSize = 4 * 1024 * 1024
)

// DefaultSkipPatterns contains directory names that are skipped by
// default during report discovery.
var DefaultSkipPatterns = []string{
	"node_modules",
	".git",
	"vendor",
	"dist",
	"build",
	".next",
	"coverage",
	".cache",
}

var (
	// ErrAuditCancelled is returned when an audit run is cancelled via context.
	ErrAuditCancelled = errors.New("audit: run cancelled")
	// ErrAuditTimeout is returned when an audit run exceeds the timeout duration.
	ErrAuditTimeout = errors.New("audit: run timeout")
)

// Auditor evaluates fact reports against one rule catalog.
type Auditor struct {
	cat      *catalog.Catalog
	eval     *evaluator.Evaluator
	disabled map[string]bool
	options  *AuditOptions
}

// Result contains the outcome of an audit run.
type Result struct {
	// Reports holds per-report findings, sorted by report path.
	Reports []ReportFindings

	// Errors contains non-fatal errors encountered during the run.
	Errors []AuditError

	// Stats provides run statistics.
	Stats AuditStats
}

// ReportFindings holds the findings of one fact report.
type ReportFindings struct {
	// Path is the report file path relative to the audited root.
	Path string `json:"path"`

	// TestFile is the analyzed test file the report declares.
	TestFile string `json:"testFile"`

	// Frontend names the tool that produced the report, when declared.
	Frontend string `json:"frontend,omitempty"`

	// Findings are the violations, ordered by descending severity with
	// ties in fact order.
	Findings []domain.Finding `json:"findings"`
}

// AuditError represents an error that occurred during a specific phase
// of an audit run.
type AuditError struct {
	// Err is the underlying error.
	Err error

	// Path is the report path where the error occurred (may be empty
	// for non-file errors).
	Path string

	// Phase indicates which phase the error occurred in.
	// Values: "discovery", "decode", "evaluate"
	Phase string
}

// Error implements the error interface.
func (e AuditError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Phase, e.Path, e.Err)
}

// AuditStats provides statistics about an audit run.
type AuditStats struct {
	// ReportsScanned is the total number of report candidates discovered.
	ReportsScanned int

	// ReportsEvaluated is the number of reports evaluated successfully.
	ReportsEvaluated int

	// ReportsFailed is the number of reports that failed to decode or
	// evaluate.
	ReportsFailed int

	// FactsSeen is the total number of facts across evaluated reports.
	FactsSeen int

	// FindingsSuppressed counts findings dropped by severity threshold
	// or disabled rules.
	FindingsSuppressed int

	// FindingsBySeverity tracks reported finding counts per severity.
	FindingsBySeverity map[domain.Severity]int

	// Duration is the total run duration.
	Duration time.Duration
}

// NewAuditor creates an auditor bound to cat with the given options.
func NewAuditor(cat *catalog.Catalog, opts ...AuditOption) *Auditor {
	options := &AuditOptions{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)

	disabled := make(map[string]bool, len(options.DisabledRules))
	for _, id := range options.DisabledRules {
		if id = strings.TrimSpace(id); id != "" {
			disabled[id] = true
		}
	}

	return &Auditor{
		cat:      cat,
		eval:     evaluator.New(cat),
		disabled: disabled,
		options:  options,
	}
}

// Run performs the complete audit process:
//  1. Discover fact reports under root
//  2. Decode and evaluate reports in parallel
//  3. Aggregate findings into a deterministic result
func (a *Auditor) Run(ctx context.Context, root string) (*Result, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, a.options.Timeout)
	defer cancel()

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("audit: root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("audit: root %s is not a directory", root)
	}

	result := &Result{
		Reports: []ReportFindings{},
		Errors:  []AuditError{},
		Stats: AuditStats{
			FindingsBySeverity: make(map[domain.Severity]int),
		},
	}

	reports, errs := a.discoverReports(ctx, root)
	for _, err := range errs {
		result.Errors = append(result.Errors, AuditError{
			Err:   err,
			Phase: "discovery",
		})
	}
	result.Stats.ReportsScanned = len(reports)

	if len(reports) == 0 {
		result.Stats.Duration = time.Since(startTime)
		// Zero discoveries under a dead context means discovery was cut
		// short, not that the tree is clean.
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return result, ErrAuditTimeout
			}
			return result, ErrAuditCancelled
		}
		return result, nil
	}

	evaluated, auditErrors := a.evaluateParallel(ctx, root, reports, result)
	result.Reports = evaluated
	result.Errors = append(result.Errors, auditErrors...)

	result.Stats.ReportsEvaluated = len(evaluated)
	result.Stats.ReportsFailed = len(auditErrors)
	result.Stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, ErrAuditTimeout
		}
		if errors.Is(err, context.Canceled) {
			return result, ErrAuditCancelled
		}
	}

	return result, nil
}

// RunFiles audits specific report files (for incremental mode). This
// bypasses discovery and evaluates the provided paths, which must be
// relative to root.
func (a *Auditor) RunFiles(ctx context.Context, root string, files []string) (*Result, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, a.options.Timeout)
	defer cancel()

	result := &Result{
		Reports: []ReportFindings{},
		Errors:  []AuditError{},
		Stats: AuditStats{
			ReportsScanned:     len(files),
			FindingsBySeverity: make(map[domain.Severity]int),
		},
	}

	if len(files) == 0 {
		result.Stats.Duration = time.Since(startTime)
		return result, nil
	}

	evaluated, auditErrors := a.evaluateParallel(ctx, root, files, result)
	result.Reports = evaluated
	result.Errors = append(result.Errors, auditErrors...)

	result.Stats.ReportsEvaluated = len(evaluated)
	result.Stats.ReportsFailed = len(auditErrors)
	result.Stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, ErrAuditTimeout
		}
		if errors.Is(err, context.Canceled) {
			return result, ErrAuditCancelled
		}
	}

	return result, nil
}

// discoverReports walks root to find fact report candidates. Returns
// paths relative to root for stable result ordering.
func (a *Auditor) discoverReports(ctx context.Context, root string) ([]string, []error) {
	skipSet := buildSkipSet(append(DefaultSkipPatterns, a.options.ExcludePatterns...))

	var (
		files []string
		errs  []error
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if walkErr != nil {
			errs = append(errs, fmt.Errorf("access error at %s: %w", path, walkErr))
			return nil
		}

		if d.IsDir() {
			if shouldSkipDir(path, root, skipSet) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isFactReport(path) {
			return nil
		}

		if len(a.options.Patterns) > 0 {
			if !matchesAnyPattern(path, root, a.options.Patterns) {
				return nil
			}
		}

		if a.options.MaxFileSize > 0 {
			info, err := d.Info()
			if err != nil {
				errs = append(errs, fmt.Errorf("failed to get file info for %s: %w", path, err))
				return nil
			}
			if info.Size() > a.options.MaxFileSize {
				return nil
			}
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("compute relative path for %s: %w", path, err))
			return nil
		}

		files = append(files, relPath)
		return nil
	})

	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			errs = append(errs, err)
		}
	}

	return files, errs
}

func (a *Auditor) evaluateParallel(ctx context.Context, root string, files []string, result *Result) ([]ReportFindings, []AuditError) {
	workers := a.options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	var (
		mu          sync.Mutex
		reports     = make([]ReportFindings, 0, len(files))
		auditErrors = make([]AuditError, 0)
	)

	for _, file := range files {
		file := file // Capture loop variable

		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			report, auditErr, stats := a.evaluateReport(gCtx, root, file)

			mu.Lock()
			defer mu.Unlock()

			result.Stats.FactsSeen += stats.facts
			result.Stats.FindingsSuppressed += stats.suppressed

			if auditErr != nil {
				auditErrors = append(auditErrors, *auditErr)
				return nil
			}

			for _, f := range report.Findings {
				result.Stats.FindingsBySeverity[f.Severity]++
			}
			reports = append(reports, *report)

			return nil
		})
	}

	_ = g.Wait()

	// Sort by path for deterministic output order. Parallel goroutines
	// complete in variable order based on report size.
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})

	return reports, auditErrors
}

type reportStats struct {
	facts      int
	suppressed int
}

func (a *Auditor) evaluateReport(ctx context.Context, root, path string) (*ReportFindings, *AuditError, reportStats) {
	var stats reportStats

	if err := ctx.Err(); err != nil {
		return nil, &AuditError{Err: err, Path: path, Phase: "decode"}, stats
	}

	data, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		return nil, &AuditError{Err: err, Path: path, Phase: "decode"}, stats
	}

	rep, err := DecodeReport(data)
	if err != nil {
		return nil, &AuditError{Err: err, Path: path, Phase: "decode"}, stats
	}
	stats.facts = len(rep.Facts)

	findings, err := a.eval.Evaluate(rep.Facts)
	if err != nil {
		return nil, &AuditError{Err: err, Path: path, Phase: "evaluate"}, stats
	}

	kept := make([]domain.Finding, 0, len(findings))
	for _, f := range findings {
		if a.suppress(f) {
			stats.suppressed++
			continue
		}
		kept = append(kept, f)
	}

	return &ReportFindings{
		Path:     path,
		TestFile: rep.TestFile,
		Frontend: rep.Frontend,
		Findings: kept,
	}, nil, stats
}

// suppress reports whether a finding is dropped by the configured
// severity threshold or disabled rule set. Suppression happens here,
// after evaluation, so the evaluator's matching semantics stay exact.
func (a *Auditor) suppress(f domain.Finding) bool {
	if a.disabled[f.RuleID] {
		return true
	}
	if a.options.MinSeverity != "" && !f.Severity.AtLeast(a.options.MinSeverity) {
		return true
	}
	return false
}

// Findings returns every reported finding flattened in report order.
func (r *Result) Findings() []domain.Finding {
	var out []domain.Finding
	for _, rep := range r.Reports {
		out = append(out, rep.Findings...)
	}
	return out
}

// WorstSeverity returns the most serious severity among reported
// findings, or the empty severity when the result is clean.
func (r *Result) WorstSeverity() domain.Severity {
	worst := domain.Severity("")
	for _, rep := range r.Reports {
		for _, f := range rep.Findings {
			if f.Severity.Rank() > worst.Rank() {
				worst = f.Severity
			}
		}
	}
	return worst
}

func buildSkipSet(patterns []string) map[string]bool {
	skipSet := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		skipSet[p] = true
	}
	return skipSet
}

func shouldSkipDir(path, root string, skipSet map[string]bool) bool {
	if path == root {
		return false
	}

	base := filepath.Base(path)
	return skipSet[base]
}

func isFactReport(path string) bool {
	return strings.HasSuffix(filepath.Base(path), ReportSuffix)
}

func matchesAnyPattern(path, root string, patterns []string) bool {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// Run audits the fact reports under root against cat with a one-off
// auditor.
func Run(ctx context.Context, root string, cat *catalog.Catalog, opts ...AuditOption) (*Result, error) {
	auditor := NewAuditor(cat, opts...)
	return auditor.Run(ctx, root)
}
