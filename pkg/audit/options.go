package audit

import (
	"time"

	"github.com/uilint/core/pkg/domain"
)

// AuditOptions configures audit runner behavior.
type AuditOptions struct {
	// DisabledRules lists rule ids whose findings are dropped from the
	// result. Unknown ids are ignored.
	DisabledRules []string

	// ExcludePatterns specifies directory names to skip during report
	// discovery. These are combined with DefaultSkipPatterns.
	ExcludePatterns []string

	// MaxFileSize is the maximum report size in bytes to process.
	// Reports larger than this are skipped.
	MaxFileSize int64

	// MinSeverity drops findings below the given severity. The zero
	// value keeps everything.
	MinSeverity domain.Severity

	// Patterns specifies glob patterns to filter report files.
	// Empty means all discovered reports are processed.
	Patterns []string

	// Timeout is the maximum duration for the entire audit run.
	// Zero or negative values use DefaultTimeout.
	Timeout time.Duration

	// Workers specifies the number of concurrent report evaluators.
	// Zero or negative values use runtime.GOMAXPROCS(0).
	Workers int
}

// AuditOption is a functional option for configuring an Auditor.
type AuditOption func(*AuditOptions)

// WithWorkers sets the number of concurrent report evaluators.
// Negative values are ignored.
func WithWorkers(n int) AuditOption {
	return func(o *AuditOptions) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

// WithTimeout sets the audit timeout duration.
// Negative values are ignored.
func WithTimeout(d time.Duration) AuditOption {
	return func(o *AuditOptions) {
		if d >= 0 {
			o.Timeout = d
		}
	}
}

// WithExcludePatterns adds directory names to skip during report
// discovery.
func WithExcludePatterns(patterns []string) AuditOption {
	return func(o *AuditOptions) {
		o.ExcludePatterns = patterns
	}
}

// WithPatterns sets glob patterns to filter report files.
func WithPatterns(patterns []string) AuditOption {
	return func(o *AuditOptions) {
		o.Patterns = patterns
	}
}

// WithMaxFileSize sets the maximum report size to process.
func WithMaxFileSize(size int64) AuditOption {
	return func(o *AuditOptions) {
		if size >= 0 {
			o.MaxFileSize = size
		}
	}
}

// WithMinSeverity drops findings below the given severity.
func WithMinSeverity(min domain.Severity) AuditOption {
	return func(o *AuditOptions) {
		o.MinSeverity = min
	}
}

// WithDisabledRules drops findings for the given rule ids.
func WithDisabledRules(ids []string) AuditOption {
	return func(o *AuditOptions) {
		o.DisabledRules = ids
	}
}

func applyDefaults(opts *AuditOptions) {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
}
