package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/uilint/core/internal/reporting"
	"github.com/uilint/core/internal/shared"
	"github.com/uilint/core/pkg/audit"
	"github.com/uilint/core/pkg/catalog"
	"github.com/uilint/core/pkg/domain"
)

const version = "0.1.0"

// Exit codes: 0 clean, 1 blocking findings, 2 usage error, 3 internal error.
const (
	exitClean    = 0
	exitBlocking = 1
	exitUsage    = 2
	exitInternal = 3
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitUsage)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "rules":
		rulesCmd(os.Args[2:])
	case "version":
		fmt.Printf("uilint %s (report schema %s)\n", version, audit.ReportVersion)
	default:
		usage()
		os.Exit(exitUsage)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `uilint – UI test best-practice auditor

Usage:
  uilint check [--path <project-dir>] [--catalog <rules.yaml>] [--out <reports-dir>] [--format text|json] [--min-severity low|medium|high] [--fail-on high|medium|low|none] [--config ./uilint.yaml]
  uilint rules [--catalog <rules.yaml>] [--category <name>] [--format text|json]
  uilint version

Exit codes: 0 no blocking findings, 1 blocking findings, 2 usage error, 3 internal error.
`)
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	rootPath := fs.String("path", "", "Project directory containing fact reports (default: .)")
	catalogPath := fs.String("catalog", "", "Rule catalog file (default: built-in catalog)")
	outDir := fs.String("out", "", "Output directory for the JSON artifact")
	format := fs.String("format", "", "Console output format: text or json")
	minSeverity := fs.String("min-severity", "", "Drop findings below this severity")
	failOn := fs.String("fail-on", "", "Exit non-zero at or above this severity (none disables)")
	workers := fs.Int("workers", 0, "Concurrent report evaluators (0 = GOMAXPROCS)")
	timeout := fs.Duration("timeout", 0, "Audit timeout (0 = default)")
	_ = fs.Parse(args)

	cfg, err := shared.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "check:", err)
		os.Exit(exitUsage)
	}
	logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	// precedence: flags > config > defaults
	if *rootPath == "" {
		*rootPath = "."
	}
	if *catalogPath == "" {
		*catalogPath = cfg.Catalog.Path
	}
	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *format == "" {
		*format = cfg.Reporting.Format
	}
	if *minSeverity == "" {
		*minSeverity = cfg.Reporting.MinSeverity
	}
	if *failOn == "" {
		*failOn = cfg.Reporting.FailOn
	}
	if *workers == 0 {
		*workers = cfg.Audit.Workers
	}

	if !oneOf(*format, "text", "json") {
		fmt.Fprintf(os.Stderr, "check: invalid --format %q (want text or json)\n", *format)
		os.Exit(exitUsage)
	}
	if *minSeverity != "" && !domain.Severity(*minSeverity).Valid() {
		fmt.Fprintf(os.Stderr, "check: invalid --min-severity %q\n", *minSeverity)
		os.Exit(exitUsage)
	}
	if !oneOf(*failOn, "high", "medium", "low", "none") {
		fmt.Fprintf(os.Stderr, "check: invalid --fail-on %q\n", *failOn)
		os.Exit(exitUsage)
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		logger.Error("catalog load failed", "err", err)
		os.Exit(exitInternal)
	}

	opts := []audit.AuditOption{
		audit.WithWorkers(*workers),
		audit.WithExcludePatterns(cfg.Audit.Exclude),
		audit.WithPatterns(cfg.Audit.Include),
		audit.WithDisabledRules(cfg.Audit.DisabledRules),
		audit.WithMaxFileSize(cfg.Audit.MaxFileSize),
		audit.WithMinSeverity(domain.Severity(*minSeverity)),
		audit.WithTimeout(*timeout),
	}

	started := time.Now()
	result, err := audit.Run(context.Background(), *rootPath, cat, opts...)
	if err != nil {
		logger.Error("audit failed", "root", *rootPath, "err", err)
		os.Exit(exitInternal)
	}

	doc := reporting.NewDocument(*rootPath, result)

	if *outDir != "" {
		path, err := reporting.WriteJSON(*outDir, doc)
		if err != nil {
			logger.Error("write artifact failed", "err", err)
			os.Exit(exitInternal)
		}
		logger.Info("artifact written", "path", path)
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			logger.Error("encode output failed", "err", err)
			os.Exit(exitInternal)
		}
	default:
		if err := reporting.RenderText(os.Stdout, doc); err != nil {
			logger.Error("render output failed", "err", err)
			os.Exit(exitInternal)
		}
	}

	logger.Info("audit complete",
		"reports", result.Stats.ReportsEvaluated,
		"findings", doc.Summary.Findings,
		"failed", result.Stats.ReportsFailed,
		"elapsed", time.Since(started).Round(time.Millisecond).String(),
	)

	worst := result.WorstSeverity()
	if *failOn != "none" && worst != "" && worst.AtLeast(domain.Severity(*failOn)) {
		os.Exit(exitBlocking)
	}
	os.Exit(exitClean)
}

func rulesCmd(args []string) {
	fs := flag.NewFlagSet("rules", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	catalogPath := fs.String("catalog", "", "Rule catalog file (default: built-in catalog)")
	category := fs.String("category", "", "Only list rules of this category")
	format := fs.String("format", "text", "Output format: text or json")
	_ = fs.Parse(args)

	cfg, err := shared.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rules:", err)
		os.Exit(exitUsage)
	}
	logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *catalogPath == "" {
		*catalogPath = cfg.Catalog.Path
	}
	if !oneOf(*format, "text", "json") {
		fmt.Fprintf(os.Stderr, "rules: invalid --format %q (want text or json)\n", *format)
		os.Exit(exitUsage)
	}
	if *category != "" && !domain.Category(*category).Valid() {
		fmt.Fprintf(os.Stderr, "rules: invalid --category %q\n", *category)
		os.Exit(exitUsage)
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		logger.Error("catalog load failed", "err", err)
		os.Exit(exitInternal)
	}

	rules := cat.Rules()
	if *category != "" {
		rules = cat.ByCategory(domain.Category(*category))
	}

	if *format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rules); err != nil {
			logger.Error("encode output failed", "err", err)
			os.Exit(exitInternal)
		}
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSEVERITY\tCATEGORY\tANTI-PATTERN")
	for _, r := range rules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Severity, r.Category, r.AntiPattern)
	}
	fmt.Fprintf(tw, "\n%d rules\n", len(rules))
	if err := tw.Flush(); err != nil {
		logger.Error("render output failed", "err", err)
		os.Exit(exitInternal)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
