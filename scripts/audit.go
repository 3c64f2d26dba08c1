//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/uilint/core/pkg/audit"
	"github.com/uilint/core/pkg/catalog"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run scripts/audit.go <path>\n")
		os.Exit(1)
	}

	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cat, err := catalog.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog error: %v\n", err)
		os.Exit(1)
	}

	result, err := audit.Run(ctx, path, cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audit error: %v\n", err)
		os.Exit(1)
	}

	output := map[string]interface{}{
		"reportsScanned":   result.Stats.ReportsScanned,
		"reportsEvaluated": result.Stats.ReportsEvaluated,
		"findings":         len(result.Findings()),
		"duration":         result.Stats.Duration.String(),
		"rules":            countRules(result),
	}
	json.NewEncoder(os.Stdout).Encode(output)
}

func countRules(result *audit.Result) map[string]int {
	counts := make(map[string]int)
	for _, rep := range result.Reports {
		for _, f := range rep.Findings {
			counts[f.RuleID]++
		}
	}
	return counts
}
