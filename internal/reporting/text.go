package reporting

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/uilint/core/pkg/domain"
)

// RenderText writes a human-readable rendering of doc to w. Reports
// with no findings are omitted; the summary line always appears.
func RenderText(w io.Writer, doc *Document) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, rep := range doc.Reports {
		if len(rep.Findings) == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t(%s)\n", rep.TestFile, rep.Path)
		for _, f := range rep.Findings {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
				strings.ToUpper(string(f.Severity)), f.RuleID, f.Location, f.Message)
		}
		fmt.Fprintln(tw)
	}

	if len(doc.Warnings) > 0 {
		fmt.Fprintln(tw, "warnings:")
		for _, warn := range doc.Warnings {
			fmt.Fprintf(tw, "  %s\n", warn)
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintf(tw, "%d findings (%s) across %d of %d reports in %dms\n",
		doc.Summary.Findings,
		severityBreakdown(doc.Summary.BySeverity),
		doc.Summary.ReportsEvaluated,
		doc.Summary.ReportsScanned,
		doc.Summary.DurationMS)

	return tw.Flush()
}

func severityBreakdown(bySeverity map[domain.Severity]int) string {
	parts := make([]string, 0, 3)
	for _, s := range domain.Severities() {
		if n := bySeverity[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
