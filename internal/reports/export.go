package reports

import (
	"fmt"
	"strings"
	"time"
)

// NoInsight is the placeholder printed when a report is exported without an
// AI analysis.
const NoInsight = "No AI analysis performed yet."

// ExportReport renders the plain-text report document: title line, generation
// timestamp, data block, and the AI insight section.
func ExportReport(title string, dataLines []string, insight string, generatedAt time.Time) string {
	if insight == "" {
		insight = NoInsight
	}
	var b strings.Builder
	fmt.Fprintf(&b, "PHARMAFLOW REPORT: %s\n", title)
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.UTC().Format(time.RFC3339))
	b.WriteString("\nDATA:\n")
	b.WriteString(strings.Join(dataLines, "\n"))
	b.WriteString("\n\nAI Insights Summary:\n")
	b.WriteString(insight)
	return b.String()
}
