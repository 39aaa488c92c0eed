package renderer

import (
	"fmt"
	"strings"

	"github.com/evrell/spare"
)

// GrowthMarkdown renders a time-weighted valuation report.
func GrowthMarkdown(r *spare.GrowthReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Savings Growth as of %s\n\n", r.AsOf)
	fmt.Fprintf(&b, "Annual rate: %s\n\n", spare.NewPercent(r.Rate))

	fmt.Fprint(&b, "## Contributions\n\n")
	fmt.Fprintln(&b, "| Date | Amount | Days Held | Growth | Value |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")

	for _, line := range r.Lines {
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s |\n",
			line.On,
			line.Amount.String(),
			line.DaysHeld,
			line.Growth.SignedString(),
			line.Value.String(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | **%s** | | **%s** | **%s** |\n",
		"Total",
		r.Principal.String(),
		r.Growth.SignedString(),
		r.Value.String(),
	)
	fmt.Fprintf(&b, "\nOverall growth: %s\n", r.GrowthRate.SignedString())

	return b.String()
}
