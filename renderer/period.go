package renderer

import (
	"fmt"
	"strings"

	"github.com/evrell/spare"
)

// PeriodMarkdown renders a period growth report.
func PeriodMarkdown(r *spare.PeriodReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Growth Report from %s to %s\n\n", r.From, r.To)

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Added this period | %s |\n", r.Added.SignedString())
	fmt.Fprintf(&b, "| Growth this period | %s |\n", r.Growth.SignedString())
	fmt.Fprintf(&b, "| Period growth rate | %s |\n", r.GrowthRate.SignedString())
	fmt.Fprintf(&b, "| **Current balance** | **%s** |\n", r.Balance.String())

	fmt.Fprintf(&b, "\nGrowth counts only principal that existed before %s; amounts added since then appear as contributions, not growth.\n", r.From)

	return b.String()
}
