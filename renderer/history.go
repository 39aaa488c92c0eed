package renderer

import (
	"bytes"
	"fmt"

	"github.com/evrell/spare"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders a valuation series as a table, one row per sample.
func HistoryMarkdown(r *spare.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balance History over %s", r.Window))

	table := md.TableSet{
		Header: []string{"Date", "Balance", "Contributions", "Growth", "Growth %", "Added"},
		Rows:   [][]string{},
	}
	for _, point := range r.Points {
		table.Rows = append(table.Rows, []string{
			point.On.String(),
			point.Value.String(),
			point.Principal.String(),
			point.Growth.SignedString(),
			point.GrowthRate.String(),
			point.Added.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
