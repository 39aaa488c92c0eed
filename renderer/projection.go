package renderer

import (
	"bytes"
	"fmt"

	"github.com/evrell/spare"
	md "github.com/nao1215/markdown"
)

// ProjectionsMarkdown renders the fixed-horizon future values.
func ProjectionsMarkdown(r *spare.ProjectionSet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings Projections")
	doc.PlainText(fmt.Sprintf("Starting from %s with %s added monthly, at %s per year compounded monthly.",
		r.Balance.String(), r.Monthly.String(), spare.NewPercent(r.Rate)))

	doc.Table(md.TableSet{
		Header: []string{"Horizon", "Projected Value"},
		Rows: [][]string{
			{"1 year", r.Year1.String()},
			{"3 years", r.Year3.String()},
			{"5 years", r.Year5.String()},
			{"10 years", r.Year10.String()},
		},
	})

	return doc.String()
}

// RoundUpMarkdown renders a single round-up computation.
func RoundUpMarkdown(amount, roundUp spare.Money) string {
	return fmt.Sprintf("Spending %s sets aside **%s** of spare change.\n", amount.String(), roundUp.String())
}
