package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evrell/spare"
	"github.com/evrell/spare/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	ledgerFile string
	rate       string
	profile    string
	window     string
	asOf       string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "balance history over a time window" }
func (*historyCmd) Usage() string {
	return `scs history [-w <window>] [-rate <rate> | -profile <profile>] [-d <date>]

  Samples the portfolio value over the window, one point per day
  (weekly for the 1y window), ending on the valuation date.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "f", defaultLedgerFile, "Contributions file (JSONL format)")
	f.StringVar(&c.rate, "rate", "", "Annual growth rate as a decimal, e.g. 0.05")
	f.StringVar(&c.profile, "profile", string(spare.Balanced), "Risk profile (conservative, balanced, aggressive)")
	f.StringVar(&c.window, "w", spare.Month.String(), "Time window (7d, 30d, 90d, 1y)")
	f.StringVar(&c.asOf, "d", "", "Valuation date. Defaults to today.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := resolveRate(c.rate, c.profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	window, err := spare.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	asOf, err := parseAsOf(c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading contributions: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := spare.GenerateHistory(ledger.Contributions(), rate, window, asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating history: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
