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

// periodCmd holds the flags for the 'period' subcommand.
type periodCmd struct {
	ledgerFile string
	rate       string
	profile    string
	window     string
	asOf       string
}

func (*periodCmd) Name() string     { return "period" }
func (*periodCmd) Synopsis() string { return "growth earned within a time window" }
func (*periodCmd) Usage() string {
	return `scs period [-w <window>] [-rate <rate> | -profile <profile>] [-d <date>]

  Reports how much interest the contributions already held at the start
  of the window earned during it, separately from the amounts added.
`
}

func (c *periodCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "f", defaultLedgerFile, "Contributions file (JSONL format)")
	f.StringVar(&c.rate, "rate", "", "Annual growth rate as a decimal, e.g. 0.05")
	f.StringVar(&c.profile, "profile", string(spare.Balanced), "Risk profile (conservative, balanced, aggressive)")
	f.StringVar(&c.window, "w", spare.Month.String(), "Time window (7d, 30d, 90d, 1y)")
	f.StringVar(&c.asOf, "d", "", "End of the window. Defaults to today.")
}

func (c *periodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := spare.PeriodGrowth(ledger.Contributions(), rate, window, asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing period growth: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PeriodMarkdown(report))
	return subcommands.ExitSuccess
}
