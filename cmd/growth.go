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

// growthCmd holds the flags for the 'growth' subcommand.
type growthCmd struct {
	ledgerFile string
	rate       string
	profile    string
	asOf       string
}

func (*growthCmd) Name() string     { return "growth" }
func (*growthCmd) Synopsis() string { return "time-weighted growth of all contributions" }
func (*growthCmd) Usage() string {
	return `scs growth [-rate <rate> | -profile <profile>] [-d <date>]

  Values every contribution at the given date, accruing simple daily
  interest on each one for the days it has been held.
`
}

func (c *growthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "f", defaultLedgerFile, "Contributions file (JSONL format)")
	f.StringVar(&c.rate, "rate", "", "Annual growth rate as a decimal, e.g. 0.05")
	f.StringVar(&c.profile, "profile", string(spare.Balanced), "Risk profile (conservative, balanced, aggressive)")
	f.StringVar(&c.asOf, "d", "", "Valuation date. Defaults to today.")
}

func (c *growthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := resolveRate(c.rate, c.profile)
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

	report, err := spare.Valuate(ledger.Contributions(), rate, asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing growth: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GrowthMarkdown(report))
	return subcommands.ExitSuccess
}
