package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evrell/spare"
	"github.com/evrell/spare/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	ledgerFile string
	balance    string
	monthly    string
	rate       string
	profile    string
	years      string
	currency   string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "compound projections of future balance" }
func (*projectCmd) Usage() string {
	return `scs project [-balance <amount>] [-monthly <amount>] [-rate <rate> | -profile <profile>] [-years <years>]

  Projects the balance at 1, 3, 5 and 10 years with monthly compounding,
  assuming a steady monthly contribution. Without -balance the current
  value of the contributions file is used as the starting point.
  With -years a single custom horizon is projected instead.

Usage Examples:
$ scs project -monthly 30
$ scs project -balance 1000 -monthly 30 -rate 0.07 -years 2.5
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "f", defaultLedgerFile, "Contributions file (JSONL format)")
	f.StringVar(&c.balance, "balance", "", "Starting balance. Defaults to the current portfolio value.")
	f.StringVar(&c.monthly, "monthly", "0", "Expected monthly contribution")
	f.StringVar(&c.rate, "rate", "", "Annual growth rate as a decimal, e.g. 0.05")
	f.StringVar(&c.profile, "profile", string(spare.Balanced), "Risk profile (conservative, balanced, aggressive)")
	f.StringVar(&c.years, "years", "", "Custom horizon in years, fractions allowed")
	f.StringVar(&c.currency, "c", spare.DefaultCurrency, "Currency code")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := resolveRate(c.rate, c.profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	monthly, err := spare.ParseMoney(c.monthly, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing monthly amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	var balance spare.Money
	if c.balance != "" {
		balance, err = spare.ParseMoney(c.balance, c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
			return subcommands.ExitUsageError
		}
	} else {
		ledger, err := DecodeLedgerFile(c.ledgerFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading contributions: %v\n", err)
			return subcommands.ExitFailure
		}
		report, err := spare.Valuate(ledger.Contributions(), rate, spare.Today())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error valuating contributions: %v\n", err)
			return subcommands.ExitFailure
		}
		balance = report.Value
	}

	if c.years != "" {
		years, err := decimal.NewFromString(c.years)
		if err != nil || !years.IsPositive() {
			fmt.Fprintf(os.Stderr, "Error: invalid horizon %q\n", c.years)
			return subcommands.ExitUsageError
		}
		value, err := spare.FutureValue(balance, monthly, rate, years)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error projecting balance: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("In %s years: %s (starting from %s, %s monthly at %s)\n",
			years, value, balance, monthly, spare.NewPercent(rate))
		return subcommands.ExitSuccess
	}

	set, err := spare.Projections(balance, monthly, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error projecting balance: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProjectionsMarkdown(set))
	return subcommands.ExitSuccess
}
