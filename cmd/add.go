package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evrell/spare"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	ledgerFile string
	date       string
	source     string
	unit       string
	currency   string
	spent      bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a spare-change contribution" }
func (*addCmd) Usage() string {
	return `scs add [-d <date>] [-spent] [-source <text>] <amount>

  Records a contribution in the contributions file. With -spent the argument
  is a purchase amount and its round-up is recorded instead of the amount
  itself.

Usage Examples:
$ scs add 0.65
$ scs add -spent -source "coffee" 4.35
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "f", defaultLedgerFile, "Contributions file (JSONL format)")
	f.StringVar(&c.date, "d", "", "Date of the contribution. Defaults to today.")
	f.StringVar(&c.source, "source", "", "Description of the originating purchase")
	f.StringVar(&c.unit, "unit", "1", "Rounding unit, used with -spent")
	f.StringVar(&c.currency, "c", spare.DefaultCurrency, "Currency code")
	f.BoolVar(&c.spent, "spent", false, "Treat the amount as a purchase and record its round-up")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "add expects exactly one amount")
		return subcommands.ExitUsageError
	}

	on, err := parseAsOf(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := spare.ParseMoney(f.Arg(0), c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.spent {
		unit, err := spare.ParseMoney(c.unit, c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing unit: %v\n", err)
			return subcommands.ExitUsageError
		}
		amount, err = spare.RoundUp(amount, unit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing round-up: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	contribution, err := spare.NewContribution(on, amount, c.source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading contributions: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Append(contribution)

	if err := EncodeLedgerFile(c.ledgerFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving contributions: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s on %s (%d contributions, %s total)\n",
		amount, contribution.On, ledger.Len(), ledger.Total())
	return subcommands.ExitSuccess
}
