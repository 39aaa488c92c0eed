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

// roundupCmd holds the flags for the 'roundup' subcommand.
type roundupCmd struct {
	unit     string
	currency string
}

func (*roundupCmd) Name() string     { return "roundup" }
func (*roundupCmd) Synopsis() string { return "compute the spare change for a purchase amount" }
func (*roundupCmd) Usage() string {
	return `scs roundup [-unit <unit>] <amount>

  Computes the amount of spare change set aside when the purchase is rounded
  up to the next unit. An amount already on a unit boundary still rounds up a
  full unit.

Usage Examples:
$ scs roundup 4.35
$ scs roundup -unit 0.50 4.35
`
}

func (c *roundupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.unit, "unit", "1", "Rounding unit in currency major units")
	f.StringVar(&c.currency, "c", spare.DefaultCurrency, "Currency code used for rendering")
}

func (c *roundupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "roundup expects exactly one amount")
		return subcommands.ExitUsageError
	}

	amount, err := spare.ParseMoney(f.Arg(0), c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	unit, err := spare.ParseMoney(c.unit, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing unit: %v\n", err)
		return subcommands.ExitUsageError
	}

	roundUp, err := spare.RoundUp(amount, unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing round-up: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RoundUpMarkdown(amount, roundUp))
	return subcommands.ExitSuccess
}
