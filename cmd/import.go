package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evrell/spare"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	ledgerFile   string
	transactions string
	date         string
	amount       string
	label        string
	unit         string
	currency     string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import round-ups from a bank-export JSON file" }
func (*importCmd) Usage() string {
	return `scs import [-tx <path>] [-date <path>] [-amount <path>] [-label <path>] <file>

  Reads a bank-export JSON file, extracts the transactions selected by the
  jsonpath expressions, and records the round-up of each one as a
  contribution.

Usage Examples:
$ scs import export.json
$ scs import -tx '$.data.items' -amount '$.total' export.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	defaults := spare.DefaultBankExportSpec()
	f.StringVar(&c.ledgerFile, "f", defaultLedgerFile, "Contributions file (JSONL format)")
	f.StringVar(&c.transactions, "tx", defaults.Transactions, "Jsonpath selecting the transaction list")
	f.StringVar(&c.date, "date", defaults.Date, "Jsonpath selecting a transaction's date")
	f.StringVar(&c.amount, "amount", defaults.Amount, "Jsonpath selecting a transaction's amount")
	f.StringVar(&c.label, "label", defaults.Label, "Jsonpath selecting a transaction's label")
	f.StringVar(&c.unit, "unit", "1", "Rounding unit")
	f.StringVar(&c.currency, "c", spare.DefaultCurrency, "Currency code")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import expects exactly one file")
		return subcommands.ExitUsageError
	}

	unit, err := spare.ParseMoney(c.unit, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing unit: %v\n", err)
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	transactions, err := spare.ImportBankExport(file, spare.BankExportSpec{
		Transactions: c.transactions,
		Date:         c.date,
		Amount:       c.amount,
		Label:        c.label,
		Currency:     c.currency,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading export: %v\n", err)
		return subcommands.ExitFailure
	}

	contributions, err := spare.RoundUps(transactions, unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing round-ups: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := DecodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading contributions: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Append(contributions...)

	if err := EncodeLedgerFile(c.ledgerFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving contributions: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d round-ups (%d contributions, %s total)\n",
		len(contributions), ledger.Len(), ledger.Total())
	return subcommands.ExitSuccess
}
