// Package cmd implements the CLI application to track spare-change savings.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/evrell/spare"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands lists the subcommands of the application.
// A main package will iterate it to register them on a commander.
var Commands = []subcommands.Command{
	&roundupCmd{},
	&addCmd{},
	&importCmd{},
	&growthCmd{},
	&historyCmd{},
	&periodCmd{},
	&projectCmd{},
	&assistCmd{},
	&topicCmd{},
}

// defaultLedgerFile is where contributions are recorded (JSONL format).
const defaultLedgerFile = "contributions.jsonl"

// DecodeLedgerFile loads the contributions file. A missing file is not an
// error: tracking starts with an empty ledger.
func DecodeLedgerFile(path string) (*spare.Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, contributions file %q does not exist, starting with an empty ledger", path)
		return spare.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open contributions file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := spare.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode contributions file %q: %w", path, err)
	}
	return ledger, nil
}

// EncodeLedgerFile writes the ledger back in canonical form.
func EncodeLedgerFile(path string, ledger *spare.Ledger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not write contributions file %q: %w", path, err)
	}
	defer f.Close()
	return spare.EncodeLedger(f, ledger)
}

// resolveRate turns the -rate / -profile flag pair into an annual rate.
// An explicit rate wins over the profile.
func resolveRate(rateFlag, profileFlag string) (decimal.Decimal, error) {
	if rateFlag != "" {
		return spare.ParseRate(rateFlag)
	}
	profile, err := spare.ParseRiskProfile(profileFlag)
	if err != nil {
		return decimal.Zero, err
	}
	return profile.AnnualRate(), nil
}

// parseAsOf parses the reference date flag, defaulting to today.
func parseAsOf(s string) (spare.Date, error) {
	if strings.TrimSpace(s) == "" {
		return spare.Today(), nil
	}
	return spare.ParseDate(s)
}

// printMarkdown renders a markdown report to the terminal. If the terminal
// renderer cannot be built the raw markdown is printed instead.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
