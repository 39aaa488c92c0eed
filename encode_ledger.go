package spare

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// contributionLine is the JSONL wire form of a Contribution.
type contributionLine struct {
	Date     Date            `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	Source   string          `json:"source,omitempty"`
}

// DecodeLedger decodes contributions from a stream of JSONL data, one JSON
// object per line, and returns them as a Ledger. Empty lines are skipped.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var line contributionLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("could not decode contribution on line %d %q: %w", n, string(lineBytes), err)
		}
		currency := line.Currency
		if currency == "" {
			currency = DefaultCurrency
		}
		c, err := NewContribution(line.Date, NewMoney(line.Amount, currency), line.Source)
		if err != nil {
			return nil, fmt.Errorf("invalid contribution on line %d: %w", n, err)
		}
		ledger.Append(c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeLedger writes the ledger in canonical JSONL form: one contribution
// per line, sorted by date, with a stable key order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, c := range l.Fmt() {
		var obj jsonObjectWriter
		obj.Append("date", c.On)
		obj.Append("amount", c.Amount.Decimal())
		if c.Amount.Currency() != DefaultCurrency {
			obj.Optional("currency", c.Amount.Currency())
		}
		obj.Optional("source", c.Source)
		b, err := obj.MarshalJSON()
		if err != nil {
			return fmt.Errorf("could not encode contribution on %s: %w", c.On, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}
