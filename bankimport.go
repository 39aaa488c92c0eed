package spare

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// BankExportSpec locates transactions inside a bank-export JSON document.
// Transactions selects the list of transaction objects, the other paths
// are evaluated against each object in turn.
type BankExportSpec struct {
	Transactions string
	Date         string
	Amount       string
	Label        string
	Currency     string
}

// DefaultBankExportSpec matches the flat layout most exports boil down to:
// a top-level "transactions" list of {date, amount, label} objects.
func DefaultBankExportSpec() BankExportSpec {
	return BankExportSpec{
		Transactions: "$.transactions",
		Date:         "$.date",
		Amount:       "$.amount",
		Label:        "$.label",
		Currency:     DefaultCurrency,
	}
}

// BankTransaction is one spending line extracted from a bank export.
type BankTransaction struct {
	On     Date
	Amount Money
	Label  string
}

// ImportBankExport reads a bank-export JSON document and extracts the
// spending transactions selected by the jsonpath expressions in spec.
func ImportBankExport(r io.Reader, spec BankExportSpec) ([]BankTransaction, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode bank export: %w", err)
	}

	jval, err := jsonpath.Get(spec.Transactions, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select transactions: %q %w", spec.Transactions, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("transactions path %q does not select a list", spec.Transactions)
	}

	currency := spec.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	transactions := make([]BankTransaction, 0, len(jlist))
	for i, jtx := range jlist {
		on, err := extractDate(jtx, spec.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		value, err := extractAmount(jtx, spec.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		label, _ := extractString(jtx, spec.Label)

		transactions = append(transactions, BankTransaction{
			On:     on,
			Amount: NewMoney(value.Abs(), currency),
			Label:  label,
		})
	}
	return transactions, nil
}

// RoundUps turns bank transactions into the round-up contributions they
// would have generated against the given unit.
func RoundUps(transactions []BankTransaction, unit Money) ([]Contribution, error) {
	contributions := make([]Contribution, 0, len(transactions))
	for _, tx := range transactions {
		amount, err := RoundUp(tx.Amount, unit)
		if err != nil {
			return nil, fmt.Errorf("transaction on %s: %w", tx.On, err)
		}
		c, err := NewContribution(tx.On, amount, tx.Label)
		if err != nil {
			return nil, err
		}
		contributions = append(contributions, c)
	}
	return contributions, nil
}

func extractDate(jobj any, path string) (Date, error) {
	s, err := extractString(jobj, path)
	if err != nil {
		return Date{}, err
	}
	on, err := ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("bad date at %q: %w", path, err)
	}
	return on, nil
}

func extractAmount(jobj any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot read amount at %q: %w", path, err)
	}
	jval = firstOf(jval)
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		// some exports write amounts as strings, with a comma decimal mark
		d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
		if err != nil {
			return decimal.Zero, fmt.Errorf("bad amount at %q: %w", path, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("amount at %q is neither a number nor a string: %v", path, jval)
	}
}

func extractString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("cannot read %q: %w", path, err)
	}
	jval = firstOf(jval)
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string: %v", path, jval)
	}
	return s, nil
}

// firstOf unwraps the single-element list jsonpath sometimes returns
// instead of a scalar.
func firstOf(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}
