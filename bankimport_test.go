package spare

import (
	"strings"
	"testing"
)

const bankExport = `{
  "account": "checking",
  "transactions": [
    {"date": "2025-06-01", "amount": 4.35, "label": "coffee"},
    {"date": "2025-06-02", "amount": "12,50", "label": "lunch"},
    {"date": "2025-06-03", "amount": -3.00, "label": "refund"}
  ]
}`

func TestImportBankExport(t *testing.T) {
	transactions, err := ImportBankExport(strings.NewReader(bankExport), DefaultBankExportSpec())
	if err != nil {
		t.Fatalf("ImportBankExport() error = %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(transactions))
	}
	if got := transactions[0].Amount.Fixed(); got != "4.35" {
		t.Errorf("transactions[0].Amount = %s, want 4.35", got)
	}
	if got := transactions[1].Amount.Fixed(); got != "12.50" {
		t.Errorf("string amount = %s, want 12.50", got)
	}
	// negative amounts are spendings too, keep the magnitude
	if got := transactions[2].Amount.Fixed(); got != "3.00" {
		t.Errorf("negative amount = %s, want 3.00", got)
	}
	if transactions[1].Label != "lunch" {
		t.Errorf("label = %q, want %q", transactions[1].Label, "lunch")
	}
	if want := MustParseDate("2025-06-02"); transactions[1].On != want {
		t.Errorf("date = %s, want %s", transactions[1].On, want)
	}
}

func TestImportBankExport_CustomPaths(t *testing.T) {
	doc := `{"data": {"items": [{"when": "2025-06-05", "total": 7.10, "memo": "books"}]}}`
	spec := BankExportSpec{
		Transactions: "$.data.items",
		Date:         "$.when",
		Amount:       "$.total",
		Label:        "$.memo",
	}
	transactions, err := ImportBankExport(strings.NewReader(doc), spec)
	if err != nil {
		t.Fatalf("ImportBankExport() error = %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	if got := transactions[0].Amount.Currency(); got != DefaultCurrency {
		t.Errorf("currency = %q, want %q", got, DefaultCurrency)
	}
}

func TestImportBankExport_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `not json`},
		{"not a list", `{"transactions": {"date": "2025-06-01"}}`},
		{"bad date", `{"transactions": [{"date": "june first", "amount": 1.0, "label": ""}]}`},
		{"bad amount", `{"transactions": [{"date": "2025-06-01", "amount": true, "label": ""}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportBankExport(strings.NewReader(tc.doc), DefaultBankExportSpec()); err == nil {
				t.Errorf("ImportBankExport(%q) expected an error", tc.doc)
			}
		})
	}
}

func TestRoundUps(t *testing.T) {
	transactions := []BankTransaction{
		{On: MustParseDate("2025-06-01"), Amount: M(4.35, "USD"), Label: "coffee"},
		{On: MustParseDate("2025-06-02"), Amount: M(5, "USD"), Label: "lunch"},
	}
	contributions, err := RoundUps(transactions, M(1, "USD"))
	if err != nil {
		t.Fatalf("RoundUps() error = %v", err)
	}
	if got := contributions[0].Amount.Fixed(); got != "0.65" {
		t.Errorf("round-up of 4.35 = %s, want 0.65", got)
	}
	// exact multiples still save a full unit
	if got := contributions[1].Amount.Fixed(); got != "1.00" {
		t.Errorf("round-up of 5.00 = %s, want 1.00", got)
	}
	if contributions[0].Source != "coffee" {
		t.Errorf("source = %q, want %q", contributions[0].Source, "coffee")
	}
}
