package spare

import (
	"errors"
	"testing"
)

func TestRoundUp(t *testing.T) {
	tests := []struct {
		amount string
		unit   string
		want   string
	}{
		{"4.35", "1", "0.65"},
		{"5.00", "1", "1.00"}, // exact multiples still round up a full unit
		{"0.01", "1", "0.99"},
		{"12.99", "1", "0.01"},
		{"4.35", "0.5", "0.15"},
		{"4.50", "0.5", "0.50"},
		{"7", "5", "3.00"},
	}

	for _, tc := range tests {
		amount, err := ParseMoney(tc.amount, DefaultCurrency)
		if err != nil {
			t.Fatalf("ParseMoney(%q) error = %v", tc.amount, err)
		}
		unit, err := ParseMoney(tc.unit, DefaultCurrency)
		if err != nil {
			t.Fatalf("ParseMoney(%q) error = %v", tc.unit, err)
		}

		got, err := RoundUp(amount, unit)
		if err != nil {
			t.Fatalf("RoundUp(%s, %s) error = %v", tc.amount, tc.unit, err)
		}
		if got.Fixed() != tc.want {
			t.Errorf("RoundUp(%s, %s) = %s, want %s", tc.amount, tc.unit, got.Fixed(), tc.want)
		}
	}
}

func TestRoundUp_RejectsNonPositiveAmounts(t *testing.T) {
	unit := DefaultUnit(DefaultCurrency)

	for _, amount := range []string{"0", "-4.35"} {
		m, err := ParseMoney(amount, DefaultCurrency)
		if err != nil {
			t.Fatalf("ParseMoney(%q) error = %v", amount, err)
		}
		if _, err := RoundUp(m, unit); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("RoundUp(%s) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestRoundUp_RejectsNonNumericAmount(t *testing.T) {
	if _, err := ParseMoney("four dollars", DefaultCurrency); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("ParseMoney error = %v, want ErrInvalidAmount", err)
	}
}
