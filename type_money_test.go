package spare

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_Fixed(t *testing.T) {
	// Interim values keep full precision; only rendering rounds to the
	// currency scale.
	m := NewMoney(decimal.RequireFromString("0.654794520547"), "USD")
	if got := m.Fixed(); got != "0.65" {
		t.Errorf("Fixed() = %s, want 0.65", got)
	}
	if !m.Decimal().Equal(decimal.RequireFromString("0.654794520547")) {
		t.Error("Fixed() must not alter the underlying value")
	}
}

func TestMoney_String(t *testing.T) {
	if got := M(4.35, "USD").String(); got != "$4.35" {
		t.Errorf("String() = %q, want $4.35", got)
	}
	if got := M(-2, "USD").SignedString(); got != "-$2.00" {
		t.Errorf("SignedString() = %q, want -$2.00", got)
	}
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	sum := M(0, "").Add(M(1.5, "EUR"))
	if sum.Currency() != "EUR" {
		t.Errorf("currency = %q, want EUR", sum.Currency())
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("4.35", "USD")
	if err != nil {
		t.Fatalf("ParseMoney error = %v", err)
	}
	if m.Fixed() != "4.35" {
		t.Errorf("ParseMoney = %s, want 4.35", m.Fixed())
	}
}
