package spare

import (
	"testing"

	"github.com/shopspring/decimal"
)

var rate8 = decimal.RequireFromString("0.08")

func TestProjections_StrictlyIncreasingHorizons(t *testing.T) {
	set, err := Projections(M(250, DefaultCurrency), M(25, DefaultCurrency), rate8)
	if err != nil {
		t.Fatalf("Projections() error = %v", err)
	}

	horizons := []Money{set.Year1, set.Year3, set.Year5, set.Year10}
	for i := 1; i < len(horizons); i++ {
		if !horizons[i-1].LessThan(horizons[i]) {
			t.Errorf("projection not strictly increasing: %s then %s",
				horizons[i-1].Decimal(), horizons[i].Decimal())
		}
	}
	if !set.Balance.LessThan(set.Year1) {
		t.Errorf("year 1 projection %s not above starting balance %s",
			set.Year1.Decimal(), set.Balance.Decimal())
	}
}

func TestFutureValue_ZeroRateIsPlainAccumulation(t *testing.T) {
	fv, err := FutureValue(M(100, DefaultCurrency), M(10, DefaultCurrency), decimal.Zero, decimal.NewFromInt(2))
	if err != nil {
		t.Fatalf("FutureValue() error = %v", err)
	}
	// 100 + 10 * 24 months, nothing to compound.
	if fv.Fixed() != "340.00" {
		t.Errorf("FutureValue(zero rate) = %s, want 340.00", fv.Fixed())
	}
}

func TestFutureValue_LumpOnlyMatchesCompoundInterest(t *testing.T) {
	principal := M(1000, DefaultCurrency)
	years := decimal.NewFromInt(3)

	fv, err := FutureValue(principal, M(0, DefaultCurrency), rate8, years)
	if err != nil {
		t.Fatalf("FutureValue() error = %v", err)
	}
	ci, err := CompoundInterest(principal, rate8, 12, years)
	if err != nil {
		t.Fatalf("CompoundInterest() error = %v", err)
	}
	if !fv.Equal(ci) {
		t.Errorf("FutureValue = %s, CompoundInterest = %s, want equal", fv.Decimal(), ci.Decimal())
	}
}

func TestCompoundInterest_KnownMagnitude(t *testing.T) {
	// $1000 at 8% compounded monthly for 1 year is a little under $1083.
	got, err := CompoundInterest(M(1000, DefaultCurrency), rate8, 12, decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("CompoundInterest() error = %v", err)
	}
	lo := decimal.RequireFromString("1082.90")
	hi := decimal.RequireFromString("1083.10")
	if got.Decimal().LessThan(lo) || got.Decimal().GreaterThan(hi) {
		t.Errorf("CompoundInterest = %s, want within [%s, %s]", got.Decimal(), lo, hi)
	}
}

func TestCompoundInterest_FractionalYears(t *testing.T) {
	half := decimal.RequireFromString("0.5")
	got, err := CompoundInterest(M(1000, DefaultCurrency), rate8, 12, half)
	if err != nil {
		t.Fatalf("CompoundInterest() error = %v", err)
	}
	full, err := CompoundInterest(M(1000, DefaultCurrency), rate8, 12, decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("CompoundInterest() error = %v", err)
	}
	if !got.GreaterThan(M(1000, DefaultCurrency)) || !got.LessThan(full) {
		t.Errorf("CompoundInterest(0.5y) = %s, want between 1000 and %s", got.Decimal(), full.Decimal())
	}
}

func TestProjections_RejectsBadInputs(t *testing.T) {
	if _, err := Projections(M(-1, DefaultCurrency), M(0, DefaultCurrency), rate8); err == nil {
		t.Error("Projections(negative balance) expected error, got nil")
	}
	if _, err := Projections(M(0, DefaultCurrency), M(0, DefaultCurrency), decimal.RequireFromString("1.5")); err == nil {
		t.Error("Projections(rate > 1) expected error, got nil")
	}
}
