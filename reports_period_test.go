package spare

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// The three-contribution scenario: 1.00 twenty-two days ago, 2.00 eight days
// ago, 3.00 three days ago.
func periodScenario(t *testing.T, asOf Date) []Contribution {
	t.Helper()
	return []Contribution{
		contribOn(t, asOf.Add(-22), "1.00"),
		contribOn(t, asOf.Add(-8), "2.00"),
		contribOn(t, asOf.Add(-3), "3.00"),
	}
}

func TestPeriodGrowth_AllContributionsInsideWindow(t *testing.T) {
	asOf := NewDate(2025, time.June, 23)
	contributions := periodScenario(t, asOf)

	report, err := PeriodGrowth(contributions, rate5, Month, asOf)
	if err != nil {
		t.Fatalf("PeriodGrowth() error = %v", err)
	}

	// Nothing existed 30 days before any of these: every cent of balance
	// change is added principal, none of it is growth.
	if report.Added.Fixed() != "6.00" {
		t.Errorf("added = %s, want 6.00", report.Added.Fixed())
	}
	if !report.Growth.IsZero() {
		t.Errorf("growth = %s, want 0", report.Growth.Decimal())
	}
	if !report.GrowthRate.Equal(0) {
		t.Errorf("growth rate = %s, want 0.00%%", report.GrowthRate)
	}
}

func TestPeriodGrowth_OnlyExistingPrincipalGrows(t *testing.T) {
	asOf := NewDate(2025, time.June, 23)
	contributions := periodScenario(t, asOf)

	report, err := PeriodGrowth(contributions, rate5, Week, asOf)
	if err != nil {
		t.Fatalf("PeriodGrowth() error = %v", err)
	}

	// The window opens 7 days before asOf. Both the 22-day-old and the
	// 8-day-old contributions predate it strictly; only the 3.00 one was
	// added within the window.
	if report.Added.Fixed() != "3.00" {
		t.Errorf("added = %s, want 3.00", report.Added.Fixed())
	}

	// Each existing contribution earns its 7 in-window days of simple
	// interest: 1.00 * dr * (22-15) plus 2.00 * dr * (8-1).
	dailyRate := rate5.Div(daysPerYear)
	seven := decimal.NewFromInt(7)
	want := dailyRate.Mul(seven).Add(dailyRate.Mul(seven).Mul(decimal.NewFromInt(2)))
	if !report.Growth.Decimal().Equal(want) {
		t.Errorf("growth = %s, want %s", report.Growth.Decimal(), want)
	}
	if !report.Growth.IsPositive() {
		t.Errorf("growth = %s, want > 0", report.Growth.Decimal())
	}

	// And it must stay strictly below the existing set's full growth to
	// date (22 and 8 days held respectively).
	full := dailyRate.Mul(decimal.NewFromInt(22)).Add(dailyRate.Mul(decimal.NewFromInt(8)).Mul(decimal.NewFromInt(2)))
	if !report.Growth.Decimal().LessThan(full) {
		t.Errorf("incremental growth %s not below full growth %s", report.Growth.Decimal(), full)
	}
}

func TestPeriodGrowth_ExistingIsStrictlyBeforeWindowStart(t *testing.T) {
	asOf := NewDate(2025, time.June, 23)
	// One day older than the window start: existing, so its one in-window
	// day of interest counts as period growth.
	dayBefore := contribOn(t, Week.Start(asOf).Add(-1), "2.00")

	report, err := PeriodGrowth([]Contribution{dayBefore}, rate5, Week, asOf)
	if err != nil {
		t.Fatalf("PeriodGrowth() error = %v", err)
	}
	if !report.Added.IsZero() {
		t.Errorf("added = %s, want 0", report.Added.Fixed())
	}

	dailyRate := rate5.Div(daysPerYear)
	want := dailyRate.Mul(decimal.NewFromInt(7)).Mul(decimal.NewFromInt(2))
	if !report.Growth.Decimal().Equal(want) {
		t.Errorf("growth = %s, want %s", report.Growth.Decimal(), want)
	}
}

func TestPeriodGrowth_BoundaryContributionCountsAsAdded(t *testing.T) {
	asOf := NewDate(2025, time.June, 23)
	// Contributed exactly on the window start day: not strictly before, so it
	// belongs to the "added" partition.
	onBoundary := contribOn(t, Week.Start(asOf), "4.00")

	report, err := PeriodGrowth([]Contribution{onBoundary}, rate5, Week, asOf)
	if err != nil {
		t.Fatalf("PeriodGrowth() error = %v", err)
	}
	if report.Added.Fixed() != "4.00" {
		t.Errorf("added = %s, want 4.00", report.Added.Fixed())
	}
	if !report.Growth.IsZero() {
		t.Errorf("growth = %s, want 0", report.Growth.Decimal())
	}
}

func TestPeriodGrowth_BalanceMatchesFullValuation(t *testing.T) {
	asOf := NewDate(2025, time.June, 23)
	contributions := periodScenario(t, asOf)

	report, err := PeriodGrowth(contributions, rate5, Week, asOf)
	if err != nil {
		t.Fatalf("PeriodGrowth() error = %v", err)
	}
	valuation, err := Valuate(contributions, rate5, asOf)
	if err != nil {
		t.Fatalf("Valuate() error = %v", err)
	}
	if !report.Balance.Equal(valuation.Value) {
		t.Errorf("balance = %s, want %s", report.Balance.Decimal(), valuation.Value.Decimal())
	}
}
