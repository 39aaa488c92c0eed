package spare

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PeriodReport splits the balance change over a look-back window into
// principal added during the window and growth earned by principal that
// already existed when the window opened.
type PeriodReport struct {
	Window     Window
	From       Date    // start of the window (exclusive for "existing")
	To         Date    // reference date
	Added      Money   // contributed within the window
	Growth     Money   // earned within the window by pre-existing principal
	GrowthRate Percent // Growth relative to the balance at window start
	Balance    Money   // current value of the whole set as of To
}

// PeriodGrowth reports how much of the window's balance change is genuine
// growth, as opposed to freshly added principal.
//
// Contributions are partitioned into those that existed strictly before the
// window start and those added during the window. Only the existing subset is
// valuated, at both window boundaries; the difference is the growth earned
// within the window. Comparing total balances over the full set instead would
// count every new contribution as "growth" and report impossible short-term
// returns, so the partition is load-bearing.
//
// When nothing existed before the window start both valuations are zero and
// the period growth is legitimately zero.
func PeriodGrowth(contributions []Contribution, rate decimal.Decimal, w Window, asOf Date) (*PeriodReport, error) {
	if err := checkRate(rate); err != nil {
		return nil, fmt.Errorf("could not analyze period: %w", err)
	}

	from := w.Start(asOf)

	var existing, added []Contribution
	for _, c := range contributions {
		if c.On.Before(from) {
			existing = append(existing, c)
		} else {
			added = append(added, c)
		}
	}

	atStart, err := Valuate(existing, rate, from)
	if err != nil {
		return nil, err
	}
	atEnd, err := Valuate(existing, rate, asOf)
	if err != nil {
		return nil, err
	}
	current, err := Valuate(contributions, rate, asOf)
	if err != nil {
		return nil, err
	}

	growth := atEnd.Growth.Sub(atStart.Growth)
	if growth.IsNegative() {
		growth = NewMoney(decimal.Zero, growth.Currency())
	}

	addedTotal := NewMoney(decimal.Zero, current.Value.Currency())
	for _, c := range added {
		addedTotal = addedTotal.Add(c.Amount)
	}

	return &PeriodReport{
		Window:     w,
		From:       from,
		To:         asOf,
		Added:      addedTotal,
		Growth:     growth,
		GrowthRate: growthRatio(growth.Decimal(), atStart.Value.Decimal()),
		Balance:    current.Value,
	}, nil
}
