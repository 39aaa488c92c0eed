package spare

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GrowthCap limits the growth of a single contribution to a fraction of its
// principal. This is an anti-runaway guard, not a market model; it is a
// tunable policy constant and defaults to the reference behavior of 30%.
var GrowthCap = decimal.RequireFromString("0.30")

// daysPerYear converts an annual rate into a simple (non-compounding) daily
// rate.
var daysPerYear = decimal.NewFromInt(365)

// GrowthReport is the time-weighted valuation of a contribution set as of a
// reference date.
type GrowthReport struct {
	AsOf       Date
	Rate       decimal.Decimal // annual rate the valuation was computed with
	Principal  Money           // sum of all contributions
	Growth     Money           // sum of capped per-contribution growth
	Value      Money           // Principal + Growth, exactly
	GrowthRate Percent         // Growth / Principal
	Lines      []GrowthLine    // one row per contribution
}

// GrowthLine is the valuation of a single contribution.
type GrowthLine struct {
	Contribution
	DaysHeld int
	Growth   Money
	Value    Money
}

// Valuate computes how much each contribution is worth as of the given date.
//
// Each contribution earns simple daily interest (annual rate / 365) for every
// whole day it has been held, capped at GrowthCap of its own principal.
// Contributions dated after asOf have held for zero days and earn nothing.
//
// An empty contribution set yields an all-zero report, not an error.
func Valuate(contributions []Contribution, rate decimal.Decimal, asOf Date) (*GrowthReport, error) {
	if err := checkRate(rate); err != nil {
		return nil, fmt.Errorf("could not valuate: %w", err)
	}

	report := &GrowthReport{
		AsOf:  asOf,
		Rate:  rate,
		Lines: make([]GrowthLine, 0, len(contributions)),
	}

	dailyRate := rate.Div(daysPerYear)

	principal := decimal.Zero
	growth := decimal.Zero
	currency := ""
	for _, c := range contributions {
		if err := checkPositiveAmount(c.Amount); err != nil {
			return nil, fmt.Errorf("contribution on %s: %w", c.On, err)
		}
		currency = cur(M(0, currency), c.Amount)

		days := asOf.Sub(c.On)
		if days < 0 {
			days = 0
		}

		raw := c.Amount.Decimal().Mul(dailyRate).Mul(decimal.NewFromInt(int64(days)))
		capped := c.Amount.Decimal().Mul(GrowthCap)
		if raw.GreaterThan(capped) {
			raw = capped
		}

		principal = principal.Add(c.Amount.Decimal())
		growth = growth.Add(raw)

		report.Lines = append(report.Lines, GrowthLine{
			Contribution: c,
			DaysHeld:     days,
			Growth:       NewMoney(raw, c.Amount.Currency()),
			Value:        NewMoney(c.Amount.Decimal().Add(raw), c.Amount.Currency()),
		})
	}

	if currency == "" {
		currency = DefaultCurrency
	}
	report.Principal = NewMoney(principal, currency)
	report.Growth = NewMoney(growth, currency)
	report.Value = NewMoney(principal.Add(growth), currency)
	report.GrowthRate = growthRatio(growth, principal)
	return report, nil
}

// growthRatio renders growth/principal as a percentage, 0 when there is no
// principal.
func growthRatio(growth, principal decimal.Decimal) Percent {
	if principal.IsZero() {
		return Percent(0)
	}
	return NewPercent(growth.Div(principal))
}
