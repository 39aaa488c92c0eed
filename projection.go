package spare

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// compoundPrecision is the number of fractional digits carried through
// exponentiation. Interim values keep well more precision than the currency
// scale so that rounding only ever happens at the rendering edge.
const compoundPrecision = 16

var (
	one          = decimal.NewFromInt(1)
	monthsOfYear = decimal.NewFromInt(12)
)

// ProjectionSet holds future values of the current balance plus a recurring
// monthly contribution, at the standard horizons.
type ProjectionSet struct {
	Balance Money // starting balance
	Monthly Money // recurring monthly contribution
	Rate    decimal.Decimal
	Year1   Money
	Year3   Money
	Year5   Money
	Year10  Money
}

// CompoundInterest returns the future value of a lump sum compounded
// `frequency` times per year over the given number of years:
// P * (1 + r/n)^(n*t). Years may be fractional.
func CompoundInterest(principal Money, rate decimal.Decimal, frequency int, years decimal.Decimal) (Money, error) {
	if principal.IsNegative() {
		return Money{}, errInvalidAmount(principal.Fixed())
	}
	if err := checkRate(rate); err != nil {
		return Money{}, err
	}
	if frequency <= 0 {
		return Money{}, fmt.Errorf("compounding frequency must be positive, got %d", frequency)
	}
	if years.IsNegative() {
		return Money{}, fmt.Errorf("years must not be negative, got %s", years)
	}

	n := decimal.NewFromInt(int64(frequency))
	factor, err := one.Add(rate.Div(n)).PowWithPrecision(n.Mul(years), compoundPrecision)
	if err != nil {
		return Money{}, fmt.Errorf("could not compound over %s years: %w", years, err)
	}
	return principal.Mul(factor), nil
}

// FutureValue returns the projected value after the given number of years of
// a starting balance plus an ordinary annuity of monthly contributions, both
// compounded monthly.
//
// With a zero rate there is nothing to compound: the result is simply the
// balance plus 12*t contributions.
func FutureValue(balance, monthly Money, rate decimal.Decimal, years decimal.Decimal) (Money, error) {
	if balance.IsNegative() {
		return Money{}, errInvalidAmount(balance.Fixed())
	}
	if monthly.IsNegative() {
		return Money{}, errInvalidAmount(monthly.Fixed())
	}
	if err := checkRate(rate); err != nil {
		return Money{}, err
	}

	months := monthsOfYear.Mul(years)
	if rate.IsZero() {
		return balance.Add(monthly.Mul(months)), nil
	}

	monthlyRate := rate.Div(monthsOfYear)
	factor, err := one.Add(monthlyRate).PowWithPrecision(months, compoundPrecision)
	if err != nil {
		return Money{}, fmt.Errorf("could not compound over %s years: %w", years, err)
	}

	lump := balance.Mul(factor)
	annuity := monthly.Mul(factor.Sub(one).Div(monthlyRate))
	return lump.Add(annuity), nil
}

// Projections computes future values at the 1, 3, 5 and 10 year horizons.
// It never inspects individual contributions: only the aggregate balance and
// the planned monthly contribution enter the closed-form calculation.
func Projections(balance, monthly Money, rate decimal.Decimal) (*ProjectionSet, error) {
	set := &ProjectionSet{Balance: balance, Monthly: monthly, Rate: rate}

	for _, horizon := range []struct {
		years int
		out   *Money
	}{
		{1, &set.Year1},
		{3, &set.Year3},
		{5, &set.Year5},
		{10, &set.Year10},
	} {
		fv, err := FutureValue(balance, monthly, rate, decimal.NewFromInt(int64(horizon.years)))
		if err != nil {
			return nil, fmt.Errorf("could not project %d years ahead: %w", horizon.years, err)
		}
		*horizon.out = fv
	}
	return set, nil
}
