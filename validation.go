package spare

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func errInvalidAmount(got any) error {
	return fmt.Errorf("%w: %v (want a positive number)", ErrInvalidAmount, got)
}

// checkPositiveAmount rejects zero and negative monetary inputs.
func checkPositiveAmount(m Money) error {
	if !m.IsPositive() {
		return errInvalidAmount(m.Fixed())
	}
	return nil
}

// checkRate validates an annual rate against the [0, 1] interval.
func checkRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s (want a decimal within [0, 1])", ErrInvalidRate, rate)
	}
	return nil
}
