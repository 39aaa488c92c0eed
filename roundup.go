package spare

import "fmt"

// RoundUp returns the spare change left when a purchase amount is rounded up
// to the next multiple of unit.
//
// The rounding is defined as "round up to the *next* unit": when the amount
// is already an exact multiple of the unit, the round-up is a full unit,
// never zero. This is a deliberate policy of the tracker, not a bug.
func RoundUp(amount, unit Money) (Money, error) {
	if err := checkPositiveAmount(amount); err != nil {
		return Money{}, err
	}
	if !unit.IsPositive() {
		return Money{}, fmt.Errorf("rounding unit: %w", errInvalidAmount(unit.Fixed()))
	}

	remainder := amount.Decimal().Mod(unit.Decimal())
	if remainder.IsZero() {
		return unit, nil
	}
	return NewMoney(unit.Decimal().Sub(remainder), cur(amount, unit)), nil
}

// DefaultUnit returns the default rounding unit: one major unit of the given
// currency.
func DefaultUnit(currency string) Money { return M(1, currency) }
