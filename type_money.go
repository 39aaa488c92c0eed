package spare

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency used when none is specified.
// The engine assumes a single denomination; the currency only affects
// rendering.
const DefaultCurrency = "USD"

// Money represents a monetary value.
//
// The value is held as an exact decimal at full precision; rounding to the
// currency scale happens only when rendering.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// NewMoney wraps an exact decimal value in the given currency.
func NewMoney(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// ParseMoney parses a decimal string like "4.35" into a Money.
// Non-numeric input is reported as ErrInvalidAmount.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errInvalidAmount(s)
	}
	return Money{value: d, cur: currency}, nil
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unreachable")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money value formatted with its currency symbol, rounded
// to the currency scale (e.g. "$4.35").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Fixed returns the bare decimal string at the currency scale (e.g. "4.35").
func (m Money) Fixed() string {
	return m.value.StringFixed(int32(m.currency().Fraction))
}

// SignedString returns the string representation of the money value with a
// sign. 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Decimal returns the exact underlying value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Currency() string             { return m.cur }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n decimal.Decimal) Money  { return Money{value: m.value.Mul(n), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
