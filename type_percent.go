package spare

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a rendered growth rate. Rate outputs are uniformly formatted
// with 2 decimal places.
type Percent float64

// NewPercent converts an exact ratio (e.g. 0.0375) into a Percent (3.75%).
func NewPercent(ratio decimal.Decimal) Percent {
	return Percent(ratio.Shift(2).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
