package spare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RiskProfile selects an annual return rate from the growth profile table.
// The engine itself never looks a profile up: it only ever receives the
// resolved rate, so callers remain free to inject any rate source.
type RiskProfile string

const (
	Conservative RiskProfile = "conservative"
	Balanced     RiskProfile = "balanced"
	Aggressive   RiskProfile = "aggressive"
)

// growthRates maps each risk tier to its annual return rate.
var growthRates = map[RiskProfile]decimal.Decimal{
	Conservative: decimal.RequireFromString("0.05"),
	Balanced:     decimal.RequireFromString("0.08"),
	Aggressive:   decimal.RequireFromString("0.12"),
}

// AnnualRate returns the annual return rate for the profile.
func (p RiskProfile) AnnualRate() decimal.Decimal { return growthRates[p] }

func (p RiskProfile) String() string { return string(p) }

// ParseRiskProfile parses a risk tier token.
func ParseRiskProfile(s string) (RiskProfile, error) {
	p := RiskProfile(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := growthRates[p]; !ok {
		return Balanced, fmt.Errorf("unknown risk profile %q (want conservative, balanced or aggressive)", s)
	}
	return p, nil
}

// ParseRate parses an annual rate given directly as a decimal string and
// validates it against [0, 1].
func ParseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidRate, s)
	}
	if err := checkRate(rate); err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}
