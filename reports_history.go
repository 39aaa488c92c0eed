package spare

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HistoryReport is a chronological series of valuations over a look-back
// window, suitable for a line or area chart.
type HistoryReport struct {
	Window Window
	Rate   decimal.Decimal
	Points []HistoryPoint
}

// HistoryPoint is the portfolio as it would have been measured on one day.
type HistoryPoint struct {
	On         Date
	Value      Money   // balance as of that day
	Principal  Money   // contributions made up to that day
	Growth     Money   // growth earned up to that day
	GrowthRate Percent // Growth / Principal as of that day
	Added      Money   // contributed strictly after the previous sample, up to this one
}

// GenerateHistory samples the valuation of the contribution set at regular
// dates over the window ending at asOf: daily for windows up to 90 days,
// weekly for a year. The last sample always falls exactly on asOf.
//
// Each point is recomputed from scratch over the contributions known at that
// date, so the cost is O(samples x contributions). At the expected scale
// (hundreds of contributions, at most a year of daily samples) this is cheap;
// an incremental accumulation over pre-sorted contributions would be the next
// step for much larger inputs, provided it keeps per-point results identical.
func GenerateHistory(contributions []Contribution, rate decimal.Decimal, w Window, asOf Date) (*HistoryReport, error) {
	if err := checkRate(rate); err != nil {
		return nil, fmt.Errorf("could not generate history: %w", err)
	}

	step := w.Step()
	first := w.Start(asOf)

	// Walk backwards from asOf so the series always ends on the reference
	// date, then reverse.
	var samples []Date
	for on := asOf; !on.Before(first); on = on.Add(-step) {
		samples = append(samples, on)
	}
	for i, j := 0, len(samples)-1; i < j; i, j = i+1, j-1 {
		samples[i], samples[j] = samples[j], samples[i]
	}

	report := &HistoryReport{
		Window: w,
		Rate:   rate,
		Points: make([]HistoryPoint, 0, len(samples)),
	}

	currency := DefaultCurrency
	if len(contributions) > 0 {
		currency = contributions[0].Amount.Currency()
	}

	for _, on := range samples {
		valuation, err := Valuate(onOrBefore(contributions, on), rate, on)
		if err != nil {
			return nil, fmt.Errorf("could not valuate on %s: %w", on, err)
		}
		report.Points = append(report.Points, HistoryPoint{
			On:         on,
			Value:      valuation.Value,
			Principal:  valuation.Principal,
			Growth:     valuation.Growth,
			GrowthRate: valuation.GrowthRate,
			Added:      sumBetween(contributions, on.Add(-step), on, currency),
		})
	}
	return report, nil
}
