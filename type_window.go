package spare

import (
	"fmt"
	"strings"
)

// Window is a look-back reporting window ending at the reference date.
type Window int

const (
	Week    Window = iota // 7d
	Month                 // 30d
	Quarter               // 90d
	Year                  // 1y
)

// Days returns the window length in days.
func (w Window) Days() int {
	switch w {
	case Week:
		return 7
	case Month:
		return 30
	case Quarter:
		return 90
	case Year:
		return 365
	default:
		panic(fmt.Sprintf("unknown window %d", w))
	}
}

// Step returns the sampling granularity in days for history generation:
// daily for windows up to a quarter, weekly for a year.
func (w Window) Step() int {
	if w == Year {
		return 7
	}
	return 1
}

// Start returns the first day of the window ending at asOf.
func (w Window) Start(asOf Date) Date { return asOf.Add(-w.Days()) }

func (w Window) String() string {
	switch w {
	case Week:
		return "7d"
	case Month:
		return "30d"
	case Quarter:
		return "90d"
	case Year:
		return "1y"
	default:
		panic(fmt.Sprintf("unknown window %d", w))
	}
}

// ParseWindow parses a window token. Unknown tokens are rejected with
// ErrInvalidPeriod rather than silently falling back to a default.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "7d", "week", "weekly":
		return Week, nil
	case "30d", "month", "monthly":
		return Month, nil
	case "90d", "quarter", "quarterly":
		return Quarter, nil
	case "1y", "year", "yearly":
		return Year, nil
	default:
		return Month, fmt.Errorf("%w: %q (want 7d, 30d, 90d or 1y)", ErrInvalidPeriod, s)
	}
}
