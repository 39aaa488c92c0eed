package spare

import (
	"fmt"
	"sort"
)

// Contribution is one spare-change amount tied to a point in time.
//
// Contributions are supplied by the caller and never mutated by the engine.
// No ordering is assumed: every computation tolerates contributions in
// arbitrary order.
type Contribution struct {
	On     Date   // day the round-up occurred
	Amount Money  // always positive
	Source string // free-text description of the originating purchase, may be empty
}

// NewContribution validates and builds a contribution.
func NewContribution(on Date, amount Money, source string) (Contribution, error) {
	if err := checkPositiveAmount(amount); err != nil {
		return Contribution{}, fmt.Errorf("contribution on %s: %w", on, err)
	}
	if on.IsZero() {
		return Contribution{}, fmt.Errorf("contribution has no date")
	}
	return Contribution{On: on, Amount: amount, Source: source}, nil
}

// Ledger is an append-only collection of contributions. It is the caller
// side container: computations take plain slices and never hold on to one.
type Ledger struct {
	contributions []Contribution
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Append adds contributions to the ledger.
func (l *Ledger) Append(contributions ...Contribution) {
	l.contributions = append(l.contributions, contributions...)
}

// Len returns the number of contributions.
func (l *Ledger) Len() int { return len(l.contributions) }

// Contributions returns a copy of the ledger's contributions, so that
// callers can freely pass it to computations without aliasing the ledger.
func (l *Ledger) Contributions() []Contribution {
	out := make([]Contribution, len(l.contributions))
	copy(out, l.contributions)
	return out
}

// Total returns the sum of all contribution amounts.
func (l *Ledger) Total() Money {
	total := M(0, "")
	for _, c := range l.contributions {
		total = total.Add(c.Amount)
	}
	return total
}

// Fmt returns the contributions in canonical order: ascending by date,
// ties kept in insertion order.
func (l *Ledger) Fmt() []Contribution {
	out := l.Contributions()
	sort.SliceStable(out, func(i, j int) bool { return out[i].On.Before(out[j].On) })
	return out
}

// onOrBefore returns the subset of contributions that existed on day d.
func onOrBefore(contributions []Contribution, d Date) []Contribution {
	var out []Contribution
	for _, c := range contributions {
		if !c.On.After(d) {
			out = append(out, c)
		}
	}
	return out
}

// sumBetween returns the total amount contributed strictly after 'after' and
// up to 'to' inclusive.
func sumBetween(contributions []Contribution, after, to Date, currency string) Money {
	total := M(0, currency)
	for _, c := range contributions {
		if c.On.After(after) && !c.On.After(to) {
			total = total.Add(c.Amount)
		}
	}
	return total
}
