// Package spare provides the calculation engine behind a spare-change
// savings tracker: it values a set of date-stamped round-up contributions
// under a configurable annual return rate.
//
// The core functionalities include:
//   - Round-Up Calculation: the spare change left when a purchase amount is
//     rounded up to the next unit.
//   - Time-Weighted Valuation: each contribution grows with simple daily
//     interest for the days it has been held, capped per contribution.
//   - History Generation: a chronological series of valuations suitable for
//     charting a look-back window.
//   - Period Growth Analysis: the share of a window's balance change that is
//     genuine growth of pre-existing principal, as opposed to freshly added
//     principal.
//   - Compound Projections: closed-form future values for a balance plus a
//     recurring monthly contribution.
//
// All computations use exact base-10 decimal arithmetic; binary floating
// point is never used for monetary values. Every function is pure: given the
// same contributions, rate and reference date it returns the same result,
// which keeps reports reproducible and charts stable across requests.
//
// This package serves as the foundational logic for the `scs` command-line
// tool; persistence, import and rendering live in the surrounding packages.
package spare
