package spare

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const day = 24 * time.Hour

// Date represents a date with day-level granularity.
//
// Contributions are stamped with a Date, and all valuations are computed "as
// of" a Date: day granularity is exact for the daily-interest model and keeps
// results independent of the time of day a report is requested.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.Time().Date()
	return d
}

// DateOf truncates an instant to its calendar day in UTC.
func DateOf(t time.Time) Date { return NewDate(t.UTC().Date()) }

// Today returns the current date.
func Today() Date { return DateOf(time.Now()) }

// Time returns the canonical instant for that day (midnight UTC).
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Sub returns the number of whole days from x to d. It is negative when d is
// before x.
func (d Date) Sub(x Date) int { return int(d.Time().Sub(x.Time()) / day) }

// String format the date in its standard format.
func (d Date) String() string { return d.Time().Format(DateFormat) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error. Reserved for tests and
// constants.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
