package domain

import (
	"assistant/pkg/serrors"
	"time"
)

// BirthdayLayout is the textual form of a birthday: DD.MM.YYYY.
const BirthdayLayout = "02.01.2006"

// Birthday is a calendar date. The time of day is always midnight UTC.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses value using BirthdayLayout. Day and month must have two
// digits and the year four; impossible dates such as 31.02.2000 are rejected.
func ParseBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, serrors.With(serrors.ErrInvalidFormat, "invalid date format %q, use DD.MM.YYYY", value)
	}

	return Birthday{date: t}, nil
}

// BirthdayFromTime builds a Birthday from the calendar date of t, as seen in
// t's location.
func BirthdayFromTime(t time.Time) Birthday {
	y, m, d := t.Date()

	return Birthday{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Time returns the birthday as midnight UTC.
func (b Birthday) Time() time.Time { return b.date }

func (b Birthday) Day() int          { return b.date.Day() }
func (b Birthday) Month() time.Month { return b.date.Month() }
func (b Birthday) Year() int         { return b.date.Year() }

// In returns the occurrence of this birthday in the given year, in loc.
// Birthdays on 29 February fall on 28 February in non-leap years.
func (b Birthday) In(year int, loc *time.Location) time.Time {
	month, day := b.date.Month(), b.date.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}

	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
