package addressbook

import (
	"assistant/pkg/domain"
	"time"
)

// DefaultUpcomingDays is the size of the window UpcomingBirthdays looks ahead.
const DefaultUpcomingDays = 7

// Congratulation names a contact and the working day to congratulate them on.
type Congratulation struct {
	Name string
	Date time.Time
}

func (c Congratulation) String() string {
	return c.Name + ": " + c.Date.Format(domain.BirthdayLayout)
}

// UpcomingBirthdays returns the contacts whose next birthday falls within
// [today, today+days). Only the calendar date of today is used. A birthday on
// a weekend is congratulated on the following Monday. A non-positive days
// falls back to DefaultUpcomingDays.
func (b *Book) UpcomingBirthdays(today time.Time, days int) []Congratulation {
	if days <= 0 {
		days = DefaultUpcomingDays
	}

	loc := today.Location()
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, days)

	var out []Congratulation
	for _, rec := range b.Records() {
		if rec.Birthday == nil {
			continue
		}

		next := rec.Birthday.In(y, loc)
		if next.Before(start) {
			next = rec.Birthday.In(y+1, loc)
		}
		if next.Before(end) {
			out = append(out, Congratulation{Name: rec.Name, Date: NextWorkday(next)})
		}
	}

	return out
}

// NextWorkday moves a Saturday or Sunday forward to the following Monday.
// Other days are returned unchanged.
func NextWorkday(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}
