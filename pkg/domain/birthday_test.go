package domain_test

import (
	"assistant/pkg/domain"
	"assistant/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseBirthday(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		day   int
		month time.Month
		year  int
		ok    bool
	}{
		{name: "regular date", in: "15.03.1990", day: 15, month: time.March, year: 1990, ok: true},
		{name: "leap day", in: "29.02.2000", day: 29, month: time.February, year: 2000, ok: true},
		{name: "end of year", in: "31.12.1985", day: 31, month: time.December, year: 1985, ok: true},
		{name: "impossible day", in: "31.02.2000", ok: false},
		{name: "leap day in non-leap year", in: "29.02.2001", ok: false},
		{name: "month out of range", in: "01.13.2000", ok: false},
		{name: "single digit day", in: "1.03.1990", ok: false},
		{name: "two digit year", in: "15.03.90", ok: false},
		{name: "iso layout", in: "1990-03-15", ok: false},
		{name: "slashes", in: "15/03/1990", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := domain.ParseBirthday(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, serrors.ErrInvalidFormat)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.day, b.Day())
			require.Equal(t, tc.month, b.Month())
			require.Equal(t, tc.year, b.Year())
			require.Equal(t, tc.in, b.String())
		})
	}
}

func TestBirthdayFromTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	b := domain.BirthdayFromTime(time.Date(1990, time.March, 15, 23, 30, 0, 0, loc))

	require.Equal(t, "15.03.1990", b.String())
	require.Equal(t, time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC), b.Time())
}

func TestBirthdayIn(t *testing.T) {
	leap, err := domain.ParseBirthday("29.02.2000")
	require.NoError(t, err)

	require.Equal(t, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), leap.In(2028, time.UTC))
	require.Equal(t, time.Date(2027, time.February, 28, 0, 0, 0, 0, time.UTC), leap.In(2027, time.UTC))
	require.Equal(t, time.Date(2100, time.February, 28, 0, 0, 0, 0, time.UTC), leap.In(2100, time.UTC))

	regular, err := domain.ParseBirthday("15.03.1990")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local), regular.In(2026, time.Local))
}
