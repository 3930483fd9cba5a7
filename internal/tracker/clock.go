package tracker

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone  = "America/New_York"
	DefaultResetHour = 1

	// dayLayout matches JavaScript's Date.toDateString so records written by
	// the web version of the tracker stay readable.
	dayLayout = "Mon Jan 02 2006"
)

// Day identifies a voting day, e.g. "Fri Oct 16 2026".
type Day string

func (d Day) String() string { return string(d) }

// Clock computes voting days against a fixed reference timezone. A voting day
// starts at ResetHour local time, not at midnight.
type Clock struct {
	loc       *time.Location
	resetHour int
	now       func() time.Time
}

func NewClock(timezone string, resetHour int) (Clock, error) {
	if resetHour < 0 || resetHour > 23 {
		return Clock{}, fmt.Errorf("reset hour %d out of range 0-23", resetHour)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Clock{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return Clock{loc: loc, resetHour: resetHour, now: time.Now}, nil
}

func defaultClock() Clock {
	c, err := NewClock(DefaultTimezone, DefaultResetHour)
	if err != nil {
		// tzdata is embedded, so this only happens with a broken build.
		panic(err)
	}
	return c
}

// WithNow returns a copy of the clock that reads the wall time from now.
func (c Clock) WithNow(now func() time.Time) Clock {
	c.now = now
	return c
}

func (c Clock) Location() *time.Location { return c.loc }

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// ResetDay returns the voting day that t belongs to. Instants before the
// reset hour count towards the previous calendar day.
func (c Clock) ResetDay(t time.Time) Day {
	local := t.In(c.loc)
	y, m, d := local.Date()
	if local.Hour() < c.resetHour {
		d--
	}
	// Noon keeps the normalised date clear of DST gaps.
	return Day(time.Date(y, m, d, 12, 0, 0, 0, c.loc).Format(dayLayout))
}

// CurrentResetDay is ResetDay at the clock's current time.
func (c Clock) CurrentResetDay() Day {
	return c.ResetDay(c.Now())
}

// NextReset returns today's reset instant if it is still ahead of t,
// otherwise tomorrow's.
func (c Clock) NextReset(t time.Time) time.Time {
	local := t.In(c.loc)
	y, m, d := local.Date()
	today := time.Date(y, m, d, c.resetHour, 0, 0, 0, c.loc)
	if today.After(t) {
		return today
	}
	return time.Date(y, m, d+1, c.resetHour, 0, 0, 0, c.loc)
}

func (c Clock) TimeUntilNextReset(t time.Time) time.Duration {
	return c.NextReset(t).Sub(t)
}

// FormatCountdown renders d as "3 hours and 1 minute" or "45 minutes".
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%d %s and %d %s", hours, plural(hours, "hour"), minutes, plural(minutes, "minute"))
	}
	return fmt.Sprintf("%d %s", minutes, plural(minutes, "minute"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
