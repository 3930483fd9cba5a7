package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYorkClock(t *testing.T) (Clock, *time.Location) {
	t.Helper()
	c, err := NewClock(DefaultTimezone, DefaultResetHour)
	require.NoError(t, err)
	return c, c.Location()
}

func TestResetDayBoundary(t *testing.T) {
	c, ny := newYorkClock(t)

	cases := []struct {
		name string
		at   time.Time
		want Day
	}{
		{"afternoon", time.Date(2026, 10, 16, 15, 0, 0, 0, ny), "Fri Oct 16 2026"},
		{"just before reset", time.Date(2026, 10, 16, 0, 59, 59, 0, ny), "Thu Oct 15 2026"},
		{"at reset", time.Date(2026, 10, 16, 1, 0, 0, 0, ny), "Fri Oct 16 2026"},
		{"midnight", time.Date(2026, 10, 16, 0, 0, 0, 0, ny), "Thu Oct 15 2026"},
		{"new year", time.Date(2027, 1, 1, 0, 30, 0, 0, ny), "Thu Dec 31 2026"},
		{"march first", time.Date(2026, 3, 1, 0, 10, 0, 0, ny), "Sat Feb 28 2026"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.ResetDay(tc.at))
		})
	}
}

func TestResetDayUsesReferenceZone(t *testing.T) {
	c, _ := newYorkClock(t)

	// 04:30 UTC is 00:30 EDT, still the previous voting day in New York.
	at := time.Date(2026, 10, 16, 4, 30, 0, 0, time.UTC)
	assert.Equal(t, Day("Thu Oct 15 2026"), c.ResetDay(at))

	at = time.Date(2026, 10, 16, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, Day("Fri Oct 16 2026"), c.ResetDay(at))
}

func TestTimeUntilNextReset(t *testing.T) {
	c, ny := newYorkClock(t)

	cases := []struct {
		name string
		at   time.Time
		want time.Duration
	}{
		{"before reset uses today", time.Date(2026, 10, 16, 0, 30, 0, 0, ny), 30 * time.Minute},
		{"exactly at reset uses tomorrow", time.Date(2026, 10, 16, 1, 0, 0, 0, ny), 24 * time.Hour},
		{"afternoon", time.Date(2026, 10, 16, 15, 0, 0, 0, ny), 10 * time.Hour},
		{"spring forward night is shorter", time.Date(2026, 3, 8, 1, 30, 0, 0, ny), 22*time.Hour + 30*time.Minute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.TimeUntilNextReset(tc.at))
		})
	}
}

func TestFallBackNight(t *testing.T) {
	c, ny := newYorkClock(t)

	// 2026-11-01 repeats 01:00-02:00 in New York. Both readings of 01:30 are
	// past the reset and count toward Sunday.
	edt := time.Date(2026, 11, 1, 5, 30, 0, 0, time.UTC)
	est := time.Date(2026, 11, 1, 6, 30, 0, 0, time.UTC)
	require.Equal(t, 1, edt.In(ny).Hour())
	require.Equal(t, 1, est.In(ny).Hour())

	assert.Equal(t, Day("Sun Nov 01 2026"), c.ResetDay(edt))
	assert.Equal(t, Day("Sun Nov 01 2026"), c.ResetDay(est))
	assert.Equal(t, 24*time.Hour+30*time.Minute, c.TimeUntilNextReset(edt))
	assert.Equal(t, 23*time.Hour+30*time.Minute, c.TimeUntilNextReset(est))

	// 00:30 EDT is still Saturday's voting day.
	assert.Equal(t, Day("Sat Oct 31 2026"), c.ResetDay(time.Date(2026, 11, 1, 4, 30, 0, 0, time.UTC)))
}

func TestCustomResetHour(t *testing.T) {
	c, err := NewClock("UTC", 0)
	require.NoError(t, err)
	at := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Day("Fri Oct 16 2026"), c.ResetDay(at))
	assert.Equal(t, 24*time.Hour, c.TimeUntilNextReset(at))
}

func TestNewClockRejectsBadInput(t *testing.T) {
	_, err := NewClock("Mars/Olympus", 1)
	assert.Error(t, err)
	_, err = NewClock("UTC", 24)
	assert.Error(t, err)
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "3 hours and 1 minute", FormatCountdown(3*time.Hour+time.Minute+30*time.Second))
	assert.Equal(t, "1 hour and 0 minutes", FormatCountdown(time.Hour))
	assert.Equal(t, "45 minutes", FormatCountdown(45*time.Minute))
	assert.Equal(t, "1 minute", FormatCountdown(time.Minute+59*time.Second))
	assert.Equal(t, "0 minutes", FormatCountdown(-time.Second))
}
