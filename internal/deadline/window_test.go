package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/domain"
)

// central builds an instant in the organizational zone.
func central(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, OrgZone())
}

func TestResolveActiveWeek_SaturdayMorning(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	// 2024-03-02 is a Saturday.
	now := central(2024, time.March, 2, 10, 0)

	w := ResolveActiveWeek(now, cfg)

	assert.Equal(t, central(2024, time.March, 2, 0, 0), w.WeekEnding)
	assert.Equal(t, central(2024, time.March, 4, 16, 0), w.DeadlineAt)
	assert.Equal(t, central(2024, time.March, 5, 8, 0), w.GraceEndAt)
	assert.False(t, w.DeadlinePassed)
	assert.False(t, w.InGracePeriod)
}

func TestResolveActiveWeek_RollsOverAfterGraceEnd(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	// One hour past the 2024-03-02 window's grace end.
	now := central(2024, time.March, 5, 9, 0)

	w := ResolveActiveWeek(now, cfg)

	assert.Equal(t, central(2024, time.March, 9, 0, 0), w.WeekEnding)
	assert.Equal(t, central(2024, time.March, 11, 16, 0), w.DeadlineAt)
	assert.False(t, w.DeadlinePassed, "rolled-over window is open, not passed")
}

func TestResolveActiveWeek_RolloverBoundary(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	graceEnd := central(2024, time.March, 5, 8, 0)

	before := ResolveActiveWeek(graceEnd.Add(-time.Minute), cfg)
	assert.Equal(t, central(2024, time.March, 2, 0, 0), before.WeekEnding)
	assert.True(t, before.InGracePeriod)

	after := ResolveActiveWeek(graceEnd.Add(time.Minute), cfg)
	assert.Equal(t, central(2024, time.March, 9, 0, 0), after.WeekEnding)
	assert.False(t, after.InGracePeriod)
}

func TestResolveActiveWeek_ExactDeadlineIsOnTime(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	now := central(2024, time.March, 4, 16, 0)

	w := ResolveActiveWeek(now, cfg)

	assert.Equal(t, central(2024, time.March, 2, 0, 0), w.WeekEnding)
	assert.False(t, w.InGracePeriod, "exactly at the deadline is still on time")
	assert.False(t, w.DeadlinePassed)
}

func TestResolveActiveWeek_ExactGraceEndStillOpen(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	now := central(2024, time.March, 5, 8, 0)

	w := ResolveActiveWeek(now, cfg)

	assert.Equal(t, central(2024, time.March, 2, 0, 0), w.WeekEnding, "no rollover exactly at grace end")
	assert.True(t, w.InGracePeriod)
}

func TestResolveActiveWeek_Deterministic(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	now := central(2024, time.March, 3, 14, 30)

	first := ResolveActiveWeek(now, cfg)
	second := ResolveActiveWeek(now, cfg)

	assert.Equal(t, first, second)
}

func TestResolveActiveWeek_MidweekUsesPrecedingSaturday(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	// Wednesday 2024-03-06, past the 03-02 window's grace end.
	now := central(2024, time.March, 6, 12, 0)

	w := ResolveActiveWeek(now, cfg)
	assert.Equal(t, central(2024, time.March, 9, 0, 0), w.WeekEnding)

	// Sunday 2024-03-03, still inside the 03-02 window.
	w = ResolveActiveWeek(central(2024, time.March, 3, 12, 0), cfg)
	assert.Equal(t, central(2024, time.March, 2, 0, 0), w.WeekEnding)
}

func TestBoundaryOrdering(t *testing.T) {
	// Every valid deadline day keeps saturday <= deadline <= grace end.
	for day := 0; day <= 6; day++ {
		cfg := domain.DeadlineConfig{DayOfWeek: day, Hour: 9, Minute: 30, GraceHours: 24}
		for _, now := range []time.Time{
			central(2024, time.March, 2, 0, 0),
			central(2024, time.March, 5, 23, 59),
			central(2024, time.July, 17, 12, 0),
		} {
			w := ResolveActiveWeek(now, cfg)
			require.False(t, w.DeadlineAt.Before(w.WeekEnding), "day=%d now=%s", day, now)
			require.False(t, w.GraceEndAt.Before(w.DeadlineAt), "day=%d now=%s", day, now)
		}
	}
}

func TestDeadlineOffsets(t *testing.T) {
	saturday := central(2024, time.March, 2, 0, 0)
	cases := []struct {
		dayOfWeek int
		wantDay   int // March day the deadline lands on
	}{
		{0, 4}, // Monday
		{1, 5},
		{2, 6},
		{3, 7},
		{4, 8},
		{5, 9}, // Saturday deadline lands a full week out
		{6, 3}, // Sunday lands the day after
	}
	for _, tc := range cases {
		cfg := domain.DeadlineConfig{DayOfWeek: tc.dayOfWeek, Hour: 12, Minute: 0, GraceHours: 0}
		w := ResolveWeekWindowForDate(saturday, saturday, cfg)
		assert.Equal(t, central(2024, time.March, tc.wantDay, 12, 0), w.DeadlineAt, "day_of_week=%d", tc.dayOfWeek)
	}
}

func TestResolveWeekWindowForDate_FixedSaturday(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	weekEnding := central(2024, time.March, 2, 0, 0)

	// Long after the window closed the Saturday stays fixed, unlike the
	// active-week path which would have rolled over.
	now := central(2024, time.March, 20, 12, 0)
	w := ResolveWeekWindowForDate(weekEnding, now, cfg)

	assert.Equal(t, weekEnding, w.WeekEnding)
	assert.True(t, w.DeadlinePassed)
	assert.False(t, w.InGracePeriod)
	assert.True(t, w.SubmissionClosed(now))

	active := ResolveActiveWeek(now, cfg)
	assert.NotEqual(t, w.WeekEnding, active.WeekEnding)
}

func TestResolveWeekWindowForDate_GracePeriod(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	weekEnding := central(2024, time.March, 2, 0, 0)
	now := central(2024, time.March, 4, 17, 0)

	w := ResolveWeekWindowForDate(weekEnding, now, cfg)

	assert.True(t, w.DeadlinePassed, "for-date windows report lateness against the deadline itself")
	assert.True(t, w.InGracePeriod)
	assert.False(t, w.SubmissionClosed(now))
}

func TestSubmissionClosed(t *testing.T) {
	cfg := domain.DefaultDeadlineConfig()
	weekEnding := central(2024, time.March, 2, 0, 0)
	w := ResolveWeekWindowForDate(weekEnding, weekEnding, cfg)

	assert.False(t, w.SubmissionClosed(central(2024, time.March, 4, 15, 59)))
	assert.False(t, w.SubmissionClosed(central(2024, time.March, 5, 8, 0)))
	assert.True(t, w.SubmissionClosed(central(2024, time.March, 5, 8, 1)))
}
