package deadline

import (
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// WeekWindow is one reporting period derived from a config and a reference
// time. It is computed on demand and never stored.
type WeekWindow struct {
	// WeekEnding is the Saturday identifying the period, at midnight in
	// the organizational zone.
	WeekEnding time.Time
	DeadlineAt time.Time
	GraceEndAt time.Time

	// DeadlinePassed and InGracePeriod are evaluated against the reference
	// time the window was resolved with. Their exact contracts differ
	// between ResolveActiveWeek and ResolveWeekWindowForDate; see those
	// functions.
	DeadlinePassed bool
	InGracePeriod  bool

	Config domain.DeadlineConfig
}

// pyWeekday converts Go's Sunday=0 weekday to the Monday=0 convention the
// deadline config uses.
func pyWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// baseSaturday returns the most recent Saturday on or before t's calendar
// date in the organizational zone (today if t falls on a Saturday).
func baseSaturday(t time.Time) time.Time {
	t = t.In(orgZone)
	daysBack := (pyWeekday(t) + 2) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-daysBack, 0, 0, 0, 0, orgZone)
}

// deadlineOffsetDays maps a Monday=0..Sunday=6 deadline day onto the number
// of calendar days after the week-ending Saturday: Sunday lands 1 day
// after, Monday 2 days, and so on up to the following Saturday at 7.
func deadlineOffsetDays(dayOfWeek int) int {
	return (dayOfWeek+1)%7 + 1
}

// boundaries computes the deadline and grace-end timestamps for the week
// ending on the given Saturday.
func boundaries(saturday time.Time, cfg domain.DeadlineConfig) (deadlineAt, graceEndAt time.Time) {
	offset := deadlineOffsetDays(cfg.DayOfWeek)
	deadlineAt = time.Date(saturday.Year(), saturday.Month(), saturday.Day()+offset,
		cfg.Hour, cfg.Minute, 0, 0, orgZone)
	graceEndAt = deadlineAt.Add(time.Duration(cfg.GraceHours) * time.Hour)
	return deadlineAt, graceEndAt
}

// ResolveActiveWeek computes the reporting week currently open for
// submission. Starting from the Saturday of now's week, it rolls forward
// exactly once when now is past that week's grace end, so the result is
// always an open window. A report submitted exactly at the deadline is on
// time; DeadlinePassed means now is past the grace end of the window
// before rollover, and is therefore always false for a rolled-over window.
func ResolveActiveWeek(now time.Time, cfg domain.DeadlineConfig) WeekWindow {
	now = now.In(orgZone)
	saturday := baseSaturday(now)
	deadlineAt, graceEndAt := boundaries(saturday, cfg)

	// Windows are recomputed from now on every call, never stored as a
	// running pointer; one rollover always suffices because the base
	// Saturday is at most six days behind now.
	if now.After(graceEndAt) {
		saturday = saturday.AddDate(0, 0, 7)
		deadlineAt, graceEndAt = boundaries(saturday, cfg)
	}

	return WeekWindow{
		WeekEnding:     saturday,
		DeadlineAt:     deadlineAt,
		GraceEndAt:     graceEndAt,
		DeadlinePassed: now.After(graceEndAt),
		InGracePeriod:  now.After(deadlineAt) && !now.After(graceEndAt),
		Config:         cfg,
	}
}

// ResolveWeekWindowForDate computes the window for a specific week-ending
// Saturday, with lateness evaluated against now. This is the alternate
// entry point used when acting on a non-current week: the Saturday is
// fixed by the caller and never rolls over, and DeadlinePassed here means
// now is past the deadline itself (the grace period is reported
// separately via InGracePeriod).
func ResolveWeekWindowForDate(weekEnding time.Time, now time.Time, cfg domain.DeadlineConfig) WeekWindow {
	now = now.In(orgZone)
	saturday := time.Date(weekEnding.Year(), weekEnding.Month(), weekEnding.Day(), 0, 0, 0, 0, orgZone)
	deadlineAt, graceEndAt := boundaries(saturday, cfg)

	return WeekWindow{
		WeekEnding:     saturday,
		DeadlineAt:     deadlineAt,
		GraceEndAt:     graceEndAt,
		DeadlinePassed: now.After(deadlineAt),
		InGracePeriod:  now.After(deadlineAt) && !now.After(graceEndAt),
		Config:         cfg,
	}
}

// SubmissionClosed reports whether a plain draft for this window may no
// longer be finalized: past the deadline and out of grace. Unlocked and
// admin-created reports bypass this check.
func (w WeekWindow) SubmissionClosed(now time.Time) bool {
	now = now.In(orgZone)
	return now.After(w.GraceEndAt)
}
