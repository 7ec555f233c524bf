package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/deadline"
)

// WindowIndicator returns a colored state label for a submission window.
func WindowIndicator(w deadline.WeekWindow, now time.Time) string {
	switch {
	case w.SubmissionClosed(now):
		return StyleRed.Render("● CLOSED")
	case w.InGracePeriod:
		return StyleYellow.Render("● GRACE PERIOD")
	default:
		return StyleGreen.Render("● OPEN")
	}
}

// FormatWindow renders the active reporting window with its deadline and
// grace boundaries.
func FormatWindow(w deadline.WeekWindow, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n", Bold(fmt.Sprintf("Week ending %s", WeekDate(w.WeekEnding))), WindowIndicator(w, now))
	fmt.Fprintf(&b, "  %s %s (%s)\n", Dim("Deadline:"), Timestamp(w.DeadlineAt), Countdown(w.DeadlineAt, now))
	fmt.Fprintf(&b, "  %s %s (%s)\n", Dim("Grace ends:"), Timestamp(w.GraceEndAt), Countdown(w.GraceEndAt, now))

	cfg := w.Config
	fmt.Fprintf(&b, "\n  %s %s at %02d:%02d, %dh grace\n",
		Dim("Policy:"), cfg.DayName(), cfg.Hour, cfg.Minute, cfg.GraceHours)

	return RenderBox("Reporting Window", strings.TrimRight(b.String(), "\n"))
}
