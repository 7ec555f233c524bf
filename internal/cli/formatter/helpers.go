package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// WeekDate formats a week-ending date for display.
func WeekDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Timestamp formats an instant in the local zone for display.
func Timestamp(t time.Time) string {
	return t.Local().Format("Mon Jan 2, 2006 3:04 PM")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Countdown renders the time remaining until t, colored by urgency, or
// how long ago it was.
func Countdown(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	if diff < 0 {
		return StyleRed.Render(fmt.Sprintf("%s ago", formatDuration(-diff)))
	}
	text := fmt.Sprintf("in %s", formatDuration(diff))
	if diff < 6*time.Hour {
		return StyleRed.Render(text)
	}
	if diff < 24*time.Hour {
		return StyleYellow.Render(text)
	}
	return StyleGreen.Render(text)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
