package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/intelligence"
)

// FormatWeeklySummary renders a stored team summary.
func FormatWeeklySummary(s *domain.WeeklySummary) string {
	var b strings.Builder

	b.WriteString(s.SummaryText)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d   %s %s\n", Dim("Reports included:"), s.ReportsIncluded, Dim("Generated by:"), s.GeneratedBy)
	if s.UsedFallback {
		b.WriteString(StyleYellow.Render("Generated without AI assistance (deterministic digest)."))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s %s", Dim("Updated:"), Timestamp(s.UpdatedAt))

	return RenderBox(fmt.Sprintf("Team Summary - Week Ending %s", WeekDate(s.WeekEnding)), b.String())
}

var recognitionScoreLabels = map[int]string{
	1: "Needs Improvement",
	2: "Meets Expectations",
	3: "Exceeds Expectations",
	4: "Outstanding",
}

func writeRecognition(b *strings.Builder, framework string, r intelligence.Recognition) {
	if r.TeamMember == "" {
		fmt.Fprintf(b, "%s %s\n", StyleBold.Render(framework+":"), Dim("no standout this week"))
		return
	}
	fmt.Fprintf(b, "%s %s\n", StyleBold.Render(framework+":"), r.TeamMember)
	fmt.Fprintf(b, "  %s %s\n", Dim("Category:"), r.Category)
	label := recognitionScoreLabels[r.Score]
	fmt.Fprintf(b, "  %s %d (%s)\n", Dim("Score:"), r.Score, label)
	fmt.Fprintf(b, "  %s %s\n", Dim("Reasoning:"), r.Reasoning)
}

// FormatRecognition renders the weekly staff recognition picks.
func FormatRecognition(weekEnding time.Time, rec *intelligence.WeeklyRecognition) string {
	var b strings.Builder
	writeRecognition(&b, "ASCEND", rec.Ascend)
	b.WriteString("\n")
	writeRecognition(&b, "NORTH", rec.North)
	return RenderBox(fmt.Sprintf("Staff Recognition - Week Ending %s", WeekDate(weekEnding)), strings.TrimRight(b.String(), "\n"))
}
