package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/domain"
)

// FormatReport renders a full report for terminal display.
func FormatReport(rep *domain.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(rep.TeamMember), StatusPill(rep.Status))
	fmt.Fprintf(&b, "%s %s   %s %s\n\n", Dim("Week ending:"), WeekDate(rep.WeekEnding), Dim("ID:"), TruncID(rep.ID))

	for _, key := range domain.SectionOrder {
		section := rep.Body[key]
		if len(section.Successes) == 0 && len(section.Challenges) == 0 {
			continue
		}
		b.WriteString(Header(domain.SectionLabels[key]))
		b.WriteString("\n")
		for _, e := range section.Successes {
			fmt.Fprintf(&b, "  %s %s%s\n", StyleGreen.Render("+"), e.Text, categoryTag(e))
		}
		for _, e := range section.Challenges {
			fmt.Fprintf(&b, "  %s %s%s\n", StyleRed.Render("-"), e.Text, categoryTag(e))
		}
		b.WriteString("\n")
	}

	writeField(&b, "Professional Development", rep.ProfessionalDevelopment)
	writeField(&b, "Key Topics / Lookahead", rep.KeyTopicsLookahead)
	writeField(&b, "Personal Check-In", rep.PersonalCheckIn)
	writeField(&b, "Concerns for Director", rep.DirectorConcerns)

	fmt.Fprintf(&b, "%s %s\n", Dim("Well-being:"), wellBeingBar(rep.WellBeingRating))

	if rep.IndividualSummary != "" {
		b.WriteString("\n")
		b.WriteString(Header("Summary"))
		fmt.Fprintf(&b, "\n%s\n", rep.IndividualSummary)
	}

	if rep.AdminNote != "" {
		fmt.Fprintf(&b, "\n%s %s\n", StylePurple.Render("Admin note:"), Dim(rep.AdminNote))
	}
	if rep.SubmittedAt != nil {
		fmt.Fprintf(&b, "%s %s\n", Dim("Submitted:"), Timestamp(*rep.SubmittedAt))
	}

	return strings.TrimRight(b.String(), "\n")
}

func categoryTag(e domain.Entry) string {
	if e.Ascend == "" && e.North == "" {
		return ""
	}
	return Dim(fmt.Sprintf("  [%s / %s]", e.Ascend, e.North))
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", Dim(label+":"), value)
}

func wellBeingBar(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	filled := strings.Repeat("●", rating)
	empty := strings.Repeat("○", 5-rating)
	style := StyleGreen
	if rating <= 2 {
		style = StyleRed
	} else if rating == 3 {
		style = StyleYellow
	}
	return style.Render(filled) + Dim(empty) + fmt.Sprintf(" %d/5", rating)
}

// FormatReportList renders a compact one-line-per-report listing.
func FormatReportList(reports []*domain.Report) string {
	var b strings.Builder
	for _, rep := range reports {
		fmt.Fprintf(&b, "%s  %-24s %s\n", TruncID(rep.ID), WeekDate(rep.WeekEnding), StatusPill(rep.Status))
	}
	return strings.TrimRight(b.String(), "\n")
}
