package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/service"
)

// FormatWeekBoard renders the submission status of every staff member
// for one reporting week.
func FormatWeekBoard(board *service.WeekBoard, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(fmt.Sprintf("Week ending %s", WeekDate(board.WeekEnding))), WindowIndicator(board.Window, now))
	fmt.Fprintf(&b, "%s %d submitted, %d outstanding\n\n", Dim("Totals:"), board.Submitted(), board.Outstanding())

	writeBucket(&b, "Finalized", board.Finalized, func(r *domain.Report) string {
		if r.SubmittedAt != nil {
			return Dim("submitted " + Timestamp(*r.SubmittedAt))
		}
		return ""
	})
	writeBucket(&b, "Drafts", board.Drafts, nil)
	writeBucket(&b, "Unlocked", board.Unlocked, func(r *domain.Report) string { return Dim(r.AdminNote) })
	writeBucket(&b, "Admin Created", board.AdminCreated, func(r *domain.Report) string { return Dim(r.AdminNote) })

	if len(board.Missing) > 0 {
		b.WriteString(Header(fmt.Sprintf("Missing (%d)", len(board.Missing))))
		b.WriteString("\n")
		for _, member := range board.Missing {
			fmt.Fprintf(&b, "  %s %s %s\n", StyleRed.Render("✗"), member.DisplayName(), Dim(member.Email))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeBucket(b *strings.Builder, title string, reports []*domain.Report, detail func(*domain.Report) string) {
	if len(reports) == 0 {
		return
	}
	b.WriteString(Header(fmt.Sprintf("%s (%d)", title, len(reports))))
	b.WriteString("\n")
	for _, rep := range reports {
		line := fmt.Sprintf("  %s", rep.TeamMember)
		if detail != nil {
			if d := detail(rep); d != "" {
				line += "  " + d
			}
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}
