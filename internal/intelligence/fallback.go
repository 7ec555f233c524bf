package intelligence

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// FallbackSummarySentence stands in for an individual summary when no
// model output is available.
const FallbackSummarySentence = "This week demonstrated continued professional development and engagement with various activities that support student success and departmental goals."

// DeterministicTeamSummary builds a team summary from the reports
// alone. It is used whenever the model is disabled or fails.
func DeterministicTeamSummary(weekEnding time.Time, reports []*domain.Report) string {
	if len(reports) == 0 {
		return fmt.Sprintf("No finalized reports were available for the week ending %s.",
			weekEnding.Format("January 2, 2006"))
	}

	var successes, challenges, ratingTotal int
	names := make([]string, 0, len(reports))
	for _, rep := range reports {
		items := rep.Body.Items()
		for _, it := range items {
			if it.Kind == domain.KindSuccess {
				successes++
			} else {
				challenges++
			}
		}
		ratingTotal += rep.WellBeingRating
		names = append(names, rep.TeamMember)
	}
	avg := float64(ratingTotal) / float64(len(reports))

	var b strings.Builder
	fmt.Fprintf(&b, "For the week ending %s, %d staff members submitted reports: %s. ",
		weekEnding.Format("January 2, 2006"), len(reports), strings.Join(names, ", "))
	fmt.Fprintf(&b, "Across the team, %d successes and %d challenges were recorded. ",
		successes, challenges)
	fmt.Fprintf(&b, "The average staff well-being rating was %.1f out of 5.", avg)
	return b.String()
}
