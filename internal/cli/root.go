package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/deadline"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reports   service.ReportService
	Admin     service.AdminService
	Status    service.StatusService
	Summaries service.TeamSummaryService
	Staff     repository.StaffRepo
	Settings  repository.SettingsRepo
	Resolver  *deadline.Resolver

	// Interactive is true when stdout is a terminal; wizard flows are
	// offered only then.
	Interactive bool
}

// NewRootCmd creates the top-level "pulse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pulse",
		Short: "Weekly staff reporting with deadline tracking",
	}

	root.AddCommand(
		newReportCmd(app),
		newWeekCmd(app),
		newAdminCmd(app),
		newSummaryCmd(app),
		newStaffCmd(app),
		newSettingsCmd(app),
	)

	return root
}

// resolveStaff finds a staff member by email, full ID, or ID prefix.
func resolveStaff(ctx context.Context, app *App, input string) (*domain.StaffMember, error) {
	if input == "" {
		return nil, fmt.Errorf("staff member is required (email or id)")
	}

	if strings.Contains(input, "@") {
		return app.Staff.GetByEmail(ctx, input)
	}

	members, err := app.Staff.List(ctx, false)
	if err != nil {
		return nil, err
	}

	for _, m := range members {
		if m.ID == input {
			return m, nil
		}
	}

	var matches []*domain.StaffMember
	for _, m := range members {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("staff member not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("staff id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveWeek parses a --week flag value, defaulting to the currently
// active reporting week.
func resolveWeek(ctx context.Context, app *App, weekStr string) (time.Time, error) {
	if weekStr == "" {
		window, err := app.Reports.ActiveWindow(ctx)
		if err != nil {
			return time.Time{}, err
		}
		return window.WeekEnding, nil
	}

	t, err := time.Parse("2006-01-02", weekStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week %q: use YYYY-MM-DD", weekStr)
	}
	if t.Weekday() != time.Saturday {
		return time.Time{}, fmt.Errorf("week-ending date %s is not a Saturday", weekStr)
	}
	return t, nil
}
