package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/service"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Create, edit, and submit weekly reports",
	}

	cmd.AddCommand(
		newReportEditCmd(app),
		newReportAddCmd(app),
		newReportSetCmd(app),
		newReportSubmitCmd(app),
		newReportShowCmd(app),
		newReportListCmd(app),
	)

	return cmd
}

func newReportEditCmd(app *App) *cobra.Command {
	var user, week string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open or create this week's draft and edit it interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveStaff(ctx, app, user)
			if err != nil {
				return err
			}
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			rep, err := app.Reports.GetOrCreateDraft(ctx, member, weekEnding)
			if err != nil {
				return describeLifecycleErr(err)
			}

			if !app.Interactive {
				fmt.Println(formatter.FormatReport(rep))
				fmt.Println(formatter.Dim("\nNot a terminal; use `pulse report add` and `pulse report set` to edit."))
				return nil
			}

			if err := runReportWizard(rep); err != nil {
				return err
			}
			if err := app.Reports.SaveDraft(ctx, rep); err != nil {
				return describeLifecycleErr(err)
			}

			fmt.Printf("Saved draft for %s, week ending %s\n", member.DisplayName(), formatter.WeekDate(weekEnding))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Staff member (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newReportAddCmd(app *App) *cobra.Command {
	var user, week, section, text string
	var challenge bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a success or challenge entry to a draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveStaff(ctx, app, user)
			if err != nil {
				return err
			}
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			key := domain.SectionKey(section)
			if _, ok := domain.SectionLabels[key]; !ok {
				return fmt.Errorf("unknown section %q (valid: %s)", section, sectionList())
			}

			rep, err := app.Reports.GetOrCreateDraft(ctx, member, weekEnding)
			if err != nil {
				return describeLifecycleErr(err)
			}

			entries := rep.Body[key]
			if challenge {
				entries.Challenges = append(entries.Challenges, domain.Entry{Text: text})
			} else {
				entries.Successes = append(entries.Successes, domain.Entry{Text: text})
			}
			rep.Body[key] = entries

			if err := app.Reports.SaveDraft(ctx, rep); err != nil {
				return describeLifecycleErr(err)
			}

			kind := "success"
			if challenge {
				kind = "challenge"
			}
			fmt.Printf("Added %s to %s\n", kind, domain.SectionLabels[key])
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Staff member (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	cmd.Flags().StringVar(&section, "section", "", "Report section ("+sectionList()+")")
	cmd.Flags().StringVar(&text, "text", "", "Entry text")
	cmd.Flags().BoolVar(&challenge, "challenge", false, "Record as a challenge instead of a success")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("section")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newReportSetCmd(app *App) *cobra.Command {
	var user, week, pd, lookahead, checkin, concerns string
	var wellBeing int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set free-text fields and the well-being rating on a draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveStaff(ctx, app, user)
			if err != nil {
				return err
			}
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			rep, err := app.Reports.GetOrCreateDraft(ctx, member, weekEnding)
			if err != nil {
				return describeLifecycleErr(err)
			}

			if cmd.Flags().Changed("pd") {
				rep.ProfessionalDevelopment = pd
			}
			if cmd.Flags().Changed("lookahead") {
				rep.KeyTopicsLookahead = lookahead
			}
			if cmd.Flags().Changed("checkin") {
				rep.PersonalCheckIn = checkin
			}
			if cmd.Flags().Changed("concerns") {
				rep.DirectorConcerns = concerns
			}
			if cmd.Flags().Changed("well-being") {
				if wellBeing < 1 || wellBeing > 5 {
					return fmt.Errorf("well-being rating must be 1-5")
				}
				rep.WellBeingRating = wellBeing
			}

			if err := app.Reports.SaveDraft(ctx, rep); err != nil {
				return describeLifecycleErr(err)
			}
			fmt.Println("Draft updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Staff member (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	cmd.Flags().StringVar(&pd, "pd", "", "Professional development")
	cmd.Flags().StringVar(&lookahead, "lookahead", "", "Key topics for the week ahead")
	cmd.Flags().StringVar(&checkin, "checkin", "", "Personal check-in")
	cmd.Flags().StringVar(&concerns, "concerns", "", "Concerns for the director")
	cmd.Flags().IntVar(&wellBeing, "well-being", 0, "Well-being rating (1-5)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newReportSubmitCmd(app *App) *cobra.Command {
	var user, week string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Finalize a report (categorize, summarize, lock)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveStaff(ctx, app, user)
			if err != nil {
				return err
			}
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			rep, err := app.Reports.Get(ctx, member.ID, weekEnding)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no draft exists for %s, week ending %s", member.DisplayName(), weekEnding.Format("2006-01-02"))
				}
				return err
			}

			stop := func() {}
			if app.Interactive {
				stop = formatter.StartSpinner("Categorizing and summarizing report...")
			}
			result, err := app.Reports.Finalize(ctx, rep)
			stop()
			if err != nil {
				return describeLifecycleErr(err)
			}

			fmt.Printf("Report finalized for %s, week ending %s.\n", member.DisplayName(), formatter.WeekDate(weekEnding))
			if result.UsedFallbackCategories || result.UsedFallbackSummary {
				fmt.Println(formatter.StyleYellow.Render("AI assistance was unavailable; default categories and summary were applied."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Staff member (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newReportShowCmd(app *App) *cobra.Command {
	var user, week string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveStaff(ctx, app, user)
			if err != nil {
				return err
			}
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			rep, err := app.Reports.Get(ctx, member.ID, weekEnding)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					fmt.Printf("No report for %s, week ending %s.\n", member.DisplayName(), weekEnding.Format("2006-01-02"))
					return nil
				}
				return err
			}

			fmt.Println(formatter.FormatReport(rep))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Staff member (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newReportListCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a staff member's reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveStaff(ctx, app, user)
			if err != nil {
				return err
			}

			reports, err := app.Reports.ListByUser(ctx, member.ID)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Println("No reports found.")
				return nil
			}

			fmt.Println(formatter.FormatReportList(reports))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Staff member (email or id)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func sectionList() string {
	out := ""
	for i, key := range domain.SectionOrder {
		if i > 0 {
			out += "|"
		}
		out += string(key)
	}
	return out
}

// describeLifecycleErr maps lifecycle rejections to actionable messages.
func describeLifecycleErr(err error) error {
	switch {
	case errors.Is(err, service.ErrDeadlinePassed):
		return fmt.Errorf("the submission deadline (including grace period) has passed; ask an administrator to enable submission")
	case errors.Is(err, service.ErrAlreadyFinalized):
		return fmt.Errorf("this report is already finalized; ask an administrator to unlock it before editing")
	case errors.Is(err, service.ErrNotActiveWeek):
		return fmt.Errorf("that week is not open yet; reports can only be created for the active week or earlier")
	default:
		return err
	}
}
