package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/service"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative deadline overrides",
	}

	cmd.AddCommand(
		newAdminUnlockCmd(app),
		newAdminUnlockAllCmd(app),
		newAdminEnableCmd(app),
		newAdminEnableAllCmd(app),
		newAdminCreateCmd(app),
		newAdminCreateMissingCmd(app),
	)

	return cmd
}

func newAdminUnlockCmd(app *App) *cobra.Command {
	var admin string

	cmd := &cobra.Command{
		Use:   "unlock REPORT_ID",
		Short: "Reopen a finalized report for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := resolveStaff(ctx, app, admin)
			if err != nil {
				return err
			}
			if err := app.Admin.Unlock(ctx, args[0], actor.ID); err != nil {
				return describeOverrideErr(err)
			}
			fmt.Printf("Report %s unlocked.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Acting administrator (email or id)")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}

func newAdminUnlockAllCmd(app *App) *cobra.Command {
	var admin, week string

	cmd := &cobra.Command{
		Use:   "unlock-all",
		Short: "Reopen every finalized report for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := resolveStaff(ctx, app, admin)
			if err != nil {
				return err
			}
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			n, err := app.Admin.UnlockAll(ctx, weekEnding, actor.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Unlocked %d reports for week ending %s.\n", n, formatter.WeekDate(weekEnding))
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Acting administrator (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}

func newAdminEnableCmd(app *App) *cobra.Command {
	var admin string

	cmd := &cobra.Command{
		Use:   "enable REPORT_ID",
		Short: "Let a draft stuck past the deadline be submitted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := resolveStaff(ctx, app, admin)
			if err != nil {
				return err
			}
			if err := app.Admin.EnableSubmission(ctx, args[0], actor.ID); err != nil {
				return describeOverrideErr(err)
			}
			fmt.Printf("Submission enabled for report %s.\n", args[0])
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Acting administrator (email or id)")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}

func newAdminEnableAllCmd(app *App) *cobra.Command {
	var admin, week string

	cmd := &cobra.Command{
		Use:   "enable-all",
		Short: "Enable submission for every stuck draft in a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := resolveStaff(ctx, app, admin)
			if err != nil {
				return err
			}
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			n, err := app.Admin.EnableSubmissionAll(ctx, weekEnding, actor.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Enabled submission for %d draft reports, week ending %s.\n", n, formatter.WeekDate(weekEnding))
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Acting administrator (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}

func newAdminCreateCmd(app *App) *cobra.Command {
	var admin, user, week string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a placeholder report for a staff member who missed a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := resolveStaff(ctx, app, admin)
			if err != nil {
				return err
			}
			member, err := resolveStaff(ctx, app, user)
			if err != nil {
				return err
			}
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			rep, err := app.Admin.CreateAdminReport(ctx, member.ID, weekEnding, actor.ID)
			if err != nil {
				return describeOverrideErr(err)
			}
			fmt.Printf("Created report %s for %s, week ending %s.\n",
				rep.ID[:8], member.DisplayName(), formatter.WeekDate(weekEnding))
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Acting administrator (email or id)")
	cmd.Flags().StringVar(&user, "user", "", "Staff member to create the report for (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	_ = cmd.MarkFlagRequired("admin")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newAdminCreateMissingCmd(app *App) *cobra.Command {
	var admin, week string

	cmd := &cobra.Command{
		Use:   "create-missing",
		Short: "Create placeholder reports for everyone without one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := resolveStaff(ctx, app, admin)
			if err != nil {
				return err
			}
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			n, err := app.Admin.CreateMissingReports(ctx, weekEnding, actor.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Created %d placeholder reports for week ending %s.\n", n, formatter.WeekDate(weekEnding))
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Acting administrator (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}

func describeOverrideErr(err error) error {
	switch {
	case errors.Is(err, service.ErrReportExists):
		return fmt.Errorf("a report already exists for that staff member and week")
	case errors.Is(err, service.ErrInvalidTransition):
		return err
	default:
		return err
	}
}
