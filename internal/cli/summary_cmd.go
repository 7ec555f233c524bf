package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/repository"
)

func newSummaryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate and manage weekly team summaries",
	}

	cmd.AddCommand(
		newSummaryGenerateCmd(app),
		newSummaryShowCmd(app),
		newSummaryDeleteCmd(app),
		newSummaryEmailCmd(app),
		newSummaryRecognizeCmd(app),
	)

	return cmd
}

func newSummaryRecognizeCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "recognize",
		Short: "Pick the week's top performers from finalized reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			stop := func() {}
			if app.Interactive {
				stop = formatter.StartSpinner("Evaluating staff recognition...")
			}
			rec, usedFallback, err := app.Summaries.Recognize(ctx, weekEnding)
			stop()
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatRecognition(weekEnding, rec))
			if usedFallback {
				fmt.Println(formatter.Dim("AI was unavailable; recognition is based on category tallies."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")

	return cmd
}

func newSummaryGenerateCmd(app *App) *cobra.Command {
	var admin, week string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the team summary from all finalized reports",
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

			stop := func() {}
			if app.Interactive {
				stop = formatter.StartSpinner("Generating team summary...")
			}
			summary, err := app.Summaries.Generate(ctx, weekEnding, actor.DisplayName())
			stop()
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatWeeklySummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Acting administrator (email or id)")
	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}

func newSummaryShowCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored team summary for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			summary, err := app.Summaries.Get(ctx, weekEnding)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					fmt.Printf("No summary exists for week ending %s. Run `pulse summary generate`.\n", weekEnding.Format("2006-01-02"))
					return nil
				}
				return err
			}

			fmt.Println(formatter.FormatWeeklySummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")

	return cmd
}

func newSummaryDeleteCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the stored team summary for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			if err := app.Summaries.Delete(ctx, weekEnding); err != nil {
				return err
			}
			fmt.Printf("Deleted summary for week ending %s.\n", formatter.WeekDate(weekEnding))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")

	return cmd
}

func newSummaryEmailCmd(app *App) *cobra.Command {
	var week, to string

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Email the stored team summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			recipients := strings.Split(to, ",")
			for i := range recipients {
				recipients[i] = strings.TrimSpace(recipients[i])
			}

			if err := app.Summaries.Email(ctx, weekEnding, recipients); err != nil {
				return err
			}
			fmt.Printf("Summary for week ending %s sent to %s.\n", formatter.WeekDate(weekEnding), to)
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")
	cmd.Flags().StringVar(&to, "to", "", "Comma-separated recipient addresses")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
