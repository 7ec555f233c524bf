package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the active reporting window",
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := app.Reports.ActiveWindow(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWindow(window, time.Now()))
			return nil
		},
	}

	cmd.AddCommand(newWeekBoardCmd(app))

	return cmd
}

func newWeekBoardCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show who has and hasn't submitted for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			weekEnding, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			board, err := app.Status.WeekBoard(ctx, weekEnding)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWeekBoard(board, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week-ending Saturday (YYYY-MM-DD, default: active week)")

	return cmd
}
