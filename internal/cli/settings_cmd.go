package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/intelligence"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change administrative settings",
	}

	cmd.AddCommand(
		newDeadlineShowCmd(app),
		newDeadlineSetCmd(app),
		newPromptSetCmd(app),
	)

	return cmd
}

func newDeadlineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deadline",
		Short: "Show the active deadline policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Resolver.Config(context.Background())
			fmt.Printf("%s\n", formatter.Bold("Deadline policy"))
			fmt.Printf("  %s %s at %02d:%02d\n", formatter.Dim("Deadline:"), cfg.DayName(), cfg.Hour, cfg.Minute)
			fmt.Printf("  %s %d hours\n", formatter.Dim("Grace period:"), cfg.GraceHours)
			return nil
		},
	}
}

func newDeadlineSetCmd(app *App) *cobra.Command {
	var admin string
	var day, hour, minute, grace int

	cmd := &cobra.Command{
		Use:   "set-deadline",
		Short: "Change the deadline policy (affects future weeks only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := resolveStaff(ctx, app, admin)
			if err != nil {
				return err
			}

			current := app.Resolver.Config(ctx)
			cfg := domain.DeadlineConfig{
				DayOfWeek:  current.DayOfWeek,
				Hour:       current.Hour,
				Minute:     current.Minute,
				GraceHours: current.GraceHours,
			}
			if cmd.Flags().Changed("day") {
				cfg.DayOfWeek = day
			}
			if cmd.Flags().Changed("hour") {
				cfg.Hour = hour
			}
			if cmd.Flags().Changed("minute") {
				cfg.Minute = minute
			}
			if cmd.Flags().Changed("grace") {
				cfg.GraceHours = grace
			}

			if err := app.Resolver.SetConfig(ctx, cfg, actor.ID); err != nil {
				return err
			}
			fmt.Printf("Deadline set to %s at %02d:%02d with %dh grace.\n",
				cfg.DayName(), cfg.Hour, cfg.Minute, cfg.GraceHours)
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Acting administrator (email or id)")
	cmd.Flags().IntVar(&day, "day", 0, "Day of week (0=Monday .. 6=Sunday)")
	cmd.Flags().IntVar(&hour, "hour", 0, "Hour (0-23)")
	cmd.Flags().IntVar(&minute, "minute", 0, "Minute (0, 15, 30, or 45)")
	cmd.Flags().IntVar(&grace, "grace", 0, "Grace period in hours")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}

func newPromptSetCmd(app *App) *cobra.Command {
	var admin, target, file string

	cmd := &cobra.Command{
		Use:   "set-prompt",
		Short: "Override an AI prompt from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := resolveStaff(ctx, app, admin)
			if err != nil {
				return err
			}

			var setting string
			switch target {
			case "individual":
				setting = intelligence.IndividualPromptSetting
			case "dashboard":
				setting = intelligence.DashboardPromptSetting
			default:
				return fmt.Errorf("invalid prompt target %q (valid: individual|dashboard)", target)
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading prompt file: %w", err)
			}

			if err := app.Settings.Upsert(ctx, setting, string(data), actor.ID); err != nil {
				return err
			}
			fmt.Printf("Prompt %q updated from %s.\n", target, file)
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Acting administrator (email or id)")
	cmd.Flags().StringVar(&target, "target", "", "Prompt to override (individual|dashboard)")
	cmd.Flags().StringVar(&file, "file", "", "File containing the prompt text")
	_ = cmd.MarkFlagRequired("admin")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
