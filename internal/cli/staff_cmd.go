package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/domain"
)

func newStaffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage the staff directory",
	}

	cmd.AddCommand(
		newStaffAddCmd(app),
		newStaffListCmd(app),
		newStaffUpdateCmd(app),
		newStaffDeactivateCmd(app),
	)

	return cmd
}

func newStaffAddCmd(app *App) *cobra.Command {
	var email, name, title, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.StaffRole(role)
			switch r {
			case domain.RoleStaff, domain.RoleSupervisor, domain.RoleAdmin:
			default:
				return fmt.Errorf("invalid role %q (valid: staff|supervisor|admin)", role)
			}

			now := time.Now().UTC()
			member := &domain.StaffMember{
				ID:        uuid.New().String(),
				Email:     email,
				FullName:  name,
				Title:     title,
				Role:      r,
				Active:    true,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := app.Staff.Create(context.Background(), member); err != nil {
				return err
			}

			fmt.Printf("Added %s <%s> as %s\n", member.DisplayName(), member.Email, member.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&title, "title", "", "Job title")
	cmd.Flags().StringVar(&role, "role", "staff", "Role (staff|supervisor|admin)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStaffListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List staff members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Staff.List(context.Background(), !all)
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Println("No staff members found.")
				return nil
			}

			for _, m := range members {
				state := ""
				if !m.Active {
					state = formatter.Dim("  (inactive)")
				}
				fmt.Printf("%s  %-28s %-30s %s%s\n",
					formatter.TruncID(m.ID), m.DisplayName(), formatter.Dim(m.Email), m.Role, state)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive staff")

	return cmd
}

func newStaffUpdateCmd(app *App) *cobra.Command {
	var name, title, role string

	cmd := &cobra.Command{
		Use:   "update MEMBER",
		Short: "Update a staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveStaff(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				member.FullName = name
			}
			if cmd.Flags().Changed("title") {
				member.Title = title
			}
			if cmd.Flags().Changed("role") {
				member.Role = domain.StaffRole(role)
			}
			member.UpdatedAt = time.Now().UTC()

			if err := app.Staff.Update(ctx, member); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", member.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&title, "title", "", "Job title")
	cmd.Flags().StringVar(&role, "role", "", "Role (staff|supervisor|admin)")

	return cmd
}

func newStaffDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate MEMBER",
		Short: "Deactivate a staff member (stops missing-report tracking)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveStaff(ctx, app, args[0])
			if err != nil {
				return err
			}

			member.Active = false
			member.UpdatedAt = time.Now().UTC()
			if err := app.Staff.Update(ctx, member); err != nil {
				return err
			}
			fmt.Printf("Deactivated %s\n", member.DisplayName())
			return nil
		},
	}
}
