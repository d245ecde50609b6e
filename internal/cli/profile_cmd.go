package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"healthassist/internal/cli/formatter"
	"healthassist/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile <session-id>",
		Short: "Show the profile stored for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Profiles.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatProfile(profile))
			return nil
		},
	}

	cmd.AddCommand(newProfileEditCmd(app))

	return cmd
}

func newProfileEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <session-id>",
		Short: "Edit a session's profile interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sessionID := args[0]

			profile, err := app.Profiles.Get(ctx, sessionID)
			if err != nil {
				return err
			}

			ageStr := strconv.Itoa(profile.Age)
			form := profileForm(profile, &ageStr)
			if err := form.Run(); err != nil {
				return fmt.Errorf("editing profile: %w", err)
			}

			// Validation already guaranteed a parseable non-negative age.
			profile.Age, _ = strconv.Atoi(strings.TrimSpace(ageStr))

			if err := app.Profiles.Update(ctx, sessionID, profile); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Profile saved."))
			return nil
		},
	}
}

func profileForm(p *domain.UserProfile, ageStr *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&p.Name),
			huh.NewInput().
				Title("Age").
				Value(ageStr).
				Validate(validateAge),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Male", "Male"),
					huh.NewOption("Female", "Female"),
					huh.NewOption("Other", "Other"),
				).
				Value(&p.Gender),
			huh.NewInput().
				Title("Medical history").
				Placeholder("none").
				Value(&p.MedicalHistory),
			huh.NewInput().
				Title("Current medications").
				Placeholder("none").
				Value(&p.CurrentMedications),
			huh.NewInput().
				Title("Allergies").
				Placeholder("none").
				Value(&p.Allergies),
		),
	).WithShowHelp(false)
}

func validateAge(s string) error {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || age < 0 {
		return fmt.Errorf("enter a valid age in numbers")
	}
	return nil
}
