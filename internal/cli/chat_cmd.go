package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat requires an interactive terminal, use \"healthassist analyze\" for one-shot input")
			}

			intro, err := app.Chat.StartSession(cmd.Context())
			if err != nil {
				return fmt.Errorf("starting session: %w", err)
			}

			program := tea.NewProgram(newChatModel(app.Chat, intro.Content))
			_, err = program.Run()
			return err
		},
	}
}
