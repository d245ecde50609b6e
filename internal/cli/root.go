package cli

import (
	"github.com/spf13/cobra"

	"healthassist/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Chat        service.ChatService
	Transcripts service.TranscriptService
	Profiles    service.ProfileService

	// IsInteractive reports whether stdin is attached to a terminal. The chat
	// command refuses to start the TUI without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "healthassist" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "healthassist",
		Short: "Conversational symptom checker and triage assistant",
	}

	root.AddCommand(
		newChatCmd(app),
		newAnalyzeCmd(),
		newCatalogCmd(),
		newHistoryCmd(app),
		newProfileCmd(app),
		newServeCmd(app),
	)

	return root
}
