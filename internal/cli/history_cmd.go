package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"healthassist/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [session-id]",
		Short: "List stored sessions, or print one session's transcript",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				sessions, err := app.Transcripts.ListSessions(ctx, limit)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatSessionList(sessions))
				return nil
			}

			messages, err := app.Transcripts.ListMessages(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTranscript(messages))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to list")

	return cmd
}
