package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"healthassist/internal/httpapi"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chat engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Chat.StartSession(cmd.Context()); err != nil {
				return fmt.Errorf("starting session: %w", err)
			}

			handler := httpapi.NewHandler(app.Chat, app.Transcripts, app.Profiles)
			router := httpapi.NewRouter(handler)

			fmt.Printf("Listening on %s\n", addr)
			return http.ListenAndServe(addr, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
