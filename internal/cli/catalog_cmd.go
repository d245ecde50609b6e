package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"healthassist/internal/catalog"
	"healthassist/internal/cli/formatter"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [id]",
		Short: "List known symptoms, or show one entry in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Print(formatter.FormatCatalog(catalog.All()))
				return nil
			}

			record, ok := catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("unknown symptom id %q, run \"healthassist catalog\" to list ids", args[0])
			}
			fmt.Print(formatter.FormatCatalogRecord(record))
			return nil
		},
	}
	return cmd
}
