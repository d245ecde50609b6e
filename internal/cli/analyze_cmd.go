package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"healthassist/internal/cli/formatter"
	"healthassist/internal/nlp"
	"healthassist/internal/triage"
)

func newAnalyzeCmd() *cobra.Command {
	var showEntities bool

	cmd := &cobra.Command{
		Use:   "analyze <text>...",
		Short: "Run a one-shot symptom analysis over the given text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			analysis := triage.Analyze(text)
			fmt.Print(formatter.FormatAnalysis(analysis))

			if showEntities {
				entities := nlp.Recognize(nlp.Tokenize(text))
				intent := nlp.Classify(text)

				fmt.Println()
				fmt.Println(formatter.Header("Extracted Entities"))
				if len(entities) == 0 {
					fmt.Println(formatter.Dim("none"))
				}
				for _, e := range entities {
					fmt.Printf("  %-10s %-20s %s\n",
						formatter.Dim(string(e.Kind)), e.Value, formatter.FormatConfidence(e.Confidence))
				}
				fmt.Printf("\n%s %s (%s)\n",
					formatter.Bold("Intent:"), intent.Intent, formatter.FormatConfidence(intent.Confidence))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showEntities, "entities", false, "Also print extracted entities and the classified intent")

	return cmd
}
