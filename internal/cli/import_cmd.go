package cli

import (
	"context"
	"fmt"

	"github.com/menttor/menttor-cli/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var fromURL string

	cmd := &cobra.Command{
		Use:   "import [FILE]",
		Short: "Import a roadmap from a JSON file or the Menttor API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			switch {
			case fromURL != "" && len(args) > 0:
				return fmt.Errorf("pass either a file or --from-url, not both")
			case fromURL != "":
				result, err := app.Roadmaps.ImportURL(ctx, fromURL)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatImportResult(result))
				return nil
			case len(args) == 1:
				result, err := app.Roadmaps.ImportFile(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatImportResult(result))
				return nil
			default:
				return fmt.Errorf("a roadmap file or --from-url is required")
			}
		},
	}

	cmd.Flags().StringVar(&fromURL, "from-url", "", "Roadmap ID or full URL to fetch from the Menttor API")

	return cmd
}
