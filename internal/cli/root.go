package cli

import (
	"github.com/menttor/menttor-cli/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Roadmaps  service.RoadmapService
	Schedules service.ScheduleService
	Exports   service.ExportService

	// IsInteractive reports whether stdin is a terminal; the wizard and
	// the browse default entrypoint require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "menttor" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "menttor",
		Short: "Study schedule generator for Menttor roadmaps",
		Long: "menttor keeps a local library of learning roadmaps and turns them into\n" +
			"dated study schedules, printable PDF timetables, and calendar feeds.",
		// Bare invocation on a terminal drops into the browser.
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunBrowse(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newImportCmd(app),
		newRoadmapCmd(app),
		newScheduleCmd(app),
		newExportCmd(app),
		newBrowseCmd(app),
	)

	return root
}
