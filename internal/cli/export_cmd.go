package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/menttor/menttor-cli/internal/cli/formatter"
	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a roadmap's study schedule",
	}

	cmd.AddCommand(
		newExportPDFCmd(app),
		newExportICSCmd(app),
		newExportGcalCmd(app),
		newExportWizardCmd(app),
		newExportHistoryCmd(app),
	)

	return cmd
}

func newExportPDFCmd(app *App) *cobra.Command {
	var out, start string
	var open bool

	cmd := &cobra.Command{
		Use:   "pdf REF",
		Short: "Write a branded PDF timetable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := parseStartFlag(start)
			if err != nil {
				return err
			}

			result, err := app.Exports.ExportPDF(context.Background(), args[0], out, startAt)
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %s (%d entries)\n", result.Filename, result.EntryCount)
			if open {
				openInDefaultApp(result.Filename)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default derived from the roadmap title)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default tomorrow)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the file after writing")

	return cmd
}

func newExportICSCmd(app *App) *cobra.Command {
	var out, start string
	var open bool

	cmd := &cobra.Command{
		Use:   "ics REF",
		Short: "Write an iCalendar feed of study sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := parseStartFlag(start)
			if err != nil {
				return err
			}

			result, err := app.Exports.ExportICS(context.Background(), args[0], out, startAt)
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %s (%d events)\n", result.Filename, result.EntryCount)
			if open {
				openInDefaultApp(result.Filename)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default derived from the roadmap title)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default tomorrow)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the file after writing")

	return cmd
}

func newExportGcalCmd(app *App) *cobra.Command {
	var start string
	var open bool

	cmd := &cobra.Command{
		Use:   "gcal REF",
		Short: "Print a Google Calendar quick-add link for the first study session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := parseStartFlag(start)
			if err != nil {
				return err
			}

			result, err := app.Exports.QuickAdd(context.Background(), args[0], startAt)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", result.Link)
			if open {
				openInDefaultApp(result.Link)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default tomorrow)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the link in a browser")

	return cmd
}

func newExportHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Exports.History(context.Background(), limit)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatExportHistory(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")

	return cmd
}

func newExportWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Interactively pick a roadmap, format, and start date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the export wizard needs an interactive terminal")
			}
			return runExportWizard(app)
		},
	}
}

// runExportWizard collects the export parameters through a form and then
// dispatches to the matching export operation.
func runExportWizard(app *App) error {
	ctx := context.Background()

	roadmaps, err := app.Roadmaps.List(ctx, false)
	if err != nil {
		return err
	}
	if len(roadmaps) == 0 {
		fmt.Fprintln(os.Stderr, "No roadmaps imported yet. Run `menttor import` first.")
		return nil
	}

	var ref, format, start string
	if err := exportWizardForm(roadmaps, &ref, &format, &start).Run(); err != nil {
		return err
	}

	startAt, err := parseStartFlag(start)
	if err != nil {
		return err
	}

	var result *service.ExportResult
	switch domain.ExportFormat(format) {
	case domain.ExportPDF:
		result, err = app.Exports.ExportPDF(ctx, ref, "", startAt)
	case domain.ExportICS:
		result, err = app.Exports.ExportICS(ctx, ref, "", startAt)
	case domain.ExportQuickAdd:
		result, err = app.Exports.QuickAdd(ctx, ref, startAt)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}

	if result.Link != "" {
		fmt.Printf("%s\n", result.Link)
		openInDefaultApp(result.Link)
		return nil
	}

	fmt.Printf("Wrote %s (%d entries)\n", result.Filename, result.EntryCount)
	return nil
}

// openInDefaultApp hands a file path or URL to the OS opener. Failures are
// reported but never fatal.
func openInDefaultApp(target string) {
	if err := openTarget(target); err != nil {
		fmt.Fprintf(os.Stderr, "could not open %s: %v\n", target, err)
	}
}
