package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/menttor/menttor-cli/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// defaultStudyHour is the UTC hour study sessions begin when no explicit
// start is given.
const defaultStudyHour = 9

// parseStartFlag turns an optional YYYY-MM-DD flag value into the schedule
// start instant. An empty value means tomorrow.
func parseStartFlag(start string) (time.Time, error) {
	if start == "" {
		now := time.Now().UTC().AddDate(0, 0, 1)
		return time.Date(now.Year(), now.Month(), now.Day(), defaultStudyHour, 0, 0, 0, time.UTC), nil
	}

	day, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), defaultStudyHour, 0, 0, 0, time.UTC), nil
}

func newScheduleCmd(app *App) *cobra.Command {
	var start string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule REF",
		Short: "Print the dated study plan for a roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := parseStartFlag(start)
			if err != nil {
				return err
			}

			r, entries, err := app.Schedules.BuildSchedule(context.Background(), args[0], startAt)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding schedule: %w", err)
				}
				fmt.Printf("%s\n", out)
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatSchedule(r, entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default tomorrow)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the schedule as JSON")

	return cmd
}
