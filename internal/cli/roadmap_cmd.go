package cli

import (
	"context"
	"fmt"

	"github.com/menttor/menttor-cli/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRoadmapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Manage the local roadmap library",
	}

	cmd.AddCommand(
		newRoadmapListCmd(app),
		newRoadmapShowCmd(app),
		newRoadmapArchiveCmd(app),
		newRoadmapUnarchiveCmd(app),
		newRoadmapRemoveCmd(app),
	)

	return cmd
}

func newRoadmapListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List imported roadmaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			roadmaps, err := app.Roadmaps.List(context.Background(), all)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatRoadmapList(roadmaps))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived roadmaps")

	return cmd
}

func newRoadmapShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show a roadmap's module tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Roadmaps.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatRoadmapInspect(r))
			return nil
		},
	}
}

func newRoadmapArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive REF",
		Short: "Archive a roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Roadmaps.Archive(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Archived roadmap %s\n", args[0])
			return nil
		},
	}
}

func newRoadmapUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive REF",
		Short: "Unarchive a roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Roadmaps.Unarchive(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Unarchived roadmap %s\n", args[0])
			return nil
		},
	}
}

func newRoadmapRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove REF",
		Short: "Remove a roadmap and its export history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Roadmaps.Delete(context.Background(), args[0], force); err != nil {
				return err
			}
			fmt.Printf("Removed roadmap %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove without archiving first")

	return cmd
}
