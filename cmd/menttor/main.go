package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/menttor/menttor-cli/internal/api"
	"github.com/menttor/menttor-cli/internal/cli"
	"github.com/menttor/menttor-cli/internal/db"
	"github.com/menttor/menttor-cli/internal/export"
	"github.com/menttor/menttor-cli/internal/repository"
	"github.com/menttor/menttor-cli/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.menttor/menttor.db
	dbPath := os.Getenv("MENTTOR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".menttor", "menttor.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	roadmapRepo := repository.NewSQLiteRoadmapRepo(database)
	exportRepo := repository.NewSQLiteExportLogRepo(database)

	// Remote fetch is optional; without a base URL only full URLs work.
	fetcher := api.NewClient(os.Getenv("MENTTOR_API_URL"), os.Getenv("MENTTOR_API_TOKEN"))

	var observers []service.UseCaseObserver
	if os.Getenv("MENTTOR_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	roadmapSvc := service.NewRoadmapService(roadmapRepo, fetcher, observers...)
	scheduleSvc := service.NewScheduleService(roadmapSvc, observers...)
	exportSvc := service.NewExportService(roadmapSvc, exportRepo,
		export.NewPDFRenderer(export.NewHTTPAssetFetcher(export.DefaultLogoURL), nil),
		observers...)

	app := &cli.App{
		Roadmaps:  roadmapSvc,
		Schedules: scheduleSvc,
		Exports:   exportSvc,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
