package service

import (
	"context"
	"time"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/importer"
)

// RoadmapFetcher pulls a roadmap export from a remote backend.
// Satisfied by api.Client.
type RoadmapFetcher interface {
	FetchRoadmap(ctx context.Context, url string) (*importer.Document, error)
}

// ImportResult holds the outcome of a roadmap import.
type ImportResult struct {
	Roadmap       *domain.Roadmap
	ModuleCount   int
	TopicCount    int
	SubtopicCount int
}

type RoadmapService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportURL(ctx context.Context, url string) (*ImportResult, error)
	ImportDocument(ctx context.Context, doc *importer.Document, source domain.RoadmapSource) (*ImportResult, error)

	// Get resolves ref as a slug, a full ID, or a unique ID prefix.
	Get(ctx context.Context, ref string) (*domain.Roadmap, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Roadmap, error)
	Archive(ctx context.Context, ref string) error
	Unarchive(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string, force bool) error
}

type ScheduleService interface {
	// BuildSchedule resolves ref and lays out its dated study plan
	// starting at start.
	BuildSchedule(ctx context.Context, ref string, start time.Time) (*domain.Roadmap, []domain.ScheduleEntry, error)
}

// ExportResult describes one completed export.
type ExportResult struct {
	Roadmap    *domain.Roadmap
	Format     domain.ExportFormat
	Filename   string // path written, empty for quick-add links
	Link       string // quick-add only
	EntryCount int
}

// HistoryEntry pairs an export record with its roadmap title for display.
type HistoryEntry struct {
	Record       *domain.ExportRecord
	RoadmapTitle string
}

type ExportService interface {
	ExportPDF(ctx context.Context, ref, outPath string, start time.Time) (*ExportResult, error)
	ExportICS(ctx context.Context, ref, outPath string, start time.Time) (*ExportResult, error)
	QuickAdd(ctx context.Context, ref string, start time.Time) (*ExportResult, error)
	History(ctx context.Context, limit int) ([]HistoryEntry, error)
}
