package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/export"
	"github.com/menttor/menttor-cli/internal/repository"
	"github.com/menttor/menttor-cli/internal/schedule"
)

type exportService struct {
	roadmaps RoadmapService
	exports  repository.ExportLogRepo
	pdf      *export.PDFRenderer
	obs      UseCaseObserver
}

// NewExportService creates the export service. Every successful export is
// recorded in the export log.
func NewExportService(roadmaps RoadmapService, exports repository.ExportLogRepo, pdf *export.PDFRenderer, observers ...UseCaseObserver) ExportService {
	return &exportService{
		roadmaps: roadmaps,
		exports:  exports,
		pdf:      pdf,
		obs:      useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) ExportPDF(ctx context.Context, ref, outPath string, start time.Time) (result *ExportResult, err error) {
	began := time.Now()
	defer func() { s.observeExport(ctx, domain.ExportPDF, began, result, err) }()

	r, err := s.roadmaps.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if outPath == "" {
		outPath = export.PDFFileName(r.Title)
	}

	if err := s.pdf.RenderFile(ctx, r, outPath); err != nil {
		return nil, err
	}

	result = &ExportResult{
		Roadmap:    r,
		Format:     domain.ExportPDF,
		Filename:   outPath,
		EntryCount: totalEntries(r),
	}
	return result, s.record(ctx, result)
}

func (s *exportService) ExportICS(ctx context.Context, ref, outPath string, start time.Time) (result *ExportResult, err error) {
	began := time.Now()
	defer func() { s.observeExport(ctx, domain.ExportICS, began, result, err) }()

	r, err := s.roadmaps.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if outPath == "" {
		outPath = export.ICSFileName(r.Title)
	}

	feed := export.BuildICS(r, start)
	if err := os.WriteFile(outPath, []byte(feed), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	result = &ExportResult{
		Roadmap:    r,
		Format:     domain.ExportICS,
		Filename:   outPath,
		EntryCount: len(schedule.Subtopics(schedule.Build(r, start))),
	}
	return result, s.record(ctx, result)
}

func (s *exportService) QuickAdd(ctx context.Context, ref string, start time.Time) (result *ExportResult, err error) {
	began := time.Now()
	defer func() { s.observeExport(ctx, domain.ExportQuickAdd, began, result, err) }()

	r, err := s.roadmaps.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	link, ok := export.QuickAddLink(r, start)
	if !ok {
		return nil, fmt.Errorf("roadmap %q has no subtopics to schedule", r.DisplayTitle())
	}

	result = &ExportResult{
		Roadmap:    r,
		Format:     domain.ExportQuickAdd,
		Link:       link,
		EntryCount: 1,
	}
	return result, s.record(ctx, result)
}

func (s *exportService) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	records, err := s.exports.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string)
	roadmaps, err := s.roadmaps.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, r := range roadmaps {
		titles[r.ID] = r.DisplayTitle()
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, HistoryEntry{
			Record:       rec,
			RoadmapTitle: titles[rec.RoadmapID],
		})
	}
	return entries, nil
}

func (s *exportService) record(ctx context.Context, result *ExportResult) error {
	return s.exports.Create(ctx, &domain.ExportRecord{
		ID:         uuid.New().String(),
		RoadmapID:  result.Roadmap.ID,
		Format:     result.Format,
		Filename:   result.Filename,
		EntryCount: result.EntryCount,
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *exportService) observeExport(ctx context.Context, format domain.ExportFormat, began time.Time, result *ExportResult, err error) {
	fields := map[string]any{"format": string(format)}
	if result != nil {
		fields["roadmap_id"] = result.Roadmap.ID
		fields["entries"] = result.EntryCount
	}
	observe(ctx, s.obs, "export", began, err, fields)
}

func totalEntries(r *domain.Roadmap) int {
	modules, topics, subtopics := r.NodeCount()
	return modules + topics + subtopics
}
