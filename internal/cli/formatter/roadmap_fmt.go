package formatter

import (
	"fmt"
	"strings"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/service"
)

// FormatRoadmapList renders the library listing.
func FormatRoadmapList(roadmaps []*domain.Roadmap) string {
	if len(roadmaps) == 0 {
		return Dim("No roadmaps in the library. Import one with 'menttor import <file>'.")
	}

	rows := make([][]string, 0, len(roadmaps))
	for _, r := range roadmaps {
		status := StyleGreen.Render("active")
		if r.ArchivedAt != nil {
			status = Dim("archived")
		}
		rows = append(rows, []string{
			StyleAccent.Render(r.Slug),
			r.DisplayTitle(),
			status,
			Dim(r.CreatedAt.Format("2006-01-02")),
		})
	}
	return RenderTable([]string{"SLUG", "TITLE", "STATUS", "IMPORTED"}, rows)
}

// FormatRoadmapInspect renders one roadmap's tree.
func FormatRoadmapInspect(r *domain.Roadmap) string {
	var b strings.Builder
	b.WriteString(Header(r.DisplayTitle()))
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString(StyleFg.Render(r.Description))
		b.WriteString("\n")
	}
	if r.TimeValue > 0 {
		b.WriteString(Dim(fmt.Sprintf("Target: %d %s(s)", r.TimeValue, r.TimeUnit)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for mi, mod := range r.Modules {
		b.WriteString(StyleHeader.Render(fmt.Sprintf("%d. %s", mi+1, mod.Title)))
		if mod.Estimate != "" {
			b.WriteString(Dim("  " + mod.Estimate))
		}
		b.WriteString("\n")
		for _, topic := range mod.Topics {
			b.WriteString(StyleBold.Render("   " + topic.Title))
			if topic.Estimate != "" {
				b.WriteString(Dim("  " + topic.Estimate))
			}
			b.WriteString("\n")
			for _, sub := range topic.Subtopics {
				b.WriteString(StyleFg.Render("      - " + sub.Title))
				if sub.Estimate != "" {
					b.WriteString(Dim("  " + sub.Estimate))
				}
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// FormatImportResult renders the outcome of an import.
func FormatImportResult(result *service.ImportResult) string {
	return fmt.Sprintf("%s %s\n%s",
		StyleGreen.Render("Imported"),
		StyleBold.Render(result.Roadmap.DisplayTitle()),
		Dim(fmt.Sprintf("slug %s · %d modules, %d topics, %d subtopics",
			result.Roadmap.Slug, result.ModuleCount, result.TopicCount, result.SubtopicCount)))
}

// FormatExportHistory renders recent exports, newest first.
func FormatExportHistory(entries []service.HistoryEntry) string {
	if len(entries) == 0 {
		return Dim("No exports yet.")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		name := e.Record.Filename
		if name == "" {
			name = Dim("(quick-add link)")
		}
		rows = append(rows, []string{
			Dim(e.Record.CreatedAt.Format("2006-01-02 15:04")),
			e.RoadmapTitle,
			StyleAccent.Render(string(e.Record.Format)),
			name,
			fmt.Sprintf("%d", e.Record.EntryCount),
		})
	}
	return RenderTable([]string{"WHEN", "ROADMAP", "FORMAT", "FILE", "ENTRIES"}, rows)
}
