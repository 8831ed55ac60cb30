package formatter

import (
	"fmt"
	"strings"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/schedule"
)

const dateLayout = "Mon Jan 02 2006"

// FormatSchedule renders the dated study plan as an indented table.
// Module rows anchor the layout; topic and subtopic rows are indented one
// and two levels under them.
func FormatSchedule(r *domain.Roadmap, entries []domain.ScheduleEntry) string {
	if len(entries) == 0 {
		return Dim("No schedule entries. The roadmap has no modules.")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		indent := ""
		switch e.Kind {
		case domain.EntryTopic:
			indent = "  "
		case domain.EntrySubtopic:
			indent = "    "
		}

		rows = append(rows, []string{
			e.StartDate.Format(dateLayout),
			KindStyle(e.Kind).Render(indent + e.Title),
			Dim(string(e.Kind)),
			formatMinutes(e.DurationMin),
		})
	}

	var b strings.Builder
	b.WriteString(Header(r.DisplayTitle()))
	b.WriteString("\n\n")
	b.WriteString(RenderTable([]string{"DATE", "ENTRY", "KIND", "DURATION"}, rows))

	modules, topics, subtopics := r.NodeCount()
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d modules, %d topics, %d subtopics · %d min/day budget",
		modules, topics, subtopics, schedule.DailyBudgetMin)))
	return b.String()
}

func formatMinutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh%02dm", min/60, min%60)
}
