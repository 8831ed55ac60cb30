package schedule

import (
	"time"

	"github.com/menttor/menttor-cli/internal/domain"
)

// DailyBudgetMin is the fixed study budget per calendar day.
const DailyBudgetMin = 120

// Build walks the roadmap in document order (module, its topics, each
// topic's subtopics) and produces one dated entry per node, starting at
// start. A nil roadmap or an empty module list yields an empty slice.
//
// Module and topic entries are markers: their estimates are parsed into
// DurationMin but never advance the cursor. Only subtopic minutes consume
// the daily budget; once the running counter reaches DailyBudgetMin the
// cursor advances a whole day per full budget consumed and the remainder
// carries over. After each module the cursor advances one buffer day and
// the counter resets. Callers relying on the output must not reorder it:
// document order is the only ordering guarantee.
func Build(r *domain.Roadmap, start time.Time) []domain.ScheduleEntry {
	if r == nil || len(r.Modules) == 0 {
		return nil
	}

	entries := make([]domain.ScheduleEntry, 0, totalNodes(r))
	cursor := start
	minutesToday := 0

	for mi, mod := range r.Modules {
		entries = append(entries, domain.ScheduleEntry{
			Title:       mod.Title,
			Description: mod.Description,
			DurationMin: ParseEstimate(mod.Estimate, DefaultModuleMin),
			StartDate:   cursor,
			Kind:        domain.EntryModule,
			ModuleIndex: mi,
		})

		for ti, topic := range mod.Topics {
			entries = append(entries, domain.ScheduleEntry{
				Title:       topic.Title,
				Description: topic.Description,
				DurationMin: ParseEstimate(topic.Estimate, DefaultTopicMin),
				StartDate:   cursor,
				Kind:        domain.EntryTopic,
				ModuleIndex: mi,
				TopicIndex:  ti,
			})

			for _, sub := range topic.Subtopics {
				minutes := ParseEstimate(sub.Estimate, DefaultSubtopicMin)
				entries = append(entries, domain.ScheduleEntry{
					Title:       sub.Title,
					Description: sub.Description,
					DurationMin: minutes,
					StartDate:   cursor,
					Kind:        domain.EntrySubtopic,
					ModuleIndex: mi,
					TopicIndex:  ti,
				})

				minutesToday += minutes
				if minutesToday >= DailyBudgetMin {
					days := minutesToday / DailyBudgetMin
					cursor = cursor.AddDate(0, 0, days)
					minutesToday -= days * DailyBudgetMin
				}
			}
		}

		// One-day buffer between modules regardless of remaining budget.
		cursor = cursor.AddDate(0, 0, 1)
		minutesToday = 0
	}

	return entries
}

// Subtopics filters the schedule down to leaf work entries, the only kind
// that becomes calendar events.
func Subtopics(entries []domain.ScheduleEntry) []domain.ScheduleEntry {
	var out []domain.ScheduleEntry
	for _, e := range entries {
		if e.Kind == domain.EntrySubtopic {
			out = append(out, e)
		}
	}
	return out
}

// FirstSubtopic returns the first leaf work entry, if any.
func FirstSubtopic(entries []domain.ScheduleEntry) (domain.ScheduleEntry, bool) {
	for _, e := range entries {
		if e.Kind == domain.EntrySubtopic {
			return e, true
		}
	}
	return domain.ScheduleEntry{}, false
}

func totalNodes(r *domain.Roadmap) int {
	m, t, s := r.NodeCount()
	return m + t + s
}
