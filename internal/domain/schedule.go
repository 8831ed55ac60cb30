package domain

import "time"

// EntryKind distinguishes schedule rows.
type EntryKind string

const (
	EntryModule   EntryKind = "module"
	EntryTopic    EntryKind = "topic"
	EntrySubtopic EntryKind = "subtopic"
)

// ScheduleEntry is one row of the derived, dated study plan. Entries are
// ephemeral: rebuilt from the roadmap on every call, never persisted.
// Module and topic entries are markers placed at the cursor; only subtopic
// entries represent scheduled work.
type ScheduleEntry struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DurationMin int       `json:"duration_min"`
	StartDate   time.Time `json:"start_date"`
	Kind        EntryKind `json:"kind"`
	ModuleIndex int       `json:"module_index"`
	TopicIndex  int       `json:"topic_index,omitempty"`
}

// EndDate returns the entry's start plus its duration.
func (e ScheduleEntry) EndDate() time.Time {
	return e.StartDate.Add(time.Duration(e.DurationMin) * time.Minute)
}
