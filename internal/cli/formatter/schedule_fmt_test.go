package formatter

import (
	"testing"
	"time"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/schedule"
	"github.com/menttor/menttor-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatSchedule_ContainsEveryEntry(t *testing.T) {
	r := testutil.NewTestRoadmap("Learn Go")
	entries := schedule.Build(r, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	out := FormatSchedule(r, entries)
	assert.Contains(t, out, "LEARN GO")
	assert.Contains(t, out, "Module One")
	assert.Contains(t, out, "Topic One")
	assert.Contains(t, out, "First steps")
	assert.Contains(t, out, "Mon Mar 02 2026")
	assert.Contains(t, out, "1 modules, 1 topics, 2 subtopics")
}

func TestFormatSchedule_Empty(t *testing.T) {
	r := &domain.Roadmap{Title: "Empty"}
	out := FormatSchedule(r, nil)
	assert.Contains(t, out, "No schedule entries")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", formatMinutes(45))
	assert.Equal(t, "2h", formatMinutes(120))
	assert.Equal(t, "1h30m", formatMinutes(90))
}

func TestFormatRoadmapList(t *testing.T) {
	active := testutil.NewTestRoadmap("Active One")
	archived := testutil.NewTestRoadmap("Old One", testutil.WithArchived(time.Now()))

	out := FormatRoadmapList([]*domain.Roadmap{active, archived})
	assert.Contains(t, out, "Active One")
	assert.Contains(t, out, "Old One")
	assert.Contains(t, out, "archived")

	assert.Contains(t, FormatRoadmapList(nil), "No roadmaps")
}
