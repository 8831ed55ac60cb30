package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/importer"
)

var slugCounter atomic.Int64

// RoadmapOption mutates a fixture roadmap before it is returned.
type RoadmapOption func(*domain.Roadmap)

func WithArchived(at time.Time) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.ArchivedAt = &at
	}
}

func WithDescription(desc string) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.Description = desc
	}
}

func WithModules(modules ...domain.Module) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.Modules = modules
	}
}

// NewTestRoadmap builds a roadmap with one module, one topic and two
// subtopics unless WithModules overrides the tree. The slug is suffixed
// with a counter so multiple fixtures can share a title.
func NewTestRoadmap(title string, opts ...RoadmapOption) *domain.Roadmap {
	now := time.Now().UTC()
	r := &domain.Roadmap{
		ID:        uuid.New().String(),
		Slug:      fmt.Sprintf("%s-%d", importer.Slugify(title), slugCounter.Add(1)),
		Title:     title,
		TimeValue: 2,
		TimeUnit:  domain.UnitWeek,
		Source:    string(domain.SourceFile),
		CreatedAt: now,
		UpdatedAt: now,
		Modules: []domain.Module{{
			ID:       uuid.New().String(),
			Title:    "Module One",
			Estimate: "1 week",
			Topics: []domain.Topic{{
				ID:       uuid.New().String(),
				Title:    "Topic One",
				Estimate: "2 hours",
				Subtopics: []domain.Subtopic{
					{ID: uuid.New().String(), Title: "First steps", Estimate: "30 minutes"},
					{ID: uuid.New().String(), Title: "Next steps", Estimate: "45 minutes"},
				},
			}},
		}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestModule builds a module with the given number of topics, each with
// the given number of subtopics.
func NewTestModule(title string, topics, subtopics int) domain.Module {
	mod := domain.Module{ID: uuid.New().String(), Title: title, Estimate: "1 week"}
	for ti := 0; ti < topics; ti++ {
		topic := domain.Topic{
			ID:    uuid.New().String(),
			Title: fmt.Sprintf("%s topic %d", title, ti+1),
		}
		for si := 0; si < subtopics; si++ {
			topic.Subtopics = append(topic.Subtopics, domain.Subtopic{
				ID:       uuid.New().String(),
				Title:    fmt.Sprintf("%s subtopic %d.%d", title, ti+1, si+1),
				Estimate: "30 minutes",
			})
		}
		mod.Topics = append(mod.Topics, topic)
	}
	return mod
}
