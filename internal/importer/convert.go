package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/menttor/menttor-cli/internal/domain"
)

// Convert transforms a validated Document into a domain roadmap ready for
// persistence. Call ValidateDocument first; Convert assumes the document is
// structurally valid.
func Convert(doc *Document, source domain.RoadmapSource) *domain.Roadmap {
	now := time.Now().UTC()

	r := &domain.Roadmap{
		ID:          uuid.New().String(),
		Title:       doc.Title,
		Description: doc.Description,
		TimeValue:   doc.TimeValue,
		TimeUnit:    domain.TimeUnit(doc.TimeUnit),
		Source:      string(source),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.Slug = Slugify(domain.CoalesceStr(doc.Title, "roadmap"))

	r.Modules = make([]domain.Module, 0, len(doc.Modules))
	for _, m := range doc.Modules {
		mod := domain.Module{
			ID:          uuid.New().String(),
			Title:       m.Name,
			Description: m.Description,
			Estimate:    m.Estimate,
		}
		for _, t := range m.Topics {
			topic := domain.Topic{
				ID:          uuid.New().String(),
				Title:       t.Name,
				Description: t.Description,
				Estimate:    t.Estimate,
			}
			for _, s := range t.Subtopics {
				topic.Subtopics = append(topic.Subtopics, domain.Subtopic{
					ID:          uuid.New().String(),
					Title:       s.Title,
					Description: s.Description,
					Estimate:    s.Estimate,
				})
			}
			mod.Topics = append(mod.Topics, topic)
		}
		r.Modules = append(r.Modules, mod)
	}

	return r
}

// Slugify lowercases the title and collapses runs of non-alphanumerics into
// single hyphens, for use as a stable human-friendly lookup key.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "roadmap"
	}
	return slug
}
