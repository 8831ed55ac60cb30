package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/importer"
	"github.com/menttor/menttor-cli/internal/repository"
)

type roadmapService struct {
	roadmaps repository.RoadmapRepo
	fetcher  RoadmapFetcher
	obs      UseCaseObserver
}

// NewRoadmapService creates the roadmap library service. fetcher may be nil
// when URL import is not configured.
func NewRoadmapService(roadmaps repository.RoadmapRepo, fetcher RoadmapFetcher, observers ...UseCaseObserver) RoadmapService {
	return &roadmapService{
		roadmaps: roadmaps,
		fetcher:  fetcher,
		obs:      useCaseObserverOrNoop(observers),
	}
}

func (s *roadmapService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	doc, err := importer.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return s.ImportDocument(ctx, doc, domain.SourceFile)
}

func (s *roadmapService) ImportURL(ctx context.Context, url string) (*ImportResult, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("no backend configured; set MENTTOR_API_URL or import from a file")
	}
	doc, err := s.fetcher.FetchRoadmap(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.ImportDocument(ctx, doc, domain.SourceURL)
}

func (s *roadmapService) ImportDocument(ctx context.Context, doc *importer.Document, source domain.RoadmapSource) (result *ImportResult, err error) {
	start := time.Now()
	defer func() {
		fields := map[string]any{"source": string(source)}
		if result != nil {
			fields["roadmap_id"] = result.Roadmap.ID
			fields["subtopics"] = result.SubtopicCount
		}
		observe(ctx, s.obs, "roadmap_import", start, err, fields)
	}()

	if errs := importer.ValidateDocument(doc); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid roadmap document:\n  %s", strings.Join(msgs, "\n  "))
	}

	r := importer.Convert(doc, source)
	if err := s.ensureUniqueSlug(ctx, r); err != nil {
		return nil, err
	}
	if err := s.roadmaps.CreateTree(ctx, r); err != nil {
		return nil, err
	}

	modules, topics, subtopics := r.NodeCount()
	return &ImportResult{
		Roadmap:       r,
		ModuleCount:   modules,
		TopicCount:    topics,
		SubtopicCount: subtopics,
	}, nil
}

// ensureUniqueSlug suffixes the slug with a counter when the library
// already holds a roadmap under the same name.
func (s *roadmapService) ensureUniqueSlug(ctx context.Context, r *domain.Roadmap) error {
	base := r.Slug
	for i := 2; ; i++ {
		_, err := s.roadmaps.GetBySlug(ctx, r.Slug)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		r.Slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *roadmapService) Get(ctx context.Context, ref string) (*domain.Roadmap, error) {
	if ref == "" {
		return nil, fmt.Errorf("roadmap reference is required")
	}

	r, err := s.roadmaps.GetBySlug(ctx, ref)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	r, err = s.roadmaps.GetByID(ctx, ref)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// Fall back to a unique ID prefix match.
	all, err := s.roadmaps.List(ctx, true)
	if err != nil {
		return nil, err
	}
	var matches []string
	for _, candidate := range all {
		if strings.HasPrefix(candidate.ID, ref) {
			matches = append(matches, candidate.ID)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("roadmap %q: %w", ref, repository.ErrNotFound)
	case 1:
		return s.roadmaps.GetByID(ctx, matches[0])
	default:
		return nil, fmt.Errorf("roadmap reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func (s *roadmapService) List(ctx context.Context, includeArchived bool) ([]*domain.Roadmap, error) {
	return s.roadmaps.List(ctx, includeArchived)
}

func (s *roadmapService) Archive(ctx context.Context, ref string) error {
	r, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	return s.roadmaps.Archive(ctx, r.ID)
}

func (s *roadmapService) Unarchive(ctx context.Context, ref string) error {
	r, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	return s.roadmaps.Unarchive(ctx, r.ID)
}

func (s *roadmapService) Delete(ctx context.Context, ref string, force bool) error {
	r, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	if !force && r.ArchivedAt == nil {
		return fmt.Errorf("roadmap must be archived before deletion (use --force to override)")
	}
	return s.roadmaps.Delete(ctx, r.ID)
}
