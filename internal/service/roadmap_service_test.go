package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/importer"
	"github.com/menttor/menttor-cli/internal/repository"
	"github.com/menttor/menttor-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importJSON = `{
	"title": "Learn Go",
	"description": "From zero to production",
	"time_value": 6,
	"time_unit": "week",
	"modules": [
		{
			"name": "Basics",
			"estimated_duration": "1 week",
			"topics": [
				{
					"name": "Syntax",
					"subtopics": [
						{"title": "Variables", "estimated_duration": "30 minutes"}
					]
				}
			]
		}
	]
}`

func newRoadmapService(t *testing.T, fetcher RoadmapFetcher) RoadmapService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewRoadmapService(repository.NewSQLiteRoadmapRepo(database), fetcher)
}

func TestRoadmapService_ImportFile(t *testing.T) {
	svc := newRoadmapService(t, nil)

	path := filepath.Join(t.TempDir(), "roadmap.json")
	require.NoError(t, os.WriteFile(path, []byte(importJSON), 0644))

	result, err := svc.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ModuleCount)
	assert.Equal(t, 1, result.TopicCount)
	assert.Equal(t, 1, result.SubtopicCount)
	assert.Equal(t, "learn-go", result.Roadmap.Slug)

	stored, err := svc.Get(context.Background(), "learn-go")
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", stored.Title)
	require.Len(t, stored.Modules, 1)
}

func TestRoadmapService_ImportRejectsInvalidDocument(t *testing.T) {
	svc := newRoadmapService(t, nil)

	doc, err := importer.ParseDocument([]byte(`{"title": "empty"}`))
	require.NoError(t, err)

	_, err = svc.ImportDocument(context.Background(), doc, domain.SourceFile)
	assert.ErrorContains(t, err, "no modules found")
}

func TestRoadmapService_DuplicateSlugSuffixed(t *testing.T) {
	svc := newRoadmapService(t, nil)
	ctx := context.Background()

	doc, err := importer.ParseDocument([]byte(importJSON))
	require.NoError(t, err)

	first, err := svc.ImportDocument(ctx, doc, domain.SourceFile)
	require.NoError(t, err)
	second, err := svc.ImportDocument(ctx, doc, domain.SourceFile)
	require.NoError(t, err)
	third, err := svc.ImportDocument(ctx, doc, domain.SourceFile)
	require.NoError(t, err)

	assert.Equal(t, "learn-go", first.Roadmap.Slug)
	assert.Equal(t, "learn-go-2", second.Roadmap.Slug)
	assert.Equal(t, "learn-go-3", third.Roadmap.Slug)
}

type stubFetcher struct {
	doc *importer.Document
	err error
}

func (f stubFetcher) FetchRoadmap(context.Context, string) (*importer.Document, error) {
	return f.doc, f.err
}

func TestRoadmapService_ImportURL(t *testing.T) {
	doc, err := importer.ParseDocument([]byte(importJSON))
	require.NoError(t, err)

	svc := newRoadmapService(t, stubFetcher{doc: doc})
	result, err := svc.ImportURL(context.Background(), "https://menttor.app/api/roadmaps/rm-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.SourceURL), result.Roadmap.Source)
}

func TestRoadmapService_ImportURLWithoutFetcher(t *testing.T) {
	svc := newRoadmapService(t, nil)
	_, err := svc.ImportURL(context.Background(), "rm-1")
	assert.ErrorContains(t, err, "no backend configured")
}

func TestRoadmapService_GetResolvesPrefix(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRoadmapRepo(database)
	svc := NewRoadmapService(repo, nil)
	ctx := context.Background()

	rm := testutil.NewTestRoadmap("Prefixed")
	require.NoError(t, repo.CreateTree(ctx, rm))

	byPrefix, err := svc.Get(ctx, rm.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, rm.ID, byPrefix.ID)

	byID, err := svc.Get(ctx, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, rm.ID, byID.ID)

	_, err = svc.Get(ctx, "zz-no-such")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRoadmapService_DeleteRequiresArchiveUnlessForced(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRoadmapRepo(database)
	svc := NewRoadmapService(repo, nil)
	ctx := context.Background()

	rm := testutil.NewTestRoadmap("Keeper")
	require.NoError(t, repo.CreateTree(ctx, rm))

	err := svc.Delete(ctx, rm.Slug, false)
	assert.ErrorContains(t, err, "must be archived")

	require.NoError(t, svc.Archive(ctx, rm.Slug))
	assert.NoError(t, svc.Delete(ctx, rm.Slug, false))
}
