package repository

import (
	"context"
	"testing"
	"time"

	"github.com/menttor/menttor-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapRepo_CreateAndGetRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRoadmapRepo(database)
	ctx := context.Background()

	rm := testutil.NewTestRoadmap("Learn Go")
	require.NoError(t, repo.CreateTree(ctx, rm))

	got, err := repo.GetByID(ctx, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, rm.Title, got.Title)
	assert.Equal(t, rm.Slug, got.Slug)
	require.Len(t, got.Modules, 1)
	require.Len(t, got.Modules[0].Topics, 1)
	require.Len(t, got.Modules[0].Topics[0].Subtopics, 2)
	assert.Equal(t, "First steps", got.Modules[0].Topics[0].Subtopics[0].Title)
	assert.Equal(t, "30 minutes", got.Modules[0].Topics[0].Subtopics[0].Estimate)

	bySlug, err := repo.GetBySlug(ctx, rm.Slug)
	require.NoError(t, err)
	assert.Equal(t, rm.ID, bySlug.ID)
}

func TestRoadmapRepo_TreeOrderPreserved(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRoadmapRepo(database)
	ctx := context.Background()

	rm := testutil.NewTestRoadmap("Ordered",
		testutil.WithModules(
			testutil.NewTestModule("Alpha", 2, 2),
			testutil.NewTestModule("Beta", 1, 3),
			testutil.NewTestModule("Gamma", 3, 1),
		))
	require.NoError(t, repo.CreateTree(ctx, rm))

	got, err := repo.GetByID(ctx, rm.ID)
	require.NoError(t, err)
	require.Len(t, got.Modules, 3)
	assert.Equal(t, "Alpha", got.Modules[0].Title)
	assert.Equal(t, "Beta", got.Modules[1].Title)
	assert.Equal(t, "Gamma", got.Modules[2].Title)
	assert.Equal(t, "Beta topic 1", got.Modules[1].Topics[0].Title)
	require.Len(t, got.Modules[1].Topics[0].Subtopics, 3)
	assert.Equal(t, "Beta subtopic 1.2", got.Modules[1].Topics[0].Subtopics[1].Title)
}

func TestRoadmapRepo_ListSkipsArchived(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRoadmapRepo(database)
	ctx := context.Background()

	active := testutil.NewTestRoadmap("Active")
	archived := testutil.NewTestRoadmap("Archived", testutil.WithArchived(time.Now().UTC()))
	require.NoError(t, repo.CreateTree(ctx, active))
	require.NoError(t, repo.CreateTree(ctx, archived))

	visible, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.ID, visible[0].ID)
	assert.Nil(t, visible[0].Modules, "List returns metadata only")

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRoadmapRepo_ArchiveUnarchive(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRoadmapRepo(database)
	ctx := context.Background()

	rm := testutil.NewTestRoadmap("Flip")
	require.NoError(t, repo.CreateTree(ctx, rm))

	require.NoError(t, repo.Archive(ctx, rm.ID))
	got, err := repo.GetByID(ctx, rm.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.ArchivedAt)

	require.NoError(t, repo.Unarchive(ctx, rm.ID))
	got, err = repo.GetByID(ctx, rm.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ArchivedAt)
}

func TestRoadmapRepo_DeleteCascadesNodes(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRoadmapRepo(database)
	ctx := context.Background()

	rm := testutil.NewTestRoadmap("Doomed")
	require.NoError(t, repo.CreateTree(ctx, rm))
	require.NoError(t, repo.Delete(ctx, rm.ID))

	_, err := repo.GetByID(ctx, rm.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM roadmap_nodes WHERE roadmap_id = ?`, rm.ID).Scan(&count))
	assert.Zero(t, count, "node rows must cascade")
}

func TestRoadmapRepo_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRoadmapRepo(database)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Archive(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), ErrNotFound)
}
