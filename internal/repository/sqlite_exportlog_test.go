package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logRecord(roadmapID string, format domain.ExportFormat, at time.Time) *domain.ExportRecord {
	return &domain.ExportRecord{
		ID:         uuid.New().String(),
		RoadmapID:  roadmapID,
		Format:     format,
		Filename:   "Learn_Go_timetable.pdf",
		EntryCount: 9,
		CreatedAt:  at,
	}
}

func TestExportLogRepo_CreateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	roadmaps := NewSQLiteRoadmapRepo(database)
	exports := NewSQLiteExportLogRepo(database)
	ctx := context.Background()

	rm := testutil.NewTestRoadmap("Learn Go")
	require.NoError(t, roadmaps.CreateTree(ctx, rm))

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, exports.Create(ctx, logRecord(rm.ID, domain.ExportPDF, now.Add(-time.Hour))))
	require.NoError(t, exports.Create(ctx, logRecord(rm.ID, domain.ExportICS, now)))

	records, err := exports.ListByRoadmap(ctx, rm.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.ExportICS, records[0].Format, "newest first")
	assert.Equal(t, 9, records[0].EntryCount)
}

func TestExportLogRepo_ListRecentLimit(t *testing.T) {
	database := testutil.NewTestDB(t)
	roadmaps := NewSQLiteRoadmapRepo(database)
	exports := NewSQLiteExportLogRepo(database)
	ctx := context.Background()

	rm := testutil.NewTestRoadmap("Busy")
	require.NoError(t, roadmaps.CreateTree(ctx, rm))

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		require.NoError(t, exports.Create(ctx,
			logRecord(rm.ID, domain.ExportPDF, base.Add(time.Duration(i)*time.Minute))))
	}

	records, err := exports.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestExportLogRepo_RejectsUnknownRoadmap(t *testing.T) {
	database := testutil.NewTestDB(t)
	exports := NewSQLiteExportLogRepo(database)

	err := exports.Create(context.Background(),
		logRecord("no-such-roadmap", domain.ExportPDF, time.Now().UTC()))
	assert.Error(t, err, "foreign key must reject orphan export rows")
}
