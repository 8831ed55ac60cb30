package cli

import (
	"context"
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/menttor/menttor-cli/internal/export"
	"github.com/menttor/menttor-cli/internal/importer"
	"github.com/menttor/menttor-cli/internal/repository"
	"github.com/menttor/menttor-cli/internal/service"
	"github.com/menttor/menttor-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const browseFixtureJSON = `{
	"title": "Learn Go",
	"modules": [
		{
			"name": "Basics",
			"topics": [
				{
					"name": "Syntax",
					"subtopics": [
						{"title": "Variables", "estimated_duration": "30 minutes"},
						{"title": "Functions", "estimated_duration": "45 minutes"}
					]
				}
			]
		}
	]
}`

func testApp(t *testing.T) *App {
	t.Helper()

	db := testutil.NewTestDB(t)
	roadmapRepo := repository.NewSQLiteRoadmapRepo(db)
	exportRepo := repository.NewSQLiteExportLogRepo(db)

	roadmaps := service.NewRoadmapService(roadmapRepo, nil)
	schedules := service.NewScheduleService(roadmaps)
	exports := service.NewExportService(roadmaps, exportRepo,
		export.NewPDFRenderer(export.NoAssetFetcher{}, nil))

	return &App{
		Roadmaps:      roadmaps,
		Schedules:     schedules,
		Exports:       exports,
		IsInteractive: func() bool { return false },
	}
}

func seedRoadmap(t *testing.T, app *App) {
	t.Helper()

	var doc importer.Document
	require.NoError(t, json.Unmarshal([]byte(browseFixtureJSON), &doc))
	_, err := app.Roadmaps.ImportDocument(context.Background(), &doc, domain.SourceFile)
	require.NoError(t, err)
}

// drive applies Init and any returned commands until the model settles.
func drive(m *browseModel) {
	cmd := m.Init()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		var next tea.Cmd
		_, next = m.Update(msg)
		cmd = next
	}
}

func pressKey(m *browseModel, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestBrowse_ListsRoadmaps(t *testing.T) {
	app := testApp(t)
	seedRoadmap(t, app)

	m := newBrowseModel(app)
	drive(m)

	view := m.View()
	assert.Contains(t, view, "Learn Go")
	assert.Contains(t, view, "1 modules")
	assert.Contains(t, view, "2 sessions")
}

func TestBrowse_EmptyLibrary(t *testing.T) {
	app := testApp(t)

	m := newBrowseModel(app)
	drive(m)

	assert.Contains(t, m.View(), "No roadmaps imported yet.")
}

func TestBrowse_EnterShowsSchedule(t *testing.T) {
	app := testApp(t)
	seedRoadmap(t, app)

	m := newBrowseModel(app)
	drive(m)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cmd := pressKey(m, "enter")
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, focusSchedule, m.focus)
	view := m.View()
	assert.Contains(t, view, "Variables")
	assert.Contains(t, view, "Functions")
}

func TestBrowse_EscReturnsToList(t *testing.T) {
	app := testApp(t)
	seedRoadmap(t, app)

	m := newBrowseModel(app)
	drive(m)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cmd := pressKey(m, "enter")
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.Equal(t, focusSchedule, m.focus)

	pressKey(m, "esc")
	assert.Equal(t, focusList, m.focus)
	assert.Nil(t, m.selected)
}

func TestBrowse_CursorMovement(t *testing.T) {
	app := testApp(t)
	seedRoadmap(t, app)
	seedRoadmap(t, app) // duplicate title gets a suffixed slug

	m := newBrowseModel(app)
	drive(m)

	require.Len(t, m.roadmaps, 2)
	assert.Equal(t, 0, m.cursor)

	pressKey(m, "j")
	assert.Equal(t, 1, m.cursor)
	pressKey(m, "j")
	assert.Equal(t, 1, m.cursor)
	pressKey(m, "k")
	assert.Equal(t, 0, m.cursor)
}
