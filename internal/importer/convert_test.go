package importer

import (
	"testing"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsDomainTree(t *testing.T) {
	doc, err := ParseDocument([]byte(objectShape))
	require.NoError(t, err)
	require.Empty(t, ValidateDocument(doc))

	r := Convert(doc, domain.SourceFile)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "learn-go", r.Slug)
	assert.Equal(t, "Learn Go", r.Title)
	assert.Equal(t, domain.TimeUnit("week"), r.TimeUnit)
	assert.Equal(t, string(domain.SourceFile), r.Source)
	require.Len(t, r.Modules, 1)
	require.Len(t, r.Modules[0].Topics, 1)
	require.Len(t, r.Modules[0].Topics[0].Subtopics, 2)
	assert.Equal(t, "30 minutes", r.Modules[0].Topics[0].Subtopics[0].Estimate)
	assert.False(t, r.CreatedAt.IsZero())

	// Every node gets its own ID.
	assert.NotEqual(t, r.Modules[0].ID, r.Modules[0].Topics[0].ID)
}

func TestValidateDocument_CollectsAllErrors(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"time_unit": "fortnight",
		"modules": [
			{"topics": [{"subtopics": [{"description": "no title"}]}]}
		]
	}`))
	require.NoError(t, err)

	errs := ValidateDocument(doc)
	require.Len(t, errs, 4)
	assert.ErrorContains(t, errs[0], "time_unit")

	assert.Len(t, ValidateDocument(nil), 1)
	assert.NotEmpty(t, ValidateDocument(&Document{Title: "no modules"}))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Learn Go", "learn-go"},
		{"Intro to C++!", "intro-to-c"},
		{"  spaced   out  ", "spaced-out"},
		{"???", "roadmap"},
		{"", "roadmap"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
