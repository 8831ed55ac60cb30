package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingFetcher struct{}

func (failingFetcher) FetchLogo(context.Context) (*Asset, error) {
	return nil, errors.New("network down")
}

func TestPDFRenderer_ProducesDocument(t *testing.T) {
	r := NewPDFRenderer(NoAssetFetcher{}, nil)

	var buf bytes.Buffer
	err := r.Render(context.Background(), calendarRoadmap(), &buf)
	require.NoError(t, err)

	require.Greater(t, buf.Len(), 500)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output must be a PDF")
}

func TestPDFRenderer_NilRoadmap(t *testing.T) {
	r := NewPDFRenderer(NoAssetFetcher{}, nil)

	err := r.Render(context.Background(), nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNilRoadmap)
}

func TestPDFRenderer_LogoFailureDegradesToWordmark(t *testing.T) {
	r := NewPDFRenderer(failingFetcher{}, nil)

	var buf bytes.Buffer
	err := r.Render(context.Background(), calendarRoadmap(), &buf)
	require.NoError(t, err, "logo failure must not surface")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPDFRenderer_NoModulesStillRenders(t *testing.T) {
	r := NewPDFRenderer(NoAssetFetcher{}, nil)

	var buf bytes.Buffer
	err := r.Render(context.Background(), &domain.Roadmap{Title: "Empty"}, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPDFRenderer_LargeRoadmapPaginates(t *testing.T) {
	big := &domain.Roadmap{Title: "Big"}
	for m := 0; m < 6; m++ {
		mod := domain.Module{Title: fmt.Sprintf("Module %d", m)}
		for ti := 0; ti < 4; ti++ {
			topic := domain.Topic{Title: fmt.Sprintf("Topic %d", ti)}
			for s := 0; s < 6; s++ {
				topic.Subtopics = append(topic.Subtopics, domain.Subtopic{
					Title:    fmt.Sprintf("Subtopic %d", s),
					Estimate: "30 minutes",
				})
			}
			mod.Topics = append(mod.Topics, topic)
		}
		big.Modules = append(big.Modules, mod)
	}

	r := NewPDFRenderer(NoAssetFetcher{}, nil)
	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), big, &buf))

	// 174 body lines cannot fit one A4 page; the pagination check must
	// have produced multiple page objects.
	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("/Type /Page")), 1)
}
