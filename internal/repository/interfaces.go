package repository

import (
	"context"
	"errors"

	"github.com/menttor/menttor-cli/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// RoadmapRepo persists roadmap trees. CreateTree writes the roadmap row and
// every node in a single transaction; Get reassembles the full tree, List
// returns metadata only (Modules left nil).
type RoadmapRepo interface {
	CreateTree(ctx context.Context, r *domain.Roadmap) error
	GetByID(ctx context.Context, id string) (*domain.Roadmap, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Roadmap, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Roadmap, error)
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ExportLogRepo interface {
	Create(ctx context.Context, e *domain.ExportRecord) error
	ListByRoadmap(ctx context.Context, roadmapID string) ([]*domain.ExportRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
}
