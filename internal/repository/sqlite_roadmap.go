package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/menttor/menttor-cli/internal/domain"
)

// SQLiteRoadmapRepo implements RoadmapRepo using a SQLite database.
type SQLiteRoadmapRepo struct {
	db *sql.DB
}

// NewSQLiteRoadmapRepo creates a new SQLiteRoadmapRepo.
func NewSQLiteRoadmapRepo(db *sql.DB) *SQLiteRoadmapRepo {
	return &SQLiteRoadmapRepo{db: db}
}

func (r *SQLiteRoadmapRepo) CreateTree(ctx context.Context, rm *domain.Roadmap) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO roadmaps (id, slug, title, description, time_value, time_unit, source, archived_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rm.ID,
		rm.Slug,
		rm.Title,
		rm.Description,
		rm.TimeValue,
		string(rm.TimeUnit),
		rm.Source,
		nullableTimeToString(rm.ArchivedAt, time.RFC3339),
		rm.CreatedAt.Format(time.RFC3339),
		rm.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting roadmap: %w", err)
	}

	insertNode := func(id string, parentID interface{}, kind domain.NodeKind, title, description, estimate string, order int) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO roadmap_nodes (id, roadmap_id, parent_id, kind, title, description, estimate, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, rm.ID, parentID, string(kind), title, description, estimate, order)
		if err != nil {
			return fmt.Errorf("inserting %s node %q: %w", kind, title, err)
		}
		return nil
	}

	for mi, mod := range rm.Modules {
		if err := insertNode(mod.ID, nil, domain.NodeModule, mod.Title, mod.Description, mod.Estimate, mi); err != nil {
			return err
		}
		for ti, topic := range mod.Topics {
			if err := insertNode(topic.ID, mod.ID, domain.NodeTopic, topic.Title, topic.Description, topic.Estimate, ti); err != nil {
				return err
			}
			for si, sub := range topic.Subtopics {
				if err := insertNode(sub.ID, topic.ID, domain.NodeSubtopic, sub.Title, sub.Description, sub.Estimate, si); err != nil {
					return err
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing roadmap tree: %w", err)
	}
	return nil
}

const roadmapColumns = `id, slug, title, description, time_value, time_unit, source, archived_at, created_at, updated_at`

func (r *SQLiteRoadmapRepo) GetByID(ctx context.Context, id string) (*domain.Roadmap, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roadmapColumns+` FROM roadmaps WHERE id = ?`, id)
	rm, err := scanRoadmap(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadTree(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *SQLiteRoadmapRepo) GetBySlug(ctx context.Context, slug string) (*domain.Roadmap, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roadmapColumns+` FROM roadmaps WHERE slug = ?`, slug)
	rm, err := scanRoadmap(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadTree(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *SQLiteRoadmapRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Roadmap, error) {
	query := `SELECT ` + roadmapColumns + ` FROM roadmaps WHERE archived_at IS NULL ORDER BY created_at`
	if includeArchived {
		query = `SELECT ` + roadmapColumns + ` FROM roadmaps ORDER BY created_at`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing roadmaps: %w", err)
	}
	defer rows.Close()

	var roadmaps []*domain.Roadmap
	for rows.Next() {
		rm, err := scanRoadmap(rows)
		if err != nil {
			return nil, err
		}
		roadmaps = append(roadmaps, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roadmaps: %w", err)
	}
	return roadmaps, nil
}

func (r *SQLiteRoadmapRepo) Archive(ctx context.Context, id string) error {
	return r.setArchived(ctx, id, nowUTC())
}

func (r *SQLiteRoadmapRepo) Unarchive(ctx context.Context, id string) error {
	return r.setArchived(ctx, id, nil)
}

func (r *SQLiteRoadmapRepo) setArchived(ctx context.Context, id string, archivedAt interface{}) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE roadmaps SET archived_at = ?, updated_at = ? WHERE id = ?`,
		archivedAt, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating roadmap archive state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("roadmap %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRoadmapRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roadmaps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting roadmap: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("roadmap %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoadmap(row rowScanner) (*domain.Roadmap, error) {
	var rm domain.Roadmap
	var timeUnit, createdAt, updatedAt string
	var archivedAt sql.NullString

	err := row.Scan(&rm.ID, &rm.Slug, &rm.Title, &rm.Description, &rm.TimeValue,
		&timeUnit, &rm.Source, &archivedAt, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("roadmap: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning roadmap: %w", err)
	}

	rm.TimeUnit = domain.TimeUnit(timeUnit)
	rm.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	rm.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	rm.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &rm, nil
}

type nodeRow struct {
	id          string
	parentID    sql.NullString
	kind        string
	title       string
	description string
	estimate    string
}

// loadTree reassembles Modules/Topics/Subtopics from node rows. Rows come
// back ordered parent-first within each level, so a single pass with index
// maps rebuilds the tree.
func (r *SQLiteRoadmapRepo) loadTree(ctx context.Context, rm *domain.Roadmap) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, parent_id, kind, title, description, estimate
		FROM roadmap_nodes WHERE roadmap_id = ?
		ORDER BY CASE kind WHEN 'module' THEN 0 WHEN 'topic' THEN 1 ELSE 2 END, order_index`,
		rm.ID)
	if err != nil {
		return fmt.Errorf("loading roadmap nodes: %w", err)
	}
	defer rows.Close()

	moduleIdx := make(map[string]int)
	topicIdx := make(map[string][2]int)

	for rows.Next() {
		var n nodeRow
		if err := rows.Scan(&n.id, &n.parentID, &n.kind, &n.title, &n.description, &n.estimate); err != nil {
			return fmt.Errorf("scanning roadmap node: %w", err)
		}

		switch domain.NodeKind(n.kind) {
		case domain.NodeModule:
			rm.Modules = append(rm.Modules, domain.Module{
				ID: n.id, Title: n.title, Description: n.description, Estimate: n.estimate,
			})
			moduleIdx[n.id] = len(rm.Modules) - 1

		case domain.NodeTopic:
			mi, ok := moduleIdx[n.parentID.String]
			if !ok {
				return fmt.Errorf("topic %s references unknown module %s", n.id, n.parentID.String)
			}
			rm.Modules[mi].Topics = append(rm.Modules[mi].Topics, domain.Topic{
				ID: n.id, Title: n.title, Description: n.description, Estimate: n.estimate,
			})
			topicIdx[n.id] = [2]int{mi, len(rm.Modules[mi].Topics) - 1}

		case domain.NodeSubtopic:
			pos, ok := topicIdx[n.parentID.String]
			if !ok {
				return fmt.Errorf("subtopic %s references unknown topic %s", n.id, n.parentID.String)
			}
			topic := &rm.Modules[pos[0]].Topics[pos[1]]
			topic.Subtopics = append(topic.Subtopics, domain.Subtopic{
				ID: n.id, Title: n.title, Description: n.description, Estimate: n.estimate,
			})
		}
	}
	return rows.Err()
}
