package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/menttor/menttor-cli/internal/domain"
)

// SQLiteExportLogRepo implements ExportLogRepo using a SQLite database.
type SQLiteExportLogRepo struct {
	db *sql.DB
}

// NewSQLiteExportLogRepo creates a new SQLiteExportLogRepo.
func NewSQLiteExportLogRepo(db *sql.DB) *SQLiteExportLogRepo {
	return &SQLiteExportLogRepo{db: db}
}

func (r *SQLiteExportLogRepo) Create(ctx context.Context, e *domain.ExportRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO export_log (id, roadmap_id, format, filename, entry_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.RoadmapID,
		string(e.Format),
		e.Filename,
		e.EntryCount,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting export record: %w", err)
	}
	return nil
}

func (r *SQLiteExportLogRepo) ListByRoadmap(ctx context.Context, roadmapID string) ([]*domain.ExportRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, roadmap_id, format, filename, entry_count, created_at
		FROM export_log WHERE roadmap_id = ? ORDER BY created_at DESC`, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}
	defer rows.Close()
	return scanExportRecords(rows)
}

func (r *SQLiteExportLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, roadmap_id, format, filename, entry_count, created_at
		FROM export_log ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent exports: %w", err)
	}
	defer rows.Close()
	return scanExportRecords(rows)
}

func scanExportRecords(rows *sql.Rows) ([]*domain.ExportRecord, error) {
	var records []*domain.ExportRecord
	for rows.Next() {
		var e domain.ExportRecord
		var format, createdAt string
		if err := rows.Scan(&e.ID, &e.RoadmapID, &format, &e.Filename, &e.EntryCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning export record: %w", err)
		}
		e.Format = domain.ExportFormat(format)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating export records: %w", err)
	}
	return records, nil
}
