package domain

import "time"

// ExportRecord is one row of the export history log.
type ExportRecord struct {
	ID         string
	RoadmapID  string
	Format     ExportFormat
	Filename   string
	EntryCount int
	CreatedAt  time.Time
}
