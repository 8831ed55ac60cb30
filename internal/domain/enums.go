package domain

type TimeUnit string

const (
	UnitMinute TimeUnit = "minute"
	UnitHour   TimeUnit = "hour"
	UnitDay    TimeUnit = "day"
	UnitWeek   TimeUnit = "week"
)

// ValidTimeUnits is the canonical set of accepted time unit strings.
var ValidTimeUnits = map[string]bool{
	"minute": true, "hour": true, "day": true, "week": true,
}

type NodeKind string

const (
	NodeModule   NodeKind = "module"
	NodeTopic    NodeKind = "topic"
	NodeSubtopic NodeKind = "subtopic"
)

// ValidNodeKinds is the canonical set of accepted node kind strings.
var ValidNodeKinds = map[string]bool{
	"module": true, "topic": true, "subtopic": true,
}

type ExportFormat string

const (
	ExportPDF      ExportFormat = "pdf"
	ExportICS      ExportFormat = "ics"
	ExportQuickAdd ExportFormat = "gcal"
)

// ValidExportFormats is the canonical set of accepted export format strings.
var ValidExportFormats = map[string]bool{
	"pdf": true, "ics": true, "gcal": true,
}

type RoadmapSource string

const (
	SourceFile RoadmapSource = "file"
	SourceURL  RoadmapSource = "url"
)
