package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/menttor/menttor-cli/internal/domain"
)

// Document is the top-level roadmap import shape after normalization.
// The backend has historically emitted two top-level forms (a bare module
// array, and an object whose modules sit under "modules" or under a nested
// "roadmap_plan"), plus several field-name aliases. UnmarshalJSON folds all
// of them into this one canonical shape; nothing downstream sees the
// variants.
type Document struct {
	Title       string
	Description string
	TimeValue   int
	TimeUnit    string
	Modules     []ModuleImport
}

// ModuleImport defines a module in the import file.
type ModuleImport struct {
	Name        string
	Description string
	Estimate    string
	Topics      []TopicImport
}

// TopicImport defines a topic in the import file.
type TopicImport struct {
	Name        string
	Description string
	Estimate    string
	Subtopics   []SubtopicImport
}

// SubtopicImport defines a leaf study item in the import file.
type SubtopicImport struct {
	Title       string
	Description string
	Estimate    string
}

type rawDocument struct {
	Title       string          `json:"title"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	TimeValue   int             `json:"time_value"`
	TimeUnit    string          `json:"time_unit"`
	RoadmapPlan json.RawMessage `json:"roadmap_plan"`
	Modules     []ModuleImport  `json:"modules"`
}

type rawModule struct {
	Name        string        `json:"name"`
	ModuleName  string        `json:"module_name"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Estimate    string        `json:"estimated_duration"`
	Topics      []TopicImport `json:"topics"`
}

type rawTopic struct {
	Name        string           `json:"name"`
	TopicName   string           `json:"topic_name"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Estimate    string           `json:"estimated_duration"`
	Subtopics   []SubtopicImport `json:"subtopics"`
}

type rawSubtopic struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Estimate    string `json:"estimated_duration"`
}

func (d *Document) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	// Bare module array.
	if trimmed[0] == '[' {
		var modules []ModuleImport
		if err := json.Unmarshal(trimmed, &modules); err != nil {
			return err
		}
		d.Modules = modules
		return nil
	}

	var raw rawDocument
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	d.Title = domain.CoalesceStr(raw.Title, raw.Name)
	d.Description = raw.Description
	d.TimeValue = raw.TimeValue
	d.TimeUnit = raw.TimeUnit
	d.Modules = raw.Modules

	// Nested roadmap_plan: itself either a bare array or a {modules} object.
	if d.Modules == nil && len(raw.RoadmapPlan) > 0 {
		var nested Document
		if err := json.Unmarshal(raw.RoadmapPlan, &nested); err != nil {
			return fmt.Errorf("parsing roadmap_plan: %w", err)
		}
		d.Modules = nested.Modules
		d.Title = domain.CoalesceStr(d.Title, nested.Title)
		d.Description = domain.CoalesceStr(d.Description, nested.Description)
		if d.TimeValue == 0 {
			d.TimeValue = nested.TimeValue
		}
		d.TimeUnit = domain.CoalesceStr(d.TimeUnit, nested.TimeUnit)
	}

	return nil
}

func (m *ModuleImport) UnmarshalJSON(data []byte) error {
	var raw rawModule
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Name = domain.CoalesceStr(raw.Name, raw.ModuleName, raw.Title)
	m.Description = raw.Description
	m.Estimate = raw.Estimate
	m.Topics = raw.Topics
	return nil
}

func (t *TopicImport) UnmarshalJSON(data []byte) error {
	var raw rawTopic
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Name = domain.CoalesceStr(raw.Name, raw.TopicName, raw.Title)
	t.Description = raw.Description
	t.Estimate = raw.Estimate
	t.Subtopics = raw.Subtopics
	return nil
}

func (s *SubtopicImport) UnmarshalJSON(data []byte) error {
	var raw rawSubtopic
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Title = domain.CoalesceStr(raw.Title, raw.Name)
	s.Description = raw.Description
	s.Estimate = raw.Estimate
	return nil
}

// LoadDocument reads and parses a roadmap export JSON file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// ParseDocument parses roadmap export JSON from a byte slice.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing roadmap document: %w", err)
	}
	return &doc, nil
}
