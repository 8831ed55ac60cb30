package domain

import "time"

// Roadmap is the canonical in-memory shape of a learning roadmap after
// import normalization. The node tree is always fully materialized; repos
// reassemble it from rows before handing it to the scheduler or exporters.
type Roadmap struct {
	ID          string
	Slug        string
	Title       string
	Description string

	// Overall target duration as stated by the plan. Display only; the
	// schedule builder works from per-node estimates instead.
	TimeValue int
	TimeUnit  TimeUnit

	Source     string
	Modules    []Module
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Module is a top-level unit of a roadmap.
type Module struct {
	ID          string
	Title       string
	Description string
	Estimate    string // free text, e.g. "2-3 hours"
	Topics      []Topic
}

// Topic groups subtopics within a module.
type Topic struct {
	ID          string
	Title       string
	Description string
	Estimate    string
	Subtopics   []Subtopic
}

// Subtopic is a leaf work item; only subtopics consume study time.
type Subtopic struct {
	ID          string
	Title       string
	Description string
	Estimate    string
}

// NodeCount returns the number of modules, topics and subtopics in the tree.
func (r *Roadmap) NodeCount() (modules, topics, subtopics int) {
	modules = len(r.Modules)
	for _, m := range r.Modules {
		topics += len(m.Topics)
		for _, t := range m.Topics {
			subtopics += len(t.Subtopics)
		}
	}
	return modules, topics, subtopics
}

// DisplayTitle returns the title or a stand-in for untitled roadmaps.
func (r *Roadmap) DisplayTitle() string {
	return CoalesceStr(r.Title, "Untitled Roadmap")
}
