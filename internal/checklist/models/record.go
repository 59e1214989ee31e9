package models

import (
	"time"
)

// Item is the recorded audit outcome for one catalogue guideline. Level is a
// denormalized copy of the guideline's conformance level at creation time so
// the record stays self-describing if the catalogue changes.
type Item struct {
	GuidelineID string `json:"guidelineId"`
	Level       Level  `json:"conformanceLevel"`
	Status      Status `json:"status"`
	Reason      string `json:"reason,omitempty"`
}

// Record is the persisted accessibility audit for one component. It is
// addressed either by ComponentID (pooled storage) or by ComponentPath
// (co-located storage), never both for the same deployment.
type Record struct {
	SchemaVersion string    `json:"schemaVersion"`
	ComponentID   string    `json:"componentIdentity"`
	ComponentName string    `json:"componentName,omitempty"`
	ComponentPath string    `json:"componentPath"`
	ContentHash   string    `json:"componentContentHash"`
	LastUpdated   time.Time `json:"lastUpdatedTimestamp"`
	UpdatedBy     string    `json:"updatedBy,omitempty"`
	Results       []Item    `json:"results"`
	Notes         string    `json:"notes,omitempty"`
	GeneratedBy   string    `json:"generatedByTag,omitempty"`
}

// HasFailures reports whether any item in the record has status fail.
func (r *Record) HasFailures() bool {
	for _, item := range r.Results {
		if item.Status == StatusFail {
			return true
		}
	}
	return false
}

// FailingItems returns the items with status fail, for reporting.
func (r *Record) FailingItems() []Item {
	var failing []Item
	for _, item := range r.Results {
		if item.Status == StatusFail {
			failing = append(failing, item)
		}
	}
	return failing
}

// Summary tallies item statuses for one record.
type Summary struct {
	Pass          int
	Fail          int
	NotApplicable int
	Unknown       int
	Total         int
}

// Summarize counts items per status. Statuses outside the enum are counted
// as unknown; validation, not summarization, is where they get rejected.
func (r *Record) Summarize() Summary {
	var s Summary
	for _, item := range r.Results {
		switch item.Status {
		case StatusPass:
			s.Pass++
		case StatusFail:
			s.Fail++
		case StatusNotApplicable:
			s.NotApplicable++
		default:
			s.Unknown++
		}
		s.Total++
	}
	return s
}
