package reconcile

import "time"

// Severity is the level a report entry is emitted at.
type Severity string

const (
	// SeverityInfo marks informational notes, including exempted findings.
	SeverityInfo Severity = "info"
	// SeverityWarning marks findings that need attention.
	SeverityWarning Severity = "warning"
	// SeveritySuccess marks completed mutations.
	SeveritySuccess Severity = "success"
	// SeverityFailure marks errors that ended a job run.
	SeverityFailure Severity = "failure"
)

// ObjectRef identifies the object an entry is attributed to.
type ObjectRef struct {
	// Type is the object type label, e.g. "dcim.device".
	Type string `json:"type"`
	// ID is the primary key of the object.
	ID uint `json:"id"`
	// Name is the display name of the object.
	Name string `json:"name"`
}

// Entry is a single line of a job report.
type Entry struct {
	// Time is when the entry was recorded.
	Time time.Time `json:"time"`

	// Severity is the entry level.
	Severity Severity `json:"severity"`

	// Object is the object the entry is about, if any.
	Object *ObjectRef `json:"object,omitempty"`

	// Category is the component category the entry concerns, if any.
	Category string `json:"category,omitempty"`

	// Message is the human readable text.
	Message string `json:"message"`

	// Names lists the affected component names.
	Names []string `json:"names,omitempty"`

	// Count is the number of affected components for mutations.
	Count int `json:"count,omitempty"`
}

// Summary provides aggregate counts for a job run.
type Summary struct {
	// Devices is the number of devices inspected.
	Devices int `json:"devices"`

	// Missing counts device categories with unexempted missing components.
	Missing int `json:"missing"`

	// Exempted counts device categories skipped or downgraded by an exemption tag.
	Exempted int `json:"exempted"`

	// MissingComponents counts individual unexempted missing components.
	MissingComponents int `json:"missing_components"`

	// Created counts components created.
	Created int `json:"created"`
}

// Options controls mutating reconciliation runs.
type Options struct {
	// DryRun computes what would be created without writing.
	DryRun bool
}
