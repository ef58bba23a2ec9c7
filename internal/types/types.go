// Package types defines core domain types used throughout stampname.
package types

// DateSource records where a file's date came from
type DateSource string

const (
	SourceLegacy    DateSource = "legacy"
	SourceRawFolder DateSource = "raw"
	SourceFallback  DateSource = "fallback"
)

// Label returns the progress label printed for renames from this source
func (s DateSource) Label() string {
	switch s {
	case SourceLegacy:
		return "Legacy"
	case SourceRawFolder:
		return "Raw-data date"
	case SourceFallback:
		return "Fallback date"
	}
	return string(s)
}

// MediaFile is a candidate video file. Stem and Ext are captured once at
// scan time since a rename invalidates Path.
type MediaFile struct {
	Path string `json:"path"`
	Stem string `json:"stem"`
	Ext  string `json:"ext"`
}

// Name returns the original base name
func (f MediaFile) Name() string {
	return f.Stem + f.Ext
}

// OperationStatus represents the status of a rename operation
type OperationStatus string

const (
	StatusPending OperationStatus = "pending"
	StatusSuccess OperationStatus = "success"
	StatusSkipped OperationStatus = "skipped"
	StatusFailed  OperationStatus = "failed"
)

// RenameOperation represents a planned or completed file rename
type RenameOperation struct {
	SourcePath string          `json:"source_path"`
	TargetPath string          `json:"target_path,omitempty"`
	Title      string          `json:"title,omitempty"`
	Date       string          `json:"date,omitempty"` // ISO date, e.g. "2023-04-15"
	Source     DateSource      `json:"source,omitempty"`
	Status     OperationStatus `json:"status"`
	Error      string          `json:"error,omitempty"`
}

// EventType represents the type of progress event
type EventType string

const (
	EventInfo     EventType = "info"
	EventProgress EventType = "progress"
	EventSuccess  EventType = "success"
	EventWarning  EventType = "warning"
	EventError    EventType = "error"
)

// Event represents a progress event during operations
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
}

// EventHandler receives progress events during operations
type EventHandler func(Event)
