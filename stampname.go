// Package stampname renames date-stamped video files to the canonical
// "S{YYYY}E{MM}{DD} - {title}{ext}" form.
//
// Dates come from legacy "YYYY_MM-DD_title" names or from a matching raw
// data folder next to the video. Files with no date of their own get
// consecutive free days starting at the median of the dates found.
//
// This package mirrors the CLI functionality for use from other Go programs.
package stampname

import (
	"github.com/mydehq/stampname/internal/api"
	"github.com/mydehq/stampname/internal/types"
	"github.com/mydehq/stampname/internal/version"
)

// Re-export all types from internal/api and internal/types
type (
	Option          = api.Option
	Options         = api.Options
	Config          = types.Config
	RenameOperation = types.RenameOperation
	OperationStatus = types.OperationStatus
	DateSource      = types.DateSource
	Event           = types.Event
	EventType       = types.EventType
	EventHandler    = types.EventHandler

	ErrInvalidDate    = types.ErrInvalidDate
	ErrDateOutOfRange = types.ErrDateOutOfRange
	ErrNoFallbackDate = types.ErrNoFallbackDate
	ErrTargetExists   = types.ErrTargetExists
	ErrConfigInvalid  = types.ErrConfigInvalid
	ErrConfigNotFound = types.ErrConfigNotFound
)

const (
	StatusPending = types.StatusPending
	StatusSuccess = types.StatusSuccess
	StatusSkipped = types.StatusSkipped
	StatusFailed  = types.StatusFailed

	SourceLegacy    = types.SourceLegacy
	SourceRawFolder = types.SourceRawFolder
	SourceFallback  = types.SourceFallback

	EventInfo     = types.EventInfo
	EventProgress = types.EventProgress
	EventSuccess  = types.EventSuccess
	EventWarning  = types.EventWarning
	EventError    = types.EventError
)

// Re-export all option constructors
var (
	WithDryRun   = api.WithDryRun
	WithConfig   = api.WithConfig
	WithSelfName = api.WithSelfName
	WithFormats  = api.WithFormats
	WithFs       = api.WithFs
	WithEvents   = api.WithEvents
	WithConfirm  = api.WithConfirm
)

// Re-export all core functions
var (
	Rename                 = api.Rename
	Plan                   = api.Plan
	LoadConfig             = api.LoadConfig
	DefaultSelfName        = api.DefaultSelfName
	SetDefaultEventHandler = api.SetDefaultEventHandler
)

// Version returns the module version
func Version() string {
	return version.Get()
}
