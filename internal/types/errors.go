// Package types defines custom error types for stampname.
package types

import "fmt"

// ErrInvalidDate indicates a matched year/month/day that is not a real calendar date
type ErrInvalidDate struct {
	Year  string
	Month string
	Day   string
	File  string
}

func (e ErrInvalidDate) Error() string {
	if e.File == "" {
		return fmt.Sprintf("invalid calendar date: %s-%s-%s", e.Year, e.Month, e.Day)
	}
	return fmt.Sprintf("invalid calendar date %s-%s-%s for %s", e.Year, e.Month, e.Day, e.File)
}

// ErrDateOutOfRange indicates the collision search ran past the last representable date
type ErrDateOutOfRange struct {
	Title string
}

func (e ErrDateOutOfRange) Error() string {
	return fmt.Sprintf("no free date left for title %q", e.Title)
}

// ErrNoFallbackDate indicates undated files exist but no real date was found anywhere
type ErrNoFallbackDate struct {
	Undated int
}

func (e ErrNoFallbackDate) Error() string {
	return fmt.Sprintf("no real dates found for fallback (%d undated files left untouched)", e.Undated)
}

// ErrTargetExists indicates the rename target appeared after it was resolved
type ErrTargetExists struct {
	Source string
	Target string
}

func (e ErrTargetExists) Error() string {
	return fmt.Sprintf("refusing to rename %s: target already exists: %s", e.Source, e.Target)
}

// ErrConfigInvalid indicates a configuration error
type ErrConfigInvalid struct {
	Path   string
	Reason string
}

func (e ErrConfigInvalid) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Path, e.Reason)
}

// ErrConfigNotFound indicates a configuration file doesn't exist
type ErrConfigNotFound struct {
	Path string
}

func (e ErrConfigNotFound) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}
