// Package matcher extracts titles and dates from file and folder names.
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Fold lowercases s. Search keys and folder names must go through the same
// folding for substring matches to line up.
func Fold(s string) string {
	return lower.String(s)
}

// CleanTitle derives the presentable title from a filename stem.
//
// The stem is split on its first underscore. A space-free left part followed
// by a right part with spaces ("20230415_My Show") yields the right part;
// every other combination yields the left part. Without an underscore the
// whole stem is the title.
func CleanTitle(stem string) string {
	left, right, found := strings.Cut(stem, "_")
	if !found {
		return strings.TrimSpace(stem)
	}

	leftHasSpace := strings.Contains(left, " ")
	rightHasSpace := strings.Contains(right, " ")

	if !leftHasSpace && rightHasSpace {
		return strings.TrimSpace(right)
	}
	return strings.TrimSpace(left)
}

// SearchKey returns the folded title used to look up a raw data folder.
// Occurrences of selfName are removed so the tool's own name never drives
// the folder match. An empty selfName disables the removal.
func SearchKey(stem, selfName string) string {
	key := Fold(CleanTitle(stem))
	self := Fold(selfName)
	if self != "" && strings.Contains(key, self) {
		key = strings.TrimSpace(strings.ReplaceAll(key, self, ""))
	}
	return key
}

// ContainsSelf reports whether name mentions the tool's own name
func ContainsSelf(name, selfName string) bool {
	self := Fold(selfName)
	return self != "" && strings.Contains(Fold(name), self)
}

// SplitExt splits a base name into stem and extension. Leading dots belong
// to the stem, so ".mp4" has no extension.
func SplitExt(name string) (stem, ext string) {
	lead := len(name) - len(strings.TrimLeft(name, "."))
	idx := strings.LastIndex(name[lead:], ".")
	if idx < 0 {
		return name, ""
	}
	idx += lead
	return name[:idx], name[idx:]
}
