package matcher

import "regexp"

// Legacy naming: YYYY_MM-DD_Title
var legacyPattern = regexp.MustCompile(`(?i)^(\d{4})_(\d{2})-(\d{2})_(.+)$`)

// Date shapes looked for inside raw data folder names, in priority order
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{4})[-_ ]?(\d{2})[-_ ]?(\d{2})`),
	regexp.MustCompile(`(\d{4})_(\d{2})-(\d{2})`),
}

// Legacy holds the parts of a legacy-format stem. The date parts are the raw
// digit strings; they are not validated here.
type Legacy struct {
	Year  string
	Month string
	Day   string
	Title string
}

// MatchLegacy matches stem against YYYY_MM-DD_<rest>
func MatchLegacy(stem string) (Legacy, bool) {
	m := legacyPattern.FindStringSubmatch(stem)
	if m == nil {
		return Legacy{}, false
	}
	return Legacy{Year: m[1], Month: m[2], Day: m[3], Title: m[4]}, true
}

// FindDate searches name for the first embedded date. The compact
// YYYY[-_ ]MM[-_ ]DD shape is tried before the legacy YYYY_MM-DD shape.
func FindDate(name string) (year, month, day string, ok bool) {
	for _, re := range datePatterns {
		if m := re.FindStringSubmatch(name); m != nil {
			return m[1], m[2], m[3], true
		}
	}
	return "", "", "", false
}
