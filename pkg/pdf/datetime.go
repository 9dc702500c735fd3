package pdf

import (
	"regexp"
	"strings"
	"time"
)

const (
	displayDate = "01/02/06"
	displayTime = "15:04"
)

var isoDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// layouts tried for strings carrying a T separator
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

var genericLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
}

// ParseTolerant parses ISO datetimes, plain ISO dates and a handful of
// common layouts. Plain YYYY-MM-DD dates are read as local midnight so the
// calendar day never shifts.
func ParseTolerant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return time.Time{}, false
	case strings.Contains(s, "T"):
		return parseLayouts(s, isoLayouts)
	case isoDateOnly.MatchString(s):
		t, err := time.ParseInLocation("2006-01-02T15:04:05", s+"T00:00:00", time.Local)
		return t, err == nil
	default:
		return parseLayouts(s, genericLayouts)
	}
}

func parseLayouts(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders s as MM/DD/YY. Unparseable input is returned as-is.
func FormatDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	t, ok := ParseTolerant(trimmed)
	if !ok {
		return s
	}
	return t.Format(displayDate)
}

// FormatTime renders s as 24-hour HH:MM. Strings without a T separator are
// treated as bare times: only the hour and minute components are kept.
func FormatTime(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "T") {
		t, ok := parseLayouts(trimmed, isoLayouts)
		if !ok {
			return s
		}
		return t.Format(displayTime)
	}
	parts := strings.Split(trimmed, ":")
	if len(parts) < 2 {
		return trimmed
	}
	return parts[0] + ":" + parts[1]
}
