package utils

import "time"

// DateTimeLayout is the canonical textual form for timestamps persisted in
// the record store. Column values are compared as strings, so every writer
// must use this layout.
const DateTimeLayout = "2006-01-02 15:04:05"

// FormatDateTime renders t in the canonical store layout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDateTime parses a canonical store timestamp. It tolerates RFC 3339 and
// bare dates as well, since rows imported from older workbooks carry both.
func ParseDateTime(s string) (time.Time, bool) {
	for _, layout := range []string{DateTimeLayout, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
