package helpers

import (
	"strings"
	"time"
)

// StringTrim removes surrounding whitespace, treating whitespace-only values
// as empty.
func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// FormatDate renders a timestamp the way review records store dates.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
