package service

import (
	"fmt"
	"time"
)

// parseDate parses a request date supplied as "2006-01-02" or as an RFC3339
// timestamp. Anything else is rejected before a write is attempted.
// Mirrors repository.ParseTime; kept local to avoid a cross-layer import.
func parseDate(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
