package usecase

import (
	"strings"
	"time"
)

// InvalidDate is what FormatDate renders for input it cannot parse.
const InvalidDate = "Invalid Date"

const displayLayout = "January 2, 2006"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

// FormatDate renders an ISO-8601 timestamp as "March 15, 2024". Timestamps
// carrying an offset are shown in UTC; the result is the same on every host.
func FormatDate(dateString string) string {
	value := strings.TrimSpace(dateString)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return t.UTC().Format(displayLayout)
	}
	return InvalidDate
}
