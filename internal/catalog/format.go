package catalog

import (
	"strconv"
	"time"
)

// FormatAuthorEntry renders "<family>, <first> : <birth> - <death>". Without a
// display name the entry starts with " : ".
func FormatAuthorEntry(a Author) string {
	return a.Name() + " : " + yearOf(a.DateOfBirth) + " - " + yearOf(a.DateOfDeath)
}

// FormatStatusEntry renders "<title>: <status>".
func FormatStatusEntry(title, status string) string {
	return title + ": " + status
}

func yearOf(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return strconv.Itoa(t.UTC().Year())
}
