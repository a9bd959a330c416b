package format

import (
	"fmt"
	"time"
)

// InvalidDate is shown in place of a date that is empty or cannot be parsed.
const InvalidDate = "Tanggal tidak valid"

var (
	weekdays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	months   = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

var dateLayouts = []string{time.DateOnly, "2006-01-02T15:04:05", time.RFC3339}

// ParseDate accepts an ISO date, optionally carrying a time part.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// LongDate renders an ISO date as "Senin, 26 Mei 2025".
func LongDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return InvalidDate
	}

	return fmt.Sprintf("%s, %d %s %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// ShortDate renders an ISO date as "26-05-2025". The bool is false when s
// cannot be parsed.
func ShortDate(s string) (string, bool) {
	t, err := ParseDate(s)
	if err != nil {
		return "", false
	}

	return t.Format("02-01-2006"), true
}
