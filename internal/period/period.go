// Package period provides the calendar-month key used to group budget
// plans. Keys are "YYYY-MM" strings; zero-padding makes lexicographic
// comparison agree with chronological order.
package period

import (
	"regexp"
	"time"
)

// Key identifies one calendar month, e.g. "2025-04".
type Key string

const layout = "2006-01"

var keyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// FromTime returns the key for the month containing t.
func FromTime(t time.Time) Key {
	return Key(t.Format(layout))
}

// Parse validates s and returns it as a Key.
func Parse(s string) (Key, bool) {
	if !keyPattern.MatchString(s) {
		return "", false
	}
	return Key(s), true
}

// Valid reports whether k is a well-formed "YYYY-MM" key.
func (k Key) Valid() bool {
	return keyPattern.MatchString(string(k))
}

// Before reports whether k is chronologically before other.
func (k Key) Before(other Key) bool {
	return k < other
}

// Next returns the key for the following month.
func (k Key) Next() Key {
	t, err := time.Parse(layout, string(k))
	if err != nil {
		return k
	}
	return FromTime(t.AddDate(0, 1, 0))
}

// Time returns the first instant of the month, in UTC.
func (k Key) Time() time.Time {
	t, _ := time.Parse(layout, string(k))
	return t
}

// Label returns a human-readable month label, e.g. "Apr 2025".
func (k Key) Label() string {
	t, err := time.Parse(layout, string(k))
	if err != nil {
		return string(k)
	}
	return t.Format("Jan 2006")
}

func (k Key) String() string {
	return string(k)
}
