// Package datekey converts between instants and canonical YYYY-MM-DD day
// keys. Keys follow the local wall clock, so an entry at 23:00 and one at
// 01:00 the next local day land in different buckets even when their UTC
// timestamps share a date.
package datekey

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

var ErrFormat = errors.New("invalid date key")

// FromTime returns the day key for t in the local calendar.
func FromTime(t time.Time) string {
	return t.Local().Format(layout)
}

// Today returns the current local day key.
func Today() string {
	return FromTime(time.Now())
}

// Start returns local midnight at the beginning of the keyed day.
func Start(key string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, strings.TrimSpace(key), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrFormat, key)
	}
	return t, nil
}

// End returns the exclusive upper bound of the keyed day: midnight at the
// start of the following local day.
func End(key string) (time.Time, error) {
	start, err := Start(key)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, 1), nil
}

// Valid reports whether key is a well-formed day key.
func Valid(key string) bool {
	_, err := Start(key)
	return err == nil
}
