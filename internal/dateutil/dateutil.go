// Package dateutil formats calendar dates and clock times the way entries store them
// and generates entry identifiers.
package dateutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

// FormatDate returns the local calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime returns the local clock time of t as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func Today(now time.Time) string {
	return FormatDate(now)
}

func IsToday(date string, now time.Time) bool {
	return strings.TrimSpace(date) == FormatDate(now)
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}

func ParseTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected HH:MM)", value)
	}
	return t, nil
}

// NewID returns "<unix-millis>-<9 random chars>".
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
