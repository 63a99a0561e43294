package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidFormat is returned for time or date strings that cannot be parsed
	ErrInvalidFormat = errors.New("timeutil: invalid format")

	// ErrInvalidArgument is returned for negative or unsupported durations
	ErrInvalidArgument = errors.New("timeutil: invalid argument")
)

// Clock layouts accepted by ParseClock, tried in order
var clockLayouts = []string{"3:04 PM", "15:04:05", "15:04"}

// Date layouts accepted by ParseDate, tried in order
var dateLayouts = []string{"2006-01-02", "2006/01/02", "2006.01.02"}

const (
	// Clock24Layout is the canonical 24-hour representation
	Clock24Layout = "15:04:05"

	// Clock12Layout is the display representation used for slot lists
	Clock12Layout = "03:04 PM"
)

// Duration is a slot or service duration given either as a number of
// minutes or as a native span. Keeping the two shapes explicit avoids
// type switching inside the slot arithmetic.
type Duration struct {
	kind    durationKind
	minutes float64
	span    time.Duration
}

type durationKind int

const (
	durationUnset durationKind = iota
	durationMinutes
	durationSpan
)

// Minutes builds a Duration from a number of minutes.
func Minutes(m float64) Duration {
	return Duration{kind: durationMinutes, minutes: m}
}

// Span builds a Duration from a native time.Duration.
func Span(d time.Duration) Duration {
	return Duration{kind: durationSpan, span: d}
}

// Std converts the Duration to a time.Duration.
// Negative and unset durations are rejected with ErrInvalidArgument.
func (d Duration) Std() (time.Duration, error) {
	switch d.kind {
	case durationMinutes:
		if d.minutes < 0 {
			return 0, fmt.Errorf("%w: duration cannot be negative", ErrInvalidArgument)
		}
		return time.Duration(d.minutes * float64(time.Minute)), nil
	case durationSpan:
		if d.span < 0 {
			return 0, fmt.Errorf("%w: duration cannot be negative", ErrInvalidArgument)
		}
		return d.span, nil
	default:
		return 0, fmt.Errorf("%w: unsupported duration", ErrInvalidArgument)
	}
}

// IsSet reports whether the Duration carries a value.
func (d Duration) IsSet() bool {
	return d.kind != durationUnset
}

// ParseClock parses a time-of-day string in either 12-hour ("10:00 AM")
// or 24-hour ("13:00:00", "13:00") form. Surrounding whitespace is
// trimmed and the AM/PM marker is case-insensitive. Out-of-range values
// such as "13:00 PM" fail with ErrInvalidFormat.
func ParseClock(s string) (time.Time, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid time %q, expected 12-hour (e.g. \"10:00 AM\") or 24-hour (e.g. \"13:00:00\")", ErrInvalidFormat, s)
}

// ParseDate parses a date string. Supported layouts are YYYY-MM-DD,
// YYYY/MM/DD and YYYY.MM.DD.
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidFormat, s)
}

// To24Hour converts a 12-hour or 24-hour time string to the canonical
// "15:04:05" form.
func To24Hour(s string) (string, error) {
	t, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return t.Format(Clock24Layout), nil
}

// Format12Hour renders a time in the display form used by slot lists,
// e.g. "10:00 AM".
func Format12Hour(t time.Time) string {
	return t.Format(Clock12Layout)
}

// Combine merges the date part of date with the clock part of clock,
// keeping the date's location.
func Combine(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		date.Location(),
	)
}

// EndTime computes the time-of-day at which something starting at start
// and lasting d will end. When the end rolls past midnight exactly one
// day is subtracted, so only the clock component survives: a 23:30 start
// plus 60 minutes yields 00:30. Callers that care about the date
// rollover must track it themselves.
func EndTime(start time.Time, d Duration) (time.Time, error) {
	span, err := d.Std()
	if err != nil {
		return time.Time{}, err
	}
	end := start.Add(span)
	if end.Day() != start.Day() {
		end = end.AddDate(0, 0, -1)
	}
	return end, nil
}

// Between returns the non-negative difference b - a. It fails with
// ErrInvalidArgument when b precedes a.
func Between(a, b time.Time) (time.Duration, error) {
	if b.Before(a) {
		return 0, fmt.Errorf("%w: second time must not be earlier than the first", ErrInvalidArgument)
	}
	return b.Sub(a), nil
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly truncates an instant to midnight of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StripZone rewrites an instant into loc keeping the wall-clock fields.
// Slot arithmetic is timezone-naive: everything is compared as local
// wall-clock time, so an offset-carrying "not before" bound has to be
// flattened before it meets the window.
func StripZone(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
