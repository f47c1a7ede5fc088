// Copyright (C) 2026 Kim HyeonSu.
// See LICENSE for copying information.

// Package date computes start-of-day and end-of-day instants in Korea
// Standard Time from epoch milliseconds or date strings.
package date

import (
	"strings"
	"time"

	"github.com/zeebo/errs"
)

// Error is the class of invalid argument errors reported by this package.
var Error = errs.Class("date error")

// KST is the fixed reference zone for every computation in this package.
// Korea Standard Time has no daylight saving, so a fixed offset matches
// Asia/Seoul without needing a tzdata database.
var KST = time.FixedZone("KST", 9*60*60)

// endOfDayNano is the nanosecond field of the last instant of a day.
const endOfDayNano = 999999999

// format couples a layout with whether it encodes a time of day.
type format struct {
	layout  string
	hasTime bool
}

// supportedFormats are probed in declaration order and the first
// successful parse wins. Additions must keep the order deterministic.
var supportedFormats = []format{
	{"2006-01-02 15:04:05", true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04:05.000", true},
	{"2006-01-02", false},
	{"2006/01/02", false},
	{"2006.01.02", false},
}

// DayBoundary returns the first and last instant of t's calendar day in KST.
func DayBoundary(t time.Time) (start, end time.Time) {
	year, month, day := t.In(KST).Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, KST)
	end = time.Date(year, month, day, 23, 59, 59, endOfDayNano, KST)
	return start, end
}

// StartOfDayMillis returns 00:00:00.000000000 of the KST calendar day
// containing the epoch millisecond instant.
func StartOfDayMillis(millis int64) (time.Time, error) {
	t, err := fromMillis(millis)
	if err != nil {
		return time.Time{}, err
	}
	start, _ := DayBoundary(t)
	return start, nil
}

// EndOfDayMillis returns 23:59:59.999999999 of the KST calendar day
// containing the epoch millisecond instant.
func EndOfDayMillis(millis int64) (time.Time, error) {
	t, err := fromMillis(millis)
	if err != nil {
		return time.Time{}, err
	}
	_, end := DayBoundary(t)
	return end, nil
}

// StartOfDay parses value against the supported formats and returns
// 00:00:00.000000000 of the parsed KST calendar day.
//
// Supported formats, tried in order:
//
//	2006-01-02 15:04:05
//	2006-01-02T15:04:05
//	2006-01-02T15:04:05.000
//	2006-01-02
//	2006/01/02
//	2006.01.02
func StartOfDay(value string) (time.Time, error) {
	t, err := parse(value)
	if err != nil {
		return time.Time{}, err
	}
	start, _ := DayBoundary(t)
	return start, nil
}

// EndOfDay parses value against the supported formats and returns
// 23:59:59.999999999 of the parsed KST calendar day. See StartOfDay
// for the format list.
func EndOfDay(value string) (time.Time, error) {
	t, err := parse(value)
	if err != nil {
		return time.Time{}, err
	}
	_, end := DayBoundary(t)
	return end, nil
}

// fromMillis places the epoch instant in KST and rejects values whose
// civil date falls outside the representable calendar range.
func fromMillis(millis int64) (time.Time, error) {
	t := time.UnixMilli(millis).In(KST)
	if year := t.Year(); year < 1 || year > 9999 {
		return time.Time{}, Error.New("invalid timestamp value: %d", millis)
	}
	return t, nil
}

// parse probes the supported formats in order. Layouts that carry a time
// of day are interpreted in KST before the calendar date is read, so
// string and epoch input agree on timezone interpretation.
func parse(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, Error.New("time string cannot be empty")
	}

	for _, f := range supportedFormats {
		t, err := time.ParseInLocation(f.layout, trimmed, KST)
		if err != nil {
			continue
		}
		if f.hasTime {
			t = t.In(KST)
		}
		return t, nil
	}

	return time.Time{}, Error.New("unsupported date format (input: %s, supported formats: %s)",
		trimmed, supportedLayouts())
}

func supportedLayouts() string {
	layouts := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		layouts[i] = f.layout
	}
	return strings.Join(layouts, ", ")
}
