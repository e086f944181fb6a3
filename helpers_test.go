package datetime

import (
	"errors"
	"testing"
	"time"
)

// sampleTime is Tuesday, September 1, 2020 12:34:28 UTC.
var sampleTime = time.Date(2020, time.September, 1, 12, 34, 28, 0, time.UTC)

func defaultProvider(t *testing.T) *StaticProvider {
	t.Helper()
	provider, err := DefaultProvider()
	if err != nil {
		t.Fatalf("DefaultProvider: %v", err)
	}
	return provider
}

func mustFromTime(t *testing.T, value time.Time, calendar Calendar) DateTime {
	t.Helper()
	input, err := FromTime(value, calendar)
	if err != nil {
		t.Fatalf("FromTime(%s, %s): %v", value, calendar, err)
	}
	return input
}

func mustDateTime(t *testing.T, fields DateTimeFields) DateTime {
	t.Helper()
	input, err := NewDateTime(fields)
	if err != nil {
		t.Fatalf("NewDateTime: %v", err)
	}
	return input
}

func mustRenderer(t *testing.T, pattern string, provider DataProvider, key DataKey) *renderer {
	t.Helper()
	r, err := newRenderer(MustParsePattern(pattern), provider, key, formatterConfig{})
	if err != nil {
		t.Fatalf("newRenderer(%q): %v", pattern, err)
	}
	return r
}

type failingWriter struct{}

var errSinkClosed = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errSinkClosed
}

// minimalBundle holds one locale with only the data the caller adds.
func minimalBundle(locale string, data CalendarData) *Bundle {
	return &Bundle{
		Locales: map[string]*LocaleData{
			locale: {Calendars: map[Calendar]CalendarData{Gregorian: data}},
		},
		WeekData: map[string]WeekRuleData{
			"001": {FirstDay: "mon", MinDays: 1},
		},
	}
}
