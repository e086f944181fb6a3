package main

import (
	"testing"

	datetime "github.com/goliatone/go-datetime"
)

func TestSwapHourCycle(t *testing.T) {
	cases := []struct {
		pattern    string
		twelveHour bool
		want       string
	}{
		{pattern: "h:mm a", twelveHour: false, want: "H:mm"},
		{pattern: "h:mm:ss a zzzz", twelveHour: false, want: "H:mm:ss zzzz"},
		{pattern: "a h:mm", twelveHour: false, want: "H:mm"},
		{pattern: "HH:mm", twelveHour: true, want: "hh:mm a"},
		{pattern: "h:mm a", twelveHour: true, want: "h:mm a"},
		{pattern: "Bh:mm", twelveHour: true, want: "ah:mm"},
		{pattern: "HH 'h' mm", twelveHour: true, want: "hh 'h' mm a"},
		{pattern: "HH 'h' mm", twelveHour: false, want: "HH 'h' mm"},
	}

	for _, tc := range cases {
		if got := swapHourCycle(tc.pattern, tc.twelveHour); got != tc.want {
			t.Fatalf("swapHourCycle(%q, %v) = %q, want %q", tc.pattern, tc.twelveHour, got, tc.want)
		}
	}
}

func TestPreferredHourCycle(t *testing.T) {
	cases := map[string]datetime.HourCycle{
		"h:mm a":    datetime.H12,
		"K:mm a":    datetime.H11,
		"HH:mm":     datetime.H23,
		"k:mm":      datetime.H24,
		"'h' HH:mm": datetime.H23,
		"":          datetime.H23,
	}
	for pattern, want := range cases {
		if got := preferredHourCycle(pattern); got != want {
			t.Fatalf("preferredHourCycle(%q) = %s, want %s", pattern, got, want)
		}
	}
}

func TestTimeLengthsBuildsBothFamilies(t *testing.T) {
	lengths, err := timeLengths(map[string]string{"short": "h:mm a", "medium": "h:mm:ss a"})
	if err != nil {
		t.Fatalf("timeLengths: %v", err)
	}
	if lengths.PreferredHourCycle != datetime.H12 {
		t.Fatalf("preferred = %s", lengths.PreferredHourCycle)
	}
	if got := lengths.H23H24.Short.String(); got != "H:mm" {
		t.Fatalf("h23 short = %q", got)
	}
	if got := lengths.H11H12.Medium.String(); got != "h:mm:ss a" {
		t.Fatalf("h12 medium = %q", got)
	}
	if !lengths.H11H12.Full.IsZero() {
		t.Fatal("absent lengths should stay empty")
	}
}

func TestParseLocaleSpec(t *testing.T) {
	spec, err := parseLocaleSpec(" en_GB:gb ")
	if err != nil {
		t.Fatalf("parseLocaleSpec: %v", err)
	}
	if err := normalizeLocaleSpec(&spec); err != nil {
		t.Fatalf("normalizeLocaleSpec: %v", err)
	}
	if spec.Locale != "en-GB" || spec.Territory != "GB" {
		t.Fatalf("spec = %+v", spec)
	}

	spec, _ = parseLocaleSpec("de-AT")
	if err := normalizeLocaleSpec(&spec); err != nil {
		t.Fatalf("normalizeLocaleSpec: %v", err)
	}
	if spec.Territory != "AT" {
		t.Fatalf("territory = %q, want AT", spec.Territory)
	}

	if _, err := parseLocaleSpec("  "); err == nil {
		t.Fatal("expected error for empty locale")
	}
	if _, err := parseLocaleSpec(":US"); err == nil {
		t.Fatal("expected error for missing locale")
	}
}

func TestParseCalendars(t *testing.T) {
	calendars, err := parseCalendars([]string{"japanese", "gregorian", "buddhist", "japanese"})
	if err != nil {
		t.Fatalf("parseCalendars: %v", err)
	}
	want := []datetime.Calendar{datetime.Gregorian, datetime.Buddhist, datetime.Japanese}
	if len(calendars) != len(want) {
		t.Fatalf("calendars = %v", calendars)
	}
	for i := range want {
		if calendars[i] != want[i] {
			t.Fatalf("calendars[%d] = %s, want %s", i, calendars[i], want[i])
		}
	}

	if _, err := parseCalendars([]string{"hebrew"}); err == nil {
		t.Fatal("expected error for unsupported calendar")
	}
}

func TestSetName(t *testing.T) {
	var names datetime.ContextNames
	setContextName(&names, "stand-alone", "wide", 2, "March")
	setContextName(&names, "format", "abbreviated", 0, "Jan")
	setContextName(&names, "format", "tiny", 0, "ignored")

	if got := names.StandAlone[datetime.NameWide]; len(got) != 3 || got[2] != "March" || got[0] != "" {
		t.Fatalf("stand-alone wide = %q", got)
	}
	if name, ok := names.Lookup(datetime.ContextFormat, datetime.NameAbbreviated, 0); !ok || name != "Jan" {
		t.Fatalf("format abbreviated = %q,%v", name, ok)
	}
	if len(names.Format) != 1 {
		t.Fatalf("unknown widths should be ignored: %v", names.Format)
	}

	if got := numericIndex("236", japaneseMeijiEra); got != 4 {
		t.Fatalf("Reiwa index = %d", got)
	}
	if got := numericIndex("x", 0); got != -1 {
		t.Fatalf("bad index = %d", got)
	}
}
