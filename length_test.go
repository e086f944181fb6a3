package datetime

import (
	"errors"
	"testing"
)

func TestParseLength(t *testing.T) {
	for input, want := range map[string]Length{
		"full":    LengthFull,
		"Long":    LengthLong,
		" MEDIUM": LengthMedium,
		"short":   LengthShort,
	} {
		got, err := ParseLength(input)
		if err != nil {
			t.Fatalf("ParseLength(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLength(%q) = %s, want %s", input, got, want)
		}
	}

	if _, err := ParseLength("tiny"); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("ParseLength(tiny) error = %v", err)
	}
}

func TestLengthPatternsGet(t *testing.T) {
	patterns := LengthPatterns{
		Full:  MustParsePattern("EEEE, MMMM d, y"),
		Short: MustParsePattern("M/d/yy"),
	}

	p, err := patterns.Get(LengthShort)
	if err != nil || p.String() != "M/d/yy" {
		t.Fatalf("Get(short) = %q,%v", p, err)
	}
	if _, err := patterns.Get(LengthMedium); !errors.Is(err, ErrMissingData) {
		t.Fatalf("Get(medium) error = %v, want ErrMissingData", err)
	}
}

func TestDefaultDateLengthsFollowCanonicalWidths(t *testing.T) {
	provider := defaultProvider(t)

	patterns, err := provider.DatePatterns(DataKey{Locale: "en", Calendar: Gregorian})
	if err != nil {
		t.Fatalf("DatePatterns: %v", err)
	}

	full, _ := patterns.Get(LengthFull)
	if bag := BagFromPattern(full); bag.Weekday != TextLong || bag.Month != MonthLong {
		t.Fatalf("full date bag = %+v, want wide weekday and month", bag)
	}

	long, _ := patterns.Get(LengthLong)
	if bag := BagFromPattern(long); bag.Weekday != 0 || bag.Month != MonthLong {
		t.Fatalf("long date bag = %+v, want wide month without weekday", bag)
	}

	medium, _ := patterns.Get(LengthMedium)
	if bag := BagFromPattern(medium); bag.Month != MonthShort {
		t.Fatalf("medium date bag = %+v, want abbreviated month", bag)
	}

	short, _ := patterns.Get(LengthShort)
	if bag := BagFromPattern(short); bag.Month != MonthNumeric || bag.Year != YearTwoDigit {
		t.Fatalf("short date bag = %+v, want numeric month and two-digit year", bag)
	}
}

func TestTimeLengthsResolve(t *testing.T) {
	times := TimeLengths{
		PreferredHourCycle: H12,
		H11H12: LengthPatterns{
			Medium: MustParsePattern("h:mm:ss a"),
			Short:  MustParsePattern("h:mm a"),
		},
		H23H24: LengthPatterns{
			Medium: MustParsePattern("HH:mm:ss"),
			Short:  MustParsePattern("HH:mm"),
		},
	}

	cases := []struct {
		length Length
		pref   HourCycle
		want   string
	}{
		{length: LengthShort, want: "h:mm a"},
		{length: LengthShort, pref: H23, want: "HH:mm"},
		{length: LengthShort, pref: H24, want: "kk:mm"},
		{length: LengthMedium, pref: H11, want: "K:mm:ss a"},
		{length: LengthMedium, pref: H12, want: "h:mm:ss a"},
	}

	for _, tc := range cases {
		got, err := times.Resolve(tc.length, tc.pref)
		if err != nil {
			t.Fatalf("Resolve(%s, %v): %v", tc.length, tc.pref, err)
		}
		if got.String() != tc.want {
			t.Fatalf("Resolve(%s, %v) = %q, want %q", tc.length, tc.pref, got, tc.want)
		}
	}

	if _, err := times.Resolve(LengthFull, 0); !errors.Is(err, ErrMissingData) {
		t.Fatalf("Resolve(full) error = %v, want ErrMissingData", err)
	}
}

func TestTimeLengthsPreferredDefault(t *testing.T) {
	if got := (TimeLengths{}).Preferred(); got != H23 {
		t.Fatalf("Preferred() = %s, want h23", got)
	}
}

func TestParseHourCycle(t *testing.T) {
	for _, cycle := range []HourCycle{H11, H12, H23, H24} {
		text, err := cycle.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", cycle, err)
		}
		var parsed HourCycle
		if err := parsed.UnmarshalText(text); err != nil || parsed != cycle {
			t.Fatalf("UnmarshalText(%s) = %v,%v", text, parsed, err)
		}
	}
	if _, err := ParseHourCycle("h13"); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("ParseHourCycle(h13) error = %v", err)
	}
}
