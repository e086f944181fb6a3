package datetime

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStaticProviderParentChain(t *testing.T) {
	provider := defaultProvider(t)
	key := DataKey{Locale: "en-GB", Calendar: Gregorian}

	dates, err := provider.DatePatterns(key)
	if err != nil {
		t.Fatalf("DatePatterns: %v", err)
	}
	if got := dates.Medium.String(); got != "d MMM y" {
		t.Fatalf("en-GB medium = %q", got)
	}

	// en-GB carries no glue or month names; both come from en.
	glue, err := provider.GluePatterns(key)
	if err != nil {
		t.Fatalf("GluePatterns: %v", err)
	}
	if got := glue.Long.String(); got != "{1} 'at' {0}" {
		t.Fatalf("inherited glue = %q", got)
	}
	symbols, err := provider.DateSymbols(key)
	if err != nil {
		t.Fatalf("DateSymbols: %v", err)
	}
	if name, _ := symbols.Months.Lookup(ContextFormat, NameWide, 8); name != "September" {
		t.Fatalf("inherited month = %q", name)
	}

	// Nearer day periods win per width; widths en-GB lacks still come from en.
	times, err := provider.TimeSymbols(key)
	if err != nil {
		t.Fatalf("TimeSymbols: %v", err)
	}
	if name, _ := times.DayPeriods.Lookup(ContextFormat, NameAbbreviated, DayPeriodPM); name != "pm" {
		t.Fatalf("en-GB pm = %q", name)
	}
	if name, _ := times.DayPeriods.Lookup(ContextFormat, NameWide, DayPeriodPM); name != "PM" {
		t.Fatalf("en-GB wide pm = %q", name)
	}
}

func TestStaticProviderSkeletonMerge(t *testing.T) {
	provider := defaultProvider(t)

	table, err := provider.SkeletonPatterns(DataKey{Locale: "en-GB", Calendar: Gregorian})
	if err != nil {
		t.Fatalf("SkeletonPatterns: %v", err)
	}

	lookup := func(id string) string {
		p, ok := table.Lookup(mustSkeleton(t, id))
		if !ok {
			t.Fatalf("skeleton %s missing", id)
		}
		return p.String()
	}
	if got := lookup("yMd"); got != "dd/MM/y" {
		t.Fatalf("overridden yMd = %q", got)
	}
	if got := lookup("yMMMM"); got != "MMMM y" {
		t.Fatalf("inherited yMMMM = %q", got)
	}
}

func TestStaticProviderCalendarInheritance(t *testing.T) {
	provider := defaultProvider(t)
	key := DataKey{Locale: "en-GB", Calendar: Buddhist}

	// en-GB has no buddhist data: the en buddhist section is nearer than en-GB gregorian.
	dates, err := provider.DatePatterns(key)
	if err != nil {
		t.Fatalf("DatePatterns: %v", err)
	}
	if got := dates.Medium.String(); got != "MMM d, y G" {
		t.Fatalf("buddhist medium = %q", got)
	}

	symbols, err := provider.DateSymbols(key)
	if err != nil {
		t.Fatalf("DateSymbols: %v", err)
	}
	if name, _ := symbols.Eras.Lookup(NameAbbreviated, 0); name != "BE" {
		t.Fatalf("buddhist era = %q", name)
	}
	if name, _ := symbols.Months.Lookup(ContextFormat, NameAbbreviated, 0); name != "Jan" {
		t.Fatalf("gregorian months not inherited: %q", name)
	}

	times, err := provider.TimePatterns(key)
	if err != nil {
		t.Fatalf("TimePatterns: %v", err)
	}
	if times.Preferred() != H23 {
		t.Fatalf("preferred = %s, want h23 from en-GB gregorian", times.Preferred())
	}
}

func TestStaticProviderBorrowedGregorianData(t *testing.T) {
	provider := defaultProvider(t)
	key := DataKey{Locale: "es", Calendar: Buddhist}

	if _, err := provider.DatePatterns(key); !errors.Is(err, ErrMissingData) {
		t.Fatalf("DatePatterns error = %v, want ErrMissingData", err)
	}

	symbols, err := provider.DateSymbols(key)
	if err != nil {
		t.Fatalf("DateSymbols: %v", err)
	}
	if len(symbols.Eras) != 0 {
		t.Fatalf("gregorian eras leaked into buddhist: %v", symbols.Eras)
	}
	if _, ok := symbols.Months.Lookup(ContextFormat, NameWide, 8); !ok {
		t.Fatal("gregorian month names not inherited")
	}

	table, err := provider.SkeletonPatterns(key)
	if err != nil {
		t.Fatalf("SkeletonPatterns: %v", err)
	}
	for id, want := range map[string]bool{"GyMMMd": true, "MMMd": true, "Hm": true, "yMMMd": false, "y": false} {
		if _, ok := table.Lookup(mustSkeleton(t, id)); ok != want {
			t.Fatalf("skeleton %s present = %v, want %v", id, ok, want)
		}
	}

	if _, err := provider.TimePatterns(key); err != nil {
		t.Fatalf("TimePatterns: %v", err)
	}

	// ISO years are gregorian years, so nothing is withheld.
	iso, err := provider.DatePatterns(DataKey{Locale: "es", Calendar: ISO})
	if err != nil {
		t.Fatalf("iso DatePatterns: %v", err)
	}
	if got := iso.Medium.String(); got != "d MMM y" {
		t.Fatalf("iso medium = %q", got)
	}
}

func TestEraSafe(t *testing.T) {
	cases := []struct {
		pattern string
		want    bool
	}{
		{pattern: "d MMM y G", want: true},
		{pattern: "d MMM y", want: false},
		{pattern: "'Woche' w 'des' 'Jahres' Y", want: false},
		{pattern: "E, d MMM", want: true},
		{pattern: "H:mm", want: true},
	}
	for _, tc := range cases {
		if got := eraSafe(MustParsePattern(tc.pattern)); got != tc.want {
			t.Fatalf("eraSafe(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}

func TestStaticProviderWeekRules(t *testing.T) {
	provider := defaultProvider(t)

	cases := []struct {
		key  DataKey
		want WeekRules
	}{
		{key: DataKey{Locale: "en"}, want: WeekRules{FirstDay: time.Sunday, MinDays: 1}},
		{key: DataKey{Locale: "en-GB"}, want: WeekRules{FirstDay: time.Monday, MinDays: 4}},
		{key: DataKey{Locale: "de"}, want: WeekRules{FirstDay: time.Monday, MinDays: 4}},
		{key: DataKey{Locale: "es-MX"}, want: WeekRules{FirstDay: time.Sunday, MinDays: 1}},
		{key: DataKey{Locale: "en-AU"}, want: WeekRules{FirstDay: time.Monday, MinDays: 1}},
		{key: DataKey{Locale: "en", Calendar: ISO}, want: WeekRules{FirstDay: time.Monday, MinDays: 4}},
	}

	for _, tc := range cases {
		got, err := provider.WeekRules(tc.key)
		if err != nil {
			t.Fatalf("WeekRules(%s): %v", tc.key, err)
		}
		if got != tc.want {
			t.Fatalf("WeekRules(%s) = %+v, want %+v", tc.key, got, tc.want)
		}
	}
}

func TestStaticProviderFallbackResolver(t *testing.T) {
	bundle, err := DefaultBundle()
	if err != nil {
		t.Fatalf("DefaultBundle: %v", err)
	}

	resolver := NewStaticFallbackResolver()
	resolver.Set("ca", "es")
	provider, err := NewStaticProvider(bundle, resolver)
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}

	dates, err := provider.DatePatterns(DataKey{Locale: "ca"})
	if err != nil {
		t.Fatalf("DatePatterns(ca): %v", err)
	}
	if got := dates.Long.String(); got != "d 'de' MMMM 'de' y" {
		t.Fatalf("ca long = %q", got)
	}

	if _, err := provider.DatePatterns(DataKey{Locale: "pt"}); !errors.Is(err, ErrMissingData) {
		t.Fatalf("pt error = %v, want ErrMissingData", err)
	}
	if _, err := provider.NumberingSymbols(DataKey{Locale: "pt"}); !errors.Is(err, ErrMissingData) {
		t.Fatalf("pt numbering error = %v, want ErrMissingData", err)
	}
}

func TestStaticProviderLocalesAndNumbering(t *testing.T) {
	provider := defaultProvider(t)

	want := []string{"de", "en", "en-GB", "es", "fr"}
	if got := provider.Locales(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Locales() = %v, want %v", got, want)
	}

	numbering, err := provider.NumberingSymbols(DataKey{Locale: "en-GB"})
	if err != nil {
		t.Fatalf("NumberingSymbols: %v", err)
	}
	if numbering.System != "latn" || numbering.Digits != "0123456789" {
		t.Fatalf("numbering = %+v", numbering)
	}
}

func TestStaticProviderRejectsBadBundles(t *testing.T) {
	if _, err := NewStaticProvider(nil, nil); !errors.Is(err, ErrMissingData) {
		t.Fatalf("nil bundle error = %v", err)
	}

	bundle := minimalBundle("it", CalendarData{})
	bundle.WeekData["IT"] = WeekRuleData{FirstDay: "mon", MinDays: 9}
	if _, err := NewStaticProvider(bundle, nil); err == nil {
		t.Fatal("expected error for min_days 9")
	}

	bundle = minimalBundle("it", CalendarData{})
	bundle.Locales["it"].Numbering = NumberingSymbols{System: "odd", Digits: "0123"}
	if _, err := NewStaticProvider(bundle, nil); !errors.Is(err, ErrMissingData) {
		t.Fatalf("short digits error = %v", err)
	}
}

func TestStaticProviderSnapshotsBundle(t *testing.T) {
	bundle := minimalBundle("it", CalendarData{
		DatePatterns: LengthPatterns{Short: MustParsePattern("d/M/yy")},
		DateSymbols: &DateSymbols{
			Months: ContextNames{Format: Names{NameWide: {"gennaio"}}},
		},
	})
	provider, err := NewStaticProvider(bundle, nil)
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}

	bundle.Locales["it"].Calendars[Gregorian].DateSymbols.Months.Format[NameWide][0] = "changed"

	symbols, err := provider.DateSymbols(DataKey{Locale: "it"})
	if err != nil {
		t.Fatalf("DateSymbols: %v", err)
	}
	if name, _ := symbols.Months.Lookup(ContextFormat, NameWide, 0); name != "gennaio" {
		t.Fatalf("provider observed bundle mutation: %q", name)
	}

	symbols.Months.Format[NameWide][0] = "mutated"
	again, _ := provider.DateSymbols(DataKey{Locale: "it"})
	if name, _ := again.Months.Lookup(ContextFormat, NameWide, 0); name != "gennaio" {
		t.Fatalf("provider observed caller mutation: %q", name)
	}
}

func TestOverlayProvider(t *testing.T) {
	base := defaultProvider(t)
	overlay := DateSymbolsSourceFunc(func(key DataKey) (*DateSymbols, error) {
		if key.Locale != "en" {
			return nil, ErrMissingData
		}
		return &DateSymbols{
			Months: ContextNames{Format: Names{NameAbbreviated: {"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}}},
		}, nil
	})
	provider := OverlayProvider(base, overlay)

	formatter, err := NewDateFormatter("en", provider, LengthMedium)
	if err != nil {
		t.Fatalf("NewDateFormatter: %v", err)
	}
	got, err := formatter.Format(mustFromTime(t, sampleTime, Gregorian))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "SEP 1, 2020" {
		t.Fatalf("Format = %q", got)
	}

	// Locales the overlay does not know keep the base symbols.
	de, err := NewDateFormatter("de", provider, LengthLong)
	if err != nil {
		t.Fatalf("NewDateFormatter(de): %v", err)
	}
	if got, _ := de.Format(mustFromTime(t, sampleTime, Gregorian)); got != "1. September 2020" {
		t.Fatalf("de Format = %q", got)
	}

	if OverlayProvider(base, nil) != DataProvider(base) {
		t.Fatal("nil overlay should return the base provider")
	}
}
