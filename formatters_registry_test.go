package datetime

import (
	"errors"
	"sync"
	"testing"
)

func TestFormatterRegistryDefaults(t *testing.T) {
	registry, err := NewFormatterRegistry()
	if err != nil {
		t.Fatalf("NewFormatterRegistry: %v", err)
	}

	funcs := registry.FuncMap("es")
	formatDate := funcs["format_date"].(func(string, any, ...string) (string, error))
	if got, err := formatDate("es", sampleTime, "long"); err != nil || got != "1 de septiembre de 2020" {
		t.Fatalf("format_date es = %q,%v", got, err)
	}
	if got, err := formatDate("en", &sampleTime); err != nil || got != "Sep 1, 2020" {
		t.Fatalf("format_date default style = %q,%v", got, err)
	}

	formatDateTime := funcs["format_datetime"].(func(string, any, ...string) (string, error))
	if got, err := formatDateTime("en", sampleTime, "long", "short"); err != nil || got != "September 1, 2020 at 12:34 PM" {
		t.Fatalf("format_datetime = %q,%v", got, err)
	}

	formatTime := funcs["format_time"].(func(string, any, ...string) (string, error))
	if got, err := formatTime("de", sampleTime, "short"); err != nil || got != "12:34" {
		t.Fatalf("format_time de = %q,%v", got, err)
	}

	formatSkeleton := funcs["format_skeleton"].(func(string, any, string) (string, error))
	if got, err := formatSkeleton("de", sampleTime, "MMMd"); err != nil || got != "1. Sept." {
		t.Fatalf("format_skeleton de = %q,%v", got, err)
	}
}

func TestFormatterRegistryHelperErrors(t *testing.T) {
	registry, err := NewFormatterRegistry()
	if err != nil {
		t.Fatalf("NewFormatterRegistry: %v", err)
	}
	funcs := registry.FuncMap("en")
	formatDate := funcs["format_date"].(func(string, any, ...string) (string, error))

	if _, err := formatDate("en", sampleTime, "tiny"); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("bad style error = %v", err)
	}
	if _, err := formatDate("en", "2020-09-01"); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("string value error = %v", err)
	}
	if _, err := formatDate("en", nil); !errors.Is(err, ErrMissingInputField) {
		t.Fatalf("nil value error = %v", err)
	}
	if _, err := formatDate("pt", sampleTime); !errors.Is(err, ErrMissingData) {
		t.Fatalf("unknown locale error = %v", err)
	}

	formatSkeleton := funcs["format_skeleton"].(func(string, any, string) (string, error))
	if _, err := formatSkeleton("en", sampleTime, "y-M"); err == nil {
		t.Fatal("expected error for malformed components")
	}
}

func TestFormatterRegistryCachesFormatters(t *testing.T) {
	registry, err := NewFormatterRegistry()
	if err != nil {
		t.Fatalf("NewFormatterRegistry: %v", err)
	}

	first, err := registry.DateFormatter("en", LengthShort)
	if err != nil {
		t.Fatalf("DateFormatter: %v", err)
	}
	second, err := registry.DateFormatter("en", LengthShort)
	if err != nil {
		t.Fatalf("DateFormatter: %v", err)
	}
	if first != second {
		t.Fatal("expected cached formatter")
	}

	bag := Bag{Year: YearNumeric, Month: MonthLong}
	a, err := registry.DateTimeFormatter("en", bag)
	if err != nil {
		t.Fatalf("DateTimeFormatter: %v", err)
	}
	b, err := registry.DateTimeFormatter("en", LengthBag{Date: LengthLong})
	if err != nil {
		t.Fatalf("DateTimeFormatter: %v", err)
	}
	if a == b {
		t.Fatal("different options shared a cache entry")
	}
}

func TestFormatterRegistryConcurrentAccess(t *testing.T) {
	registry, err := NewFormatterRegistry()
	if err != nil {
		t.Fatalf("NewFormatterRegistry: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			locale := "en"
			if i%2 == 0 {
				locale = "es"
			}
			formatter, err := registry.DateTimeFormatter(locale, LengthBag{Date: LengthMedium, Time: LengthShort})
			if err != nil {
				errs <- err
				return
			}
			if _, err := registry.Format(formatter, sampleTime); err != nil {
				errs <- err
			}
			_ = registry.FuncMap(locale)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent format: %v", err)
	}
}

func TestFormatterRegistryLocaleOverride(t *testing.T) {
	registry, err := NewFormatterRegistry(
		WithFormatterRegistryResolver(NewStaticFallbackResolver()),
		WithFormatterRegistryLocales("en", "en-GB"),
	)
	if err != nil {
		t.Fatalf("NewFormatterRegistry: %v", err)
	}

	registry.RegisterLocale("en", "format_date", func(_ string, _ any, _ ...string) (string, error) {
		return "override", nil
	})

	// en-GB inherits helpers registered for its parent en.
	for _, locale := range []string{"en", "en-GB"} {
		fn := registry.FuncMap(locale)["format_date"].(func(string, any, ...string) (string, error))
		if got, _ := fn(locale, sampleTime); got != "override" {
			t.Fatalf("%s format_date = %q, want override", locale, got)
		}
	}

	es := registry.FuncMap("es")["format_date"].(func(string, any, ...string) (string, error))
	if got, _ := es("es", sampleTime); got != "1 sept 2020" {
		t.Fatalf("es format_date = %q", got)
	}

	registry.Register("format_date", func(_ string, _ any, _ ...string) (string, error) {
		return "global", nil
	})
	fn := registry.FuncMap("es")["format_date"].(func(string, any, ...string) (string, error))
	if got, _ := fn("es", sampleTime); got != "global" {
		t.Fatalf("global override = %q", got)
	}
}

func TestFormatterRegistryCalendarAndHooks(t *testing.T) {
	recorder := &recordingHook{}
	registry, err := NewFormatterRegistry(
		WithFormatterRegistryLocales("en"),
		WithFormatterRegistryCalendar(Buddhist),
		WithFormatterRegistryHooks(recorder),
	)
	if err != nil {
		t.Fatalf("NewFormatterRegistry: %v", err)
	}

	formatter, err := registry.DateFormatter("en", LengthMedium)
	if err != nil {
		t.Fatalf("DateFormatter: %v", err)
	}
	got, err := registry.Format(formatter, sampleTime)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "Sep 1, 2563 BE" {
		t.Fatalf("Format = %q", got)
	}
	if recorder.afterCalls != 1 || recorder.lastResult != got {
		t.Fatalf("hook calls=%d result=%q", recorder.afterCalls, recorder.lastResult)
	}
}

func TestFormatterRegistryRejectsUnknownLocale(t *testing.T) {
	_, err := NewFormatterRegistry(WithFormatterRegistryLocales("pt"))
	if !errors.Is(err, ErrMissingData) {
		t.Fatalf("error = %v, want ErrMissingData", err)
	}
}

func TestFormatterRegistryFallbackLocale(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt", "es")

	registry, err := NewFormatterRegistry(
		WithFormatterRegistryResolver(resolver),
		WithFormatterRegistryLocales("es", "pt"),
	)
	if err != nil {
		t.Fatalf("NewFormatterRegistry: %v", err)
	}

	formatter, err := registry.DateFormatter("pt", LengthLong)
	if err != nil {
		t.Fatalf("DateFormatter(pt): %v", err)
	}
	if formatter.Locale() != "es" {
		t.Fatalf("Locale() = %q, want es", formatter.Locale())
	}
	if got, _ := registry.Format(formatter, sampleTime); got != "1 de septiembre de 2020" {
		t.Fatalf("Format = %q", got)
	}
}
