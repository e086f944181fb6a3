package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	datetime "github.com/goliatone/go-datetime"
	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

type localeSpec struct {
	Locale    string
	Territory string
}

type generatorConfig struct {
	out       string
	cldrPath  string
	locales   []localeSpec
	calendars []datetime.Calendar
}

var emptyRegion language.Region

type listFlag struct {
	items []string
}

func (f *listFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datetime-cldr: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList, calendarList listFlag

	flag.StringVar(&cfg.out, "out", filepath.Join("data", "default_calendar_data.json"), "bundle file to write (.json, .yaml or .yml)")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate (optionally include territory using locale:REGION). Repeat flag to add more.")
	flag.Var(&calendarList, "calendar", "calendar to extract besides gregory (buddhist, japanese, iso8601). Repeat flag to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	for _, spec := range localeList.items {
		parsed, err := parseLocaleSpec(spec)
		if err != nil {
			return generatorConfig{}, err
		}
		cfg.locales = append(cfg.locales, parsed)
	}

	calendars, err := parseCalendars(calendarList.items)
	if err != nil {
		return generatorConfig{}, err
	}
	cfg.calendars = calendars

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	supplemental := data.Supplemental()
	bundle := &datetime.Bundle{
		Locales:  make(map[string]*datetime.LocaleData, len(cfg.locales)),
		WeekData: make(map[string]datetime.WeekRuleData),
	}
	territories := []string{"001"}

	for _, spec := range cfg.locales {
		if err := normalizeLocaleSpec(&spec); err != nil {
			return err
		}

		ldml, err := data.LDML(strings.ReplaceAll(spec.Locale, "-", "_"))
		if err != nil {
			return fmt.Errorf("load LDML for %s: %w", spec.Locale, err)
		}

		locale, err := buildLocale(ldml, supplemental, cfg.calendars)
		if err != nil {
			return fmt.Errorf("build locale %s: %w", spec.Locale, err)
		}
		bundle.Locales[spec.Locale] = locale

		if spec.Territory != "" {
			territories = append(territories, spec.Territory)
		}
	}

	for _, territory := range territories {
		rules, ok := extractWeekData(supplemental, territory)
		if !ok {
			continue
		}
		bundle.WeekData[territory] = rules
	}

	// Round trip through the decoder so the output is known to load.
	encoded, err := datetime.EncodeBundle(cfg.out, bundle)
	if err != nil {
		return err
	}
	if _, err := datetime.DecodeBundle(cfg.out, encoded); err != nil {
		return fmt.Errorf("generated bundle does not load: %w", err)
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, encoded, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func parseLocaleSpec(input string) (localeSpec, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return localeSpec{}, errors.New("empty locale value")
	}

	spec := localeSpec{}
	if strings.Contains(input, ":") {
		parts := strings.SplitN(input, ":", 2)
		spec.Locale = strings.TrimSpace(parts[0])
		spec.Territory = strings.ToUpper(strings.TrimSpace(parts[1]))
	} else {
		spec.Locale = input
	}

	if spec.Locale == "" {
		return localeSpec{}, fmt.Errorf("invalid locale spec %q", input)
	}
	return spec, nil
}

func normalizeLocaleSpec(spec *localeSpec) error {
	if spec == nil {
		return errors.New("nil locale spec")
	}

	spec.Locale = strings.ReplaceAll(strings.TrimSpace(spec.Locale), "_", "-")
	if spec.Locale == "" {
		return errors.New("empty locale identifier")
	}

	if spec.Territory != "" {
		spec.Territory = strings.ToUpper(spec.Territory)
		return nil
	}

	// Week data is keyed by territory; fall back to the likely region.
	if tag, err := language.Parse(spec.Locale); err == nil {
		if region, _ := tag.Region(); region != emptyRegion {
			spec.Territory = strings.ToUpper(region.String())
			return nil
		}
	}

	spec.Territory = ""
	return nil
}

func parseCalendars(items []string) ([]datetime.Calendar, error) {
	calendars := []datetime.Calendar{datetime.Gregorian}
	for _, item := range items {
		calendar, err := datetime.ParseCalendar(item)
		if err != nil {
			return nil, err
		}
		if containsCalendar(calendars, calendar) {
			continue
		}
		calendars = append(calendars, calendar)
	}
	sort.Slice(calendars, func(i, j int) bool { return calendars[i] < calendars[j] })
	return calendars, nil
}

func containsCalendar(list []datetime.Calendar, calendar datetime.Calendar) bool {
	for _, existing := range list {
		if existing == calendar {
			return true
		}
	}
	return false
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
