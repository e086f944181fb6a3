package datetime

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/language"
)

const worldRegion = "001"

var isoWeekRules = WeekRules{FirstDay: time.Monday, MinDays: 4}

// StaticProvider serves an immutable snapshot of a Bundle.
//
// A locale resolves along its own parent chain (en-GB, en-001, en) and then
// along the chains of the resolver's fallbacks. A calendar without data of
// its own borrows gregorian sections from the same chain. Buddhist and
// japanese never borrow era names, nor year patterns that lack an era field.
type StaticProvider struct {
	locales  map[string]*staticLocale
	weekData map[string]WeekRules
	resolver FallbackResolver
}

type staticLocale struct {
	numbering NumberingSymbols
	calendars map[Calendar]CalendarData
}

var _ DataProvider = (*StaticProvider)(nil)

// NewStaticProvider validates and copies bundle. resolver may be nil.
func NewStaticProvider(bundle *Bundle, resolver FallbackResolver) (*StaticProvider, error) {
	if bundle == nil {
		return nil, fmt.Errorf("%w: nil bundle", ErrMissingData)
	}

	p := &StaticProvider{
		locales:  make(map[string]*staticLocale, len(bundle.Locales)),
		weekData: make(map[string]WeekRules, len(bundle.WeekData)),
		resolver: resolver,
	}

	for locale, data := range bundle.Locales {
		locale = normalizeLocale(locale)
		if locale == "" || data == nil {
			continue
		}
		if err := data.Numbering.Validate(); err != nil {
			return nil, fmt.Errorf("locale %s: %w", locale, err)
		}
		entry := &staticLocale{
			numbering: data.Numbering,
			calendars: make(map[Calendar]CalendarData, len(data.Calendars)),
		}
		for calendar, section := range data.Calendars {
			if _, err := NewSkeletonPatternTable(section.Skeletons); err != nil {
				return nil, fmt.Errorf("locale %s/%s: %w", locale, calendar, err)
			}
			entry.calendars[calendar] = section.clone()
		}
		p.locales[locale] = entry
	}

	for region, data := range bundle.WeekData {
		rules, err := data.Rules()
		if err != nil {
			return nil, fmt.Errorf("week data %s: %w", region, err)
		}
		p.weekData[region] = rules
	}

	return p, nil
}

// Locales lists the bundle locales, sorted.
func (p *StaticProvider) Locales() []string {
	out := make([]string, 0, len(p.locales))
	for locale := range p.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// candidates returns the lookup chain for locale, nearest first.
func (p *StaticProvider) candidates(locale string) []string {
	locale = normalizeLocale(locale)
	seen := make(map[string]struct{}, 8)
	var out []string
	add := func(values ...string) {
		for _, value := range values {
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			out = append(out, value)
		}
	}

	add(locale)
	add(parentLocales(locale)...)
	if p.resolver != nil {
		for _, fallback := range p.resolver.Resolve(locale) {
			fallback = normalizeLocale(fallback)
			add(fallback)
			add(parentLocales(fallback)...)
		}
	}
	return out
}

// calendarSection is one visible section. borrowed marks gregorian data seen
// through a calendar that counts years from its own eras.
type calendarSection struct {
	CalendarData
	borrowed bool
}

// sections returns the calendar sections visible for key, nearest first.
func (p *StaticProvider) sections(key DataKey) []calendarSection {
	chain := p.candidates(key.Locale)
	calendars := []Calendar{key.Calendar}
	if key.Calendar != Gregorian {
		calendars = append(calendars, Gregorian)
	}

	var out []calendarSection
	for _, calendar := range calendars {
		for _, locale := range chain {
			entry, ok := p.locales[locale]
			if !ok {
				continue
			}
			if section, ok := entry.calendars[calendar]; ok {
				out = append(out, calendarSection{
					CalendarData: section,
					borrowed:     calendar != key.Calendar && key.Calendar.ownEras(),
				})
			}
		}
	}
	return out
}

// eraSafe reports whether pattern can render a year of an era-based
// calendar: either it shows no year or it names the era.
func eraSafe(pattern Pattern) bool {
	hasYear := pattern.has(func(f Field) bool {
		return f.Symbol == SymbolYear || f.Symbol == SymbolWeekYear
	})
	return !hasYear || pattern.has(func(f Field) bool { return f.Symbol == SymbolEra })
}

func missingData(what string, key DataKey) error {
	return fmt.Errorf("%w: %s for %s", ErrMissingData, what, key)
}

func (p *StaticProvider) DatePatterns(key DataKey) (LengthPatterns, error) {
	for _, section := range p.sections(key) {
		if section.DatePatterns.IsZero() {
			continue
		}
		if section.borrowed && !section.DatePatterns.all(eraSafe) {
			continue
		}
		return section.DatePatterns, nil
	}
	return LengthPatterns{}, missingData("date patterns", key)
}

func (p *StaticProvider) TimePatterns(key DataKey) (TimeLengths, error) {
	for _, section := range p.sections(key) {
		if !section.TimePatterns.IsZero() {
			return section.TimePatterns, nil
		}
	}
	return TimeLengths{}, missingData("time patterns", key)
}

func (p *StaticProvider) GluePatterns(key DataKey) (GlueLengths, error) {
	for _, section := range p.sections(key) {
		if !section.GluePatterns.IsZero() {
			return section.GluePatterns, nil
		}
	}
	return GlueLengths{}, missingData("glue patterns", key)
}

// SkeletonPatterns merges every visible skeleton map; nearer entries win.
// Borrowed skeletons showing a year without its era are skipped.
func (p *StaticProvider) SkeletonPatterns(key DataKey) (SkeletonPatternTable, error) {
	sections := p.sections(key)
	merged := make(map[string]Pattern)
	for i := len(sections) - 1; i >= 0; i-- {
		for id, pattern := range sections[i].Skeletons {
			if sections[i].borrowed && !eraSafe(pattern) {
				continue
			}
			merged[id] = pattern
		}
	}
	if len(merged) == 0 {
		return SkeletonPatternTable{}, missingData("skeleton patterns", key)
	}
	return NewSkeletonPatternTable(merged)
}

// DateSymbols layers every visible table; nearer tables win per width.
// Borrowed tables contribute no era names.
func (p *StaticProvider) DateSymbols(key DataKey) (*DateSymbols, error) {
	sections := p.sections(key)
	var out *DateSymbols
	for i := len(sections) - 1; i >= 0; i-- {
		symbols := sections[i].DateSymbols
		if symbols == nil {
			continue
		}
		if sections[i].borrowed {
			symbols = symbols.Clone()
			symbols.Eras = nil
		}
		out = out.Overlay(symbols)
	}
	if out == nil {
		return nil, missingData("date symbols", key)
	}
	return out, nil
}

// TimeSymbols layers every visible table; nearer tables win.
func (p *StaticProvider) TimeSymbols(key DataKey) (*TimeSymbols, error) {
	sections := p.sections(key)
	var out *TimeSymbols
	for i := len(sections) - 1; i >= 0; i-- {
		if sections[i].TimeSymbols != nil {
			out = out.overlay(sections[i].TimeSymbols)
		}
	}
	if out == nil {
		return nil, missingData("time symbols", key)
	}
	return out, nil
}

// WeekRules uses the likely region of the locale, then the world default.
// The ISO calendar always counts ISO-8601 weeks.
func (p *StaticProvider) WeekRules(key DataKey) (WeekRules, error) {
	if key.Calendar == ISO {
		return isoWeekRules, nil
	}
	region := worldRegion
	if tag, err := language.Parse(normalizeLocale(key.Locale)); err == nil {
		if r, _ := tag.Region(); r.String() != "ZZ" {
			region = r.String()
		}
	}
	if rules, ok := p.weekData[region]; ok {
		return rules, nil
	}
	if rules, ok := p.weekData[worldRegion]; ok {
		return rules, nil
	}
	return WeekRules{}, missingData("week rules (region "+region+")", key)
}

// NumberingSymbols returns the nearest numbering data; locales present in the
// bundle without numbering data use Latin digits.
func (p *StaticProvider) NumberingSymbols(key DataKey) (NumberingSymbols, error) {
	found := false
	for _, locale := range p.candidates(key.Locale) {
		entry, ok := p.locales[locale]
		if !ok {
			continue
		}
		found = true
		if !entry.numbering.IsZero() {
			return entry.numbering, nil
		}
	}
	if !found {
		return NumberingSymbols{}, missingData("numbering symbols", key)
	}
	return NumberingSymbols{System: "latn", Digits: latinDigits}, nil
}
