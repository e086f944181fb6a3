package monday

import (
	"fmt"
	"strings"
	"sync"
	"time"

	datetime "github.com/goliatone/go-datetime"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

var defaultLocales = map[string]monday.Locale{
	"en":    monday.LocaleEnUS,
	"en-US": monday.LocaleEnUS,
	"en-GB": monday.LocaleEnGB,
	"de":    monday.LocaleDeDE,
	"de-DE": monday.LocaleDeDE,
	"fr":    monday.LocaleFrFR,
	"fr-FR": monday.LocaleFrFR,
	"fr-CA": monday.LocaleFrCA,
	"es":    monday.LocaleEsES,
	"es-ES": monday.LocaleEsES,
	"it":    monday.LocaleItIT,
	"it-IT": monday.LocaleItIT,
	"pt":    monday.LocalePtPT,
	"pt-PT": monday.LocalePtPT,
	"pt-BR": monday.LocalePtBR,
	"nl":    monday.LocaleNlNL,
	"nl-NL": monday.LocaleNlNL,
	"nl-BE": monday.LocaleNlBE,
	"ru":    monday.LocaleRuRU,
	"pl":    monday.LocalePlPL,
	"cs":    monday.LocaleCsCZ,
	"da":    monday.LocaleDaDK,
	"fi":    monday.LocaleFiFI,
	"sv":    monday.LocaleSvSE,
	"nb":    monday.LocaleNbNO,
	"uk":    monday.LocaleUkUA,
	"el":    monday.LocaleElGR,
	"ro":    monday.LocaleRoRO,
	"hu":    monday.LocaleHuHU,
	"bg":    monday.LocaleBgBG,
	"tr":    monday.LocaleTrTR,
}

type options struct {
	locales map[string]monday.Locale
}

// Option configures the monday symbol source.
type Option func(*options)

// WithLocale maps a BCP 47 tag to a monday locale, replacing any default mapping.
func WithLocale(tag string, locale monday.Locale) Option {
	return func(o *options) {
		tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
		if tag == "" {
			return
		}
		o.locales[tag] = locale
	}
}

// Source supplies gregorian month and weekday names from monday's tables.
// Eras, quarters and day periods are left to the underlying provider.
type Source struct {
	locales map[string]monday.Locale

	mu    sync.RWMutex
	cache map[monday.Locale]*datetime.DateSymbols
}

var _ datetime.DateSymbolsSource = (*Source)(nil)

func NewSource(opts ...Option) *Source {
	cfg := options{locales: make(map[string]monday.Locale, len(defaultLocales))}
	for tag, locale := range defaultLocales {
		cfg.locales[tag] = locale
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Source{
		locales: cfg.locales,
		cache:   make(map[monday.Locale]*datetime.DateSymbols),
	}
}

// DateSymbols implements datetime.DateSymbolsSource.
func (s *Source) DateSymbols(key datetime.DataKey) (*datetime.DateSymbols, error) {
	locale, ok := s.resolve(key.Locale)
	if !ok {
		return nil, fmt.Errorf("%w: no monday names for %q", datetime.ErrMissingData, key.Locale)
	}

	s.mu.RLock()
	symbols, ok := s.cache[locale]
	s.mu.RUnlock()
	if ok {
		return symbols.Clone(), nil
	}

	symbols = buildSymbols(locale)

	s.mu.Lock()
	s.cache[locale] = symbols
	s.mu.Unlock()

	return symbols.Clone(), nil
}

// resolve tries the full tag, then language-region, then the bare language.
func (s *Source) resolve(locale string) (monday.Locale, bool) {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return "", false
	}
	if found, ok := s.locales[locale]; ok {
		return found, true
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	if region, confidence := tag.Region(); confidence == language.Exact {
		if found, ok := s.locales[base.String()+"-"+region.String()]; ok {
			return found, true
		}
	}
	found, ok := s.locales[base.String()]
	return found, ok
}

func buildSymbols(locale monday.Locale) *datetime.DateSymbols {
	months := datetime.ContextNames{
		Format:     make(datetime.Names),
		StandAlone: make(datetime.Names),
	}
	for i := 0; i < 12; i++ {
		t := time.Date(2021, time.Month(i+1), 1, 12, 0, 0, 0, time.UTC)
		// With a day number monday switches to the genitive form where the
		// locale has one.
		months.Format[datetime.NameWide] = append(months.Format[datetime.NameWide], stripDay(monday.Format(t, "2 January", locale)))
		months.Format[datetime.NameAbbreviated] = append(months.Format[datetime.NameAbbreviated], stripDay(monday.Format(t, "2 Jan", locale)))
		months.StandAlone[datetime.NameWide] = append(months.StandAlone[datetime.NameWide], monday.Format(t, "January", locale))
		months.StandAlone[datetime.NameAbbreviated] = append(months.StandAlone[datetime.NameAbbreviated], monday.Format(t, "Jan", locale))
	}

	weekdays := datetime.ContextNames{Format: make(datetime.Names)}
	// 2021-01-03 is a Sunday.
	for i := 0; i < 7; i++ {
		t := time.Date(2021, time.January, 3+i, 12, 0, 0, 0, time.UTC)
		weekdays.Format[datetime.NameWide] = append(weekdays.Format[datetime.NameWide], monday.Format(t, "Monday", locale))
		weekdays.Format[datetime.NameAbbreviated] = append(weekdays.Format[datetime.NameAbbreviated], monday.Format(t, "Mon", locale))
	}

	return &datetime.DateSymbols{Months: months, Weekdays: weekdays}
}

func stripDay(value string) string {
	return strings.TrimSpace(strings.TrimLeft(value, "0123456789"))
}
