package datetime

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"
)

type formatterKey struct {
	locale string
	kind   string
	spec   string
}

// FormatterRegistry caches formatters per locale and request and exposes them
// as template functions.
type FormatterRegistry struct {
	mu        sync.RWMutex
	provider  DataProvider
	resolver  FallbackResolver
	locales   []string
	options   []FormatterOption
	hooks     []FormatHook
	cache     map[formatterKey]Formatter
	overrides map[string]map[string]any
	globals   map[string]any
	funcCache map[string]map[string]any
}

type formatterRegistryConfig struct {
	provider DataProvider
	resolver FallbackResolver
	locales  []string
	options  []FormatterOption
	hooks    []FormatHook
}

type FormatterRegistryOption func(*formatterRegistryConfig)

func WithFormatterRegistryProvider(provider DataProvider) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.provider = provider
	}
}

func WithFormatterRegistryResolver(resolver FallbackResolver) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.resolver = resolver
	}
}

func WithFormatterRegistryLocales(locales ...string) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.locales = append(frc.locales, locales...)
	}
}

// WithFormatterRegistryOptions applies opts to every formatter the registry builds.
func WithFormatterRegistryOptions(opts ...FormatterOption) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.options = append(frc.options, opts...)
	}
}

// WithFormatterRegistryCalendar pins the calendar of every formatter; time.Time
// values are converted to it before formatting.
func WithFormatterRegistryCalendar(calendar Calendar) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.options = append(frc.options, WithCalendar(calendar))
	}
}

func WithFormatterRegistryHooks(hooks ...FormatHook) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.hooks = append(frc.hooks, hooks...)
	}
}

var defaultFormatterLocales = []string{"en", "es"}

// NewFormatterRegistry validates that every configured locale has date data.
func NewFormatterRegistry(opts ...FormatterRegistryOption) (*FormatterRegistry, error) {
	cfg := formatterRegistryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.provider == nil {
		provider, err := DefaultProvider()
		if err != nil {
			return nil, err
		}
		cfg.provider = provider
	}

	registry := &FormatterRegistry{
		provider:  cfg.provider,
		resolver:  cfg.resolver,
		locales:   normalizeLocales(cfg.locales),
		options:   append([]FormatterOption(nil), cfg.options...),
		hooks:     cfg.hooks,
		cache:     make(map[formatterKey]Formatter),
		overrides: make(map[string]map[string]any),
	}

	registry.seedFallbacks()
	if err := registry.ensureConfiguredLocales(); err != nil {
		return nil, err
	}
	return registry, nil
}

// Locales returns the configured locales.
func (r *FormatterRegistry) Locales() []string {
	return append([]string(nil), r.locales...)
}

// Provider returns the data provider formatters are built from.
func (r *FormatterRegistry) Provider() DataProvider {
	return r.provider
}

// DateFormatter returns a cached date formatter for locale.
func (r *FormatterRegistry) DateFormatter(locale string, length Length) (Formatter, error) {
	return r.formatter(locale, "date", length.String(), func(candidate string) (Formatter, error) {
		return NewDateFormatter(candidate, r.provider, length, r.options...)
	})
}

// TimeFormatter returns a cached time formatter for locale.
func (r *FormatterRegistry) TimeFormatter(locale string, length Length) (Formatter, error) {
	return r.formatter(locale, "time", length.String(), func(candidate string) (Formatter, error) {
		return NewTimeFormatter(candidate, r.provider, length, r.options...)
	})
}

// DateTimeFormatter returns a cached formatter for a LengthBag or a Bag.
func (r *FormatterRegistry) DateTimeFormatter(locale string, options Options) (Formatter, error) {
	spec := fmt.Sprintf("%T%+v", options, options)
	return r.formatter(locale, "datetime", spec, func(candidate string) (Formatter, error) {
		return NewDateTimeFormatter(candidate, r.provider, options, r.options...)
	})
}

func (r *FormatterRegistry) formatter(locale, kind, spec string, build func(string) (Formatter, error)) (Formatter, error) {
	locale = normalizeLocale(locale)
	if locale == "" {
		locale = r.defaultLocale()
	}
	key := formatterKey{locale: locale, kind: kind, spec: spec}

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var lastErr error
	for _, candidate := range r.candidateLocales(locale) {
		formatter, err := build(candidate)
		if err == nil {
			formatter = WrapFormatterWithHooks(formatter, r.hooks...)
			r.mu.Lock()
			r.cache[key] = formatter
			r.mu.Unlock()
			return formatter, nil
		}
		if !errors.Is(err, ErrMissingData) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// Format converts value to the formatter's calendar and renders it.
func (r *FormatterRegistry) Format(formatter Formatter, value time.Time) (string, error) {
	input, err := FromTime(value, formatter.Calendar())
	if err != nil {
		return "", err
	}
	return formatter.Format(input)
}

// FormatValue renders a time.Time, *time.Time or DateTimeInput.
func (r *FormatterRegistry) FormatValue(formatter Formatter, value any) (string, error) {
	switch v := value.(type) {
	case time.Time:
		return r.Format(formatter, v)
	case *time.Time:
		if v == nil {
			return "", fmt.Errorf("%w: nil time", ErrMissingInputField)
		}
		return r.Format(formatter, *v)
	case DateTimeInput:
		return formatter.Format(v)
	case nil:
		return "", fmt.Errorf("%w: nil value", ErrMissingInputField)
	default:
		return "", fmt.Errorf("%w: cannot format %T", ErrInvalidOptions, value)
	}
}

// Register sets or replaces a template function for every locale.
func (r *FormatterRegistry) Register(name string, fn any) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.globals == nil {
		r.globals = make(map[string]any)
	}
	r.globals[name] = fn
	r.funcCache = nil
}

// RegisterLocale registers a locale specific override for the <name> helper.
func (r *FormatterRegistry) RegisterLocale(locale, name string, fn any) {
	if locale == "" || name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	locale = normalizeLocale(locale)
	helpers := r.overrides[locale]
	if helpers == nil {
		helpers = make(map[string]any)
		r.overrides[locale] = helpers
	}
	helpers[name] = fn
	r.funcCache = nil
}

func (r *FormatterRegistry) defaults() map[string]any {
	return map[string]any{
		"format_date": func(locale string, value any, style ...string) (string, error) {
			length, err := styleAt(style, 0)
			if err != nil {
				return "", err
			}
			f, err := r.DateFormatter(locale, length)
			if err != nil {
				return "", err
			}
			return r.FormatValue(f, value)
		},
		"format_time": func(locale string, value any, style ...string) (string, error) {
			length, err := styleAt(style, 0)
			if err != nil {
				return "", err
			}
			f, err := r.TimeFormatter(locale, length)
			if err != nil {
				return "", err
			}
			return r.FormatValue(f, value)
		},
		"format_datetime": func(locale string, value any, styles ...string) (string, error) {
			date, err := styleAt(styles, 0)
			if err != nil {
				return "", err
			}
			clock, err := styleAt(styles, 1)
			if err != nil {
				return "", err
			}
			f, err := r.DateTimeFormatter(locale, LengthBag{Date: date, Time: clock})
			if err != nil {
				return "", err
			}
			return r.FormatValue(f, value)
		},
		"format_skeleton": func(locale string, value any, components string) (string, error) {
			bag, err := ParseComponents(components)
			if err != nil {
				return "", err
			}
			f, err := r.DateTimeFormatter(locale, bag)
			if err != nil {
				return "", err
			}
			return r.FormatValue(f, value)
		},
	}
}

// styleAt reads styles[i], defaulting to medium.
func styleAt(styles []string, i int) (Length, error) {
	if i >= len(styles) || strings.TrimSpace(styles[i]) == "" {
		return LengthMedium, nil
	}
	return ParseLength(styles[i])
}

// FuncMap returns all helper functions applicable to the locale.
func (r *FormatterRegistry) FuncMap(locale string) map[string]any {
	return maps.Clone(r.funcMapForLocale(normalizeLocale(locale)))
}

func (r *FormatterRegistry) funcMapForLocale(locale string) map[string]any {
	r.mu.RLock()
	if cached, ok := r.funcCache[locale]; ok {
		r.mu.RUnlock()
		return cached
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcCache == nil {
		r.funcCache = make(map[string]map[string]any)
	} else if cached, ok := r.funcCache[locale]; ok {
		return cached
	}

	effective := locale
	if effective == "" {
		effective = r.defaultLocale()
	}

	result := r.defaults()
	candidates := r.candidateLocales(effective)
	// least specific first so the requested locale wins
	for i := len(candidates) - 1; i >= 0; i-- {
		if helpers, ok := r.overrides[candidates[i]]; ok {
			maps.Copy(result, helpers)
		}
	}
	maps.Copy(result, r.globals)

	r.funcCache[locale] = result
	return result
}

func (r *FormatterRegistry) candidateLocales(locale string) []string {
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	if r.resolver != nil {
		for _, parent := range r.resolver.Resolve(locale) {
			if parent == "" || containsLocale(chain, parent) {
				continue
			}
			chain = append(chain, parent)
		}
	}

	return chain
}

func (r *FormatterRegistry) seedFallbacks() {
	resolver, ok := r.resolver.(*StaticFallbackResolver)
	if !ok || resolver == nil {
		return
	}

	for _, locale := range r.locales {
		if existing := resolver.Resolve(locale); len(existing) > 0 {
			continue
		}
		if parents := parentLocales(locale); len(parents) > 0 {
			resolver.Set(locale, parents...)
		}
	}
}

func (r *FormatterRegistry) ensureConfiguredLocales() error {
	for _, locale := range r.locales {
		if _, err := r.DateFormatter(locale, LengthShort); err != nil {
			return fmt.Errorf("formatter registry: locale %q: %w", locale, err)
		}
	}
	return nil
}

func containsLocale(locales []string, target string) bool {
	for _, locale := range locales {
		if locale == target {
			return true
		}
	}
	return false
}

func (r *FormatterRegistry) defaultLocale() string {
	if len(r.locales) > 0 {
		return r.locales[0]
	}
	return defaultFormatterLocales[0]
}
