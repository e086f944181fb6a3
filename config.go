package datetime

import (
	"fmt"
)

// Config captures provider, locale and formatter setup
type Config struct {
	DefaultLocale string
	Locales       []string
	Provider      DataProvider
	Loader        BundleLoader
	Resolver      FallbackResolver
	Hooks         []FormatHook

	calendar     Calendar
	calendarSet  bool
	hourCycle    HourCycle
	penalties    *PenaltyTable
	xtextNumbers bool
	symbols      DateSymbolsSource

	formatterRegistry *FormatterRegistry
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Every configured locale must
// resolve date data in the provider.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Locales = normalizeLocales(cfg.Locales)
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Provider == nil {
		provider, err := cfg.buildProvider()
		if err != nil {
			return nil, err
		}
		cfg.Provider = provider
	}
	cfg.Provider = OverlayProvider(cfg.Provider, cfg.symbols)

	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0]
	}

	if err := cfg.validateLocales(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDefaultLocale sets the default locale in Config
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales registers supported locales
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithProvider replaces the embedded data with provider.
func WithProvider(provider DataProvider) Option {
	return func(c *Config) error {
		c.Provider = provider
		return nil
	}
}

func WithLoader(loader BundleLoader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithDataFiles loads JSON or YAML bundles in place of the embedded data.
func WithDataFiles(paths ...string) Option {
	return func(c *Config) error {
		if len(paths) == 0 {
			return nil
		}
		c.Loader = NewFileLoader(paths...)
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithDefaultCalendar pins the calendar of every formatter built from Config.
func WithDefaultCalendar(calendar Calendar) Option {
	return func(c *Config) error {
		if _, err := calendar.MarshalText(); err != nil {
			return err
		}
		c.calendar = calendar
		c.calendarSet = true
		return nil
	}
}

// WithDefaultHourCycle overrides the locales' preferred hour cycle.
func WithDefaultHourCycle(cycle HourCycle) Option {
	return func(c *Config) error {
		if _, err := cycle.MarshalText(); err != nil {
			return err
		}
		c.hourCycle = cycle
		return nil
	}
}

func WithPenalties(table PenaltyTable) Option {
	return func(c *Config) error {
		if err := table.Validate(); err != nil {
			return err
		}
		cloned := table.clone()
		c.penalties = &cloned
		return nil
	}
}

// WithPenaltyTableFile reads skeleton matching weights from a JSON or YAML file.
func WithPenaltyTableFile(path string) Option {
	return func(c *Config) error {
		table, err := LoadPenaltyTable(path)
		if err != nil {
			return err
		}
		c.penalties = &table
		return nil
	}
}

func WithFormatHooks(hooks ...FormatHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithLocaleNumbers renders numeric fields through golang.org/x/text.
func WithLocaleNumbers() Option {
	return func(c *Config) error {
		c.xtextNumbers = true
		return nil
	}
}

// WithSymbolOverlay layers source's month, weekday and era names over the provider's.
func WithSymbolOverlay(source DateSymbolsSource) Option {
	return func(c *Config) error {
		c.symbols = source
		return nil
	}
}

// FormatterOptions returns the formatter options implied by Config.
func (cfg *Config) FormatterOptions() []FormatterOption {
	if cfg == nil {
		return nil
	}
	var opts []FormatterOption
	if cfg.calendarSet {
		opts = append(opts, WithCalendar(cfg.calendar))
	}
	if cfg.hourCycle != 0 {
		opts = append(opts, WithHourCycle(cfg.hourCycle))
	}
	if cfg.penalties != nil {
		opts = append(opts, WithPenaltyTable(*cfg.penalties))
	}
	if cfg.xtextNumbers {
		opts = append(opts, WithXTextNumbers())
	}
	return opts
}

// FormatterRegistry builds the registry once and returns it on later calls.
func (cfg *Config) FormatterRegistry() (*FormatterRegistry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidOptions)
	}
	if cfg.formatterRegistry != nil {
		return cfg.formatterRegistry, nil
	}

	locales := cfg.Locales
	if cfg.DefaultLocale != "" && !containsLocale(locales, cfg.DefaultLocale) {
		locales = append([]string{cfg.DefaultLocale}, locales...)
	}

	registry, err := NewFormatterRegistry(
		WithFormatterRegistryProvider(cfg.Provider),
		WithFormatterRegistryResolver(cfg.Resolver),
		WithFormatterRegistryLocales(locales...),
		WithFormatterRegistryOptions(cfg.FormatterOptions()...),
		WithFormatterRegistryHooks(cfg.Hooks...),
	)
	if err != nil {
		return nil, err
	}
	cfg.formatterRegistry = registry
	return registry, nil
}

// TemplateHelpers returns the registry helpers, defaulting to cfg.DefaultLocale.
func (cfg *Config) TemplateHelpers(helperCfg HelperConfig) (map[string]any, error) {
	registry, err := cfg.FormatterRegistry()
	if err != nil {
		return nil, err
	}
	if helperCfg.DefaultLocale == "" {
		helperCfg.DefaultLocale = cfg.DefaultLocale
	}
	return TemplateHelpers(registry, helperCfg), nil
}

func (cfg *Config) buildProvider() (DataProvider, error) {
	if cfg.Loader == nil {
		bundle, err := DefaultBundle()
		if err != nil {
			return nil, err
		}
		return NewStaticProvider(bundle, cfg.Resolver)
	}

	bundle, err := cfg.Loader.Load()
	if err != nil {
		return nil, err
	}
	return NewStaticProvider(bundle, cfg.Resolver)
}

func (cfg *Config) validateLocales() error {
	locales := cfg.Locales
	if cfg.DefaultLocale != "" && !containsLocale(locales, cfg.DefaultLocale) {
		locales = append([]string{cfg.DefaultLocale}, locales...)
	}

	opts := cfg.FormatterOptions()
	for _, locale := range locales {
		probe := newFormatterConfig(opts)
		key, err := probe.resolve(locale, cfg.Provider)
		if err != nil {
			return fmt.Errorf("datetime: locale %q: %w", locale, err)
		}
		if _, err := cfg.Provider.DatePatterns(key); err != nil {
			return fmt.Errorf("datetime: locale %q is not defined in calendar data: %w", locale, err)
		}
	}
	return nil
}
