package datetime

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
)

type formatterConfig struct {
	calendar    Calendar
	calendarSet bool
	hourCycle   HourCycle
	decimal     DecimalFormatter
	xtext       bool
	penalties   *PenaltyTable
	tag         language.Tag
}

// FormatterOption customises formatter construction.
type FormatterOption func(*formatterConfig)

// WithCalendar pins the calendar, overriding the locale's -u-ca- keyword.
func WithCalendar(calendar Calendar) FormatterOption {
	return func(c *formatterConfig) {
		c.calendar = calendar
		c.calendarSet = true
	}
}

// WithHourCycle overrides the locale's preferred hour cycle.
func WithHourCycle(cycle HourCycle) FormatterOption {
	return func(c *formatterConfig) {
		c.hourCycle = cycle
	}
}

// WithDecimalFormatter replaces the decimal formatter used for numeric fields.
func WithDecimalFormatter(formatter DecimalFormatter) FormatterOption {
	return func(c *formatterConfig) {
		c.decimal = formatter
	}
}

// WithXTextNumbers renders numeric fields with golang.org/x/text for the locale.
func WithXTextNumbers() FormatterOption {
	return func(c *formatterConfig) {
		c.xtext = true
	}
}

// WithPenaltyTable replaces the skeleton matching weights.
func WithPenaltyTable(table PenaltyTable) FormatterOption {
	return func(c *formatterConfig) {
		cloned := table.clone()
		c.penalties = &cloned
	}
}

func newFormatterConfig(opts []FormatterOption) formatterConfig {
	var cfg formatterConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c formatterConfig) decimalFormatter(provider DataProvider, key DataKey) (DecimalFormatter, error) {
	switch {
	case c.decimal != nil:
		return c.decimal, nil
	case c.xtext:
		return NewXTextDecimalFormatter(c.tag), nil
	}
	symbols, err := provider.NumberingSymbols(key)
	if err != nil {
		return nil, fmt.Errorf("numbering for %s: %w", key, err)
	}
	return NewDigitFormatter(symbols)
}

func (c formatterConfig) penaltyTable() (PenaltyTable, error) {
	if c.penalties == nil {
		return DefaultPenaltyTable(), nil
	}
	if err := c.penalties.Validate(); err != nil {
		return PenaltyTable{}, err
	}
	return *c.penalties, nil
}

// resolve fixes the data key and the hour-cycle preference for locale.
func (c *formatterConfig) resolve(locale string, provider DataProvider) (DataKey, error) {
	if provider == nil {
		return DataKey{}, fmt.Errorf("%w: nil data provider", ErrInvalidOptions)
	}
	if strings.TrimSpace(locale) == "" {
		return DataKey{}, fmt.Errorf("%w: empty locale", ErrInvalidOptions)
	}
	tag, base, err := localeTag(locale)
	if err != nil {
		return DataKey{}, fmt.Errorf("%w: locale %q: %w", ErrInvalidOptions, locale, err)
	}
	c.tag = tag

	if !c.calendarSet {
		c.calendar = Gregorian
		if id := tag.TypeForKey("ca"); id != "" {
			calendar, err := ParseCalendar(id)
			if err != nil {
				return DataKey{}, fmt.Errorf("locale %q: %w", locale, err)
			}
			c.calendar = calendar
		}
	}
	if c.hourCycle == 0 {
		if hc := tag.TypeForKey("hc"); hc != "" {
			cycle, err := ParseHourCycle(hc)
			if err != nil {
				return DataKey{}, fmt.Errorf("locale %q: %w", locale, err)
			}
			c.hourCycle = cycle
		}
	}

	return DataKey{Locale: base, Calendar: c.calendar}, nil
}

func checkCalendar(want Calendar, value DateTimeInput) error {
	if value == nil {
		return fmt.Errorf("%w: nil input", ErrMissingInputField)
	}
	if got := value.Calendar(); got != want {
		return fmt.Errorf("%w: formatter uses %s, input is %s", ErrCalendarMismatch, want, got)
	}
	return nil
}

// DateFormatter renders the date half of a length style.
type DateFormatter struct {
	key      DataKey
	length   Length
	renderer *renderer
	glue     GlueLengths
	glueErr  error
}

// NewDateFormatter resolves the locale's date pattern for length.
func NewDateFormatter(locale string, provider DataProvider, length Length, opts ...FormatterOption) (*DateFormatter, error) {
	cfg := newFormatterConfig(opts)
	key, err := cfg.resolve(locale, provider)
	if err != nil {
		return nil, err
	}

	patterns, err := provider.DatePatterns(key)
	if err != nil {
		return nil, err
	}
	pattern, err := patterns.Get(length)
	if err != nil {
		return nil, fmt.Errorf("date pattern for %s: %w", key, err)
	}
	r, err := newRenderer(pattern, provider, key, cfg)
	if err != nil {
		return nil, err
	}

	glue, glueErr := provider.GluePatterns(key)
	if glueErr == nil {
		_, glueErr = glue.Get(length)
	}

	return &DateFormatter{key: key, length: length, renderer: r, glue: glue, glueErr: glueErr}, nil
}

func (f *DateFormatter) Format(value DateTimeInput) (string, error) {
	if err := checkCalendar(f.key.Calendar, value); err != nil {
		return "", err
	}
	return f.renderer.renderString(value)
}

func (f *DateFormatter) FormatTo(w io.Writer, value DateTimeInput) error {
	if err := checkCalendar(f.key.Calendar, value); err != nil {
		return err
	}
	return f.renderer.render(w, value)
}

func (f *DateFormatter) ResolveComponents() Bag { return BagFromPattern(f.renderer.pattern) }
func (f *DateFormatter) Pattern() Pattern       { return f.renderer.pattern }
func (f *DateFormatter) Locale() string         { return f.key.Locale }
func (f *DateFormatter) Calendar() Calendar     { return f.key.Calendar }

// TimeFormatter renders the time half of a length style. It accepts inputs of any calendar.
type TimeFormatter struct {
	key      DataKey
	renderer *renderer
}

// NewTimeFormatter resolves the locale's time pattern for length and hour cycle.
func NewTimeFormatter(locale string, provider DataProvider, length Length, opts ...FormatterOption) (*TimeFormatter, error) {
	cfg := newFormatterConfig(opts)
	key, err := cfg.resolve(locale, provider)
	if err != nil {
		return nil, err
	}

	times, err := provider.TimePatterns(key)
	if err != nil {
		return nil, err
	}
	pattern, err := times.Resolve(length, cfg.hourCycle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	r, err := newRenderer(pattern, provider, key, cfg)
	if err != nil {
		return nil, err
	}
	return &TimeFormatter{key: key, renderer: r}, nil
}

func (f *TimeFormatter) Format(value DateTimeInput) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: nil input", ErrMissingInputField)
	}
	return f.renderer.renderString(value)
}

func (f *TimeFormatter) FormatTo(w io.Writer, value DateTimeInput) error {
	if value == nil {
		return fmt.Errorf("%w: nil input", ErrMissingInputField)
	}
	return f.renderer.render(w, value)
}

func (f *TimeFormatter) ResolveComponents() Bag { return BagFromPattern(f.renderer.pattern) }
func (f *TimeFormatter) Pattern() Pattern       { return f.renderer.pattern }
func (f *TimeFormatter) Locale() string         { return f.key.Locale }
func (f *TimeFormatter) Calendar() Calendar     { return f.key.Calendar }

// DateTimeFormatter renders a date, a time, or both joined by a glue pattern.
type DateTimeFormatter struct {
	key  DataKey
	date *renderer
	time *renderer
	glue GluePattern
}

// NewDateTimeFormatter accepts a LengthBag or a components Bag.
func NewDateTimeFormatter(locale string, provider DataProvider, options Options, opts ...FormatterOption) (*DateTimeFormatter, error) {
	cfg := newFormatterConfig(opts)
	key, err := cfg.resolve(locale, provider)
	if err != nil {
		return nil, err
	}

	switch o := options.(type) {
	case LengthBag:
		return newLengthDateTimeFormatter(key, provider, o, cfg)
	case Bag:
		return newComponentsDateTimeFormatter(key, provider, o, cfg)
	case nil:
		return nil, fmt.Errorf("%w: nil options", ErrInvalidOptions)
	default:
		return nil, fmt.Errorf("%w: unsupported options %T", ErrInvalidOptions, options)
	}
}

func newLengthDateTimeFormatter(key DataKey, provider DataProvider, bag LengthBag, cfg formatterConfig) (*DateTimeFormatter, error) {
	if bag.Date == 0 && bag.Time == 0 {
		return nil, fmt.Errorf("%w: length bag selects neither date nor time", ErrInvalidOptions)
	}

	f := &DateTimeFormatter{key: key}
	if bag.Date != 0 {
		patterns, err := provider.DatePatterns(key)
		if err != nil {
			return nil, err
		}
		pattern, err := patterns.Get(bag.Date)
		if err != nil {
			return nil, fmt.Errorf("date pattern for %s: %w", key, err)
		}
		if f.date, err = newRenderer(pattern, provider, key, cfg); err != nil {
			return nil, err
		}
	}
	if bag.Time != 0 {
		times, err := provider.TimePatterns(key)
		if err != nil {
			return nil, err
		}
		pattern, err := times.Resolve(bag.Time, cfg.hourCycle)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if f.time, err = newRenderer(pattern, provider, key, cfg); err != nil {
			return nil, err
		}
	}
	if f.date != nil && f.time != nil {
		glue, err := provider.GluePatterns(key)
		if err != nil {
			return nil, err
		}
		if f.glue, err = glue.Get(bag.Date); err != nil {
			return nil, fmt.Errorf("glue pattern for %s: %w", key, err)
		}
	}
	return f, nil
}

func newComponentsDateTimeFormatter(key DataKey, provider DataProvider, bag Bag, cfg formatterConfig) (*DateTimeFormatter, error) {
	if bag.IsZero() {
		return nil, fmt.Errorf("%w: empty components bag", ErrInvalidOptions)
	}
	penalties, err := cfg.penaltyTable()
	if err != nil {
		return nil, err
	}
	if bag.Preferences.HourCycle == 0 {
		bag.Preferences.HourCycle = cfg.hourCycle
	}

	preferred := H23
	if bag.Hour != 0 && bag.Preferences.HourCycle == 0 {
		times, err := provider.TimePatterns(key)
		if err != nil {
			return nil, err
		}
		preferred = times.Preferred()
	}

	table, err := provider.SkeletonPatterns(key)
	if err != nil {
		return nil, err
	}

	match := func(b Bag) (*renderer, error) {
		skeleton, err := b.Skeleton(preferred)
		if err != nil {
			return nil, err
		}
		m, err := penalties.BestMatch(table, skeleton)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return newRenderer(m.Pattern, provider, key, cfg)
	}

	single, err := match(bag)
	if err == nil {
		f := &DateTimeFormatter{key: key}
		if bag.HasDate() {
			f.date = single
		} else {
			f.time = single
		}
		return f, nil
	}
	if !errors.Is(err, ErrUnsupportedSkeleton) || !bag.HasDate() || !bag.HasTime() {
		return nil, err
	}

	f := &DateTimeFormatter{key: key}
	if f.date, err = match(bag.DateBag()); err != nil {
		return nil, err
	}
	if f.time, err = match(bag.TimeBag()); err != nil {
		return nil, err
	}
	glue, err := provider.GluePatterns(key)
	if err != nil {
		return nil, err
	}
	if f.glue, err = glue.Get(bag.glueLength()); err != nil {
		return nil, fmt.Errorf("glue pattern for %s: %w", key, err)
	}
	return f, nil
}

// FromDateAndTime joins two formatters with the date formatter's glue pattern.
func FromDateAndTime(date *DateFormatter, time *TimeFormatter) (*DateTimeFormatter, error) {
	if date == nil || time == nil {
		return nil, fmt.Errorf("%w: nil date or time formatter", ErrInvalidOptions)
	}
	if date.key.Calendar != time.key.Calendar {
		return nil, fmt.Errorf("%w: date formatter uses %s, time formatter %s", ErrCalendarMismatch, date.key.Calendar, time.key.Calendar)
	}
	if date.glueErr != nil {
		return nil, fmt.Errorf("glue pattern for %s: %w", date.key, date.glueErr)
	}
	glue, err := date.glue.Get(date.length)
	if err != nil {
		return nil, err
	}
	return &DateTimeFormatter{key: date.key, date: date.renderer, time: time.renderer, glue: glue}, nil
}

func (f *DateTimeFormatter) Format(value DateTimeInput) (string, error) {
	var b strings.Builder
	if err := f.FormatTo(&b, value); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (f *DateTimeFormatter) FormatTo(w io.Writer, value DateTimeInput) error {
	if f.date == nil {
		if value == nil {
			return fmt.Errorf("%w: nil input", ErrMissingInputField)
		}
		return f.time.render(w, value)
	}
	if err := checkCalendar(f.key.Calendar, value); err != nil {
		return err
	}
	if f.time == nil {
		return f.date.render(w, value)
	}

	date, err := f.date.renderString(value)
	if err != nil {
		return err
	}
	time, err := f.time.renderString(value)
	if err != nil {
		return err
	}
	return f.glue.Assemble(w, date, time)
}

// ResolveComponents returns the components the chosen patterns render.
func (f *DateTimeFormatter) ResolveComponents() Bag {
	var bag Bag
	if f.date != nil {
		bag = BagFromPattern(f.date.pattern)
	}
	if f.time != nil {
		bag = bag.merge(BagFromPattern(f.time.pattern))
	}
	return bag
}

// Patterns returns the date and time patterns; either may be zero.
func (f *DateTimeFormatter) Patterns() (date, time Pattern) {
	if f.date != nil {
		date = f.date.pattern
	}
	if f.time != nil {
		time = f.time.pattern
	}
	return date, time
}

// Glue returns the glue pattern, zero unless both halves are present.
func (f *DateTimeFormatter) Glue() GluePattern { return f.glue }

func (f *DateTimeFormatter) Locale() string     { return f.key.Locale }
func (f *DateTimeFormatter) Calendar() Calendar { return f.key.Calendar }
