package datetime

import (
	"fmt"
	"io"
	"strings"
)

// renderer walks a pattern once, left to right, against an input.
type renderer struct {
	pattern    Pattern
	date       *DateSymbols
	time       *TimeSymbols
	week       WeekRules
	decimal    DecimalFormatter
	standAlone bool
}

type patternNeeds struct {
	dateSymbols bool
	timeSymbols bool
	week        bool
	numbers     bool
}

func analyzePattern(p Pattern) patternNeeds {
	var needs patternNeeds
	for _, f := range p.Fields() {
		switch f.Kind() {
		case KindEra, KindMonth, KindQuarter:
			needs.dateSymbols = needs.dateSymbols || f.IsText()
		case KindWeekday:
			needs.dateSymbols = needs.dateSymbols || f.IsText()
		case KindDayPeriod:
			needs.timeSymbols = true
		case KindZone:
			needs.timeSymbols = true
		}
		switch f.Symbol {
		case SymbolWeekYear, SymbolWeekOfYear, SymbolWeekOfMonth, SymbolLocalWeekday, SymbolStandAloneWeekday:
			needs.week = true
		}
		if !f.IsText() || f.Kind() == KindZone {
			needs.numbers = true
		}
	}
	return needs
}

// newRenderer snapshots everything the pattern needs from the provider.
func newRenderer(p Pattern, provider DataProvider, key DataKey, cfg formatterConfig) (*renderer, error) {
	needs := analyzePattern(p)
	r := &renderer{
		pattern:    p,
		standAlone: len(p.Fields()) == 1,
	}

	if needs.dateSymbols {
		symbols, err := provider.DateSymbols(key)
		if err != nil {
			return nil, fmt.Errorf("date symbols for %s: %w", key, err)
		}
		r.date = symbols.subset(p)
	}
	if needs.timeSymbols {
		symbols, err := provider.TimeSymbols(key)
		if err != nil {
			return nil, fmt.Errorf("time symbols for %s: %w", key, err)
		}
		r.time = symbols.Clone()
	}
	if needs.week {
		rules, err := provider.WeekRules(key)
		if err != nil {
			return nil, fmt.Errorf("week rules for %s: %w", key, err)
		}
		if err := rules.Validate(); err != nil {
			return nil, fmt.Errorf("week rules for %s: %w", key, err)
		}
		r.week = rules
	}
	if needs.numbers {
		decimal, err := cfg.decimalFormatter(provider, key)
		if err != nil {
			return nil, err
		}
		r.decimal = decimal
	}
	return r, nil
}

func (r *renderer) render(w io.Writer, value DateTimeInput) error {
	for _, item := range r.pattern.items {
		text := item.Literal
		if item.IsField() {
			var err error
			text, err = r.field(item.Field, value)
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, text); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
	}
	return nil
}

func (r *renderer) renderString(value DateTimeInput) (string, error) {
	var b strings.Builder
	if err := r.render(&b, value); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *renderer) number(value int, length FieldLength) string {
	return r.decimal.FormatInteger(int64(value), int(length))
}

func (r *renderer) context(f Field) NameContext {
	switch f.Symbol {
	case SymbolStandAloneMonth, SymbolStandAloneQuarter, SymbolStandAloneWeekday:
		return ContextStandAlone
	}
	if r.standAlone {
		return ContextStandAlone
	}
	return ContextFormat
}

func (r *renderer) name(table ContextNames, f Field, index int) (string, error) {
	ctx := r.context(f)
	if name, ok := table.Lookup(ctx, f.Width(), index); ok {
		return name, nil
	}
	return "", missingSymbol(f.Kind(), ctx, f.Width(), index)
}

func (r *renderer) field(f Field, v DateTimeInput) (string, error) {
	switch f.Symbol {
	case SymbolEra:
		width := f.Width()
		if name, ok := r.date.Eras.Lookup(width, v.EraIndex()); ok {
			return name, nil
		}
		return "", missingSymbol(KindEra, ContextFormat, width, v.EraIndex())

	case SymbolYear:
		return r.year(v.Year(), f.Length), nil

	case SymbolWeekYear:
		week, err := r.weekOfYear(v)
		if err != nil {
			return "", err
		}
		return r.year(v.Year()+int(week.Unit), f.Length), nil

	case SymbolQuarter, SymbolStandAloneQuarter:
		quarter := v.MonthIndex() / 3
		if !f.IsText() {
			return r.number(quarter+1, f.Length), nil
		}
		return r.name(r.date.Quarters, f, quarter)

	case SymbolMonth, SymbolStandAloneMonth:
		if !f.IsText() {
			return r.number(v.MonthIndex()+1, f.Length), nil
		}
		return r.name(r.date.Months, f, v.MonthIndex())

	case SymbolWeekOfYear:
		week, err := r.weekOfYear(v)
		if err != nil {
			return "", err
		}
		return r.number(week.Week, f.Length), nil

	case SymbolWeekOfMonth:
		return r.number(r.week.WeekOfMonth(v.DayOfMonth(), v.Weekday()), f.Length), nil

	case SymbolDay:
		return r.number(v.DayOfMonth(), f.Length), nil

	case SymbolDayOfYear:
		info := v.DayOfYear()
		if info.DayOfYear < 1 {
			return "", fmt.Errorf("%w: day of year", ErrMissingInputField)
		}
		return r.number(info.DayOfYear, f.Length), nil

	case SymbolDayOfWeekInMonth:
		return r.number((v.DayOfMonth()-1)/7+1, f.Length), nil

	case SymbolWeekday:
		return r.name(r.date.Weekdays, f, int(v.Weekday()))

	case SymbolLocalWeekday, SymbolStandAloneWeekday:
		if !f.IsText() {
			return r.number(r.week.LocalWeekday(v.Weekday()), f.Length), nil
		}
		return r.name(r.date.Weekdays, f, int(v.Weekday()))

	case SymbolAmPm, SymbolNoonMidnight:
		return r.dayPeriod(f, v)

	case SymbolHour12:
		hour := v.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return r.number(hour, f.Length), nil

	case SymbolHour23:
		return r.number(v.Hour(), f.Length), nil

	case SymbolHour11:
		return r.number(v.Hour()%12, f.Length), nil

	case SymbolHour24:
		hour := v.Hour()
		if hour == 0 {
			hour = 24
		}
		return r.number(hour, f.Length), nil

	case SymbolMinute:
		return r.number(v.Minute(), f.Length), nil

	case SymbolSecond:
		return r.number(v.Second(), f.Length), nil
	}

	if f.Kind() == KindZone {
		return r.zone(f, v)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedField, rune(f.Symbol))
}

// year renders a year; only the two-digit form truncates.
func (r *renderer) year(year int, length FieldLength) string {
	if length == FieldLengthTwoDigit {
		year %= 100
		if year < 0 {
			year = -year
		}
	}
	return r.number(year, length)
}

func (r *renderer) weekOfYear(v DateTimeInput) (WeekOf, error) {
	info := v.DayOfYear()
	if info.DayOfYear < 1 || info.DaysInYear < 1 || info.DaysInPrevYear < 1 {
		return WeekOf{}, fmt.Errorf("%w: day of year information", ErrMissingInputField)
	}
	return r.week.WeekOf(info.DaysInPrevYear, info.DaysInYear, info.DayOfYear, v.Weekday())
}

func (r *renderer) dayPeriod(f Field, v DateTimeInput) (string, error) {
	index := DayPeriodAM
	if v.Hour() >= 12 {
		index = DayPeriodPM
	}

	ctx := r.context(f)
	width := f.Width()
	if f.Symbol == SymbolNoonMidnight && v.Minute() == 0 && v.Second() == 0 {
		special := -1
		switch v.Hour() {
		case 12:
			special = DayPeriodNoon
		case 0:
			special = DayPeriodMidnight
		}
		if special >= 0 {
			if name, ok := r.time.DayPeriods.Lookup(ctx, width, special); ok {
				return name, nil
			}
		}
	}

	if name, ok := r.time.DayPeriods.Lookup(ctx, width, index); ok {
		return name, nil
	}
	return "", missingSymbol(KindDayPeriod, ctx, width, index)
}
