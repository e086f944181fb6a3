package datetime

import (
	"fmt"
	"strings"
)

// Text selects a textual width for era and weekday components.
type Text uint8

const (
	TextLong Text = iota + 1
	TextShort
	TextNarrow
)

// Year selects the year representation.
type Year uint8

const (
	YearNumeric Year = iota + 1
	YearTwoDigit
	YearNumericWeekOf
	YearTwoDigitWeekOf
)

// Month selects the month representation.
type Month uint8

const (
	MonthNumeric Month = iota + 1
	MonthTwoDigit
	MonthLong
	MonthShort
	MonthNarrow
)

// Week selects a week number.
type Week uint8

const (
	WeekOfMonth Week = iota + 1
	WeekNumericOfYear
	WeekTwoDigitOfYear
)

// Day selects the day representation.
type Day uint8

const (
	DayNumeric Day = iota + 1
	DayTwoDigit
	DayOfWeekInMonth
	DayOfYear
)

// Numeric selects hour, minute and second padding.
type Numeric uint8

const (
	NumericDigits Numeric = iota + 1
	NumericTwoDigit
)

// TimeZone selects a zone representation.
type TimeZone uint8

const (
	TimeZoneShortSpecific TimeZone = iota + 1
	TimeZoneLongSpecific
	TimeZoneShortGMT
	TimeZoneLongGMT
)

// Preferences carries user preferences that alter field selection.
type Preferences struct {
	HourCycle HourCycle
}

// Bag requests a set of components. Zero values mean "not requested".
type Bag struct {
	Era      Text
	Year     Year
	Month    Month
	Week     Week
	Day      Day
	Weekday  Text
	Hour     Numeric
	Minute   Numeric
	Second   Numeric
	TimeZone TimeZone

	Preferences Preferences
}

func (Bag) isOptions() {}

func (b Bag) IsZero() bool {
	return !b.HasDate() && !b.HasTime()
}

func (b Bag) HasDate() bool {
	return b.Era != 0 || b.Year != 0 || b.Month != 0 || b.Week != 0 || b.Day != 0 || b.Weekday != 0
}

func (b Bag) HasTime() bool {
	return b.Hour != 0 || b.Minute != 0 || b.Second != 0 || b.TimeZone != 0
}

// DateBag returns only the date components.
func (b Bag) DateBag() Bag {
	return Bag{Era: b.Era, Year: b.Year, Month: b.Month, Week: b.Week, Day: b.Day, Weekday: b.Weekday}
}

// TimeBag returns only the time components and preferences.
func (b Bag) TimeBag() Bag {
	return Bag{Hour: b.Hour, Minute: b.Minute, Second: b.Second, TimeZone: b.TimeZone, Preferences: b.Preferences}
}

func (b Bag) merge(other Bag) Bag {
	out := b
	if other.Era != 0 {
		out.Era = other.Era
	}
	if other.Year != 0 {
		out.Year = other.Year
	}
	if other.Month != 0 {
		out.Month = other.Month
	}
	if other.Week != 0 {
		out.Week = other.Week
	}
	if other.Day != 0 {
		out.Day = other.Day
	}
	if other.Weekday != 0 {
		out.Weekday = other.Weekday
	}
	if other.Hour != 0 {
		out.Hour = other.Hour
	}
	if other.Minute != 0 {
		out.Minute = other.Minute
	}
	if other.Second != 0 {
		out.Second = other.Second
	}
	if other.TimeZone != 0 {
		out.TimeZone = other.TimeZone
	}
	if other.Preferences.HourCycle != 0 {
		out.Preferences.HourCycle = other.Preferences.HourCycle
	}
	return out
}

// glueLength picks the glue style used when date and time halves are matched apart.
func (b Bag) glueLength() Length {
	switch {
	case b.Month == MonthLong && b.Weekday != 0:
		return LengthFull
	case b.Month == MonthLong:
		return LengthLong
	case b.Month == MonthShort || b.Month == MonthNarrow:
		return LengthMedium
	default:
		return LengthShort
	}
}

// Skeleton builds the request skeleton. The hour symbol follows the bag's
// hour-cycle preference, then preferred.
func (b Bag) Skeleton(preferred HourCycle) (Skeleton, error) {
	if b.IsZero() {
		return Skeleton{}, fmt.Errorf("%w: empty components bag", ErrInvalidOptions)
	}

	var fields []Field
	add := func(symbol FieldSymbol, length FieldLength) {
		fields = append(fields, Field{Symbol: symbol, Length: length})
	}

	switch b.Era {
	case TextLong:
		add(SymbolEra, FieldLengthWide)
	case TextShort:
		add(SymbolEra, FieldLengthOne)
	case TextNarrow:
		add(SymbolEra, FieldLengthNarrow)
	}

	switch b.Year {
	case YearNumeric:
		add(SymbolYear, FieldLengthOne)
	case YearTwoDigit:
		add(SymbolYear, FieldLengthTwoDigit)
	case YearNumericWeekOf:
		add(SymbolWeekYear, FieldLengthOne)
	case YearTwoDigitWeekOf:
		add(SymbolWeekYear, FieldLengthTwoDigit)
	}

	switch b.Month {
	case MonthNumeric:
		add(SymbolMonth, FieldLengthOne)
	case MonthTwoDigit:
		add(SymbolMonth, FieldLengthTwoDigit)
	case MonthShort:
		add(SymbolMonth, FieldLengthAbbreviated)
	case MonthLong:
		add(SymbolMonth, FieldLengthWide)
	case MonthNarrow:
		add(SymbolMonth, FieldLengthNarrow)
	}

	switch b.Week {
	case WeekOfMonth:
		add(SymbolWeekOfMonth, FieldLengthOne)
	case WeekNumericOfYear:
		add(SymbolWeekOfYear, FieldLengthOne)
	case WeekTwoDigitOfYear:
		add(SymbolWeekOfYear, FieldLengthTwoDigit)
	}

	switch b.Day {
	case DayNumeric:
		add(SymbolDay, FieldLengthOne)
	case DayTwoDigit:
		add(SymbolDay, FieldLengthTwoDigit)
	case DayOfWeekInMonth:
		add(SymbolDayOfWeekInMonth, FieldLengthOne)
	case DayOfYear:
		add(SymbolDayOfYear, FieldLengthOne)
	}

	switch b.Weekday {
	case TextShort:
		add(SymbolWeekday, FieldLengthAbbreviated)
	case TextLong:
		add(SymbolWeekday, FieldLengthWide)
	case TextNarrow:
		add(SymbolWeekday, FieldLengthNarrow)
	}

	if b.Hour != 0 {
		cycle := b.Preferences.HourCycle
		if cycle == 0 {
			cycle = preferred
		}
		add(cycle.symbol(), numericLength(b.Hour))
	}
	if b.Minute != 0 {
		add(SymbolMinute, numericLength(b.Minute))
	}
	if b.Second != 0 {
		add(SymbolSecond, numericLength(b.Second))
	}

	switch b.TimeZone {
	case TimeZoneShortSpecific:
		add(SymbolZoneSpecific, FieldLengthOne)
	case TimeZoneLongSpecific:
		add(SymbolZoneSpecific, FieldLengthWide)
	case TimeZoneShortGMT:
		add(SymbolZoneGMT, FieldLengthOne)
	case TimeZoneLongGMT:
		add(SymbolZoneGMT, FieldLengthWide)
	}

	return NewSkeleton(fields...)
}

func numericLength(n Numeric) FieldLength {
	if n == NumericTwoDigit {
		return FieldLengthTwoDigit
	}
	return FieldLengthOne
}

func numericFromLength(length FieldLength) Numeric {
	if length >= FieldLengthTwoDigit {
		return NumericTwoDigit
	}
	return NumericDigits
}

func textFromWidth(length FieldLength) Text {
	switch length {
	case FieldLengthWide:
		return TextLong
	case FieldLengthNarrow:
		return TextNarrow
	default:
		return TextShort
	}
}

// BagFromPattern derives the components a pattern actually renders.
// Fields a bag cannot express (quarters, ISO zone offsets) are omitted.
func BagFromPattern(p Pattern) Bag {
	return bagFromFields(p.Fields())
}

func bagFromFields(fields []Field) Bag {
	var b Bag
	for _, f := range fields {
		switch f.Symbol {
		case SymbolEra:
			b.Era = textFromWidth(f.Length)
		case SymbolYear:
			b.Year = YearNumeric
			if f.Length == FieldLengthTwoDigit {
				b.Year = YearTwoDigit
			}
		case SymbolWeekYear:
			b.Year = YearNumericWeekOf
			if f.Length == FieldLengthTwoDigit {
				b.Year = YearTwoDigitWeekOf
			}
		case SymbolMonth, SymbolStandAloneMonth:
			switch f.Length {
			case FieldLengthOne:
				b.Month = MonthNumeric
			case FieldLengthTwoDigit:
				b.Month = MonthTwoDigit
			case FieldLengthAbbreviated:
				b.Month = MonthShort
			case FieldLengthWide:
				b.Month = MonthLong
			default:
				b.Month = MonthNarrow
			}
		case SymbolWeekOfYear:
			b.Week = WeekNumericOfYear
			if f.Length == FieldLengthTwoDigit {
				b.Week = WeekTwoDigitOfYear
			}
		case SymbolWeekOfMonth:
			b.Week = WeekOfMonth
		case SymbolDay:
			b.Day = DayNumeric
			if f.Length == FieldLengthTwoDigit {
				b.Day = DayTwoDigit
			}
		case SymbolDayOfWeekInMonth:
			b.Day = DayOfWeekInMonth
		case SymbolDayOfYear:
			b.Day = DayOfYear
		case SymbolWeekday, SymbolLocalWeekday, SymbolStandAloneWeekday:
			if f.IsText() {
				b.Weekday = textFromWidth(f.Length)
			}
		case SymbolHour12, SymbolHour23, SymbolHour11, SymbolHour24:
			b.Hour = numericFromLength(f.Length)
			b.Preferences.HourCycle = hourCycleForSymbol(f.Symbol)
		case SymbolMinute:
			b.Minute = numericFromLength(f.Length)
		case SymbolSecond:
			b.Second = numericFromLength(f.Length)
		case SymbolZoneSpecific:
			b.TimeZone = TimeZoneShortSpecific
			if f.Length == FieldLengthWide {
				b.TimeZone = TimeZoneLongSpecific
			}
		case SymbolZoneGMT:
			b.TimeZone = TimeZoneShortGMT
			if f.Length == FieldLengthWide {
				b.TimeZone = TimeZoneLongGMT
			}
		}
	}
	return b
}

// ParseComponents reads a skeleton-style request such as "yMMMd" or "jm"
// into a bag. The letter j requests an hour in the locale's preferred cycle.
func ParseComponents(text string) (Bag, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Bag{}, fmt.Errorf("%w: empty components", ErrInvalidOptions)
	}

	var fields []Field
	preferredHour := Numeric(0)
	runes := []rune(text)
	for i := 0; i < len(runes); {
		r := runes[i]
		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		if r == 'j' {
			preferredHour = numericFromLength(FieldLength(min(j-i, 2)))
			i = j
			continue
		}
		if !isFieldLetter(r) {
			return Bag{}, fmt.Errorf("%w: components %q contain %q", ErrInvalidOptions, text, r)
		}
		field, err := NewField(FieldSymbol(r), j-i)
		if err != nil {
			return Bag{}, fmt.Errorf("parse components %q: %w", text, err)
		}
		fields = append(fields, field)
		i = j
	}

	bag := bagFromFields(fields)
	if preferredHour != 0 {
		bag.Hour = preferredHour
	}
	if bag.IsZero() {
		return Bag{}, fmt.Errorf("%w: components %q select nothing", ErrInvalidOptions, text)
	}
	return bag, nil
}
