package datetime

import (
	"fmt"
	"strings"
)

// FieldSymbol is a CLDR pattern letter.
type FieldSymbol byte

const (
	SymbolEra               FieldSymbol = 'G'
	SymbolYear              FieldSymbol = 'y'
	SymbolWeekYear          FieldSymbol = 'Y'
	SymbolQuarter           FieldSymbol = 'Q'
	SymbolStandAloneQuarter FieldSymbol = 'q'
	SymbolMonth             FieldSymbol = 'M'
	SymbolStandAloneMonth   FieldSymbol = 'L'
	SymbolWeekOfYear        FieldSymbol = 'w'
	SymbolWeekOfMonth       FieldSymbol = 'W'
	SymbolDay               FieldSymbol = 'd'
	SymbolDayOfYear         FieldSymbol = 'D'
	SymbolDayOfWeekInMonth  FieldSymbol = 'F'
	SymbolWeekday           FieldSymbol = 'E'
	SymbolLocalWeekday      FieldSymbol = 'e'
	SymbolStandAloneWeekday FieldSymbol = 'c'
	SymbolAmPm              FieldSymbol = 'a'
	SymbolNoonMidnight      FieldSymbol = 'b'
	SymbolHour12            FieldSymbol = 'h' // 1-12
	SymbolHour23            FieldSymbol = 'H' // 0-23
	SymbolHour11            FieldSymbol = 'K' // 0-11
	SymbolHour24            FieldSymbol = 'k' // 1-24
	SymbolMinute            FieldSymbol = 'm'
	SymbolSecond            FieldSymbol = 's'
	SymbolZoneSpecific      FieldSymbol = 'z'
	SymbolZoneGMT           FieldSymbol = 'O'
	SymbolZoneGeneric       FieldSymbol = 'v'
	SymbolZoneID            FieldSymbol = 'V'
	SymbolZoneRFC           FieldSymbol = 'Z'
	SymbolZoneISOWithZ      FieldSymbol = 'X'
	SymbolZoneISO           FieldSymbol = 'x'
)

// FieldKind groups symbols that describe the same calendar quantity. The
// declaration order is the canonical, locale independent field order.
type FieldKind uint8

const (
	KindEra FieldKind = iota
	KindYear
	KindQuarter
	KindMonth
	KindWeek
	KindDay
	KindWeekday
	KindDayPeriod
	KindHour
	KindMinute
	KindSecond
	KindZone

	fieldKindCount
)

var fieldKindNames = [fieldKindCount]string{
	"era", "year", "quarter", "month", "week", "day",
	"weekday", "day_period", "hour", "minute", "second", "zone",
}

func (k FieldKind) String() string {
	if k < fieldKindCount {
		return fieldKindNames[k]
	}
	return fmt.Sprintf("FieldKind(%d)", uint8(k))
}

func (k FieldKind) MarshalText() ([]byte, error) {
	if k >= fieldKindCount {
		return nil, fmt.Errorf("%w: field kind %d", ErrInvalidOptions, uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *FieldKind) UnmarshalText(text []byte) error {
	value := strings.ToLower(strings.TrimSpace(string(text)))
	value = strings.ReplaceAll(value, "-", "_")
	for i, name := range fieldKindNames {
		if name == value {
			*k = FieldKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown field kind %q", ErrInvalidOptions, string(text))
}

func (k FieldKind) isDate() bool {
	return k <= KindWeekday
}

// FieldLength is the repeat count of a pattern letter.
type FieldLength uint8

const (
	FieldLengthOne         FieldLength = 1
	FieldLengthTwoDigit    FieldLength = 2
	FieldLengthAbbreviated FieldLength = 3
	FieldLengthWide        FieldLength = 4
	FieldLengthNarrow      FieldLength = 5
	FieldLengthShort       FieldLength = 6
)

type symbolInfo struct {
	kind      FieldKind
	maxLength FieldLength
	// textFrom is the first length rendered as text; 0 means never text,
	// 1 means always text.
	textFrom FieldLength
}

var symbolTable = map[FieldSymbol]symbolInfo{
	SymbolEra:               {kind: KindEra, maxLength: 5, textFrom: 1},
	SymbolYear:              {kind: KindYear, maxLength: 9},
	SymbolWeekYear:          {kind: KindYear, maxLength: 9},
	SymbolQuarter:           {kind: KindQuarter, maxLength: 5, textFrom: 3},
	SymbolStandAloneQuarter: {kind: KindQuarter, maxLength: 5, textFrom: 3},
	SymbolMonth:             {kind: KindMonth, maxLength: 5, textFrom: 3},
	SymbolStandAloneMonth:   {kind: KindMonth, maxLength: 5, textFrom: 3},
	SymbolWeekOfYear:        {kind: KindWeek, maxLength: 2},
	SymbolWeekOfMonth:       {kind: KindWeek, maxLength: 1},
	SymbolDay:               {kind: KindDay, maxLength: 2},
	SymbolDayOfYear:         {kind: KindDay, maxLength: 3},
	SymbolDayOfWeekInMonth:  {kind: KindDay, maxLength: 1},
	SymbolWeekday:           {kind: KindWeekday, maxLength: 6, textFrom: 1},
	SymbolLocalWeekday:      {kind: KindWeekday, maxLength: 6, textFrom: 3},
	SymbolStandAloneWeekday: {kind: KindWeekday, maxLength: 6, textFrom: 3},
	SymbolAmPm:              {kind: KindDayPeriod, maxLength: 5, textFrom: 1},
	SymbolNoonMidnight:      {kind: KindDayPeriod, maxLength: 5, textFrom: 1},
	SymbolHour12:            {kind: KindHour, maxLength: 2},
	SymbolHour23:            {kind: KindHour, maxLength: 2},
	SymbolHour11:            {kind: KindHour, maxLength: 2},
	SymbolHour24:            {kind: KindHour, maxLength: 2},
	SymbolMinute:            {kind: KindMinute, maxLength: 2},
	SymbolSecond:            {kind: KindSecond, maxLength: 2},
	SymbolZoneSpecific:      {kind: KindZone, maxLength: 4, textFrom: 1},
	SymbolZoneGMT:           {kind: KindZone, maxLength: 4, textFrom: 1},
	SymbolZoneGeneric:       {kind: KindZone, maxLength: 4, textFrom: 1},
	SymbolZoneID:            {kind: KindZone, maxLength: 4, textFrom: 1},
	SymbolZoneRFC:           {kind: KindZone, maxLength: 5, textFrom: 1},
	SymbolZoneISOWithZ:      {kind: KindZone, maxLength: 5, textFrom: 1},
	SymbolZoneISO:           {kind: KindZone, maxLength: 5, textFrom: 1},
}

// Field is one pattern letter with its repeat count.
type Field struct {
	Symbol FieldSymbol
	Length FieldLength
}

// NewField validates symbol and length.
func NewField(symbol FieldSymbol, length int) (Field, error) {
	info, ok := symbolTable[symbol]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnsupportedField, rune(symbol))
	}
	if length < 1 || length > int(info.maxLength) {
		return Field{}, fmt.Errorf("%w: field %q has length %d", ErrInvalidPattern, rune(symbol), length)
	}
	return Field{Symbol: symbol, Length: FieldLength(length)}, nil
}

func isFieldLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Kind returns the field's kind; symbols outside the table sort after KindZone.
func (f Field) Kind() FieldKind {
	if info, ok := symbolTable[f.Symbol]; ok {
		return info.kind
	}
	return fieldKindCount
}

// IsText reports whether the field renders as a name rather than a number.
func (f Field) IsText() bool {
	info := symbolTable[f.Symbol]
	return info.textFrom != 0 && f.Length >= info.textFrom
}

// Width maps a textual field length to the name width used for lookups.
func (f Field) Width() NameWidth {
	switch f.Length {
	case FieldLengthWide:
		return NameWide
	case FieldLengthNarrow:
		return NameNarrow
	case FieldLengthShort:
		return NameShort
	default:
		return NameAbbreviated
	}
}

func (f Field) String() string {
	return strings.Repeat(string(rune(f.Symbol)), int(f.Length))
}
