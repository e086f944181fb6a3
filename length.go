package datetime

import (
	"fmt"
	"strings"
)

// Length is a predefined formatting style.
type Length uint8

const (
	LengthFull Length = iota + 1
	LengthLong
	LengthMedium
	LengthShort
)

var lengthNames = map[Length]string{
	LengthFull:   "full",
	LengthLong:   "long",
	LengthMedium: "medium",
	LengthShort:  "short",
}

func (l Length) String() string {
	if name, ok := lengthNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Length(%d)", uint8(l))
}

// ParseLength accepts full, long, medium and short in any case.
func ParseLength(value string) (Length, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for length, name := range lengthNames {
		if name == value {
			return length, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown length %q", ErrInvalidOptions, value)
}

func (l Length) MarshalText() ([]byte, error) {
	if _, ok := lengthNames[l]; !ok {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidOptions, uint8(l))
	}
	return []byte(l.String()), nil
}

func (l *Length) UnmarshalText(text []byte) error {
	parsed, err := ParseLength(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// LengthBag requests predefined date and/or time styles. A zero field omits that half.
type LengthBag struct {
	Date Length
	Time Length
}

func (LengthBag) isOptions() {}

// Options is implemented by LengthBag and Bag.
type Options interface {
	isOptions()
}

// LengthPatterns holds one pattern per length style.
type LengthPatterns struct {
	Full   Pattern `json:"full,omitempty" yaml:"full,omitempty"`
	Long   Pattern `json:"long,omitempty" yaml:"long,omitempty"`
	Medium Pattern `json:"medium,omitempty" yaml:"medium,omitempty"`
	Short  Pattern `json:"short,omitempty" yaml:"short,omitempty"`
}

func (l LengthPatterns) IsZero() bool {
	return l.Full.IsZero() && l.Long.IsZero() && l.Medium.IsZero() && l.Short.IsZero()
}

// all reports whether every non-empty pattern satisfies pred.
func (l LengthPatterns) all(pred func(Pattern) bool) bool {
	for _, p := range []Pattern{l.Full, l.Long, l.Medium, l.Short} {
		if !p.IsZero() && !pred(p) {
			return false
		}
	}
	return true
}

// Get returns the pattern for length.
func (l LengthPatterns) Get(length Length) (Pattern, error) {
	var p Pattern
	switch length {
	case LengthFull:
		p = l.Full
	case LengthLong:
		p = l.Long
	case LengthMedium:
		p = l.Medium
	case LengthShort:
		p = l.Short
	default:
		return Pattern{}, fmt.Errorf("%w: length %d", ErrInvalidOptions, uint8(length))
	}
	if p.IsZero() {
		return Pattern{}, fmt.Errorf("%w: no %s pattern", ErrMissingData, length)
	}
	return p, nil
}

// HourCycle selects the hour numbering.
type HourCycle uint8

const (
	H11 HourCycle = iota + 1 // 0-11
	H12                      // 1-12
	H23                      // 0-23
	H24                      // 1-24
)

var hourCycleNames = map[HourCycle]string{H11: "h11", H12: "h12", H23: "h23", H24: "h24"}

func (h HourCycle) String() string {
	if name, ok := hourCycleNames[h]; ok {
		return name
	}
	return fmt.Sprintf("HourCycle(%d)", uint8(h))
}

// ParseHourCycle accepts the BCP-47 "hc" values h11, h12, h23 and h24.
func ParseHourCycle(value string) (HourCycle, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for cycle, name := range hourCycleNames {
		if name == value {
			return cycle, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown hour cycle %q", ErrInvalidOptions, value)
}

func (h HourCycle) MarshalText() ([]byte, error) {
	if _, ok := hourCycleNames[h]; !ok {
		return nil, fmt.Errorf("%w: hour cycle %d", ErrInvalidOptions, uint8(h))
	}
	return []byte(h.String()), nil
}

func (h *HourCycle) UnmarshalText(text []byte) error {
	parsed, err := ParseHourCycle(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func (h HourCycle) symbol() FieldSymbol {
	switch h {
	case H11:
		return SymbolHour11
	case H12:
		return SymbolHour12
	case H24:
		return SymbolHour24
	default:
		return SymbolHour23
	}
}

func (h HourCycle) twelveHour() bool {
	return h == H11 || h == H12
}

func hourCycleForSymbol(symbol FieldSymbol) HourCycle {
	switch symbol {
	case SymbolHour11:
		return H11
	case SymbolHour12:
		return H12
	case SymbolHour24:
		return H24
	default:
		return H23
	}
}

// TimeLengths holds the time patterns for both hour-cycle families.
type TimeLengths struct {
	PreferredHourCycle HourCycle      `json:"preferred_hour_cycle,omitempty" yaml:"preferred_hour_cycle,omitempty"`
	H11H12             LengthPatterns `json:"h11_h12" yaml:"h11_h12"`
	H23H24             LengthPatterns `json:"h23_h24" yaml:"h23_h24"`
}

func (t TimeLengths) IsZero() bool {
	return t.H11H12.IsZero() && t.H23H24.IsZero()
}

// Preferred returns the locale preferred hour cycle, H23 when the data omits it.
func (t TimeLengths) Preferred() HourCycle {
	if t.PreferredHourCycle != 0 {
		return t.PreferredHourCycle
	}
	return H23
}

// Resolve picks the table for the effective hour cycle and rewrites hour
// fields when pref names the other cycle of the same family.
func (t TimeLengths) Resolve(length Length, pref HourCycle) (Pattern, error) {
	cycle := pref
	if cycle == 0 {
		cycle = t.Preferred()
	}

	table := t.H23H24
	if cycle.twelveHour() {
		table = t.H11H12
	}
	p, err := table.Get(length)
	if err != nil {
		return Pattern{}, fmt.Errorf("time %s (%s): %w", length, cycle, err)
	}
	if pref == 0 {
		return p, nil
	}
	return withHourCycle(p, pref), nil
}

func withHourCycle(p Pattern, cycle HourCycle) Pattern {
	symbol := cycle.symbol()
	return p.mapFields(func(f Field) Field {
		if f.Kind() == KindHour {
			f.Symbol = symbol
		}
		return f
	})
}
