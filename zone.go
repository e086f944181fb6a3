package datetime

import (
	"fmt"
	"strings"
	"unicode"
)

func (r *renderer) zone(f Field, v DateTimeInput) (string, error) {
	zoned, ok := v.(ZonedInput)
	if !ok {
		return "", fmt.Errorf("%w: time zone for %q", ErrMissingInputField, f.String())
	}
	offset, ok := zoned.ZoneOffset()
	if !ok {
		return "", fmt.Errorf("%w: time zone for %q", ErrMissingInputField, f.String())
	}

	switch f.Symbol {
	case SymbolZoneSpecific, SymbolZoneGeneric:
		if f.Length < FieldLengthWide {
			if name := zoned.ZoneName(); isZoneAbbreviation(name) {
				return name, nil
			}
			return r.gmt(offset, false)
		}
		return r.gmt(offset, true)

	case SymbolZoneGMT:
		return r.gmt(offset, f.Length == FieldLengthWide)

	case SymbolZoneID:
		if name := zoned.ZoneName(); name != "" && f.Length == FieldLengthTwoDigit {
			return name, nil
		}
		return r.gmt(offset, true)

	case SymbolZoneRFC:
		switch f.Length {
		case FieldLengthWide:
			return r.gmt(offset, true)
		case FieldLengthNarrow:
			return isoOffset(offset, isoExtended, true), nil
		default:
			return isoOffset(offset, isoBasic, false), nil
		}

	case SymbolZoneISOWithZ, SymbolZoneISO:
		utcZ := f.Symbol == SymbolZoneISOWithZ
		switch f.Length {
		case FieldLengthOne:
			return isoOffset(offset, isoHoursOptionalMinutes, utcZ), nil
		case FieldLengthTwoDigit:
			return isoOffset(offset, isoBasic, utcZ), nil
		case FieldLengthAbbreviated:
			return isoOffset(offset, isoExtended, utcZ), nil
		case FieldLengthWide:
			return isoOffset(offset, isoBasicOptionalSeconds, utcZ), nil
		default:
			return isoOffset(offset, isoExtendedOptionalSeconds, utcZ), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedField, rune(f.Symbol))
}

// isZoneAbbreviation accepts names like "UTC", "CET" or "PST"; time.Time
// reports numeric names ("+03") for zones without an abbreviation.
func isZoneAbbreviation(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// gmt renders the localized GMT format: "GMT", "GMT+3" / "GMT+03:00".
func (r *renderer) gmt(offset int, long bool) (string, error) {
	if r.time == nil || r.time.GMTFormat == "" {
		return "", fmt.Errorf("%w: gmt format", ErrMissingSymbol)
	}
	if offset == 0 {
		if r.time.GMTZeroFormat == "" {
			return "", fmt.Errorf("%w: gmt zero format", ErrMissingSymbol)
		}
		return r.time.GMTZeroFormat, nil
	}

	sign, hours, minutes, _ := splitOffset(offset)
	var b strings.Builder
	b.WriteByte(sign)
	if long {
		b.WriteString(r.number(hours, FieldLengthTwoDigit))
		b.WriteByte(':')
		b.WriteString(r.number(minutes, FieldLengthTwoDigit))
	} else {
		b.WriteString(r.number(hours, FieldLengthOne))
		if minutes != 0 {
			b.WriteByte(':')
			b.WriteString(r.number(minutes, FieldLengthTwoDigit))
		}
	}
	return strings.Replace(r.time.GMTFormat, "{0}", b.String(), 1), nil
}

type isoStyle uint8

const (
	isoHoursOptionalMinutes isoStyle = iota // +05, +0530
	isoBasic                                // +0500
	isoExtended                             // +05:00
	isoBasicOptionalSeconds                 // +0500, +050030
	isoExtendedOptionalSeconds              // +05:00, +05:00:30
)

// isoOffset renders ISO 8601 offsets with ASCII digits.
func isoOffset(offset int, style isoStyle, utcZ bool) string {
	if offset == 0 && utcZ {
		return "Z"
	}

	sign, hours, minutes, seconds := splitOffset(offset)
	sep := ""
	if style == isoExtended || style == isoExtendedOptionalSeconds {
		sep = ":"
	}

	out := fmt.Sprintf("%c%02d", sign, hours)
	if style == isoHoursOptionalMinutes {
		if minutes != 0 {
			out += fmt.Sprintf("%02d", minutes)
		}
		return out
	}
	out += fmt.Sprintf("%s%02d", sep, minutes)
	if seconds != 0 && (style == isoBasicOptionalSeconds || style == isoExtendedOptionalSeconds) {
		out += fmt.Sprintf("%s%02d", sep, seconds)
	}
	return out
}

func splitOffset(offset int) (sign byte, hours, minutes, seconds int) {
	sign = '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return sign, offset / 3600, offset / 60 % 60, offset % 60
}
