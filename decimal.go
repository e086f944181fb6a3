package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecimalFormatter renders integers for numeric fields.
type DecimalFormatter interface {
	// FormatInteger renders value left-padded with zeros to minDigits.
	FormatInteger(value int64, minDigits int) string
}

// DecimalFormatterFunc adapts a function to DecimalFormatter.
type DecimalFormatterFunc func(value int64, minDigits int) string

func (f DecimalFormatterFunc) FormatInteger(value int64, minDigits int) string {
	return f(value, minDigits)
}

// NumberingSymbols describes a locale's default numbering system.
type NumberingSymbols struct {
	System string `json:"system,omitempty" yaml:"system,omitempty"`
	Digits string `json:"digits,omitempty" yaml:"digits,omitempty"`
}

func (n NumberingSymbols) IsZero() bool {
	return n.System == "" && n.Digits == ""
}

// Validate checks that Digits is empty or holds exactly ten characters.
func (n NumberingSymbols) Validate() error {
	if n.Digits == "" {
		return nil
	}
	if count := utf8.RuneCountInString(n.Digits); count != 10 {
		return fmt.Errorf("%w: numbering system %q has %d digits", ErrMissingData, n.System, count)
	}
	return nil
}

type digitFormatter struct {
	digits []rune
}

const latinDigits = "0123456789"

// NewDigitFormatter builds the default decimal formatter from a locale's
// digits. Empty digits mean Latin.
func NewDigitFormatter(symbols NumberingSymbols) (DecimalFormatter, error) {
	if err := symbols.Validate(); err != nil {
		return nil, err
	}
	if symbols.Digits == "" || symbols.Digits == latinDigits {
		return digitFormatter{}, nil
	}
	return digitFormatter{digits: []rune(symbols.Digits)}, nil
}

func (f digitFormatter) FormatInteger(value int64, minDigits int) string {
	negative := value < 0
	magnitude := uint64(value)
	if negative {
		magnitude = uint64(-(value + 1)) + 1
	}

	text := strconv.FormatUint(magnitude, 10)
	if pad := minDigits - len(text); pad > 0 {
		text = strings.Repeat("0", pad) + text
	}
	if f.digits != nil {
		text = strings.Map(func(r rune) rune {
			return f.digits[r-'0']
		}, text)
	}
	if negative {
		return "-" + text
	}
	return text
}
