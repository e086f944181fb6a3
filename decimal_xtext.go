package datetime

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type xtextDecimalFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewXTextDecimalFormatter renders numeric fields with golang.org/x/text,
// honouring the numbering system x/text resolves for tag (including -u-nu-).
func NewXTextDecimalFormatter(tag language.Tag) DecimalFormatter {
	return &xtextDecimalFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

func (f *xtextDecimalFormatter) FormatInteger(value int64, minDigits int) string {
	opts := []number.Option{number.NoSeparator()}
	if minDigits > 1 {
		opts = append(opts, number.MinIntegerDigits(minDigits))
	}
	return f.printer.Sprintf("%v", number.Decimal(value, opts...))
}
