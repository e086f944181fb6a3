package datetime

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestDigitFormatter(t *testing.T) {
	latin, err := NewDigitFormatter(NumberingSymbols{System: "latn", Digits: "0123456789"})
	if err != nil {
		t.Fatalf("NewDigitFormatter(latn): %v", err)
	}
	arab, err := NewDigitFormatter(NumberingSymbols{System: "arab", Digits: "٠١٢٣٤٥٦٧٨٩"})
	if err != nil {
		t.Fatalf("NewDigitFormatter(arab): %v", err)
	}

	cases := []struct {
		formatter DecimalFormatter
		value     int64
		min       int
		want      string
	}{
		{formatter: latin, value: 5, min: 2, want: "05"},
		{formatter: latin, value: 2020, min: 2, want: "2020"},
		{formatter: latin, value: 0, min: 0, want: "0"},
		{formatter: latin, value: -7, min: 3, want: "-007"},
		{formatter: arab, value: 2020, min: 1, want: "٢٠٢٠"},
		{formatter: arab, value: 9, min: 2, want: "٠٩"},
	}

	for _, tc := range cases {
		if got := tc.formatter.FormatInteger(tc.value, tc.min); got != tc.want {
			t.Fatalf("FormatInteger(%d, %d) = %q, want %q", tc.value, tc.min, got, tc.want)
		}
	}
}

func TestDigitFormatterRejectsBadDigits(t *testing.T) {
	if _, err := NewDigitFormatter(NumberingSymbols{System: "odd", Digits: "012"}); !errors.Is(err, ErrMissingData) {
		t.Fatalf("error = %v, want ErrMissingData", err)
	}
}

func TestXTextDecimalFormatter(t *testing.T) {
	formatter := NewXTextDecimalFormatter(language.German)

	cases := []struct {
		value int64
		min   int
		want  string
	}{
		{value: 7, min: 2, want: "07"},
		{value: 2020, min: 1, want: "2020"},
		{value: 12345, min: 0, want: "12345"},
	}
	for _, tc := range cases {
		if got := formatter.FormatInteger(tc.value, tc.min); got != tc.want {
			t.Fatalf("FormatInteger(%d, %d) = %q, want %q", tc.value, tc.min, got, tc.want)
		}
	}
}
