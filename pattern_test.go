package datetime

import (
	"errors"
	"testing"
)

func TestParsePatternItems(t *testing.T) {
	p, err := ParsePattern("EEEE, MMMM d, y")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}

	want := []PatternItem{
		FieldItem(Field{Symbol: SymbolWeekday, Length: FieldLengthWide}),
		LiteralItem(", "),
		FieldItem(Field{Symbol: SymbolMonth, Length: FieldLengthWide}),
		LiteralItem(" "),
		FieldItem(Field{Symbol: SymbolDay, Length: FieldLengthOne}),
		LiteralItem(", "),
		FieldItem(Field{Symbol: SymbolYear, Length: FieldLengthOne}),
	}

	items := p.Items()
	if len(items) != len(want) {
		t.Fatalf("items length = %d, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestParsePatternQuoting(t *testing.T) {
	cases := []struct {
		pattern  string
		literals []string
		fields   int
	}{
		{pattern: "d 'de' MMMM", literals: []string{" de "}, fields: 2},
		{pattern: "h 'o''clock' a", literals: []string{" o'clock "}, fields: 2},
		{pattern: "HH''mm", literals: []string{"'"}, fields: 2},
		{pattern: "'week' w", literals: []string{"week "}, fields: 1},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			p, err := ParsePattern(tc.pattern)
			if err != nil {
				t.Fatalf("ParsePattern: %v", err)
			}

			var literals []string
			for _, item := range p.Items() {
				if !item.IsField() {
					literals = append(literals, item.Literal)
				}
			}
			if len(literals) != len(tc.literals) {
				t.Fatalf("literals = %q, want %q", literals, tc.literals)
			}
			for i := range literals {
				if literals[i] != tc.literals[i] {
					t.Fatalf("literal[%d] = %q, want %q", i, literals[i], tc.literals[i])
				}
			}
			if got := len(p.Fields()); got != tc.fields {
				t.Fatalf("fields = %d, want %d", got, tc.fields)
			}
		})
	}
}

func TestParsePatternErrors(t *testing.T) {
	cases := []struct {
		pattern string
		want    error
	}{
		{pattern: "d 'unterminated", want: ErrInvalidPattern},
		{pattern: "ddd", want: ErrInvalidPattern},
		{pattern: "yyyy-MM-dd'T'HH:mm:ss.SSS", want: ErrUnsupportedField},
		{pattern: "A", want: ErrUnsupportedField},
	}

	for _, tc := range cases {
		if _, err := ParsePattern(tc.pattern); !errors.Is(err, tc.want) {
			t.Fatalf("ParsePattern(%q) error = %v, want %v", tc.pattern, err, tc.want)
		}
	}
}

func TestPatternStringRoundTrip(t *testing.T) {
	for _, text := range []string{
		"EEEE, MMMM d, y",
		"d 'de' MMMM 'de' y",
		"h:mm:ss a zzzz",
		"'week' W 'of' MMMM",
		"HH''mm",
	} {
		p := MustParsePattern(text)
		if got := p.String(); got != text {
			t.Fatalf("String() = %q, want %q", got, text)
		}

		again, err := ParsePattern(p.String())
		if err != nil {
			t.Fatalf("reparse %q: %v", p.String(), err)
		}
		if again.String() != p.String() {
			t.Fatalf("reparse changed pattern: %q -> %q", p.String(), again.String())
		}
	}
}

func TestNewPatternMergesLiterals(t *testing.T) {
	p := NewPattern(
		LiteralItem("a"),
		LiteralItem(""),
		LiteralItem("b"),
		FieldItem(Field{Symbol: SymbolDay, Length: FieldLengthTwoDigit}),
		LiteralItem("c"),
	)

	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}
	if got := p.Items()[0].Literal; got != "ab" {
		t.Fatalf("merged literal = %q", got)
	}
	if got := p.String(); got != "'ab'dd'c'" {
		t.Fatalf("String() = %q", got)
	}
}

func TestNewFieldValidation(t *testing.T) {
	if _, err := NewField(SymbolMonth, 6); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("NewField(M, 6) error = %v", err)
	}
	if _, err := NewField(FieldSymbol('S'), 1); !errors.Is(err, ErrUnsupportedField) {
		t.Fatalf("NewField(S, 1) error = %v", err)
	}

	f, err := NewField(SymbolMonth, 3)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	if !f.IsText() || f.Width() != NameAbbreviated || f.Kind() != KindMonth {
		t.Fatalf("MMM: text=%v width=%s kind=%s", f.IsText(), f.Width(), f.Kind())
	}

	numeric := Field{Symbol: SymbolMonth, Length: FieldLengthTwoDigit}
	if numeric.IsText() {
		t.Fatal("MM should be numeric")
	}
}
