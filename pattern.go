package datetime

import (
	"fmt"
	"strings"
)

// PatternItem is either literal text or a field.
type PatternItem struct {
	Field   Field
	Literal string
}

// LiteralItem builds a literal item.
func LiteralItem(text string) PatternItem {
	return PatternItem{Literal: text}
}

// FieldItem builds a field item.
func FieldItem(field Field) PatternItem {
	return PatternItem{Field: field}
}

// IsField reports whether the item is a field.
func (it PatternItem) IsField() bool {
	return it.Field.Symbol != 0
}

// Pattern is an immutable ordered list of literals and fields.
type Pattern struct {
	items []PatternItem
}

// NewPattern copies items, dropping empty literals and merging adjacent ones.
func NewPattern(items ...PatternItem) Pattern {
	merged := make([]PatternItem, 0, len(items))
	for _, item := range items {
		if item.IsField() {
			merged = append(merged, FieldItem(item.Field))
			continue
		}
		if item.Literal == "" {
			continue
		}
		if n := len(merged); n > 0 && !merged[n-1].IsField() {
			merged[n-1].Literal += item.Literal
			continue
		}
		merged = append(merged, LiteralItem(item.Literal))
	}
	return Pattern{items: merged}
}

// ParsePattern decodes CLDR pattern syntax.
func ParsePattern(text string) (Pattern, error) {
	var (
		items   []PatternItem
		literal strings.Builder
		runes   = []rune(text)
	)

	flush := func() {
		if literal.Len() > 0 {
			items = append(items, LiteralItem(literal.String()))
			literal.Reset()
		}
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			end, err := readQuoted(runes, i, &literal)
			if err != nil {
				return Pattern{}, fmt.Errorf("%w in %q", err, text)
			}
			i = end
		case isFieldLetter(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			field, err := NewField(FieldSymbol(r), j-i)
			if err != nil {
				return Pattern{}, fmt.Errorf("parse pattern %q: %w", text, err)
			}
			flush()
			items = append(items, FieldItem(field))
			i = j
		default:
			literal.WriteRune(r)
			i++
		}
	}
	flush()

	return Pattern{items: items}, nil
}

// readQuoted consumes a quote sequence starting at runes[start] and returns
// the index just past it.
func readQuoted(runes []rune, start int, out *strings.Builder) (int, error) {
	if start+1 < len(runes) && runes[start+1] == '\'' {
		out.WriteRune('\'')
		return start + 2, nil
	}
	for j := start + 1; j < len(runes); j++ {
		if runes[j] != '\'' {
			out.WriteRune(runes[j])
			continue
		}
		if j+1 < len(runes) && runes[j+1] == '\'' {
			out.WriteRune('\'')
			j++
			continue
		}
		return j + 1, nil
	}
	return 0, fmt.Errorf("%w: unterminated quote", ErrInvalidPattern)
}

// MustParsePattern is like ParsePattern but panics on error.
func MustParsePattern(text string) Pattern {
	p, err := ParsePattern(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Items returns a copy of the pattern items.
func (p Pattern) Items() []PatternItem {
	out := make([]PatternItem, len(p.items))
	copy(out, p.items)
	return out
}

func (p Pattern) Len() int {
	return len(p.items)
}

func (p Pattern) IsZero() bool {
	return len(p.items) == 0
}

// Fields returns the fields in pattern order.
func (p Pattern) Fields() []Field {
	var fields []Field
	for _, item := range p.items {
		if item.IsField() {
			fields = append(fields, item.Field)
		}
	}
	return fields
}

func (p Pattern) has(pred func(Field) bool) bool {
	for _, item := range p.items {
		if item.IsField() && pred(item.Field) {
			return true
		}
	}
	return false
}

// mapFields returns a copy with every field passed through fn.
func (p Pattern) mapFields(fn func(Field) Field) Pattern {
	out := make([]PatternItem, len(p.items))
	for i, item := range p.items {
		if item.IsField() {
			item.Field = fn(item.Field)
		}
		out[i] = item
	}
	return Pattern{items: out}
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, item := range p.items {
		if item.IsField() {
			b.WriteString(item.Field.String())
			continue
		}
		writeQuotedLiteral(&b, item.Literal)
	}
	return b.String()
}

// writeQuotedLiteral quotes runs of ASCII letters and doubles apostrophes.
func writeQuotedLiteral(b *strings.Builder, literal string) {
	open := false
	for _, r := range literal {
		switch {
		case isFieldLetter(r):
			if !open {
				b.WriteByte('\'')
				open = true
			}
			b.WriteRune(r)
		case r == '\'':
			b.WriteString("''")
		default:
			if open {
				b.WriteByte('\'')
				open = false
			}
			b.WriteRune(r)
		}
	}
	if open {
		b.WriteByte('\'')
	}
}

func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts the empty string as the zero pattern.
func (p *Pattern) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Pattern{}
		return nil
	}
	parsed, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
