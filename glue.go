package datetime

import (
	"fmt"
	"io"
	"strings"
)

const (
	gluePlaceholderTime = 0
	gluePlaceholderDate = 1
)

type glueItem struct {
	literal     string
	placeholder int // -1 for literals
}

// GluePattern joins a rendered date ({1}) and time ({0}).
type GluePattern struct {
	items []glueItem
}

// ParseGluePattern parses CLDR dateTimeFormat text such as "{1} 'at' {0}".
func ParseGluePattern(text string) (GluePattern, error) {
	var (
		items   []glueItem
		literal strings.Builder
		seen    [2]int
		runes   = []rune(text)
	)

	flush := func() {
		if literal.Len() > 0 {
			items = append(items, glueItem{literal: literal.String(), placeholder: -1})
			literal.Reset()
		}
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			end, err := readQuoted(runes, i, &literal)
			if err != nil {
				return GluePattern{}, fmt.Errorf("%w in glue %q", err, text)
			}
			i = end
		case r == '{' && i+2 < len(runes) && runes[i+2] == '}' && (runes[i+1] == '0' || runes[i+1] == '1'):
			flush()
			index := int(runes[i+1] - '0')
			seen[index]++
			items = append(items, glueItem{placeholder: index})
			i += 3
		default:
			literal.WriteRune(r)
			i++
		}
	}
	flush()

	if seen[gluePlaceholderTime] != 1 || seen[gluePlaceholderDate] != 1 {
		return GluePattern{}, fmt.Errorf("%w: glue %q must contain {0} and {1} once", ErrInvalidPattern, text)
	}
	return GluePattern{items: items}, nil
}

// MustParseGluePattern is like ParseGluePattern but panics on error.
func MustParseGluePattern(text string) GluePattern {
	g, err := ParseGluePattern(text)
	if err != nil {
		panic(err)
	}
	return g
}

func (g GluePattern) IsZero() bool {
	return len(g.items) == 0
}

// Assemble writes the glue with date and time substituted.
func (g GluePattern) Assemble(w io.Writer, date, time string) error {
	for _, item := range g.items {
		text := item.literal
		switch item.placeholder {
		case gluePlaceholderTime:
			text = time
		case gluePlaceholderDate:
			text = date
		}
		if _, err := io.WriteString(w, text); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
	}
	return nil
}

// Combine returns the assembled string.
func (g GluePattern) Combine(date, time string) string {
	var b strings.Builder
	_ = g.Assemble(&b, date, time)
	return b.String()
}

func (g GluePattern) String() string {
	var b strings.Builder
	for _, item := range g.items {
		if item.placeholder >= 0 {
			fmt.Fprintf(&b, "{%d}", item.placeholder)
			continue
		}
		writeQuotedLiteral(&b, item.literal)
	}
	return b.String()
}

func (g GluePattern) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *GluePattern) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*g = GluePattern{}
		return nil
	}
	parsed, err := ParseGluePattern(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// GlueLengths holds one glue pattern per length style.
type GlueLengths struct {
	Full   GluePattern `json:"full,omitempty" yaml:"full,omitempty"`
	Long   GluePattern `json:"long,omitempty" yaml:"long,omitempty"`
	Medium GluePattern `json:"medium,omitempty" yaml:"medium,omitempty"`
	Short  GluePattern `json:"short,omitempty" yaml:"short,omitempty"`
}

func (g GlueLengths) IsZero() bool {
	return g.Full.IsZero() && g.Long.IsZero() && g.Medium.IsZero() && g.Short.IsZero()
}

// Get returns the glue for length.
func (g GlueLengths) Get(length Length) (GluePattern, error) {
	var glue GluePattern
	switch length {
	case LengthFull:
		glue = g.Full
	case LengthLong:
		glue = g.Long
	case LengthMedium:
		glue = g.Medium
	case LengthShort:
		glue = g.Short
	default:
		return GluePattern{}, fmt.Errorf("%w: length %d", ErrInvalidOptions, uint8(length))
	}
	if glue.IsZero() {
		return GluePattern{}, fmt.Errorf("%w: no %s glue pattern", ErrMissingData, length)
	}
	return glue, nil
}
