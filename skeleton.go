package datetime

import (
	"fmt"
	"sort"
	"strings"
)

// Skeleton is a canonically ordered set of fields, at most one per kind,
// with lengths normalised to their width bucket.
type Skeleton struct {
	fields []Field
}

// NewSkeleton normalises and orders fields. Two fields of the same kind are rejected.
func NewSkeleton(fields ...Field) (Skeleton, error) {
	var slots [fieldKindCount]Field
	for _, field := range fields {
		kind := field.Kind()
		if kind >= fieldKindCount {
			return Skeleton{}, fmt.Errorf("%w: %q", ErrUnsupportedField, rune(field.Symbol))
		}
		if slots[kind].Symbol != 0 {
			return Skeleton{}, fmt.Errorf("%w: duplicate %s field in skeleton", ErrInvalidPattern, kind)
		}
		slots[kind] = normalizeSkeletonField(field)
	}

	out := make([]Field, 0, len(fields))
	for _, field := range slots {
		if field.Symbol != 0 {
			out = append(out, field)
		}
	}
	return Skeleton{fields: out}, nil
}

// ParseSkeleton parses a CLDR skeleton id such as "yMMMd".
func ParseSkeleton(text string) (Skeleton, error) {
	var fields []Field
	runes := []rune(text)
	for i := 0; i < len(runes); {
		r := runes[i]
		if !isFieldLetter(r) {
			return Skeleton{}, fmt.Errorf("%w: skeleton %q contains %q", ErrInvalidPattern, text, r)
		}
		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		field, err := NewField(FieldSymbol(r), j-i)
		if err != nil {
			return Skeleton{}, fmt.Errorf("parse skeleton %q: %w", text, err)
		}
		fields = append(fields, field)
		i = j
	}
	skeleton, err := NewSkeleton(fields...)
	if err != nil {
		return Skeleton{}, fmt.Errorf("parse skeleton %q: %w", text, err)
	}
	return skeleton, nil
}

func normalizeSkeletonField(field Field) Field {
	switch {
	case field.Kind() == KindDayPeriod:
		field.Length = FieldLengthOne
	case field.Kind() == KindZone:
		if field.Length < FieldLengthWide {
			field.Length = FieldLengthOne
		} else {
			field.Length = FieldLengthWide
		}
	case field.Symbol == SymbolYear || field.Symbol == SymbolWeekYear:
		if field.Length != FieldLengthTwoDigit {
			field.Length = FieldLengthOne
		}
	case field.IsText():
		if field.Length < FieldLengthAbbreviated {
			field.Length = FieldLengthAbbreviated
		}
	case field.Length > FieldLengthTwoDigit:
		field.Length = FieldLengthTwoDigit
	}
	return field
}

// Fields returns a copy of the skeleton fields.
func (s Skeleton) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s Skeleton) IsZero() bool {
	return len(s.fields) == 0
}

// Field returns the field of the given kind.
func (s Skeleton) Field(kind FieldKind) (Field, bool) {
	for _, field := range s.fields {
		if field.Kind() == kind {
			return field, true
		}
	}
	return Field{}, false
}

func (s Skeleton) Has(kind FieldKind) bool {
	_, ok := s.Field(kind)
	return ok
}

func (s Skeleton) HasDate() bool {
	for _, field := range s.fields {
		if field.Kind().isDate() {
			return true
		}
	}
	return false
}

func (s Skeleton) HasTime() bool {
	for _, field := range s.fields {
		if !field.Kind().isDate() {
			return true
		}
	}
	return false
}

func (s Skeleton) String() string {
	var b strings.Builder
	for _, field := range s.fields {
		b.WriteString(field.String())
	}
	return b.String()
}

// SkeletonPattern pairs a skeleton with the pattern the locale uses for it.
type SkeletonPattern struct {
	Skeleton Skeleton
	Pattern  Pattern
}

// SkeletonPatternTable is a deterministic list of candidates ordered by skeleton string.
type SkeletonPatternTable struct {
	entries []SkeletonPattern
}

// NewSkeletonPatternTable parses skeleton ids. When two ids normalise to the
// same skeleton the lexically first id wins.
func NewSkeletonPatternTable(data map[string]Pattern) (SkeletonPatternTable, error) {
	ids := make([]string, 0, len(data))
	for id := range data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	seen := make(map[string]struct{}, len(ids))
	entries := make([]SkeletonPattern, 0, len(ids))
	for _, id := range ids {
		skeleton, err := ParseSkeleton(id)
		if err != nil {
			return SkeletonPatternTable{}, err
		}
		key := skeleton.String()
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, SkeletonPattern{Skeleton: skeleton, Pattern: data[id]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Skeleton.String() < entries[j].Skeleton.String()
	})
	return SkeletonPatternTable{entries: entries}, nil
}

func (t SkeletonPatternTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table entries.
func (t SkeletonPatternTable) Entries() []SkeletonPattern {
	out := make([]SkeletonPattern, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the pattern stored for exactly s.
func (t SkeletonPatternTable) Lookup(s Skeleton) (Pattern, bool) {
	key := s.String()
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Skeleton.String() >= key
	})
	if i < len(t.entries) && t.entries[i].Skeleton.String() == key {
		return t.entries[i].Pattern, true
	}
	return Pattern{}, false
}
