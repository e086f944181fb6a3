package datetime

import (
	"fmt"
	"math"
)

// Rejected is the score of a candidate that can never be selected.
const Rejected = math.MaxInt

// PenaltyTable weighs the differences between a requested skeleton and a candidate.
type PenaltyTable struct {
	NumericWidth   int                     `json:"numeric_width" yaml:"numeric_width"`
	TextWidth      int                     `json:"text_width" yaml:"text_width"`
	TextVsNumeric  int                     `json:"text_vs_numeric" yaml:"text_vs_numeric"`
	SymbolVariant  int                     `json:"symbol_variant" yaml:"symbol_variant"`
	ExtraField     int                     `json:"extra_field" yaml:"extra_field"`
	MissingField   int                     `json:"missing_field" yaml:"missing_field"`
	Threshold      int                     `json:"threshold" yaml:"threshold"`
	Implicit       map[FieldKind]FieldKind `json:"implicit,omitempty" yaml:"implicit,omitempty"`
	ForbiddenExtra []FieldKind             `json:"forbidden_extra,omitempty" yaml:"forbidden_extra,omitempty"`
}

// DefaultPenaltyTable returns a fresh copy of the built-in weights.
func DefaultPenaltyTable() PenaltyTable {
	return PenaltyTable{
		NumericWidth:   1,
		TextWidth:      2,
		TextVsNumeric:  10,
		SymbolVariant:  100,
		ExtraField:     1000,
		MissingField:   10000,
		Threshold:      10000,
		Implicit:       map[FieldKind]FieldKind{KindDayPeriod: KindHour},
		ForbiddenExtra: []FieldKind{KindEra},
	}
}

// Validate checks that the table can accept at least an exact match.
func (t PenaltyTable) Validate() error {
	if t.Threshold <= 0 {
		return fmt.Errorf("%w: penalty threshold must be positive", ErrInvalidOptions)
	}
	for name, weight := range map[string]int{
		"numeric_width":   t.NumericWidth,
		"text_width":      t.TextWidth,
		"text_vs_numeric": t.TextVsNumeric,
		"symbol_variant":  t.SymbolVariant,
		"extra_field":     t.ExtraField,
		"missing_field":   t.MissingField,
	} {
		if weight < 0 {
			return fmt.Errorf("%w: penalty %s is negative", ErrInvalidOptions, name)
		}
	}
	for extra, partner := range t.Implicit {
		if extra >= fieldKindCount || partner >= fieldKindCount {
			return fmt.Errorf("%w: implicit field %s -> %s", ErrInvalidOptions, extra, partner)
		}
	}
	return nil
}

func (t PenaltyTable) clone() PenaltyTable {
	out := t
	if t.Implicit != nil {
		out.Implicit = make(map[FieldKind]FieldKind, len(t.Implicit))
		for k, v := range t.Implicit {
			out.Implicit[k] = v
		}
	}
	out.ForbiddenExtra = append([]FieldKind(nil), t.ForbiddenExtra...)
	return out
}

func (t PenaltyTable) forbidden(kind FieldKind) bool {
	for _, k := range t.ForbiddenExtra {
		if k == kind {
			return true
		}
	}
	return false
}

// Score returns the distance from requested to candidate, or Rejected.
func (t PenaltyTable) Score(requested, candidate Skeleton) int {
	score := 0
	for kind := FieldKind(0); kind < fieldKindCount; kind++ {
		want, wantOK := requested.Field(kind)
		have, haveOK := candidate.Field(kind)
		switch {
		case wantOK && haveOK:
			score += t.distance(want, have)
		case wantOK:
			score += t.MissingField
		case haveOK:
			if t.forbidden(kind) {
				return Rejected
			}
			if partner, ok := t.Implicit[kind]; ok && requested.Has(partner) {
				continue
			}
			score += t.ExtraField
		}
	}
	return score
}

func (t PenaltyTable) distance(want, have Field) int {
	switch {
	case want == have:
		return 0
	case want.Symbol != have.Symbol:
		return t.SymbolVariant
	case want.IsText() != have.IsText():
		return t.TextVsNumeric
	case want.IsText():
		return t.TextWidth
	default:
		return t.NumericWidth
	}
}

// Match is the outcome of BestMatch.
type Match struct {
	Skeleton Skeleton
	Pattern  Pattern
	Score    int
}

// BestMatch selects the lowest scoring candidate below the threshold. Ties go
// to the pattern whose field order is closest to the canonical order, then to
// the earlier table entry.
func (t PenaltyTable) BestMatch(table SkeletonPatternTable, requested Skeleton) (Match, error) {
	var (
		best      Match
		bestOrder int
		found     bool
	)
	for _, entry := range table.entries {
		score := t.Score(requested, entry.Skeleton)
		if score == Rejected || score >= t.Threshold {
			continue
		}
		order := orderInversions(entry.Pattern)
		if found && (score > best.Score || (score == best.Score && order >= bestOrder)) {
			continue
		}
		best = Match{Skeleton: entry.Skeleton, Pattern: entry.Pattern, Score: score}
		bestOrder = order
		found = true
	}
	if !found {
		return Match{}, fmt.Errorf("%w: %s", ErrUnsupportedSkeleton, requested)
	}
	best.Pattern = adjustFieldWidths(best.Pattern, requested)
	return best, nil
}

// adjustFieldWidths moves the matched pattern's text fields to the requested
// width and pads numeric fields up to the requested length. Numeric fields are
// never shortened.
func adjustFieldWidths(p Pattern, requested Skeleton) Pattern {
	return p.mapFields(func(f Field) Field {
		want, ok := requested.Field(f.Kind())
		if !ok || want.IsText() != f.IsText() || f.Kind() == KindZone {
			return f
		}
		if want.IsText() && f.Width() == want.Width() {
			return f
		}
		if !want.IsText() && want.Length <= f.Length {
			return f
		}
		adjusted, err := NewField(f.Symbol, int(want.Length))
		if err != nil {
			return f
		}
		return adjusted
	})
}

func orderInversions(p Pattern) int {
	fields := p.Fields()
	count := 0
	for i := range fields {
		for j := i + 1; j < len(fields); j++ {
			if fields[i].Kind() > fields[j].Kind() {
				count++
			}
		}
	}
	return count
}
