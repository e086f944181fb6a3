package datetime

import "fmt"

// NameWidth is a CLDR name width.
type NameWidth string

const (
	NameAbbreviated NameWidth = "abbreviated"
	NameWide        NameWidth = "wide"
	NameNarrow      NameWidth = "narrow"
	NameShort       NameWidth = "short"
)

// NameContext selects format or stand-alone names.
type NameContext uint8

const (
	ContextFormat NameContext = iota
	ContextStandAlone
)

func (c NameContext) String() string {
	if c == ContextStandAlone {
		return "stand-alone"
	}
	return "format"
}

// Names maps a width to names indexed by value.
type Names map[NameWidth][]string

// Lookup returns the non-empty name at index for width.
func (n Names) Lookup(width NameWidth, index int) (string, bool) {
	names := n[width]
	if index < 0 || index >= len(names) || names[index] == "" {
		return "", false
	}
	return names[index], true
}

func (n Names) clone() Names {
	if n == nil {
		return nil
	}
	out := make(Names, len(n))
	for width, names := range n {
		out[width] = append([]string(nil), names...)
	}
	return out
}

// ContextNames holds format and stand-alone names.
type ContextNames struct {
	Format     Names `json:"format,omitempty" yaml:"format,omitempty"`
	StandAlone Names `json:"stand_alone,omitempty" yaml:"stand_alone,omitempty"`
}

// Lookup consults stand-alone names first when ctx asks for them, then format names.
func (c ContextNames) Lookup(ctx NameContext, width NameWidth, index int) (string, bool) {
	if ctx == ContextStandAlone {
		if _, ok := c.StandAlone[width]; ok {
			return c.StandAlone.Lookup(width, index)
		}
	}
	return c.Format.Lookup(width, index)
}

func (c ContextNames) IsZero() bool {
	return len(c.Format) == 0 && len(c.StandAlone) == 0
}

func (c ContextNames) clone() ContextNames {
	return ContextNames{Format: c.Format.clone(), StandAlone: c.StandAlone.clone()}
}

// overlay returns c with every width present in top replaced.
func (c ContextNames) overlay(top ContextNames) ContextNames {
	out := c.clone()
	out.Format = mergeNames(out.Format, top.Format)
	out.StandAlone = mergeNames(out.StandAlone, top.StandAlone)
	return out
}

func mergeNames(base, top Names) Names {
	if len(top) == 0 {
		return base
	}
	if base == nil {
		base = make(Names, len(top))
	}
	for width, names := range top {
		base[width] = append([]string(nil), names...)
	}
	return base
}

// DateSymbols holds the names used by date fields. Weekdays are indexed
// Sunday=0, months and quarters from 0.
type DateSymbols struct {
	Months   ContextNames `json:"months,omitempty" yaml:"months,omitempty"`
	Weekdays ContextNames `json:"weekdays,omitempty" yaml:"weekdays,omitempty"`
	Quarters ContextNames `json:"quarters,omitempty" yaml:"quarters,omitempty"`
	Eras     Names        `json:"eras,omitempty" yaml:"eras,omitempty"`
}

// Clone returns a deep copy.
func (d *DateSymbols) Clone() *DateSymbols {
	if d == nil {
		return nil
	}
	return &DateSymbols{
		Months:   d.Months.clone(),
		Weekdays: d.Weekdays.clone(),
		Quarters: d.Quarters.clone(),
		Eras:     d.Eras.clone(),
	}
}

// Overlay returns a copy of d with the tables present in top replacing d's.
func (d *DateSymbols) Overlay(top *DateSymbols) *DateSymbols {
	out := d.Clone()
	if out == nil {
		out = &DateSymbols{}
	}
	if top == nil {
		return out
	}
	out.Months = out.Months.overlay(top.Months)
	out.Weekdays = out.Weekdays.overlay(top.Weekdays)
	out.Quarters = out.Quarters.overlay(top.Quarters)
	out.Eras = mergeNames(out.Eras, top.Eras)
	return out
}

// subset keeps the tables the pattern renders.
func (d *DateSymbols) subset(p Pattern) *DateSymbols {
	out := &DateSymbols{}
	for _, f := range p.Fields() {
		if !f.IsText() {
			continue
		}
		switch f.Kind() {
		case KindMonth:
			out.Months = d.Months.clone()
		case KindWeekday:
			out.Weekdays = d.Weekdays.clone()
		case KindQuarter:
			out.Quarters = d.Quarters.clone()
		case KindEra:
			out.Eras = d.Eras.clone()
		}
	}
	return out
}

// Day period indexes.
const (
	DayPeriodAM = iota
	DayPeriodPM
	DayPeriodNoon
	DayPeriodMidnight
)

// TimeSymbols holds day period names and GMT formats.
type TimeSymbols struct {
	DayPeriods    ContextNames `json:"day_periods,omitempty" yaml:"day_periods,omitempty"`
	GMTFormat     string       `json:"gmt_format,omitempty" yaml:"gmt_format,omitempty"`
	GMTZeroFormat string       `json:"gmt_zero_format,omitempty" yaml:"gmt_zero_format,omitempty"`
}

// Clone returns a deep copy.
func (t *TimeSymbols) Clone() *TimeSymbols {
	if t == nil {
		return nil
	}
	out := *t
	out.DayPeriods = t.DayPeriods.clone()
	return &out
}

func (t *TimeSymbols) overlay(top *TimeSymbols) *TimeSymbols {
	out := t.Clone()
	if out == nil {
		out = &TimeSymbols{}
	}
	if top == nil {
		return out
	}
	out.DayPeriods = out.DayPeriods.overlay(top.DayPeriods)
	if top.GMTFormat != "" {
		out.GMTFormat = top.GMTFormat
	}
	if top.GMTZeroFormat != "" {
		out.GMTZeroFormat = top.GMTZeroFormat
	}
	return out
}

func missingSymbol(kind FieldKind, ctx NameContext, width NameWidth, index int) error {
	return fmt.Errorf("%w: %s %s/%s index %d", ErrMissingSymbol, kind, ctx, width, index)
}
