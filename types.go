package datetime

// Bundle is the serialised form of locale calendar data.
type Bundle struct {
	Locales  map[string]*LocaleData  `json:"locales" yaml:"locales"`
	WeekData map[string]WeekRuleData `json:"week_data,omitempty" yaml:"week_data,omitempty"`
}

// LocaleData is everything a bundle holds for one locale.
type LocaleData struct {
	Numbering NumberingSymbols          `json:"numbering,omitempty" yaml:"numbering,omitempty"`
	Calendars map[Calendar]CalendarData `json:"calendars,omitempty" yaml:"calendars,omitempty"`
}

// CalendarData is one locale's data for one calendar. Empty sections are
// inherited from the same locale's gregorian data, then from parent locales.
type CalendarData struct {
	DatePatterns LengthPatterns     `json:"date_patterns,omitempty" yaml:"date_patterns,omitempty"`
	TimePatterns TimeLengths        `json:"time_patterns,omitempty" yaml:"time_patterns,omitempty"`
	GluePatterns GlueLengths        `json:"glue_patterns,omitempty" yaml:"glue_patterns,omitempty"`
	Skeletons    map[string]Pattern `json:"skeletons,omitempty" yaml:"skeletons,omitempty"`
	DateSymbols  *DateSymbols       `json:"date_symbols,omitempty" yaml:"date_symbols,omitempty"`
	TimeSymbols  *TimeSymbols       `json:"time_symbols,omitempty" yaml:"time_symbols,omitempty"`
}

// WeekRuleData is the serialised form of WeekRules, e.g. {"first_day": "mon", "min_days": 4}.
type WeekRuleData struct {
	FirstDay string `json:"first_day" yaml:"first_day"`
	MinDays  int    `json:"min_days" yaml:"min_days"`
}

// Rules parses the data into WeekRules.
func (d WeekRuleData) Rules() (WeekRules, error) {
	day, err := ParseWeekday(d.FirstDay)
	if err != nil {
		return WeekRules{}, err
	}
	rules := WeekRules{FirstDay: day, MinDays: d.MinDays}
	if err := rules.Validate(); err != nil {
		return WeekRules{}, err
	}
	return rules, nil
}

// WeekRuleDataFor is the inverse of WeekRuleData.Rules.
func WeekRuleDataFor(rules WeekRules) WeekRuleData {
	return WeekRuleData{FirstDay: weekdayCode(rules.FirstDay), MinDays: rules.MinDays}
}

// Merge copies other into b. Calendar sections and week data in other replace b's.
func (b *Bundle) Merge(other *Bundle) {
	if other == nil {
		return
	}
	if b.Locales == nil {
		b.Locales = make(map[string]*LocaleData, len(other.Locales))
	}
	for locale, data := range other.Locales {
		if data == nil {
			continue
		}
		locale = normalizeLocale(locale)
		target, ok := b.Locales[locale]
		if !ok {
			target = &LocaleData{}
			b.Locales[locale] = target
		}
		if !data.Numbering.IsZero() {
			target.Numbering = data.Numbering
		}
		if target.Calendars == nil && len(data.Calendars) > 0 {
			target.Calendars = make(map[Calendar]CalendarData, len(data.Calendars))
		}
		for calendar, section := range data.Calendars {
			target.Calendars[calendar] = section.clone()
		}
	}

	if len(other.WeekData) > 0 && b.WeekData == nil {
		b.WeekData = make(map[string]WeekRuleData, len(other.WeekData))
	}
	for region, rules := range other.WeekData {
		b.WeekData[region] = rules
	}
}

func (c CalendarData) clone() CalendarData {
	out := c
	if c.Skeletons != nil {
		out.Skeletons = make(map[string]Pattern, len(c.Skeletons))
		for id, p := range c.Skeletons {
			out.Skeletons[id] = p
		}
	}
	out.DateSymbols = c.DateSymbols.Clone()
	out.TimeSymbols = c.TimeSymbols.Clone()
	return out
}
