package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	datetime "github.com/goliatone/go-datetime"
	cldr "golang.org/x/text/unicode/cldr"
)

var cldrCalendarTypes = map[datetime.Calendar]string{
	datetime.Gregorian: "gregorian",
	datetime.ISO:       "iso8601",
	datetime.Buddhist:  "buddhist",
	datetime.Japanese:  "japanese",
}

// Japanese eras before Meiji are not modelled.
const japaneseMeijiEra = 232

var nameWidths = map[string]datetime.NameWidth{
	"abbreviated": datetime.NameAbbreviated,
	"wide":        datetime.NameWide,
	"narrow":      datetime.NameNarrow,
	"short":       datetime.NameShort,
}

var weekdayIndex = map[string]int{"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6}

var dayPeriodIndex = map[string]int{
	"am":       datetime.DayPeriodAM,
	"pm":       datetime.DayPeriodPM,
	"noon":     datetime.DayPeriodNoon,
	"midnight": datetime.DayPeriodMidnight,
}

func buildLocale(ldml *cldr.LDML, supplemental *cldr.SupplementalData, calendars []datetime.Calendar) (*datetime.LocaleData, error) {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil, fmt.Errorf("missing dates data")
	}

	locale := &datetime.LocaleData{
		Numbering: extractNumbering(ldml, supplemental),
		Calendars: make(map[datetime.Calendar]datetime.CalendarData, len(calendars)),
	}

	for _, calendar := range calendars {
		source := findCalendar(ldml, cldrCalendarTypes[calendar])
		if source == nil {
			if calendar == datetime.Gregorian {
				return nil, fmt.Errorf("missing gregorian calendar")
			}
			continue
		}

		data, err := extractCalendar(source, calendar)
		if err != nil {
			return nil, fmt.Errorf("%s calendar: %w", calendar, err)
		}
		if calendar == datetime.Gregorian {
			data.TimeSymbols = extractTimeSymbols(source, ldml.Dates.TimeZoneNames)
		}
		locale.Calendars[calendar] = data
	}

	return locale, nil
}

func findCalendar(ldml *cldr.LDML, calendarType string) *cldr.Calendar {
	for _, calendar := range ldml.Dates.Calendars.Calendar {
		if calendar != nil && calendar.Type == calendarType {
			return calendar
		}
	}
	return nil
}

func extractCalendar(source *cldr.Calendar, calendar datetime.Calendar) (datetime.CalendarData, error) {
	var data datetime.CalendarData
	var err error

	if source.DateFormats != nil {
		values := make(map[string]string)
		for _, length := range source.DateFormats.DateFormatLength {
			for _, format := range length.DateFormat {
				for _, pattern := range format.Pattern {
					if pattern.Alt == "" && pattern.Count == "" {
						values[length.Type] = pattern.Data()
					}
				}
			}
		}
		if data.DatePatterns, err = lengthPatterns(values); err != nil {
			return data, fmt.Errorf("date patterns: %w", err)
		}
	}

	if source.TimeFormats != nil {
		values := make(map[string]string)
		for _, length := range source.TimeFormats.TimeFormatLength {
			for _, format := range length.TimeFormat {
				for _, pattern := range format.Pattern {
					if pattern.Alt == "" && pattern.Count == "" {
						values[length.Type] = pattern.Data()
					}
				}
			}
		}
		if data.TimePatterns, err = timeLengths(values); err != nil {
			return data, fmt.Errorf("time patterns: %w", err)
		}
	}

	if source.DateTimeFormats != nil {
		if data.GluePatterns, err = extractGlue(source); err != nil {
			return data, fmt.Errorf("glue patterns: %w", err)
		}
		data.Skeletons = extractSkeletons(source)
	}

	data.DateSymbols = extractDateSymbols(source, calendar)
	return data, nil
}

func lengthPatterns(values map[string]string) (datetime.LengthPatterns, error) {
	var out datetime.LengthPatterns
	targets := map[string]*datetime.Pattern{
		"full":   &out.Full,
		"long":   &out.Long,
		"medium": &out.Medium,
		"short":  &out.Short,
	}
	for length, target := range targets {
		text, ok := values[length]
		if !ok {
			continue
		}
		pattern, err := datetime.ParsePattern(text)
		if err != nil {
			return out, err
		}
		*target = pattern
	}
	return out, nil
}

// timeLengths fills both hour cycle families from the locale's own patterns.
func timeLengths(values map[string]string) (datetime.TimeLengths, error) {
	twelve := make(map[string]string, len(values))
	twentyFour := make(map[string]string, len(values))
	for length, text := range values {
		twelve[length] = swapHourCycle(text, true)
		twentyFour[length] = swapHourCycle(text, false)
	}

	var out datetime.TimeLengths
	var err error
	if out.H11H12, err = lengthPatterns(twelve); err != nil {
		return out, err
	}
	if out.H23H24, err = lengthPatterns(twentyFour); err != nil {
		return out, err
	}
	out.PreferredHourCycle = preferredHourCycle(values["short"])
	return out, nil
}

func preferredHourCycle(pattern string) datetime.HourCycle {
	quoted := false
	for _, r := range pattern {
		if r == '\'' {
			quoted = !quoted
			continue
		}
		if quoted {
			continue
		}
		switch r {
		case 'h':
			return datetime.H12
		case 'K':
			return datetime.H11
		case 'H':
			return datetime.H23
		case 'k':
			return datetime.H24
		}
	}
	return datetime.H23
}

// swapHourCycle rewrites the hour field of pattern into the 12 or 24 hour
// family, adding or dropping the day period as needed. Quoted text is kept.
func swapHourCycle(pattern string, twelveHour bool) string {
	var b strings.Builder
	runes := []rune(pattern)
	quoted := false
	hasPeriod := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\'' {
			quoted = !quoted
			b.WriteRune(r)
			continue
		}
		if quoted {
			b.WriteRune(r)
			continue
		}

		switch r {
		case 'h', 'K', 'H', 'k':
			if twelveHour {
				b.WriteRune('h')
			} else {
				b.WriteRune('H')
			}
		case 'a', 'b', 'B':
			if twelveHour {
				if r == 'B' {
					r = 'a'
				}
				hasPeriod = true
				b.WriteRune(r)
				continue
			}
			trimmed := strings.TrimRightFunc(b.String(), unicode.IsSpace)
			b.Reset()
			b.WriteString(trimmed)
			for i+1 < len(runes) && runes[i+1] == r {
				i++
			}
			if trimmed == "" {
				for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
					i++
				}
			}
		default:
			b.WriteRune(r)
		}
	}

	if twelveHour && !hasPeriod {
		b.WriteString(" a")
	}
	return b.String()
}

func extractGlue(source *cldr.Calendar) (datetime.GlueLengths, error) {
	values := make(map[string]string)
	atTime := make(map[string]string)
	for _, length := range source.DateTimeFormats.DateTimeFormatLength {
		for _, format := range length.DateTimeFormat {
			for _, pattern := range format.Pattern {
				switch pattern.Alt {
				case "":
					values[length.Type] = pattern.Data()
				case "atTime":
					atTime[length.Type] = pattern.Data()
				}
			}
		}
	}
	// Full and long lengths read "date at time" where the locale has it.
	for _, length := range []string{"full", "long"} {
		if text, ok := atTime[length]; ok {
			values[length] = text
		}
	}

	var out datetime.GlueLengths
	targets := map[string]*datetime.GluePattern{
		"full":   &out.Full,
		"long":   &out.Long,
		"medium": &out.Medium,
		"short":  &out.Short,
	}
	for length, target := range targets {
		text, ok := values[length]
		if !ok {
			continue
		}
		glue, err := datetime.ParseGluePattern(text)
		if err != nil {
			return out, err
		}
		*target = glue
	}
	return out, nil
}

// extractSkeletons keeps the available formats this package can match and render.
func extractSkeletons(source *cldr.Calendar) map[string]datetime.Pattern {
	out := make(map[string]datetime.Pattern)
	for _, formats := range source.DateTimeFormats.AvailableFormats {
		for _, item := range formats.DateFormatItem {
			if item.Alt != "" || item.Count != "" {
				continue
			}
			if _, err := datetime.ParseSkeleton(item.Id); err != nil {
				continue
			}
			pattern, err := datetime.ParsePattern(item.Data())
			if err != nil {
				continue
			}
			out[item.Id] = pattern
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func extractDateSymbols(source *cldr.Calendar, calendar datetime.Calendar) *datetime.DateSymbols {
	symbols := &datetime.DateSymbols{}

	if source.Months != nil {
		for _, ctx := range source.Months.MonthContext {
			for _, width := range ctx.MonthWidth {
				for _, month := range width.Month {
					if month.Alt != "" || month.Yeartype != "" {
						continue
					}
					setContextName(&symbols.Months, ctx.Type, width.Type, numericIndex(month.Type, 1), month.Data())
				}
			}
		}
	}

	if source.Days != nil {
		for _, ctx := range source.Days.DayContext {
			for _, width := range ctx.DayWidth {
				for _, day := range width.Day {
					index, ok := weekdayIndex[day.Type]
					if !ok || day.Alt != "" {
						continue
					}
					setContextName(&symbols.Weekdays, ctx.Type, width.Type, index, day.Data())
				}
			}
		}
	}

	if source.Quarters != nil {
		for _, ctx := range source.Quarters.QuarterContext {
			for _, width := range ctx.QuarterWidth {
				for _, quarter := range width.Quarter {
					if quarter.Alt != "" {
						continue
					}
					setContextName(&symbols.Quarters, ctx.Type, width.Type, numericIndex(quarter.Type, 1), quarter.Data())
				}
			}
		}
	}

	if source.Eras != nil {
		offset := 0
		if calendar == datetime.Japanese {
			offset = japaneseMeijiEra
		}
		eras := make(datetime.Names)
		addEras := func(width datetime.NameWidth, list []*cldr.Common) {
			for _, era := range list {
				if era.Alt != "" {
					continue
				}
				eras[width] = setName(eras[width], numericIndex(era.Type, offset), era.Data())
			}
		}
		if source.Eras.EraNames != nil {
			addEras(datetime.NameWide, source.Eras.EraNames.Era)
		}
		if source.Eras.EraAbbr != nil {
			addEras(datetime.NameAbbreviated, source.Eras.EraAbbr.Era)
		}
		if source.Eras.EraNarrow != nil {
			addEras(datetime.NameNarrow, source.Eras.EraNarrow.Era)
		}
		if len(eras) > 0 {
			symbols.Eras = eras
		}
	}

	return symbols
}

func extractTimeSymbols(source *cldr.Calendar, zones *cldr.TimeZoneNames) *datetime.TimeSymbols {
	symbols := &datetime.TimeSymbols{}

	if source.DayPeriods != nil {
		for _, ctx := range source.DayPeriods.DayPeriodContext {
			for _, width := range ctx.DayPeriodWidth {
				for _, period := range width.DayPeriod {
					index, ok := dayPeriodIndex[period.Type]
					if !ok || period.Alt != "" {
						continue
					}
					setContextName(&symbols.DayPeriods, ctx.Type, width.Type, index, period.Data())
				}
			}
		}
	}

	if zones != nil {
		symbols.GMTFormat = firstData(zones.GmtFormat)
		symbols.GMTZeroFormat = firstData(zones.GmtZeroFormat)
	}
	return symbols
}

func extractNumbering(ldml *cldr.LDML, supplemental *cldr.SupplementalData) datetime.NumberingSymbols {
	var numbering datetime.NumberingSymbols
	if ldml.Numbers == nil {
		return numbering
	}
	numbering.System = firstData(ldml.Numbers.DefaultNumberingSystem)
	if numbering.System == "" || supplemental == nil || supplemental.NumberingSystems == nil {
		return numbering
	}
	for _, system := range supplemental.NumberingSystems.NumberingSystem {
		if system.Id == numbering.System && system.Type == "numeric" {
			numbering.Digits = system.Digits
			break
		}
	}
	return numbering
}

func extractWeekData(supplemental *cldr.SupplementalData, territory string) (datetime.WeekRuleData, bool) {
	var rules datetime.WeekRuleData
	if supplemental == nil || supplemental.WeekData == nil {
		return rules, false
	}

	for _, entry := range supplemental.WeekData.FirstDay {
		if entry.Alt == "" && hasTerritory(entry.Territories, territory) {
			rules.FirstDay = entry.Day
		}
	}
	for _, entry := range supplemental.WeekData.MinDays {
		if entry.Alt != "" || !hasTerritory(entry.Territories, territory) {
			continue
		}
		if count, err := strconv.Atoi(entry.Count); err == nil {
			rules.MinDays = count
		}
	}

	if rules.FirstDay == "" || rules.MinDays == 0 {
		return rules, false
	}
	return rules, true
}

func hasTerritory(list, territory string) bool {
	for _, candidate := range strings.Fields(list) {
		if strings.EqualFold(candidate, territory) {
			return true
		}
	}
	return false
}

func setContextName(names *datetime.ContextNames, context, width string, index int, value string) {
	w, ok := nameWidths[width]
	if !ok || index < 0 {
		return
	}
	target := &names.Format
	if context == "stand-alone" {
		target = &names.StandAlone
	}
	if *target == nil {
		*target = make(datetime.Names)
	}
	(*target)[w] = setName((*target)[w], index, value)
}

func setName(list []string, index int, value string) []string {
	if index < 0 {
		return list
	}
	for len(list) <= index {
		list = append(list, "")
	}
	list[index] = value
	return list
}

// numericIndex converts a CLDR type attribute into a zero based index.
func numericIndex(value string, offset int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return n - offset
}

func firstData(list []*cldr.Common) string {
	for _, item := range list {
		if item != nil && item.Alt == "" {
			return item.Data()
		}
	}
	return ""
}
