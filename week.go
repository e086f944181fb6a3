package datetime

import (
	"fmt"
	"strings"
	"time"
)

// WeekRules are a region's first day of week and the minimum number of days
// the first week of a year must have.
type WeekRules struct {
	FirstDay time.Weekday
	MinDays  int
}

// Validate checks MinDays is 1..7 and FirstDay is a weekday.
func (r WeekRules) Validate() error {
	if r.MinDays < 1 || r.MinDays > 7 {
		return fmt.Errorf("%w: min days %d outside 1..7", ErrMissingData, r.MinDays)
	}
	if r.FirstDay < time.Sunday || r.FirstDay > time.Saturday {
		return fmt.Errorf("%w: first day %d", ErrMissingData, r.FirstDay)
	}
	return nil
}

// RelativeUnit tells which year (or month) a week number belongs to.
type RelativeUnit int8

const (
	UnitPrevious RelativeUnit = -1
	UnitCurrent  RelativeUnit = 0
	UnitNext     RelativeUnit = 1
)

// WeekOf is a week number together with the unit it counts in.
type WeekOf struct {
	Week int
	Unit RelativeUnit
}

func (r WeekRules) weekdayIndex(day time.Weekday) int {
	return (7 + int(day) - int(r.FirstDay)) % 7
}

func addToWeekday(day time.Weekday, n int) time.Weekday {
	return time.Weekday(((int(day)+n)%7 + 7) % 7)
}

// firstWeekOffset is the 0-based day of the unit on which week 1 starts;
// negative when week 1 starts in the previous unit.
func (r WeekRules) firstWeekOffset(firstDayOfUnit time.Weekday) int {
	idx := r.weekdayIndex(firstDayOfUnit)
	if 7-idx >= r.MinDays {
		return -idx
	}
	return 7 - idx
}

// weeksInUnit counts the weeks from week 1 up to the next unit's week 1.
func (r WeekRules) weeksInUnit(firstDayOfUnit time.Weekday, daysInUnit int) int {
	next := addToWeekday(firstDayOfUnit, daysInUnit)
	return (daysInUnit + r.firstWeekOffset(next) - r.firstWeekOffset(firstDayOfUnit)) / 7
}

// WeekOf computes the week of day (1-based) in a unit of daysInUnit days
// whose day falls on weekday. daysInPrevUnit sizes the unit before it.
func (r WeekRules) WeekOf(daysInPrevUnit, daysInUnit, day int, weekday time.Weekday) (WeekOf, error) {
	if err := r.Validate(); err != nil {
		return WeekOf{}, err
	}
	if daysInPrevUnit < 7 || daysInUnit < 7 || day < 1 || day > daysInUnit {
		return WeekOf{}, fmt.Errorf("%w: day %d of %d (previous %d)", ErrMissingInputField, day, daysInUnit, daysInPrevUnit)
	}

	firstDay := addToWeekday(weekday, 1-day)
	offset := r.firstWeekOffset(firstDay)

	daysSince := day - offset - 1
	if daysSince < 0 {
		prevFirstDay := addToWeekday(firstDay, -daysInPrevUnit)
		return WeekOf{Week: r.weeksInUnit(prevFirstDay, daysInPrevUnit), Unit: UnitPrevious}, nil
	}

	week := daysSince/7 + 1
	if week > r.weeksInUnit(firstDay, daysInUnit) {
		return WeekOf{Week: 1, Unit: UnitNext}, nil
	}
	return WeekOf{Week: week, Unit: UnitCurrent}, nil
}

// WeekOfMonth numbers weeks in a month, counting a partial first week as week 1.
func (r WeekRules) WeekOfMonth(day int, weekday time.Weekday) int {
	firstDay := addToWeekday(weekday, 1-day)
	return (day-1+r.weekdayIndex(firstDay))/7 + 1
}

// LocalWeekday is 1 for the region's first day of week.
func (r WeekRules) LocalWeekday(day time.Weekday) int {
	return r.weekdayIndex(day) + 1
}

var weekdayCodes = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// ParseWeekday accepts CLDR three-letter codes and English weekday names.
func ParseWeekday(value string) (time.Weekday, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for i, code := range weekdayCodes {
		if value == code || value == strings.ToLower(time.Weekday(i).String()) {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrMissingData, value)
}

func weekdayCode(day time.Weekday) string {
	return weekdayCodes[int(day)%7]
}
