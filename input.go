package datetime

import (
	"fmt"
	"time"
)

// DayOfYearInfo positions a date inside its year for week computations.
type DayOfYearInfo struct {
	DayOfYear      int
	DaysInYear     int
	DaysInPrevYear int
}

// DateTimeInput is the calendar-aware value a formatter renders.
type DateTimeInput interface {
	Calendar() Calendar
	EraIndex() int
	Year() int
	// MonthIndex is 0-based.
	MonthIndex() int
	DayOfMonth() int
	DayOfYear() DayOfYearInfo
	Weekday() time.Weekday
	Hour() int
	Minute() int
	Second() int
}

// ZonedInput is implemented by inputs that can supply a time zone.
type ZonedInput interface {
	ZoneName() string
	// ZoneOffset returns seconds east of UTC; ok is false when no zone is known.
	ZoneOffset() (seconds int, ok bool)
}

// Zone is a fixed zone abbreviation and offset.
type Zone struct {
	Name   string
	Offset int
}

// DateTimeFields are the raw values behind a DateTime.
type DateTimeFields struct {
	Calendar       Calendar
	Era            int
	Year           int
	Month          int
	Day            int
	DayOfYear      int
	DaysInYear     int
	DaysInPrevYear int
	Weekday        time.Weekday
	Hour           int
	Minute         int
	Second         int
	Zone           *Zone
}

// DateTime is the stock DateTimeInput and ZonedInput implementation.
type DateTime struct {
	fields DateTimeFields
}

var (
	_ DateTimeInput = DateTime{}
	_ ZonedInput    = DateTime{}
)

// NewDateTime validates fields. DayOfYear, DaysInYear and DaysInPrevYear may
// be zero when no week field will be rendered.
func NewDateTime(fields DateTimeFields) (DateTime, error) {
	checks := []struct {
		name     string
		value    int
		min, max int
	}{
		{"month", fields.Month, 0, 11},
		{"day", fields.Day, 1, 31},
		{"day of year", fields.DayOfYear, 0, 366},
		{"weekday", int(fields.Weekday), 0, 6},
		{"hour", fields.Hour, 0, 23},
		{"minute", fields.Minute, 0, 59},
		{"second", fields.Second, 0, 60},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return DateTime{}, fmt.Errorf("%w: %s %d outside %d..%d", ErrInvalidOptions, c.name, c.value, c.min, c.max)
		}
	}
	if fields.Zone != nil {
		zone := *fields.Zone
		fields.Zone = &zone
	}
	return DateTime{fields: fields}, nil
}

// Fields returns a copy of the raw values.
func (d DateTime) Fields() DateTimeFields {
	out := d.fields
	if out.Zone != nil {
		zone := *out.Zone
		out.Zone = &zone
	}
	return out
}

func (d DateTime) Calendar() Calendar { return d.fields.Calendar }
func (d DateTime) EraIndex() int      { return d.fields.Era }
func (d DateTime) Year() int          { return d.fields.Year }
func (d DateTime) MonthIndex() int    { return d.fields.Month }
func (d DateTime) DayOfMonth() int    { return d.fields.Day }
func (d DateTime) Hour() int          { return d.fields.Hour }
func (d DateTime) Minute() int        { return d.fields.Minute }
func (d DateTime) Second() int        { return d.fields.Second }

func (d DateTime) Weekday() time.Weekday { return d.fields.Weekday }

func (d DateTime) DayOfYear() DayOfYearInfo {
	return DayOfYearInfo{
		DayOfYear:      d.fields.DayOfYear,
		DaysInYear:     d.fields.DaysInYear,
		DaysInPrevYear: d.fields.DaysInPrevYear,
	}
}

func (d DateTime) ZoneName() string {
	if d.fields.Zone == nil {
		return ""
	}
	return d.fields.Zone.Name
}

func (d DateTime) ZoneOffset() (int, bool) {
	if d.fields.Zone == nil {
		return 0, false
	}
	return d.fields.Zone.Offset, true
}

type eraStart struct {
	year  int
	month time.Month
	day   int
}

func (e eraStart) after(year int, month time.Month, day int) bool {
	if year != e.year {
		return e.year > year
	}
	if month != e.month {
		return e.month > month
	}
	return e.day > day
}

// Modern Japanese eras: Meiji, Taisho, Showa, Heisei, Reiwa.
var japaneseEras = []eraStart{
	{1868, time.September, 8},
	{1912, time.July, 30},
	{1926, time.December, 25},
	{1989, time.January, 8},
	{2019, time.May, 1},
}

const buddhistEraOffset = 543

// FromTime converts t, in its own location, into a DateTime of calendar c.
// Japanese dates before Meiji are rejected.
func FromTime(t time.Time, c Calendar) (DateTime, error) {
	year, month, day := t.Date()
	name, offset := t.Zone()

	fields := DateTimeFields{
		Calendar:       c,
		Year:           year,
		Month:          int(month) - 1,
		Day:            day,
		DayOfYear:      t.YearDay(),
		DaysInYear:     daysInGregorianYear(year),
		DaysInPrevYear: daysInGregorianYear(year - 1),
		Weekday:        t.Weekday(),
		Hour:           t.Hour(),
		Minute:         t.Minute(),
		Second:         t.Second(),
		Zone:           &Zone{Name: name, Offset: offset},
	}

	switch c {
	case Gregorian:
		fields.Era = 1
		if year <= 0 {
			fields.Era = 0
			fields.Year = 1 - year
		}
	case ISO:
	case Buddhist:
		fields.Year = year + buddhistEraOffset
	case Japanese:
		era := -1
		for i, start := range japaneseEras {
			if start.after(year, month, day) {
				break
			}
			era = i
		}
		if era < 0 {
			return DateTime{}, fmt.Errorf("%w: %s predates the supported japanese eras", ErrInvalidOptions, t.Format(time.DateOnly))
		}
		fields.Era = era
		fields.Year = year - japaneseEras[era].year + 1
	default:
		return DateTime{}, fmt.Errorf("%w: calendar %s", ErrInvalidOptions, c)
	}

	return DateTime{fields: fields}, nil
}

func daysInGregorianYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}
