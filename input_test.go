package datetime

import (
	"errors"
	"testing"
	"time"
)

func TestFromTimeCalendars(t *testing.T) {
	cases := []struct {
		name     string
		value    time.Time
		calendar Calendar
		era      int
		year     int
	}{
		{name: "gregorian", value: sampleTime, calendar: Gregorian, era: 1, year: 2020},
		{name: "gregorian bc", value: time.Date(-43, time.March, 15, 0, 0, 0, 0, time.UTC), calendar: Gregorian, era: 0, year: 44},
		{name: "iso", value: sampleTime, calendar: ISO, era: 0, year: 2020},
		{name: "buddhist", value: sampleTime, calendar: Buddhist, era: 0, year: 2563},
		{name: "reiwa", value: sampleTime, calendar: Japanese, era: 4, year: 2},
		{name: "reiwa first day", value: time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC), calendar: Japanese, era: 4, year: 1},
		{name: "heisei last day", value: time.Date(2019, time.April, 30, 0, 0, 0, 0, time.UTC), calendar: Japanese, era: 3, year: 31},
		{name: "showa", value: time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), calendar: Japanese, era: 2, year: 45},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := mustFromTime(t, tc.value, tc.calendar)
			if input.Calendar() != tc.calendar || input.EraIndex() != tc.era || input.Year() != tc.year {
				t.Fatalf("FromTime = %s era %d year %d, want %s era %d year %d",
					input.Calendar(), input.EraIndex(), input.Year(), tc.calendar, tc.era, tc.year)
			}
		})
	}
}

func TestFromTimeFields(t *testing.T) {
	value := sampleTime.In(time.FixedZone("CEST", 2*3600))
	input := mustFromTime(t, value, Gregorian)

	if input.MonthIndex() != 8 || input.DayOfMonth() != 1 || input.Weekday() != time.Tuesday {
		t.Fatalf("date fields = %d/%d %s", input.MonthIndex(), input.DayOfMonth(), input.Weekday())
	}
	if input.Hour() != 14 || input.Minute() != 34 || input.Second() != 28 {
		t.Fatalf("time fields = %d:%d:%d", input.Hour(), input.Minute(), input.Second())
	}
	if info := input.DayOfYear(); info != (DayOfYearInfo{DayOfYear: 245, DaysInYear: 366, DaysInPrevYear: 365}) {
		t.Fatalf("DayOfYear = %+v", info)
	}
	if offset, ok := input.ZoneOffset(); !ok || offset != 7200 || input.ZoneName() != "CEST" {
		t.Fatalf("zone = %s %d %v", input.ZoneName(), offset, ok)
	}
}

func TestFromTimeRejects(t *testing.T) {
	if _, err := FromTime(time.Date(1850, time.January, 1, 0, 0, 0, 0, time.UTC), Japanese); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("pre-Meiji error = %v", err)
	}
	if _, err := FromTime(sampleTime, Calendar(42)); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("unknown calendar error = %v", err)
	}
}

func TestNewDateTimeValidation(t *testing.T) {
	valid := DateTimeFields{Year: 2020, Month: 8, Day: 1, Weekday: time.Tuesday, Hour: 23, Minute: 59, Second: 60}
	if _, err := NewDateTime(valid); err != nil {
		t.Fatalf("NewDateTime(valid): %v", err)
	}
	december := DateTimeFields{Year: 2020, Month: 11, Day: 31}
	if _, err := NewDateTime(december); err != nil {
		t.Fatalf("NewDateTime(december): %v", err)
	}

	for name, fields := range map[string]DateTimeFields{
		"month":          {Month: 12, Day: 1},
		"negative month": {Month: -1, Day: 1},
		"day":            {Month: 0, Day: 0},
		"hour":           {Month: 0, Day: 1, Hour: 24},
		"minute":         {Month: 0, Day: 1, Minute: -1},
	} {
		if _, err := NewDateTime(fields); !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("%s: error = %v, want ErrInvalidOptions", name, err)
		}
	}
}

func TestDateTimeFieldsAreCopied(t *testing.T) {
	zone := &Zone{Name: "JST", Offset: 9 * 3600}
	input := mustDateTime(t, DateTimeFields{Year: 2020, Month: 8, Day: 1, Zone: zone})

	zone.Name = "changed"
	if input.ZoneName() != "JST" {
		t.Fatalf("ZoneName = %q after caller mutation", input.ZoneName())
	}

	fields := input.Fields()
	fields.Zone.Offset = 0
	if offset, _ := input.ZoneOffset(); offset != 9*3600 {
		t.Fatalf("ZoneOffset = %d after Fields mutation", offset)
	}

	if _, ok := mustDateTime(t, DateTimeFields{Day: 1}).ZoneOffset(); ok {
		t.Fatal("ZoneOffset reported a zone for a zone-less input")
	}
}
