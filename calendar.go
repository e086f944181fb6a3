package datetime

import (
	"fmt"
	"strings"
)

// Calendar identifies the calendar system a formatter and its inputs use.
type Calendar uint8

const (
	Gregorian Calendar = iota
	ISO
	Buddhist
	Japanese
)

var calendarIDs = map[Calendar]string{
	Gregorian: "gregory",
	ISO:       "iso8601",
	Buddhist:  "buddhist",
	Japanese:  "japanese",
}

// CLDR data directories name the gregorian calendar differently from BCP-47.
var calendarCLDRTypes = map[Calendar]string{
	Gregorian: "gregorian",
	ISO:       "gregorian",
	Buddhist:  "buddhist",
	Japanese:  "japanese",
}

// Calendars lists every supported calendar.
func Calendars() []Calendar {
	return []Calendar{Gregorian, ISO, Buddhist, Japanese}
}

// String returns the BCP-47 calendar id.
func (c Calendar) String() string {
	if id, ok := calendarIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("Calendar(%d)", uint8(c))
}

// CLDRType returns the calendar type attribute used in CLDR XML.
func (c Calendar) CLDRType() string {
	return calendarCLDRTypes[c]
}

// ownEras reports whether years count from eras other than the gregorian ones.
func (c Calendar) ownEras() bool {
	return c == Buddhist || c == Japanese
}

// ParseCalendar accepts BCP-47 ids and the CLDR "gregorian"/"iso" spellings.
func ParseCalendar(value string) (Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "gregory", "gregorian":
		return Gregorian, nil
	case "iso8601", "iso":
		return ISO, nil
	case "buddhist":
		return Buddhist, nil
	case "japanese":
		return Japanese, nil
	}
	return 0, fmt.Errorf("%w: unsupported calendar %q", ErrInvalidOptions, value)
}

func (c Calendar) MarshalText() ([]byte, error) {
	if _, ok := calendarIDs[c]; !ok {
		return nil, fmt.Errorf("%w: calendar %d", ErrInvalidOptions, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Calendar) UnmarshalText(text []byte) error {
	parsed, err := ParseCalendar(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
