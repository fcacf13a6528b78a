// Package week computes Monday-start week windows for the weekly digest.
// All calendar math is anchored to Asia/Tokyo civil time: the audience and
// the reporting cadence are JST-based, and using the zone database instead
// of manual UTC+9 arithmetic keeps the math correct regardless of where
// the server runs.
package week

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the wire format for week-start dates.
const DateLayout = "2006-01-02"

var jst = mustLoadJST()

// JST returns the Asia/Tokyo location the package computes in.
func JST() *time.Location {
	return jst
}

func mustLoadJST() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		panic(fmt.Sprintf("week: load Asia/Tokyo: %v", err))
	}
	return loc
}

// timeNow is replaced in tests to pin "now".
var timeNow = time.Now

// Range is one Monday-through-Sunday week. Dates are civil days in JST;
// EndDate is inclusive. Year is the calendar year of the week's Monday,
// which near year boundaries can differ from the year of the date the
// range was computed from.
type Range struct {
	StartDate  time.Time `json:"-"`
	EndDate    time.Time `json:"-"`
	Year       int       `json:"year"`
	WeekNumber int       `json:"week_number"`
	Label      string    `json:"label"`
}

// Start returns the week's Monday formatted as yyyy-MM-dd.
func (r Range) Start() string { return r.StartDate.Format(DateLayout) }

// End returns the week's Sunday formatted as yyyy-MM-dd.
func (r Range) End() string { return r.EndDate.Format(DateLayout) }

// Adjacent is the navigation pair around a given week.
type Adjacent struct {
	Previous Range `json:"previous"`
	Next     Range `json:"next"`
}

// civilDay truncates t to its civil day in JST.
func civilDay(t time.Time) time.Time {
	t = t.In(jst)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, jst)
}

// StartOfWeek returns the Monday on or before t's civil day.
func StartOfWeek(t time.Time) time.Time {
	d := civilDay(t)
	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// EndOfWeek returns the Sunday on or after t's civil day.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// Of returns the week containing t.
func Of(t time.Time) Range {
	start := StartOfWeek(t)
	year := start.Year()
	num := weekNumber(start)
	return Range{
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 6),
		Year:       year,
		WeekNumber: num,
		Label:      fmt.Sprintf("#%d", num),
	}
}

// weekNumber is the Monday-start week index of monday within its calendar
// year: week 1 is the week containing January 1.
func weekNumber(monday time.Time) int {
	firstMonday := StartOfWeek(time.Date(monday.Year(), time.January, 1, 0, 0, 0, 0, jst))
	days := int(monday.Sub(firstMonday).Hours() / 24)
	return days/7 + 1
}

// Current returns the week containing "now" in JST.
func Current() Range {
	return Of(timeNow())
}

// ParseDate parses a strict yyyy-MM-dd string as a JST civil day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, jst)
	if err != nil {
		return time.Time{}, fmt.Errorf("week: parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t's JST civil day as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return civilDay(t).Format(DateLayout)
}

// AdjacentWeeks returns the weeks immediately before and after the week
// starting at weekStart (yyyy-MM-dd). Month and year boundaries are
// handled by plain day arithmetic on the parsed date.
func AdjacentWeeks(weekStart string) (Adjacent, error) {
	start, err := ParseDate(weekStart)
	if err != nil {
		return Adjacent{}, err
	}
	return Adjacent{
		Previous: Of(start.AddDate(0, 0, -7)),
		Next:     Of(start.AddDate(0, 0, 7)),
	}, nil
}

// IsFutureWeek reports whether the week starting at weekStart begins
// strictly after the current week's Monday in JST. Malformed input is an
// error; guard with IsValidDateString first.
func IsFutureWeek(weekStart string) (bool, error) {
	start, err := ParseDate(weekStart)
	if err != nil {
		return false, err
	}
	return start.After(StartOfWeek(timeNow())), nil
}

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDateString reports whether s is a yyyy-MM-dd string naming a
// real calendar date. It never returns an error: impossible dates such
// as 2025-13-01 or 2025-02-30 are simply false.
func IsValidDateString(s string) bool {
	if !dateShape.MatchString(s) {
		return false
	}
	_, err := time.ParseInLocation(DateLayout, s, jst)
	return err == nil
}
