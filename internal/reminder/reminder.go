// Package reminder groups upcoming birthdays by the weekday they fall on.
package reminder

import (
	"strings"
	"time"
)

// DefaultWindowDays is the size of the look-ahead window, today included.
const DefaultWindowDays = 7

// Person is a named birthday. Only the month and day of Birthday are used;
// any year, including year 1, is a real date.
type Person struct {
	Name     string
	Birthday time.Time
}

// Group lists the people whose birthdays are reported on Weekday.
type Group struct {
	Weekday time.Weekday
	Names   []string
}

// Options controls how Upcoming selects and buckets birthdays.
type Options struct {
	// WindowDays is the number of days, starting today, that are searched.
	// Zero means DefaultWindowDays.
	WindowDays int
	// ShiftSunday reports birthdays falling on a Sunday under Monday.
	ShiftSunday bool
}

// DefaultOptions returns the seven-day window with the Sunday shift enabled.
func DefaultOptions() Options {
	return Options{WindowDays: DefaultWindowDays, ShiftSunday: true}
}

// Upcoming returns the birthdays occurring within the window that starts on
// today's date, grouped by reported weekday. Groups appear in the order their
// weekday is first encountered and names keep the order of people.
func Upcoming(people []Person, today time.Time, opts Options) []Group {
	window := opts.WindowDays
	if window <= 0 {
		window = DefaultWindowDays
	}
	start := midnight(today)

	var groups []Group
	index := make(map[time.Weekday]int)
	for _, p := range people {
		occ := NextOccurrence(p.Birthday, start)
		delta := DaysBetween(start, occ)
		if delta < 0 || delta >= window {
			continue
		}

		wd := occ.Weekday()
		if opts.ShiftSunday && wd == time.Sunday {
			wd = time.Monday
		}
		i, ok := index[wd]
		if !ok {
			i = len(groups)
			index[wd] = i
			groups = append(groups, Group{Weekday: wd})
		}
		groups[i].Names = append(groups[i].Names, p.Name)
	}
	return groups
}

// NextOccurrence returns the first anniversary of birthday on or after today.
// A 29 February birthday is observed on 28 February in common years.
func NextOccurrence(birthday, today time.Time) time.Time {
	start := midnight(today)
	occ := anniversary(birthday, start.Year())
	if occ.Before(start) {
		occ = anniversary(birthday, start.Year()+1)
	}
	return occ
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)).Hours() / 24)
}

func anniversary(birthday time.Time, year int) time.Time {
	_, m, d := birthday.Date()
	if m == time.February && d == 29 && !isLeap(year) {
		d = 28
	}
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// midnight drops the time of day, keeping the calendar date as seen in t's location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Format renders one "Weekday: name1, name2" line per group.
func Format(groups []Group) string {
	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = Line(g)
	}
	return strings.Join(lines, "\n")
}

// Line renders a single group.
func Line(g Group) string {
	return g.Weekday.String() + ": " + strings.Join(g.Names, ", ")
}
