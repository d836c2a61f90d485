package main

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

const defaultTimeZone = "America/Sao_Paulo"

// Google Calendar event color ids for the routine colors offered by the
// editor.
var colorPalette = map[string]string{
	"#667eea": "9",  // Blueberry
	"#764ba2": "3",  // Grape
	"#10b981": "10", // Basil
	"#f59e0b": "6",  // Tangerine
	"#ef4444": "11", // Tomato
}

const defaultColorID = "9"

func colorIDFor(color string) string {
	if id, ok := colorPalette[color]; ok {
		return id
	}
	return defaultColorID
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// EventMapper turns routines into calendar event payloads.
type EventMapper struct {
	// TimeZone is the IANA zone attached to every event.
	TimeZone string
}

// BuildEvents returns the payloads for every task of r. A "once" routine
// yields one event per task on its start date; every other recurrence
// yields one dated event per matching weekday between the start and end
// dates, inclusive.
func (m EventMapper) BuildEvents(r Routine) ([]EventPayload, error) {
	tz := m.TimeZone
	if tz == "" {
		tz = defaultTimeZone
	}

	start, err := parseUTCDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}

	var end time.Time
	if r.Recurrence != RecurrenceOnce {
		end, err = parseUTCDate(r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("end date: %w", err)
		}
	}

	colorID := colorIDFor(r.Color)
	events := make([]EventPayload, 0)

	for _, task := range r.Tasks {
		if r.Recurrence == RecurrenceOnce {
			events = append(events, buildEvent(task, r.StartDate, tz, colorID))
			continue
		}
		for _, date := range eventDates(start, end, task.DaysOfWeek) {
			events = append(events, buildEvent(task, date, tz, colorID))
		}
	}

	return events, nil
}

// eventDates enumerates the dates in [start, end] whose weekday is one of
// days. Both bounds must be UTC midnights; weekdays are read in UTC so the
// host zone cannot shift a date onto its neighbour.
func eventDates(start, end time.Time, days []Day) []string {
	byWeekday := make([]rrule.Weekday, 0, len(days))
	seen := make(map[time.Weekday]bool)
	for _, d := range days {
		wd := d.Weekday()
		if wd < 0 || seen[wd] {
			continue
		}
		seen[wd] = true
		byWeekday = append(byWeekday, rruleWeekdays[wd])
	}
	// An empty BYDAY would make the rule match every day.
	if len(byWeekday) == 0 || end.Before(start) {
		return nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   start,
		Until:     end,
		Byweekday: byWeekday,
	})
	if err != nil {
		return nil
	}

	occurrences := rule.All()
	dates := make([]string, 0, len(occurrences))
	for _, t := range occurrences {
		dates = append(dates, t.UTC().Format(dateLayout))
	}
	return dates
}

func buildEvent(task Task, date, tz, colorID string) EventPayload {
	return EventPayload{
		Summary:     task.Title,
		Description: task.Description,
		Start: EventTime{
			DateTime: date + "T" + task.StartTime + ":00",
			TimeZone: tz,
		},
		End: EventTime{
			DateTime: date + "T" + task.EndTime + ":00",
			TimeZone: tz,
		},
		ColorID: colorID,
	}
}

func parseUTCDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidRoutine, s)
	}
	return t, nil
}

// CalendarURL is the link that opens the synced calendar in a browser.
func CalendarURL(calendarID string) string {
	if calendarID == "" {
		return "https://calendar.google.com"
	}
	return "https://calendar.google.com/calendar/u/0/r?cid=" + calendarID
}
