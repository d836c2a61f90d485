package main

import (
	"context"
	"fmt"
	"time"
)

// CalendarClient is everything a sync needs from a calendar backend.
type CalendarClient interface {
	ListCalendars(ctx context.Context) ([]RemoteCalendar, error)
	CreateCalendar(ctx context.Context, meta CalendarMetadata) (string, error)
	InsertEvent(ctx context.Context, calendarID string, event EventPayload) (string, error)
}

// EventDeleter is implemented by clients that can remove events created by
// an earlier sync.
type EventDeleter interface {
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type RemoteCalendar struct {
	ID      string
	Summary string
}

type CalendarMetadata struct {
	Summary     string
	Description string
	TimeZone    string
}

// EventTime is a wall-clock time in an explicit zone, in the form the
// Google Calendar API accepts ("2006-01-02T15:04:05" + IANA zone).
type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

const eventDateTimeLayout = "2006-01-02T15:04:05"

// Time resolves the wall-clock value in its zone.
func (t EventTime) Time() (time.Time, error) {
	loc, err := time.LoadLocation(t.TimeZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load time zone %q: %w", t.TimeZone, err)
	}
	return time.ParseInLocation(eventDateTimeLayout, t.DateTime, loc)
}

type EventPayload struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
	ColorID     string    `json:"colorId"`
}
