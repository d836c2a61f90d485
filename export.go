package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const icalProductID = "-//bobuk//routinecal//EN"

func newICalCalendar() *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText("VERSION", "2.0")
	cal.Props.SetText("PRODID", icalProductID)
	return cal
}

// newICalEvent renders a payload as a VEVENT. Start and end carry their
// zone as a TZID parameter.
func newICalEvent(event EventPayload, uid string, stamp time.Time) (*ical.Event, error) {
	start, err := event.Start.Time()
	if err != nil {
		return nil, fmt.Errorf("event %q start: %w", event.Summary, err)
	}
	end, err := event.End.Time()
	if err != nil {
		return nil, fmt.Errorf("event %q end: %w", event.Summary, err)
	}

	icalEvent := ical.NewEvent()
	icalEvent.Props.SetText("UID", uid)
	icalEvent.Props.SetDateTime("DTSTAMP", stamp.UTC())
	icalEvent.Props.SetText("SUMMARY", event.Summary)
	if event.Description != "" {
		icalEvent.Props.SetText("DESCRIPTION", event.Description)
	}
	icalEvent.Props.SetDateTime("DTSTART", start)
	icalEvent.Props.SetDateTime("DTEND", end)
	icalEvent.Props.SetText("STATUS", "CONFIRMED")
	return icalEvent, nil
}

// WriteICS writes every event of r as one iCalendar document.
func WriteICS(w io.Writer, r Routine, mapper EventMapper, now time.Time) (int, error) {
	events, err := mapper.BuildEvents(r)
	if err != nil {
		return 0, err
	}

	cal := newICalCalendar()
	for _, event := range events {
		icalEvent, err := newICalEvent(event, uuid.NewString(), now)
		if err != nil {
			return 0, err
		}
		cal.Children = append(cal.Children, icalEvent.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return 0, fmt.Errorf("encode calendar: %w", err)
	}
	return len(events), nil
}

func exportRoutine() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: routinecal export <routine-id> <file.ics>")
		os.Exit(1)
	}
	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	routine := mustFindRoutine(store, os.Args[2])

	f, err := os.Create(os.Args[3])
	if err != nil {
		log.Fatalf("Error creating %s: %v", os.Args[3], err)
	}
	defer f.Close()

	mapper := EventMapper{TimeZone: config.General.TimeZone}
	n, err := WriteICS(f, routine, mapper, time.Now())
	if err != nil {
		log.Fatalf("Error exporting routine: %v", err)
	}
	fmt.Printf("✅ %d events written to %s\n", n, os.Args[3])
}
