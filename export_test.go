package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteICS(t *testing.T) {
	r := validRoutine()
	r.StartDate = "2024-01-01"
	r.EndDate = "2024-01-07"
	r.Tasks[0].Description = "Easy pace"

	var buf bytes.Buffer
	n, err := WriteICS(&buf, r, EventMapper{}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 events, got %d", n)
	}

	out := buf.String()
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("expected 2 VEVENT blocks, got %d:\n%s", got, out)
	}
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + icalProductID,
		"SUMMARY:Run",
		"DESCRIPTION:Easy pace",
		"TZID=America/Sao_Paulo",
		"20240101T070000",
		"20240103T080000",
		"DTSTAMP:20240101T000000Z",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestWriteICSInvalidRoutine(t *testing.T) {
	r := validRoutine()
	r.EndDate = "later"

	var buf bytes.Buffer
	if _, err := WriteICS(&buf, r, EventMapper{}, time.Now()); err == nil {
		t.Fatal("expected an error")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
}

func TestEventPath(t *testing.T) {
	if got := eventPath("/calendars/me/routines/", "abc"); got != "/calendars/me/routines/abc.ics" {
		t.Fatalf("unexpected path %s", got)
	}
	if got := eventPath("/calendars/me/routines", "abc"); got != "/calendars/me/routines/abc.ics" {
		t.Fatalf("unexpected path %s", got)
	}
}
