package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"
	"github.com/google/uuid"
)

var errCalDAVCreateUnsupported = errors.New("creating calendars over CalDAV is not supported; create it on the server first")

type CalDAVProvider struct {
	client  *caldav.Client
	homeSet string
}

func NewCalDAVProvider(ctx context.Context, serverURL, homeSet, username, password string) (*CalDAVProvider, error) {
	baseURL, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid CalDAV server URL: %w", err)
	}

	var httpClient webdav.HTTPClient = http.DefaultClient
	if username != "" && password != "" {
		httpClient = webdav.HTTPClientWithBasicAuth(httpClient, username, password)
	}

	c, err := caldav.NewClient(httpClient, baseURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create CalDAV client: %w", err)
	}

	if homeSet == "" {
		homeSet = baseURL.Path
	}

	// Test connection
	if _, err := c.FindCalendars(ctx, homeSet); err != nil {
		return nil, fmt.Errorf("failed to connect to CalDAV server: %w", err)
	}

	return &CalDAVProvider{
		client:  c,
		homeSet: homeSet,
	}, nil
}

func (c *CalDAVProvider) ListCalendars(ctx context.Context) ([]RemoteCalendar, error) {
	calendars, err := c.client.FindCalendars(ctx, c.homeSet)
	if err != nil {
		return nil, fmt.Errorf("failed to find calendars: %w", err)
	}

	result := make([]RemoteCalendar, 0, len(calendars))
	for _, cal := range calendars {
		result = append(result, RemoteCalendar{ID: cal.Path, Summary: cal.Name})
	}
	return result, nil
}

func (c *CalDAVProvider) CreateCalendar(ctx context.Context, meta CalendarMetadata) (string, error) {
	return "", fmt.Errorf("%q: %w", meta.Summary, errCalDAVCreateUnsupported)
}

func (c *CalDAVProvider) InsertEvent(ctx context.Context, calendarID string, event EventPayload) (string, error) {
	eventUID := "routinecal-" + uuid.NewString()

	icalEvent, err := newICalEvent(event, eventUID, time.Now())
	if err != nil {
		return "", err
	}
	cal := newICalCalendar()
	cal.Children = append(cal.Children, icalEvent.Component)

	_, err = c.client.PutCalendarObject(ctx, eventPath(calendarID, eventUID), cal)
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	return eventUID, nil
}

func (c *CalDAVProvider) DeleteEvent(ctx context.Context, calendarID string, eventID string) error {
	// caldav.Client has no delete of its own; the embedded webdav client
	// removes the resource.
	err := c.client.Client.RemoveAll(ctx, eventPath(calendarID, eventID))
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func eventPath(calendarPath, eventUID string) string {
	return strings.TrimRight(calendarPath, "/") + "/" + eventUID + ".ics"
}
