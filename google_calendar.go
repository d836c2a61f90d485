package main

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type GoogleCalendarProvider struct {
	service *calendar.Service
}

// NewGoogleCalendarProvider authenticates every request with accessToken.
// Extra options are appended after the token source, so a test can point
// the service at another endpoint or HTTP client.
func NewGoogleCalendarProvider(ctx context.Context, accessToken string, opts ...option.ClientOption) (*GoogleCalendarProvider, error) {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	opts = append([]option.ClientOption{option.WithTokenSource(tokenSource)}, opts...)

	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleCalendarProvider{service: service}, nil
}

func (g *GoogleCalendarProvider) ListCalendars(ctx context.Context) ([]RemoteCalendar, error) {
	var result []RemoteCalendar
	err := g.service.CalendarList.List().Pages(ctx, func(page *calendar.CalendarList) error {
		for _, item := range page.Items {
			result = append(result, RemoteCalendar{ID: item.Id, Summary: item.Summary})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	return result, nil
}

func (g *GoogleCalendarProvider) CreateCalendar(ctx context.Context, meta CalendarMetadata) (string, error) {
	created, err := g.service.Calendars.Insert(&calendar.Calendar{
		Summary:     meta.Summary,
		Description: meta.Description,
		TimeZone:    meta.TimeZone,
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar: %w", err)
	}
	return created.Id, nil
}

func (g *GoogleCalendarProvider) InsertEvent(ctx context.Context, calendarID string, event EventPayload) (string, error) {
	googleEvent := &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.DateTime,
			TimeZone: event.Start.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.DateTime,
			TimeZone: event.End.TimeZone,
		},
		ColorId: event.ColorID,
	}

	createdEvent, err := g.service.Events.Insert(calendarID, googleEvent).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	return createdEvent.Id, nil
}

func (g *GoogleCalendarProvider) DeleteEvent(ctx context.Context, calendarID string, eventID string) error {
	err := g.service.Events.Delete(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
