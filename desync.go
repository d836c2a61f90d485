package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"google.golang.org/api/googleapi"
)

type syncedEventForgetter interface {
	ForgetSyncedEvent(ctx context.Context, calendarID, eventID string) error
}

// removeSyncedEvents deletes each event remotely and then forgets it. An
// event already gone from the calendar is forgotten as well.
func removeSyncedEvents(ctx context.Context, deleter EventDeleter, store syncedEventForgetter, events []SyncedEvent) (removed, failed int) {
	for _, e := range events {
		err := deleter.DeleteEvent(ctx, e.CalendarID, e.EventID)
		switch {
		case err == nil:
			printVerbosely(3, "  ✅ Event deleted: %s\n", e.EventID)
		case isEventGone(err):
			printVerbosely(3, "  ⚠️ Event not found in calendar: %s\n", e.EventID)
		default:
			log.Printf("❌ Error deleting event %s: %v", e.EventID, err)
			failed++
			continue
		}

		if err := store.ForgetSyncedEvent(ctx, e.CalendarID, e.EventID); err != nil {
			log.Printf("❌ Error deleting event from database: %v", err)
			failed++
			continue
		}
		removed++
	}
	return removed, failed
}

func isEventGone(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone
	}
	return strings.Contains(err.Error(), "404") || strings.Contains(strings.ToLower(err.Error()), "not found")
}

// eventsForProvider drops events recorded through another provider; the
// current client cannot reach them.
func eventsForProvider(events []SyncedEvent, provider string) []SyncedEvent {
	out := make([]SyncedEvent, 0, len(events))
	for _, e := range events {
		if e.Provider != provider {
			fmt.Printf("  ⚠️ Skipping event %s synced through %s\n", e.EventID, e.Provider)
			continue
		}
		out = append(out, e)
	}
	return out
}

func connectDeleter(ctx context.Context, factory *CalendarFactory) EventDeleter {
	client, err := factory.Client(ctx)
	if err != nil {
		log.Fatalf("Error connecting to the calendar: %v", err)
	}
	deleter, ok := client.(EventDeleter)
	if !ok {
		log.Fatalf("Error: provider %s cannot delete events", factory.Provider())
	}
	return deleter
}

func desyncRoutine() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: routinecal desync <routine-id>")
		os.Exit(1)
	}
	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	ctx := context.Background()
	routine := mustFindRoutine(store, os.Args[2])

	fmt.Printf("🚀 Starting desynchronization of %s...\n", routine.Name)

	factory := NewCalendarFactory(config, store)
	events, err := store.SyncedEvents(ctx, routine.ID)
	if err != nil {
		log.Fatalf("❌ Error retrieving synced events from database: %v", err)
	}
	events = eventsForProvider(events, factory.Provider())
	if len(events) == 0 {
		fmt.Println("Nothing to desync")
		return
	}

	removed, failed := removeSyncedEvents(ctx, connectDeleter(ctx, factory), store, events)
	fmt.Printf("✅ %d events removed, %d failed\n", removed, failed)
}
