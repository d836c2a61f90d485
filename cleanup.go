package main

import (
	"context"
	"fmt"
	"log"
)

// orphanedEvents returns synced events whose routine no longer exists.
func orphanedEvents(events []SyncedEvent, routines []Routine) []SyncedEvent {
	known := make(map[int64]bool, len(routines))
	for _, r := range routines {
		known[r.ID] = true
	}

	var orphans []SyncedEvent
	for _, e := range events {
		if !known[e.RoutineID] {
			orphans = append(orphans, e)
		}
	}
	return orphans
}

func cleanupRoutines() {
	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	ctx := context.Background()
	routines, err := store.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading routines: %v", err)
	}
	events, err := store.AllSyncedEvents(ctx)
	if err != nil {
		log.Fatalf("Error retrieving synced events: %v", err)
	}

	factory := NewCalendarFactory(config, store)
	orphans := eventsForProvider(orphanedEvents(events, routines), factory.Provider())
	if len(orphans) == 0 {
		fmt.Println("Nothing to clean up")
		return
	}

	removed, failed := removeSyncedEvents(ctx, connectDeleter(ctx, factory), store, orphans)
	fmt.Printf("✅ %d events of deleted routines removed, %d failed\n", removed, failed)
}
