package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

func listRoutines() {
	status := StatusAll
	descending := false
	for _, arg := range os.Args[2:] {
		switch arg {
		case "--desc":
			descending = true
		case string(StatusAll), string(StatusActive), string(StatusPast), string(StatusFuture):
			status = RoutineStatus(arg)
		default:
			fmt.Println("Usage: routinecal list [all|active|past|future] [--desc]")
			os.Exit(1)
		}
	}

	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	routines, err := store.Load(context.Background())
	if err != nil {
		log.Fatalf("❌ Error loading routines: %v", err)
	}
	routines = SortRoutinesByDate(FilterRoutinesByStatus(routines, status, time.Now()), descending)

	fmt.Printf("📋 Routines (%s):\n", status)
	for _, r := range routines {
		marker := "🟢"
		if !r.IsActive {
			marker = "⏸️"
		}
		fmt.Printf("  %s %d %s (%s, %s → %s) - %d tasks, %s/day\n",
			marker, r.ID, r.Name, r.Recurrence, r.StartDate, r.EndDate, len(r.Tasks), TotalDuration(r.Tasks))
	}
}

func showRoutine() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: routinecal show <routine-id>")
		os.Exit(1)
	}
	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	r := mustFindRoutine(store, os.Args[2])
	fmt.Printf("📅 %s\n", r.Name)
	if r.Description != "" {
		fmt.Printf("  %s\n", r.Description)
	}
	fmt.Printf("  🔁 %s from %s to %s\n", r.Recurrence, r.StartDate, r.EndDate)
	fmt.Printf("  ⏳ %s/day\n", TotalDuration(r.Tasks))
	for _, t := range r.Tasks {
		days := make([]string, 0, len(t.DaysOfWeek))
		for _, d := range t.DaysOfWeek {
			days = append(days, string(d))
		}
		fmt.Printf("  ▪️ %s %s-%s [%s]\n", t.Title, t.StartTime, t.EndTime, strings.Join(days, ", "))
	}
	for _, c := range DetectConflicts(r.Tasks) {
		fmt.Printf("  ⚠️ %s\n", c.Message)
	}

	events, err := store.SyncedEvents(context.Background(), r.ID)
	if err != nil {
		log.Fatalf("❌ Error loading synced events: %v", err)
	}
	if len(events) > 0 {
		fmt.Printf("  🔗 %d events synced to %s\n", len(events), CalendarURL(events[0].CalendarID))
	}
}

func showStats() {
	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	routines, err := store.Load(context.Background())
	if err != nil {
		log.Fatalf("❌ Error loading routines: %v", err)
	}
	stats := ComputeStats(routines)
	fmt.Println("📊 Statistics:")
	fmt.Printf("  Routines: %d (%d active)\n", stats.Routines, stats.ActiveRoutines)
	fmt.Printf("  Tasks in active routines: %d\n", stats.TotalTasks)
	fmt.Printf("  Time allocated per day: %s\n", stats.TotalDuration)
}

func shareRoutine() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: routinecal share <routine-id>")
		os.Exit(1)
	}
	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	fmt.Println(ShareText(mustFindRoutine(store, os.Args[2])))
}
