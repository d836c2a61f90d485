package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

func printTemplate() {
	data, err := RoutineTemplate(time.Now())
	if err != nil {
		log.Fatalf("Error rendering template: %v", err)
	}
	os.Stdout.Write(data)
}

func addRoutine() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: routinecal add <routine.yaml>")
		os.Exit(1)
	}
	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	fmt.Println("🚀 Starting routine addition...")
	routine, err := ReadRoutineFile(os.Args[2], time.Now())
	if err != nil {
		log.Fatalf("Error reading routine file: %v", err)
	}

	if problems := ValidateRoutine(routine); len(problems) > 0 {
		fmt.Println("❌ Routine is not valid:")
		for _, p := range problems {
			fmt.Printf("  ▪️ %s\n", p)
		}
		os.Exit(1)
	}

	// Overlapping tasks are allowed, only reported.
	for _, c := range DetectConflicts(routine.Tasks) {
		fmt.Printf("  ⚠️ %s\n", c.Message)
	}

	if err := SaveRoutine(context.Background(), store, routine); err != nil {
		log.Fatalf("Error saving routine: %v", err)
	}

	fmt.Printf("✅ Routine %q saved with id %d (%d tasks, %s/day)\n",
		routine.Name, routine.ID, len(routine.Tasks), TotalDuration(routine.Tasks))
}

func toggleRoutine() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: routinecal toggle <routine-id>")
		os.Exit(1)
	}
	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	routine := mustFindRoutine(store, os.Args[2])
	routine.IsActive = !routine.IsActive
	if err := SaveRoutine(context.Background(), store, routine); err != nil {
		log.Fatalf("Error saving routine: %v", err)
	}

	state := "paused"
	if routine.IsActive {
		state = "active"
	}
	fmt.Printf("✅ Routine %s is now %s\n", strings.TrimSpace(routine.Name), state)
}
