package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

func deleteRoutine() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: routinecal delete <routine-id>")
		os.Exit(1)
	}
	id, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		log.Fatalf("Invalid routine id %q: %v", os.Args[2], err)
	}

	config := mustLoadConfig()
	store := mustOpenStore(config)
	defer store.Close()

	fmt.Print("⚠️  Are you sure you want to delete this routine? (y/N): ")
	var confirmation string
	fmt.Scanln(&confirmation)

	if confirmation != "y" && confirmation != "Y" {
		fmt.Println("❌ Routine deletion cancelled")
		return
	}

	if err := DeleteRoutine(context.Background(), store, id); err != nil {
		log.Fatalf("Error deleting routine: %v", err)
	}

	fmt.Printf("✅ Routine %d deleted successfully\n", id)
	fmt.Println("  Events it synced stay in the calendar until `routinecal cleanup` runs.")
}
