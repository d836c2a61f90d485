package main

import (
	"fmt"
	"os"
	_ "time/tzdata"
)

const usage = "Usage: routinecal (login|template|add|list|show|toggle|delete|sync|desync|cleanup|export|stats|share)"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "login":
		login()
	case "template":
		printTemplate()
	case "add":
		addRoutine()
	case "list":
		listRoutines()
	case "show":
		showRoutine()
	case "toggle":
		toggleRoutine()
	case "delete":
		deleteRoutine()
	case "sync":
		syncRoutine()
	case "desync":
		desyncRoutine()
	case "cleanup":
		cleanupRoutines()
	case "export":
		exportRoutine()
	case "stats":
		showStats()
	case "share":
		shareRoutine()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println(usage)
		os.Exit(1)
	}
}
