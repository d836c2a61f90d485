package main

import (
	"fmt"
	"strconv"
	"strings"
)

// TotalDuration sums the time allocated by tasks. Overlapping tasks are
// counted twice: this is allocated time, not wall-clock span.
func TotalDuration(tasks []Task) string {
	total := 0
	for _, t := range tasks {
		total += clockMinutes(t.EndTime) - clockMinutes(t.StartTime)
	}
	return formatMinutes(total)
}

func formatMinutes(total int) string {
	hours, minutes := total/60, total%60
	switch {
	case total < 60:
		return fmt.Sprintf("%dmin", total)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dmin", hours, minutes)
	}
}

// clockMinutes converts "HH:MM" to minutes since midnight. Malformed parts
// count as zero.
func clockMinutes(clock string) int {
	h, m, _ := strings.Cut(clock, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}
