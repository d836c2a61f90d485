package main

import (
	"fmt"
	"strings"
)

// Conflict reports two tasks that share a weekday and overlap in time.
type Conflict struct {
	Task1   string `json:"task1"`
	Task2   string `json:"task2"`
	Days    []Day  `json:"days"`
	Message string `json:"message"`
}

// DetectConflicts compares every pair of tasks. Ranges are open intervals:
// a task ending at 10:00 does not collide with one starting at 10:00.
func DetectConflicts(tasks []Task) []Conflict {
	conflicts := []Conflict{}

	for i := 0; i < len(tasks); i++ {
		for j := i + 1; j < len(tasks); j++ {
			t1, t2 := tasks[i], tasks[j]

			common := commonDays(t1.DaysOfWeek, t2.DaysOfWeek)
			if len(common) == 0 {
				continue
			}
			if !(t1.StartTime < t2.EndTime && t2.StartTime < t1.EndTime) {
				continue
			}

			names := make([]string, len(common))
			for k, d := range common {
				names[k] = string(d)
			}
			conflicts = append(conflicts, Conflict{
				Task1:   t1.Title,
				Task2:   t2.Title,
				Days:    common,
				Message: fmt.Sprintf("%q conflicts with %q on %s", t1.Title, t2.Title, strings.Join(names, ", ")),
			})
		}
	}

	return conflicts
}

// commonDays returns the intersection in canonical week order so the
// result does not depend on how either task lists its days.
func commonDays(a, b []Day) []Day {
	inA := make(map[Day]bool, len(a))
	for _, d := range a {
		inA[d] = true
	}
	inB := make(map[Day]bool, len(b))
	for _, d := range b {
		inB[d] = true
	}

	var out []Day
	for _, d := range AllDays {
		if inA[d] && inB[d] {
			out = append(out, d)
		}
	}
	return out
}
