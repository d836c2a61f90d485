package main

import (
	"reflect"
	"slices"
	"testing"
)

func TestDetectConflictsOverlap(t *testing.T) {
	tasks := []Task{
		{Title: "Gym", StartTime: "07:00", EndTime: "08:30", DaysOfWeek: []Day{Monday, Wednesday, Friday}},
		{Title: "Study", StartTime: "08:00", EndTime: "09:00", DaysOfWeek: []Day{Friday, Wednesday}},
	}

	conflicts := DetectConflicts(tasks)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	c := conflicts[0]
	if c.Task1 != "Gym" || c.Task2 != "Study" {
		t.Fatalf("expected Gym/Study, got %s/%s", c.Task1, c.Task2)
	}
	if !slices.Equal(c.Days, []Day{Wednesday, Friday}) {
		t.Fatalf("expected days [quarta sexta], got %v", c.Days)
	}
	if c.Message != `"Gym" conflicts with "Study" on quarta, sexta` {
		t.Fatalf("unexpected message %q", c.Message)
	}
}

func TestDetectConflictsIsSymmetric(t *testing.T) {
	a := Task{Title: "A", StartTime: "09:00", EndTime: "10:00", DaysOfWeek: []Day{Saturday, Monday}}
	b := Task{Title: "B", StartTime: "09:30", EndTime: "11:00", DaysOfWeek: []Day{Monday, Saturday, Sunday}}

	ab := DetectConflicts([]Task{a, b})
	ba := DetectConflicts([]Task{b, a})
	if len(ab) != 1 || len(ba) != 1 {
		t.Fatalf("expected one conflict each way, got %d and %d", len(ab), len(ba))
	}
	if !reflect.DeepEqual(ab[0].Days, ba[0].Days) {
		t.Fatalf("expected the same days, got %v and %v", ab[0].Days, ba[0].Days)
	}
	pairAB := []string{ab[0].Task1, ab[0].Task2}
	pairBA := []string{ba[0].Task2, ba[0].Task1}
	if !slices.Equal(pairAB, pairBA) {
		t.Fatalf("expected the same pair, got %v and %v", pairAB, pairBA)
	}
}

func TestDetectConflictsDisjointDays(t *testing.T) {
	tasks := []Task{
		{Title: "A", StartTime: "09:00", EndTime: "12:00", DaysOfWeek: []Day{Monday, Tuesday}},
		{Title: "B", StartTime: "09:00", EndTime: "12:00", DaysOfWeek: []Day{Wednesday}},
	}
	if conflicts := DetectConflicts(tasks); len(conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %v", conflicts)
	}
}

func TestDetectConflictsTouchingTimes(t *testing.T) {
	tasks := []Task{
		{Title: "A", StartTime: "09:00", EndTime: "10:00", DaysOfWeek: AllDays},
		{Title: "B", StartTime: "10:00", EndTime: "11:00", DaysOfWeek: AllDays},
	}
	conflicts := DetectConflicts(tasks)
	if conflicts == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %v", conflicts)
	}
}

func TestDetectConflictsEveryPair(t *testing.T) {
	tasks := []Task{
		{Title: "A", StartTime: "09:00", EndTime: "12:00", DaysOfWeek: []Day{Monday}},
		{Title: "B", StartTime: "10:00", EndTime: "11:00", DaysOfWeek: []Day{Monday}},
		{Title: "C", StartTime: "10:30", EndTime: "13:00", DaysOfWeek: []Day{Monday}},
	}
	if conflicts := DetectConflicts(tasks); len(conflicts) != 3 {
		t.Fatalf("expected 3 conflicts, got %d", len(conflicts))
	}
}
