package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DecodeRoutine reads a YAML routine document. Fields missing from the
// document keep the values of a fresh routine created at now.
func DecodeRoutine(r io.Reader, now time.Time) (Routine, error) {
	routine := NewRoutine(now)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&routine); err != nil {
		return Routine{}, fmt.Errorf("decode routine: %w", err)
	}

	if routine.ID == 0 {
		routine.ID = now.UnixMilli()
	}
	if routine.CreatedAt.IsZero() {
		routine.CreatedAt = now
	}
	if routine.Tasks == nil {
		routine.Tasks = []Task{}
	}
	routine.normalizeTasks()
	return routine, nil
}

func ReadRoutineFile(path string, now time.Time) (Routine, error) {
	f, err := os.Open(path)
	if err != nil {
		return Routine{}, err
	}
	defer f.Close()
	return DecodeRoutine(f, now)
}

// RoutineTemplate is a starting document for `add`.
func RoutineTemplate(now time.Time) ([]byte, error) {
	routine := NewRoutine(now)
	routine.ID = 0
	routine.CreatedAt = time.Time{}
	routine.Name = "Morning routine"
	routine.Recurrence = RecurrenceWeekly
	routine.StartDate = now.Format(dateLayout)
	routine.EndDate = now.AddDate(0, 1, 0).Format(dateLayout)

	task := NewTask(now)
	task.ID = 0
	task.Title = "Exercise"
	task.StartTime = "07:00"
	task.EndTime = "08:00"
	task.DaysOfWeek = []Day{Monday, Wednesday, Friday}
	routine.Tasks = []Task{task}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(routine); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
