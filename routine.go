package main

import (
	"strings"
	"time"
)

type Recurrence string

const (
	RecurrenceOnce    Recurrence = "once"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Day is a weekday token as stored in routine documents.
type Day string

const (
	Sunday    Day = "domingo"
	Monday    Day = "segunda"
	Tuesday   Day = "terça"
	Wednesday Day = "quarta"
	Thursday  Day = "quinta"
	Friday    Day = "sexta"
	Saturday  Day = "sábado"
)

// AllDays is the canonical 7-day set, indexed by time.Weekday.
var AllDays = []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var dayAliases = map[string]Day{
	"domingo": Sunday, "sunday": Sunday, "sun": Sunday,
	"segunda": Monday, "monday": Monday, "mon": Monday,
	"terça": Tuesday, "terca": Tuesday, "tuesday": Tuesday, "tue": Tuesday,
	"quarta": Wednesday, "wednesday": Wednesday, "wed": Wednesday,
	"quinta": Thursday, "thursday": Thursday, "thu": Thursday,
	"sexta": Friday, "friday": Friday, "fri": Friday,
	"sábado": Saturday, "sabado": Saturday, "saturday": Saturday, "sat": Saturday,
}

// ParseDay normalizes a weekday token. The second result is false for
// tokens outside the canonical set.
func ParseDay(s string) (Day, bool) {
	d, ok := dayAliases[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// Weekday returns the time.Weekday for a canonical token, or -1.
func (d Day) Weekday() time.Weekday {
	for i, c := range AllDays {
		if c == d {
			return time.Weekday(i)
		}
	}
	return -1
}

func (d Day) Valid() bool {
	return d.Weekday() >= 0
}

type Task struct {
	ID          int64  `json:"id" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description,omitempty"`
	StartTime   string `json:"startTime" yaml:"startTime"`
	EndTime     string `json:"endTime" yaml:"endTime"`
	DaysOfWeek  []Day  `json:"daysOfWeek" yaml:"daysOfWeek"`
}

type Routine struct {
	ID          int64      `json:"id" yaml:"id,omitempty"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description,omitempty"`
	StartDate   string     `json:"startDate" yaml:"startDate"`
	EndDate     string     `json:"endDate" yaml:"endDate"`
	Recurrence  Recurrence `json:"recurrence" yaml:"recurrence"`
	Color       string     `json:"color" yaml:"color"`
	Tasks       []Task     `json:"tasks" yaml:"tasks"`
	IsActive    bool       `json:"isActive" yaml:"isActive"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt,omitempty"`
}

const defaultRoutineColor = "#667eea"

// NewRoutine returns an empty routine whose id is the creation time in
// milliseconds.
func NewRoutine(now time.Time) Routine {
	return Routine{
		ID:         now.UnixMilli(),
		Recurrence: RecurrenceDaily,
		Color:      defaultRoutineColor,
		Tasks:      []Task{},
		IsActive:   true,
		CreatedAt:  now,
	}
}

func NewTask(now time.Time) Task {
	days := make([]Day, len(AllDays))
	copy(days, AllDays)
	return Task{
		ID:         now.UnixMilli(),
		StartTime:  "09:00",
		EndTime:    "10:00",
		DaysOfWeek: days,
	}
}

// normalizeTasks rewrites day aliases to canonical tokens and gives tasks
// without an id one that is unique within the routine.
func (r *Routine) normalizeTasks() {
	var maxID int64
	for _, t := range r.Tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	for i := range r.Tasks {
		t := &r.Tasks[i]
		if t.ID == 0 {
			maxID++
			t.ID = maxID
		}
		for j, d := range t.DaysOfWeek {
			if canonical, ok := ParseDay(string(d)); ok {
				t.DaysOfWeek[j] = canonical
			}
		}
	}
}
