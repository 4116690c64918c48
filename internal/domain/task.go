package domain

import (
	"fmt"
	"strings"
	"time"
)

// Task is a unit of work linked to exactly one project and one employee.
// Project and Employee are copies of the server-owned records the task
// was resolved against; edits produce a new Task rather than mutating one.
type Task struct {
	ID            string
	Name          string
	Project       Project
	Employee      Employee
	Status        TaskStatus
	RequiredHours int
	StartDate     time.Time
	EndDate       time.Time
}

// Validate checks the invariants every stored task must satisfy.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name is required")
	}
	if t.Project.ID == "" {
		return fmt.Errorf("task project is required")
	}
	if t.Employee.ID == "" {
		return fmt.Errorf("task employee is required")
	}
	if !t.Status.Valid() {
		return fmt.Errorf("unknown task status %q", t.Status)
	}
	if t.RequiredHours <= 0 {
		return fmt.Errorf("required hours must be positive, got %d", t.RequiredHours)
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			t.EndDate.Format("2006-01-02"), t.StartDate.Format("2006-01-02"))
	}
	return nil
}

// DurationDays is the inclusive number of calendar days the task spans.
func (t *Task) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}
