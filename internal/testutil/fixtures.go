package testutil

import (
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/google/uuid"
)

// Date returns midnight UTC for the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func NewTestProject(name string) *domain.Project {
	return &domain.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: name + " project",
	}
}

func NewTestEmployee(lastName, firstName string) *domain.Employee {
	return &domain.Employee{
		ID:        uuid.New().String(),
		LastName:  lastName,
		FirstName: firstName,
		Position:  "Engineer",
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithHours(h int) TaskOption {
	return func(t *domain.Task) {
		t.RequiredHours = h
	}
}

func WithDates(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = start
		t.EndDate = end
	}
}

func NewTestTask(name string, project *domain.Project, employee *domain.Employee, opts ...TaskOption) *domain.Task {
	start := Date(2023, time.January, 1)
	t := &domain.Task{
		ID:            uuid.New().String(),
		Name:          name,
		Project:       *project,
		Employee:      *employee,
		Status:        domain.StatusNew,
		RequiredHours: 8,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 2),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
