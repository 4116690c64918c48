// Package contract defines the JSON bodies exchanged between the task
// server and its clients, and their mapping to domain types.
package contract

import (
	"fmt"
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
)

// DateLayout is the wire format for task dates.
const DateLayout = "2006-01-02"

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Employee struct {
	ID         string `json:"id"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	Patronymic string `json:"patronymic,omitempty"`
	Position   string `json:"position,omitempty"`
}

// Task carries nested project and employee records. On writes only their
// IDs are read; on reads they are fully populated.
type Task struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Project       Project  `json:"project"`
	Employee      Employee `json:"employee"`
	Status        string   `json:"status"`
	RequiredHours int      `json:"requiredHours"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func FromProject(p domain.Project) Project {
	return Project{ID: p.ID, Name: p.Name, Description: p.Description}
}

func (p Project) ToDomain() domain.Project {
	return domain.Project{ID: p.ID, Name: p.Name, Description: p.Description}
}

func FromEmployee(e domain.Employee) Employee {
	return Employee{
		ID:         e.ID,
		LastName:   e.LastName,
		FirstName:  e.FirstName,
		Patronymic: e.Patronymic,
		Position:   e.Position,
	}
}

func (e Employee) ToDomain() domain.Employee {
	return domain.Employee{
		ID:         e.ID,
		LastName:   e.LastName,
		FirstName:  e.FirstName,
		Patronymic: e.Patronymic,
		Position:   e.Position,
	}
}

func FromTask(t domain.Task) Task {
	return Task{
		ID:            t.ID,
		Name:          t.Name,
		Project:       FromProject(t.Project),
		Employee:      FromEmployee(t.Employee),
		Status:        string(t.Status),
		RequiredHours: t.RequiredHours,
		StartDate:     t.StartDate.Format(DateLayout),
		EndDate:       t.EndDate.Format(DateLayout),
	}
}

// ToDomain converts a wire task, rejecting unknown statuses and bad dates.
func (t Task) ToDomain() (domain.Task, error) {
	status := domain.TaskStatus(t.Status)
	if !status.Valid() {
		return domain.Task{}, fmt.Errorf("unknown task status %q", t.Status)
	}
	start, err := time.Parse(DateLayout, t.StartDate)
	if err != nil {
		return domain.Task{}, fmt.Errorf("invalid startDate %q: %w", t.StartDate, err)
	}
	end, err := time.Parse(DateLayout, t.EndDate)
	if err != nil {
		return domain.Task{}, fmt.Errorf("invalid endDate %q: %w", t.EndDate, err)
	}
	return domain.Task{
		ID:            t.ID,
		Name:          t.Name,
		Project:       t.Project.ToDomain(),
		Employee:      t.Employee.ToDomain(),
		Status:        status,
		RequiredHours: t.RequiredHours,
		StartDate:     start,
		EndDate:       end,
	}, nil
}
