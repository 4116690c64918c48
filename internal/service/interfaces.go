package service

import (
	"context"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/importer"
)

// SettingsSource yields the effective settings at the time of a call.
type SettingsSource interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
}

// TaskEditor opens create/edit sessions for the task form.
type TaskEditor interface {
	// Open starts a session. original is nil for a new task.
	Open(ctx context.Context, original *domain.Task) (*EditSession, error)
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id string) (domain.Task, error)
	Remove(ctx context.Context, id string) error
}

// DirectoryService manages the projects and employees tasks refer to.
type DirectoryService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	AddProject(ctx context.Context, p domain.Project) (domain.Project, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	AddEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)
}

// ImportService loads seed files straight into a task server database.
type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type ImportResult struct {
	ProjectCount  int
	EmployeeCount int
	TaskCount     int
}
