package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/google/uuid"
)

// Generated is a converted seed file, ready for persistence. Tasks carry
// copies of the project and employee they refer to.
type Generated struct {
	Projects  []*domain.Project
	Employees []*domain.Employee
	Tasks     []*domain.Task
}

// Convert assigns fresh IDs and resolves refs. Call ValidateImportSchema
// first; Convert only re-checks what it needs to build tasks.
func Convert(schema *ImportSchema) (*Generated, error) {
	out := &Generated{
		Projects:  make([]*domain.Project, 0, len(schema.Projects)),
		Employees: make([]*domain.Employee, 0, len(schema.Employees)),
		Tasks:     make([]*domain.Task, 0, len(schema.Tasks)),
	}

	projects := make(map[string]*domain.Project, len(schema.Projects))
	for _, p := range schema.Projects {
		project := &domain.Project{
			ID:          uuid.New().String(),
			Name:        strings.TrimSpace(p.Name),
			Description: p.Description,
		}
		projects[p.Ref] = project
		out.Projects = append(out.Projects, project)
	}

	employees := make(map[string]*domain.Employee, len(schema.Employees))
	for _, e := range schema.Employees {
		employee := &domain.Employee{
			ID:         uuid.New().String(),
			LastName:   strings.TrimSpace(e.LastName),
			FirstName:  strings.TrimSpace(e.FirstName),
			Patronymic: strings.TrimSpace(e.Patronymic),
			Position:   e.Position,
		}
		employees[e.Ref] = employee
		out.Employees = append(out.Employees, employee)
	}

	for i, t := range schema.Tasks {
		project, ok := projects[t.ProjectRef]
		if !ok {
			return nil, fmt.Errorf("tasks[%d]: unknown project_ref %q", i, t.ProjectRef)
		}
		employee, ok := employees[t.EmployeeRef]
		if !ok {
			return nil, fmt.Errorf("tasks[%d]: unknown employee_ref %q", i, t.EmployeeRef)
		}
		start, err := parseDate("start_date", t.StartDate)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		end, err := parseDate("end_date", t.EndDate)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}

		status := domain.StatusNew
		if t.Status != "" {
			status = domain.TaskStatus(t.Status)
		}

		out.Tasks = append(out.Tasks, &domain.Task{
			ID:            uuid.New().String(),
			Name:          strings.TrimSpace(t.Name),
			Project:       *project,
			Employee:      *employee,
			Status:        status,
			RequiredHours: t.RequiredHours,
			StartDate:     start,
			EndDate:       end,
		})
	}
	return out, nil
}
