package taskform

import "github.com/alexanderramin/trainingtask/internal/domain"

// References is the reference data a form is validated against.
type References struct {
	Projects  []domain.Project
	Employees []domain.Employee
}

// FindProject returns the first project whose name equals name exactly.
func FindProject(projects []domain.Project, name string) (domain.Project, bool) {
	for _, p := range projects {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Project{}, false
}

// FindEmployee returns the first employee whose full name equals name exactly.
func FindEmployee(employees []domain.Employee, name string) (domain.Employee, bool) {
	for _, e := range employees {
		if e.FullName() == name {
			return e, true
		}
	}
	return domain.Employee{}, false
}

// StatusByTitle returns the status whose display title equals title exactly.
func StatusByTitle(title string) (domain.TaskStatus, bool) {
	for _, s := range domain.AllTaskStatuses() {
		if s.Title() == title {
			return s, true
		}
	}
	return "", false
}

// ProjectNames lists the picker options for the project field.
func ProjectNames(projects []domain.Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}

// EmployeeNames lists the picker options for the employee field.
func EmployeeNames(employees []domain.Employee) []string {
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, e.FullName())
	}
	return names
}

// StatusTitles lists the picker options for the status field.
func StatusTitles() []string {
	statuses := domain.AllTaskStatuses()
	titles := make([]string, 0, len(statuses))
	for _, s := range statuses {
		titles = append(titles, s.Title())
	}
	return titles
}
