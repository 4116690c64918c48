package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateImportSchema checks the schema before conversion and returns
// every problem found, not just the first.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	projectRefs := make(map[string]bool)
	errs = append(errs, validateProjects(schema.Projects, projectRefs)...)

	employeeRefs := make(map[string]bool)
	errs = append(errs, validateEmployees(schema.Employees, employeeRefs)...)

	errs = append(errs, validateTasks(schema.Tasks, projectRefs, employeeRefs)...)

	if len(schema.Projects)+len(schema.Employees)+len(schema.Tasks) == 0 {
		errs = append(errs, fmt.Errorf("import file contains no records"))
	}
	return errs
}

func validateProjects(projects []ProjectImport, refs map[string]bool) []error {
	var errs []error
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		errs = append(errs, checkRef(prefix, p.Ref, refs)...)
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}
	return errs
}

func validateEmployees(employees []EmployeeImport, refs map[string]bool) []error {
	var errs []error
	for i, e := range employees {
		prefix := fmt.Sprintf("employees[%d]", i)
		errs = append(errs, checkRef(prefix, e.Ref, refs)...)
		if strings.TrimSpace(e.LastName) == "" {
			errs = append(errs, fmt.Errorf("%s.last_name is required", prefix))
		}
		if strings.TrimSpace(e.FirstName) == "" {
			errs = append(errs, fmt.Errorf("%s.first_name is required", prefix))
		}
	}
	return errs
}

func checkRef(prefix, ref string, seen map[string]bool) []error {
	if ref == "" {
		return []error{fmt.Errorf("%s.ref is required", prefix)}
	}
	if seen[ref] {
		return []error{fmt.Errorf("%s.ref %q is a duplicate", prefix, ref)}
	}
	seen[ref] = true
	return nil
}

func validateTasks(tasks []TaskImport, projectRefs, employeeRefs map[string]bool) []error {
	var errs []error
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !projectRefs[t.ProjectRef] {
			errs = append(errs, fmt.Errorf("%s.project_ref %q does not match any project", prefix, t.ProjectRef))
		}
		if !employeeRefs[t.EmployeeRef] {
			errs = append(errs, fmt.Errorf("%s.employee_ref %q does not match any employee", prefix, t.EmployeeRef))
		}
		if t.Status != "" && !domain.TaskStatus(t.Status).Valid() {
			errs = append(errs, fmt.Errorf("%s.status %q is not a known status", prefix, t.Status))
		}
		if t.RequiredHours <= 0 {
			errs = append(errs, fmt.Errorf("%s.required_hours must be positive, got %d", prefix, t.RequiredHours))
		}

		start, startErr := parseDate(prefix+".start_date", t.StartDate)
		if startErr != nil {
			errs = append(errs, startErr)
		}
		end, endErr := parseDate(prefix+".end_date", t.EndDate)
		if endErr != nil {
			errs = append(errs, endErr)
		}
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("%s.end_date %q is before start_date %q", prefix, t.EndDate, t.StartDate))
		}
	}
	return errs
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)
	}
	return d, nil
}
