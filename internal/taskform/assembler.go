// Package taskform turns raw task form input into validated tasks.
//
// Assembly is an ordered pipeline: name, project, employee, status, hours,
// dates, date range. The first failing step determines the returned error,
// so a form with several problems always reports the same one.
package taskform

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
)

// Form holds the raw strings typed or picked by the user.
type Form struct {
	Name      string
	Project   string
	Employee  string
	Status    string
	Hours     string
	StartDate string
	EndDate   string
}

// NewForm pre-fills a form for a new task: it starts today and ends after
// the configured default number of days.
func NewForm(today time.Time, s domain.Settings) Form {
	return Form{
		Status:    domain.StatusNew.Title(),
		StartDate: FormatDate(Day(today)),
		EndDate:   FormatDate(DefaultEndDate(today, s)),
	}
}

// FormFromTask pre-fills a form with an existing task's values.
func FormFromTask(t domain.Task) Form {
	return Form{
		Name:      t.Name,
		Project:   t.Project.Name,
		Employee:  t.Employee.FullName(),
		Status:    t.Status.Title(),
		Hours:     strconv.Itoa(t.RequiredHours),
		StartDate: FormatDate(t.StartDate),
		EndDate:   FormatDate(t.EndDate),
	}
}

// Assemble validates f against refs and builds a new task. The returned
// task has no ID; the server assigns one on create.
func Assemble(f Form, refs References) (domain.Task, error) {
	return assemble(domain.Task{}, f, refs)
}

// AssembleEdit validates f against refs and returns a copy of original
// with the form's fields applied. Identity fields are preserved.
func AssembleEdit(original domain.Task, f Form, refs References) (domain.Task, error) {
	return assemble(original, f, refs)
}

func assemble(base domain.Task, f Form, refs References) (domain.Task, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return domain.Task{}, fieldErr(FieldName, "", ErrEmptyName)
	}

	// Picker values are matched exactly after trimming surrounding space.
	project, ok := FindProject(refs.Projects, strings.TrimSpace(f.Project))
	if !ok {
		return domain.Task{}, fieldErr(FieldProject, f.Project, ErrFieldNotFound)
	}

	employee, ok := FindEmployee(refs.Employees, strings.TrimSpace(f.Employee))
	if !ok {
		return domain.Task{}, fieldErr(FieldEmployee, f.Employee, ErrFieldNotFound)
	}

	status, ok := StatusByTitle(strings.TrimSpace(f.Status))
	if !ok {
		return domain.Task{}, fieldErr(FieldStatus, f.Status, ErrFieldNotFound)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(f.Hours))
	if err != nil || hours <= 0 {
		return domain.Task{}, fieldErr(FieldHours, f.Hours, ErrInvalidNumber)
	}

	start, err := ParseDate(f.StartDate)
	if err != nil {
		return domain.Task{}, fieldErr(FieldStartDate, f.StartDate, ErrInvalidDate)
	}
	end, err := ParseDate(f.EndDate)
	if err != nil {
		return domain.Task{}, fieldErr(FieldEndDate, f.EndDate, ErrInvalidDate)
	}
	if end.Before(start) {
		return domain.Task{}, fieldErr(FieldEndDate, f.EndDate, ErrInvalidDateRange)
	}

	t := base
	t.Name = name
	t.Project = project
	t.Employee = employee
	t.Status = status
	t.RequiredHours = hours
	t.StartDate = start
	t.EndDate = end
	return t, nil
}
