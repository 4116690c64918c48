package taskform

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleRefs() References {
	return References{
		Projects:  []domain.Project{{ID: "p-alpha", Name: "Alpha"}},
		Employees: []domain.Employee{{ID: "e-jane", LastName: "Jane", FirstName: "Doe"}},
	}
}

// validForm matches exampleRefs: "Jane Doe" is LastName "Jane", FirstName "Doe".
func validForm() Form {
	return Form{
		Name:      "Fix bug",
		Project:   "Alpha",
		Employee:  "Jane Doe",
		Status:    "New",
		Hours:     "3",
		StartDate: "01/01/2023",
		EndDate:   "02/01/2023",
	}
}

func requireFieldError(t *testing.T, err error, field Field, kind error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	var fe *FieldError
	require.True(t, errors.As(err, &fe), "expected *FieldError, got %T", err)
	assert.Equal(t, field, fe.Field)
}

func TestAssemble_Example(t *testing.T) {
	refs := exampleRefs()

	task, err := Assemble(validForm(), refs)
	require.NoError(t, err)

	assert.Equal(t, "Fix bug", task.Name)
	assert.Equal(t, refs.Projects[0], task.Project)
	assert.Equal(t, refs.Employees[0], task.Employee)
	assert.Equal(t, domain.StatusNew, task.Status)
	assert.Equal(t, 3, task.RequiredHours)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), task.StartDate)
	assert.Equal(t, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), task.EndDate)
	assert.Empty(t, task.ID)
	assert.NoError(t, (&task).Validate())
}

func TestAssemble_NegativeHours(t *testing.T) {
	f := validForm()
	f.Hours = "-1"

	_, err := Assemble(f, exampleRefs())
	requireFieldError(t, err, FieldHours, ErrInvalidNumber)
}

func TestAssemble_EachStepFails(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*Form)
		field Field
		kind  error
	}{
		{"empty name", func(f *Form) { f.Name = "  " }, FieldName, ErrEmptyName},
		{"unknown project", func(f *Form) { f.Project = "Beta" }, FieldProject, ErrFieldNotFound},
		{"project case differs", func(f *Form) { f.Project = "alpha" }, FieldProject, ErrFieldNotFound},
		{"unknown employee", func(f *Form) { f.Employee = "John Roe" }, FieldEmployee, ErrFieldNotFound},
		{"unknown status", func(f *Form) { f.Status = "Archived" }, FieldStatus, ErrFieldNotFound},
		{"hours not numeric", func(f *Form) { f.Hours = "three" }, FieldHours, ErrInvalidNumber},
		{"hours zero", func(f *Form) { f.Hours = "0" }, FieldHours, ErrInvalidNumber},
		{"hours fractional", func(f *Form) { f.Hours = "1.5" }, FieldHours, ErrInvalidNumber},
		{"start unparseable", func(f *Form) { f.StartDate = "2023-01-01" }, FieldStartDate, ErrInvalidDate},
		{"end unparseable", func(f *Form) { f.EndDate = "31/02/2023" }, FieldEndDate, ErrInvalidDate},
		{"end before start", func(f *Form) { f.EndDate = "31/12/2022" }, FieldEndDate, ErrInvalidDateRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.edit(&f)
			_, err := Assemble(f, exampleRefs())
			requireFieldError(t, err, tc.field, tc.kind)
		})
	}
}

func TestAssemble_SameDayRangeIsValid(t *testing.T) {
	f := validForm()
	f.EndDate = f.StartDate

	task, err := Assemble(f, exampleRefs())
	require.NoError(t, err)
	assert.Equal(t, task.StartDate, task.EndDate)
}

func TestAssemble_FirstFailureWins(t *testing.T) {
	f := Form{Project: "nope", Employee: "nope", Status: "nope", Hours: "x", StartDate: "x", EndDate: "x"}

	_, err := Assemble(f, exampleRefs())
	requireFieldError(t, err, FieldName, ErrEmptyName)

	f.Name = "Named"
	_, err = Assemble(f, exampleRefs())
	requireFieldError(t, err, FieldProject, ErrFieldNotFound)
}

func TestAssemble_EmptyReferenceLists(t *testing.T) {
	_, err := Assemble(validForm(), References{})
	requireFieldError(t, err, FieldProject, ErrFieldNotFound)
}

func TestAssemble_TrimsNameAndNumbers(t *testing.T) {
	f := validForm()
	f.Name = "  Fix bug  "
	f.Hours = " 12 "
	f.StartDate = " 01/01/2023"

	task, err := Assemble(f, exampleRefs())
	require.NoError(t, err)
	assert.Equal(t, "Fix bug", task.Name)
	assert.Equal(t, 12, task.RequiredHours)
}

func TestAssemble_TrimsPickerValues(t *testing.T) {
	refs := exampleRefs()
	f := validForm()
	f.Project = " Alpha"
	f.Employee = "Jane Doe  "
	f.Status = "\tIn progress "

	task, err := Assemble(f, refs)
	require.NoError(t, err)
	assert.Equal(t, refs.Projects[0], task.Project)
	assert.Equal(t, refs.Employees[0], task.Employee)
	assert.Equal(t, domain.StatusInProgress, task.Status)

	// Inner spacing and case still have to match exactly.
	f.Project = " al pha "
	_, err = Assemble(f, refs)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, " al pha ", fe.Value)
}

func TestAssembleEdit_PreservesIdentity(t *testing.T) {
	refs := exampleRefs()
	refs.Projects = append(refs.Projects, domain.Project{ID: "p-beta", Name: "Beta"})

	original, err := Assemble(validForm(), refs)
	require.NoError(t, err)
	original.ID = "task-42"

	f := FormFromTask(original)
	f.Project = "Beta"
	f.Status = "Done"
	f.Hours = "5"

	edited, err := AssembleEdit(original, f, refs)
	require.NoError(t, err)
	assert.Equal(t, "task-42", edited.ID)
	assert.Equal(t, "Beta", edited.Project.Name)
	assert.Equal(t, domain.StatusDone, edited.Status)
	assert.Equal(t, 5, edited.RequiredHours)

	// The original value is untouched.
	assert.Equal(t, "Alpha", original.Project.Name)
	assert.Equal(t, 3, original.RequiredHours)
}

func TestAssembleEdit_InvalidFormLeavesNoTask(t *testing.T) {
	original := domain.Task{ID: "task-1", Name: "Keep"}
	f := validForm()
	f.Hours = "-1"

	edited, err := AssembleEdit(original, f, exampleRefs())
	requireFieldError(t, err, FieldHours, ErrInvalidNumber)
	assert.Equal(t, domain.Task{}, edited)
}

func TestFormFromTask_RoundTrips(t *testing.T) {
	refs := exampleRefs()
	task, err := Assemble(validForm(), refs)
	require.NoError(t, err)

	assert.Equal(t, validForm(), FormFromTask(task))
}

func TestFieldError_Message(t *testing.T) {
	err := fieldErr(FieldHours, "-1", ErrInvalidNumber)
	assert.Equal(t, `hours "-1": not a positive integer`, err.Error())

	err = fieldErr(FieldName, "", ErrEmptyName)
	assert.Equal(t, "name: value is required", err.Error())
}
