package taskform

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomRefs(rng *rand.Rand) References {
	var refs References
	for i := 0; i < rng.Intn(6)+1; i++ {
		refs.Projects = append(refs.Projects, domain.Project{
			ID:   fmt.Sprintf("p-%d", i),
			Name: fmt.Sprintf("Project %d", i),
		})
	}
	for i := 0; i < rng.Intn(6)+1; i++ {
		refs.Employees = append(refs.Employees, domain.Employee{
			ID:        fmt.Sprintf("e-%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			FirstName: fmt.Sprintf("First%d", i),
		})
	}
	return refs
}

func randomValidForm(rng *rand.Rand, refs References) (Form, domain.Project, domain.Employee, domain.TaskStatus) {
	p := refs.Projects[rng.Intn(len(refs.Projects))]
	e := refs.Employees[rng.Intn(len(refs.Employees))]
	statuses := domain.AllTaskStatuses()
	s := statuses[rng.Intn(len(statuses))]

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(2000))
	end := start.AddDate(0, 0, rng.Intn(60))

	return Form{
		Name:      fmt.Sprintf("Task %d", rng.Intn(1000)),
		Project:   p.Name,
		Employee:  e.FullName(),
		Status:    s.Title(),
		Hours:     fmt.Sprint(rng.Intn(200) + 1),
		StartDate: FormatDate(start),
		EndDate:   FormatDate(end),
	}, p, e, s
}

// Valid triples drawn from the reference lists always assemble and resolve
// to exactly the drawn entries.
func TestAssemble_Property_ValidTriplesResolveExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		refs := randomRefs(rng)
		f, p, e, s := randomValidForm(rng, refs)

		task, err := Assemble(f, refs)
		require.NoError(t, err, "trial %d: form %+v", trial, f)
		assert.Equal(t, p, task.Project, "trial %d", trial)
		assert.Equal(t, e, task.Employee, "trial %d", trial)
		assert.Equal(t, s, task.Status, "trial %d", trial)
	}
}

// An unknown project name is reported as such no matter what else is wrong.
func TestAssemble_Property_UnknownProjectAlwaysFieldNotFound(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	junk := []string{"", "x", "-1", "99/99/9999", "Done", "New"}

	for trial := 0; trial < 300; trial++ {
		refs := randomRefs(rng)
		f, _, _, _ := randomValidForm(rng, refs)
		f.Project = fmt.Sprintf("Missing %d", trial)
		if rng.Intn(2) == 0 {
			f.Employee = junk[rng.Intn(len(junk))]
		}
		if rng.Intn(2) == 0 {
			f.Status = junk[rng.Intn(len(junk))]
		}
		if rng.Intn(2) == 0 {
			f.Hours = junk[rng.Intn(len(junk))]
		}
		if rng.Intn(2) == 0 {
			f.EndDate = junk[rng.Intn(len(junk))]
		}

		_, err := Assemble(f, refs)
		requireFieldError(t, err, FieldProject, ErrFieldNotFound)
	}
}

// Reversed date pairs are always a range error when everything else is valid.
func TestAssemble_Property_ReversedDatesAlwaysRangeError(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for trial := 0; trial < 300; trial++ {
		refs := randomRefs(rng)
		f, _, _, _ := randomValidForm(rng, refs)

		start := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(500))
		end := start.AddDate(0, 0, -(rng.Intn(400) + 1))
		f.StartDate = FormatDate(start)
		f.EndDate = FormatDate(end)

		_, err := Assemble(f, refs)
		requireFieldError(t, err, FieldEndDate, ErrInvalidDateRange)
	}
}
