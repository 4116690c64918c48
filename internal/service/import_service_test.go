package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/trainingtask/internal/db"
	"github.com/alexanderramin/trainingtask/internal/importer"
	"github.com/alexanderramin/trainingtask/internal/repository"
	"github.com/alexanderramin/trainingtask/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSchema() *importer.ImportSchema {
	return &importer.ImportSchema{
		Projects: []importer.ProjectImport{
			{Ref: "alpha", Name: "Alpha"},
			{Ref: "beta", Name: "Beta"},
		},
		Employees: []importer.EmployeeImport{
			{Ref: "jdoe", LastName: "Doe", FirstName: "Jane"},
		},
		Tasks: []importer.TaskImport{
			{Name: "One", ProjectRef: "alpha", EmployeeRef: "jdoe", RequiredHours: 2, StartDate: "2024-01-01", EndDate: "2024-01-01"},
			{Name: "Two", ProjectRef: "beta", EmployeeRef: "jdoe", Status: "done", RequiredHours: 5, StartDate: "2024-01-02", EndDate: "2024-01-05"},
		},
	}
}

// failingUoW runs the real transaction but fails the Nth write inside it.
type failingUoW struct {
	inner  db.UnitOfWork
	failOn int32
}

func (u failingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &testutil.FailOnNthExec{DBTX: tx, FailOn: u.failOn, Err: errors.New("disk full")})
	})
}

func TestImportService_ImportSchema(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	svc := NewImportService(testutil.NewTestUoW(database), obs)
	ctx := context.Background()

	result, err := svc.ImportSchema(ctx, seedSchema())
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{ProjectCount: 2, EmployeeCount: 1, TaskCount: 2}, result)

	tasks, err := repository.NewSQLiteTaskRepo(database).List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	byName := map[string]string{}
	for _, task := range tasks {
		byName[task.Name] = task.Project.Name
		assert.Equal(t, "Doe Jane", task.Employee.FullName())
	}
	assert.Equal(t, map[string]string{"One": "Alpha", "Two": "Beta"}, byName)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "import", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 2, obs.events[0].Fields["tasks"])
}

func TestImportService_ValidationFailsBeforeWriting(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	schema := seedSchema()
	schema.Tasks[0].ProjectRef = "gamma"
	schema.Tasks[1].RequiredHours = 0

	_, err := svc.ImportSchema(ctx, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), `"gamma"`)

	projects, err := repository.NewSQLiteProjectRepo(database).List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestImportService_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	// Fourth write is the first task insert.
	svc := NewImportService(failingUoW{inner: testutil.NewTestUoW(database), failOn: 4})
	ctx := context.Background()

	_, err := svc.ImportSchema(ctx, seedSchema())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `creating task "One"`)

	projects, err := repository.NewSQLiteProjectRepo(database).List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, projects)
	employees, err := repository.NewSQLiteEmployeeRepo(database).List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestImportService_ImportFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
projects:
  - {ref: p, name: Gamma}
employees:
  - {ref: e, last_name: Smith, first_name: Ann}
`), 0o644))

	result, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ProjectCount)
	assert.Equal(t, 0, result.TaskCount)

	_, err = svc.ImportFile(ctx, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
