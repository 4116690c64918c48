package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRefs(t *testing.T, db *sql.DB) (*domain.Project, *domain.Employee) {
	t.Helper()
	ctx := context.Background()
	proj := testutil.NewTestProject("Alpha")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))
	emp := testutil.NewTestEmployee("Doe", "Jane")
	require.NoError(t, NewSQLiteEmployeeRepo(db).Create(ctx, emp))
	return proj, emp
}

func TestTaskRepo_CreateAndGetByID_JoinsReferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()
	proj, emp := seedRefs(t, db)

	task := testutil.NewTestTask("Fix bug", proj, emp,
		testutil.WithHours(3),
		testutil.WithStatus(domain.StatusInProgress),
		testutil.WithDates(testutil.Date(2023, time.January, 1), testutil.Date(2023, time.January, 2)),
	)
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, fetched)
	assert.Equal(t, "Alpha", fetched.Project.Name)
	assert.Equal(t, "Doe Jane", fetched.Employee.FullName())
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_ListAndListByProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()
	proj, emp := seedRefs(t, db)

	other := testutil.NewTestProject("Beta")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, other))

	late := testutil.NewTestTask("Late", proj, emp,
		testutil.WithDates(testutil.Date(2023, time.March, 1), testutil.Date(2023, time.March, 2)))
	early := testutil.NewTestTask("Early", proj, emp,
		testutil.WithDates(testutil.Date(2023, time.January, 1), testutil.Date(2023, time.January, 5)))
	elsewhere := testutil.NewTestTask("Elsewhere", other, emp)
	for _, task := range []*domain.Task{late, early, elsewhere} {
		require.NoError(t, repo.Create(ctx, task))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Early", all[0].Name)

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	byProject, err := repo.ListByProject(ctx, proj.ID, 0)
	require.NoError(t, err)
	require.Len(t, byProject, 2)
	assert.Equal(t, "Early", byProject[0].Name)
	assert.Equal(t, "Late", byProject[1].Name)
}

func TestTaskRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()
	proj, emp := seedRefs(t, db)

	task := testutil.NewTestTask("Draft", proj, emp)
	require.NoError(t, repo.Create(ctx, task))

	task.Name = "Final"
	task.Status = domain.StatusDone
	task.RequiredHours = 12
	require.NoError(t, repo.Update(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", fetched.Name)
	assert.Equal(t, domain.StatusDone, fetched.Status)
	assert.Equal(t, 12, fetched.RequiredHours)

	require.NoError(t, repo.Delete(ctx, task.ID))
	assert.ErrorIs(t, repo.Delete(ctx, task.ID), ErrNotFound)
}

func TestTaskRepo_Create_RejectsUnknownProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	_, emp := seedRefs(t, db)

	ghost := testutil.NewTestProject("Ghost")
	err := repo.Create(context.Background(), testutil.NewTestTask("Orphan", ghost, emp))
	assert.Error(t, err)
}

func TestTaskRepo_ProjectDeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()
	proj, emp := seedRefs(t, db)

	task := testutil.NewTestTask("Doomed", proj, emp)
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, NewSQLiteProjectRepo(db).Delete(ctx, proj.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
