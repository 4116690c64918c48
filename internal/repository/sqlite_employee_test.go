package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/trainingtask/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepo_CRUD(t *testing.T) {
	repo := NewSQLiteEmployeeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	emp := testutil.NewTestEmployee("Doe", "Jane")
	emp.Patronymic = "Q"
	require.NoError(t, repo.Create(ctx, emp))

	fetched, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp, fetched)
	assert.Equal(t, "Doe Jane Q", fetched.FullName())

	emp.Position = "Lead"
	require.NoError(t, repo.Update(ctx, emp))
	fetched, err = repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lead", fetched.Position)

	require.NoError(t, repo.Delete(ctx, emp.ID))
	_, err = repo.GetByID(ctx, emp.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeRepo_List_OrderedByName(t *testing.T) {
	repo := NewSQLiteEmployeeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEmployee("Smith", "Adam")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEmployee("Doe", "John")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEmployee("Doe", "Jane")))

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Doe Jane", list[0].FullName())
	assert.Equal(t, "Doe John", list[1].FullName())
	assert.Equal(t, "Smith Adam", list[2].FullName())

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
