package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/trainingtask/internal/db"
	"github.com/alexanderramin/trainingtask/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskSelect = `SELECT t.id, t.name, t.status, t.required_hours, t.start_date, t.end_date,
		p.id, p.name, p.description,
		e.id, e.last_name, e.first_name, e.patronymic, e.position
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	JOIN employees e ON e.id = t.employee_id`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	now := nowUTC()
	query := `INSERT INTO tasks (id, name, project_id, employee_id, status, required_hours,
		start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Project.ID,
		t.Employee.ID,
		string(t.Status),
		t.RequiredHours,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, taskSelect+` WHERE t.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, limit int) ([]*domain.Task, error) {
	query := taskSelect + ` ORDER BY t.start_date, t.name` + limitClause(limit)
	return r.queryTasks(ctx, query)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Task, error) {
	query := taskSelect + ` WHERE t.project_id = ? ORDER BY t.start_date, t.name` + limitClause(limit)
	return r.queryTasks(ctx, query, projectID)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET name = ?, project_id = ?, employee_id = ?, status = ?, required_hours = ?,
		start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Project.ID,
		t.Employee.ID,
		string(t.Status),
		t.RequiredHours,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		nowUTC(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return checkAffected(res, "task "+t.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return checkAffected(res, "task "+id)
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var status, start, end string
	err := row.Scan(
		&t.ID, &t.Name, &status, &t.RequiredHours, &start, &end,
		&t.Project.ID, &t.Project.Name, &t.Project.Description,
		&t.Employee.ID, &t.Employee.LastName, &t.Employee.FirstName,
		&t.Employee.Patronymic, &t.Employee.Position,
	)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TaskStatus(status)

	var parseErr error
	t.StartDate, parseErr = time.Parse(dateLayout, start)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	t.EndDate, parseErr = time.Parse(dateLayout, end)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	return &t, nil
}
