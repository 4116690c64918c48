package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_settings (
		id          TEXT PRIMARY KEY CHECK(id = 'default'),
		url         TEXT NOT NULL,
		max_records INTEGER NOT NULL CHECK(max_records > 0),
		max_days    INTEGER NOT NULL CHECK(max_days >= 0),
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`ALTER TABLE projects ADD COLUMN description TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS employees (
		id          TEXT PRIMARY KEY,
		last_name   TEXT NOT NULL,
		first_name  TEXT NOT NULL,
		patronymic  TEXT NOT NULL DEFAULT '',
		position    TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		employee_id    TEXT NOT NULL REFERENCES employees(id) ON DELETE RESTRICT,
		status         TEXT NOT NULL DEFAULT 'new'
		               CHECK(status IN ('new','in_progress','done','postponed')),
		required_hours INTEGER NOT NULL CHECK(required_hours > 0),
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL,
		CHECK(end_date >= start_date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_employee ON tasks(employee_id)`,
}
