package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/trainingtask/internal/db"
	"github.com/alexanderramin/trainingtask/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	query := `SELECT url, max_records, max_days FROM user_settings WHERE id = 'default'`
	var s domain.Settings
	err := r.db.QueryRowContext(ctx, query).Scan(&s.URL, &s.MaxRecords, &s.MaxDays)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Settings{}, fmt.Errorf("user settings: %w", ErrNotFound)
		}
		return domain.Settings{}, fmt.Errorf("scanning user settings: %w", err)
	}
	return s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s domain.Settings) error {
	query := `INSERT OR REPLACE INTO user_settings (id, url, max_records, max_days, updated_at)
		VALUES ('default', ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, s.URL, s.MaxRecords, s.MaxDays, nowUTC()); err != nil {
		return fmt.Errorf("upserting user settings: %w", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_settings WHERE id = 'default'`); err != nil {
		return fmt.Errorf("deleting user settings: %w", err)
	}
	return nil
}
