package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/db"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// Each named setting holds one opaque serialized value.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, name string) (string, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT setting_value FROM admin_settings WHERE setting_name = ?`, name)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("setting %q: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("reading setting %q: %w", name, err)
	}
	return value, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, name, value, updatedBy string) error {
	query := `INSERT INTO admin_settings (setting_name, setting_value, updated_by, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(setting_name) DO UPDATE SET
			setting_value = excluded.setting_value,
			updated_by = excluded.updated_by,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, name, value, updatedBy, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting setting %q: %w", name, err)
	}
	return nil
}
