package db

import (
	"database/sql"
	"fmt"
)

// migrations is the ordered list of schema statements. Statements are
// written to be re-runnable; Migrate executes all of them on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS staff (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE,
		full_name  TEXT NOT NULL DEFAULT '',
		title      TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT 'staff'
		           CHECK(role IN ('staff','supervisor','admin')),
		active     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS reports (
		id                       TEXT PRIMARY KEY,
		user_id                  TEXT NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
		team_member              TEXT NOT NULL DEFAULT '',
		week_ending_date         TEXT NOT NULL,
		status                   TEXT NOT NULL DEFAULT 'draft'
		                         CHECK(status IN ('draft','unlocked','admin_created','finalized')),
		report_body              TEXT NOT NULL DEFAULT '{}',
		professional_development TEXT NOT NULL DEFAULT '',
		key_topics_lookahead     TEXT NOT NULL DEFAULT '',
		personal_check_in        TEXT NOT NULL DEFAULT '',
		director_concerns        TEXT NOT NULL DEFAULT '',
		well_being_rating        INTEGER NOT NULL DEFAULT 3,
		individual_summary       TEXT NOT NULL DEFAULT '',
		admin_note               TEXT NOT NULL DEFAULT '',
		created_by_admin         TEXT NOT NULL DEFAULT '',
		submitted_at             TEXT,
		created_at               TEXT NOT NULL,
		updated_at               TEXT NOT NULL,
		UNIQUE(user_id, week_ending_date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reports_week ON reports(week_ending_date)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_week_status ON reports(week_ending_date, status)`,

	`CREATE TABLE IF NOT EXISTS weekly_summaries (
		id               TEXT PRIMARY KEY,
		week_ending_date TEXT NOT NULL UNIQUE,
		summary_text     TEXT NOT NULL DEFAULT '',
		reports_included INTEGER NOT NULL DEFAULT 0,
		generated_by     TEXT NOT NULL DEFAULT '',
		used_fallback    INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS admin_settings (
		setting_name  TEXT PRIMARY KEY,
		setting_value TEXT NOT NULL,
		updated_by    TEXT NOT NULL DEFAULT '',
		updated_at    TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
