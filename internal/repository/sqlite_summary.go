package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/domain"
)

// SQLiteSummaryRepo implements SummaryRepo using a SQLite database.
type SQLiteSummaryRepo struct {
	db db.DBTX
}

// NewSQLiteSummaryRepo creates a new SQLiteSummaryRepo.
func NewSQLiteSummaryRepo(conn db.DBTX) *SQLiteSummaryRepo {
	return &SQLiteSummaryRepo{db: conn}
}

func (r *SQLiteSummaryRepo) Upsert(ctx context.Context, s *domain.WeeklySummary) error {
	query := `INSERT INTO weekly_summaries
		(id, week_ending_date, summary_text, reports_included, generated_by, used_fallback, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(week_ending_date) DO UPDATE SET
			summary_text = excluded.summary_text,
			reports_included = excluded.reports_included,
			generated_by = excluded.generated_by,
			used_fallback = excluded.used_fallback,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		weekKey(s.WeekEnding),
		s.SummaryText,
		s.ReportsIncluded,
		s.GeneratedBy,
		boolToInt(s.UsedFallback),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting weekly summary: %w", err)
	}
	return nil
}

func (r *SQLiteSummaryRepo) GetByWeek(ctx context.Context, weekEnding time.Time) (*domain.WeeklySummary, error) {
	query := `SELECT id, week_ending_date, summary_text, reports_included, generated_by, used_fallback,
		created_at, updated_at
		FROM weekly_summaries WHERE week_ending_date = ?`
	row := r.db.QueryRowContext(ctx, query, weekKey(weekEnding))

	var s domain.WeeklySummary
	var weekStr string
	var fallbackInt int
	var createdAtStr, updatedAtStr string
	err := row.Scan(&s.ID, &weekStr, &s.SummaryText, &s.ReportsIncluded, &s.GeneratedBy, &fallbackInt,
		&createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("weekly summary: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning weekly summary: %w", err)
	}

	s.UsedFallback = intToBool(fallbackInt)
	s.WeekEnding, err = time.Parse(dateLayout, weekStr)
	if err != nil {
		return nil, fmt.Errorf("parsing week_ending_date: %w", err)
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return &s, nil
}

func (r *SQLiteSummaryRepo) DeleteByWeek(ctx context.Context, weekEnding time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM weekly_summaries WHERE week_ending_date = ?`, weekKey(weekEnding)); err != nil {
		return fmt.Errorf("deleting weekly summary: %w", err)
	}
	return nil
}
