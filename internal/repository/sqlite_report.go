package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/domain"
)

// reportColumns is the canonical SELECT column list for reports.
const reportColumns = `id, user_id, team_member, week_ending_date, status, report_body,
		professional_development, key_topics_lookahead, personal_check_in, director_concerns,
		well_being_rating, individual_summary, admin_note, created_by_admin,
		submitted_at, created_at, updated_at`

// SQLiteReportRepo implements ReportRepo over a DBTX, so it can run
// against either the database or an open transaction.
type SQLiteReportRepo struct {
	db db.DBTX
}

// NewSQLiteReportRepo creates a new SQLiteReportRepo.
func NewSQLiteReportRepo(conn db.DBTX) *SQLiteReportRepo {
	return &SQLiteReportRepo{db: conn}
}

func (r *SQLiteReportRepo) Upsert(ctx context.Context, rep *domain.Report) error {
	body, err := json.Marshal(rep.Body)
	if err != nil {
		return fmt.Errorf("serializing report body: %w", err)
	}

	query := `INSERT INTO reports (id, user_id, team_member, week_ending_date, status, report_body,
		professional_development, key_topics_lookahead, personal_check_in, director_concerns,
		well_being_rating, individual_summary, admin_note, created_by_admin,
		submitted_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, week_ending_date) DO UPDATE SET
			team_member = excluded.team_member,
			status = excluded.status,
			report_body = excluded.report_body,
			professional_development = excluded.professional_development,
			key_topics_lookahead = excluded.key_topics_lookahead,
			personal_check_in = excluded.personal_check_in,
			director_concerns = excluded.director_concerns,
			well_being_rating = excluded.well_being_rating,
			individual_summary = excluded.individual_summary,
			admin_note = excluded.admin_note,
			created_by_admin = excluded.created_by_admin,
			submitted_at = excluded.submitted_at,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		rep.ID,
		rep.UserID,
		rep.TeamMember,
		weekKey(rep.WeekEnding),
		string(rep.Status),
		string(body),
		rep.ProfessionalDevelopment,
		rep.KeyTopicsLookahead,
		rep.PersonalCheckIn,
		rep.DirectorConcerns,
		rep.WellBeingRating,
		rep.IndividualSummary,
		rep.AdminNote,
		rep.CreatedByAdmin,
		nullableTimeToString(rep.SubmittedAt, time.RFC3339),
		rep.CreatedAt.Format(time.RFC3339),
		rep.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting report: %w", err)
	}

	// The conflict path keeps the existing row id; reflect it back so
	// callers always hold the stored identity.
	row := r.db.QueryRowContext(ctx,
		`SELECT id FROM reports WHERE user_id = ? AND week_ending_date = ?`,
		rep.UserID, weekKey(rep.WeekEnding))
	if err := row.Scan(&rep.ID); err != nil {
		return fmt.Errorf("reading upserted report id: %w", err)
	}
	return nil
}

func (r *SQLiteReportRepo) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = ?`
	return r.scanReport(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteReportRepo) GetByUserAndWeek(ctx context.Context, userID string, weekEnding time.Time) (*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE user_id = ? AND week_ending_date = ?`
	return r.scanReport(r.db.QueryRowContext(ctx, query, userID, weekKey(weekEnding)))
}

func (r *SQLiteReportRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE user_id = ? ORDER BY week_ending_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reports by user: %w", err)
	}
	defer rows.Close()
	return r.scanReports(rows)
}

func (r *SQLiteReportRepo) ListByWeek(ctx context.Context, weekEnding time.Time) ([]*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE week_ending_date = ? ORDER BY team_member`
	rows, err := r.db.QueryContext(ctx, query, weekKey(weekEnding))
	if err != nil {
		return nil, fmt.Errorf("listing reports by week: %w", err)
	}
	defer rows.Close()
	return r.scanReports(rows)
}

func (r *SQLiteReportRepo) ListByWeekAndStatus(ctx context.Context, weekEnding time.Time, status domain.ReportStatus) ([]*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE week_ending_date = ? AND status = ? ORDER BY team_member`
	rows, err := r.db.QueryContext(ctx, query, weekKey(weekEnding), string(status))
	if err != nil {
		return nil, fmt.Errorf("listing reports by week and status: %w", err)
	}
	defer rows.Close()
	return r.scanReports(rows)
}

func (r *SQLiteReportRepo) UpdateStatus(ctx context.Context, id string, status domain.ReportStatus, adminNote string) error {
	query := `UPDATE reports SET status = ?, admin_note = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(status), adminNote, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating report status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking status update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteReportRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteReportRepo) scanReport(row *sql.Row) (*domain.Report, error) {
	rep, err := r.scanOne(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report: %w", ErrNotFound)
	}
	return rep, err
}

func (r *SQLiteReportRepo) scanReports(rows *sql.Rows) ([]*domain.Report, error) {
	var reports []*domain.Report
	for rows.Next() {
		rep, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return reports, nil
}

func (r *SQLiteReportRepo) scanOne(row rowScanner) (*domain.Report, error) {
	var rep domain.Report
	var statusStr, weekStr, bodyStr string
	var submittedAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&rep.ID, &rep.UserID, &rep.TeamMember, &weekStr, &statusStr, &bodyStr,
		&rep.ProfessionalDevelopment, &rep.KeyTopicsLookahead, &rep.PersonalCheckIn, &rep.DirectorConcerns,
		&rep.WellBeingRating, &rep.IndividualSummary, &rep.AdminNote, &rep.CreatedByAdmin,
		&submittedAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	rep.Status = domain.ReportStatus(statusStr)
	rep.SubmittedAt = parseNullableTime(submittedAtStr, time.RFC3339)

	rep.WeekEnding, err = time.Parse(dateLayout, weekStr)
	if err != nil {
		return nil, fmt.Errorf("parsing week_ending_date: %w", err)
	}
	if err := json.Unmarshal([]byte(bodyStr), &rep.Body); err != nil {
		return nil, fmt.Errorf("parsing report body: %w", err)
	}
	rep.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rep.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rep, nil
}
