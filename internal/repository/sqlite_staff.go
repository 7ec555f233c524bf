package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/domain"
)

const staffColumns = `id, email, full_name, title, role, active, created_at, updated_at`

// SQLiteStaffRepo implements StaffRepo using a SQLite database.
type SQLiteStaffRepo struct {
	db db.DBTX
}

// NewSQLiteStaffRepo creates a new SQLiteStaffRepo.
func NewSQLiteStaffRepo(conn db.DBTX) *SQLiteStaffRepo {
	return &SQLiteStaffRepo{db: conn}
}

func (r *SQLiteStaffRepo) Create(ctx context.Context, s *domain.StaffMember) error {
	query := `INSERT INTO staff (id, email, full_name, title, role, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Email,
		s.FullName,
		s.Title,
		string(s.Role),
		boolToInt(s.Active),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting staff member: %w", err)
	}
	return nil
}

func (r *SQLiteStaffRepo) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = ?`
	return r.scanStaff(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteStaffRepo) GetByEmail(ctx context.Context, email string) (*domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE email = ? COLLATE NOCASE`
	return r.scanStaff(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteStaffRepo) List(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY full_name, email`
	if activeOnly {
		query = `SELECT ` + staffColumns + ` FROM staff WHERE active = 1 ORDER BY full_name, email`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	var members []*domain.StaffMember
	for rows.Next() {
		var s domain.StaffMember
		var roleStr string
		var activeInt int
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&s.ID, &s.Email, &s.FullName, &s.Title, &roleStr, &activeInt, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning staff row: %w", err)
		}
		s.Role = domain.StaffRole(roleStr)
		s.Active = intToBool(activeInt)
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
		members = append(members, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff: %w", err)
	}
	return members, nil
}

func (r *SQLiteStaffRepo) Update(ctx context.Context, s *domain.StaffMember) error {
	query := `UPDATE staff SET email = ?, full_name = ?, title = ?, role = ?, active = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Email,
		s.FullName,
		s.Title,
		string(s.Role),
		boolToInt(s.Active),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating staff member: %w", err)
	}
	return nil
}

func (r *SQLiteStaffRepo) scanStaff(row *sql.Row) (*domain.StaffMember, error) {
	var s domain.StaffMember
	var roleStr string
	var activeInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(&s.ID, &s.Email, &s.FullName, &s.Title, &roleStr, &activeInt, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("staff member: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning staff member: %w", err)
	}

	s.Role = domain.StaffRole(roleStr)
	s.Active = intToBool(activeInt)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return &s, nil
}
