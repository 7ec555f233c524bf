package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

type ReportRepo interface {
	// Upsert inserts or replaces the report keyed by (user_id,
	// week_ending_date). The stored row's ID is preserved when a row
	// already exists for the pair; r.ID is updated to match.
	Upsert(ctx context.Context, r *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	GetByUserAndWeek(ctx context.Context, userID string, weekEnding time.Time) (*domain.Report, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Report, error)
	ListByWeek(ctx context.Context, weekEnding time.Time) ([]*domain.Report, error)
	ListByWeekAndStatus(ctx context.Context, weekEnding time.Time, status domain.ReportStatus) ([]*domain.Report, error)
	// UpdateStatus transitions a report's status and replaces its admin
	// note. It does not touch report content.
	UpdateStatus(ctx context.Context, id string, status domain.ReportStatus, adminNote string) error
	Delete(ctx context.Context, id string) error
}

type StaffRepo interface {
	Create(ctx context.Context, s *domain.StaffMember) error
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffMember, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error)
	Update(ctx context.Context, s *domain.StaffMember) error
}

type SummaryRepo interface {
	Upsert(ctx context.Context, s *domain.WeeklySummary) error
	GetByWeek(ctx context.Context, weekEnding time.Time) (*domain.WeeklySummary, error)
	DeleteByWeek(ctx context.Context, weekEnding time.Time) error
}

type SettingsRepo interface {
	Get(ctx context.Context, name string) (string, error)
	Upsert(ctx context.Context, name, value, updatedBy string) error
}
