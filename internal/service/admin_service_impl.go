package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/deadline"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/repository"
)

const auditTimeLayout = "January 2, 2006 at 3:04 PM"

type adminService struct {
	reports  repository.ReportRepo
	staff    repository.StaffRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	clock    func() time.Time
}

// NewAdminService wires the administrative override operations.
func NewAdminService(
	reports repository.ReportRepo,
	staff repository.StaffRepo,
	uow db.UnitOfWork,
	observer UseCaseObserver,
) AdminService {
	return newAdminService(reports, staff, uow, observer, time.Now)
}

func newAdminService(
	reports repository.ReportRepo,
	staff repository.StaffRepo,
	uow db.UnitOfWork,
	observer UseCaseObserver,
	clock func() time.Time,
) *adminService {
	return &adminService{
		reports:  reports,
		staff:    staff,
		uow:      uow,
		observer: observerOrNoop(observer),
		clock:    clock,
	}
}

func (s *adminService) auditStamp() string {
	return s.clock().In(deadline.OrgZone()).Format(auditTimeLayout)
}

func (s *adminService) unlockNote() string {
	return fmt.Sprintf("Report unlocked by administrator for editing. Unlocked on %s.", s.auditStamp())
}

func (s *adminService) enableNote() string {
	return fmt.Sprintf("Submission enabled by administrator after deadline. Enabled on %s.", s.auditStamp())
}

func (s *adminService) adminCreatedNote() string {
	return fmt.Sprintf("Report created by administrator due to missed deadline. Created on %s.", s.auditStamp())
}

func (s *adminService) Unlock(ctx context.Context, reportID, adminID string) error {
	return s.observed(ctx, "admin_unlock", adminID, func() error {
		return s.reopen(ctx, s.reports, reportID, domain.StatusFinalized, s.unlockNote())
	})
}

func (s *adminService) EnableSubmission(ctx context.Context, reportID, adminID string) error {
	return s.observed(ctx, "admin_enable_submission", adminID, func() error {
		return s.reopen(ctx, s.reports, reportID, domain.StatusDraft, s.enableNote())
	})
}

// reopen moves a report from the given source status into the unlocked
// state. A report already unlocked is left alone, so repeated
// application is safe.
func (s *adminService) reopen(ctx context.Context, reports repository.ReportRepo, reportID string, from domain.ReportStatus, note string) error {
	rep, err := withReadRetry(ctx, func(ctx context.Context) (*domain.Report, error) {
		return reports.GetByID(ctx, reportID)
	})
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}

	switch rep.Status {
	case domain.StatusUnlocked:
		return nil
	case from:
		return reports.UpdateStatus(ctx, reportID, domain.StatusUnlocked, note)
	default:
		return fmt.Errorf("%w: cannot unlock %s report", ErrInvalidTransition, rep.Status)
	}
}

func (s *adminService) UnlockAll(ctx context.Context, weekEnding time.Time, adminID string) (int, error) {
	return s.reopenAll(ctx, "admin_unlock_all", weekEnding, adminID, domain.StatusFinalized, s.unlockNote())
}

func (s *adminService) EnableSubmissionAll(ctx context.Context, weekEnding time.Time, adminID string) (int, error) {
	return s.reopenAll(ctx, "admin_enable_submission_all", weekEnding, adminID, domain.StatusDraft, s.enableNote())
}

func (s *adminService) reopenAll(ctx context.Context, useCase string, weekEnding time.Time, adminID string, from domain.ReportStatus, note string) (int, error) {
	count := 0
	err := s.observed(ctx, useCase, adminID, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txReports := repository.NewSQLiteReportRepo(tx)
			reps, err := txReports.ListByWeekAndStatus(ctx, weekEnding, from)
			if err != nil {
				return fmt.Errorf("listing %s reports: %w", from, err)
			}
			for _, rep := range reps {
				if err := txReports.UpdateStatus(ctx, rep.ID, domain.StatusUnlocked, note); err != nil {
					return fmt.Errorf("unlocking report %s: %w", rep.ID, err)
				}
				count++
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *adminService) CreateAdminReport(ctx context.Context, userID string, weekEnding time.Time, adminID string) (*domain.Report, error) {
	var rep *domain.Report
	err := s.observed(ctx, "admin_create_report", adminID, func() error {
		var err error
		rep, err = s.createAdminReport(ctx, s.reports, s.staff, userID, weekEnding, adminID)
		return err
	})
	return rep, err
}

func (s *adminService) createAdminReport(ctx context.Context, reports repository.ReportRepo, staff repository.StaffRepo, userID string, weekEnding time.Time, adminID string) (*domain.Report, error) {
	existing, err := withReadRetry(ctx, func(ctx context.Context) (*domain.Report, error) {
		return reports.GetByUserAndWeek(ctx, userID, weekEnding)
	})
	if err == nil && existing != nil {
		return nil, ErrReportExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("checking for existing report: %w", err)
	}

	member, err := staff.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading staff member: %w", err)
	}

	now := s.clock().UTC()
	rep := &domain.Report{
		ID:              uuid.New().String(),
		UserID:          userID,
		TeamMember:      member.DisplayName(),
		WeekEnding:      weekEnding,
		Status:          domain.StatusAdminCreated,
		Body:            domain.NewEmptyBody(),
		WellBeingRating: domain.NeutralWellBeing,
		AdminNote:       s.adminCreatedNote(),
		CreatedByAdmin:  adminID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := reports.Upsert(ctx, rep); err != nil {
		return nil, fmt.Errorf("creating admin report: %w", err)
	}
	return rep, nil
}

func (s *adminService) CreateMissingReports(ctx context.Context, weekEnding time.Time, adminID string) (int, error) {
	count := 0
	err := s.observed(ctx, "admin_create_missing", adminID, func() error {
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txReports := repository.NewSQLiteReportRepo(tx)
			txStaff := repository.NewSQLiteStaffRepo(tx)

			members, err := txStaff.List(ctx, true)
			if err != nil {
				return fmt.Errorf("listing staff: %w", err)
			}
			for _, member := range members {
				_, err := s.createAdminReport(ctx, txReports, txStaff, member.ID, weekEnding, adminID)
				if errors.Is(err, ErrReportExists) {
					continue
				}
				if err != nil {
					return err
				}
				count++
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *adminService) observed(ctx context.Context, name, adminID string, fn func() error) error {
	start := s.clock()
	err := fn()
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     name,
		Duration: s.clock().Sub(start),
		Success:  err == nil,
		Err:      err,
		Fields:   map[string]any{"admin_id": adminID},
	})
	return err
}
