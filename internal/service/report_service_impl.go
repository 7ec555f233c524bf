package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pulse/internal/deadline"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/intelligence"
	"github.com/alexanderramin/pulse/internal/repository"
)

type reportService struct {
	reports     repository.ReportRepo
	summaries   repository.SummaryRepo
	resolver    *deadline.Resolver
	categorizer intelligence.CategorizeService
	summarizer  intelligence.SummaryService
	observer    UseCaseObserver
	clock       func() time.Time
}

// NewReportService wires the report lifecycle over its collaborators.
func NewReportService(
	reports repository.ReportRepo,
	summaries repository.SummaryRepo,
	resolver *deadline.Resolver,
	categorizer intelligence.CategorizeService,
	summarizer intelligence.SummaryService,
	observer UseCaseObserver,
) ReportService {
	return newReportService(reports, summaries, resolver, categorizer, summarizer, observer, time.Now)
}

func newReportService(
	reports repository.ReportRepo,
	summaries repository.SummaryRepo,
	resolver *deadline.Resolver,
	categorizer intelligence.CategorizeService,
	summarizer intelligence.SummaryService,
	observer UseCaseObserver,
	clock func() time.Time,
) *reportService {
	return &reportService{
		reports:     reports,
		summaries:   summaries,
		resolver:    resolver,
		categorizer: categorizer,
		summarizer:  summarizer,
		observer:    observerOrNoop(observer),
		clock:       clock,
	}
}

func (s *reportService) ActiveWindow(ctx context.Context) (deadline.WeekWindow, error) {
	cfg := s.resolver.Config(ctx)
	return deadline.ResolveActiveWeek(s.clock(), cfg), nil
}

func (s *reportService) WindowForWeek(ctx context.Context, weekEnding time.Time) (deadline.WeekWindow, error) {
	cfg := s.resolver.Config(ctx)
	return deadline.ResolveWeekWindowForDate(weekEnding, s.clock(), cfg), nil
}

func (s *reportService) GetOrCreateDraft(ctx context.Context, user *domain.StaffMember, weekEnding time.Time) (*domain.Report, error) {
	stored, err := s.getStored(ctx, user.ID, weekEnding)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		if stored.Status == domain.StatusFinalized {
			return nil, ErrAlreadyFinalized
		}
		return stored, nil
	}

	if err := s.guardWeekOpen(ctx, weekEnding); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	rep := &domain.Report{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		TeamMember:      user.DisplayName(),
		WeekEnding:      weekEnding,
		Status:          domain.StatusDraft,
		Body:            domain.NewEmptyBody(),
		WellBeingRating: domain.NeutralWellBeing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.reports.Upsert(ctx, rep); err != nil {
		return nil, fmt.Errorf("creating draft: %w", err)
	}
	return rep, nil
}

func (s *reportService) SaveDraft(ctx context.Context, rep *domain.Report) error {
	start := s.clock()

	err := s.saveDraft(ctx, rep)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "report_save_draft",
		Duration: s.clock().Sub(start),
		Success:  err == nil,
		Err:      err,
		Fields:   map[string]any{"user_id": rep.UserID, "week": rep.WeekEnding.Format("2006-01-02")},
	})
	return err
}

func (s *reportService) saveDraft(ctx context.Context, rep *domain.Report) error {
	stored, err := s.getStored(ctx, rep.UserID, rep.WeekEnding)
	if err != nil {
		return err
	}

	if stored == nil {
		if err := s.guardWeekOpen(ctx, rep.WeekEnding); err != nil {
			return err
		}
		if rep.ID == "" {
			rep.ID = uuid.New().String()
		}
		rep.Status = domain.StatusDraft
		rep.CreatedAt = s.clock().UTC()
	} else {
		if stored.Status == domain.StatusFinalized {
			return ErrAlreadyFinalized
		}
		// An unlocked or admin-created report keeps that status across
		// draft saves; it carries the late-submission right.
		rep.ID = stored.ID
		rep.Status = stored.Status
		rep.CreatedAt = stored.CreatedAt
		rep.CreatedByAdmin = stored.CreatedByAdmin
		rep.AdminNote = stored.AdminNote
		rep.SubmittedAt = stored.SubmittedAt
	}

	rep.UpdatedAt = s.clock().UTC()
	if err := s.reports.Upsert(ctx, rep); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

func (s *reportService) Finalize(ctx context.Context, rep *domain.Report) (*FinalizeResult, error) {
	start := s.clock()

	res, err := s.finalize(ctx, rep)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "report_finalize",
		Duration: s.clock().Sub(start),
		Success:  err == nil,
		Err:      err,
		Fields:   map[string]any{"user_id": rep.UserID, "week": rep.WeekEnding.Format("2006-01-02")},
	})
	return res, err
}

func (s *reportService) finalize(ctx context.Context, rep *domain.Report) (*FinalizeResult, error) {
	stored, err := s.getStored(ctx, rep.UserID, rep.WeekEnding)
	if err != nil {
		return nil, err
	}

	effective := domain.StatusDraft
	if stored != nil {
		if stored.Status == domain.StatusFinalized {
			return nil, ErrAlreadyFinalized
		}
		effective = stored.Status
	} else if err := s.guardWeekOpen(ctx, rep.WeekEnding); err != nil {
		return nil, err
	}

	now := s.clock()
	cfg := s.resolver.Config(ctx)
	window := deadline.ResolveWeekWindowForDate(rep.WeekEnding, now, cfg)

	// A plain draft carries no late-submission right. Once the grace
	// period elapses only unlocked and admin-created reports may submit.
	if effective == domain.StatusDraft && window.SubmissionClosed(now) {
		return nil, ErrDeadlinePassed
	}

	items := rep.Body.Items()
	pairs, catsFellBack := s.categorizer.Categorize(ctx, items)

	cats := make(map[int]domain.ItemCategory, len(pairs))
	for id, p := range pairs {
		cats[id] = domain.ItemCategory{Ascend: p.Ascend, North: p.North}
	}
	rep.Body.ApplyCategories(cats)

	summary, summaryFellBack := s.summarizer.Individual(ctx, rep)
	rep.IndividualSummary = summary

	resubmission := stored != nil && stored.SubmittedAt != nil

	if stored != nil {
		rep.ID = stored.ID
		rep.CreatedAt = stored.CreatedAt
		rep.CreatedByAdmin = stored.CreatedByAdmin
		rep.AdminNote = stored.AdminNote
	} else if rep.ID == "" {
		rep.ID = uuid.New().String()
	}

	submittedAt := now.UTC()
	rep.Status = domain.StatusFinalized
	rep.SubmittedAt = &submittedAt
	rep.UpdatedAt = submittedAt

	if err := s.reports.Upsert(ctx, rep); err != nil {
		return nil, fmt.Errorf("finalizing report: %w", err)
	}

	// Resubmitting previously finalized content makes any aggregate
	// summary for the week stale. Delete it so a human regenerates it.
	if resubmission {
		if err := s.summaries.DeleteByWeek(ctx, rep.WeekEnding); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("invalidating weekly summary: %w", err)
		}
	}

	return &FinalizeResult{
		Report:                 rep,
		UsedFallbackCategories: catsFellBack,
		UsedFallbackSummary:    summaryFellBack,
	}, nil
}

func (s *reportService) Get(ctx context.Context, userID string, weekEnding time.Time) (*domain.Report, error) {
	return s.reports.GetByUserAndWeek(ctx, userID, weekEnding)
}

func (s *reportService) ListByUser(ctx context.Context, userID string) ([]*domain.Report, error) {
	return s.reports.ListByUser(ctx, userID)
}

// getStored reads the report behind a lifecycle guard with bounded
// retries; nil means no report exists for the pair.
func (s *reportService) getStored(ctx context.Context, userID string, weekEnding time.Time) (*domain.Report, error) {
	stored, err := withReadRetry(ctx, func(ctx context.Context) (*domain.Report, error) {
		return s.reports.GetByUserAndWeek(ctx, userID, weekEnding)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	return stored, nil
}

// guardWeekOpen rejects creating a report for a week after the active
// one. Past weeks stay open for backfill.
func (s *reportService) guardWeekOpen(ctx context.Context, weekEnding time.Time) error {
	cfg := s.resolver.Config(ctx)
	active := deadline.ResolveActiveWeek(s.clock(), cfg)
	// Calendar-date comparison; week-ending values may arrive with
	// differing zones or clock components.
	if weekEnding.Format("2006-01-02") > active.WeekEnding.Format("2006-01-02") {
		return ErrNotActiveWeek
	}
	return nil
}
