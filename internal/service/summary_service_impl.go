package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/intelligence"
	"github.com/alexanderramin/pulse/internal/mail"
	"github.com/alexanderramin/pulse/internal/repository"
)

type teamSummaryService struct {
	reports    repository.ReportRepo
	summaries  repository.SummaryRepo
	summarizer intelligence.SummaryService
	recognizer intelligence.RecognizeService
	sender     mail.Sender
	observer   UseCaseObserver
	clock      func() time.Time
}

// NewTeamSummaryService wires weekly team summary generation, staff
// recognition, and delivery.
func NewTeamSummaryService(
	reports repository.ReportRepo,
	summaries repository.SummaryRepo,
	summarizer intelligence.SummaryService,
	recognizer intelligence.RecognizeService,
	sender mail.Sender,
	observer UseCaseObserver,
) TeamSummaryService {
	return newTeamSummaryService(reports, summaries, summarizer, recognizer, sender, observer, time.Now)
}

func newTeamSummaryService(
	reports repository.ReportRepo,
	summaries repository.SummaryRepo,
	summarizer intelligence.SummaryService,
	recognizer intelligence.RecognizeService,
	sender mail.Sender,
	observer UseCaseObserver,
	clock func() time.Time,
) *teamSummaryService {
	return &teamSummaryService{
		reports:    reports,
		summaries:  summaries,
		summarizer: summarizer,
		recognizer: recognizer,
		sender:     sender,
		observer:   observerOrNoop(observer),
		clock:      clock,
	}
}

func (s *teamSummaryService) Generate(ctx context.Context, weekEnding time.Time, generatedBy string) (*domain.WeeklySummary, error) {
	start := s.clock()

	summary, err := s.generate(ctx, weekEnding, generatedBy)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "team_summary_generate",
		Duration: s.clock().Sub(start),
		Success:  err == nil,
		Err:      err,
		Fields:   map[string]any{"week": weekEnding.Format("2006-01-02")},
	})
	return summary, err
}

func (s *teamSummaryService) generate(ctx context.Context, weekEnding time.Time, generatedBy string) (*domain.WeeklySummary, error) {
	reps, err := s.reports.ListByWeekAndStatus(ctx, weekEnding, domain.StatusFinalized)
	if err != nil {
		return nil, fmt.Errorf("listing finalized reports: %w", err)
	}

	text, usedFallback := s.summarizer.Team(ctx, weekEnding, reps)

	now := s.clock().UTC()
	summary := &domain.WeeklySummary{
		ID:              uuid.New().String(),
		WeekEnding:      weekEnding,
		SummaryText:     text,
		ReportsIncluded: len(reps),
		GeneratedBy:     generatedBy,
		UsedFallback:    usedFallback,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.summaries.Upsert(ctx, summary); err != nil {
		return nil, fmt.Errorf("storing weekly summary: %w", err)
	}
	return summary, nil
}

func (s *teamSummaryService) Recognize(ctx context.Context, weekEnding time.Time) (*intelligence.WeeklyRecognition, bool, error) {
	start := s.clock()

	reps, err := s.reports.ListByWeekAndStatus(ctx, weekEnding, domain.StatusFinalized)
	var rec *intelligence.WeeklyRecognition
	var usedFallback bool
	if err != nil {
		err = fmt.Errorf("listing finalized reports: %w", err)
	} else {
		rec, usedFallback = s.recognizer.Weekly(ctx, weekEnding, reps)
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "team_recognition",
		Duration: s.clock().Sub(start),
		Success:  err == nil,
		Err:      err,
		Fields:   map[string]any{"week": weekEnding.Format("2006-01-02")},
	})
	return rec, usedFallback, err
}

func (s *teamSummaryService) Get(ctx context.Context, weekEnding time.Time) (*domain.WeeklySummary, error) {
	return s.summaries.GetByWeek(ctx, weekEnding)
}

func (s *teamSummaryService) Delete(ctx context.Context, weekEnding time.Time) error {
	return s.summaries.DeleteByWeek(ctx, weekEnding)
}

func (s *teamSummaryService) Email(ctx context.Context, weekEnding time.Time, recipients []string) error {
	summary, err := s.summaries.GetByWeek(ctx, weekEnding)
	if err != nil {
		return fmt.Errorf("reading weekly summary: %w", err)
	}

	subject := fmt.Sprintf("Weekly Team Summary - Week Ending %s", weekEnding.Format("January 2, 2006"))
	body := fmt.Sprintf("%s\n\nReports included: %d\nGenerated by: %s\n",
		summary.SummaryText, summary.ReportsIncluded, summary.GeneratedBy)

	if err := s.sender.Send(ctx, recipients, subject, body); err != nil {
		return fmt.Errorf("emailing weekly summary: %w", err)
	}
	return nil
}
