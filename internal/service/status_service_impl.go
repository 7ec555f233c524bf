package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/deadline"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/repository"
)

type statusService struct {
	reports  repository.ReportRepo
	staff    repository.StaffRepo
	resolver *deadline.Resolver
	clock    func() time.Time
}

// NewStatusService builds week status boards for review views.
func NewStatusService(reports repository.ReportRepo, staff repository.StaffRepo, resolver *deadline.Resolver) StatusService {
	return newStatusService(reports, staff, resolver, time.Now)
}

func newStatusService(reports repository.ReportRepo, staff repository.StaffRepo, resolver *deadline.Resolver, clock func() time.Time) *statusService {
	return &statusService{reports: reports, staff: staff, resolver: resolver, clock: clock}
}

func (s *statusService) WeekBoard(ctx context.Context, weekEnding time.Time) (*WeekBoard, error) {
	cfg := s.resolver.Config(ctx)
	board := &WeekBoard{
		WeekEnding: weekEnding,
		Window:     deadline.ResolveWeekWindowForDate(weekEnding, s.clock(), cfg),
	}

	reps, err := s.reports.ListByWeek(ctx, weekEnding)
	if err != nil {
		return nil, fmt.Errorf("listing reports for week: %w", err)
	}

	covered := make(map[string]bool, len(reps))
	for _, rep := range reps {
		covered[rep.UserID] = true
		switch rep.Status {
		case domain.StatusFinalized:
			board.Finalized = append(board.Finalized, rep)
		case domain.StatusUnlocked:
			board.Unlocked = append(board.Unlocked, rep)
		case domain.StatusAdminCreated:
			board.AdminCreated = append(board.AdminCreated, rep)
		default:
			board.Drafts = append(board.Drafts, rep)
		}
	}

	members, err := s.staff.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	for _, member := range members {
		if !covered[member.ID] {
			board.Missing = append(board.Missing, member)
		}
	}

	return board, nil
}
