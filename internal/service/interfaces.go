package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pulse/internal/deadline"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/intelligence"
)

// FinalizeResult is the outcome of a successful finalize transition.
type FinalizeResult struct {
	Report                 *domain.Report
	UsedFallbackCategories bool
	UsedFallbackSummary    bool
}

type ReportService interface {
	// ActiveWindow resolves the currently open reporting week.
	ActiveWindow(ctx context.Context) (deadline.WeekWindow, error)

	// WindowForWeek resolves the window of a specific week, judged
	// against real time.
	WindowForWeek(ctx context.Context, weekEnding time.Time) (deadline.WeekWindow, error)

	// GetOrCreateDraft returns the user's report for the week, creating
	// an empty draft when none exists. Creation is allowed for the
	// active week and for past weeks, never for future weeks.
	GetOrCreateDraft(ctx context.Context, user *domain.StaffMember, weekEnding time.Time) (*domain.Report, error)

	// SaveDraft upserts report content without changing an editable
	// status. Finalized reports reject saves.
	SaveDraft(ctx context.Context, rep *domain.Report) error

	// Finalize runs categorization and summary generation, then locks
	// the report. A plain draft whose week has fully closed is rejected.
	Finalize(ctx context.Context, rep *domain.Report) (*FinalizeResult, error)

	Get(ctx context.Context, userID string, weekEnding time.Time) (*domain.Report, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Report, error)
}

type AdminService interface {
	// Unlock reopens a finalized report for editing. Idempotent.
	Unlock(ctx context.Context, reportID, adminID string) error

	// UnlockAll unlocks every finalized report for the week and returns
	// how many were unlocked.
	UnlockAll(ctx context.Context, weekEnding time.Time, adminID string) (int, error)

	// EnableSubmission moves a report stuck in draft past the deadline
	// into the unlocked state. Idempotent.
	EnableSubmission(ctx context.Context, reportID, adminID string) error

	// EnableSubmissionAll applies EnableSubmission to every draft
	// report for the week.
	EnableSubmissionAll(ctx context.Context, weekEnding time.Time, adminID string) (int, error)

	// CreateAdminReport creates an empty placeholder report for a staff
	// member who missed the week.
	CreateAdminReport(ctx context.Context, userID string, weekEnding time.Time, adminID string) (*domain.Report, error)

	// CreateMissingReports creates placeholders for every active staff
	// member without a report for the week.
	CreateMissingReports(ctx context.Context, weekEnding time.Time, adminID string) (int, error)
}

// WeekBoard groups a week's staff by report state for review views.
type WeekBoard struct {
	WeekEnding time.Time
	Window     deadline.WeekWindow

	Finalized    []*domain.Report
	Drafts       []*domain.Report
	Unlocked     []*domain.Report
	AdminCreated []*domain.Report
	Missing      []*domain.StaffMember
}

func (b *WeekBoard) Submitted() int { return len(b.Finalized) }

func (b *WeekBoard) Outstanding() int {
	return len(b.Drafts) + len(b.Unlocked) + len(b.AdminCreated) + len(b.Missing)
}

type StatusService interface {
	WeekBoard(ctx context.Context, weekEnding time.Time) (*WeekBoard, error)
}

type TeamSummaryService interface {
	// Generate builds and stores the weekly team summary from all
	// finalized reports for the week, replacing any existing one.
	Generate(ctx context.Context, weekEnding time.Time, generatedBy string) (*domain.WeeklySummary, error)

	Get(ctx context.Context, weekEnding time.Time) (*domain.WeeklySummary, error)

	// Delete removes the stored summary for the week, if any.
	Delete(ctx context.Context, weekEnding time.Time) error

	// Email sends the stored summary to the given recipients.
	Email(ctx context.Context, weekEnding time.Time, recipients []string) error

	// Recognize picks the week's top performers, one per category
	// framework, from the finalized reports. The bool reports whether
	// the deterministic tally was used instead of the model.
	Recognize(ctx context.Context, weekEnding time.Time) (*intelligence.WeeklyRecognition, bool, error)
}
