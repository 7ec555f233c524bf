package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pulse/internal/domain"
)

var testEmailCounter atomic.Int64

// Staff options
type StaffOption func(*domain.StaffMember)

func WithRole(r domain.StaffRole) StaffOption {
	return func(s *domain.StaffMember) {
		s.Role = r
	}
}

func WithName(name string) StaffOption {
	return func(s *domain.StaffMember) {
		s.FullName = name
	}
}

func WithInactive() StaffOption {
	return func(s *domain.StaffMember) {
		s.Active = false
	}
}

// NewTestStaff builds a valid active staff member with a unique email.
func NewTestStaff(opts ...StaffOption) *domain.StaffMember {
	n := testEmailCounter.Add(1)
	now := time.Now().UTC()
	s := &domain.StaffMember{
		ID:        uuid.New().String(),
		Email:     fmt.Sprintf("staff%d@example.edu", n),
		FullName:  fmt.Sprintf("Test Staff %d", n),
		Title:     "Resident Director",
		Role:      domain.RoleStaff,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Report options
type ReportOption func(*domain.Report)

func WithStatus(st domain.ReportStatus) ReportOption {
	return func(r *domain.Report) {
		r.Status = st
	}
}

func WithSubmittedAt(t time.Time) ReportOption {
	return func(r *domain.Report) {
		r.SubmittedAt = &t
	}
}

func WithWellBeing(rating int) ReportOption {
	return func(r *domain.Report) {
		r.WellBeingRating = rating
	}
}

func WithSuccess(section domain.SectionKey, text string) ReportOption {
	return func(r *domain.Report) {
		entries := r.Body[section]
		entries.Successes = append(entries.Successes, domain.Entry{Text: text})
		r.Body[section] = entries
	}
}

func WithChallenge(section domain.SectionKey, text string) ReportOption {
	return func(r *domain.Report) {
		entries := r.Body[section]
		entries.Challenges = append(entries.Challenges, domain.Entry{Text: text})
		r.Body[section] = entries
	}
}

// NewTestReport builds a draft report for the given user and week.
func NewTestReport(userID string, weekEnding time.Time, opts ...ReportOption) *domain.Report {
	now := time.Now().UTC()
	r := &domain.Report{
		ID:              uuid.New().String(),
		UserID:          userID,
		TeamMember:      "Test Staff",
		WeekEnding:      weekEnding,
		Status:          domain.StatusDraft,
		Body:            domain.NewEmptyBody(),
		WellBeingRating: domain.NeutralWellBeing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
