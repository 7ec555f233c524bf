package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/deadline"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/intelligence"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/testutil"
)

// Reference week for lifecycle tests: Saturday March 2, 2024. Under the
// default policy the deadline is Monday March 4 at 16:00 and the grace
// period runs until Tuesday March 5 at 08:00, organizational time.
var (
	week     = central(2024, time.March, 2, 0, 0)
	nextWeek = central(2024, time.March, 9, 0, 0)
	pastWeek = central(2024, time.February, 24, 0, 0)

	beforeDeadline = central(2024, time.March, 2, 10, 0)
	duringGrace    = central(2024, time.March, 4, 20, 0)
	afterGrace     = central(2024, time.March, 5, 9, 0)
)

func central(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, deadline.OrgZone())
}

// fakeClock is a mutable clock shared by all services in a harness, so a
// test can move time past the deadline mid-scenario.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// recordingSender captures outgoing mail for assertions.
type recordingSender struct {
	to      []string
	subject string
	body    string
	sends   int
}

func (s *recordingSender) Send(_ context.Context, to []string, subject, body string) error {
	s.to = to
	s.subject = subject
	s.body = body
	s.sends++
	return nil
}

type harness struct {
	db        *sql.DB
	clock     *fakeClock
	reports   *repository.SQLiteReportRepo
	staff     *repository.SQLiteStaffRepo
	summaries *repository.SQLiteSummaryRepo
	resolver  *deadline.Resolver
	sender    *recordingSender

	reportSvc  *reportService
	adminSvc   *adminService
	statusSvc  *statusService
	summarySvc *teamSummaryService
}

// newHarness wires the services over a fresh in-memory database with a
// nil model client, so intelligence paths take their deterministic
// fallbacks.
func newHarness(t *testing.T, now time.Time) *harness {
	t.Helper()

	database := testutil.NewTestDB(t)
	clock := &fakeClock{now: now}

	reports := repository.NewSQLiteReportRepo(database)
	staff := repository.NewSQLiteStaffRepo(database)
	summaries := repository.NewSQLiteSummaryRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)
	resolver := deadline.NewResolver(settings)

	categorizer := intelligence.NewCategorizeService(nil)
	summarizer := intelligence.NewSummaryService(nil, intelligence.NewPrompts(settings))
	recognizer := intelligence.NewRecognizeService(nil, intelligence.NewPrompts(settings))
	sender := &recordingSender{}

	return &harness{
		db:        database,
		clock:     clock,
		reports:   reports,
		staff:     staff,
		summaries: summaries,
		resolver:  resolver,
		sender:    sender,

		reportSvc:  newReportService(reports, summaries, resolver, categorizer, summarizer, nil, clock.Now),
		adminSvc:   newAdminService(reports, staff, testutil.NewTestUoW(database), nil, clock.Now),
		statusSvc:  newStatusService(reports, staff, resolver, clock.Now),
		summarySvc: newTeamSummaryService(reports, summaries, summarizer, recognizer, sender, nil, clock.Now),
	}
}

func (h *harness) createStaff(t *testing.T, opts ...testutil.StaffOption) *domain.StaffMember {
	t.Helper()
	member := testutil.NewTestStaff(opts...)
	require.NoError(t, h.staff.Create(context.Background(), member))
	return member
}
