package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/testutil"
)

func newTestSummary(weekEnding time.Time) *domain.WeeklySummary {
	now := time.Now().UTC()
	return &domain.WeeklySummary{
		ID:              uuid.New().String(),
		WeekEnding:      weekEnding,
		SummaryText:     "The team submitted 4 reports this week.",
		ReportsIncluded: 4,
		GeneratedBy:     "admin@example.edu",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestSummaryRepo_UpsertAndGet(t *testing.T) {
	repo := repository.NewSQLiteSummaryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := newTestSummary(testWeek)
	require.NoError(t, repo.Upsert(ctx, s))

	fetched, err := repo.GetByWeek(ctx, testWeek)
	require.NoError(t, err)
	assert.Equal(t, s.ID, fetched.ID)
	assert.Equal(t, s.SummaryText, fetched.SummaryText)
	assert.Equal(t, 4, fetched.ReportsIncluded)
	assert.True(t, fetched.WeekEnding.Equal(testWeek))
	assert.False(t, fetched.UsedFallback)
}

func TestSummaryRepo_UpsertReplacesWeekRow(t *testing.T) {
	repo := repository.NewSQLiteSummaryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := newTestSummary(testWeek)
	require.NoError(t, repo.Upsert(ctx, first))

	second := newTestSummary(testWeek)
	second.SummaryText = "Regenerated after a late resubmission."
	second.UsedFallback = true
	require.NoError(t, repo.Upsert(ctx, second))

	fetched, err := repo.GetByWeek(ctx, testWeek)
	require.NoError(t, err)
	// One row per week; the original id survives the conflict update.
	assert.Equal(t, first.ID, fetched.ID)
	assert.Equal(t, "Regenerated after a late resubmission.", fetched.SummaryText)
	assert.True(t, fetched.UsedFallback)
}

func TestSummaryRepo_GetByWeek_NotFound(t *testing.T) {
	repo := repository.NewSQLiteSummaryRepo(testutil.NewTestDB(t))

	_, err := repo.GetByWeek(context.Background(), testWeek)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSummaryRepo_DeleteByWeek(t *testing.T) {
	repo := repository.NewSQLiteSummaryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newTestSummary(testWeek)))
	require.NoError(t, repo.DeleteByWeek(ctx, testWeek))

	_, err := repo.GetByWeek(ctx, testWeek)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting an absent week is not an error.
	require.NoError(t, repo.DeleteByWeek(ctx, testWeek))
}

func TestSettingsRepo_GetNotFound(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "deadline_config")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSettingsRepo_UpsertOverwrites(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "deadline_config", `{"deadline_day":0}`, "admin@example.edu"))
	require.NoError(t, repo.Upsert(ctx, "deadline_config", `{"deadline_day":2}`, "admin@example.edu"))

	value, err := repo.Get(ctx, "deadline_config")
	require.NoError(t, err)
	assert.Equal(t, `{"deadline_day":2}`, value)
}
