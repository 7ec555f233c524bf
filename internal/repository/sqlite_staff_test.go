package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/testutil"
)

func TestStaffRepo_CreateAndGet(t *testing.T) {
	repo := repository.NewSQLiteStaffRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	member := testutil.NewTestStaff(testutil.WithName("Jordan Rivera"))
	require.NoError(t, repo.Create(ctx, member))

	byID, err := repo.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Rivera", byID.FullName)
	assert.Equal(t, domain.RoleStaff, byID.Role)
	assert.True(t, byID.Active)
}

func TestStaffRepo_GetByEmail_CaseInsensitive(t *testing.T) {
	repo := repository.NewSQLiteStaffRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	member := testutil.NewTestStaff()
	require.NoError(t, repo.Create(ctx, member))

	found, err := repo.GetByEmail(ctx, strings.ToUpper(member.Email))
	require.NoError(t, err)
	assert.Equal(t, member.ID, found.ID)
}

func TestStaffRepo_GetByEmail_NotFound(t *testing.T) {
	repo := repository.NewSQLiteStaffRepo(testutil.NewTestDB(t))

	_, err := repo.GetByEmail(context.Background(), "nobody@example.edu")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStaffRepo_DuplicateEmailRejected(t *testing.T) {
	repo := repository.NewSQLiteStaffRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	member := testutil.NewTestStaff()
	require.NoError(t, repo.Create(ctx, member))

	dup := testutil.NewTestStaff()
	dup.Email = member.Email
	assert.Error(t, repo.Create(ctx, dup))
}

func TestStaffRepo_ListActiveOnly(t *testing.T) {
	repo := repository.NewSQLiteStaffRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestStaff(testutil.WithName("Active One"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestStaff(testutil.WithName("Active Two"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestStaff(testutil.WithName("Former Staff"), testutil.WithInactive())))

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStaffRepo_Update(t *testing.T) {
	repo := repository.NewSQLiteStaffRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	member := testutil.NewTestStaff()
	require.NoError(t, repo.Create(ctx, member))

	member.Title = "Assistant Director"
	member.Role = domain.RoleAdmin
	member.Active = false
	require.NoError(t, repo.Update(ctx, member))

	fetched, err := repo.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Assistant Director", fetched.Title)
	assert.Equal(t, domain.RoleAdmin, fetched.Role)
	assert.False(t, fetched.Active)
}
