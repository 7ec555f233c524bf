package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyBody(t *testing.T) {
	body := NewEmptyBody()

	require.Len(t, body, len(SectionOrder))
	for _, key := range SectionOrder {
		section, ok := body[key]
		require.True(t, ok, "missing section %s", key)
		assert.Empty(t, section.Successes)
		assert.Empty(t, section.Challenges)
	}
	assert.Empty(t, body.Items())
}

func TestBodyItems_CanonicalOrder(t *testing.T) {
	body := NewEmptyBody()
	body[SectionEvents] = SectionEntries{
		Successes: []Entry{{Text: "hosted floor meeting"}},
	}
	body[SectionStudents] = SectionEntries{
		Successes:  []Entry{{Text: "mediated roommate conflict"}},
		Challenges: []Entry{{Text: "two no-show appointments"}},
	}

	items := body.Items()
	require.Len(t, items, 3)

	// Students precedes events, successes precede challenges, and IDs
	// are sequential in that order.
	assert.Equal(t, 0, items[0].ID)
	assert.Equal(t, SectionStudents, items[0].Section)
	assert.Equal(t, KindSuccess, items[0].Kind)

	assert.Equal(t, 1, items[1].ID)
	assert.Equal(t, KindChallenge, items[1].Kind)

	assert.Equal(t, 2, items[2].ID)
	assert.Equal(t, SectionEvents, items[2].Section)
}

func TestApplyCategories(t *testing.T) {
	body := NewEmptyBody()
	body[SectionProjects] = SectionEntries{
		Successes:  []Entry{{Text: "finished training module"}},
		Challenges: []Entry{{Text: "budget approval delayed"}},
	}

	body.ApplyCategories(map[int]ItemCategory{
		0: {Ascend: AscendExcellence, North: NorthOperational},
		// item 1 intentionally missing
	})

	assert.Equal(t, AscendExcellence, body[SectionProjects].Successes[0].Ascend)
	assert.Equal(t, NorthOperational, body[SectionProjects].Successes[0].North)
	assert.Empty(t, body[SectionProjects].Challenges[0].Ascend, "uncategorized item is left untouched")
}

func TestDeadlineConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultDeadlineConfig().Validate())

	bad := []DeadlineConfig{
		{DayOfWeek: -1, Hour: 16, Minute: 0, GraceHours: 16},
		{DayOfWeek: 7, Hour: 16, Minute: 0, GraceHours: 16},
		{DayOfWeek: 0, Hour: 24, Minute: 0, GraceHours: 16},
		{DayOfWeek: 0, Hour: 16, Minute: 10, GraceHours: 16},
		{DayOfWeek: 0, Hour: 16, Minute: 0, GraceHours: -1},
	}
	for _, cfg := range bad {
		assert.Error(t, cfg.Validate(), "%+v", cfg)
	}
}

func TestReportStatusEditable(t *testing.T) {
	assert.True(t, StatusDraft.Editable())
	assert.True(t, StatusUnlocked.Editable())
	assert.True(t, StatusAdminCreated.Editable())
	assert.False(t, StatusFinalized.Editable())
}

func TestStaffDisplayName(t *testing.T) {
	m := &StaffMember{Email: "rd@example.edu"}
	assert.Equal(t, "rd@example.edu", m.DisplayName())

	m.Title = "Resident Director"
	assert.Equal(t, "Resident Director", m.DisplayName())

	m.FullName = "Jordan Blake"
	assert.Equal(t, "Jordan Blake", m.DisplayName())
}
