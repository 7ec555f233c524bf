package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/llm"
	"github.com/alexanderramin/pulse/internal/testutil"
)

func addCategorizedSuccess(r *domain.Report, section domain.SectionKey, text string, ascend domain.AscendCategory, north domain.NorthCategory) {
	entries := r.Body[section]
	entries.Successes = append(entries.Successes, domain.Entry{Text: text, Ascend: ascend, North: north})
	r.Body[section] = entries
}

func recognitionReports() []*domain.Report {
	alice := testutil.NewTestReport("u1", summaryWeek)
	alice.TeamMember = "Alice"
	addCategorizedSuccess(alice, domain.SectionStaffing, "ran RA one-on-ones", domain.AscendNurture, domain.NorthNurturing)
	addCategorizedSuccess(alice, domain.SectionStaffing, "coached a struggling RA", domain.AscendNurture, domain.NorthNurturing)
	addCategorizedSuccess(alice, domain.SectionProjects, "shipped duty roster tool", domain.AscendExcellence, domain.NorthOperational)

	bob := testutil.NewTestReport("u2", summaryWeek)
	bob.TeamMember = "Bob"
	addCategorizedSuccess(bob, domain.SectionEvents, "hosted hall program", domain.AscendCommunity, domain.NorthTransformative)

	return []*domain.Report{alice, bob}
}

func TestWeekly_NilClientUsesTally(t *testing.T) {
	svc := NewRecognizeService(nil, NewPrompts(nil))

	rec, usedFallback := svc.Weekly(context.Background(), summaryWeek, recognitionReports())
	assert.True(t, usedFallback)
	assert.Equal(t, "Alice", rec.Ascend.TeamMember)
	assert.Equal(t, string(domain.AscendNurture), rec.Ascend.Category)
	assert.Equal(t, "Alice", rec.North.TeamMember)
	assert.Equal(t, string(domain.NorthNurturing), rec.North.Category)
}

func TestWeekly_EmptyReportsSkipModel(t *testing.T) {
	client := &stubClient{text: "unused"}
	svc := NewRecognizeService(client, NewPrompts(nil))

	rec, usedFallback := svc.Weekly(context.Background(), summaryWeek, nil)
	assert.True(t, usedFallback)
	assert.Empty(t, rec.Ascend.TeamMember)
	assert.Empty(t, rec.North.TeamMember)
	assert.Empty(t, client.lastReq.UserPrompt)
}

func TestWeekly_ModelPicks(t *testing.T) {
	client := &stubClient{text: `{
		"ascend_recognition": {"staff_member": "Bob", "category": "Community", "score": 4, "reasoning": "Built strong hall community through programming."},
		"north_recognition": {"staff_member": "Alice", "category": "Nurturing", "score": 3, "reasoning": "Consistent investment in RA growth."}
	}`}
	svc := NewRecognizeService(client, NewPrompts(nil))

	rec, usedFallback := svc.Weekly(context.Background(), summaryWeek, recognitionReports())
	assert.False(t, usedFallback)
	assert.Equal(t, "Bob", rec.Ascend.TeamMember)
	assert.Equal(t, 4, rec.Ascend.Score)
	assert.Equal(t, "Alice", rec.North.TeamMember)
	assert.Equal(t, "Nurturing", rec.North.Category)

	assert.Equal(t, llm.TaskRecognize, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "hosted hall program")
}

func TestWeekly_PromptOverrideReachesModel(t *testing.T) {
	settings := &stubSettings{values: map[string]string{
		RecognitionPromptSetting: "Pick the kindest person.",
	}}
	client := &stubClient{err: errors.New("boom")}
	svc := NewRecognizeService(client, NewPrompts(settings))

	svc.Weekly(context.Background(), summaryWeek, recognitionReports())
	assert.Equal(t, "Pick the kindest person.", client.lastReq.SystemPrompt)
}

func TestWeekly_GenerateErrorFallsBack(t *testing.T) {
	svc := NewRecognizeService(&stubClient{err: errors.New("boom")}, NewPrompts(nil))

	rec, usedFallback := svc.Weekly(context.Background(), summaryWeek, recognitionReports())
	assert.True(t, usedFallback)
	assert.Equal(t, "Alice", rec.Ascend.TeamMember)
}

func TestWeekly_ScoreOutOfRangeFallsBack(t *testing.T) {
	client := &stubClient{text: `{
		"ascend_recognition": {"staff_member": "Bob", "category": "Community", "score": 7, "reasoning": "x"},
		"north_recognition": {"staff_member": "Alice", "category": "Nurturing", "score": 3, "reasoning": "x"}
	}`}
	svc := NewRecognizeService(client, NewPrompts(nil))

	_, usedFallback := svc.Weekly(context.Background(), summaryWeek, recognitionReports())
	assert.True(t, usedFallback)
}

func TestWeekly_UnknownCategoryFallsBack(t *testing.T) {
	client := &stubClient{text: `{
		"ascend_recognition": {"staff_member": "Bob", "category": "Synergy", "score": 4, "reasoning": "x"},
		"north_recognition": {"staff_member": "Alice", "category": "Nurturing", "score": 3, "reasoning": "x"}
	}`}
	svc := NewRecognizeService(client, NewPrompts(nil))

	_, usedFallback := svc.Weekly(context.Background(), summaryWeek, recognitionReports())
	assert.True(t, usedFallback)
}

func TestDeterministicRecognition_ScoreThresholds(t *testing.T) {
	rep := testutil.NewTestReport("u1", summaryWeek)
	rep.TeamMember = "Cara"
	for i := 0; i < 5; i++ {
		addCategorizedSuccess(rep, domain.SectionStudents, "helped a student", domain.AscendService, domain.NorthHolistic)
	}

	rec := DeterministicRecognition([]*domain.Report{rep})
	assert.Equal(t, 4, rec.Ascend.Score)
	assert.Contains(t, rec.Ascend.Reasoning, "5 successes")
	assert.Equal(t, string(domain.NorthHolistic), rec.North.Category)
}

func TestDeterministicRecognition_TieBreaksByName(t *testing.T) {
	zoe := testutil.NewTestReport("u1", summaryWeek)
	zoe.TeamMember = "Zoe"
	addCategorizedSuccess(zoe, domain.SectionProjects, "a", domain.AscendService, domain.NorthHolistic)

	ann := testutil.NewTestReport("u2", summaryWeek)
	ann.TeamMember = "Ann"
	addCategorizedSuccess(ann, domain.SectionProjects, "b", domain.AscendService, domain.NorthHolistic)

	rec := DeterministicRecognition([]*domain.Report{zoe, ann})
	assert.Equal(t, "Ann", rec.Ascend.TeamMember)
	assert.Equal(t, 2, rec.Ascend.Score)
}

func TestDeterministicRecognition_IgnoresUncategorized(t *testing.T) {
	rep := testutil.NewTestReport("u1", summaryWeek,
		testutil.WithSuccess(domain.SectionProjects, "untagged work"))
	addCategorizedSuccess(rep, domain.SectionEvents, "not applicable", domain.AscendNA, domain.NorthNA)

	rec := DeterministicRecognition([]*domain.Report{rep})
	assert.Empty(t, rec.Ascend.TeamMember)
	assert.Empty(t, rec.North.TeamMember)
}
