package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/llm"
)

// SummaryService generates narrative summaries of weekly reports.
type SummaryService interface {
	// Individual summarizes one report. The bool reports whether the
	// deterministic fallback sentence was used.
	Individual(ctx context.Context, rep *domain.Report) (string, bool)

	// Team summarizes all finalized reports for a week. The bool
	// reports whether the deterministic fallback digest was used.
	Team(ctx context.Context, weekEnding time.Time, reports []*domain.Report) (string, bool)
}

type summaryService struct {
	client  llm.Client
	prompts *Prompts
}

// NewSummaryService creates a SummaryService backed by an LLM client.
// A nil client always yields the deterministic fallbacks.
func NewSummaryService(client llm.Client, prompts *Prompts) SummaryService {
	return &summaryService{client: client, prompts: prompts}
}

// reportView is the reduced shape given to the model for summaries.
type reportView struct {
	TeamMember              string                           `json:"team_member"`
	WeekEnding              string                           `json:"week_ending"`
	Sections                map[string]domain.SectionEntries `json:"sections"`
	ProfessionalDevelopment string                           `json:"professional_development,omitempty"`
	KeyTopicsLookahead      string                           `json:"key_topics_lookahead,omitempty"`
	PersonalCheckIn         string                           `json:"personal_check_in,omitempty"`
	WellBeingRating         int                              `json:"well_being_rating"`
}

func newReportView(rep *domain.Report) reportView {
	sections := make(map[string]domain.SectionEntries, len(rep.Body))
	for key, entries := range rep.Body {
		if len(entries.Successes) == 0 && len(entries.Challenges) == 0 {
			continue
		}
		sections[domain.SectionLabels[key]] = entries
	}
	return reportView{
		TeamMember:              rep.TeamMember,
		WeekEnding:              rep.WeekEnding.Format("2006-01-02"),
		Sections:                sections,
		ProfessionalDevelopment: rep.ProfessionalDevelopment,
		KeyTopicsLookahead:      rep.KeyTopicsLookahead,
		PersonalCheckIn:         rep.PersonalCheckIn,
		WellBeingRating:         rep.WellBeingRating,
	}
}

func (s *summaryService) Individual(ctx context.Context, rep *domain.Report) (string, bool) {
	if s.client == nil {
		return FallbackSummarySentence, true
	}

	viewJSON, err := json.MarshalIndent(newReportView(rep), "", "  ")
	if err != nil {
		return FallbackSummarySentence, true
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummarize,
		SystemPrompt: s.prompts.Individual(ctx),
		UserPrompt:   "Here is the weekly report:\n\n" + string(viewJSON),
	})
	if err != nil {
		return FallbackSummarySentence, true
	}

	payload, err := llm.ExtractJSON[summaryPayload](resp.Text, validateSummary)
	if err != nil {
		return FallbackSummarySentence, true
	}
	return payload.Summary, false
}

func (s *summaryService) Team(ctx context.Context, weekEnding time.Time, reports []*domain.Report) (string, bool) {
	if s.client == nil || len(reports) == 0 {
		return DeterministicTeamSummary(weekEnding, reports), true
	}

	views := make([]reportView, 0, len(reports))
	for _, rep := range reports {
		views = append(views, newReportView(rep))
	}
	viewsJSON, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return DeterministicTeamSummary(weekEnding, reports), true
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTeamSummary,
		SystemPrompt: s.prompts.Dashboard(ctx),
		UserPrompt:   "Here are the finalized reports for the week:\n\n" + string(viewsJSON),
	})
	if err != nil {
		return DeterministicTeamSummary(weekEnding, reports), true
	}

	payload, err := llm.ExtractJSON[summaryPayload](resp.Text, validateSummary)
	if err != nil {
		return DeterministicTeamSummary(weekEnding, reports), true
	}
	return payload.Summary, false
}
