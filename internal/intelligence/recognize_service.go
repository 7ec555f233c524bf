package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/llm"
)

// Recognition names one staff member's standout alignment with a single
// framework category, scored on the 1-4 rubric scale.
type Recognition struct {
	TeamMember string `json:"staff_member"`
	Category   string `json:"category"`
	Score      int    `json:"score"`
	Reasoning  string `json:"reasoning"`
}

// WeeklyRecognition is the pair of weekly top performers, one per framework.
// Either side may be empty when no categorized successes exist for the week.
type WeeklyRecognition struct {
	Ascend Recognition
	North  Recognition
}

// recognitionPayload is the JSON object the model produces for recognition.
type recognitionPayload struct {
	Ascend Recognition `json:"ascend_recognition"`
	North  Recognition `json:"north_recognition"`
}

func validateRecognition(p recognitionPayload) error {
	for _, rec := range []Recognition{p.Ascend, p.North} {
		if rec.TeamMember == "" {
			return fmt.Errorf("missing staff member")
		}
		if rec.Score < 1 || rec.Score > 4 {
			return fmt.Errorf("score %d out of range for %s", rec.Score, rec.TeamMember)
		}
	}
	if !domain.ValidAscendCategories[domain.AscendCategory(p.Ascend.Category)] {
		return fmt.Errorf("unknown ascend category %q", p.Ascend.Category)
	}
	if !domain.ValidNorthCategories[domain.NorthCategory(p.North.Category)] {
		return fmt.Errorf("unknown north category %q", p.North.Category)
	}
	return nil
}

// RecognizeService selects weekly staff recognition from finalized reports.
type RecognizeService interface {
	// Weekly returns the week's top performers. The bool reports whether
	// the deterministic tally was used instead of the model.
	Weekly(ctx context.Context, weekEnding time.Time, reports []*domain.Report) (*WeeklyRecognition, bool)
}

type recognizeService struct {
	client  llm.Client
	prompts *Prompts
}

// NewRecognizeService creates a RecognizeService backed by an LLM client.
// A nil client always yields the deterministic tally.
func NewRecognizeService(client llm.Client, prompts *Prompts) RecognizeService {
	return &recognizeService{client: client, prompts: prompts}
}

func (s *recognizeService) Weekly(ctx context.Context, weekEnding time.Time, reports []*domain.Report) (*WeeklyRecognition, bool) {
	if s.client == nil || len(reports) == 0 {
		return DeterministicRecognition(reports), true
	}

	views := make([]reportView, 0, len(reports))
	for _, rep := range reports {
		views = append(views, newReportView(rep))
	}
	viewsJSON, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return DeterministicRecognition(reports), true
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRecognize,
		SystemPrompt: s.prompts.Recognition(ctx),
		UserPrompt:   "Here are the finalized reports for the week:\n\n" + string(viewsJSON),
	})
	if err != nil {
		return DeterministicRecognition(reports), true
	}

	payload, err := llm.ExtractJSON[recognitionPayload](resp.Text, validateRecognition)
	if err != nil {
		return DeterministicRecognition(reports), true
	}
	return &WeeklyRecognition{Ascend: payload.Ascend, North: payload.North}, false
}

type recognitionTallyKey struct {
	member   string
	category string
}

// DeterministicRecognition tallies categorized success entries and picks
// the member/category pair with the most per framework. It is used
// whenever the model is disabled or fails.
func DeterministicRecognition(reports []*domain.Report) *WeeklyRecognition {
	ascend := make(map[recognitionTallyKey]int)
	north := make(map[recognitionTallyKey]int)

	for _, rep := range reports {
		for _, key := range domain.SectionOrder {
			for _, e := range rep.Body[key].Successes {
				if e.Ascend != "" && e.Ascend != domain.AscendNA {
					ascend[recognitionTallyKey{rep.TeamMember, string(e.Ascend)}]++
				}
				if e.North != "" && e.North != domain.NorthNA {
					north[recognitionTallyKey{rep.TeamMember, string(e.North)}]++
				}
			}
		}
	}

	return &WeeklyRecognition{
		Ascend: topRecognition(ascend),
		North:  topRecognition(north),
	}
}

// topRecognition picks the highest-count pair, breaking ties by member
// then category name so the result is stable across runs.
func topRecognition(tally map[recognitionTallyKey]int) Recognition {
	var best recognitionTallyKey
	bestCount := 0
	for k, count := range tally {
		switch {
		case count > bestCount:
			best, bestCount = k, count
		case count == bestCount && bestCount > 0:
			if k.member < best.member || (k.member == best.member && k.category < best.category) {
				best = k
			}
		}
	}
	if bestCount == 0 {
		return Recognition{}
	}

	score := 2
	if bestCount >= 3 {
		score = 3
	}
	if bestCount >= 5 {
		score = 4
	}
	return Recognition{
		TeamMember: best.member,
		Category:   best.category,
		Score:      score,
		Reasoning: fmt.Sprintf("Recorded %d successes aligned with the %s category this week.",
			bestCount, best.category),
	}
}
