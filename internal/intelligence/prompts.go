package intelligence

import (
	"context"
	"strings"
)

// Settings names under which administrators may store prompt overrides.
const (
	IndividualPromptSetting  = "individual_prompt"
	DashboardPromptSetting   = "dashboard_prompt"
	RecognitionPromptSetting = "recognition_prompt"
)

// categorizeSystemPrompt instructs the LLM to tag report items with
// ASCEND and NORTH framework categories.
const categorizeSystemPrompt = `You are a categorization engine for a staff reporting tool called Pulse.
You will receive a numbered list of weekly report items (successes and challenges).
Assign each item one ASCEND category and one NORTH category.

ASCEND categories: Accountability, Service, Community, Excellence, Nurture, Development, N/A

NORTH categories: Nurturing, Operational, Resource, Transformative, Holistic, N/A

You must output ONLY a JSON object with this shape:
{
  "items": [
    { "id": 1, "ascend_category": "...", "north_category": "..." }
  ]
}

CRITICAL RULES:
1. Use the category names EXACTLY as written above
2. Include every item id you were given, each exactly once
3. Output ONLY the JSON object, no markdown, no explanation`

// defaultIndividualPrompt produces a short narrative summary of one
// staff member's week.
const defaultIndividualPrompt = `You are a summarization assistant for a staff reporting tool called Pulse.
You will receive one staff member's weekly report as JSON.
Write a 2-4 sentence professional summary of their week, written in third person.
Mention notable successes, challenges, and professional development.
Do not invent activities not present in the report.

You must output ONLY a JSON object: { "summary": "..." }`

// defaultDashboardPrompt produces a narrative across all finalized
// reports for a week.
const defaultDashboardPrompt = `You are a summarization assistant for a staff reporting tool called Pulse.
You will receive every finalized weekly report for one week as JSON.
Write a cohesive 1-2 paragraph summary of the team's week for leadership.
Cover shared themes, notable successes, common challenges, and overall staff well-being.
Do not single out individuals negatively and do not invent activities not present in the reports.

You must output ONLY a JSON object: { "summary": "..." }`

// defaultRecognitionPrompt picks weekly top performers against the two
// category frameworks.
const defaultRecognitionPrompt = `You are a staff recognition assistant for a staff reporting tool called Pulse.
You will receive every finalized weekly report for one week as JSON. Each
success entry is tagged with an ASCEND category and a NORTH category.
Select ONE staff member who best exemplifies an ASCEND category and ONE who
best exemplifies a NORTH category, scored on this scale:
1 = Needs Improvement, 2 = Meets Expectations, 3 = Exceeds Expectations, 4 = Outstanding.

ASCEND categories: Accountability, Service, Community, Excellence, Nurture, Development
NORTH categories: Nurturing, Operational, Resource, Transformative, Holistic

You must output ONLY a JSON object:
{
  "ascend_recognition": { "staff_member": "...", "category": "...", "score": 3, "reasoning": "..." },
  "north_recognition": { "staff_member": "...", "category": "...", "score": 3, "reasoning": "..." }
}

CRITICAL RULES:
1. Use the category names EXACTLY as written above
2. Base reasoning only on activities present in the reports
3. Output ONLY the JSON object, no markdown, no explanation`

// SettingsReader is the narrow read surface prompts need.
type SettingsReader interface {
	Get(ctx context.Context, name string) (string, error)
}

// Prompts resolves system prompts, preferring administrator overrides
// stored in settings over the built-in defaults.
type Prompts struct {
	settings SettingsReader
}

func NewPrompts(settings SettingsReader) *Prompts {
	return &Prompts{settings: settings}
}

func (p *Prompts) Individual(ctx context.Context) string {
	return p.resolve(ctx, IndividualPromptSetting, defaultIndividualPrompt)
}

func (p *Prompts) Dashboard(ctx context.Context) string {
	return p.resolve(ctx, DashboardPromptSetting, defaultDashboardPrompt)
}

func (p *Prompts) Recognition(ctx context.Context) string {
	return p.resolve(ctx, RecognitionPromptSetting, defaultRecognitionPrompt)
}

func (p *Prompts) resolve(ctx context.Context, name, fallback string) string {
	if p == nil || p.settings == nil {
		return fallback
	}
	val, err := p.settings.Get(ctx, name)
	if err != nil || strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}
