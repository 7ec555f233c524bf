package domain

import "time"

// NeutralWellBeing is the midpoint of the 1-5 well-being scale, used for
// admin-created placeholder reports.
const NeutralWellBeing = 3

// Entry is a single success or challenge item within a report section,
// tagged with its two categorical classifications once categorized.
type Entry struct {
	Text   string         `json:"text"`
	Ascend AscendCategory `json:"ascend_category,omitempty"`
	North  NorthCategory  `json:"north_category,omitempty"`
}

// SectionEntries holds the entries of one report section.
type SectionEntries struct {
	Successes  []Entry `json:"successes"`
	Challenges []Entry `json:"challenges"`
}

// ReportBody is the nested success/challenge structure of a report,
// keyed by section. Persisted as JSON.
type ReportBody map[SectionKey]SectionEntries

// NewEmptyBody returns a body with every canonical section present and empty.
func NewEmptyBody() ReportBody {
	body := make(ReportBody, len(SectionOrder))
	for _, key := range SectionOrder {
		body[key] = SectionEntries{Successes: []Entry{}, Challenges: []Entry{}}
	}
	return body
}

// BodyItem is one entry of a report body flattened for categorization,
// identified by a stable sequential ID within the report.
type BodyItem struct {
	ID      int        `json:"id"`
	Text    string     `json:"text"`
	Section SectionKey `json:"section"`
	Kind    EntryKind  `json:"type"`
}

// Items flattens the body into categorization units in canonical section
// order, successes before challenges within a section.
func (b ReportBody) Items() []BodyItem {
	var items []BodyItem
	id := 0
	for _, key := range SectionOrder {
		section := b[key]
		for _, e := range section.Successes {
			items = append(items, BodyItem{ID: id, Text: e.Text, Section: key, Kind: KindSuccess})
			id++
		}
		for _, e := range section.Challenges {
			items = append(items, BodyItem{ID: id, Text: e.Text, Section: key, Kind: KindChallenge})
			id++
		}
	}
	return items
}

// ItemCategory is the pair of classifications assigned to one body item.
type ItemCategory struct {
	Ascend AscendCategory
	North  NorthCategory
}

// ApplyCategories writes classifications back onto entries by item ID,
// walking the same canonical order Items uses. IDs absent from cats are
// left untouched.
func (b ReportBody) ApplyCategories(cats map[int]ItemCategory) {
	id := 0
	for _, key := range SectionOrder {
		section := b[key]
		for i := range section.Successes {
			if c, ok := cats[id]; ok {
				section.Successes[i].Ascend = c.Ascend
				section.Successes[i].North = c.North
			}
			id++
		}
		for i := range section.Challenges {
			if c, ok := cats[id]; ok {
				section.Challenges[i].Ascend = c.Ascend
				section.Challenges[i].North = c.North
			}
			id++
		}
	}
}

// Report is one staff member's submission for a reporting week. The pair
// (UserID, WeekEnding) is the upsert key; at most one row exists per pair.
type Report struct {
	ID         string
	UserID     string
	TeamMember string
	WeekEnding time.Time // the Saturday identifying the reporting period
	Status     ReportStatus

	Body ReportBody

	ProfessionalDevelopment string
	KeyTopicsLookahead      string
	PersonalCheckIn         string
	DirectorConcerns        string
	WellBeingRating         int

	IndividualSummary string

	AdminNote      string
	CreatedByAdmin string // acting admin's user id for admin-created reports

	SubmittedAt *time.Time // set only at finalize
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
