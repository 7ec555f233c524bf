package domain

import "time"

// WeeklySummary is the AI-generated team summary aggregating all
// finalized reports of one week. At most one row exists per week; it is
// regenerated on demand and deleted when a constituent report is
// resubmitted after an unlock.
type WeeklySummary struct {
	ID              string
	WeekEnding      time.Time
	SummaryText     string
	ReportsIncluded int
	GeneratedBy     string // user id of the admin who triggered generation
	UsedFallback    bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
