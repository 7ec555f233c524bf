package domain

import "fmt"

// DeadlineConfig is the organization-wide deadline policy for weekly
// reports. DayOfWeek uses the Monday=0..Sunday=6 convention carried over
// from the settings store's serialized form.
type DeadlineConfig struct {
	DayOfWeek  int `json:"day_of_week"`
	Hour       int `json:"hour"`
	Minute     int `json:"minute"`
	GraceHours int `json:"grace_hours"`
}

// DefaultDeadlineConfig is the compiled-in policy used when no setting is
// persisted and no session override exists: Monday 16:00 with a 16 hour
// grace period.
func DefaultDeadlineConfig() DeadlineConfig {
	return DeadlineConfig{DayOfWeek: 0, Hour: 16, Minute: 0, GraceHours: 16}
}

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName returns the weekday name for the configured deadline day.
func (c DeadlineConfig) DayName() string {
	if c.DayOfWeek < 0 || c.DayOfWeek > 6 {
		return "Unknown"
	}
	return dayNames[c.DayOfWeek]
}

// Validate checks the config against its allowed ranges. Minutes are
// restricted to quarter-hour marks, matching the admin settings form.
func (c DeadlineConfig) Validate() error {
	if c.DayOfWeek < 0 || c.DayOfWeek > 6 {
		return fmt.Errorf("day_of_week must be 0-6 (Monday=0), got %d", c.DayOfWeek)
	}
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("hour must be 0-23, got %d", c.Hour)
	}
	switch c.Minute {
	case 0, 15, 30, 45:
	default:
		return fmt.Errorf("minute must be 0, 15, 30, or 45, got %d", c.Minute)
	}
	if c.GraceHours < 0 {
		return fmt.Errorf("grace_hours must be non-negative, got %d", c.GraceHours)
	}
	return nil
}
