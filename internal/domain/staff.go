package domain

import "time"

// StaffMember is a directory entry for a person who submits or reviews
// weekly reports.
type StaffMember struct {
	ID        string
	Email     string
	FullName  string
	Title     string
	Role      StaffRole
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the best available human-readable name.
func (s *StaffMember) DisplayName() string {
	if s.FullName != "" {
		return s.FullName
	}
	if s.Title != "" {
		return s.Title
	}
	return s.Email
}
