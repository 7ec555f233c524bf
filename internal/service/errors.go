package service

import "errors"

var (
	// ErrDeadlinePassed rejects finalizing a plain draft after the
	// submission window has fully closed.
	ErrDeadlinePassed = errors.New("submission deadline has passed")

	// ErrAlreadyFinalized rejects edits or a second finalize against a
	// finalized report.
	ErrAlreadyFinalized = errors.New("report is already finalized")

	// ErrNotActiveWeek rejects creating a report for a future week.
	ErrNotActiveWeek = errors.New("week is not open for submission")

	// ErrReportExists rejects admin-creating a report over an existing one.
	ErrReportExists = errors.New("report already exists for this week")

	// ErrInvalidTransition rejects a status change the current state
	// does not permit.
	ErrInvalidTransition = errors.New("invalid status transition")
)
