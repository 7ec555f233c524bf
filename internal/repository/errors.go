package repository

import "errors"

// ErrNotFound indicates the requested record does not exist. Callers match
// it with errors.Is after the repo wraps it with the record kind.
var ErrNotFound = errors.New("not found")
