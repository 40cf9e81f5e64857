package domain

import "errors"

// Operation failure taxonomy. The store gateway translates storage faults
// into these sentinels before they cross the repository boundary; callers
// match with errors.Is.
var (
	ErrNotFound       = errors.New("referenced entity does not exist")
	ErrConflict       = errors.New("entity is in the wrong state for this operation")
	ErrNoAvailability = errors.New("no vehicle matches the requested criteria")
	ErrPersistence    = errors.New("storage fault")
)
