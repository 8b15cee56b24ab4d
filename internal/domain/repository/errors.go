package repository

import "errors"

// Sentinel errors shared by all repository implementations. Not-found is
// deliberately returned both when a row does not exist and when it exists
// but belongs to another user; callers must not distinguish the two.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrConflict       = errors.New("conflict")
)
