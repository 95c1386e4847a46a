package types

import (
	"errors"
	"fmt"
)

// Account errors.
var (
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no active session")
)

// Record operation errors.
var (
	ErrNotFound          = errors.New("record not found")
	ErrValidation        = errors.New("invalid record data")
	ErrInsufficientStock = errors.New("quantity exceeds available stock")
	ErrCategoryInUse     = errors.New("category is still referenced")
)

// Persistence and backup errors.
var (
	ErrCorruptState  = errors.New("stored data is corrupt")
	ErrBackupParse   = errors.New("backup is not valid JSON")
	ErrBackupSchema  = errors.New("backup does not contain the expected collections")
	ErrStoreDetached = errors.New("store is closed")
)

// InUseError reports a blocked category or genre deletion together with the
// number of records still referencing it. It unwraps to ErrCategoryInUse so
// callers can match with errors.Is.
type InUseError struct {
	Kind  string // "category" or "genre"
	Name  string
	Count int
}

func (e *InUseError) Error() string {
	noun := "record"
	if e.Count != 1 {
		noun = "records"
	}
	return fmt.Sprintf("%s %q is used by %d %s", e.Kind, e.Name, e.Count, noun)
}

func (e *InUseError) Unwrap() error { return ErrCategoryInUse }
