package thoughtmodel

import "fmt"

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrNoDecisions = Error{"Thought has no Decisions"}
	ErrNotFound    = Error{"Decision not found"}
	ErrDuplicateID = Error{"Decision id is not unique"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// NotFoundError is returned when a Decision id is given that isn't in the Thought. It matches
// ErrNotFound with errors.Is.
type NotFoundError struct {
	ID int64
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("Decision with id %d not found", err.ID)
}

func (err NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateIDError is returned by New when two Decisions share an id. It matches ErrDuplicateID
// with errors.Is.
type DuplicateIDError struct {
	ID int64
}

func (err DuplicateIDError) Error() string {
	return fmt.Sprintf("More than one Decision with id %d", err.ID)
}

func (err DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}
