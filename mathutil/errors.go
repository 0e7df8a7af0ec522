package mathutil

import "fmt"

// Error is a wrapper for errors that need no additional information.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	ErrEmptyInput      = Error{"Input is empty"}
	ErrInvalidArgument = Error{"Invalid argument"}
)

// InvalidArgumentError is returned when a numeric argument falls outside of the domain of the
// function it was given to. It matches ErrInvalidArgument with errors.Is.
type InvalidArgumentError struct {
	Func  string
	Arg   string
	Value float64
}

func (err InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s must be > 0 (got %v)", err.Func, err.Arg, err.Value)
}

func (err InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
