package domain

import "fmt"

// ExitError reports a compiled program that exited with a non-zero status.
type ExitError struct {
	Program string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: %s exited with status %d", ErrProgramFailed.Error(), e.Program, e.Code)
}

// Is matches ErrProgramFailed.
func (e *ExitError) Is(target error) bool {
	return target == ErrProgramFailed
}
