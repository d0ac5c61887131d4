package schedule

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// UserError reports a schedule that can't be legally realized.
//
// It aborts the compilation of the pipeline, but it is not a bug in the compiler: internal
// invariant failures panic instead (see github.com/gomlx/exceptions).
type UserError struct {
	// Func is the function whose schedule is invalid, if known.
	Func string

	// Var is the offending loop variable, if any.
	Var string

	msg string
}

// Error implements the error interface.
func (e *UserError) Error() string {
	var sb strings.Builder
	if e.Func != "" {
		_, _ = fmt.Fprintf(&sb, "in schedule for %s: ", e.Func)
	}
	sb.WriteString(e.msg)
	return sb.String()
}

// UserErrorf creates a new *UserError (with a stack trace) about the variable varName of
// function funcName. Either can be empty.
func UserErrorf(funcName, varName, format string, args ...any) error {
	return errors.WithStack(&UserError{Func: funcName, Var: varName, msg: fmt.Sprintf(format, args...)})
}

// IsUserError returns whether err is or wraps a *UserError.
func IsUserError(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr)
}

// AsUserError returns the *UserError wrapped in err, or nil.
func AsUserError(err error) *UserError {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr
	}
	return nil
}

// internalErrorf panics with an internal error: it signals a bug in the scheduler, not a
// mistake in the schedule.
func internalErrorf(format string, args ...any) {
	exceptions.Panicf("internal error: "+format, args...)
}
