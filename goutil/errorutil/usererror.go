package errorutil

import (
	"fmt"

	"github.com/pkg/errors"
)

// userError is an error whose message is safe and useful to show to the
// person running the CLI, e.g. "1.2 is not a valid version: expected dot".
type userError struct {
	error
}

// combinedError pairs an internal error with a user-facing message. Error()
// and %+v describe both, while errors.Is matches either of them:
//
//	err := errorutil.CombinedError(parseErr, errorutil.NewUserError("bad input"))
//	errors.Is(err, semver.ErrExpectedDot) // true
//	errorutil.GetUserErrorMessage(err)     // "bad input"
type combinedError struct {
	cause     error
	userError *userError
}

func NewUserError(msg string) *userError {
	return &userError{error: errors.New(msg)}
}

func NewUserErrorf(msg string, args ...any) *userError {
	return &userError{error: errors.Errorf(msg, args...)}
}

// CombinedError attaches userErr to cause. Errors that already carry a user
// message are returned unchanged.
func CombinedError(cause error, userErr *userError) error {
	if cause == nil || hasUserError(cause) {
		return cause
	}
	return &combinedError{cause: cause, userError: userErr}
}

func AddUserMessagef(cause error, msg string, args ...any) error {
	return CombinedError(cause, NewUserErrorf(msg, args...))
}

// ConvertToUserError marks err itself as fit for display.
func ConvertToUserError(err error) error {
	if err == nil {
		return nil
	}
	return AddUserMessagef(err, "%s", err.Error())
}

// GetUserErrorMessage returns the user-facing message in err's chain, or
// the empty string if there is none.
func GetUserErrorMessage(err error) string {
	var ce *combinedError
	if errors.As(err, &ce) {
		return ce.userError.Error()
	}
	var ue *userError
	if errors.As(err, &ue) {
		return ue.Error()
	}
	return ""
}

func (e *combinedError) Error() string {
	return e.userError.Error() + ": " + e.cause.Error()
}

func (e *combinedError) Is(target error) bool {
	return errors.Is(e.cause, target) || errors.Is(e.userError, target)
}

func (e *combinedError) Unwrap() error { return e.cause }

func (e *combinedError) Cause() error { return e.cause }

// Format supports %+v the way github.com/pkg/errors does.
func (e *combinedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.userError.Error(), e.cause)
		return
	}
	fmt.Fprint(s, e.Error())
}

func hasUserError(err error) bool {
	var ce *combinedError
	var ue *userError
	return errors.As(err, &ce) || errors.As(err, &ue)
}
