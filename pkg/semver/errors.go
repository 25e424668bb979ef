package semver

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMajor           = errors.New("error parsing major identifier")
	ErrMinor           = errors.New("error parsing minor identifier")
	ErrPatch           = errors.New("error parsing patch identifier")
	ErrExpectedDot     = errors.New("expected dot")
	ErrEmptyPreRelease = errors.New("empty pre-release metadata segment")
	ErrEmptyBuild      = errors.New("empty build metadata segment")
	ErrExtraJunk       = errors.New("extra junk after valid version")
)

// ParseError is returned by Parse. It unwraps to one of the Err* sentinels
// above, so callers can dispatch with errors.Is.
type ParseError struct {
	// Input is the version string after surrounding whitespace was trimmed.
	Input string
	// Offset is the byte offset into Input where parsing stopped.
	Offset int

	err error
}

func (e *ParseError) Error() string {
	if errors.Is(e.err, ErrExtraJunk) {
		return fmt.Sprintf("%s: %s", e.err, e.Input[e.Offset:])
	}
	return e.err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.err
}

func newParseError(input []byte, offset int, err error) *ParseError {
	return &ParseError{Input: string(input), Offset: offset, err: err}
}
