package semver

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Version is a parsed MAJOR.MINOR.PATCH[-PRE][+BUILD] version.
//
// Pre and Build are nil when the corresponding segment is absent.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   []Identifier
	Build []Identifier
}

// Parse parses a version string. Surrounding whitespace is ignored; any
// other input that is not part of the version is an error. On failure the
// returned error is a *ParseError.
func Parse(version string) (Version, error) {
	s := []byte(strings.TrimSpace(version))
	i := 0

	major, n, ok := numericIdentifier(s[i:])
	if !ok {
		return Version{}, newParseError(s, i, ErrMajor)
	}
	i += n
	if n, ok = dot.recognize(s[i:]); !ok {
		return Version{}, newParseError(s, i, ErrExpectedDot)
	}
	i += n

	minor, n, ok := numericIdentifier(s[i:])
	if !ok {
		return Version{}, newParseError(s, i, ErrMinor)
	}
	i += n
	if n, ok = dot.recognize(s[i:]); !ok {
		return Version{}, newParseError(s, i, ErrExpectedDot)
	}
	i += n

	patch, n, ok := numericIdentifier(s[i:])
	if !ok {
		return Version{}, newParseError(s, i, ErrPatch)
	}
	i += n

	pre, n, err := parseOptionalMeta(s[i:], minus, ErrEmptyPreRelease)
	if err != nil {
		return Version{}, newParseError(s, i+n, err)
	}
	i += n

	build, n, err := parseOptionalMeta(s[i:], plus, ErrEmptyBuild)
	if err != nil {
		return Version{}, newParseError(s, i+n, err)
	}
	i += n

	if i != len(s) {
		return Version{}, newParseError(s, i, ErrExtraJunk)
	}

	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
		Pre:   pre,
		Build: build,
	}, nil
}

// MustParse is like Parse but panics if the version cannot be parsed.
func MustParse(version string) Version {
	v, err := Parse(version)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical form of v.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Patch, 10))
	if len(v.Pre) > 0 {
		b.WriteByte('-')
		writeIdentifiers(&b, v.Pre)
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		writeIdentifiers(&b, v.Build)
	}
	return b.String()
}

func writeIdentifiers(b *strings.Builder, ids []Identifier) {
	for i, id := range ids {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(id.String())
	}
}

// Core returns v without pre-release and build metadata.
func (v Version) Core() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

func (v Version) IsPreRelease() bool {
	return len(v.Pre) > 0
}

// Clone returns a copy of v that shares no identifier storage with it.
func (v Version) Clone() Version {
	v.Pre = slices.Clone(v.Pre)
	v.Build = slices.Clone(v.Build)
	return v
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return errors.WithStack(err)
	}
	*v = parsed
	return nil
}
