package semver

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// IdentifierKind tells whether an Identifier holds a number or a string.
// Numeric sorts before AlphaNumeric.
type IdentifierKind uint8

const (
	Numeric IdentifierKind = iota
	AlphaNumeric
)

func (k IdentifierKind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "alphanumeric"
}

// Identifier is one dot-separated component of a pre-release or build
// segment. The zero value is Numeric(0).
//
// Identifier is comparable, so == is structural equality.
type Identifier struct {
	kind IdentifierKind
	num  uint64
	str  string
}

var ErrInvalidIdentifier = errors.New("invalid identifier")

// NewNumeric returns a numeric identifier.
func NewNumeric(n uint64) Identifier {
	return Identifier{kind: Numeric, num: n}
}

// NewAlphaNumeric returns an alphanumeric identifier. s must be non-empty,
// contain only [0-9A-Za-z-] and must not be a valid numeric identifier
// (use NewNumeric for those).
func NewAlphaNumeric(s string) (Identifier, error) {
	if n, ok := alphanumerics.recognize([]byte(s)); !ok || n != len(s) {
		return Identifier{}, errors.Wrapf(ErrInvalidIdentifier, "%q", s)
	}
	id := classify(s)
	if id.kind != AlphaNumeric {
		return Identifier{}, errors.Wrapf(ErrInvalidIdentifier, "%q is numeric", s)
	}
	return id, nil
}

// MustAlphaNumeric is like NewAlphaNumeric but panics on invalid input.
func MustAlphaNumeric(s string) Identifier {
	id, err := NewAlphaNumeric(s)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseIdentifier classifies a single token the same way the version parser
// classifies pre-release and build components.
func ParseIdentifier(s string) (Identifier, error) {
	if n, ok := alphanumerics.recognize([]byte(s)); !ok || n != len(s) {
		return Identifier{}, errors.Wrapf(ErrInvalidIdentifier, "%q", s)
	}
	return classify(s), nil
}

func (id Identifier) Kind() IdentifierKind {
	return id.kind
}

func (id Identifier) IsNumeric() bool {
	return id.kind == Numeric
}

// Uint64 returns the value of a numeric identifier. ok is false for
// alphanumeric identifiers.
func (id Identifier) Uint64() (n uint64, ok bool) {
	return id.num, id.kind == Numeric
}

func (id Identifier) String() string {
	if id.kind == Numeric {
		return strconv.FormatUint(id.num, 10)
	}
	return id.str
}

// Compare returns -1, 0 or +1. Kinds are compared first, so any numeric
// identifier sorts before any alphanumeric one.
func (id Identifier) Compare(other Identifier) int {
	if id.kind != other.kind {
		if id.kind < other.kind {
			return -1
		}
		return 1
	}
	if id.kind == AlphaNumeric {
		return strings.Compare(id.str, other.str)
	}
	switch {
	case id.num < other.num:
		return -1
	case id.num > other.num:
		return 1
	}
	return 0
}

// numericIdentifier matches the leading run of digits in s. A multi-digit
// run starting with '0' or a value that does not fit in 64 bits is not a
// match.
func numericIdentifier(s []byte) (uint64, int, bool) {
	n, ok := digits.recognize(s)
	if !ok {
		return 0, 0, false
	}
	if n > 1 && s[0] == '0' {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(string(s[:n]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}

// alphanumericIdentifier matches the leading run of [0-9A-Za-z-] in s.
func alphanumericIdentifier(s []byte) (string, int, bool) {
	n, ok := alphanumerics.recognize(s)
	if !ok {
		return "", 0, false
	}
	return string(s[:n]), n, true
}

// classify turns a non-empty alphanumeric token into an Identifier. Digit
// runs with a leading zero or that overflow stay alphanumeric, verbatim.
func classify(token string) Identifier {
	if v, n, ok := numericIdentifier([]byte(token)); ok && n == len(token) {
		return NewNumeric(v)
	}
	return Identifier{kind: AlphaNumeric, str: token}
}

func compareIdentifiers(a, b []Identifier) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
