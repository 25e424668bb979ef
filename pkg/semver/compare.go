package semver

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrInvalidValue = errors.New("invalid semver value")

// Compare returns -1 if a < b, 0 if a == b, or +1 if a > b.
//
// Versions are ordered field by field: major, minor, patch, pre, build.
// Identifier lists compare element by element and a list sorts before any
// longer list it is a prefix of. As a consequence a version without a
// pre-release sorts before the same version with one, and build metadata
// takes part in the ordering. Use CompareGoModule for the conventional
// precedence rules.
func Compare(a, b Version) int {
	if c := compareUint(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareUint(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := compareUint(a.Patch, b.Patch); c != 0 {
		return c
	}
	if c := compareIdentifiers(a.Pre, b.Pre); c != 0 {
		return c
	}
	return compareIdentifiers(a.Build, b.Build)
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (v Version) Compare(other Version) int {
	return Compare(v, other)
}

func (v Version) Less(other Version) bool {
	return Compare(v, other) < 0
}

// Equal reports whether v and other have the same numbers and the same
// pre-release and build identifiers.
func (v Version) Equal(other Version) bool {
	return Compare(v, other) == 0
}

// Sort sorts versions in ascending order.
func Sort(versions []Version) {
	slices.SortStableFunc(versions, Version.Less)
}

// Max returns the greatest of the given versions, or the zero Version if
// none are given.
func Max(versions ...Version) Version {
	var greatest Version
	for i, v := range versions {
		if i == 0 || greatest.Less(v) {
			greatest = v
		}
	}
	return greatest
}

// CompareStrings parses both values and compares them. Unlike comparing
// arbitrary strings it errors on invalid input instead of treating it as
// smaller than everything else.
func CompareStrings(v string, w string) (int, error) {
	a, err := Parse(v)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "first value %q: %v", v, err)
	}
	b, err := Parse(w)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "second value %q: %v", w, err)
	}
	return Compare(a, b), nil
}
