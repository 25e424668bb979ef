package semver

import (
	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
)

// GoModuleVersion returns v in the form used by Go modules, e.g. "v1.2.3".
func (v Version) GoModuleVersion() string {
	return "v" + v.String()
}

// IsGoModuleCompatible reports whether the Go toolchain accepts v as a
// module version. Every parsed version is, except those whose pre-release
// holds a digit-only identifier with a leading zero such as "0851523".
func (v Version) IsGoModuleCompatible() bool {
	return semver.IsValid(v.GoModuleVersion())
}

// CompareGoModule compares a and b with Go module precedence: a release
// sorts after its pre-releases and build metadata is ignored.
//
// x/mod treats invalid versions as equal to each other and smaller than any
// valid one, so versions Go rejects are reported as ErrInvalidValue instead.
func CompareGoModule(a, b Version) (int, error) {
	if !a.IsGoModuleCompatible() {
		return 0, errors.Wrapf(ErrInvalidValue, "first value %q is not a Go module version", a)
	}
	if !b.IsGoModuleCompatible() {
		return 0, errors.Wrapf(ErrInvalidValue, "second value %q is not a Go module version", b)
	}
	return semver.Compare(a.GoModuleVersion(), b.GoModuleVersion()), nil
}
