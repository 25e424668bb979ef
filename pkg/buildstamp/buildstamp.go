package buildstamp

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"go.jetpack.io/semverparser/pkg/semver"
)

// ldflags will provide these values, e.g.
//
//	-X go.jetpack.io/semverparser/pkg/buildstamp.VersionNumber=0.3.0
var (
	// BuildTimestamp is the timestamp at which the binary was built in ISO 8601
	// format.
	BuildTimestamp string

	// Commit is the git commit hash of the revision used to build the binary.
	Commit string

	// VersionNumber is the version number in semver format MAJOR.MINOR.PATCH
	VersionNumber string

	// PrereleaseTag is the pre-release segment for non-release builds, e.g. "dev".
	PrereleaseTag string
)

const devVersion = "0.0.0"

// BuildStamper is implemented by the value Get returns.
type BuildStamper interface {
	Version() string
	Parsed() (semver.Version, error)
}

type buildStamp struct{}

var _ BuildStamper = (*buildStamp)(nil)

func Get() *buildStamp {
	return &buildStamp{}
}

// Version returns a version string of the form 0.1.0-dev+379c1d11. Missing
// pieces are left out; an unstamped binary reports 0.0.0.
func (b *buildStamp) Version() string {
	v := strings.TrimSpace(VersionNumber)
	if v == "" {
		v = devVersion
	}
	if pre := strings.TrimSpace(PrereleaseTag); pre != "" {
		v += "-" + pre
	}
	if commit := strings.TrimSpace(Commit); commit != "" {
		v += "+" + commit
	}
	return v
}

// Parsed returns Version() parsed with this module's own parser.
func (b *buildStamp) Parsed() (semver.Version, error) {
	v, err := semver.Parse(b.Version())
	return v, errors.Wrap(err, "binary was stamped with an invalid version")
}

// PrintVerboseVersion prints a verbose listing of the version variables
// to the io.Writer argument
func PrintVerboseVersion(w io.Writer) {
	fmt.Fprintf(w, "Version Number: %v\n", VersionNumber)
	fmt.Fprintf(w, "Prerelease Tag: %v\n", PrereleaseTag)
	fmt.Fprintf(w, "Commit:         %v\n", Commit)
	fmt.Fprintf(w, "Build Date:     %v\n", BuildTimestamp)
	fmt.Fprintf(w, "Runtime:        %v\n", runtime.Version())
}
