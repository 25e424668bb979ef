package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.jetpack.io/semverparser/goutil/errorutil"
	"go.jetpack.io/semverparser/pkg/semver"
)

func (t *Suite) TestParse() {
	req := t.Require()

	out, err := t.run("", "parse", "1.2.3-1.alpha1.9+build5.7.3aedf")
	req.NoError(err)
	req.Equal(
		"1.2.3-1.alpha1.9+build5.7.3aedf\tmajor=1 minor=2 patch=3 "+
			"pre=[1:numeric alpha1:alphanumeric 9:numeric] "+
			"build=[build5:alphanumeric 7:numeric 3aedf:alphanumeric]\n",
		out,
	)
}

func (t *Suite) TestParseInvalid() {
	req := t.Require()

	out, err := t.run("", "parse", "1.2.3", "1.2")
	req.Error(err)
	req.Equal("1 of 2 versions are invalid", errorutil.GetUserErrorMessage(err))
	req.Equal("1.2.3\tmajor=1 minor=2 patch=3 pre=[] build=[]\n1.2\tinvalid: expected dot\n", out)
}

func (t *Suite) TestParseJSON() {
	req := t.Require()

	out, err := t.run("", "parse", "-o", "json", "0.4.0-beta.1+98765432109876543210")
	req.NoError(err)

	var reports []parseReport
	req.NoError(json.Unmarshal([]byte(out), &reports))
	req.Len(reports, 1)
	r := reports[0]
	req.True(r.Valid)
	req.Equal("0.4.0-beta.1+98765432109876543210", r.Version)
	req.Equal(uint64(4), r.Minor)
	req.Equal([]identifierReport{{"beta", "alphanumeric"}, {"1", "numeric"}}, r.Pre)
	req.Equal([]identifierReport{{"98765432109876543210", "alphanumeric"}}, r.Build)
	req.True(r.GoModule)
}

func (t *Suite) TestFormat() {
	req := t.Require()

	out, err := t.run("", "format", "  1.2.3 ", "1.0.0-rc.1+b")
	req.NoError(err)
	req.Equal("1.2.3\n1.0.0-rc.1+b\n", out)

	_, err = t.run("", "format", "1.2.3", "1.2.3 a")
	req.Error(err)
	req.True(errors.Is(err, semver.ErrExtraJunk))
	req.Equal(
		`argument 2: "1.2.3 a" is not a valid version: extra junk after valid version:  a`,
		errorutil.GetUserErrorMessage(err),
	)
}

func (t *Suite) TestCompare() {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"compare", "1.2.3", "1.2.4"}, "-1\n"},
		{[]string{"compare", "1.2.3+b", "1.2.3+b"}, "0\n"},
		{[]string{"compare", "1.2.3", "1.2.3-alpha"}, "-1\n"},
		{[]string{"compare", "--gomod", "1.2.3", "1.2.3-alpha"}, "1\n"},
		{[]string{"compare", "--gomod", "1.2.3+a", "1.2.3+b"}, "0\n"},
	}
	for _, tc := range cases {
		out, err := t.run("", tc.args...)
		t.Require().NoError(err)
		t.Require().Equal(tc.want, out, "%v", tc.args)
	}

	_, err := t.run("", "compare", "1.2.3")
	t.Require().Error(err)
}

func (t *Suite) TestCompareGoModuleInvalid() {
	req := t.Require()

	out, err := t.run("", "compare", "2.0.0-01", "1.0.0")
	req.NoError(err)
	req.Equal("1\n", out)

	out, err = t.run("", "compare", "--gomod", "2.0.0-01", "1.0.0")
	req.Error(err)
	req.Empty(out)
	req.True(errors.Is(err, semver.ErrInvalidValue))
	req.Equal(
		`Cannot compare with Go module rules: first value "2.0.0-01" is not a Go module version: invalid semver value`,
		errorutil.GetUserErrorMessage(err),
	)
}

func (t *Suite) TestSortArgs() {
	req := t.Require()

	out, err := t.run("", "sort", "1.0.0-rc.1", "1.0.0", "0.9.0", "1.0.0-beta")
	req.NoError(err)
	req.Equal("0.9.0\n1.0.0\n1.0.0-beta\n1.0.0-rc.1\n", out)

	out, err = t.run("", "sort", "-r", "1.0.0-rc.1", "1.0.0", "0.9.0")
	req.NoError(err)
	req.Equal("1.0.0-rc.1\n1.0.0\n0.9.0\n", out)

	out, err = t.run("", "sort", "-u", "2.0.0", "1.0.0", "2.0.0", " 1.0.0")
	req.NoError(err)
	req.Equal("1.0.0\n2.0.0\n", out)
	req.Contains(t.stderr.String(), "WARNING: dropped 2 duplicate versions")
}

func (t *Suite) TestSortTable() {
	req := t.Require()

	args := []string{"sort", "-o", "table"}
	for i := 11; i >= 0; i-- {
		args = append(args, fmt.Sprintf("0.0.%d", i))
	}
	out, err := t.run("", args...)
	req.NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	req.Len(lines, 14)
	for i, line := range lines[2:] {
		req.Equal([]string{fmt.Sprintf("[%d]", i), fmt.Sprintf("0.0.%d", i)}, strings.Fields(line))
	}
}

func (t *Suite) TestSortStdin() {
	req := t.Require()

	out, err := t.run("1.10.0\n\n  1.2.0\n1.2.0+build\n", "sort")
	req.NoError(err)
	req.Equal("1.2.0\n1.2.0+build\n1.10.0\n", out)

	_, err = t.run("1.0.0\n\n1.0\n", "sort")
	req.Error(err)
	req.True(errors.Is(err, semver.ErrExpectedDot))
	req.Equal(
		`stdin line 3: "1.0" is not a valid version: expected dot`,
		errorutil.GetUserErrorMessage(err),
	)
}

func (t *Suite) TestSortFile() {
	req := t.Require()
	req.NoError(afero.WriteFile(t.opts.FS, "/versions.txt", []byte("0.2.0\n0.1.0-WIP\n0.1.0\n"), 0o644))

	out, err := t.run("", "sort", "-o", "json", "--file", "/versions.txt")
	req.NoError(err)
	var got []semver.Version
	req.NoError(json.Unmarshal([]byte(out), &got))
	req.Equal(
		[]semver.Version{
			semver.MustParse("0.1.0"),
			semver.MustParse("0.1.0-WIP"),
			semver.MustParse("0.2.0"),
		},
		got,
	)

	_, err = t.run("", "sort", "--file", "/missing.txt")
	req.Error(err)
	req.Equal("Could not open /missing.txt", errorutil.GetUserErrorMessage(err))

	_, err = t.run("", "sort", "--file", "/versions.txt", "1.0.0")
	req.Error(err)
}

func (t *Suite) TestVersion() {
	req := t.Require()

	out, err := t.run("", "version", "--short")
	req.NoError(err)
	req.Equal("0.0.0\n", out)

	out, err = t.run("", "version")
	req.NoError(err)
	req.Equal("semverparser 0.0.0\n", out)
}

type fakeStamper struct {
	version string
}

func (f fakeStamper) Version() string { return f.version }

func (f fakeStamper) Parsed() (semver.Version, error) {
	v, err := semver.Parse(f.version)
	return v, errors.Wrap(err, "binary was stamped with an invalid version")
}

func (t *Suite) useStamper(version string) {
	old := stamper
	stamper = fakeStamper{version: version}
	t.T().Cleanup(func() { stamper = old })
}

func (t *Suite) TestVersionVerbose() {
	req := t.Require()
	t.useStamper("0.3.1-dev+379c1d11")

	out, err := t.run("", "version", "--verbose")
	req.NoError(err)
	req.True(strings.HasPrefix(out, "semverparser 0.3.1-dev+379c1d11\n\n"))
	req.Contains(out, "# Build\n")
	req.Contains(out, "Runtime:")

	out, err = t.run("", "version", "-o", "json")
	req.NoError(err)
	var r parseReport
	req.NoError(json.Unmarshal([]byte(out), &r))
	req.Equal([]identifierReport{{"dev", "alphanumeric"}}, r.Pre)
}

func (t *Suite) TestVersionBadStamp() {
	req := t.Require()
	t.useStamper("1.0")

	_, err := t.run("", "version")
	req.Error(err)
	req.True(errors.Is(err, semver.ErrExpectedDot))
	req.Equal(
		"binary was stamped with an invalid version: expected dot",
		errorutil.GetUserErrorMessage(err),
	)
}
