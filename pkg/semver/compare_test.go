package semver

import (
	"errors"
	"fmt"
	"testing"
)

func (s *Suite) TestCompare() {
	cases := []struct {
		in1  string
		in2  string
		want int
	}{
		// first value < second value
		{"0.0.1", "0.0.2", -1},
		{"1.2.3", "2.3.4", -1},
		{"1.2.3", "1.10.0", -1},
		{"1.2.3-alpha", "1.2.3-alpha.1", -1},
		{"1.2.3-alpha.2", "1.2.3-alpha.10", -1},
		{"1.2.3-1", "1.2.3-alpha", -1},
		{"1.2.3-Beta", "1.2.3-alpha", -1},
		{"1.2.3-99999999999999999999", "1.2.3-a", -1},
		{"1.2.3-9", "1.2.3-99999999999999999999", -1},
		{"1.2.3+build1", "1.2.3+build2", -1},

		// An absent pre-release is an empty list, which is a prefix of every
		// non-empty list, so the release sorts before its pre-releases.
		{"1.2.3", "1.2.3-alpha", -1},
		{"1.2.3", "1.2.3-0", -1},

		// build metadata takes part in the ordering
		{"1.2.3", "1.2.3+build", -1},
		{"1.2.3-rc.1", "1.2.3-rc.1+b", -1},

		// equal values
		{"1.0.0", "1.0.0", 0},
		{"0.0.1", "0.0.1", 0},
		{" 1.0.0-rc.1+b ", "1.0.0-rc.1+b", 0},

		// first value > second value
		{"1.2.3", "0.1.2", 1},
		{"1.2.3-alpha", "1.2.3", 1},
		{"2.0.0", "1.99.99-zzz+zzz", 1},
	}

	for _, tc := range cases {
		s.T().Run(fmt.Sprintf("compare_%s_%s", tc.in1, tc.in2), func(t *testing.T) {
			req := s.Require()
			a, b := MustParse(tc.in1), MustParse(tc.in2)

			req.Equal(tc.want, Compare(a, b))
			req.Equal(-tc.want, Compare(b, a))
			req.Equal(tc.want < 0, a.Less(b))
			req.Equal(tc.want == 0, a.Equal(b))

			got, err := CompareStrings(tc.in1, tc.in2)
			req.NoError(err)
			req.Equal(tc.want, got)
		})
	}
}

func (s *Suite) TestCompareStringsInvalid() {
	cases := []struct {
		in1 string
		in2 string
	}{
		{"v1", "v1"},
		{"1", "1.2.3"},
		{"-1", "1.2.3"},
		{"1.2.3", "-1"},
		{"1.2.3.4", "1.2.3"},
		{"1.2.3", "1.2"},
	}

	for _, tc := range cases {
		s.T().Run(fmt.Sprintf("compare_%s_%s", tc.in1, tc.in2), func(t *testing.T) {
			req := s.Require()
			got, err := CompareStrings(tc.in1, tc.in2)
			req.Error(err)
			req.True(errors.Is(err, ErrInvalidValue), "got %v", err)
			req.Equal(0, got)
		})
	}
}

func (s *Suite) TestSortAndMax() {
	req := s.Require()

	in := []string{
		"1.0.0-rc.1",
		"1.0.0+build.2",
		"0.9.0",
		"1.0.0",
		"1.0.0-beta.11",
		"1.0.0-beta.2",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0+build.10",
	}
	want := []string{
		"0.9.0",
		"1.0.0",
		"1.0.0+build.2",
		"1.0.0+build.10",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
	}

	versions := make([]Version, 0, len(in))
	for _, v := range in {
		versions = append(versions, MustParse(v))
	}
	Sort(versions)

	got := make([]string, 0, len(versions))
	for _, v := range versions {
		got = append(got, v.String())
	}
	req.Equal(want, got)

	req.Equal("1.0.0-rc.1", Max(versions...).String())
	req.Equal(Version{}, Max())
}

func (s *Suite) TestGoModule() {
	req := s.Require()

	v := MustParse("1.2.3-rc.1+build")
	req.Equal("v1.2.3-rc.1+build", v.GoModuleVersion())
	req.True(v.IsGoModuleCompatible())

	// leading zeros survive in our pre-release but Go rejects them there
	req.False(MustParse("1.2.3-0851523").IsGoModuleCompatible())
	req.True(MustParse("1.2.3+0851523").IsGoModuleCompatible())

	c, err := CompareGoModule(MustParse("1.2.3-alpha"), MustParse("1.2.3"))
	req.NoError(err)
	req.Equal(-1, c)
	c, err = CompareGoModule(MustParse("1.2.3+a"), MustParse("1.2.3+b"))
	req.NoError(err)
	req.Equal(0, c)
	req.Equal(1, Compare(MustParse("1.2.3-alpha"), MustParse("1.2.3")))
}

func (s *Suite) TestCompareGoModuleRejectsLeadingZeroPreRelease() {
	cases := []struct {
		a, b string
	}{
		{"2.0.0-01", "1.0.0"},
		{"1.0.0", "2.0.0-01"},
		{"1.0.0-01", "9.0.0-02"},
	}
	for _, tc := range cases {
		s.T().Run(tc.a+" vs "+tc.b, func(t *testing.T) {
			req := s.Require()
			c, err := CompareGoModule(MustParse(tc.a), MustParse(tc.b))
			req.ErrorIs(err, ErrInvalidValue)
			req.Zero(c)
		})
	}
}
