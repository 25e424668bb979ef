package command

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.jetpack.io/semverparser/goutil/errorutil"
	"go.jetpack.io/semverparser/pkg/semver"
)

// line is one non-blank input line and its 1-based position.
type line struct {
	number int
	text   string
}

func readLines(r io.Reader) ([]line, error) {
	var lines []line
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		lines = append(lines, line{number: n, text: strings.TrimSpace(scanner.Text())})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return lo.Filter(lines, func(l line, _ int) bool {
		return l.text != ""
	}), nil
}

func readFileLines(fs afero.Fs, path string) ([]line, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errorutil.AddUserMessagef(
			errors.WithStack(err),
			"Could not open %s",
			path,
		)
	}
	defer f.Close()
	return readLines(f)
}

func argLines(args []string) []line {
	return lo.Map(args, func(arg string, i int) line {
		return line{number: i + 1, text: arg}
	})
}

func parseLines(lines []line, source string) ([]semver.Version, error) {
	versions := make([]semver.Version, 0, len(lines))
	for _, l := range lines {
		v, err := semver.Parse(l.text)
		if err != nil {
			return nil, errorutil.AddUserMessagef(
				err,
				"%s %d: %q is not a valid version: %s",
				source,
				l.number,
				l.text,
				err,
			)
		}
		versions = append(versions, v)
	}
	return versions, nil
}
