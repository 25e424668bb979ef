package command

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.jetpack.io/semverparser/goutil/errorutil"
	"go.jetpack.io/semverparser/pkg/semver"
)

type identifierReport struct {
	Value string `json:"value" yaml:"value"`
	Kind  string `json:"kind" yaml:"kind"`
}

type parseReport struct {
	Input    string             `json:"input" yaml:"input"`
	Valid    bool               `json:"valid" yaml:"valid"`
	Error    string             `json:"error,omitempty" yaml:"error,omitempty"`
	Version  string             `json:"version,omitempty" yaml:"version,omitempty"`
	Major    uint64             `json:"major" yaml:"major"`
	Minor    uint64             `json:"minor" yaml:"minor"`
	Patch    uint64             `json:"patch" yaml:"patch"`
	Pre      []identifierReport `json:"pre,omitempty" yaml:"pre,omitempty"`
	Build    []identifierReport `json:"build,omitempty" yaml:"build,omitempty"`
	GoModule bool               `json:"goModule" yaml:"goModule"`
}

func newParseReport(input string) *parseReport {
	v, err := semver.Parse(input)
	if err != nil {
		return &parseReport{Input: input, Error: err.Error()}
	}
	return &parseReport{
		Input:    input,
		Valid:    true,
		Version:  v.String(),
		Major:    v.Major,
		Minor:    v.Minor,
		Patch:    v.Patch,
		Pre:      identifierReports(v.Pre),
		Build:    identifierReports(v.Build),
		GoModule: v.IsGoModuleCompatible(),
	}
}

func identifierReports(ids []semver.Identifier) []identifierReport {
	return lo.Map(ids, func(id semver.Identifier, _ int) identifierReport {
		return identifierReport{Value: id.String(), Kind: id.Kind().String()}
	})
}

// String is the text output format.
func (r *parseReport) String() string {
	if !r.Valid {
		return fmt.Sprintf("%s\tinvalid: %s", r.Input, r.Error)
	}
	ids := func(reports []identifierReport) string {
		return "[" + strings.Join(lo.Map(reports, func(id identifierReport, _ int) string {
			return id.Value + ":" + id.Kind
		}), " ") + "]"
	}
	return fmt.Sprintf(
		"%s\tmajor=%d minor=%d patch=%d pre=%s build=%s",
		r.Version, r.Major, r.Minor, r.Patch, ids(r.Pre), ids(r.Build),
	)
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <version>...",
		Short: "Prints the structure of each version",
		Long: "Prints the major, minor and patch numbers and the pre-release and build " +
			"identifiers of each version. Exits with an error if any version is invalid.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := lo.Map(args, func(arg string, _ int) *parseReport {
				return newParseReport(arg)
			})
			if err := outputWriter(cmd).Serialize(reports); err != nil {
				return err
			}

			invalid := lo.CountBy(reports, func(r *parseReport) bool { return !r.Valid })
			logrus.Debugf("parsed %d versions, %d invalid", len(reports), invalid)
			if invalid > 0 {
				return errorutil.NewUserErrorf("%d of %d versions are invalid", invalid, len(reports))
			}
			return nil
		},
	}
}
