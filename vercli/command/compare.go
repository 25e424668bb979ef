package command

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.jetpack.io/semverparser/goutil/errorutil"
	"go.jetpack.io/semverparser/pkg/semver"
)

func compareCmd() *cobra.Command {
	goModFlag := false

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Prints -1, 0 or 1 as a is lower than, equal to or higher than b",
		Long: "Prints -1, 0 or 1 as a is lower than, equal to or higher than b.\n\n" +
			"By default versions are ordered field by field, so 1.0.0 sorts before 1.0.0-rc.1 " +
			"and build metadata is significant. With --gomod the Go module rules apply instead: " +
			"pre-releases sort before the release and build metadata is ignored.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := parseLines(argLines(args), "argument")
			if err != nil {
				return err
			}

			result := semver.Compare(versions[0], versions[1])
			if goModFlag {
				result, err = semver.CompareGoModule(versions[0], versions[1])
				if err != nil {
					return errorutil.AddUserMessagef(
						err,
						"Cannot compare with Go module rules: %s",
						err,
					)
				}
			}
			logrus.Debugf("compare(%s, %s) = %d (gomod=%t)", versions[0], versions[1], result, goModFlag)
			return outputWriter(cmd).Serialize(result)
		},
	}
	cmd.Flags().BoolVar(
		&goModFlag,
		"gomod",
		false,
		"compare using Go module precedence",
	)
	return cmd
}
