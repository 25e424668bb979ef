package command

import (
	"github.com/spf13/cobra"
	"go.jetpack.io/semverparser/goutil/errorutil"
	"go.jetpack.io/semverparser/pkg/buildstamp"
	"go.jetpack.io/semverparser/pkg/clilog"
	"go.jetpack.io/semverparser/pkg/serializers"
)

const binaryName = "semverparser"

// stamper reports the version this binary was built as.
var stamper buildstamp.BuildStamper = buildstamp.Get()

func versionCmd() *cobra.Command {
	verboseFlag := false
	shortFlag := false

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := clilog.Logger(cmd.Context())
			v, err := stamper.Parsed()
			if err != nil {
				return errorutil.ConvertToUserError(err)
			}

			if format := cmdOpts.RootFlags().OutputFormat(); format != serializers.FormatText {
				return outputWriter(cmd).Serialize(newParseReport(v.String()))
			}
			if shortFlag {
				logger.Println(v)
				return nil
			}
			logger.Printf("%v %v\n", binaryName, v)
			if verboseFlag {
				logger.Println()
				logger.HeaderPrintf("Build")
				buildstamp.PrintVerboseVersion(logger.Writer())
			}
			return nil
		},
	}
	versionCmd.Flags().BoolVarP(
		&verboseFlag,
		"verbose",
		"v",
		false, // value
		"Set to true for verbose output",
	)
	versionCmd.Flags().BoolVarP(
		&shortFlag,
		"short",
		"s",
		false, // value
		"Set to true for short output",
	)
	return versionCmd
}
