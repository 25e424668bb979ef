package command

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.jetpack.io/semverparser/goutil/errorutil"
	"go.jetpack.io/semverparser/pkg/clilog"
	"go.jetpack.io/semverparser/pkg/semver"
	"go.jetpack.io/semverparser/vercli/terminal"
)

type sortCmdFlags struct {
	file    string
	reverse bool
	unique  bool
}

func sortCmd() *cobra.Command {
	flags := &sortCmdFlags{}

	cmd := &cobra.Command{
		Use:   "sort [version]...",
		Short: "Sorts versions in ascending order",
		Long: "Sorts versions given as arguments, read from a file (--file) or read from " +
			"stdin, one per line. Blank lines are ignored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := sortInput(cmd, args, flags)
			if err != nil {
				return err
			}

			semver.Sort(versions)
			if flags.unique {
				n := len(versions)
				versions = lo.UniqBy(versions, semver.Version.String)
				if dropped := n - len(versions); dropped > 0 {
					clilog.New(cmd.ErrOrStderr()).WarningPrintf("dropped %d duplicate versions", dropped)
				}
			}
			if flags.reverse {
				versions = lo.Reverse(versions)
			}
			return outputWriter(cmd).Serialize(versions)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "read versions from this file")
	cmd.Flags().BoolVarP(&flags.reverse, "reverse", "r", false, "sort in descending order")
	cmd.Flags().BoolVarP(&flags.unique, "unique", "u", false, "drop duplicate versions")
	return cmd
}

func sortInput(cmd *cobra.Command, args []string, flags *sortCmdFlags) ([]semver.Version, error) {
	switch {
	case len(args) > 0 && flags.file != "":
		return nil, errorutil.NewUserError("Pass versions as arguments or with --file, not both.")
	case len(args) > 0:
		return parseLines(argLines(args), "argument")
	case flags.file != "":
		lines, err := readFileLines(cmdOpts.Fs(), flags.file)
		if err != nil {
			return nil, err
		}
		return parseLines(lines, flags.file+" line")
	}

	in := cmd.InOrStdin()
	if terminal.IsTerminalInput(in) {
		return nil, errorutil.NewUserError(
			"No versions given. Pass them as arguments, with --file, or pipe them to stdin.",
		)
	}
	lines, err := readLines(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}
	return parseLines(lines, "stdin line")
}
