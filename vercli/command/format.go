package command

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.jetpack.io/semverparser/pkg/semver"
)

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <version>...",
		Short: "Prints the canonical form of each version",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := parseLines(argLines(args), "argument")
			if err != nil {
				return err
			}
			return outputWriter(cmd).Serialize(lo.Map(versions, func(v semver.Version, _ int) string {
				return v.String()
			}))
		},
	}
}
