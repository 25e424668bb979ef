package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.jetpack.io/semverparser/goutil/errorutil"
	"go.jetpack.io/semverparser/pkg/clilog"
	"go.jetpack.io/semverparser/pkg/serializers"
	"go.jetpack.io/semverparser/vercli/flags"
	"go.jetpack.io/semverparser/vercli/provider"
	"golang.org/x/sys/unix"
)

// These options allow the CLI to be customized with additional commands,
// a different filesystem (tests use an in-memory one) and error reporting.
type cmdOptions interface {
	provider.Providers
	AdditionalCommands() []*cobra.Command
	RootCommand() *cobra.Command
	RootFlags() *flags.RootCmdFlags
	PersistentPreRunE(cmd *cobra.Command, args []string) error
}

// This is global for now (for expediency). We could pass these options down
// to every function that needs them.
var cmdOpts cmdOptions

const (
	configFlagName = "config"
	debugFlagName  = "debug"
	outputFlagName = "output"
)

func registerRootCmdFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(
		&cmdOpts.RootFlags().Debug,
		debugFlagName,
		"d",
		false,
		"print debug output",
	)

	formats := lo.Map(serializers.Formats, func(f serializers.Format, _ int) string {
		return string(f)
	})
	cmd.PersistentFlags().StringVarP(
		&cmdOpts.RootFlags().Output,
		outputFlagName,
		"o",
		string(serializers.FormatText),
		"output format. One of: "+strings.Join(formats, ", "),
	)

	cmd.PersistentFlags().StringVar(
		&cmdOpts.RootFlags().ConfigFile,
		configFlagName,
		"",
		"config file (default is ./"+configName+".yaml or $HOME/"+configName+".yaml)",
	)
}

func NewRootCmd(opts cmdOptions) *cobra.Command {
	cmdOpts = opts
	rootCmd := &cobra.Command{
		Use:   "semverparser",
		Short: "Parse, format and order semantic versions",
		Long: "Parse, format and order MAJOR.MINOR.PATCH[-PRE][+BUILD] version strings.\n\n" +
			"Build metadata is significant when comparing and sorting.",
		// If an error occurs then cobra will print the Usage (i.e. --help)
		// but we don't want that. This still prints usage if user types
		// --help, or `semverparser help <cmd>`.
		SilenceUsage: true,
		// We print the error via special handling in the Execute() function
		// so we silence it here. If this were false, then we would
		// double-print the error message.
		SilenceErrors:     true,
		PersistentPreRunE: persistentPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.WithStack(cmd.Help())
		},
	}

	rootCmd.AddCommand(
		compareCmd(),
		formatCmd(),
		parseCmd(),
		sortCmd(),
		versionCmd(),
	)

	rootCmd.AddCommand(cmdOpts.AdditionalCommands()...)

	registerRootCmdFlags(rootCmd)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	return rootCmd
}

// Execute is the entry point for CLI app. It returns the process exit code.
func Execute(ctx context.Context, opts cmdOptions) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, unix.SIGTERM)
	defer stop()

	root := opts.RootCommand()
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	opts.ErrorLogger().CaptureException(err)
	stderr := root.ErrOrStderr()

	if opts.RootFlags().Debug {
		stackTrace := errorutil.EarliestStackTrace(err)
		fmt.Fprintf(stderr, "Error chain is:\n\t %s.\n\n", err.Error())
		if stackTrace != nil {
			fmt.Fprintf(stderr, "Stacktrace:\n%+v\n", stackTrace)
		} else {
			fmt.Fprintf(stderr, "Failed to get Stacktrace:\n%+v\n", errors.Cause(err))
		}
		return 1
	}

	if opts.ErrorLogger().DisplayException(err) {
		// Error was displayed, but we still want to exit with non-zero code.
		return 1
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, "ABORT: Operation cancelled by user interruption.")
		return 1
	}

	// This logic allows us to handle errors, combined errors and user errors.
	// errors: normal golang errors
	// combined: golang error + user friendly error to display
	// user: no golang error cause, just a user error we created.
	if msg := errorutil.GetUserErrorMessage(err); msg != "" {
		clilog.New(stderr).ErrorPrintf("Error: %s\n", msg)
		return 1
	}
	fmt.Fprintf(
		stderr,
		"ABORT: There was an error. The cause is:\n\t %s. \n"+
			"Run with --debug for more information\n",
		errors.Cause(err),
	)
	return 1
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	if err := cmdOpts.PersistentPreRunE(cmd, args); err != nil {
		return err
	}

	if err := loadConfig(cmd, cmdOpts.Fs(), cmdOpts.RootFlags()); err != nil {
		return err
	}

	logrus.SetOutput(cmd.ErrOrStderr())
	if cmdOpts.RootFlags().Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if !cmdOpts.RootFlags().IsValidOutput() {
		return errorutil.NewUserErrorf(
			"Output format %q not recognized. Please use one of: %s.",
			cmdOpts.RootFlags().Output,
			strings.Join(lo.Map(serializers.Formats, func(f serializers.Format, _ int) string {
				return string(f)
			}), ", "),
		)
	}
	return nil
}

// outputWriter returns a serializer for the configured output format that
// writes where the command's logger prints.
func outputWriter(cmd *cobra.Command) *serializers.Writer {
	return serializers.NewWriter(
		cmdOpts.RootFlags().OutputFormat(),
		clilog.Logger(cmd.Context()).Writer(),
	)
}
