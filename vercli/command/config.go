package command

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.jetpack.io/semverparser/goutil/errorutil"
	"go.jetpack.io/semverparser/vercli/flags"
)

const (
	configName = ".semverparser"
	envPrefix  = "SEMVERPARSER"
)

// loadConfig fills rootFlags from, in order of precedence, command line
// flags, SEMVERPARSER_* environment variables, the config file and the flag
// defaults.
func loadConfig(cmd *cobra.Command, fs afero.Fs, rootFlags *flags.RootCmdFlags) error {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if rootFlags.ConfigFile != "" {
		v.SetConfigFile(rootFlags.ConfigFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.WithStack(err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if rootFlags.ConfigFile != "" || !errors.As(err, &notFound) {
			return errorutil.AddUserMessagef(
				errors.WithStack(err),
				"Could not read config file %s",
				v.ConfigFileUsed(),
			)
		}
	} else {
		logrus.Debugf("using config file %s", v.ConfigFileUsed())
	}

	rootFlags.Debug = v.GetBool(debugFlagName)
	rootFlags.Output = v.GetString(outputFlagName)
	return nil
}
