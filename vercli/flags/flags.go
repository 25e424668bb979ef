package flags

import (
	"strings"

	"go.jetpack.io/semverparser/pkg/serializers"
)

type RootCmdFlags struct {
	ConfigFile string
	Debug      bool
	Output     string
}

func (f *RootCmdFlags) IsValidOutput() bool {
	return !f.OutputFormat().IsUnknown()
}

func (f *RootCmdFlags) OutputFormat() serializers.Format {
	return serializers.Format(strings.ToLower(strings.TrimSpace(f.Output)))
}
