package mock

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.jetpack.io/semverparser/vercli/flags"
	"go.jetpack.io/semverparser/vercli/provider"
)

type MockCmdOptions struct {
	RootCMDFlags *flags.RootCmdFlags
	FS           afero.Fs
	Root         *cobra.Command
	Logger       provider.ErrorLogger
}

func New() *MockCmdOptions {
	return &MockCmdOptions{
		RootCMDFlags: &flags.RootCmdFlags{},
		FS:           afero.NewMemMapFs(),
	}
}

func (*MockCmdOptions) AdditionalCommands() []*cobra.Command {
	return nil
}

func (m *MockCmdOptions) ErrorLogger() provider.ErrorLogger {
	if m.Logger == nil {
		return &provider.NoOpLogger{}
	}
	return m.Logger
}

func (m *MockCmdOptions) Fs() afero.Fs {
	return m.FS
}

func (m *MockCmdOptions) RootFlags() *flags.RootCmdFlags {
	return m.RootCMDFlags
}

func (m *MockCmdOptions) RootCommand() *cobra.Command {
	if m.Root == nil {
		return &cobra.Command{}
	}
	return m.Root
}

func (*MockCmdOptions) PersistentPreRunE(cmd *cobra.Command, args []string) error {
	return nil
}
