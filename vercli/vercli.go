// Copyright 2022 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package vercli

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.jetpack.io/semverparser/vercli/command"
	"go.jetpack.io/semverparser/vercli/flags"
	"go.jetpack.io/semverparser/vercli/provider"
)

type Vercli struct {
	additionalCommands []*cobra.Command
	errorLogger        provider.ErrorLogger
	fs                 afero.Fs
	persistentPreRunE  func(cmd *cobra.Command, args []string) error
	rootCommand        *cobra.Command
	rootFlags          *flags.RootCmdFlags
}
type vercliOption func(*Vercli)

func New(opts ...vercliOption) *Vercli {
	v := &Vercli{
		errorLogger: provider.DefaultErrorLogger(),
		fs:          afero.NewOsFs(),
		rootFlags:   &flags.RootCmdFlags{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Vercli) Run(ctx context.Context) {
	os.Exit(command.Execute(ctx, v))
}

func (v *Vercli) ErrorLogger() provider.ErrorLogger {
	return v.errorLogger
}

func (v *Vercli) Fs() afero.Fs {
	return v.fs
}

func (v *Vercli) RootFlags() *flags.RootCmdFlags {
	return v.rootFlags
}

func (v *Vercli) RootCommand() *cobra.Command {
	if v.rootCommand == nil {
		v.rootCommand = command.NewRootCmd(v)
	}
	return v.rootCommand
}

func (v *Vercli) AdditionalCommands() []*cobra.Command {
	return v.additionalCommands
}

func (v *Vercli) PersistentPreRunE(cmd *cobra.Command, args []string) error {
	if v == nil || v.persistentPreRunE == nil {
		return nil
	}
	return v.persistentPreRunE(cmd, args)
}

// Options
type cmdFunc func(v *Vercli) *cobra.Command

func WithAdditionalCommands(cmds ...cmdFunc) vercliOption {
	return func(v *Vercli) {
		for _, cmd := range cmds {
			v.additionalCommands = append(v.additionalCommands, cmd(v))
		}
	}
}

func WithErrorLogger(logger provider.ErrorLogger) vercliOption {
	return func(v *Vercli) {
		v.errorLogger = logger
	}
}

func WithFs(fs afero.Fs) vercliOption {
	return func(v *Vercli) {
		v.fs = fs
	}
}

func WithPersistentPreRunE(r func(cmd *cobra.Command, args []string) error) vercliOption {
	return func(v *Vercli) {
		v.persistentPreRunE = r
	}
}
