package provider

import "github.com/spf13/afero"

type Providers interface {
	ErrorLogger() ErrorLogger
	Fs() afero.Fs
}
