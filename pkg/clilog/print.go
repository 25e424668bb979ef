package clilog

import (
	"context"
	"io"
	"os"
)

type ctxKey struct{}

var stdoutLogger = New(os.Stdout)

// Logger returns the logger stored in ctx, or one that prints to stdout.
func Logger(ctx context.Context) *logger {
	if l, ok := ctx.Value(ctxKey{}).(*logger); ok {
		return l
	}
	return stdoutLogger
}

// WithLogger returns a context whose Logger prints to w.
func WithLogger(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}
