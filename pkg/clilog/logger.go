package clilog

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type logger struct {
	writer io.Writer
}

func New(w io.Writer) *logger {
	return &logger{writer: w}
}

func (l *logger) Write(p []byte) (n int, err error) {
	n, err = l.writer.Write(p)
	return n, errors.WithStack(err)
}

func (l *logger) Writer() io.Writer {
	return l.writer
}

func (l *logger) HeaderPrintf(msg string, a ...any) {
	c := color.New(color.FgHiCyan, color.Bold)
	l.print(c.Sprintf("# "+msg+"\n", a...))
}

func (l *logger) WarningPrintf(msg string, a ...any) {
	c := color.New(color.FgHiYellow, color.Bold)
	l.print(c.Sprintf("WARNING: "+msg+"\n", a...))
}

func (l *logger) ErrorPrintf(msg string, a ...any) {
	c := color.New(color.FgRed)
	l.print(c.Sprintf(msg, a...))
}

func (l *logger) Println(a ...any) {
	l.print(fmt.Sprintln(a...))
}

func (l *logger) Printf(msg string, a ...any) {
	l.print(fmt.Sprintf(msg, a...))
}

func (l *logger) print(msg string) {
	if _, err := l.writer.Write([]byte(msg)); err != nil {
		logrus.WithError(err).Debug("failed to write cli output")
	}
}
