package provider

import (
	"github.com/sirupsen/logrus"
	"go.jetpack.io/semverparser/goutil/errorutil"
)

type ErrorLogger interface {
	CaptureException(exception error)

	// DisplayException displays an error to the user. This is useful for custom error that vercli
	// would otherwise not know how to display in a user-friendly way. Returns true if the error
	// is displayed. If true, the caller can continue without doing further error handling.
	DisplayException(err error) bool
}

type NoOpLogger struct{}

var _ ErrorLogger = (*NoOpLogger)(nil)

func (l *NoOpLogger) CaptureException(err error) {}
func (l *NoOpLogger) DisplayException(err error) bool {
	return false
}

// LogrusLogger records every command failure as a debug log entry.
type LogrusLogger struct {
	Logger logrus.FieldLogger
}

var _ ErrorLogger = (*LogrusLogger)(nil)

func DefaultErrorLogger() *LogrusLogger {
	return &LogrusLogger{Logger: logrus.StandardLogger()}
}

func (l *LogrusLogger) CaptureException(err error) {
	entry := l.Logger.WithError(err)
	if msg := errorutil.GetUserErrorMessage(err); msg != "" {
		entry = entry.WithField("user_message", msg)
	}
	entry.Debug("command failed")
}

func (l *LogrusLogger) DisplayException(err error) bool {
	return false
}
