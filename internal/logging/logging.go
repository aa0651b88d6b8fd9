// Package logging adapts logrus to the album.Logger interface.
package logging

import (
	"io"
	"os"

	"github.com/fivetwenty-io/photo-album/pkg/album"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Logger writes structured entries through logrus.
type Logger struct {
	logger *logrus.Logger
}

var _ album.Logger = (*Logger)(nil)

// New creates a logger writing to out. Warnings and errors are always
// emitted; verbose enables debug and info entries. Terminals get text
// output, anything else gets one JSON object per line.
func New(out io.Writer, verbose bool) *Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if isTerminal(out) {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			FullTimestamp:    false,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return &Logger{logger: logger}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}

// Level reports the active logrus level.
func (l *Logger) Level() logrus.Level {
	return l.logger.GetLevel()
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// Nop returns a logger that discards everything.
func Nop() album.Logger {
	return nopLogger{}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd())) //nolint:gosec // file descriptors fit in int
}
