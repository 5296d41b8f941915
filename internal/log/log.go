// SPDX-License-Identifier: EPL-2.0

// Package log builds the logrus loggers used across dualstereo.
package log

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv turns on debug output when set to a true value.
const DebugEnv = "DUALSTEREO_DEBUG"

// Fields is a set of structured log fields.
type Fields = logrus.Fields

// Logger is the logging surface components depend on. Both *logrus.Logger
// and *logrus.Entry satisfy it.
type Logger interface {
	WithFields(fields logrus.Fields) *logrus.Entry
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
}

func debugFromEnv() bool {
	debug, err := strconv.ParseBool(os.Getenv(DebugEnv))
	if err != nil {
		return false
	}
	return debug
}

// GetLogger returns a new logger writing to stderr. The level is debug when
// DUALSTEREO_DEBUG is true, info otherwise.
func GetLogger() *logrus.Logger {
	l := logrus.New()
	if debugFromEnv() {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// SetVerbose raises l to debug level when verbose is set.
func SetVerbose(l *logrus.Logger, verbose bool) {
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
