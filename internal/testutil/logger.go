package testutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
