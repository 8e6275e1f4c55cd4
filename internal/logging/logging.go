// Package logging configures the logrus logger shared by the service.
package logging

import (
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out (stderr when nil) at level, in
// "text" or "json" format.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.NotValidf("log level %q", level)
	}
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	switch format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.NotValidf("log format %q", format)
	}
	return logger, nil
}
