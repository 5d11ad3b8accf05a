// Package logging builds the logrus logger shared by the CLI and the client.
package logging

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps the CLI quiet unless something goes wrong.
const DefaultLevel = logrus.WarnLevel

// New returns a text logger writing to w at the named level. An empty level
// selects DefaultLevel.
func New(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	return log, nil
}

// ParseLevel accepts logrus level names case-insensitively.
func ParseLevel(level string) (logrus.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return DefaultLevel, nil
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return DefaultLevel, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}
