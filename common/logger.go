package common

import (
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// SetDebug switches the process-wide log level.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// GetLogger returns a component-scoped entry of the shared logger.
func GetLogger(component string) *logrus.Entry {
	return logger.WithField("component", component)
}
