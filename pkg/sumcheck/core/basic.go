package core

import "github.com/sirupsen/logrus"

type Named interface {
	// Returns the name of the entity
	Name() string
}

type LoggerProvider interface {
	// Logger returns the logger to be used for logging.
	Logger() *logrus.Logger
}
