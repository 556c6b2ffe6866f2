package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds the request logger used by the HTTP controllers. level falls
// back to logrus's default (info) when it does not parse.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}
