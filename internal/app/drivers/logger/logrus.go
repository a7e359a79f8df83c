package logger

import (
	"os"

	"clinic-service/internal/app/config"
	"clinic-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger backs the command line tools, which log plain lines
// rather than request-scoped fields.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if internalConfig.App.Env != constvars.AppEnvProduction {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return logger
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile(driverConfig.Logger.OutputFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.WithError(err).Warn("Failed to log to file, using default stderr")
		return logger
	}
	logger.SetOutput(file)
	return logger
}
