package logging

import (
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// AppName is the name of this application as it appears in log output.
	AppName = "jacoco2cobertura"
)

var (
	appLogger *log.Entry
)

func init() {
	// stdout carries the generated report, keep log output away from it
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	appLogger = log.WithFields(log.Fields{"app": AppName})
}

// AppLogger returns the application wide logger.
func AppLogger() *log.Entry {
	return appLogger
}

// SetLevel sets the logging level of all application loggers. An unknown level leaves the current level in place.
func SetLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		appLogger.Warnf("unable to parse log level '%s', keeping '%s': %s", level, log.GetLevel(), err)
		return
	}
	log.SetLevel(lvl)
}
