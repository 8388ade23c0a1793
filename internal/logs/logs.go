package logs

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "chipdeck",
	Level:  log.InfoLevel,
})

// Init sets the log level for the process. Verbose enables debug output.
func Init(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
		return
	}
	logger.SetLevel(log.InfoLevel)
}

// Logger returns the process logger, for passing into library packages.
func Logger() *log.Logger {
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func Debug(format string, values ...any) {
	logger.Debugf(format, values...)
}

func Info(format string, values ...any) {
	logger.Infof(format, values...)
}

func Warn(format string, values ...any) {
	logger.Warnf(format, values...)
}

func Error(format string, values ...any) {
	logger.Errorf(format, values...)
}
