package logger

import (
	"log"
	"os"
)

// Satisfies Logger interface
type stderrLogger struct {
	logger *log.Logger
}

func newStderrLogger() *stderrLogger {
	return &stderrLogger{
		logger: log.New(os.Stderr, "", log.Ldate|log.Ltime),
	}
}

func (l *stderrLogger) log(entry *LogEntry) {
	l.logger.Println(entry.String())
}

func (l *stderrLogger) Log(entry *LogEntry) {
	if !preprocess(entry, nil) {
		return
	}

	l.log(entry)

	if entry.rawLevel >= FatalLogLevel {
		handleCritical(entry)
	}
}
