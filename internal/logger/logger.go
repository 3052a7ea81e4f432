package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logFile *os.File
	mu      sync.Mutex
	log     = newLogrus()
)

const (
	maxLogSize  = 5 * 1024 * 1024 // 5MB
	logFileName = "dirman.log"
)

func newLogrus() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init opens dir/dirman.log for appending, rotating it first when it has
// grown past maxLogSize. Nothing is ever written to the terminal.
func Init(dir string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)

	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		oldPath := logPath + ".old"
		os.Remove(oldPath)
		os.Rename(logPath, oldPath)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = file
	log.SetOutput(file)
	return nil
}

// Close closes the log file and discards any further output.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	log.SetOutput(io.Discard)
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	log.SetLevel(level)
	return nil
}

// Disable silences logging (useful for tests)
func Disable() {
	log.SetLevel(logrus.PanicLevel)
}

// Enable restores the default info level.
func Enable() {
	log.SetLevel(logrus.InfoLevel)
}

func Error(format string, args ...any) {
	log.Errorf(format, args...)
}

func Warn(format string, args ...any) {
	log.Warnf(format, args...)
}

func Info(format string, args ...any) {
	log.Infof(format, args...)
}

func Debug(format string, args ...any) {
	log.Debugf(format, args...)
}
