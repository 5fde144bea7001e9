// pkg/logger/logger.go

package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// L returns the global logger instance, initializing a fallback if needed.
func L() *zap.Logger {
	if log == nil {
		InitFallback()
	}
	return log
}

// InitFallback installs a console-only logger if none is configured yet.
// Safe to call more than once.
func InitFallback() {
	if log != nil {
		return
	}
	log = NewFallbackLogger()
	zap.ReplaceGlobals(log)
}

// ParseLogLevel maps a LOG_LEVEL env value onto a zap level, defaulting
// to Info.
func ParseLogLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// FindWritableLogPath returns the first log file location this process can
// write to, preferring the system path when running as root.
func FindWritableLogPath() (string, error) {
	candidates := []string{
		"/var/log/coolifyctl/coolifyctl.log",
		filepath.Join(os.Getenv("HOME"), ".coolifyctl", "coolifyctl.log"),
		filepath.Join(os.TempDir(), "coolifyctl.log"),
	}

	var lastErr error
	for _, path := range candidates {
		if err := ensureLogPermissions(path); err != nil {
			lastErr = err
			continue
		}
		return path, nil
	}
	return "", lastErr
}

// GetLogFileWriter opens the log file for appending.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(f), nil
}

// ensureLogPermissions creates the log directory and file with owner-only
// permissions.
func ensureLogPermissions(logFilePath string) error {
	dir := filepath.Dir(logFilePath)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	if _, err := os.Stat(logFilePath); os.IsNotExist(err) {
		file, err := os.Create(logFilePath)
		if err != nil {
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
	}

	return os.Chmod(logFilePath, 0600)
}
