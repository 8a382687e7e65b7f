// Package logger provides structured logging for the apiprobe application.
//
// Logging is built on zap with two sinks: a human-readable console core
// writing to stderr and a JSON core writing to a size-rotated log file.
// All log output goes to the side channel; stdout is reserved for the
// JSON documents the CLI prints.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultLogDir is the directory log files are written to, relative
	// to the working directory.
	DefaultLogDir = "logs"

	// DefaultLogFile is the active log file name inside DefaultLogDir.
	DefaultLogFile = "apiprobe.log"

	// maxSizeMB is the size threshold, in megabytes, at which the log
	// file is rotated.
	maxSizeMB = 10

	// maxAgeDays is how long rotated files are retained.
	maxAgeDays = 14
)

var (
	mu     sync.Mutex
	global *zap.Logger
)

// Setup configures the global logger at the given severity threshold and
// returns it. The first call builds the logger; subsequent calls return
// the already-built instance regardless of the level argument.
//
// Level names follow the settings vocabulary (DEBUG, INFO, WARN, WARNING,
// ERROR), case-insensitive. An unknown level is an error.
func Setup(level string) (*zap.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return global, nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleCfg),
		zapcore.Lock(os.Stderr),
		lvl,
	)

	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(fileCfg),
		zapcore.AddSync(&lumberjack.Logger{
			Filename: filepath.Join(DefaultLogDir, DefaultLogFile),
			MaxSize:  maxSizeMB,
			MaxAge:   maxAgeDays,
			Compress: true,
		}),
		lvl,
	)

	global = zap.New(zapcore.NewTee(consoleCore, fileCore))
	return global, nil
}

// ParseLevel maps a settings-vocabulary level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel, nil
	case "INFO":
		return zapcore.InfoLevel, nil
	case "WARN", "WARNING":
		return zapcore.WarnLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Nop returns a logger that discards everything. Used before Setup has
// run and in tests.
func Nop() *zap.Logger {
	return zap.NewNop()
}
