// Package obs wires logging and metrics for the server process.
package obs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/botwatch-dev/botwatch/internal/config"
	"github.com/botwatch-dev/botwatch/internal/constant"
)

// SetupLogger configures the global logrus logger from config. When file
// logging is enabled, output goes through lumberjack for rotation.
func SetupLogger(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel())
	if err != nil {
		level = logrus.InfoLevel
		logrus.Warnf("Unknown log level %q, falling back to info", cfg.LogLevel())
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if !cfg.Log.ToFile {
		return nil
	}

	logFile := constant.GetLogFile(cfg.BaseDir)
	if err := os.MkdirAll(filepath.Dir(logFile), 0700); err != nil {
		return err
	}

	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, rotator))
	return nil
}

// ApplyLogLevel updates the global log level, used by the config watcher.
func ApplyLogLevel(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel())
	if err != nil {
		logrus.Warnf("Unknown log level %q, keeping current level", cfg.LogLevel())
		return
	}
	logrus.SetLevel(level)
}
