// Package logging provides the ambient structured logger the index engine
// and its factory use for diagnostics. The engine's own operations never
// log on the hot path (spec.md §1 places logging out of the core's
// scope); this package exists for the embedding application to observe
// construction, factory selection, and failures.
//
// Grounded on _examples/utkarsh5026-StoreMy/pkg/logging/logger.go's
// global slog.Logger behind a sync.RWMutex with lazy default
// initialization, trimmed to the subset of context helpers relevant to an
// index engine (WithIndex/WithComponent/WithError); the transaction/page/
// lock helpers in the teacher belong to subsystems this module doesn't
// have.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	logger   *slog.Logger
	loggerMu sync.RWMutex
	logFile  *os.File
	isInited bool
	initOnce sync.Once
)

// Level is the logging verbosity.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Config configures the global logger.
type Config struct {
	Level      Level
	OutputPath string // empty for stdout
	Format     string // "json" or "text"
}

// Init initializes the global logger. A second call without an
// intervening Close returns an error, matching the teacher's
// initialize-once contract.
func Init(config Config) error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if isInited {
		return fmt.Errorf("logger already initialized; call Close() first to reinitialize")
	}

	var writer io.Writer
	if config.OutputPath == "" {
		writer = os.Stdout
	} else {
		if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0o750); err != nil {
			return err
		}
		file, err := os.OpenFile(config.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		writer = file
		logFile = file
	}

	var level slog.Level
	switch config.Level {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelWarn:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	logger = slog.New(handler)
	isInited = true
	return nil
}

// initDefault sets up a stdout text logger at INFO; used lazily by Get.
func initDefault() {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if isInited {
		return
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	isInited = true
}

// Close tears down the current logger and any open file handle. Safe to
// call when nothing is initialized.
func Close() error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if !isInited {
		return nil
	}
	var err error
	if logFile != nil {
		err = logFile.Close()
		logFile = nil
	}
	logger = nil
	isInited = false
	initOnce = sync.Once{}
	return err
}

// Get returns the current logger, lazily defaulting on first use.
func Get() *slog.Logger {
	loggerMu.RLock()
	if isInited {
		l := logger
		loggerMu.RUnlock()
		return l
	}
	loggerMu.RUnlock()

	initOnce.Do(initDefault)

	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// WithIndex attaches the index name to every log line written through the
// returned logger.
func WithIndex(indexName string) *slog.Logger {
	return Get().With("index", indexName)
}

// WithComponent attaches a component/subsystem tag.
func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}

// WithError attaches an error in structured form.
func WithError(err error) *slog.Logger {
	return Get().With("error", err.Error())
}
