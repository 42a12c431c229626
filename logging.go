package main

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	persistentLogFile *os.File
	loggingMu         sync.Mutex
)

// setupLogger initializes the structured logger, writing to stdout
// and, when the file can be opened, a persistent log file.
func setupLogger(path string) {
	loggingMu.Lock()
	defer loggingMu.Unlock()

	if persistentLogFile != nil {
		_ = persistentLogFile.Sync()
		_ = persistentLogFile.Close()
		persistentLogFile = nil
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		logFile = nil
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var out io.Writer = os.Stdout
	if logFile != nil {
		persistentLogFile = logFile
		out = io.MultiWriter(os.Stdout, logFile)
	}

	handler := slog.NewTextHandler(out, opts)
	logger := slog.New(handler).With("app", "kinobot")
	slog.SetDefault(logger)

	if logFile != nil {
		slog.Info("Persistent logging enabled", "file", path)
	} else {
		slog.Error("Persistent logging disabled: failed to open log file", "file", path)
	}
}

func closeLogger() {
	loggingMu.Lock()
	defer loggingMu.Unlock()

	if persistentLogFile == nil {
		return
	}
	_ = persistentLogFile.Sync()
	_ = persistentLogFile.Close()
	persistentLogFile = nil
}
