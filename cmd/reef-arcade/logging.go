package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "reef-arcade.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog to a file under dir in debug mode and discards otherwise
// The terminal UI owns stdout and stderr, so logs never go there
func setupLogging(debug bool, dir string) (*slog.Logger, *os.File) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if !debug {
		slog.SetDefault(discard)
		return discard, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir %s: %v (logging disabled)\n", dir, err)
		slog.SetDefault(discard)
		return discard, nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("reef-arcade-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "rotate %s: %v\n", path, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v (logging disabled)\n", path, err)
		slog.SetDefault(discard)
		return discard, nil
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	return logger, f
}
