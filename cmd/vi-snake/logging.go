package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "vi-snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes logrus and the standard logger to logs/vi-snake.log when debug is set
// Otherwise both discard, since stdout and stderr belong to the terminal
// Returns the open log file, nil when logging is off or the file cannot be opened
func setupLogging(debug bool) (*logrus.Logger, *os.File) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if !debug {
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "log directory: %v\n", err)
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logger, f
}

// rotateLog renames path with a timestamp suffix once it exceeds maxLogSize
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(path), fmt.Sprintf("vi-snake-%s.log", stamp))
	os.Rename(path, rotated)
}
