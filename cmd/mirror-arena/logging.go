package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mirror-arena/parameter"
)

const (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = parameter.MaxLogSize
)

// setupLogging returns a logger writing to logs/ when debug is set, discarding otherwise.
// Terminal output would corrupt the TUI, so the logger never writes to stdout or stderr.
// The returned file is nil when logging is disabled.
func setupLogging(debug bool) (*logrus.Logger, *os.File) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if !debug {
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.WarnLevel)
		return log, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return log, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log, nil
	}

	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	log.WithField("pid", os.Getpid()).Info("logging started")
	return log, f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logFileName)
	base := logFileName[:len(logFileName)-len(ext)]
	rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
	_ = os.Rename(logPath, rotated)
}
