package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lepinkainen/humanlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging installs the default logger. When file is set, output is also
// written to a size-rotated log file which the caller must close.
func setupLogging(level, file string) (io.Closer, error) {
	if file == "" {
		initLogging(os.Stderr, level)
		return nopCloser{}, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}
	// Opens the file so path errors surface here.
	if _, err := rotator.Write(nil); err != nil {
		return nil, err
	}

	initLogging(io.MultiWriter(os.Stderr, rotator), level)
	return rotator, nil
}

func initLogging(w io.Writer, level string) {
	handler := humanlog.NewHandler(w, &humanlog.Options{
		Level: parseLevel(level),
	})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
