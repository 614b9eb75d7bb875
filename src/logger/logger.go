// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the Printf-style logging interface used outside request handling.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// Options selects the structured logger's level, encoding and destination.
type Options struct {
	// Level is one of "debug", "info", "warn" or "error". Anything else means "info".
	Level string
	// Format is "json" (default) or "console".
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a zap logger from opts.
func New(opts Options) *zap.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var encoder zapcore.Encoder
	if strings.EqualFold(opts.Format, "console") {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "timestamp"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), zap.NewAtomicLevelAt(ParseLevel(opts.Level)))
	return zap.New(core)
}

// ParseLevel maps a config level name to a zap level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// CLILogger writes plain lines for command-line output.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a CLILogger writing to stdout with no prefix or timestamps.
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: log.New(os.Stdout, "", 0)}
}

func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger adapts a zap logger to [Logger], emitting one JSON object per message at info level.
//
// It is safe for concurrent use. SetOutput rebuilds the underlying core so
// later messages go to the new writer with the same options.
type JSONLogger struct {
	mu     sync.RWMutex
	opts   Options
	silent bool
	sugar  *zap.SugaredLogger
}

// NewJSONLogger creates a JSONLogger writing to w. A silent logger drops everything.
func NewJSONLogger(w io.Writer, silent bool) *JSONLogger {
	if w == nil {
		w = io.Discard
	}
	j := &JSONLogger{opts: Options{Output: w}, silent: silent}
	j.rebuild()
	return j
}

func (j *JSONLogger) rebuild() {
	if j.silent {
		j.sugar = zap.NewNop().Sugar()
		return
	}
	j.sugar = New(j.opts).Sugar()
}

func (j *JSONLogger) Printf(format string, v ...any) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	j.sugar.Infof(format, v...)
}

func (j *JSONLogger) Println(v ...any) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	j.sugar.Info(v...)
}

func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		w = io.Discard
	}
	j.opts.Output = w
	j.rebuild()
}
