package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode *bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return *h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// envInt reads a positive integer (or zero when allowZero) from the environment
func envInt(name string, fallback int, allowZero bool) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || (v == 0 && !allowZero) {
		return fallback
	}
	return v
}

// newRotatingFile creates a lumberjack logger tuned by GIT_TRUNK_LOG_MAX_* variables
func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("GIT_TRUNK_LOG_MAX_SIZE", 1, false),
		MaxBackups: envInt("GIT_TRUNK_LOG_MAX_BACKUPS", 2, true),
		MaxAge:     envInt("GIT_TRUNK_LOG_MAX_AGE", 30, false),
		Compress:   false,
	}
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// SplogOptions configures a Splog
type SplogOptions struct {
	// Writer receives console output, os.Stdout when nil
	Writer io.Writer
	// LogFile enables a rotating log file that records every level
	LogFile string
	// Debug enables debug lines on the console
	Debug bool
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
	debug     bool
}

// NewSplog creates a console logger. Debug lines are shown when DEBUG is set and
// a log file is written when GIT_TRUNK_LOG_FILE is set.
func NewSplog() *Splog {
	splog, err := NewSplogWithOptions(SplogOptions{
		LogFile: GetLogFilePath(),
		Debug:   os.Getenv("DEBUG") != "",
	})
	if err != nil {
		splog, _ = NewSplogWithOptions(SplogOptions{Debug: os.Getenv("DEBUG") != ""})
		splog.Warn("file logging disabled: %v", err)
	}
	return splog
}

// NewSplogWithOptions creates a splog instance with optional file logging
func NewSplogWithOptions(opts SplogOptions) (*Splog, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}
	splog := &Splog{writer: writer, debug: opts.Debug}

	handlers := []slog.Handler{&simpleHandler{writer: writer, debugMode: &splog.debug}}

	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotating := newRotatingFile(opts.LogFile)
		splog.logWriter = rotating

		handlers = append(handlers, slog.NewTextHandler(rotating, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		}))
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// SetDebug turns console debug output on or off
func (s *Splog) SetDebug(debug bool) {
	s.debug = debug
}

// IsDebug reports whether console debug output is on
func (s *Splog) IsDebug() bool {
	return s.debug
}

func (s *Splog) log(level slog.Level, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, prefix+msg)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "", format, args)
}

// Notice writes a message about something the user may not expect, such as a
// skipped step
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Notice(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "ℹ️  ", format, args)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, "⚠️  ", format, args)
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, "❌ ", format, args)
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, "", format, args)
}

// Tip writes a tip message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "💡 ", format, args)
}

// Page writes content as is
func (s *Splog) Page(content string) {
	_, _ = fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
