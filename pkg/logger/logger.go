// Package logger is the process-wide structured logger.
//
// Calls take a message followed by alternating key/value pairs:
//
//	logger.Info("Server starting", "address", addr)
//	logger.Error("Failed to load catalog", "error", err)
//
// A trailing value without a key is logged under "detail" (or "error" when it is an error).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger(os.Stderr, "development", "")
}

// Init configures the global logger for the given environment. Production
// environments log JSON, everything else a human readable console format.
// LOG_LEVEL overrides the default level (debug in development, info otherwise).
func Init(env string) {
	InitWithOutput(os.Stderr, env, os.Getenv("LOG_LEVEL"))
}

// InitWithOutput is Init with an explicit writer and level, used by tests.
func InitWithOutput(w io.Writer, env, level string) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w, env, level)
}

func newLogger(w io.Writer, env, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	out := w
	if !isProduction(env) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	lvl := parseLevel(level)
	if level == "" {
		lvl = zerolog.InfoLevel
		if !isProduction(env) {
			lvl = zerolog.DebugLevel
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func isProduction(env string) bool {
	switch strings.ToLower(env) {
	case "production", "prod":
		return true
	}
	return false
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, keyvals ...any) {
	l := current()
	write(l.Debug(), msg, keyvals)
}

func Info(msg string, keyvals ...any) {
	l := current()
	write(l.Info(), msg, keyvals)
}

func Warn(msg string, keyvals ...any) {
	l := current()
	write(l.Warn(), msg, keyvals)
}

func Error(msg string, keyvals ...any) {
	l := current()
	write(l.Error(), msg, keyvals)
}

// Fatal logs and exits the process with status 1.
func Fatal(msg string, keyvals ...any) {
	l := current()
	write(l.Fatal(), msg, keyvals)
}

func write(ev *zerolog.Event, msg string, keyvals []any) {
	if ev == nil {
		return
	}
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok || i+1 >= len(keyvals) {
			addLoose(ev, keyvals[i])
			if !ok {
				// the value took the key's slot; resync on the next element
				i--
			}
			continue
		}
		addField(ev, key, keyvals[i+1])
	}
	ev.Msg(msg)
}

func addLoose(ev *zerolog.Event, v any) {
	if err, ok := v.(error); ok {
		ev.AnErr("error", err)
		return
	}
	ev.Str("detail", fmt.Sprint(v))
}

func addField(ev *zerolog.Event, key string, v any) {
	switch val := v.(type) {
	case error:
		ev.AnErr(key, val)
	case string:
		ev.Str(key, val)
	case int:
		ev.Int(key, val)
	case bool:
		ev.Bool(key, val)
	case float64:
		ev.Float64(key, val)
	case time.Duration:
		ev.Dur(key, val)
	default:
		ev.Interface(key, val)
	}
}
