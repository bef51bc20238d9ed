package logging

import (
	"fmt"
	"log"
	"strings"
)

// Provides a simple leveled logger interface for the application

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

type StdLogger struct {
	Min Level
}

func (l StdLogger) Debug(msg string, args ...any) { l.emit(LevelDebug, "DEBUG: ", msg, args...) }
func (l StdLogger) Info(msg string, args ...any)  { l.emit(LevelInfo, "INFO: ", msg, args...) }
func (l StdLogger) Warn(msg string, args ...any)  { l.emit(LevelWarn, "WARN: ", msg, args...) }
func (l StdLogger) Error(msg string, args ...any) { l.emit(LevelError, "ERROR: ", msg, args...) }

// emit accepts either printf-style messages or trailing key/value pairs.
func (l StdLogger) emit(lv Level, prefix, msg string, args ...any) {
	if lv < l.Min {
		return
	}
	if strings.Contains(msg, "%") {
		log.Printf(prefix+msg, args...)
		return
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(msg)
	i := 0
	for ; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	if i < len(args) {
		fmt.Fprintf(&b, " %v", args[i])
	}
	log.Print(b.String())
}
