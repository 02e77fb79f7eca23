package log

import (
	"context"
	"fmt"
	"os"
	"sync"
)

var (
	mu           sync.RWMutex
	global       Logger
	filterLevels = make(map[Level]struct{})
)

func init() {
	global = defaultLogger
}

// SetLogger replaces the global logger.
func SetLogger(l Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

// GetLogger returns the global logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// FilterLevel drops every line logged at one of the given levels.
func FilterLevel(level ...Level) {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range level {
		switch l {
		case LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal:
			filterLevels[l] = struct{}{}
		default:
		}
	}
}

// ResetFilter re-enables every level.
func ResetFilter() {
	mu.Lock()
	filterLevels = make(map[Level]struct{})
	mu.Unlock()
}

func filtered(level Level) bool {
	mu.RLock()
	_, ok := filterLevels[level]
	mu.RUnlock()
	return ok
}

// NewContextLogger returns a FullLogger over the global logger whose
// Valuers see ctx.
func NewContextLogger(ctx context.Context) FullLogger {
	l, _ := WithContext(ctx, GetLogger())
	return &fullLogger{l: l}
}

func Log(level Level, kvs ...interface{}) {
	GetLogger().Log(level, kvs...)
}

func Debugf(format string, v ...interface{}) {
	GetLogger().Log(LevelDebug, DefaultMsgKey, fmt.Sprintf(format, v...))
}

func Infof(format string, v ...interface{}) {
	GetLogger().Log(LevelInfo, DefaultMsgKey, fmt.Sprintf(format, v...))
}

func Warnw(kvs ...interface{}) {
	GetLogger().Log(LevelWarn, kvs...)
}

func Errorf(format string, v ...interface{}) {
	GetLogger().Log(LevelError, DefaultMsgKey, fmt.Sprintf(format, v...))
}

func Fatalf(format string, v ...interface{}) {
	GetLogger().Log(LevelFatal, DefaultMsgKey, fmt.Sprintf(format, v...))
	os.Exit(1)
}
