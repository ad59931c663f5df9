// Copyright 2025 The file-signing Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var _ Logger = (*DefaultLogger)(nil)

// LoggerOptions configures NewLogger. The zero value is a usable default:
// info level, text format, stderr.
type LoggerOptions struct {
	Level LogLevel
	// Format picks a built-in formatter; ignored when Formatter is set.
	Format    LogFormat
	Formatter Formatter
	Output    io.Writer
}

// DefaultLogger is the built-in Logger. A mutex guards the writer and level,
// so a single instance may be shared across goroutines.
type DefaultLogger struct {
	mu        sync.Mutex
	level     LogLevel
	formatter Formatter
	out       io.Writer
	fields    map[string]interface{}
}

// NewLogger builds a DefaultLogger from opts, filling in stderr and the text
// formatter where unset.
func NewLogger(opts LoggerOptions) *DefaultLogger {
	l := &DefaultLogger{
		level:     opts.Level,
		formatter: opts.Formatter,
		out:       opts.Output,
	}
	if l.out == nil {
		l.out = os.Stderr
	}
	if l.formatter == nil {
		if opts.Format == FormatJSON {
			l.formatter = &JSONFormatter{}
		} else {
			l.formatter = &TextFormatter{}
		}
	}
	return l
}

// WithFields returns a child logger whose entries carry the merged fields.
// The receiver keeps its own field set.
func (l *DefaultLogger) WithFields(fields map[string]interface{}) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return &DefaultLogger{
		level:     l.level,
		formatter: l.formatter,
		out:       l.out,
		fields:    merged,
	}
}

// WithField returns a child logger with one extra field.
func (l *DefaultLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// SetLevel changes the minimum emitted level.
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// GetLevel reports the minimum emitted level.
func (l *DefaultLogger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetOutput redirects future entries to w.
func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

func (l *DefaultLogger) emit(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	data, err := l.formatter.Format(LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
		Fields:    l.fields,
	})
	if err != nil {
		fmt.Fprintf(l.out, "logging error: %v\n", err)
		return
	}
	_, _ = l.out.Write(data)
}

func (l *DefaultLogger) Debug(format string, args ...interface{}) {
	l.emit(LevelDebug, format, args...)
}

func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.emit(LevelInfo, format, args...)
}

func (l *DefaultLogger) Warn(format string, args ...interface{}) {
	l.emit(LevelWarn, format, args...)
}

func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.emit(LevelError, format, args...)
}
