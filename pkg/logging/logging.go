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

// Package logging provides leveled, structured logging for the signing
// pipeline. Codecs and CLI commands take the Logger interface so callers can
// plug in their own backend; DefaultLogger is the built-in implementation.
package logging

import "strings"

// LogLevel orders log severities. Messages below the configured level are
// discarded.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelSilent suppresses all output, including errors.
	LevelSilent
)

var levelNames = map[LogLevel]string{
	LevelDebug:  "debug",
	LevelInfo:   "info",
	LevelWarn:   "warn",
	LevelError:  "error",
	LevelSilent: "silent",
}

// String returns the lowercase name of the level, or "unknown".
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLogLevel resolves a level name, accepting a few aliases ("warning",
// "none", "off"). Unrecognized names resolve to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// LogFormat selects between the built-in output formats.
type LogFormat int

const (
	FormatText LogFormat = iota
	FormatJSON
)

// String returns "text" or "json".
func (f LogFormat) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// ParseLogFormat resolves a format name. Anything other than "json" is text.
func ParseLogFormat(s string) LogFormat {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Logger is the logging interface the rest of the module depends on.
// Messages are printf-style; WithField/WithFields attach structured context
// without mutating the receiver.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})

	// GetLevel reports the minimum level currently emitted.
	GetLevel() LogLevel

	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

// Default returns an info-level text logger writing to stderr.
func Default() Logger {
	return NewLogger(LoggerOptions{})
}

// EnsureLogger substitutes Default() for a nil logger, so callers can hold an
// optional Logger field and log unconditionally.
func EnsureLogger(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
