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

package signedfile

import (
	"errors"
	"fmt"
)

// ErrorType categorizes signed-file protocol errors for programmatic
// handling. A digest mismatch during Verify is never one of these: it is a
// normal boolean result, distinct from "verification could not be performed".
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeMissingKey indicates a keyed operation was invoked without a key.
	ErrTypeMissingKey

	// ErrTypeSourceNotFound indicates the target path does not exist or is
	// not readable.
	ErrTypeSourceNotFound

	// ErrTypeIO indicates an underlying read/write failure during streaming.
	ErrTypeIO
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrTypeMissingKey:
		return "MissingKey"
	case ErrTypeSourceNotFound:
		return "SourceNotFound"
	case ErrTypeIO:
		return "IOError"
	default:
		return "UnknownError"
	}
}

// Error is a structured error for signed-file protocol failures.
type Error struct {
	// Type categorizes the error.
	Type ErrorType

	// Path is the file path related to the error (optional).
	Path string

	// Message is a human-readable description of what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("%s: %s (path: %s): %v", e.Type, e.Message, e.Path, e.Cause)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Type, e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new protocol error.
func NewError(errType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewErrorWithPath creates a new protocol error tied to a file path.
func NewErrorWithPath(errType ErrorType, path, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks whether err is a protocol Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Type == errType
	}
	return false
}
