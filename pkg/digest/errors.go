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

package digest

import (
	"errors"
	"fmt"
)

// ErrorType categorizes digest-engine errors for programmatic handling.
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeArgumentRequired indicates a required byte slice or string was
	// nil. Raised eagerly at assignment time, not deferred to computation.
	ErrTypeArgumentRequired

	// ErrTypeEmptyInput indicates a digest was requested over a nil or
	// zero-length message.
	ErrTypeEmptyInput
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrTypeArgumentRequired:
		return "ArgumentRequired"
	case ErrTypeEmptyInput:
		return "EmptyInput"
	default:
		return "UnknownError"
	}
}

// Error is a structured error for digest-engine failures. It carries the
// error category, a human-readable message, and an optional wrapped cause.
type Error struct {
	// Type categorizes the error.
	Type ErrorType

	// Message is a human-readable description of what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new digest-engine error.
func NewError(errType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks whether err is a digest-engine Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Type == errType
	}
	return false
}
