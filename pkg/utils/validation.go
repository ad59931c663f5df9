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

// Package utils holds small shared helpers: path existence and type checks
// used as operation preconditions.
package utils

import (
	"fmt"
	"os"
)

// PathType narrows what a validated path may point at.
type PathType int

const (
	PathTypeFile PathType = iota
	PathTypeFolder
	// PathTypeAny accepts files and directories alike.
	PathTypeAny
)

// ValidatePath checks that path is non-empty, exists, and points at the
// expected kind of entry. fieldName names the path in error messages so
// callers can validate several paths without wrapping.
func ValidatePath(fieldName, path string, pathType PathType) error {
	if path == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%s %q does not exist", fieldName, path)
	case err != nil:
		return fmt.Errorf("checking %s %q: %w", fieldName, path, err)
	}

	if pathType == PathTypeFile && info.IsDir() {
		return fmt.Errorf("%s %q is a directory, expected file", fieldName, path)
	}
	if pathType == PathTypeFolder && !info.IsDir() {
		return fmt.Errorf("%s %q is a file, expected directory", fieldName, path)
	}
	return nil
}

// ValidateFileExists checks that path is an existing regular file.
func ValidateFileExists(fieldName, path string) error {
	return ValidatePath(fieldName, path, PathTypeFile)
}

// ValidateFolderExists checks that path is an existing directory.
func ValidateFolderExists(fieldName, path string) error {
	return ValidatePath(fieldName, path, PathTypeFolder)
}

// ValidateOptionalFile is ValidateFileExists for paths that may be unset;
// an empty path passes.
func ValidateOptionalFile(fieldName, path string) error {
	if path == "" {
		return nil
	}
	return ValidateFileExists(fieldName, path)
}
