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

// Package io provides digest engines that read their input from files.
package io

import (
	"fmt"
	"io"
	"os"

	"github.com/filesign/file-signing/pkg/hashing/digests"
	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"
)

// FileHasher hashes an entire file by streaming it into an inner
// StreamingHashEngine. The file is read exactly once and never loaded fully
// into memory (unless chunkSize == 0, which reads it in one shot).
type FileHasher struct {
	filePath      string
	contentHasher hashengines.StreamingHashEngine
	chunkSize     int
}

// NewFileHasher constructs a FileHasher.
//
//   - filePath: path of the file to hash
//   - contentHasher: engine the file content is streamed into
//   - chunkSize: bytes read per chunk; 0 means "read all at once"
func NewFileHasher(filePath string, contentHasher hashengines.StreamingHashEngine, chunkSize int) (*FileHasher, error) {
	if chunkSize < 0 {
		return nil, fmt.Errorf("chunk size must be non-negative, got %d", chunkSize)
	}
	if filePath == "" {
		return nil, fmt.Errorf("file path must be non-empty")
	}
	if contentHasher == nil {
		return nil, fmt.Errorf("content hasher must not be nil")
	}

	return &FileHasher{
		filePath:      filePath,
		contentHasher: contentHasher,
		chunkSize:     chunkSize,
	}, nil
}

// SetFile changes the file hashed by the next Compute call.
func (h *FileHasher) SetFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path must be non-empty")
	}
	h.filePath = filePath
	return nil
}

// DigestName returns the inner engine's algorithm name.
func (h *FileHasher) DigestName() string {
	return h.contentHasher.DigestName()
}

// DigestSize is delegated to the inner content hasher.
func (h *FileHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// Compute streams the whole file through the inner engine and returns the
// digest. I/O errors and inner-engine errors are propagated.
func (h *FileHasher) Compute() (digests.Digest, error) {
	// Reset inner state before each computation.
	h.contentHasher.Reset(nil)

	f, err := os.Open(h.filePath)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open file %q: %w", h.filePath, err)
	}
	defer f.Close()

	if err := StreamInto(h.contentHasher, f, h.chunkSize); err != nil {
		return digests.Digest{}, fmt.Errorf("read file %q: %w", h.filePath, err)
	}

	return h.contentHasher.Compute()
}

// StreamInto feeds everything readable from r into the engine using a fixed
// chunk buffer, so memory use stays O(1) in the input size. A chunkSize of 0
// reads the input in one shot.
func StreamInto(engine hashengines.Streaming, r io.Reader, chunkSize int) error {
	if chunkSize < 0 {
		return fmt.Errorf("chunk size must be non-negative, got %d", chunkSize)
	}

	if chunkSize == 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		engine.Update(data)
		return nil
	}

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			engine.Update(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

var _ hashengines.HashEngine = (*FileHasher)(nil)
