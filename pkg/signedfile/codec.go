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

// Package signedfile implements the signed-file protocol.
//
// A signed file is a byte stream laid out as
//
//	[ digest: fixed length = digest size of the algorithm ][ body: original bytes, unmodified ]
//
// with no magic number, no algorithm tag, and no length field. The algorithm
// and key are external context: the verifier must supply the same pair the
// signer used. Verification with a different algorithm or key does not fail
// distinctly from tampering; it simply does not match.
//
// Sign and Verify run to completion on the calling goroutine with blocking
// I/O and a fixed-size copy buffer, so memory use is O(1) in the file size.
package signedfile

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"os"

	"github.com/filesign/file-signing/pkg/digest"
	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"
	"github.com/filesign/file-signing/pkg/logging"
	"github.com/filesign/file-signing/pkg/tracing"
	"github.com/filesign/file-signing/pkg/utils"
)

// DefaultChunkSize is the copy buffer size used when writing the body.
const DefaultChunkSize = 1024

// Codec signs and verifies files with a keyed digest header.
//
// A Codec is cheap to construct and carries no state across operations;
// each Sign or Verify call configures a private digest engine and releases
// it together with both file handles on every exit path.
type Codec struct {
	algorithm hashengines.Algorithm
	key       []byte
	chunkSize int
	logger    logging.Logger
}

// NewCodec creates a Codec for the given algorithm and key. The algorithm is
// promoted to its HMAC form when an unkeyed name is supplied; unknown names
// fall back to hmac-sha512. The key may be nil here; operations fail with a
// MissingKey error when invoked without one.
func NewCodec(algorithm hashengines.Algorithm, key []byte) *Codec {
	return &Codec{
		algorithm: hashengines.ParseAlgorithm(algorithm.String()).ToKeyed(),
		key:       key,
		chunkSize: DefaultChunkSize,
	}
}

// SetChunkSize sets the buffer size used for both the hashing and copy
// passes. Non-positive values restore the default. Returns the Codec for
// method chaining.
func (c *Codec) SetChunkSize(size int) *Codec {
	if size <= 0 {
		size = DefaultChunkSize
	}
	c.chunkSize = size
	return c
}

// SetLogger sets the logger used for operational output. Returns the Codec
// for method chaining.
func (c *Codec) SetLogger(l logging.Logger) *Codec {
	c.logger = l
	return c
}

// Algorithm returns the codec's keyed algorithm.
func (c *Codec) Algorithm() hashengines.Algorithm {
	return c.algorithm
}

// DigestSize returns the header length in bytes for the codec's algorithm.
func (c *Codec) DigestSize() int {
	return c.algorithm.Size()
}

// Sign computes the keyed digest of the file at sourcePath and writes
// digest || source bytes to signedPath.
//
// The source is streamed twice: once through the digest engine and once for
// the copy, so files larger than memory are handled with a fixed buffer.
// signedPath is created (truncated if present). On error the destination may
// hold partial output; callers must treat partial output as invalid and
// re-run Sign against a fresh destination rather than retry blindly.
func (c *Codec) Sign(ctx context.Context, sourcePath, signedPath string) error {
	if c.key == nil {
		return NewError(ErrTypeMissingKey, "a key is required to sign", nil)
	}
	if err := utils.ValidateFileExists("source file", sourcePath); err != nil {
		return NewErrorWithPath(ErrTypeSourceNotFound, sourcePath, "source file is missing or unreadable", err)
	}

	return tracing.Run(ctx, "signedfile.Sign", map[string]interface{}{
		"algorithm": c.algorithm.String(),
		"source":    sourcePath,
		"signed":    signedPath,
	}, func(context.Context) error {
		return c.sign(sourcePath, signedPath)
	})
}

func (c *Codec) sign(sourcePath, signedPath string) error {
	engine, err := digest.NewKeyed(c.algorithm, c.key)
	if err != nil {
		return err
	}
	engine.SetChunkSize(c.chunkSize)

	src, err := os.Open(sourcePath)
	if err != nil {
		return NewErrorWithPath(ErrTypeIO, sourcePath, "opening source file", err)
	}
	defer src.Close()

	header, err := engine.ComputeDigestStreaming(src)
	if err != nil {
		return NewErrorWithPath(ErrTypeIO, sourcePath, "hashing source file", err)
	}

	// Re-position for the copy pass.
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return NewErrorWithPath(ErrTypeIO, sourcePath, "rewinding source file", err)
	}

	dst, err := os.Create(signedPath)
	if err != nil {
		return NewErrorWithPath(ErrTypeIO, signedPath, "creating signed file", err)
	}

	if _, err := dst.Write(header); err != nil {
		dst.Close()
		return NewErrorWithPath(ErrTypeIO, signedPath, "writing digest header", err)
	}
	if _, err := io.CopyBuffer(dst, src, make([]byte, c.chunkSize)); err != nil {
		dst.Close()
		return NewErrorWithPath(ErrTypeIO, signedPath, "copying source body", err)
	}
	if err := dst.Close(); err != nil {
		return NewErrorWithPath(ErrTypeIO, signedPath, "closing signed file", err)
	}

	c.log().Debug("signed %s -> %s (%s, %d header bytes)",
		sourcePath, signedPath, c.algorithm, len(header))
	return nil
}

// Verify recomputes the body digest of the file at signedPath and compares
// it against the stored header.
//
// It returns true only when every byte matches. A mismatch, including a
// file shorter than the header, is a normal false result, never an error;
// errors are reserved for a missing key, a missing file, and I/O failures.
// The comparison is constant-time over the full digest length, so timing
// does not leak the position of the first differing byte.
func (c *Codec) Verify(ctx context.Context, signedPath string) (bool, error) {
	if c.key == nil {
		return false, NewError(ErrTypeMissingKey, "a key is required to verify", nil)
	}
	if err := utils.ValidateFileExists("signed file", signedPath); err != nil {
		return false, NewErrorWithPath(ErrTypeSourceNotFound, signedPath, "signed file is missing or unreadable", err)
	}

	var ok bool
	err := tracing.Run(ctx, "signedfile.Verify", map[string]interface{}{
		"algorithm": c.algorithm.String(),
		"signed":    signedPath,
	}, func(context.Context) error {
		var err error
		ok, err = c.verify(signedPath)
		return err
	})
	return ok, err
}

func (c *Codec) verify(signedPath string) (bool, error) {
	engine, err := digest.NewKeyed(c.algorithm, c.key)
	if err != nil {
		return false, err
	}
	engine.SetChunkSize(c.chunkSize)

	f, err := os.Open(signedPath)
	if err != nil {
		return false, NewErrorWithPath(ErrTypeIO, signedPath, "opening signed file", err)
	}
	defer f.Close()

	stored := make([]byte, engine.DigestSize())
	if _, err := io.ReadFull(f, stored); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// Shorter than the header: treated as a length mismatch.
			c.log().Debug("signed file %s is shorter than the %d-byte header", signedPath, len(stored))
			return false, nil
		}
		return false, NewErrorWithPath(ErrTypeIO, signedPath, "reading digest header", err)
	}

	computed, err := engine.ComputeDigestStreaming(f)
	if err != nil {
		return false, NewErrorWithPath(ErrTypeIO, signedPath, "hashing signed file body", err)
	}

	match := subtle.ConstantTimeCompare(stored, computed) == 1
	c.log().Debug("verified %s (%s): match=%t", signedPath, c.algorithm, match)
	return match, nil
}

func (c *Codec) log() logging.Logger {
	return logging.EnsureLogger(c.logger)
}

// Sign is a convenience wrapper: it signs sourcePath into signedPath with a
// one-shot Codec for the given algorithm and key.
func Sign(ctx context.Context, algorithm hashengines.Algorithm, key []byte, sourcePath, signedPath string) error {
	return NewCodec(algorithm, key).Sign(ctx, sourcePath, signedPath)
}

// Verify is a convenience wrapper: it verifies signedPath with a one-shot
// Codec for the given algorithm and key.
func Verify(ctx context.Context, algorithm hashengines.Algorithm, key []byte, signedPath string) (bool, error) {
	return NewCodec(algorithm, key).Verify(ctx, signedPath)
}
