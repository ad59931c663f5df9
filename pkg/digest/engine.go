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

// Package digest implements the keyed and unkeyed digest computation engine.
//
// An Engine wraps exactly one digest primitive at a time, selected by
// algorithm. It operates in one of two mutually exclusive modes:
//
//   - keyed mode (HMAC algorithms): the key is bound to the primitive at
//     construction time and every computation hashes only the supplied
//     message;
//   - unkeyed mode: an optional salt is appended to the message before
//     hashing (message || salt, never salt first).
//
// An Engine holds single-slot origin/digest state and is therefore not safe
// for concurrent use; concurrent callers must each own a private instance.
package digest

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"
	hashio "github.com/filesign/file-signing/pkg/hashing/engines/io"

	// Register the in-memory digest primitives.
	_ "github.com/filesign/file-signing/pkg/hashing/engines/memory"
)

// DefaultChunkSize is the buffer size used when consuming streams.
const DefaultChunkSize = 1024

// Engine computes digests over byte buffers or streams.
//
// The zero value is not usable; construct with New. The engine keeps the most
// recently hashed message (origin) and the most recently computed digest
// until Reset or the next computation.
type Engine struct {
	algorithm hashengines.Algorithm
	primitive hashengines.StreamingHashEngine
	chunkSize int

	origin []byte
	salt   []byte
	key    []byte
	hashed []byte
}

// New creates an Engine for the given algorithm.
//
// An unknown or empty algorithm falls back to sha512 (hmac-sha512 for names
// carrying an hmac prefix); this is the documented default, not an error.
// The engine owns a fresh primitive instance; nothing is shared with other
// engines.
func New(algorithm hashengines.Algorithm) (*Engine, error) {
	e := &Engine{
		algorithm: hashengines.ParseAlgorithm(algorithm.String()),
		chunkSize: DefaultChunkSize,
	}
	if err := e.configure(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewKeyed creates an Engine in keyed mode with the key already assigned.
// The algorithm is promoted to its HMAC form when necessary.
func NewKeyed(algorithm hashengines.Algorithm, key []byte) (*Engine, error) {
	e, err := New(hashengines.ParseAlgorithm(algorithm.String()).ToKeyed())
	if err != nil {
		return nil, err
	}
	if err := e.SetKey(key); err != nil {
		return nil, err
	}
	return e, nil
}

// configure replaces the current primitive with a fresh instance for the
// current algorithm and key. The previous primitive is dropped, so stale key
// material does not linger beyond its configured lifetime.
func (e *Engine) configure() error {
	var keyArg []byte
	if e.algorithm.Keyed() {
		keyArg = e.key
		if keyArg == nil {
			keyArg = []byte{}
		}
	}

	primitive, err := hashengines.Create(e.algorithm, keyArg)
	if err != nil {
		return err
	}
	e.primitive = primitive
	return nil
}

// Algorithm returns the engine's configured algorithm.
func (e *Engine) Algorithm() hashengines.Algorithm {
	return e.algorithm
}

// Keyed reports whether the engine operates in keyed (HMAC) mode.
func (e *Engine) Keyed() bool {
	return e.algorithm.Keyed()
}

// DigestSize returns the fixed digest length in bytes for the configured
// algorithm. It never varies call to call.
func (e *Engine) DigestSize() int {
	return e.primitive.DigestSize()
}

// SetChunkSize sets the buffer size used by ComputeDigestStreaming.
// Non-positive values restore the default. The chunk size never changes the
// resulting digest, only how much is read per syscall.
func (e *Engine) SetChunkSize(size int) {
	if size <= 0 {
		size = DefaultChunkSize
	}
	e.chunkSize = size
}

// ChunkSize returns the streaming buffer size.
func (e *Engine) ChunkSize() int {
	return e.chunkSize
}

// SetOrigin assigns the message bytes hashed by Compute. A nil slice fails
// with an ArgumentRequired error at assignment time.
func (e *Engine) SetOrigin(message []byte) error {
	if message == nil {
		return NewError(ErrTypeArgumentRequired, "origin bytes are required", nil)
	}
	e.origin = cloneBytes(message)
	return nil
}

// SetOriginText assigns the origin from a UTF-8 string.
func (e *Engine) SetOriginText(message string) {
	e.origin = []byte(message)
}

// Origin returns a copy of the current origin bytes.
func (e *Engine) Origin() []byte {
	return cloneBytes(e.origin)
}

// OriginText returns the origin decoded as UTF-8 text.
func (e *Engine) OriginText() string {
	return string(e.origin)
}

// SetSalt assigns the salt appended to messages in unkeyed mode. A nil slice
// fails with an ArgumentRequired error. Salt is ignored in keyed mode; key
// and salt are mutually exclusive by design.
func (e *Engine) SetSalt(salt []byte) error {
	if salt == nil {
		return NewError(ErrTypeArgumentRequired, "salt bytes are required", nil)
	}
	e.salt = cloneBytes(salt)
	return nil
}

// SetSaltText assigns the salt from a UTF-8 string.
func (e *Engine) SetSaltText(salt string) {
	e.salt = []byte(salt)
}

// Salt returns a copy of the active salt.
func (e *Engine) Salt() []byte {
	return cloneBytes(e.salt)
}

// SaltText returns the salt decoded as UTF-8 text.
func (e *Engine) SaltText() string {
	return string(e.salt)
}

// SetKey assigns the HMAC key and rebuilds the primitive with the key bound
// in. An engine configured with an unkeyed algorithm is promoted to the
// keyed counterpart. A nil key fails with an ArgumentRequired error.
func (e *Engine) SetKey(key []byte) error {
	if key == nil {
		return NewError(ErrTypeArgumentRequired, "key bytes are required", nil)
	}
	e.key = cloneBytes(key)
	e.algorithm = e.algorithm.ToKeyed()
	return e.configure()
}

// SetKeyText assigns the key from a UTF-8 string.
func (e *Engine) SetKeyText(key string) error {
	return e.SetKey([]byte(key))
}

// Key returns a copy of the current key.
func (e *Engine) Key() []byte {
	return cloneBytes(e.key)
}

// KeyText returns the key decoded as UTF-8 text.
func (e *Engine) KeyText() string {
	return string(e.key)
}

// ComputeDigest hashes message and returns the digest bytes.
//
// A nil or empty message fails with an EmptyInput error. In unkeyed mode a
// present, non-empty salt is appended to the message before hashing. In
// keyed mode the key is already bound into the primitive and only the
// message is hashed. The message is retained as the engine's origin and the
// result as its last digest.
func (e *Engine) ComputeDigest(message []byte) ([]byte, error) {
	if len(message) == 0 {
		return nil, NewError(ErrTypeEmptyInput, "message must be non-empty", nil)
	}

	e.origin = cloneBytes(message)

	e.primitive.Reset(nil)
	e.primitive.Update(message)
	if !e.Keyed() && len(e.salt) > 0 {
		e.primitive.Update(e.salt)
	}

	d, err := e.primitive.Compute()
	if err != nil {
		return nil, err
	}
	e.hashed = d.Value()
	return cloneBytes(e.hashed), nil
}

// Compute hashes the origin previously assigned via SetOrigin or
// SetOriginText, applying the same salt and key rules as ComputeDigest.
// It fails with an EmptyInput error when no origin is set.
func (e *Engine) Compute() ([]byte, error) {
	return e.ComputeDigest(e.origin)
}

// ComputeDigestWith assigns saltOrKey first, then delegates to ComputeDigest.
// In keyed mode the argument is the key; in unkeyed mode it is the salt.
func (e *Engine) ComputeDigestWith(message, saltOrKey []byte) ([]byte, error) {
	if e.Keyed() {
		if err := e.SetKey(saltOrKey); err != nil {
			return nil, err
		}
	} else {
		if err := e.SetSalt(saltOrKey); err != nil {
			return nil, err
		}
	}
	return e.ComputeDigest(message)
}

// ComputeDigestText hashes a UTF-8 message and returns the digest encoded
// as standard base64.
func (e *Engine) ComputeDigestText(message string) (string, error) {
	return e.encodeDigest(e.ComputeDigest([]byte(message)))
}

// ComputeDigestTextWith assigns a UTF-8 salt (or key, in keyed mode) and
// hashes a UTF-8 message, returning the digest encoded as standard base64.
func (e *Engine) ComputeDigestTextWith(message, saltOrKey string) (string, error) {
	return e.encodeDigest(e.ComputeDigestWith([]byte(message), []byte(saltOrKey)))
}

func (e *Engine) encodeDigest(value []byte, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(value), nil
}

// ComputeDigestStreaming consumes r sequentially and returns the digest of
// everything read, allowing inputs larger than memory to be hashed with a
// fixed-size buffer. The stream content is not retained as origin. In
// unkeyed mode a present salt is appended after the stream, matching the
// message || salt contract of ComputeDigest.
func (e *Engine) ComputeDigestStreaming(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, NewError(ErrTypeArgumentRequired, "stream reader is required", nil)
	}

	e.primitive.Reset(nil)
	if err := hashio.StreamInto(e.primitive, r, e.chunkSize); err != nil {
		return nil, err
	}
	if !e.Keyed() && len(e.salt) > 0 {
		e.primitive.Update(e.salt)
	}

	d, err := e.primitive.Compute()
	if err != nil {
		return nil, err
	}
	e.hashed = d.Value()
	return cloneBytes(e.hashed), nil
}

// CreateSalt fills a slice of the requested length from the platform CSPRNG,
// stores it as the active salt, and returns it.
func (e *Engine) CreateSalt(length int) ([]byte, error) {
	if length <= 0 {
		return nil, NewError(ErrTypeArgumentRequired, "salt length must be positive", nil)
	}

	salt := make([]byte, length)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	e.salt = salt
	return cloneBytes(salt), nil
}

// Reset clears the origin, last digest, salt, and key, and reconfigures a
// fresh primitive for the current algorithm.
func (e *Engine) Reset() error {
	e.origin = nil
	e.hashed = nil
	e.salt = nil
	e.key = nil
	return e.configure()
}

// LastDigest returns a copy of the most recently computed digest, or nil if
// none has been computed since construction or Reset.
func (e *Engine) LastDigest() []byte {
	return cloneBytes(e.hashed)
}

// LastDigestText returns the most recent digest encoded as standard base64,
// or the empty string if none has been computed.
func (e *Engine) LastDigestText() string {
	if e.hashed == nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(e.hashed)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
