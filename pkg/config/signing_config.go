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

// Package config holds the configuration object that selects the digest
// algorithm and streaming parameters and builds engines, file hashers, and
// signed-file codecs from them.
package config

import (
	"github.com/filesign/file-signing/pkg/digest"
	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"
	hashio "github.com/filesign/file-signing/pkg/hashing/engines/io"
	"github.com/filesign/file-signing/pkg/logging"
	"github.com/filesign/file-signing/pkg/signedfile"
)

// SigningConfig determines which algorithm to use and how files are
// streamed. Setters chain, so a config reads as one expression:
//
//	cfg := config.NewSigningConfig().SetAlgorithm("hmac-sha256").SetChunkSize(4096)
type SigningConfig struct {
	// Digest algorithm name (e.g. "sha256", "hmac-sha512").
	algorithm hashengines.Algorithm

	// Chunk size for streaming reads and the signed-file copy buffer.
	chunkSize int

	// Length in bytes of salts produced for unkeyed salted digests.
	saltSize int

	// Logger handed to codecs built from this config.
	logger logging.Logger
}

// Default streaming parameters.
const (
	DefaultChunkSize = signedfile.DefaultChunkSize
	DefaultSaltSize  = 16
)

// NewSigningConfig creates a configuration with defaults: sha512 digests
// (hmac-sha512 once a key enters the picture), a 1024-byte chunk buffer,
// and 16-byte salts.
func NewSigningConfig() *SigningConfig {
	return &SigningConfig{
		algorithm: hashengines.DefaultUnkeyed,
		chunkSize: DefaultChunkSize,
		saltSize:  DefaultSaltSize,
	}
}

// SetAlgorithm selects the digest algorithm by name. Unknown names fall back
// to the documented defaults rather than failing. Returns the config for
// method chaining.
func (c *SigningConfig) SetAlgorithm(name string) *SigningConfig {
	c.algorithm = hashengines.ParseAlgorithm(name)
	return c
}

// SetChunkSize sets the streaming chunk size. Non-positive values restore
// the default. Returns the config for method chaining.
func (c *SigningConfig) SetChunkSize(size int) *SigningConfig {
	if size <= 0 {
		size = DefaultChunkSize
	}
	c.chunkSize = size
	return c
}

// SetSaltSize sets the generated salt length. Non-positive values restore
// the default. Returns the config for method chaining.
func (c *SigningConfig) SetSaltSize(size int) *SigningConfig {
	if size <= 0 {
		size = DefaultSaltSize
	}
	c.saltSize = size
	return c
}

// SetLogger sets the logger propagated to codecs built from this config.
// Returns the config for method chaining.
func (c *SigningConfig) SetLogger(l logging.Logger) *SigningConfig {
	c.logger = l
	return c
}

// Algorithm returns the configured algorithm.
func (c *SigningConfig) Algorithm() hashengines.Algorithm {
	return c.algorithm
}

// ChunkSize returns the configured chunk size.
func (c *SigningConfig) ChunkSize() int {
	return c.chunkSize
}

// SaltSize returns the configured salt length.
func (c *SigningConfig) SaltSize() int {
	return c.saltSize
}

// NewEngine builds a digest engine for the configured algorithm and chunk
// size.
func (c *SigningConfig) NewEngine() (*digest.Engine, error) {
	engine, err := digest.New(c.algorithm)
	if err != nil {
		return nil, err
	}
	engine.SetChunkSize(c.chunkSize)
	return engine, nil
}

// NewKeyedEngine builds a keyed digest engine with the given key, promoting
// the configured algorithm to its HMAC form when necessary.
func (c *SigningConfig) NewKeyedEngine(key []byte) (*digest.Engine, error) {
	engine, err := digest.NewKeyed(c.algorithm, key)
	if err != nil {
		return nil, err
	}
	engine.SetChunkSize(c.chunkSize)
	return engine, nil
}

// NewSaltedEngine builds an unkeyed engine with a freshly generated salt of
// the configured length. The salt is retrievable from the engine.
func (c *SigningConfig) NewSaltedEngine() (*digest.Engine, error) {
	engine, err := c.NewEngine()
	if err != nil {
		return nil, err
	}
	if _, err := engine.CreateSalt(c.saltSize); err != nil {
		return nil, err
	}
	return engine, nil
}

// NewFileHasher builds a file hasher for the configured algorithm and chunk
// size over the given path.
func (c *SigningConfig) NewFileHasher(path string) (*hashio.FileHasher, error) {
	contentHasher, err := hashengines.Create(c.algorithm, nil)
	if err != nil {
		return nil, err
	}
	return hashio.NewFileHasher(path, contentHasher, c.chunkSize)
}

// NewCodec builds a signed-file codec with the given key, the configured
// algorithm (promoted to its keyed form), chunk size, and logger.
func (c *SigningConfig) NewCodec(key []byte) *signedfile.Codec {
	return signedfile.NewCodec(c.algorithm, key).
		SetChunkSize(c.chunkSize).
		SetLogger(c.logger)
}
