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

// Package memory provides in-memory digest engines for the supported
// algorithm set. Importing the package registers every engine with the
// hashengines registry.
package memory

import (
	"hash"

	"github.com/filesign/file-signing/pkg/hashing/digests"
	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"
)

// Ensure GenericHashEngine implements StreamingHashEngine at compile time.
var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc creates a new hash.Hash instance.
type HashFactoryFunc func() (hash.Hash, error)

// GenericHashEngine is a reusable wrapper around any hash.Hash
// implementation. One wrapper serves every algorithm in the set, keyed
// forms included: an HMAC engine is simply a GenericHashEngine whose
// factory binds the key into crypto/hmac.
type GenericHashEngine struct {
	name    string
	size    int
	factory HashFactoryFunc
	h       hash.Hash
}

// NewGenericHashEngine creates a generic engine.
//
//   - name: canonical algorithm name (e.g. "sha256", "hmac-sha512")
//   - size: digest length in bytes
//   - factory: creates fresh hash.Hash instances
//   - initialData: optional bytes hashed immediately
func NewGenericHashEngine(name string, size int, factory HashFactoryFunc, initialData []byte) (*GenericHashEngine, error) {
	h, err := factory()
	if err != nil {
		return nil, err
	}

	engine := &GenericHashEngine{
		name:    name,
		size:    size,
		factory: factory,
		h:       h,
	}

	if len(initialData) > 0 {
		// hash.Hash.Write never returns an error per the interface contract.
		_, _ = engine.h.Write(initialData)
	}

	return engine, nil
}

// Update appends additional bytes to the data being hashed.
func (e *GenericHashEngine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset replaces the hash state with a fresh instance and optionally seeds
// it. The previous instance, and any key material bound into it, is dropped.
func (e *GenericHashEngine) Reset(data []byte) {
	h, _ := e.factory() // factory cannot fail after initial validation
	e.h = h

	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns a digests.Digest.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	sum := e.h.Sum(nil)
	return digests.NewDigest(e.name, sum), nil
}

// DigestName returns the canonical name of the algorithm.
func (e *GenericHashEngine) DigestName() string {
	return e.name
}

// DigestSize returns the size, in bytes, of digests produced by this engine.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}
