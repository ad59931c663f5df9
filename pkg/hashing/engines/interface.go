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

// Package hashengines defines the interfaces and the registry for digest
// primitives.
//
// The package defines the core HashEngine interface and supporting types for
// computing digests of data. It supports both one-shot hashing and streaming
// operations where data is fed incrementally.
package hashengines

import (
	"github.com/filesign/file-signing/pkg/hashing/digests"
)

// HashEngine defines the core interface for computing cryptographic digests.
//
// Implementations must report the algorithm name and the digest size, and the
// name must include every parameter that affects the output (for keyed
// engines the key affects the output but is deliberately never part of the
// name).
type HashEngine interface {
	// Compute finalizes the computation and returns the resulting digest.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the algorithm. This name is
	// transferred to the Algorithm field of the Digest returned by Compute.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine. The returned value must match the Size() of the Digest
	// returned by Compute.
	DigestSize() int
}

// Streaming defines the interface for incrementally feeding data to an engine.
//
// It is kept separate from HashEngine so one-shot implementations remain
// possible.
type Streaming interface {
	// Update appends additional bytes to the data being hashed.
	Update(data []byte)

	// Reset clears the hash state and optionally seeds it with new data.
	Reset(data []byte)
}

// StreamingHashEngine combines HashEngine and Streaming for incremental
// hashing. Every primitive in the registry satisfies it.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
