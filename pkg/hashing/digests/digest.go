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

// Package digests provides the value type for computed cryptographic digests.
//
// A Digest pairs the algorithm name with the computed bytes. It is effectively
// immutable: fields are unexported and both constructors and accessors copy
// the underlying data.
package digests

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Digest represents a computed cryptographic digest.
type Digest struct {
	algorithm string // name of the algorithm that produced the value
	value     []byte // raw digest bytes
}

// NewDigest creates a new Digest for the given algorithm name and value.
// The value slice is copied so later mutation by the caller cannot change
// the digest.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// Algorithm returns the name of the algorithm used to compute this digest.
// The name encodes every parameter that influences the output, so a verifier
// can reconstruct a compatible engine from it.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal rendering of the digest value.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Base64 returns the standard base64 rendering of the digest value.
// This is the textual form used by the text-level digest API.
func (d Digest) Base64() string {
	return base64.StdEncoding.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String returns "algorithm:hexvalue", e.g. "hmac-sha256:ab12...".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal compares two digests in constant time.
//
// Two digests are equal when they carry the same algorithm name and identical
// values. The value comparison never short-circuits, so the position of the
// first differing byte is not observable through timing.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}
	if len(d.value) != len(other.value) {
		return false
	}
	return subtle.ConstantTimeCompare(d.value, other.value) == 1
}
