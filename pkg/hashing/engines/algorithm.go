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

package hashengines

import "strings"

// Algorithm identifies a supported digest algorithm. The set is closed:
// adding an algorithm is a code change, not configuration.
type Algorithm string

// Unkeyed digest algorithms.
const (
	MD5       Algorithm = "md5"
	RIPEMD160 Algorithm = "ripemd160"
	SHA1      Algorithm = "sha1"
	SHA256    Algorithm = "sha256"
	SHA384    Algorithm = "sha384"
	SHA512    Algorithm = "sha512"
)

// Keyed (HMAC) counterparts.
const (
	HMACMD5       Algorithm = "hmac-md5"
	HMACRIPEMD160 Algorithm = "hmac-ripemd160"
	HMACSHA1      Algorithm = "hmac-sha1"
	HMACSHA256    Algorithm = "hmac-sha256"
	HMACSHA384    Algorithm = "hmac-sha384"
	HMACSHA512    Algorithm = "hmac-sha512"
)

// Defaults applied when a caller supplies an unknown or empty algorithm.
// Falling back to the strongest member of the set is a deliberate
// default-safe policy, not an error.
const (
	DefaultUnkeyed Algorithm = SHA512
	DefaultKeyed   Algorithm = HMACSHA512
)

// hmacPrefix marks the keyed members of the set.
const hmacPrefix = "hmac-"

// digestSizes maps every base algorithm to its fixed output length in bytes.
// The HMAC form always has the same output length as its base hash.
var digestSizes = map[Algorithm]int{
	MD5:       16,
	RIPEMD160: 20,
	SHA1:      20,
	SHA256:    32,
	SHA384:    48,
	SHA512:    64,
}

// Keyed reports whether the algorithm is an HMAC form.
func (a Algorithm) Keyed() bool {
	return strings.HasPrefix(string(a), hmacPrefix)
}

// Base returns the underlying hash of an HMAC algorithm, or the algorithm
// itself when it is already unkeyed.
func (a Algorithm) Base() Algorithm {
	return Algorithm(strings.TrimPrefix(string(a), hmacPrefix))
}

// Keyed forms of the base algorithms, e.g. SHA256.ToKeyed() == HMACSHA256.
// Calling ToKeyed on a keyed algorithm returns it unchanged.
func (a Algorithm) ToKeyed() Algorithm {
	if a.Keyed() {
		return a
	}
	return Algorithm(hmacPrefix + string(a))
}

// Size returns the digest length in bytes, fixed per algorithm. It never
// varies call to call; this length is exactly the signed-file header length.
// Unknown algorithms report 0.
func (a Algorithm) Size() int {
	return digestSizes[a.Base()]
}

// Valid reports whether a is a member of the supported set.
func (a Algorithm) Valid() bool {
	_, ok := digestSizes[a.Base()]
	return ok
}

// String returns the canonical lowercase name.
func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm maps a textual name to an Algorithm. Matching is
// case-insensitive and tolerates "hmac_sha256" style separators. Unknown
// names fall back to DefaultUnkeyed (or DefaultKeyed when the name carries
// an hmac prefix), mirroring the registry's default-safe policy.
func ParseAlgorithm(name string) Algorithm {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")

	a := Algorithm(n)
	if a.Valid() {
		return a
	}
	if a.Keyed() {
		return DefaultKeyed
	}
	return DefaultUnkeyed
}

// Algorithms returns the full supported set, unkeyed first.
func Algorithms() []Algorithm {
	return []Algorithm{
		MD5, RIPEMD160, SHA1, SHA256, SHA384, SHA512,
		HMACMD5, HMACRIPEMD160, HMACSHA1, HMACSHA256, HMACSHA384, HMACSHA512,
	}
}
