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

package memory

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // MD5 is part of the supported algorithm set
	"crypto/sha1" //nolint:gosec // SHA-1 is part of the supported algorithm set
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is part of the supported algorithm set
)

// baseConstructors maps every base algorithm to its hash constructor.
var baseConstructors = map[hashengines.Algorithm]func() hash.Hash{
	hashengines.MD5:       md5.New,
	hashengines.RIPEMD160: ripemd160.New,
	hashengines.SHA1:      sha1.New,
	hashengines.SHA256:    sha256.New,
	hashengines.SHA384:    sha512.New384,
	hashengines.SHA512:    sha512.New,
}

func init() {
	for algo, constructor := range baseConstructors {
		registerUnkeyed(algo, constructor)
		registerKeyed(algo.ToKeyed(), constructor)
	}
}

// registerUnkeyed registers a plain digest engine. The factory rejects key
// material so salt and key cannot be conflated at the registry boundary.
func registerUnkeyed(algo hashengines.Algorithm, constructor func() hash.Hash) {
	hashengines.MustRegister(algo, func(key []byte) (hashengines.StreamingHashEngine, error) {
		if key != nil {
			return nil, fmt.Errorf("algorithm %q is unkeyed, use %q for keyed digests", algo, algo.ToKeyed())
		}
		return NewGenericHashEngine(algo.String(), algo.Size(), func() (hash.Hash, error) {
			return constructor(), nil
		}, nil)
	})
}

// registerKeyed registers an HMAC engine. The key is bound at primitive
// construction time; Reset produces a fresh HMAC state with the same key.
func registerKeyed(algo hashengines.Algorithm, constructor func() hash.Hash) {
	hashengines.MustRegister(algo, func(key []byte) (hashengines.StreamingHashEngine, error) {
		keyCopy := make([]byte, len(key))
		copy(keyCopy, key)
		return NewGenericHashEngine(algo.String(), algo.Size(), func() (hash.Hash, error) {
			return hmac.New(constructor, keyCopy), nil
		}, nil)
	})
}
