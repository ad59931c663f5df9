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

package hashengines_test

import (
	"testing"

	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"

	_ "github.com/filesign/file-signing/pkg/hashing/engines/memory"
)

func TestCreateRegisteredAlgorithms(t *testing.T) {
	for _, algo := range hashengines.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			var key []byte
			if algo.Keyed() {
				key = []byte("test key")
			}

			engine, err := hashengines.Create(algo, key)
			if err != nil {
				t.Fatalf("Create(%s) failed: %v", algo, err)
			}
			if got := engine.DigestName(); got != algo.String() {
				t.Errorf("DigestName() = %q, want %q", got, algo)
			}
			if got := engine.DigestSize(); got != algo.Size() {
				t.Errorf("DigestSize() = %d, want %d", got, algo.Size())
			}
		})
	}
}

func TestCreateUnknownFallsBack(t *testing.T) {
	engine, err := hashengines.Create("whirlpool", nil)
	if err != nil {
		t.Fatalf("Create with unknown algorithm failed: %v", err)
	}
	if got := engine.DigestName(); got != hashengines.DefaultUnkeyed.String() {
		t.Errorf("unknown unkeyed algorithm resolved to %q, want %q", got, hashengines.DefaultUnkeyed)
	}

	engine, err = hashengines.Create("whirlpool", []byte("key"))
	if err != nil {
		t.Fatalf("Create with unknown keyed algorithm failed: %v", err)
	}
	if got := engine.DigestName(); got != hashengines.DefaultKeyed.String() {
		t.Errorf("unknown keyed algorithm resolved to %q, want %q", got, hashengines.DefaultKeyed)
	}
}

func TestCreatePromotesToKeyedWithKey(t *testing.T) {
	engine, err := hashengines.Create(hashengines.SHA256, []byte("key"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got := engine.DigestName(); got != hashengines.HMACSHA256.String() {
		t.Errorf("sha256 with key resolved to %q, want %q", got, hashengines.HMACSHA256)
	}
}

func TestIsRegistered(t *testing.T) {
	if !hashengines.IsRegistered(hashengines.SHA512) {
		t.Error("sha512 should be registered")
	}
	if hashengines.IsRegistered("whirlpool") {
		t.Error("whirlpool should not be registered")
	}

	if got := len(hashengines.RegisteredAlgorithms()); got != 12 {
		t.Errorf("RegisteredAlgorithms() returned %d entries, want 12", got)
	}
}
