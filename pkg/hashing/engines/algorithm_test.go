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

import (
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Algorithm
	}{
		{name: "canonical", in: "sha256", want: SHA256},
		{name: "uppercase", in: "SHA256", want: SHA256},
		{name: "surrounding space", in: "  sha1 ", want: SHA1},
		{name: "underscore separator", in: "hmac_sha384", want: HMACSHA384},
		{name: "keyed canonical", in: "hmac-md5", want: HMACMD5},
		{name: "ripemd", in: "ripemd160", want: RIPEMD160},
		{name: "unknown falls back", in: "whirlpool", want: DefaultUnkeyed},
		{name: "empty falls back", in: "", want: DefaultUnkeyed},
		{name: "unknown keyed falls back keyed", in: "hmac-whirlpool", want: DefaultKeyed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAlgorithm(tt.in); got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAlgorithmKeyedAndBase(t *testing.T) {
	if SHA256.Keyed() {
		t.Error("sha256 should not be keyed")
	}
	if !HMACSHA256.Keyed() {
		t.Error("hmac-sha256 should be keyed")
	}
	if got := HMACSHA512.Base(); got != SHA512 {
		t.Errorf("Base() = %q, want %q", got, SHA512)
	}
	if got := SHA512.Base(); got != SHA512 {
		t.Errorf("Base() of unkeyed = %q, want unchanged", got)
	}
	if got := SHA384.ToKeyed(); got != HMACSHA384 {
		t.Errorf("ToKeyed() = %q, want %q", got, HMACSHA384)
	}
	if got := HMACSHA384.ToKeyed(); got != HMACSHA384 {
		t.Errorf("ToKeyed() of keyed = %q, want unchanged", got)
	}
}

func TestAlgorithmSize(t *testing.T) {
	sizes := map[Algorithm]int{
		MD5:           16,
		RIPEMD160:     20,
		SHA1:          20,
		SHA256:        32,
		SHA384:        48,
		SHA512:        64,
		HMACMD5:       16,
		HMACRIPEMD160: 20,
		HMACSHA1:      20,
		HMACSHA256:    32,
		HMACSHA384:    48,
		HMACSHA512:    64,
	}

	for algo, want := range sizes {
		if got := algo.Size(); got != want {
			t.Errorf("%s.Size() = %d, want %d", algo, got, want)
		}
	}

	if got := Algorithm("whirlpool").Size(); got != 0 {
		t.Errorf("unknown algorithm Size() = %d, want 0", got)
	}
}

func TestAlgorithmsComplete(t *testing.T) {
	all := Algorithms()
	if len(all) != 12 {
		t.Fatalf("Algorithms() returned %d entries, want 12", len(all))
	}
	for _, algo := range all {
		if !algo.Valid() {
			t.Errorf("%s should be valid", algo)
		}
	}
}
