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

package digests

import (
	"testing"
)

func TestNewDigestCopiesValue(t *testing.T) {
	value := []byte{0x01, 0x02, 0x03}
	d := NewDigest("sha256", value)

	// Mutating the caller's slice must not change the digest.
	value[0] = 0xff
	if got := d.Value(); got[0] != 0x01 {
		t.Errorf("digest value changed after caller mutation: got %x", got)
	}

	// Mutating the returned slice must not change the digest either.
	out := d.Value()
	out[1] = 0xff
	if got := d.Value(); got[1] != 0x02 {
		t.Errorf("digest value changed after accessor mutation: got %x", got)
	}
}

func TestDigestRenderings(t *testing.T) {
	d := NewDigest("md5", []byte{0xde, 0xad, 0xbe, 0xef})

	if got := d.Hex(); got != "deadbeef" {
		t.Errorf("Hex() = %q, want %q", got, "deadbeef")
	}
	if got := d.Base64(); got != "3q2+7w==" {
		t.Errorf("Base64() = %q, want %q", got, "3q2+7w==")
	}
	if got := d.String(); got != "md5:deadbeef" {
		t.Errorf("String() = %q, want %q", got, "md5:deadbeef")
	}
	if got := d.Size(); got != 4 {
		t.Errorf("Size() = %d, want 4", got)
	}
	if got := d.Algorithm(); got != "md5" {
		t.Errorf("Algorithm() = %q, want %q", got, "md5")
	}
}

func TestDigestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Digest
		want bool
	}{
		{
			name: "identical",
			a:    NewDigest("sha256", []byte{1, 2, 3}),
			b:    NewDigest("sha256", []byte{1, 2, 3}),
			want: true,
		},
		{
			name: "different value",
			a:    NewDigest("sha256", []byte{1, 2, 3}),
			b:    NewDigest("sha256", []byte{1, 2, 4}),
			want: false,
		},
		{
			name: "different algorithm",
			a:    NewDigest("sha256", []byte{1, 2, 3}),
			b:    NewDigest("sha512", []byte{1, 2, 3}),
			want: false,
		},
		{
			name: "different length",
			a:    NewDigest("sha256", []byte{1, 2, 3}),
			b:    NewDigest("sha256", []byte{1, 2}),
			want: false,
		},
		{
			name: "both empty",
			a:    NewDigest("sha256", nil),
			b:    NewDigest("sha256", []byte{}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() not symmetric: reverse = %v, want %v", got, tt.want)
			}
		})
	}
}
