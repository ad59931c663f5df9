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

package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"

	_ "github.com/filesign/file-signing/pkg/hashing/engines/memory"
)

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestFileHasherKnownDigest(t *testing.T) {
	path := writeTempFile(t, []byte("abc"))

	engine, err := hashengines.Create(hashengines.SHA256, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	hasher, err := NewFileHasher(path, engine, 1024)
	if err != nil {
		t.Fatalf("NewFileHasher failed: %v", err)
	}

	d, err := hasher.Compute()
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := d.Hex(); got != want {
		t.Errorf("digest = %s, want %s", got, want)
	}
	if got := hasher.DigestName(); got != "sha256" {
		t.Errorf("DigestName() = %q, want %q", got, "sha256")
	}
	if got := hasher.DigestSize(); got != 32 {
		t.Errorf("DigestSize() = %d, want 32", got)
	}
}

// TestFileHasherChunkSizes checks that the digest is independent of the chunk
// size, including input lengths that do not divide evenly.
func TestFileHasherChunkSizes(t *testing.T) {
	content := bytes.Repeat([]byte{0xa5}, 10000)
	path := writeTempFile(t, content)

	var reference []byte
	for _, chunkSize := range []int{0, 1, 7, 1024, 4096, 20000} {
		engine, err := hashengines.Create(hashengines.SHA512, nil)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		hasher, err := NewFileHasher(path, engine, chunkSize)
		if err != nil {
			t.Fatalf("NewFileHasher(chunkSize=%d) failed: %v", chunkSize, err)
		}

		d, err := hasher.Compute()
		if err != nil {
			t.Fatalf("Compute(chunkSize=%d) failed: %v", chunkSize, err)
		}
		if reference == nil {
			reference = d.Value()
			continue
		}
		if !bytes.Equal(d.Value(), reference) {
			t.Errorf("chunkSize=%d produced a different digest", chunkSize)
		}
	}
}

func TestFileHasherRecomputes(t *testing.T) {
	path := writeTempFile(t, []byte("first"))

	engine, err := hashengines.Create(hashengines.SHA256, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	hasher, err := NewFileHasher(path, engine, 1024)
	if err != nil {
		t.Fatalf("NewFileHasher failed: %v", err)
	}

	first, err := hasher.Compute()
	if err != nil {
		t.Fatalf("first Compute failed: %v", err)
	}

	// Same file again: inner state is reset, so the digest must repeat.
	again, err := hasher.Compute()
	if err != nil {
		t.Fatalf("second Compute failed: %v", err)
	}
	if !again.Equal(first) {
		t.Error("recomputing the same file produced a different digest")
	}

	other := writeTempFile(t, []byte("second"))
	if err := hasher.SetFile(other); err != nil {
		t.Fatalf("SetFile failed: %v", err)
	}
	changed, err := hasher.Compute()
	if err != nil {
		t.Fatalf("Compute after SetFile failed: %v", err)
	}
	if changed.Equal(first) {
		t.Error("different file content produced the same digest")
	}
}

func TestFileHasherValidation(t *testing.T) {
	engine, err := hashengines.Create(hashengines.SHA256, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := NewFileHasher("", engine, 1024); err == nil {
		t.Error("expected error for empty file path")
	}
	if _, err := NewFileHasher("x", nil, 1024); err == nil {
		t.Error("expected error for nil content hasher")
	}
	if _, err := NewFileHasher("x", engine, -1); err == nil {
		t.Error("expected error for negative chunk size")
	}

	hasher, err := NewFileHasher("/nonexistent/path", engine, 1024)
	if err != nil {
		t.Fatalf("NewFileHasher failed: %v", err)
	}
	if _, err := hasher.Compute(); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestStreamInto(t *testing.T) {
	engine, err := hashengines.Create(hashengines.SHA256, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := StreamInto(engine, bytes.NewReader([]byte("abc")), 2); err != nil {
		t.Fatalf("StreamInto failed: %v", err)
	}
	d, err := engine.Compute()
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := d.Hex(); got != want {
		t.Errorf("digest = %s, want %s", got, want)
	}

	if err := StreamInto(engine, bytes.NewReader(nil), -1); err == nil {
		t.Error("expected error for negative chunk size")
	}
}
