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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"
)

func TestDefaults(t *testing.T) {
	cfg := NewSigningConfig()

	if got := cfg.Algorithm(); got != hashengines.SHA512 {
		t.Errorf("default algorithm = %q, want sha512", got)
	}
	if got := cfg.ChunkSize(); got != 1024 {
		t.Errorf("default chunk size = %d, want 1024", got)
	}
	if got := cfg.SaltSize(); got != 16 {
		t.Errorf("default salt size = %d, want 16", got)
	}
}

func TestChaining(t *testing.T) {
	cfg := NewSigningConfig().
		SetAlgorithm("HMAC_SHA256").
		SetChunkSize(4096).
		SetSaltSize(32)

	if got := cfg.Algorithm(); got != hashengines.HMACSHA256 {
		t.Errorf("algorithm = %q, want hmac-sha256", got)
	}
	if got := cfg.ChunkSize(); got != 4096 {
		t.Errorf("chunk size = %d, want 4096", got)
	}
	if got := cfg.SaltSize(); got != 32 {
		t.Errorf("salt size = %d, want 32", got)
	}

	// Non-positive values restore the defaults.
	cfg.SetChunkSize(0).SetSaltSize(-1)
	if got := cfg.ChunkSize(); got != 1024 {
		t.Errorf("chunk size after reset = %d, want 1024", got)
	}
	if got := cfg.SaltSize(); got != 16 {
		t.Errorf("salt size after reset = %d, want 16", got)
	}
}

func TestNewEngineBuilders(t *testing.T) {
	cfg := NewSigningConfig().SetAlgorithm("sha256").SetChunkSize(4096)

	engine, err := cfg.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if engine.Keyed() {
		t.Error("NewEngine should build an unkeyed engine")
	}
	if got := engine.ChunkSize(); got != 4096 {
		t.Errorf("engine chunk size = %d, want 4096", got)
	}

	keyed, err := cfg.NewKeyedEngine([]byte("key"))
	if err != nil {
		t.Fatalf("NewKeyedEngine failed: %v", err)
	}
	if got := keyed.Algorithm(); got != hashengines.HMACSHA256 {
		t.Errorf("keyed engine algorithm = %q, want hmac-sha256", got)
	}
	if got := keyed.ChunkSize(); got != 4096 {
		t.Errorf("keyed engine chunk size = %d, want 4096", got)
	}

	salted, err := cfg.SetSaltSize(24).NewSaltedEngine()
	if err != nil {
		t.Fatalf("NewSaltedEngine failed: %v", err)
	}
	if got := len(salted.Salt()); got != 24 {
		t.Errorf("generated salt length = %d, want 24", got)
	}
}

func TestNewFileHasher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.bin")
	if err := os.WriteFile(path, []byte("abc"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	hasher, err := NewSigningConfig().SetAlgorithm("sha256").NewFileHasher(path)
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
}

func TestNewCodecRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "source.bin")
	signedPath := filepath.Join(dir, "source.bin.signed")
	if err := os.WriteFile(sourcePath, []byte("configured content"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	codec := NewSigningConfig().SetAlgorithm("sha256").NewCodec([]byte("k"))
	if got := codec.Algorithm(); got != hashengines.HMACSHA256 {
		t.Errorf("codec algorithm = %q, want hmac-sha256", got)
	}

	if err := codec.Sign(context.Background(), sourcePath, signedPath); err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	ok, err := codec.Verify(context.Background(), signedPath)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Error("round trip verification failed")
	}
}
