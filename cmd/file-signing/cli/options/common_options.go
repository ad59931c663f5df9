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

package options

import (
	"fmt"
	"os"

	hashengines "github.com/filesign/file-signing/pkg/hashing/engines"
	"github.com/filesign/file-signing/pkg/utils"
	"github.com/spf13/cobra"
)

// FlagAdder is implemented by any flag group that can register itself to a
// cobra command.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// AddAllFlags is a helper function to register multiple flag groups at once.
func AddAllFlags(cmd *cobra.Command, flagGroups ...FlagAdder) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}

// AlgorithmFlags groups the digest algorithm selection shared by every
// subcommand.
type AlgorithmFlags struct {
	// Algorithm names the digest algorithm (e.g. sha256, hmac-sha512).
	Algorithm string
}

// AddFlags adds the algorithm flag to the command.
func (o *AlgorithmFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", hashengines.DefaultUnkeyed.String(),
		fmt.Sprintf("digest algorithm, one of %v (unknown names fall back to the default)",
			hashengines.Algorithms()))
}

// KeyFlags groups the HMAC key sources. The key can be given inline as text
// or read as raw bytes from a file; the file wins when both are set.
type KeyFlags struct {
	// Key is the HMAC key as literal text.
	Key string
	// KeyFile is a path to a file whose raw bytes are the HMAC key.
	KeyFile string
}

// AddFlags adds the key flags to the command.
func (o *KeyFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Key, "key", "k", "",
		"HMAC key as literal text")

	cmd.Flags().StringVar(&o.KeyFile, "key-file", "",
		"path to a file whose raw bytes are the HMAC key (takes precedence over --key)")
}

// Validate checks that a configured key file, if any, exists.
func (o *KeyFlags) Validate() error {
	return utils.ValidateOptionalFile("key file", o.KeyFile)
}

// ResolveKey returns the key material, preferring the key file over the
// inline text. It returns nil when neither source is set; callers that
// require a key surface that as a missing-key error downstream.
func (o *KeyFlags) ResolveKey() ([]byte, error) {
	if o.KeyFile != "" {
		key, err := os.ReadFile(o.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file %q: %w", o.KeyFile, err)
		}
		return key, nil
	}
	if o.Key != "" {
		return []byte(o.Key), nil
	}
	return nil, nil
}

// ChunkFlags groups the streaming buffer configuration.
type ChunkFlags struct {
	// ChunkSize is the buffer size in bytes for streaming reads and copies.
	ChunkSize int
}

// AddFlags adds the chunk-size flag to the command.
func (o *ChunkFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", 0,
		"buffer size in bytes for streaming reads (0 uses the default of 1024)")
}
