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

	"github.com/spf13/cobra"
)

// Digest output encodings.
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// DigestOptions holds the flags for the digest subcommand.
type DigestOptions struct {
	AlgorithmFlags
	KeyFlags
	ChunkFlags

	// Message is an inline message to hash instead of a file.
	Message string
	// Salt is appended to the input before hashing (unkeyed mode only).
	Salt string
	// Encoding selects the output encoding, hex or base64.
	Encoding string
}

// AddFlags adds the digest flags to the command.
func (o *DigestOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.AlgorithmFlags, &o.KeyFlags, &o.ChunkFlags)

	cmd.Flags().StringVarP(&o.Message, "message", "m", "",
		"inline message to hash instead of a file")

	cmd.Flags().StringVarP(&o.Salt, "salt", "s", "",
		"salt appended to the input before hashing (ignored when a key is set)")

	cmd.Flags().StringVar(&o.Encoding, "encoding", EncodingHex,
		"output encoding, hex or base64")
}

// Validate checks the digest options.
func (o *DigestOptions) Validate() error {
	if o.Encoding != EncodingHex && o.Encoding != EncodingBase64 {
		return fmt.Errorf("unknown encoding %q, expected %q or %q",
			o.Encoding, EncodingHex, EncodingBase64)
	}
	return o.KeyFlags.Validate()
}
