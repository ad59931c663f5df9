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
	"github.com/spf13/cobra"
)

// SignOptions holds the flags for the sign subcommand.
type SignOptions struct {
	AlgorithmFlags
	KeyFlags
	ChunkFlags

	// Output is the path of the signed file to create. Empty means the
	// source path with a ".signed" suffix.
	Output string
}

// AddFlags adds the sign flags to the command.
func (o *SignOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.AlgorithmFlags, &o.KeyFlags, &o.ChunkFlags)

	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"path of the signed file to create (default: SOURCE.signed)")
}

// Validate checks the sign options.
func (o *SignOptions) Validate() error {
	return o.KeyFlags.Validate()
}

// SignedPath returns the destination path, defaulting to source + ".signed".
func (o *SignOptions) SignedPath(source string) string {
	if o.Output != "" {
		return o.Output
	}
	return source + ".signed"
}
