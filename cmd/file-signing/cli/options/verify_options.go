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

// VerifyOptions holds the flags for the verify subcommand.
type VerifyOptions struct {
	AlgorithmFlags
	KeyFlags
	ChunkFlags
}

// AddFlags adds the verify flags to the command.
func (o *VerifyOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.AlgorithmFlags, &o.KeyFlags, &o.ChunkFlags)
}

// Validate checks the verify options.
func (o *VerifyOptions) Validate() error {
	return o.KeyFlags.Validate()
}
