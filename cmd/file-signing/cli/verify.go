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

package cli

import (
	"context"
	"fmt"

	"github.com/filesign/file-signing/cmd/file-signing/cli/options"
	"github.com/filesign/file-signing/pkg/config"
	"github.com/spf13/cobra"
)

// Verify creates the verify command.
//
// Returns a *cobra.Command that recomputes the body digest of a signed file
// and compares it against the stored header.
func Verify() *cobra.Command {
	o := &options.VerifyOptions{}

	long := `Verify a signed file.

    Verification reads the digest header from SIGNED_FILE, recomputes the
    keyed digest over the remaining bytes, and compares the two in constant
    time. The same algorithm and key used for signing must be supplied.

    A mismatch (including a truncated file) exits with a non-zero status but
    is not an I/O error; errors are reserved for a missing key, a missing
    file, and read failures.`

	cmd := &cobra.Command{
		Use:   "verify [OPTIONS] SIGNED_FILE",
		Short: "Verify a signed file.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signedPath := args[0]

			if err := o.Validate(); err != nil {
				return err
			}
			key, err := o.ResolveKey()
			if err != nil {
				return err
			}

			obs := ro.NewObservability()
			codec := config.NewSigningConfig().
				SetAlgorithm(o.Algorithm).
				SetChunkSize(o.ChunkSize).
				SetLogger(obs.Logger).
				NewCodec(key)

			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			ok, err := codec.Verify(ctx, signedPath)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("verification failed: %s does not match its digest header (%s)",
					signedPath, codec.Algorithm())
			}

			fmt.Printf("verification passed: %s (%s)\n", signedPath, codec.Algorithm())
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
