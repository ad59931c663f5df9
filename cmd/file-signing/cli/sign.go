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

// Sign creates the sign command.
//
// Returns a *cobra.Command that writes digest || source bytes to the output
// path.
func Sign() *cobra.Command {
	o := &options.SignOptions{}

	long := `Sign a file with a keyed digest header.

    Signing the file at SOURCE produces a signed file (as per --output
    option, defaulting to SOURCE.signed) whose content is the keyed digest
    of the source followed by the source bytes, unmodified.

    A key is required; pass it as text via --key or as raw bytes via
    --key-file. Unkeyed algorithm names are promoted to their HMAC form, so
    "--algorithm sha256 --key secret" signs with hmac-sha256.

    The signed file carries no algorithm tag. Whoever verifies it must know
    the algorithm and key out of band.`

	cmd := &cobra.Command{
		Use:   "sign [OPTIONS] SOURCE",
		Short: "Sign a file with a keyed digest header.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath := args[0]

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

			signedPath := o.SignedPath(sourcePath)
			if err := codec.Sign(ctx, sourcePath, signedPath); err != nil {
				return err
			}

			fmt.Printf("signed %s -> %s (%s)\n", sourcePath, signedPath, codec.Algorithm())
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
