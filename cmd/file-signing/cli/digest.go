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
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/filesign/file-signing/cmd/file-signing/cli/options"
	"github.com/filesign/file-signing/pkg/config"
	"github.com/filesign/file-signing/pkg/digest"
	"github.com/spf13/cobra"
)

// Digest creates the digest command.
//
// Returns a *cobra.Command that prints the digest of a file or an inline
// message.
func Digest() *cobra.Command {
	o := &options.DigestOptions{}

	long := `Compute a digest.

    Hashes the file at FILE, or the inline text given via --message, and
    prints the digest in the chosen encoding (hex by default, base64 via
    --encoding base64).

    With --key (or --key-file) the digest is keyed: the algorithm is promoted
    to its HMAC form and the key is bound into the computation. Without a
    key, --salt appends the given salt to the input before hashing; salt and
    key are mutually exclusive, and the key wins when both are set.`

	cmd := &cobra.Command{
		Use:   "digest [OPTIONS] [FILE]",
		Short: "Compute the digest of a file or message.",
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			if len(args) == 0 && o.Message == "" {
				return fmt.Errorf("either FILE or --message is required")
			}
			key, err := o.ResolveKey()
			if err != nil {
				return err
			}

			obs := ro.NewObservability()
			cfg := config.NewSigningConfig().
				SetAlgorithm(o.Algorithm).
				SetChunkSize(o.ChunkSize).
				SetLogger(obs.Logger)

			var value []byte
			var algorithm string
			switch {
			case len(args) == 1 && key == nil && o.Salt == "":
				// Plain file digest: stream through the file hasher.
				hasher, err := cfg.NewFileHasher(args[0])
				if err != nil {
					return err
				}
				d, err := hasher.Compute()
				if err != nil {
					return err
				}
				value, algorithm = d.Value(), d.Algorithm()
			case len(args) == 1:
				engine, err := newEngine(cfg, key, o.Salt)
				if err != nil {
					return err
				}
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				if value, err = engine.ComputeDigestStreaming(f); err != nil {
					return err
				}
				algorithm = engine.Algorithm().String()
			default:
				engine, err := newEngine(cfg, key, o.Salt)
				if err != nil {
					return err
				}
				if value, err = engine.ComputeDigest([]byte(o.Message)); err != nil {
					return err
				}
				algorithm = engine.Algorithm().String()
			}

			obs.Logger.Debug("computed %s digest (%d bytes)", algorithm, len(value))

			encoded := hex.EncodeToString(value)
			if o.Encoding == options.EncodingBase64 {
				encoded = base64.StdEncoding.EncodeToString(value)
			}
			fmt.Printf("%s:%s\n", algorithm, encoded)
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}

// newEngine builds a digest engine from the config, keyed when a key is
// present, salted otherwise when a salt is given.
func newEngine(cfg *config.SigningConfig, key []byte, salt string) (*digest.Engine, error) {
	if key != nil {
		return cfg.NewKeyedEngine(key)
	}
	engine, err := cfg.NewEngine()
	if err != nil {
		return nil, err
	}
	if salt != "" {
		engine.SetSaltText(salt)
	}
	return engine, nil
}
