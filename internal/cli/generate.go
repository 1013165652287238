/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cli

import (
	"bytes"
	"io"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"k8s.io/utils/ptr"

	internalconfig "github.com/samueltardieu/assignments/internal/config"
	"github.com/samueltardieu/assignments/internal/generator"
)

// newGenerateCommand returns the command writing a random preference file.
func newGenerateCommand() *cobra.Command {
	var (
		seed      uint64
		delimiter string
	)
	cmd := &cobra.Command{
		Use:   "generate N",
		Short: "Write a random preference file for N agents and N slots",
		Long: `Write a random preference file for N agents and N slots on standard output.

Each agent "Student i" ranks a random subset of the slots, possibly empty, in
random order. The output can be fed back to assignments directly.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cast.ToIntE(args[0])
			if err != nil {
				return err
			}
			comma, err := internalconfig.ParseDelimiter(delimiter)
			if err != nil {
				return err
			}
			var s *uint64
			if cmd.Flags().Changed("seed") {
				s = ptr.To(seed)
			}
			prefs, err := generator.New(s).Generate(n)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := generator.Write(&buf, prefs, comma); err != nil {
				return err
			}
			_, err = io.Copy(cmd.OutOrStdout(), &buf)
			return err
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed of the random generator (default: random)")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", `output field delimiter, a single character or \t`)
	return cmd
}
