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

// Package cli implements the assignments command line.
package cli

import (
	"bytes"
	"context"
	"flag"
	"io"

	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/samueltardieu/assignments/internal/actuator"
	"github.com/samueltardieu/assignments/internal/collector"
	internalconfig "github.com/samueltardieu/assignments/internal/config"
	"github.com/samueltardieu/assignments/internal/logging"
	"github.com/samueltardieu/assignments/internal/metrics"
	"github.com/samueltardieu/assignments/internal/optimizer"
	"github.com/samueltardieu/assignments/pkg/config"
)

const longHelp = `Assign agents to slots by maximizing the global satisfaction.

The input file must contain no header and have the agent name followed by its
choices (1..n), most preferred first. Use "-" to read standard input.

The satisfaction of an agent obtaining its choice of rank r (0 for the first
choice) is ((n-r)*mult)^power, where n is the number of slots. Unranked slots
are worth 0.`

// NewRootCommand returns the assignments command.
func NewRootCommand() *cobra.Command {
	goFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	zapOpts := logging.BindFlags(goFlags)

	cmd := &cobra.Command{
		Use:           "assignments [flags] INPUT",
		Short:         "Assign agents to slots by maximizing the global satisfaction",
		Long:          longHelp,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(zapOpts, cmd.ErrOrStderr())
			ctx := ctrl.LoggerInto(cmd.Context(), logger)

			v, err := internalconfig.NewViper(cmd.Flags())
			if err != nil {
				return err
			}

			m := metrics.New()
			emitter := actuator.NewMetricsEmitter(m)
			cfg, opts, err := internalconfig.Load(v)
			if err == nil {
				logger.V(logging.DEBUG).Info("Configuration loaded",
					"config", cfg.String(),
					"file", opts.ConfigFile)
				err = run(ctx, cmd, cfg, args[0], emitter)
			}
			emitter.RecordRun(err)

			if opts.MetricsFile != "" {
				if werr := actuator.WriteMetricsFile(opts.MetricsFile, m.Gatherer()); werr != nil && err == nil {
					err = werr
				}
			}
			return err
		},
	}
	internalconfig.AddFlags(cmd.Flags())
	cmd.Flags().AddGoFlagSet(goFlags)
	cmd.AddCommand(newGenerateCommand())
	return cmd
}

// run computes the assignment for input and writes the report only once it is
// complete, so a failing run prints nothing on standard output.
func run(ctx context.Context, cmd *cobra.Command, cfg config.Config, input string, emitter *actuator.MetricsEmitter) error {
	renderer, err := actuator.NewRenderer(cfg)
	if err != nil {
		return err
	}
	source := collector.NewCSVSource(input, cfg.Delimiter).WithStdin(cmd.InOrStdin())

	result, err := optimizer.NewOptimizer(cfg, emitter).Run(ctx, source)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, result.Report); err != nil {
		return err
	}
	_, err = io.Copy(cmd.OutOrStdout(), &buf)
	return err
}

// Execute runs the root command with ctx and args.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
