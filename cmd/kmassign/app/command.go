// Package app wires the kmassign command: flag parsing, document loading,
// the solve and the report.
package app

import (
	"context"
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/kuhnmunkres/cmd/kmassign/app/options"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// NewKMAssignCmd creates the kmassign command with default options.
func NewKMAssignCmd() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   "kmassign [flags] [FILE]",
		Short: "Solve a weighted assignment problem with the Kuhn-Munkres algorithm",
		Long: `kmassign reads a weight matrix (rows are left vertices, columns are
right vertices) from FILE or standard input and prints an optimal one-to-one
assignment. The document holds "weights" and optional "left"/"right" name
lists, encoded as JSON, YAML or TOML.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runCommand(cmd, opts, args); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			return nil
		},
	}

	fs := cmd.Flags()
	opts.AddFlags(fs)
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	return cmd
}

func runCommand(cmd *cobra.Command, opts *options.Options, args []string) error {
	if errs := opts.Validate(); len(errs) > 0 {
		return errors.Wrap(joinErrors(errs), "invalid flags")
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return Run(ctx, opts, path, stdinOf(cmd), cmd.OutOrStdout())
}

func stdinOf(cmd *cobra.Command) io.Reader {
	if in := cmd.InOrStdin(); in != nil {
		return in
	}

	return os.Stdin
}
