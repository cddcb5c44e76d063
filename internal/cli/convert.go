package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/caffe2/go-sdk/pkg/encoding"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	To   string
	Jobs int
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert --to <binary|text|json> <file>...",
		Short: "Convert files between binary, text and JSON encodings",
		Long: `Convert each file to the target encoding. The output is written next to
the input with the extension of the target encoding (.pb, .pbtxt, .json).
Files are converted in parallel; the first failure stops the rest.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "target encoding (binary|text|json)")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "files converted at once (default from config)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// conversionTarget swaps the extension of in for the one of format.
func conversionTarget(in string, format encoding.Format) (string, error) {
	out := strings.TrimSuffix(in, filepath.Ext(in)) + format.Extension()
	if out == in {
		return "", fmt.Errorf("%s is already %s", in, format)
	}
	return out, nil
}

func runConvert(ctx context.Context, rootOpts *RootOptions, opts *ConvertOptions, files []string, cmd *cobra.Command) error {
	to, err := encoding.ParseFormat(opts.To)
	if err != nil {
		return err
	}

	targets := make([]string, len(files))
	claimed := make(map[string]string, len(files))
	for i, in := range files {
		if targets[i], err = conversionTarget(in, to); err != nil {
			return err
		}
		out := filepath.Clean(targets[i])
		if prev, ok := claimed[out]; ok {
			return fmt.Errorf("%s and %s both convert to %s", prev, in, targets[i])
		}
		claimed[out] = in
	}

	jobs := int64(opts.Jobs)
	if jobs <= 0 {
		jobs = int64(rootOpts.Config.Jobs)
	}
	sem := semaphore.NewWeighted(jobs)
	group, groupCtx := errgroup.WithContext(ctx)

	for i, in := range files {
		in := in
		out := targets[i]
		group.Go(func() error {
			if err := sem.Acquire(groupCtx, 1); err != nil {
				return fmt.Errorf("acquire semaphore: %w", err)
			}
			defer sem.Release(1)

			return convertFile(rootOpts, in, out, to)
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	for i, in := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", in, targets[i])
	}
	return nil
}

func convertFile(rootOpts *RootOptions, in, out string, to encoding.Format) error {
	msg := rootOpts.newMessage()
	from := encoding.FormatFromPath(in)

	if err := encoding.Read(in, from, msg, rootOpts.readOptions()...); err != nil {
		return err
	}
	if err := encoding.Write(msg, out, to); err != nil {
		return err
	}

	rootOpts.Logger.WithFields(logrus.Fields{
		"input":  in,
		"output": out,
		"from":   from,
		"to":     to,
	}).Debug("converted")
	return nil
}
