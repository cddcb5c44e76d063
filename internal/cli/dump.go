package cli

import (
	"github.com/spf13/cobra"

	"github.com/caffe2/go-sdk/pkg/encoding"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a file in text or JSON form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := rootOpts.newMessage()
			path := args[0]
			if err := encoding.Read(path, encoding.FormatFromPath(path), msg, rootOpts.readOptions()...); err != nil {
				return err
			}

			var (
				data []byte
				err  error
			)
			if rootOpts.Format == "json" {
				data, err = encoding.MarshalJSON(msg)
			} else {
				data, err = encoding.MarshalText(msg)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	return cmd
}
