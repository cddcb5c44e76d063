package cli

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caffe2/go-sdk/internal/config"
	"github.com/caffe2/go-sdk/pkg/encoding"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath  string
	Verbose     bool
	Format      string // "text" | "json"
	MessageType string

	Config *config.Config
	Logger *logrus.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the caffe2 CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "caffe2-cli",
		Short: "Inspect and convert caffe2 protobuf files",
		Long: `Inspect and convert caffe2 net, operator and argument files.

Binary (.pb), text (.pbtxt) and JSON (.json) encodings are recognised by
file extension.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := lookupMessageType(opts.MessageType); err != nil {
				return err
			}

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.Config = cfg

			logger := logrus.New()
			logger.Out = cmd.ErrOrStderr()
			logger.SetLevel(cfg.Level())
			if opts.Verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			opts.Logger = logger
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (yaml, toml or json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.MessageType, "type", "netdef", "message type of the files (netdef|operator|argument)")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))
	cmd.AddCommand(NewArgsCommand(opts))

	return cmd
}

// readOptions returns the encoding options derived from the loaded config.
func (o *RootOptions) readOptions() []encoding.Option {
	return o.Config.ReadOptions(o.Logger)
}
