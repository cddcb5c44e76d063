package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	"github.com/caffe2/go-sdk/pkg/encoding"
	"github.com/caffe2/go-sdk/pkg/operator"
	"github.com/caffe2/go-sdk/pkg/proto/generated"
)

// NewArgsCommand creates the args command group. Both subcommands operate on
// NetDef files regardless of --type.
func NewArgsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "args",
		Short: "List or edit the arguments of a net",
	}
	cmd.AddCommand(newArgsListCommand(rootOpts))
	cmd.AddCommand(newArgsSetCommand(rootOpts))
	return cmd
}

// argRow is one line of args list output.
type argRow struct {
	Scope string `json:"scope"`
	Type  string `json:"type,omitempty"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

func newArgsListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <net-file>",
		Short: "Print every net and operator argument",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, _, err := readNet(rootOpts, args[0])
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), rootOpts.Format, collectRows(net))
		},
	}
}

func collectRows(net *generated.NetDef) []argRow {
	var rows []argRow
	for _, arg := range net.GetArg() {
		rows = append(rows, argRow{Scope: "net", Name: arg.GetName(), Value: operator.ValueString(arg)})
	}
	for i, op := range net.GetOp() {
		for _, arg := range op.GetArg() {
			rows = append(rows, argRow{
				Scope: fmt.Sprintf("op[%d]", i),
				Type:  op.GetType(),
				Name:  arg.GetName(),
				Value: operator.ValueString(arg),
			})
		}
	}
	return rows
}

func writeRows(w io.Writer, format string, rows []argRow) error {
	if format == "json" {
		if rows == nil {
			rows = []argRow{}
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	for _, row := range rows {
		scope := row.Scope
		if row.Type != "" {
			scope += " " + row.Type
		}
		if _, err := fmt.Fprintf(w, "%s %s = %s\n", scope, row.Name, row.Value); err != nil {
			return err
		}
	}
	return nil
}

// SetOptions holds flags for the args set command.
type SetOptions struct {
	Op      int
	Name    string
	Int     int64
	Float   float32
	String  string
	Ints    []int64
	Floats  []float32
	Strings []string
}

func newArgsSetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SetOptions{}

	cmd := &cobra.Command{
		Use:   "set <net-file> --op N --name NAME (--int|--float|--string|--ints|--floats|--strings) VALUE",
		Short: "Create or replace an operator argument",
		Long: `Set an argument on one operator of a net, creating it when missing. The
first argument with the given name is replaced; later duplicates are left
alone. The file is written back in its original encoding.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArgsSet(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Op, "op", 0, "index of the operator in the net")
	cmd.Flags().StringVar(&opts.Name, "name", "", "argument name")
	cmd.Flags().Int64Var(&opts.Int, "int", 0, "integer value")
	cmd.Flags().Float32Var(&opts.Float, "float", 0, "float value")
	cmd.Flags().StringVar(&opts.String, "string", "", "string value")
	cmd.Flags().Int64SliceVar(&opts.Ints, "ints", nil, "repeated integer value")
	cmd.Flags().Float32SliceVar(&opts.Floats, "floats", nil, "repeated float value")
	cmd.Flags().StringSliceVar(&opts.Strings, "strings", nil, "repeated string value")
	_ = cmd.MarkFlagRequired("name")
	cmd.MarkFlagsMutuallyExclusive("int", "float", "string", "ints", "floats", "strings")
	cmd.MarkFlagsOneRequired("int", "float", "string", "ints", "floats", "strings")

	return cmd
}

func runArgsSet(rootOpts *RootOptions, opts *SetOptions, path string, cmd *cobra.Command) error {
	net, format, err := readNet(rootOpts, path)
	if err != nil {
		return err
	}
	if opts.Op < 0 || opts.Op >= len(net.GetOp()) {
		return fmt.Errorf("operator index %d out of range: net has %d operators", opts.Op, len(net.GetOp()))
	}

	value, err := opts.argument(cmd)
	if err != nil {
		return err
	}

	op := net.Op[opts.Op]
	arg := operator.GetMutableArgument(op, opts.Name, true)
	proto.Reset(arg)
	proto.Merge(arg, value)

	if err := encoding.Write(net, path, format); err != nil {
		return err
	}

	rootOpts.Logger.WithField("path", path).Debug("argument written")
	return writeRows(cmd.OutOrStdout(), rootOpts.Format, []argRow{{
		Scope: fmt.Sprintf("op[%d]", opts.Op),
		Type:  op.GetType(),
		Name:  arg.GetName(),
		Value: operator.ValueString(arg),
	}})
}

// argument builds the value selected by whichever value flag was given.
func (o *SetOptions) argument(cmd *cobra.Command) (*generated.Argument, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("int"):
		return operator.MakeArgument(o.Name, o.Int), nil
	case flags.Changed("float"):
		return operator.MakeArgument(o.Name, o.Float), nil
	case flags.Changed("string"):
		return operator.MakeArgument(o.Name, o.String), nil
	case flags.Changed("ints"):
		return operator.MakeRepeatedArgument(o.Name, o.Ints), nil
	case flags.Changed("floats"):
		return operator.MakeRepeatedArgument(o.Name, o.Floats), nil
	case flags.Changed("strings"):
		return operator.MakeRepeatedArgument(o.Name, o.Strings), nil
	}
	return nil, errors.New("no value flag given")
}

func readNet(rootOpts *RootOptions, path string) (*generated.NetDef, encoding.Format, error) {
	net := &generated.NetDef{}
	format := encoding.FormatFromPath(path)
	if err := encoding.Read(path, format, net, rootOpts.readOptions()...); err != nil {
		return nil, format, err
	}
	return net, format, nil
}
