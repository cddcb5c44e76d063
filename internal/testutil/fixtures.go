package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	"github.com/caffe2/go-sdk/pkg/proto/generated"
)

// ConvOperator returns a Conv operator with a mix of scalar and repeated
// arguments.
func ConvOperator() *generated.OperatorDef {
	return &generated.OperatorDef{
		Input:  []string{"data", "conv1_w", "conv1_b"},
		Output: []string{"conv1"},
		Name:   proto.String("conv1"),
		Type:   proto.String("Conv"),
		Engine: proto.String("CUDNN"),
		Arg: []*generated.Argument{
			{Name: proto.String("kernel"), I: proto.Int64(3)},
			{Name: proto.String("stride"), I: proto.Int64(1)},
			{Name: proto.String("pads"), Ints: []int64{1, 1, 1, 1}},
			{Name: proto.String("order"), S: []byte("NCHW")},
		},
	}
}

// ReluOperator returns an in-place Relu operator without arguments.
func ReluOperator() *generated.OperatorDef {
	return &generated.OperatorDef{
		Input:  []string{"conv1"},
		Output: []string{"conv1"},
		Type:   proto.String("Relu"),
	}
}

// DuplicateArgsOperator returns an operator whose arguments are named
// a, b, a in that order, each holding its index in i.
func DuplicateArgsOperator() *generated.OperatorDef {
	return &generated.OperatorDef{
		Type: proto.String("Dup"),
		Arg: []*generated.Argument{
			{Name: proto.String("a"), I: proto.Int64(0)},
			{Name: proto.String("b"), I: proto.Int64(1)},
			{Name: proto.String("a"), I: proto.Int64(2)},
		},
	}
}

// SampleNet returns a two operator net.
func SampleNet() *generated.NetDef {
	return &generated.NetDef{
		Name:           proto.String("sample"),
		Type:           proto.String("simple"),
		NumWorkers:     proto.Int32(2),
		Op:             []*generated.OperatorDef{ConvOperator(), ReluOperator()},
		Arg:            []*generated.Argument{{Name: proto.String("scale"), F: proto.Float32(0.5)}},
		ExternalInput:  []string{"data", "conv1_w", "conv1_b"},
		ExternalOutput: []string{"conv1"},
	}
}

// WriteFixture encodes msg into name under a per-test temporary directory and
// returns the full path. The encoding follows the extension: .pbtxt for text,
// .json for JSON, anything else for binary.
func WriteFixture(t *testing.T, name string, msg proto.Message) string {
	t.Helper()

	var (
		data []byte
		err  error
	)
	switch filepath.Ext(name) {
	case ".pbtxt":
		data, err = prototext.Marshal(msg)
	case ".json":
		data, err = protojson.Marshal(msg)
	default:
		data, err = proto.Marshal(msg)
	}
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
