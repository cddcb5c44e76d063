//go:build !protolite

package encoding_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/caffe2/go-sdk/internal/testutil"
	"github.com/caffe2/go-sdk/pkg/core"
	"github.com/caffe2/go-sdk/pkg/encoding"
	"github.com/caffe2/go-sdk/pkg/proto/generated"
)

func TestRoundTrip(t *testing.T) {
	messages := map[string]func() proto.Message{
		"net":      func() proto.Message { return testutil.SampleNet() },
		"operator": func() proto.Message { return testutil.ConvOperator() },
		"empty":    func() proto.Message { return &generated.NetDef{} },
		"argument": func() proto.Message {
			return &generated.Argument{Name: proto.String("blob"), S: []byte{0x00, 0xff, '\n'}}
		},
	}

	for _, format := range []encoding.Format{encoding.FormatBinary, encoding.FormatText, encoding.FormatJSON} {
		for name, build := range messages {
			t.Run(string(format)+"/"+name, func(t *testing.T) {
				want := build()
				path := filepath.Join(t.TempDir(), name+format.Extension())
				require.NoError(t, encoding.Write(want, path, format))

				got := want.ProtoReflect().New().Interface()
				require.NoError(t, encoding.Read(path, format, got))
				assert.Empty(t, cmp.Diff(want, got, protocmp.Transform()))
			})
		}
	}
}

func TestWriteBinary_Mode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.pb")
	require.NoError(t, encoding.WriteBinary(testutil.SampleNet(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	// The umask may clear bits but never adds any.
	assert.Zero(t, info.Mode().Perm()&^os.FileMode(encoding.FileMode))
}

func TestWriteBinary_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.pb")
	require.NoError(t, encoding.WriteBinary(testutil.SampleNet(), path))

	small := &generated.NetDef{Name: proto.String("small")}
	require.NoError(t, encoding.WriteBinary(small, path))

	got := &generated.NetDef{}
	require.NoError(t, encoding.ReadBinary(path, got))
	assert.True(t, proto.Equal(small, got))
}

func TestWriteBinary_CannotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "net.pb")
	err := encoding.WriteBinary(testutil.SampleNet(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "file cannot be created")
}

func TestWriteText_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "op.pbtxt")
	require.NoError(t, encoding.WriteText(testutil.ReluOperator(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `type:`)
	assert.Contains(t, text, `"Relu"`)
	assert.Greater(t, strings.Count(text, "\n"), 1)
}

func TestReadText_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "op.pbtxt")
	require.NoError(t, os.WriteFile(path, []byte("arg { name: "), 0o644))

	err := encoding.ReadText(path, &generated.OperatorDef{})
	assert.True(t, errors.Is(err, core.ErrParse))
}

func TestReadText_HandWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "op.pbtxt")
	src := `
type: "Conv"
arg { name: "kernel" i: 3 }
arg { name: "pads" ints: 1 ints: 2 }
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	got := &generated.OperatorDef{}
	require.NoError(t, encoding.ReadText(path, got))
	assert.Equal(t, "Conv", got.GetType())
	require.Len(t, got.GetArg(), 2)
	assert.Equal(t, int64(3), got.GetArg()[0].GetI())
	assert.Equal(t, []int64{1, 2}, got.GetArg()[1].GetInts())
}

func TestReadJSON_MissingFile(t *testing.T) {
	err := encoding.ReadJSON(filepath.Join(t.TempDir(), "absent.json"), &generated.NetDef{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDebugString(t *testing.T) {
	s := encoding.DebugString(testutil.ReluOperator())
	assert.NotContains(t, s, "\n")
	assert.Contains(t, s, "Relu")
}

func TestReadWrite_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	assert.True(t, errors.Is(encoding.Write(testutil.SampleNet(), path, "yaml"), core.ErrUnsupportedFormat))
	assert.True(t, errors.Is(encoding.Read(path, "yaml", &generated.NetDef{}), core.ErrUnsupportedFormat))
}
