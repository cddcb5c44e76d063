//go:build !protolite

package cli_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffe2/go-sdk/internal/testutil"
	"github.com/caffe2/go-sdk/pkg/encoding"
	"github.com/caffe2/go-sdk/pkg/operator"
	"github.com/caffe2/go-sdk/pkg/proto/generated"
)

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestArgsList_Golden(t *testing.T) {
	g := newGolden(t)

	tests := []struct {
		golden  string
		fixture string
		flags   []string
	}{
		{golden: "args_list_text", fixture: "net.pb"},
		{golden: "args_list_text", fixture: "net.pbtxt"},
		{golden: "args_list_json", fixture: "net.pb", flags: []string{"--format", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.golden+"/"+tt.fixture, func(t *testing.T) {
			path := testutil.WriteFixture(t, tt.fixture, testutil.SampleNet())
			args := append(append([]string{}, tt.flags...), "args", "list", path)

			out, err := execute(t, args...)
			require.NoError(t, err)
			g.Assert(t, tt.golden, []byte(out))
		})
	}
}

func TestArgsList_Empty(t *testing.T) {
	path := testutil.WriteFixture(t, "empty.pb", &generated.NetDef{})

	out, err := execute(t, "args", "list", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "--format", "json", "args", "list", path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestArgsSet(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		argName string
		check   func(t *testing.T, def *generated.OperatorDef)
		output  string
	}{
		{
			name:    "replace existing scalar",
			flags:   []string{"--name", "kernel", "--int", "5"},
			argName: "kernel",
			check: func(t *testing.T, def *generated.OperatorDef) {
				v, err := operator.GetSingleArgument(def, "kernel", 0)
				require.NoError(t, err)
				assert.Equal(t, 5, v)
				assert.Len(t, def.GetArg(), 4)
			},
			output: "op[0] Conv kernel = i=5\n",
		},
		{
			name:    "switch slot type",
			flags:   []string{"--name", "order", "--float", "0.25"},
			argName: "order",
			check: func(t *testing.T, def *generated.OperatorDef) {
				arg := operator.MustGetArgument(def, "order")
				assert.Nil(t, arg.S)
				assert.Equal(t, float32(0.25), arg.GetF())
			},
			output: "op[0] Conv order = f=0.25\n",
		},
		{
			name:    "create repeated",
			flags:   []string{"--name", "dilations", "--ints", "2,2"},
			argName: "dilations",
			check: func(t *testing.T, def *generated.OperatorDef) {
				assert.Len(t, def.GetArg(), 5)
				assert.Equal(t, []int64{2, 2}, operator.GetRepeatedArgument[int64](def, "dilations"))
			},
			output: "op[0] Conv dilations = ints=[2 2]\n",
		},
		{
			name:    "create string on second op",
			flags:   []string{"--op", "1", "--name", "mode", "--string", "fast"},
			argName: "mode",
			output:  "op[1] Relu mode = s=\"fast\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fixture := range []string{"net.pb", "net.pbtxt", "net.json"} {
				path := testutil.WriteFixture(t, fixture, testutil.SampleNet())

				args := append([]string{"args", "set", path}, tt.flags...)
				out, err := execute(t, args...)
				require.NoError(t, err, fixture)
				assert.Equal(t, tt.output, out, fixture)

				net := &generated.NetDef{}
				require.NoError(t, encoding.Read(path, encoding.FormatFromPath(path), net), fixture)
				if tt.check != nil {
					tt.check(t, net.GetOp()[0])
				}
			}
		})
	}
}

func TestArgsSet_Errors(t *testing.T) {
	path := testutil.WriteFixture(t, "net.pb", testutil.SampleNet())

	_, err := execute(t, "args", "set", path, "--op", "7", "--name", "k", "--int", "1")
	assert.ErrorContains(t, err, "out of range")

	_, err = execute(t, "args", "set", path, "--name", "k")
	assert.Error(t, err)

	_, err = execute(t, "args", "set", path, "--name", "k", "--int", "1", "--float", "2")
	assert.Error(t, err)

	_, err = execute(t, "args", "set", path, "--int", "1")
	assert.ErrorContains(t, err, `required flag(s) "name" not set`)
}
