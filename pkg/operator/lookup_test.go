package operator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/caffe2/go-sdk/internal/testutil"
	"github.com/caffe2/go-sdk/pkg/core"
	"github.com/caffe2/go-sdk/pkg/operator"
)

func TestGetArgument_FirstMatchWins(t *testing.T) {
	def := testutil.DuplicateArgsOperator()

	arg, err := operator.GetArgument(def, "a")
	require.NoError(t, err)
	assert.Same(t, def.Arg[0], arg)
	assert.Equal(t, int64(0), arg.GetI())

	arg, err = operator.GetArgument(def, "b")
	require.NoError(t, err)
	assert.Same(t, def.Arg[1], arg)
}

func TestGetArgument_Missing(t *testing.T) {
	def := testutil.ConvOperator()

	arg, err := operator.GetArgument(def, "missing")
	assert.Nil(t, arg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrArgumentNotFound))

	var argErr *core.ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "missing", argErr.Name)
}

func TestGetArgument_NetDef(t *testing.T) {
	arg, err := operator.GetArgument(testutil.SampleNet(), "scale")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), arg.GetF())
}

func TestMustGetArgument(t *testing.T) {
	def := testutil.ConvOperator()

	assert.Equal(t, int64(3), operator.MustGetArgument(def, "kernel").GetI())
	assert.PanicsWithError(t, `argument "missing" in get argument: argument does not exist`, func() {
		operator.MustGetArgument(def, "missing")
	})
}

func TestGetMutableArgument(t *testing.T) {
	t.Run("existing argument is shared with def", func(t *testing.T) {
		def := testutil.DuplicateArgsOperator()

		arg := operator.GetMutableArgument(def, "a", false)
		require.NotNil(t, arg)
		arg.I = proto.Int64(42)

		assert.Equal(t, int64(42), def.Arg[0].GetI())
		assert.Equal(t, int64(2), def.Arg[2].GetI())
		assert.Len(t, def.Arg, 3)
	})

	t.Run("absent without create", func(t *testing.T) {
		def := testutil.DuplicateArgsOperator()
		before := proto.Clone(def)

		assert.Nil(t, operator.GetMutableArgument(def, "c", false))
		assert.True(t, proto.Equal(before, def))
	})

	t.Run("absent with create appends", func(t *testing.T) {
		def := testutil.DuplicateArgsOperator()

		arg := operator.GetMutableArgument(def, "c", true)
		require.NotNil(t, arg)
		require.Len(t, def.Arg, 4)
		assert.Same(t, def.Arg[3], arg)
		assert.Equal(t, "c", arg.GetName())
		assert.Nil(t, arg.I)

		arg.F = proto.Float32(1.5)
		got, err := operator.GetArgument(def, "c")
		require.NoError(t, err)
		assert.Equal(t, float32(1.5), got.GetF())
	})

	t.Run("create is idempotent", func(t *testing.T) {
		def := testutil.ReluOperator()

		first := operator.GetMutableArgument(def, "c", true)
		second := operator.GetMutableArgument(def, "c", true)
		assert.Same(t, first, second)
		assert.Len(t, def.Arg, 1)
	})
}

func TestHasArgument(t *testing.T) {
	def := testutil.ConvOperator()
	assert.True(t, operator.HasArgument(def, "pads"))
	assert.False(t, operator.HasArgument(def, "dilation"))
	assert.False(t, operator.HasArgument(testutil.ReluOperator(), "pads"))
}
