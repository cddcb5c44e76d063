package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffe2/go-sdk/internal/cli"
)

// execute runs the CLI with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "convert")
	assert.Contains(t, out, "dump")
	assert.Contains(t, out, "args")
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "yaml", "dump", "net.pb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
}

func TestRootCommand_UnknownType(t *testing.T) {
	_, err := execute(t, "--type", "tensor", "dump", "net.pb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown message type")
}

func TestRootCommand_FullyQualifiedType(t *testing.T) {
	_, err := execute(t, "--type", "caffe2.OperatorDef", "dump", "absent.pb")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "unknown message type")
}
