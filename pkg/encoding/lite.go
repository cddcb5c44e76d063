//go:build protolite

package encoding

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/caffe2/go-sdk/pkg/core"
)

func notImplemented(op, path string) error {
	return &core.ProtobufError{Operation: op, Path: path, Err: core.ErrNotImplemented}
}

// WriteBinary is not available in the lite build.
func WriteBinary(msg proto.Message, path string) error {
	return notImplemented("write binary", path)
}

// ReadText is not available in the lite build.
func ReadText(path string, msg proto.Message, opts ...Option) error {
	return notImplemented("read text", path)
}

// WriteText is not available in the lite build.
func WriteText(msg proto.Message, path string) error {
	return notImplemented("write text", path)
}

// ReadJSON is not available in the lite build.
func ReadJSON(path string, msg proto.Message, opts ...Option) error {
	return notImplemented("read json", path)
}

// WriteJSON is not available in the lite build.
func WriteJSON(msg proto.Message, path string) error {
	return notImplemented("write json", path)
}

// DebugString names the message and its encoded size; the lite build carries
// no text encoder.
func DebugString(msg proto.Message) string {
	return fmt.Sprintf("%s(%d bytes)", msg.ProtoReflect().Descriptor().FullName(), proto.Size(msg))
}

// MarshalText is not available in the lite build.
func MarshalText(msg proto.Message) ([]byte, error) {
	return nil, notImplemented("marshal text", "")
}

// MarshalJSON is not available in the lite build.
func MarshalJSON(msg proto.Message) ([]byte, error) {
	return nil, notImplemented("marshal json", "")
}
