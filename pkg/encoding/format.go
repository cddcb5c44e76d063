package encoding

import (
	"fmt"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/proto"

	"github.com/caffe2/go-sdk/pkg/core"
)

// Format identifies an on-disk encoding.
type Format string

const (
	FormatBinary Format = "binary"
	FormatText   Format = "text"
	FormatJSON   Format = "json"
)

// Extension returns the conventional file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return ".pbtxt"
	case FormatJSON:
		return ".json"
	default:
		return ".pb"
	}
}

// ParseFormat accepts the names used on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "binary", "pb":
		return FormatBinary, nil
	case "text", "pbtxt", "prototxt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, s)
}

// FormatFromPath infers the encoding from the file extension. Unknown
// extensions are treated as binary.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pbtxt", ".prototxt", ".txt":
		return FormatText
	case ".json":
		return FormatJSON
	default:
		return FormatBinary
	}
}

// Read dispatches to the reader for format.
func Read(path string, format Format, msg proto.Message, opts ...Option) error {
	switch format {
	case FormatBinary:
		return ReadBinary(path, msg, opts...)
	case FormatText:
		return ReadText(path, msg, opts...)
	case FormatJSON:
		return ReadJSON(path, msg, opts...)
	}
	return &core.ProtobufError{Operation: "read", Path: path, Err: fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, format)}
}

// Write dispatches to the writer for format.
func Write(msg proto.Message, path string, format Format) error {
	switch format {
	case FormatBinary:
		return WriteBinary(msg, path)
	case FormatText:
		return WriteText(msg, path)
	case FormatJSON:
		return WriteJSON(msg, path)
	}
	return &core.ProtobufError{Operation: "write", Path: path, Err: fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, format)}
}
