//go:build !protolite

package encoding

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

var (
	binaryMarshal = proto.MarshalOptions{Deterministic: true}
	textMarshal   = prototext.MarshalOptions{Multiline: true, Indent: "  "}
	jsonMarshal   = protojson.MarshalOptions{Multiline: true, Indent: "  "}
)

// WriteBinary serializes msg to path, creating or truncating it.
func WriteBinary(msg proto.Message, path string) error {
	return saveFile("write binary", path, func() ([]byte, error) {
		return binaryMarshal.Marshal(msg)
	})
}

// ReadText parses the text-format file at path into msg.
func ReadText(path string, msg proto.Message, opts ...Option) error {
	data, err := loadFile("read text", path, newReadOptions(opts))
	if err != nil {
		return err
	}
	if err := prototext.Unmarshal(data, msg); err != nil {
		return parseError("read text", path, err)
	}
	return nil
}

// WriteText writes msg to path in the multi-line text format.
func WriteText(msg proto.Message, path string) error {
	return saveFile("write text", path, func() ([]byte, error) {
		return textMarshal.Marshal(msg)
	})
}

// ReadJSON parses the JSON file at path into msg.
func ReadJSON(path string, msg proto.Message, opts ...Option) error {
	data, err := loadFile("read json", path, newReadOptions(opts))
	if err != nil {
		return err
	}
	if err := protojson.Unmarshal(data, msg); err != nil {
		return parseError("read json", path, err)
	}
	return nil
}

// WriteJSON writes msg to path using the canonical protobuf JSON mapping.
func WriteJSON(msg proto.Message, path string) error {
	return saveFile("write json", path, func() ([]byte, error) {
		return jsonMarshal.Marshal(msg)
	})
}

// DebugString renders msg on a single line for log output.
func DebugString(msg proto.Message) string {
	return prototext.MarshalOptions{}.Format(msg)
}

// MarshalText renders msg in the same text layout WriteText produces.
func MarshalText(msg proto.Message) ([]byte, error) {
	return textMarshal.Marshal(msg)
}

// MarshalJSON renders msg in the same JSON layout WriteJSON produces.
func MarshalJSON(msg proto.Message) ([]byte, error) {
	return jsonMarshal.Marshal(msg)
}
