package encoding

import (
	"google.golang.org/protobuf/proto"

	"github.com/caffe2/go-sdk/pkg/core"
)

// ReadBinary parses the binary file at path into msg. On error msg may be
// partially populated and must be discarded.
func ReadBinary(path string, msg proto.Message, opts ...Option) error {
	o := newReadOptions(opts)
	data, err := loadFile("read binary", path, o)
	if err != nil {
		return err
	}
	if err := proto.Unmarshal(data, msg); err != nil {
		return parseError("read binary", path, err)
	}
	return nil
}

// UnmarshalBinary parses data into msg under the same size policy as
// ReadBinary.
func UnmarshalBinary(data []byte, msg proto.Message, opts ...Option) error {
	o := newReadOptions(opts)
	if err := o.checkSize("", int64(len(data))); err != nil {
		return &core.ProtobufError{Operation: "unmarshal binary", Err: err}
	}
	if err := proto.Unmarshal(data, msg); err != nil {
		return parseError("unmarshal binary", "", err)
	}
	return nil
}
