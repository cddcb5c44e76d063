package operator

import (
	"google.golang.org/protobuf/proto"

	"github.com/caffe2/go-sdk/pkg/core"
	"github.com/caffe2/go-sdk/pkg/proto/generated"
)

// Scalar lists the value types an Argument slot can carry.
type Scalar interface {
	float32 | int | int64 | string
}

// MakeArgument returns a new argument with name set and the slot matching T
// holding value. No other field is populated.
func MakeArgument[T Scalar](name string, value T) *generated.Argument {
	arg := &generated.Argument{Name: proto.String(name)}
	switch v := any(value).(type) {
	case float32:
		arg.F = proto.Float32(v)
	case int:
		arg.I = proto.Int64(int64(v))
	case int64:
		arg.I = proto.Int64(v)
	case string:
		// Non-nil even for "" so that s reads back as set.
		arg.S = append([]byte{}, v...)
	}
	return arg
}

// MakeRepeatedArgument returns a new argument with name set and values
// appended, in order, to the repeated slot matching T.
func MakeRepeatedArgument[T Scalar](name string, values []T) *generated.Argument {
	arg := &generated.Argument{Name: proto.String(name)}
	for _, value := range values {
		switch v := any(value).(type) {
		case float32:
			arg.Floats = append(arg.Floats, v)
		case int:
			arg.Ints = append(arg.Ints, int64(v))
		case int64:
			arg.Ints = append(arg.Ints, v)
		case string:
			arg.Strings = append(arg.Strings, []byte(v))
		}
	}
	return arg
}

// MakeMessageArgument returns a new argument whose s slot holds the
// deterministic binary encoding of value.
func MakeMessageArgument(name string, value proto.Message) (*generated.Argument, error) {
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(value)
	if err != nil {
		return nil, &core.ArgumentError{Operation: "make argument", Name: name, Err: err}
	}
	if data == nil {
		data = []byte{}
	}
	return &generated.Argument{Name: proto.String(name), S: data}, nil
}
