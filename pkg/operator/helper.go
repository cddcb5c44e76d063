package operator

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/proto"

	"github.com/caffe2/go-sdk/pkg/core"
	"github.com/caffe2/go-sdk/pkg/encoding"
	"github.com/caffe2/go-sdk/pkg/proto/generated"
)

// GetSingleArgument reads the scalar slot matching T from the argument named
// name. An absent argument yields fallback. An argument whose matching slot
// is unset yields core.ErrArgumentType.
func GetSingleArgument[T Scalar](def ArgumentSource, name string, fallback T) (T, error) {
	arg := findArgument(def, name)
	if arg == nil {
		return fallback, nil
	}

	var (
		value any
		set   bool
	)
	switch any(fallback).(type) {
	case float32:
		value, set = arg.GetF(), arg.F != nil
	case int:
		value, set = int(arg.GetI()), arg.I != nil
	case int64:
		value, set = arg.GetI(), arg.I != nil
	case string:
		value, set = string(arg.GetS()), arg.S != nil
	}
	if !set {
		return fallback, &core.ArgumentError{
			Operation: "get single argument",
			Name:      name,
			Err:       fmt.Errorf("%w: want %T", core.ErrArgumentType, fallback),
		}
	}
	return value.(T), nil
}

// GetRepeatedArgument reads the repeated slot matching T from the argument
// named name, preserving order. An absent argument yields nil.
func GetRepeatedArgument[T Scalar](def ArgumentSource, name string) []T {
	arg := findArgument(def, name)
	if arg == nil {
		return nil
	}

	var out []T
	var zero T
	switch any(zero).(type) {
	case float32:
		for _, v := range arg.GetFloats() {
			out = append(out, any(v).(T))
		}
	case int:
		for _, v := range arg.GetInts() {
			out = append(out, any(int(v)).(T))
		}
	case int64:
		for _, v := range arg.GetInts() {
			out = append(out, any(v).(T))
		}
	case string:
		for _, v := range arg.GetStrings() {
			out = append(out, any(string(v)).(T))
		}
	}
	return out
}

// GetMessageArgument decodes the s slot of the argument named name into msg.
func GetMessageArgument(def ArgumentSource, name string, msg proto.Message) error {
	arg, err := GetArgument(def, name)
	if err != nil {
		return err
	}
	if arg.S == nil {
		return &core.ArgumentError{
			Operation: "get message argument",
			Name:      name,
			Err:       fmt.Errorf("%w: want serialized %s", core.ErrArgumentType, msg.ProtoReflect().Descriptor().FullName()),
		}
	}
	if err := encoding.UnmarshalBinary(arg.GetS(), msg); err != nil {
		return &core.ArgumentError{Operation: "get message argument", Name: name, Err: err}
	}
	return nil
}

// ValueString renders whichever slots of arg are set, in field order.
func ValueString(arg *generated.Argument) string {
	var parts []string
	if arg.F != nil {
		parts = append(parts, "f="+strconv.FormatFloat(float64(arg.GetF()), 'g', -1, 32))
	}
	if arg.I != nil {
		parts = append(parts, "i="+strconv.FormatInt(arg.GetI(), 10))
	}
	if arg.S != nil {
		parts = append(parts, "s="+strconv.Quote(string(arg.GetS())))
	}
	if len(arg.GetFloats()) > 0 {
		vals := make([]string, len(arg.GetFloats()))
		for i, v := range arg.GetFloats() {
			vals[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
		}
		parts = append(parts, "floats=["+strings.Join(vals, " ")+"]")
	}
	if len(arg.GetInts()) > 0 {
		vals := make([]string, len(arg.GetInts()))
		for i, v := range arg.GetInts() {
			vals[i] = strconv.FormatInt(v, 10)
		}
		parts = append(parts, "ints=["+strings.Join(vals, " ")+"]")
	}
	if len(arg.GetStrings()) > 0 {
		vals := make([]string, len(arg.GetStrings()))
		for i, v := range arg.GetStrings() {
			vals[i] = strconv.Quote(string(v))
		}
		parts = append(parts, "strings=["+strings.Join(vals, " ")+"]")
	}
	if len(parts) == 0 {
		return "<unset>"
	}
	return strings.Join(parts, " ")
}
