package operator

import (
	"google.golang.org/protobuf/proto"

	"github.com/caffe2/go-sdk/pkg/core"
	"github.com/caffe2/go-sdk/pkg/proto/generated"
)

// ArgumentSource is implemented by every definition that carries arguments,
// notably *generated.OperatorDef and *generated.NetDef.
type ArgumentSource interface {
	GetArg() []*generated.Argument
}

// GetArgument returns the first argument of def named name. A missing
// argument is reported as core.ErrArgumentNotFound.
func GetArgument(def ArgumentSource, name string) (*generated.Argument, error) {
	if arg := findArgument(def, name); arg != nil {
		return arg, nil
	}
	return nil, &core.ArgumentError{Operation: "get argument", Name: name, Err: core.ErrArgumentNotFound}
}

// MustGetArgument is like GetArgument but panics when the argument is missing.
// Use it where a missing argument can only be a programming error.
func MustGetArgument(def ArgumentSource, name string) *generated.Argument {
	arg, err := GetArgument(def, name)
	if err != nil {
		panic(err)
	}
	return arg
}

// GetMutableArgument returns the first argument of def named name. The
// returned pointer is the one stored in def, so changes made through it are
// seen by def. When no argument matches and createIfMissing is set, a new
// argument carrying only the name is appended and returned; otherwise nil is
// returned and def is left unchanged.
func GetMutableArgument(def *generated.OperatorDef, name string, createIfMissing bool) *generated.Argument {
	if arg := findArgument(def, name); arg != nil {
		return arg
	}
	if !createIfMissing {
		return nil
	}
	arg := &generated.Argument{Name: proto.String(name)}
	def.Arg = append(def.Arg, arg)
	return arg
}

// HasArgument reports whether def carries an argument named name.
func HasArgument(def ArgumentSource, name string) bool {
	return findArgument(def, name) != nil
}

func findArgument(def ArgumentSource, name string) *generated.Argument {
	for _, arg := range def.GetArg() {
		if arg.GetName() == name {
			return arg
		}
	}
	return nil
}
