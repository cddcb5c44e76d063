package cli

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/caffe2/go-sdk/pkg/core"
)

var messageAliases = map[string]protoreflect.FullName{
	"netdef":   "caffe2.NetDef",
	"net":      "caffe2.NetDef",
	"operator": "caffe2.OperatorDef",
	"op":       "caffe2.OperatorDef",
	"argument": "caffe2.Argument",
	"arg":      "caffe2.Argument",
}

// lookupMessageType resolves a short alias or a fully qualified message name.
func lookupMessageType(name string) (protoreflect.MessageType, error) {
	full, ok := messageAliases[strings.ToLower(name)]
	if !ok {
		full = protoreflect.FullName(name)
	}
	mt, err := protoregistry.GlobalTypes.FindMessageByName(full)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownMessageType, name)
	}
	return mt, nil
}

func (o *RootOptions) newMessage() proto.Message {
	mt, err := lookupMessageType(o.MessageType)
	if err != nil {
		// Validated in PersistentPreRunE.
		panic(err)
	}
	return mt.New().Interface()
}
