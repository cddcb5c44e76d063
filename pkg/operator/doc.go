// Package operator builds and looks up the named arguments carried by caffe2
// operator and net definitions.
//
// Arguments are created with one constructor per value shape. The scalar and
// repeated families are generic over Scalar, so the caller always selects
// the concrete Go type and with it the slot that gets populated:
//
//	float32 -> f / floats
//	int     -> i / ints
//	int64   -> i / ints
//	string  -> s / strings
//
// Nested messages are stored in s in their binary encoding.
//
// Lookups scan the argument list in order and return the first entry whose
// name matches. Duplicate names are legal on the wire; later duplicates are
// never visible through this package.
//
// Example usage:
//
//	def := &generated.OperatorDef{Type: proto.String("Conv")}
//	def.Arg = append(def.Arg,
//		operator.MakeArgument("stride", 2),
//		operator.MakeRepeatedArgument("pads", []int{1, 1, 1, 1}),
//	)
//
//	stride, err := operator.GetSingleArgument(def, "stride", 1)
package operator
