// Package encoding moves caffe2 protocol buffer messages between memory and disk.
//
// Three formats are supported:
//   - Binary: the protobuf wire format, used for nets and weights in production
//   - Text: the protobuf text format, for hand-edited definitions
//   - JSON: the canonical protobuf JSON mapping, for tooling
//
// Binary reads enforce a total bytes ceiling (1 GiB by default) and log a
// warning above a softer threshold (512 MiB by default). Files are created
// with mode 0644. Every call opens and closes its own file handle; nothing is
// retried.
//
// Building with the protolite tag produces the reduced variant: binary reads
// keep working while every write and every text or JSON helper returns
// core.ErrNotImplemented.
//
// Example usage:
//
//	import "github.com/caffe2/go-sdk/pkg/encoding"
//
//	net := &generated.NetDef{}
//	if err := encoding.ReadBinary("init_net.pb", net); err != nil {
//		log.Fatal(err)
//	}
//
//	if err := encoding.WriteText(net, "init_net.pbtxt"); err != nil {
//		log.Fatal(err)
//	}
package encoding
