// Package core provides the error vocabulary shared by the caffe2 Go utilities.
//
// Conditions that the framework historically treated as fatal (a missing
// argument, a file that cannot be created, a stream over the size limit) are
// reported here as ordinary errors. Two kinds are kept apart:
//
//   - expected absence: ErrNotImplemented in reduced builds, a missing optional
//     file (errors.Is(err, os.ErrNotExist)), a nil result from a mutable lookup
//   - programmer or configuration error: ErrArgumentNotFound, ErrArgumentType,
//     ErrParse, ErrSizeLimitExceeded
//
// Example usage:
//
//	import "github.com/caffe2/go-sdk/pkg/core"
//
//	arg, err := operator.GetArgument(def, "kernel")
//	if errors.Is(err, core.ErrArgumentNotFound) {
//		log.Fatal(err)
//	}
package core
