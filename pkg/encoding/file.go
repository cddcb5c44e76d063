package encoding

import (
	"fmt"
	"io"
	"os"

	"github.com/caffe2/go-sdk/pkg/core"
)

func errSizeLimit(n, limit int64) error {
	return fmt.Errorf("%w: %d bytes, limit is %d", core.ErrSizeLimitExceeded, n, limit)
}

func errStreamLimit(limit int64) error {
	return fmt.Errorf("%w: more than %d bytes", core.ErrSizeLimitExceeded, limit)
}

// loadFile reads path under the size policy in o. The handle is closed before
// returning on every path.
func loadFile(op, path string, o *readOptions) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &core.ProtobufError{Operation: op, Path: path, Err: err}
	}
	defer file.Close()

	// Regular files are rejected before any byte is read.
	sized := false
	if stat, err := file.Stat(); err == nil && stat.Mode().IsRegular() {
		if err := o.checkSize(path, stat.Size()); err != nil {
			return nil, &core.ProtobufError{Operation: op, Path: path, Err: err}
		}
		sized = true
	}

	// Pipes and devices report no size, so the reader is bounded as well.
	data, err := io.ReadAll(io.LimitReader(file, o.totalBytesLimit+1))
	if err != nil {
		return nil, &core.ProtobufError{Operation: op, Path: path, Err: err}
	}
	n := int64(len(data))
	if !sized && n > o.totalBytesLimit {
		// Only the read-ahead is known, not the stream size.
		return nil, &core.ProtobufError{Operation: op, Path: path, Err: errStreamLimit(o.totalBytesLimit)}
	}
	if n > o.totalBytesLimit || !sized {
		if err := o.checkSize(path, n); err != nil {
			return nil, &core.ProtobufError{Operation: op, Path: path, Err: err}
		}
	}
	return data, nil
}

// saveFile marshals first so that a failed marshal never truncates an
// existing file.
func saveFile(op, path string, marshal func() ([]byte, error)) error {
	data, err := marshal()
	if err != nil {
		return &core.ProtobufError{Operation: op, Path: path, Err: err}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return &core.ProtobufError{Operation: op, Path: path, Err: fmt.Errorf("file cannot be created: %w", err)}
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return &core.ProtobufError{Operation: op, Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &core.ProtobufError{Operation: op, Path: path, Err: err}
	}
	return nil
}

func parseError(op, path string, err error) error {
	return &core.ProtobufError{Operation: op, Path: path, Err: fmt.Errorf("%w: %v", core.ErrParse, err)}
}
