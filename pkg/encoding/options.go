package encoding

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTotalBytesLimit is the hard ceiling on a binary message read
	// from disk.
	DefaultTotalBytesLimit int64 = 1 << 30 // 1GB

	// DefaultWarningThreshold is the size above which a read still succeeds
	// but logs a warning.
	DefaultWarningThreshold int64 = 512 << 20 // 512MB

	// FileMode is the permission applied to files created by the Write helpers.
	FileMode = 0644
)

// Option configures a read.
type Option func(*readOptions)

type readOptions struct {
	totalBytesLimit  int64
	warningThreshold int64
	logger           logrus.FieldLogger
}

func newReadOptions(opts []Option) *readOptions {
	o := &readOptions{
		totalBytesLimit:  DefaultTotalBytesLimit,
		warningThreshold: DefaultWarningThreshold,
		logger:           logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLimits overrides the hard ceiling and the warning threshold, both in
// bytes. Non-positive values keep the defaults. A warning threshold at or
// above the hard limit disables the warning.
func WithLimits(totalBytesLimit, warningThreshold int64) Option {
	return func(o *readOptions) {
		if totalBytesLimit > 0 {
			o.totalBytesLimit = totalBytesLimit
		}
		if warningThreshold > 0 {
			o.warningThreshold = warningThreshold
		}
	}
}

// WithLogger routes the large-message warning to logger instead of the
// logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *readOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// checkSize applies the size policy to a payload of n bytes.
func (o *readOptions) checkSize(path string, n int64) error {
	if n > o.totalBytesLimit {
		return errSizeLimit(n, o.totalBytesLimit)
	}
	if o.warningThreshold < o.totalBytesLimit && n > o.warningThreshold {
		o.logger.WithFields(logrus.Fields{
			"path":              path,
			"bytes":             n,
			"warning_threshold": o.warningThreshold,
			"total_bytes_limit": o.totalBytesLimit,
		}).Warn("reading dangerously large protocol message")
	}
	return nil
}
