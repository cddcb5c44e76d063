package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotImplemented     = errors.New("feature not yet implemented")
	ErrParse              = errors.New("failed to parse message")
	ErrSizeLimitExceeded  = errors.New("message exceeds total bytes limit")
	ErrArgumentNotFound   = errors.New("argument does not exist")
	ErrArgumentType       = errors.New("argument does not hold a value of the requested type")
	ErrUnsupportedFormat  = errors.New("unsupported encoding format")
	ErrUnknownMessageType = errors.New("unknown message type")
)

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ProtobufError represents errors raised while moving a message between
// memory and disk.
type ProtobufError struct {
	Operation string
	Path      string
	Err       error
}

func (e *ProtobufError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("protobuf error in %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("protobuf error in %s for %s: %v", e.Operation, e.Path, e.Err)
}

func (e *ProtobufError) Unwrap() error {
	return e.Err
}

// ArgumentError represents a failed argument lookup or conversion on an
// operator definition.
type ArgumentError struct {
	Operation string
	Name      string
	Err       error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q in %s: %v", e.Name, e.Operation, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
