package core

import (
	"errors"
	"os"
	"testing"
)

func TestProtobufError(t *testing.T) {
	err := &ProtobufError{Operation: "read binary", Path: "net.pb", Err: os.ErrNotExist}

	if got, want := err.Error(), "protobuf error in read binary for net.pb: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is should see the wrapped os error")
	}

	noPath := &ProtobufError{Operation: "unmarshal binary", Err: ErrParse}
	if got, want := noPath.Error(), "protobuf error in unmarshal binary: failed to parse message"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestArgumentError(t *testing.T) {
	var err error = &ArgumentError{Operation: "get argument", Name: "kernel", Err: ErrArgumentNotFound}

	if got, want := err.Error(), `argument "kernel" in get argument: argument does not exist`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatal("errors.As should find *ArgumentError")
	}
	if argErr.Name != "kernel" {
		t.Errorf("Name = %q, want %q", argErr.Name, "kernel")
	}
	if !errors.Is(err, ErrArgumentNotFound) {
		t.Error("errors.Is should match ErrArgumentNotFound")
	}
	if errors.Is(err, ErrNotImplemented) {
		t.Error("programmer errors must stay distinct from ErrNotImplemented")
	}
}

func TestConfigError(t *testing.T) {
	cause := errors.New("must be positive")
	err := &ConfigError{Field: "jobs", Value: 0, Err: cause}

	if got, want := err.Error(), "config error in field jobs (value: 0): must be positive"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see the cause")
	}
}
