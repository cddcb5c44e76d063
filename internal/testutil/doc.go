// Package testutil provides fixtures shared by package tests.
//
// The builders return fresh messages on every call so tests can mutate them
// freely. WriteFixture places a message in a temporary directory owned by the
// test.
//
// This package is internal and should not be imported by external code.
package testutil
