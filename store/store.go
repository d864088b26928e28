// Package store persists encoded artifacts under ordinal file names.
//
// Two sinks share the Sink interface:
//
//   - Dir writes one file per artifact under a directory (created on open).
//   - Badger writes one key per artifact into an embedded BadgerDB, using the
//     same names as keys, for runs producing too many files.
//
// Names follow FileName: "i<ordinal>.<ext>", ordinal starting at 0.
package store

import (
	"errors"
	"fmt"
)

// Sink stores named blobs. Write returns the location of the blob (a path
// or a key URI). Close releases the sink; writes after Close fail.
type Sink interface {
	Write(name string, data []byte) (string, error)
	Close() error
}

// ErrClosed indicates a write to a closed sink.
var ErrClosed = errors.New("store: sink closed")

// ErrInvalidName indicates an empty name or one containing a path separator.
var ErrInvalidName = errors.New("store: invalid name")

// FileName returns the persisted name of the artifact with the given ordinal.
func FileName(ordinal int, ext string) string {
	return fmt.Sprintf("i%d.%s", ordinal, ext)
}
