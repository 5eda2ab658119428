// Package errors provides structured error handling for the mesh library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or inconsistent configuration value.
	KindConfig
	// KindFormat indicates a malformed or unsupported level file.
	KindFormat
	// KindGeometry indicates an index-space consistency failure.
	KindGeometry
	// KindIO indicates a file read or write failure.
	KindIO
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindFormat:
		return "format"
	case KindGeometry:
		return "geometry"
	case KindIO:
		return "io"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MeshError represents a structured error in the mesh library.
type MeshError struct {
	// Op is the operation that failed (e.g., "levelfile.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file being processed, if applicable.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MeshError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MeshError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "render.Level").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the mesh library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MeshError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
