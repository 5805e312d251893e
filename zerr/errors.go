// Package zerr defines the closed set of error kinds the patch codec can
// raise, modeled on the errno-wrapping style of dargueta/disko's errors
// package.
package zerr

import "fmt"

// Kind is one of the error classes a patch encode or decode operation can
// fail with.
type Kind int

const (
	// InvalidBlockSize means B is zero, not a multiple of 8, or > 255.
	InvalidBlockSize Kind = iota
	// TruncatedPatch means the record stream ended mid-record, or the
	// patch is shorter than the 5-byte minimum (header + CRC trailer).
	TruncatedPatch
	// UnknownTag means a record tag byte isn't one of the six legal
	// values.
	UnknownTag
	// MalformedPatch means an RLE underrun/overrun, or a reference read
	// fell outside the bounds of R.
	MalformedPatch
	// TrailingData means bytes remained in the record stream after a
	// PARTIAL record.
	TrailingData
	// ChecksumMismatch means the reconstructed output's CRC-32 didn't
	// match the trailer.
	ChecksumMismatch
	// IoError is reserved for boundary failures (reading/writing blobs
	// from storage); the codec itself never raises it.
	IoError
)

func (k Kind) String() string {
	switch k {
	case InvalidBlockSize:
		return "InvalidBlockSize"
	case TruncatedPatch:
		return "TruncatedPatch"
	case UnknownTag:
		return "UnknownTag"
	case MalformedPatch:
		return "MalformedPatch"
	case TrailingData:
		return "TrailingData"
	case ChecksumMismatch:
		return "ChecksumMismatch"
	case IoError:
		return "IoError"
	default:
		return "UnknownErrorKind"
	}
}

// PatchError wraps a Kind with a human-readable message and, optionally,
// the error that caused it.
type PatchError struct {
	kind    Kind
	message string
	cause   error
}

func (e *PatchError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

func (e *PatchError) Kind() Kind { return e.kind }

func (e *PatchError) Unwrap() error { return e.cause }

// New creates a PatchError with a message and no wrapped cause.
func New(kind Kind, message string) *PatchError {
	return &PatchError{kind: kind, message: message}
}

// Newf creates a PatchError with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *PatchError {
	return &PatchError{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a Kind to an underlying error, e.g. one from the storage
// boundary.
func Wrap(kind Kind, cause error, message string) *PatchError {
	return &PatchError{kind: kind, message: message, cause: cause}
}

// Is reports whether err is a *PatchError of the given kind.
func Is(err error, kind Kind) bool {
	pe, ok := err.(*PatchError)
	return ok && pe.kind == kind
}
