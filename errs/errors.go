// Package errs defines the sentinel errors reported by the rlepack codec.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to attach context, so
// callers can classify failures with errors.Is while still getting a
// descriptive message.
package errs

import "errors"

var (
	// ErrInefficient is returned by deflation when no node format yields a
	// positive saving on the input. The caller may store the input verbatim
	// or refuse the operation.
	ErrInefficient = errors.New("input cannot be deflated efficiently")

	// ErrInputTooLarge is returned when the input cannot be described by the
	// container header, e.g. the node table would exceed the uint32 count field.
	ErrInputTooLarge = errors.New("input exceeds container format limits")

	// ErrBadMagic is returned by inflation when the leading header bytes are
	// not 'R','L','E'.
	ErrBadMagic = errors.New("not an RLE container")

	// ErrBadFormat is returned when the header's format byte is not one of
	// the four known node formats.
	ErrBadFormat = errors.New("unknown node format")

	// ErrLengthMismatch is returned when inflation would produce a different
	// number of bytes than the header declares, or when a node references
	// bytes past the end of a view.
	ErrLengthMismatch = errors.New("inflated length does not match header")

	// ErrInvalidHeaderSize is returned when a header buffer is shorter than
	// the fixed header layout.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrIO is returned when the byte-range provider fails to open or
	// allocate a file mapping.
	ErrIO = errors.New("i/o failure")
)
