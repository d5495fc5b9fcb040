package format

// NodeFormat identifies one of the four packed node layouts. The value is the
// low byte stored in the container header's format field.
type NodeFormat uint8

const (
	// FormatP8L8 is the 8-bit prefix, 8-bit length layout (3-byte records).
	FormatP8L8 NodeFormat = 0x11
	// FormatP8L16 is the 8-bit prefix, 16-bit length layout (4-byte records).
	FormatP8L16 NodeFormat = 0x12
	// FormatP16L8 is the 16-bit prefix, 8-bit length layout (4-byte records).
	FormatP16L8 NodeFormat = 0x21
	// FormatP16L16 is the 16-bit prefix, 16-bit length layout (5-byte records).
	FormatP16L16 NodeFormat = 0x22

	// FormatInefficient is the sentinel returned by format selection when no
	// layout yields a positive saving. It is never stored in a header.
	FormatInefficient NodeFormat = 0x00
)

// Formats returns the four concrete node formats in canonical order: smaller
// record size first, prefix width before length width on equal size. Format
// selection iterates in this order so that ties break deterministically.
func Formats() [4]NodeFormat {
	return [4]NodeFormat{FormatP8L8, FormatP8L16, FormatP16L8, FormatP16L16}
}

// Valid reports whether f is one of the four concrete node formats.
func (f NodeFormat) Valid() bool {
	switch f {
	case FormatP8L8, FormatP8L16, FormatP16L8, FormatP16L16:
		return true
	default:
		return false
	}
}

// NodeSize returns the packed record size in bytes for the format, or 0 for
// an invalid format.
func (f NodeFormat) NodeSize() int {
	switch f {
	case FormatP8L8:
		return 3
	case FormatP8L16, FormatP16L8:
		return 4
	case FormatP16L16:
		return 5
	default:
		return 0
	}
}

func (f NodeFormat) String() string {
	switch f {
	case FormatP8L8:
		return "P8L8"
	case FormatP8L16:
		return "P8L16"
	case FormatP16L8:
		return "P16L8"
	case FormatP16L16:
		return "P16L16"
	case FormatInefficient:
		return "Inefficient"
	default:
		return "Unknown"
	}
}
