package section

// HeaderSize is the fixed byte length of the container header.
const HeaderSize = 16

// Byte offsets of the header fields.
const (
	MagicOffset              = 0
	FormatOffset             = 3
	DecompressedLengthOffset = 4
	NodeCountOffset          = 12
)
