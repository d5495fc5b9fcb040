package section

import (
	"github.com/arloliu/rlepack/endian"
	"github.com/arloliu/rlepack/errs"
	"github.com/arloliu/rlepack/format"
)

// magic is the leading identification bytes of every container.
var magic = [3]byte{'R', 'L', 'E'}

// Header represents the fixed-size header section at the start of a
// deflated container.
type Header struct {
	// Format is the node layout used by the table that follows the header.
	Format format.NodeFormat
	// DecompressedLength is the exact byte length of the original input.
	DecompressedLength uint64
	// TableNodeCount is the number of packed records in the node table.
	TableNodeCount uint32
}

// NewHeader creates a header for a container in the given format.
// The lengths are set by the deflate writer before serialization.
func NewHeader(f format.NodeFormat) *Header {
	return &Header{Format: f}
}

// Parse parses the header from a byte slice.
//
// Returns errs.ErrInvalidHeaderSize if data is shorter than HeaderSize,
// errs.ErrBadMagic if the identification bytes are wrong, and
// errs.ErrBadFormat if the format byte is not a known node format.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] {
		return errs.ErrBadMagic
	}

	h.Format = format.NodeFormat(data[FormatOffset])
	if !h.Format.Valid() {
		return errs.ErrBadFormat
	}

	engine := endian.GetLittleEndianEngine()
	h.DecompressedLength = engine.Uint64(data[DecompressedLengthOffset:NodeCountOffset])
	h.TableNodeCount = engine.Uint32(data[NodeCountOffset:HeaderSize])

	return nil
}

// AppendTo serializes the header into dst, which must be at least HeaderSize
// bytes. The header occupies dst[0:HeaderSize]; the rest is untouched.
func (h *Header) AppendTo(dst []byte) {
	_ = dst[HeaderSize-1]

	dst[0] = magic[0]
	dst[1] = magic[1]
	dst[2] = magic[2]
	dst[FormatOffset] = byte(h.Format)

	engine := endian.GetLittleEndianEngine()
	engine.PutUint64(dst[DecompressedLengthOffset:NodeCountOffset], h.DecompressedLength)
	engine.PutUint32(dst[NodeCountOffset:HeaderSize], h.TableNodeCount)
}

// Bytes serializes the header into a freshly allocated HeaderSize slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.AppendTo(b)

	return b
}

// ParseHeader parses a Header from a byte slice.
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
