package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/rlepack/encoding"
	"github.com/arloliu/rlepack/endian"
	"github.com/arloliu/rlepack/errs"
	"github.com/arloliu/rlepack/node"
	"github.com/arloliu/rlepack/section"
)

// InflatedSize parses the container header and returns the decompressed
// length the header declares. The table is not touched.
func InflatedSize(input []byte) (uint64, error) {
	h, err := section.ParseHeader(input)
	if err != nil {
		return 0, err
	}

	return h.DecompressedLength, nil
}

// ExtractRuns rebuilds the logical run list from a packed node table.
//
// The walk accumulates a prefix across Skip and Signal records; a Standard
// record, or the Long record after a Signal, flushes the accumulated prefix
// into an emitted run and resets it.
func ExtractRuns(l node.Layout, table []byte, count int) ([]encoding.Run, error) {
	engine := endian.GetLittleEndianEngine()
	size := l.Size()
	runs := make([]encoding.Run, 0, count)

	prefix := uint64(0)
	for i := 0; i < count; i++ {
		n := l.Decode(table[i*size:], engine)

		switch n.Role() {
		case node.RoleSkip:
			prefix += l.SkipLength(n)

		case node.RoleSignal:
			prefix += n.Prefix
			i++
			if i >= count {
				return nil, fmt.Errorf("%w: signal record at end of table", errs.ErrLengthMismatch)
			}
			long := l.Decode(table[i*size:], engine)
			runs = append(runs, encoding.Run{
				Prefix: prefix,
				Length: l.LongLength(long),
				Value:  long.Value,
			})
			prefix = 0

		case node.RoleStandard:
			runs = append(runs, encoding.Run{
				Prefix: prefix + n.Prefix,
				Length: n.Length,
				Value:  n.Value,
			})
			prefix = 0
		}
	}

	return runs, nil
}

// InflateTo reconstructs the original bytes into output, which must be
// exactly the header's declared decompressed length.
//
// The reader alternates between copying verbatim bytes from the post-table
// region of input and filling run bytes, then copies the trailing verbatim
// remainder. Every copy and fill is bounds-checked against both views; the
// output cursor must land exactly at the end of the range.
func InflateTo(input, output []byte) error {
	h, err := section.ParseHeader(input)
	if err != nil {
		return err
	}
	if uint64(len(output)) != h.DecompressedLength {
		return fmt.Errorf("%w: output range is %d bytes, header declares %d",
			errs.ErrLengthMismatch, len(output), h.DecompressedLength)
	}

	layout := node.MustLayoutOf(h.Format)
	tableBytes := int(h.TableNodeCount) * layout.Size()
	if section.HeaderSize+tableBytes > len(input) {
		return fmt.Errorf("%w: table extends past end of input", errs.ErrLengthMismatch)
	}

	runs, err := ExtractRuns(layout, input[section.HeaderSize:section.HeaderSize+tableBytes], int(h.TableNodeCount))
	if err != nil {
		return err
	}

	in := section.HeaderSize + tableBytes
	out := 0
	for _, r := range runs {
		prefix := int(r.Prefix)
		length := int(r.Length)
		if prefix < 0 || length < 0 ||
			in+prefix > len(input) || out+prefix+length > len(output) {
			return fmt.Errorf("%w: run references bytes past end of view", errs.ErrLengthMismatch)
		}

		copy(output[out:], input[in:in+prefix])
		in += prefix
		out += prefix

		fill := output[out : out+length]
		for i := range fill {
			fill[i] = r.Value
		}
		out += length
	}

	if out+len(input)-in > len(output) {
		return fmt.Errorf("%w: trailing verbatim bytes exceed declared length", errs.ErrLengthMismatch)
	}
	out += copy(output[out:], input[in:])
	if out != len(output) {
		return fmt.Errorf("%w: produced %d bytes, header declares %d",
			errs.ErrLengthMismatch, out, len(output))
	}

	return nil
}

// Inflate decompresses a container into a freshly allocated buffer of the
// header's declared length.
func Inflate(input []byte) ([]byte, error) {
	size, err := InflatedSize(input)
	if err != nil {
		return nil, err
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("%w: declared length %d", errs.ErrInputTooLarge, size)
	}

	output := make([]byte, size)
	if err := InflateTo(input, output); err != nil {
		return nil, err
	}

	return output, nil
}
