package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/rlepack/encoding"
	"github.com/arloliu/rlepack/endian"
	"github.com/arloliu/rlepack/errs"
	"github.com/arloliu/rlepack/format"
	"github.com/arloliu/rlepack/node"
	"github.com/arloliu/rlepack/section"
)

// DeflatePlan is the result of analyzing an input for deflation: the chosen
// node format, the predicted saving, and the materialized node table. The
// plan predicts the exact compressed size before any output is allocated.
type DeflatePlan struct {
	// Format is the selected node layout.
	Format format.NodeFormat
	// Saving is the predicted number of input bytes the encoding removes.
	Saving int64

	layout   node.Layout
	nodes    []node.Node
	inputLen int
}

// Plan analyzes input and prepares a deflation plan. Options configure the
// table builder (encoding.WithWorkers, encoding.WithMinRunsPerWorker).
//
// Returns errs.ErrInefficient when no node format yields a positive saving
// (including empty and run-free inputs), and errs.ErrInputTooLarge when the
// node table would not fit the header's uint32 count field.
func Plan(input []byte, opts ...encoding.BuildOption) (*DeflatePlan, error) {
	runs := encoding.CollectRuns(input)

	f, saving := encoding.SelectFormat(runs)
	if f == format.FormatInefficient {
		return nil, errs.ErrInefficient
	}

	layout := node.MustLayoutOf(f)
	nodes := encoding.BuildTable(layout, runs, opts...)
	if uint64(len(nodes)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d table nodes", errs.ErrInputTooLarge, len(nodes))
	}

	return &DeflatePlan{
		Format:   f,
		Saving:   saving,
		layout:   layout,
		nodes:    nodes,
		inputLen: len(input),
	}, nil
}

// NodeCount returns the number of records in the planned table.
func (p *DeflatePlan) NodeCount() int { return len(p.nodes) }

// CompressedLength returns the exact byte length of the container this plan
// produces: header + table + verbatim stream. The saving is computed over
// run bytes only, so inputLen-saving already covers table plus verbatim.
func (p *DeflatePlan) CompressedLength() uint64 {
	return uint64(int64(p.inputLen)-p.Saving) + section.HeaderSize
}

// Execute writes the container into output, which must be exactly
// CompressedLength() bytes of the same input the plan was built from.
//
// The writer emplaces the header, copies the table records, then walks the
// table interleaving the verbatim input bytes between the gaps the records
// dictate. The output cursor must land exactly at the end of the range;
// anything else indicates a predictor/builder disagreement and is returned
// as an error wrapping errs.ErrLengthMismatch.
func (p *DeflatePlan) Execute(input, output []byte) error {
	if len(input) != p.inputLen {
		return fmt.Errorf("%w: plan built for %d input bytes, got %d",
			errs.ErrLengthMismatch, p.inputLen, len(input))
	}
	if uint64(len(output)) != p.CompressedLength() {
		return fmt.Errorf("%w: output range is %d bytes, plan needs %d",
			errs.ErrLengthMismatch, len(output), p.CompressedLength())
	}

	header := section.NewHeader(p.Format)
	header.DecompressedLength = uint64(p.inputLen)
	header.TableNodeCount = uint32(len(p.nodes))
	header.AppendTo(output)

	tableBytes := len(p.nodes) * p.layout.Size()
	if section.HeaderSize+tableBytes > len(output) {
		return fmt.Errorf("%w: table needs %d bytes, output holds %d",
			errs.ErrLengthMismatch, tableBytes, len(output)-section.HeaderSize)
	}

	engine := endian.GetLittleEndianEngine()
	table := p.layout.AppendAll(output[section.HeaderSize:section.HeaderSize], p.nodes, engine)

	in := 0
	out := section.HeaderSize + len(table)

	expectLong := false
	for _, n := range p.nodes {
		if expectLong {
			in += int(p.layout.LongLength(n))
			expectLong = false
			continue
		}

		gap := int(n.Prefix)
		switch n.Role() {
		case node.RoleSkip:
			gap = int(p.layout.SkipLength(n))
		case node.RoleSignal:
			expectLong = true
		case node.RoleStandard:
		}

		copy(output[out:], input[in:in+gap])
		out += gap
		in += gap + int(n.Length)
	}

	out += copy(output[out:], input[in:])
	if out != len(output) {
		return fmt.Errorf("%w: writer cursor %d, output length %d",
			errs.ErrLengthMismatch, out, len(output))
	}

	return nil
}

// Deflate compresses input into a freshly allocated buffer of exactly the
// predicted compressed length.
func Deflate(input []byte, opts ...encoding.BuildOption) ([]byte, error) {
	plan, err := Plan(input, opts...)
	if err != nil {
		return nil, err
	}

	output := make([]byte, plan.CompressedLength())
	if err := plan.Execute(input, output); err != nil {
		return nil, err
	}

	return output, nil
}
