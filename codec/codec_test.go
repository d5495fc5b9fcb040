package codec

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rlepack/encoding"
	"github.com/arloliu/rlepack/errs"
	"github.com/arloliu/rlepack/format"
	"github.com/arloliu/rlepack/node"
	"github.com/arloliu/rlepack/section"
)

func roundTrip(t *testing.T, input []byte) []byte {
	t.Helper()

	deflated, err := Deflate(input)
	require.NoError(t, err)
	require.Equal(t, []byte("RLE"), deflated[:3])

	inflated, err := Inflate(deflated)
	require.NoError(t, err)
	require.Equal(t, input, inflated)

	return deflated
}

// uniform 1000-byte input: a single standard record under the 16-bit-length
// format, which beats P8L8's signal+long pair by two bytes
func TestDeflateUniform1000(t *testing.T) {
	input := bytes.Repeat([]byte{0x41}, 1000)

	plan, err := Plan(input)
	require.NoError(t, err)
	assert.Equal(t, format.FormatP8L16, plan.Format)
	assert.Equal(t, 1, plan.NodeCount())

	deflated := roundTrip(t, input)

	h, err := section.ParseHeader(deflated)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), h.DecompressedLength)
	assert.Equal(t, uint32(1), h.TableNodeCount)

	// header + one 4-byte record, no verbatim bytes
	assert.Len(t, deflated, section.HeaderSize+4)

	l := node.MustLayoutOf(format.FormatP8L16)
	runs, err := ExtractRuns(l, deflated[section.HeaderSize:], 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, encoding.Run{Prefix: 0, Length: 1000, Value: 0x41}, runs[0])
}

// the signal+long path is still exercised whenever the run outgrows every
// 16-bit length field
func TestDeflateSignalLongSelected(t *testing.T) {
	input := bytes.Repeat([]byte{0x41}, 100_000)

	plan, err := Plan(input)
	require.NoError(t, err)
	assert.Equal(t, format.FormatP8L16, plan.Format)
	assert.Equal(t, 2, plan.NodeCount())

	roundTrip(t, input)
}

// one mid-stream run with verbatim bytes on both sides
func TestDeflateSingleRunWithVerbatim(t *testing.T) {
	input := append([]byte{0x00, 0x01, 0x02, 0x03}, bytes.Repeat([]byte{0xFF}, 50)...)
	input = append(input, 0x04)

	plan, err := Plan(input)
	require.NoError(t, err)
	assert.Equal(t, format.FormatP8L8, plan.Format)
	assert.Equal(t, 1, plan.NodeCount())

	deflated := roundTrip(t, input)

	// table is the single standard record (4, 50, 0xFF); verbatim stream is
	// the five non-run bytes in input order
	table := deflated[section.HeaderSize : section.HeaderSize+3]
	assert.Equal(t, []byte{4, 50, 0xFF}, table)
	assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x03, 0x04}, deflated[section.HeaderSize+3:])
}

// 300-byte run: length overflows P8L8's field, P8L16 wins
func TestDeflate300Run(t *testing.T) {
	input := append(bytes.Repeat([]byte{0x00}, 300), 0x61, 0x62)

	plan, err := Plan(input)
	require.NoError(t, err)
	assert.Equal(t, format.FormatP8L16, plan.Format)
	assert.Equal(t, 1, plan.NodeCount())

	roundTrip(t, input)
}

// random input with no runs above threshold is refused
func TestDeflateIncompressible(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	input := make([]byte, 1024)
	for i := range input {
		// cycle offset plus noise guarantees no 4-byte constant span
		input[i] = byte(i) + byte(rng.Intn(2))
	}
	require.Empty(t, encoding.CollectRuns(input))

	_, err := Deflate(input)
	require.ErrorIs(t, err, errs.ErrInefficient)
}

func TestDeflateEmpty(t *testing.T) {
	_, err := Deflate(nil)
	require.ErrorIs(t, err, errs.ErrInefficient)

	_, err = Deflate([]byte{})
	require.ErrorIs(t, err, errs.ErrInefficient)
}

// three runs, one longer than any 16-bit length field
func TestDeflateTwoRunsLarge(t *testing.T) {
	input := bytes.Repeat([]byte{0x00}, 10)
	input = append(input, bytes.Repeat([]byte{0xAA}, 5)...)
	input = append(input, bytes.Repeat([]byte{0x11}, 300_000)...)

	plan, err := Plan(input)
	require.NoError(t, err)
	// 300000 needs more than 8 length bits; both 16-bit-length formats hold
	// it in one signal+long pair
	assert.Contains(t, []format.NodeFormat{format.FormatP8L16, format.FormatP16L16}, plan.Format)

	roundTrip(t, input)
}

func TestInflateBadMagic(t *testing.T) {
	deflated, err := Deflate(bytes.Repeat([]byte{0x41}, 1000))
	require.NoError(t, err)

	deflated[0] = 'X'
	_, err = Inflate(deflated)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestInflateBadFormat(t *testing.T) {
	deflated, err := Deflate(bytes.Repeat([]byte{0x41}, 1000))
	require.NoError(t, err)

	deflated[section.FormatOffset] = 0x99
	_, err = Inflate(deflated)
	require.ErrorIs(t, err, errs.ErrBadFormat)
}

func TestInflateTruncatedTable(t *testing.T) {
	deflated, err := Deflate(bytes.Repeat([]byte{0x41}, 1000))
	require.NoError(t, err)

	_, err = Inflate(deflated[:section.HeaderSize+1])
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestInflateDanglingSignal(t *testing.T) {
	// table declaring a single record that turns out to be a signal
	h := section.NewHeader(format.FormatP8L8)
	h.DecompressedLength = 10
	h.TableNodeCount = 1

	input := h.Bytes()
	input = append(input, 0x00, 0x00, 0x00) // signal with no long after it
	input = append(input, bytes.Repeat([]byte{1}, 7)...)

	_, err := Inflate(input)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestInflateDeclaredLengthTooShort(t *testing.T) {
	deflated, err := Deflate(bytes.Repeat([]byte{0x41}, 1000))
	require.NoError(t, err)

	// corrupt the declared length downward; the run no longer fits
	h, err := section.ParseHeader(deflated)
	require.NoError(t, err)
	h.DecompressedLength = 10
	copy(deflated, h.Bytes())

	_, err = Inflate(deflated)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

// predicted size equals actual size across input shapes (the writer errors
// internally otherwise, but assert the allocation-level equality too)
func TestPredictedSizeExact(t *testing.T) {
	inputs := [][]byte{
		bytes.Repeat([]byte{7}, 4),
		bytes.Repeat([]byte{7}, 100_000),
		append(bytes.Repeat([]byte{1, 2}, 500), bytes.Repeat([]byte{9}, 600)...),
	}
	// wide gap then run, forcing skip records
	gapped := make([]byte, 0, 70_200)
	for i := 0; i < 70_000; i++ {
		gapped = append(gapped, byte(i), byte(i+1))
	}
	gapped = append(gapped, bytes.Repeat([]byte{0xEE}, 200)...)
	inputs = append(inputs, gapped)

	for i, input := range inputs {
		plan, err := Plan(input)
		require.NoError(t, err, "input %d", i)

		output := make([]byte, plan.CompressedLength())
		require.NoError(t, plan.Execute(input, output), "input %d", i)

		inflated, err := Inflate(output)
		require.NoError(t, err, "input %d", i)
		require.Equal(t, input, inflated, "input %d", i)
	}
}

// a run needing several signal+long pairs round-trips at the right position
func TestRoundTripMultiPairRun(t *testing.T) {
	l := node.MustLayoutOf(format.FormatP8L8)

	input := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	input = append(input, bytes.Repeat([]byte{0xCC}, int(l.MaxLong()*2+100))...)
	input = append(input, 0xDD, 0xDE, 0xDF)

	roundTrip(t, input)
}

func TestRoundTripSkipHeavy(t *testing.T) {
	// verbatim gap far beyond every prefix field, then a run
	input := make([]byte, 0, 200_000)
	for i := 0; i < 90_000; i++ {
		input = append(input, byte(i), byte(i+3))
	}
	input = append(input, bytes.Repeat([]byte{0x5A}, 5_000)...)

	roundTrip(t, input)
}

func TestRoundTripMixed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	input := make([]byte, 0, 1<<18)
	for len(input) < 1<<18 {
		if rng.Intn(3) == 0 {
			input = append(input, bytes.Repeat([]byte{byte(rng.Intn(256))}, 4+rng.Intn(5000))...)
		} else {
			chunk := make([]byte, 1+rng.Intn(64))
			rng.Read(chunk)
			input = append(input, chunk...)
		}
	}

	roundTrip(t, input)
}

func TestDeflateBuilderOptions(t *testing.T) {
	input := make([]byte, 0, 1<<17)
	for i := 0; len(input) < 1<<17; i++ {
		input = append(input, bytes.Repeat([]byte{byte(i)}, 5+i%200)...)
		input = append(input, byte(i), byte(i+1))
	}

	want, err := Deflate(input)
	require.NoError(t, err)

	got, err := Deflate(input, encoding.WithWorkers(2), encoding.WithMinRunsPerWorker(1))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecuteWrongOutputSize(t *testing.T) {
	input := bytes.Repeat([]byte{0x41}, 1000)
	plan, err := Plan(input)
	require.NoError(t, err)

	err = plan.Execute(input, make([]byte, plan.CompressedLength()+1))
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}
