// Package rlepack implements a run-length-encoding codec for arbitrary byte
// files.
//
// Deflation locates constant-byte runs, emits a compact table of packed
// records describing them, and stores the remaining bytes verbatim between
// the run sites; inflation reverses the transformation bit-for-bit. Four
// packed record layouts (8- or 16-bit prefix and length fields) compete per
// input: an analytic estimator predicts each layout's saving without
// materializing records and the best strictly-positive layout wins, so a
// deflated container is never larger than header + input.
//
// # Basic Usage
//
// Compressing and restoring a byte slice:
//
//	deflated, err := rlepack.Deflate(data)
//	if err != nil {
//	    // errs.ErrInefficient: the input has no runs worth encoding
//	}
//	restored, _ := rlepack.Inflate(deflated)
//
// Working with files through the memory-mapped provider:
//
//	err := rlepack.DeflateFile("image.raw", "image.raw.rle")
//	err = rlepack.InflateFile("image.raw.rle", "image.raw.copy")
//
// # Container Layout
//
// A container is a 16-byte header ('R','L','E', format byte, decompressed
// length, table record count, little-endian), the packed record table, and
// the verbatim byte stream. See the section and node packages for the exact
// record semantics.
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The codec package
// holds the deflate/inflate state machines, encoding the analysis passes
// (run collection, estimation, table building), node the record layouts,
// and section the container header.
package rlepack

import (
	"github.com/arloliu/rlepack/codec"
	"github.com/arloliu/rlepack/encoding"
	"github.com/arloliu/rlepack/internal/mmap"
)

// Deflate compresses data into a freshly allocated rlepack container.
// Options tune the table builder, e.g. encoding.WithWorkers(1) for a
// deterministic single-threaded build or encoding.WithMinRunsPerWorker(n)
// to raise the parallelism threshold.
//
// Returns errs.ErrInefficient when no record layout yields a positive
// saving, and errs.ErrInputTooLarge when the table would overflow the
// header's count field.
func Deflate(data []byte, opts ...encoding.BuildOption) ([]byte, error) {
	return codec.Deflate(data, opts...)
}

// Inflate restores the original bytes from an rlepack container.
//
// Returns errs.ErrInvalidHeaderSize, errs.ErrBadMagic, errs.ErrBadFormat,
// or errs.ErrLengthMismatch when the container is not valid.
func Inflate(data []byte) ([]byte, error) {
	return codec.Inflate(data)
}

// DeflateFile compresses src into a newly created dst of exactly the
// predicted compressed length. On any failure after creation the partial
// dst is left for the caller to remove. Options are passed through to the
// table builder as in Deflate.
func DeflateFile(src, dst string, opts ...encoding.BuildOption) error {
	in, err := mmap.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	plan, err := codec.Plan(in.Bytes(), opts...)
	if err != nil {
		return err
	}

	out, err := mmap.Create(dst, plan.CompressedLength())
	if err != nil {
		return err
	}

	if err := plan.Execute(in.Bytes(), out.Bytes()); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// InflateFile restores src, a deflated container, into a newly created dst
// of exactly the header's declared decompressed length.
func InflateFile(src, dst string) error {
	in, err := mmap.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	size, err := codec.InflatedSize(in.Bytes())
	if err != nil {
		return err
	}

	out, err := mmap.Create(dst, size)
	if err != nil {
		return err
	}

	if err := codec.InflateTo(in.Bytes(), out.Bytes()); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
