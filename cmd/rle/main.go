// Command rle is the command-line front end of the rlepack codec.
//
//	rle deflate file [file ...]   write file.rle next to each input
//	rle inflate file.rle [...]    strip the .rle suffix and restore
//	rle roundtrip file            deflate, re-inflate, compare digests
//	rle compare file              RLE vs reference codecs on one payload
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/rlepack"
	"github.com/arloliu/rlepack/compress"
	"github.com/arloliu/rlepack/internal/hash"
	"github.com/arloliu/rlepack/internal/mmap"
)

// rleSuffix is appended to deflated files and required by inflate.
const rleSuffix = ".rle"

func main() {
	app := cli.App{
		Name:  "rle",
		Usage: "Deflate and inflate files with the rlepack run-length codec",
		Commands: []*cli.Command{
			{
				Name:      "deflate",
				Usage:     "Compress files; each input gains a .rle sibling",
				Action:    deflateFiles,
				ArgsUsage: "FILE [FILE ...]",
			},
			{
				Name:      "inflate",
				Usage:     "Restore .rle files; the suffix is stripped",
				Action:    inflateFiles,
				ArgsUsage: "FILE.rle [FILE.rle ...]",
			},
			{
				Name:      "roundtrip",
				Usage:     "Deflate and re-inflate a file, then verify digests",
				Action:    roundtripFile,
				ArgsUsage: "FILE",
			},
			{
				Name:      "compare",
				Usage:     "Report compressed sizes under RLE and reference codecs",
				Action:    compareFile,
				ArgsUsage: "FILE",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func deflateFiles(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.Exit("deflate needs at least one file", 1)
	}

	var merr *multierror.Error
	for _, src := range ctx.Args().Slice() {
		dst := src + rleSuffix
		_, statErr := os.Stat(dst)
		existed := statErr == nil
		if err := rlepack.DeflateFile(src, dst); err != nil {
			if !existed {
				os.Remove(dst)
			}
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", src, err))
			continue
		}
		fmt.Printf("%s: %.2f%% of original\n", dst, ratio(dst, src))
	}

	return merr.ErrorOrNil()
}

func inflateFiles(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.Exit("inflate needs at least one file", 1)
	}

	var merr *multierror.Error
	for _, src := range ctx.Args().Slice() {
		if !strings.HasSuffix(src, rleSuffix) {
			merr = multierror.Append(merr, fmt.Errorf("%s: missing %s suffix", src, rleSuffix))
			continue
		}
		dst := strings.TrimSuffix(src, rleSuffix)
		_, statErr := os.Stat(dst)
		existed := statErr == nil
		if err := rlepack.InflateFile(src, dst); err != nil {
			if !existed {
				os.Remove(dst)
			}
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", src, err))
			continue
		}
		fmt.Printf("%s restored\n", dst)
	}

	return merr.ErrorOrNil()
}

func roundtripFile(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("roundtrip needs exactly one file", 1)
	}
	src := ctx.Args().First()

	in, err := mmap.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	deflated, err := rlepack.Deflate(in.Bytes())
	if err != nil {
		return err
	}

	restored, err := rlepack.Inflate(deflated)
	if err != nil {
		return err
	}

	original := hash.Checksum(in.Bytes())
	copied := hash.Checksum(restored)
	fmt.Printf("deflated %d -> %d bytes (%.2f%%)\n",
		in.Size(), len(deflated), percent(len(deflated), int(in.Size())))
	if original != copied {
		return fmt.Errorf("digest mismatch: %016x != %016x", original, copied)
	}
	fmt.Printf("digests match: %016x\n", original)

	return nil
}

func compareFile(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("compare needs exactly one file", 1)
	}

	in, err := mmap.Open(ctx.Args().First())
	if err != nil {
		return err
	}
	defer in.Close()

	codecs := []struct {
		name  string
		codec compress.Compressor
	}{
		{"rle", compress.NewRLECodec()},
		{"s2", compress.NewS2Codec()},
		{"lz4", compress.NewLZ4Codec()},
	}
	for _, c := range codecs {
		compressed, err := c.codec.Compress(in.Bytes())
		if err != nil {
			fmt.Printf("%-4s %s\n", c.name, err)
			continue
		}
		fmt.Printf("%-4s %d -> %d bytes (%.2f%%)\n",
			c.name, in.Size(), len(compressed), percent(len(compressed), int(in.Size())))
	}

	return nil
}

func percent(compressed, original int) float64 {
	if original == 0 {
		return 0
	}

	return float64(compressed) / float64(original) * 100
}

func ratio(dstPath, srcPath string) float64 {
	dst, err1 := os.Stat(dstPath)
	src, err2 := os.Stat(srcPath)
	if err1 != nil || err2 != nil || src.Size() == 0 {
		return 0
	}

	return float64(dst.Size()) / float64(src.Size()) * 100
}
