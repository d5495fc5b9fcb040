// Package compress exposes the rlepack codec behind a small Codec interface
// alongside reference codecs (S2, LZ4, and a no-op) so callers and the CLI
// can compare run-length deflation against general-purpose compressors on
// the same payload.
//
// Only the RLE codec produces rlepack containers; the reference codecs are
// for measurement and have their own framing.
package compress
