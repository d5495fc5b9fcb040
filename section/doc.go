// Package section implements the fixed-size header at the start of every
// rlepack container.
//
// The header is 16 bytes, packed, with little-endian integers:
//
//	offset 0  : 3 bytes  = 'R','L','E'
//	offset 3  : 1 byte   = node format magic (0x11/0x12/0x21/0x22)
//	offset 4  : uint64   = decompressed length
//	offset 12 : uint32   = node table record count
//
// Serialization is field-by-field through an endian.EndianEngine; the struct
// is never written as a raw memory image.
package section
