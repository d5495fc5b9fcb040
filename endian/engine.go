// Package endian provides byte order utilities for the rlepack container.
//
// All multi-byte fields in the container (header integers and 16-bit node
// fields) are little-endian regardless of the host architecture. The codec
// threads an EndianEngine through its encode and decode paths rather than
// hard-coding binary.LittleEndian, which keeps the wire layout explicit at
// every call site and makes the byte order testable in isolation.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so any code
// written against the standard library interfaces works unchanged.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. A little-endian host stores the LSB (0x00) first,
	// a big-endian host stores the MSB (0x01) first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine. This is the byte
// order of every rlepack container.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine. It is never used for the
// container itself and exists for tests and interoperability experiments.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
