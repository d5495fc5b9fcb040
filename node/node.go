// Package node implements the four packed record layouts of the rlepack
// container and the role semantics of individual records.
//
// A record is a packed triple prefix:P bits, length:L bits, value:8 bits,
// with P and L each 8 or 16. The same record layout plays four roles,
// distinguished by its field values:
//
//   - Standard: length != 0. Skip prefix verbatim bytes, then emit length
//     copies of value.
//   - Skip: length == 0, value != 0. Advance the verbatim cursor by
//     prefix | value<<P bytes; no run emitted.
//   - Signal: length == 0, value == 0. Its prefix contributes to the logical
//     prefix and the next record must be read as a Long record.
//   - Long: the record after a Signal. Encodes a (P+L)-bit run length as
//     length | prefix<<L with value as the run byte.
package node

import (
	"fmt"

	"github.com/arloliu/rlepack/errs"
	"github.com/arloliu/rlepack/format"
)

// Layout describes the field widths of one node format and derives all of
// the format's limits. The zero value is not a valid layout; obtain one via
// LayoutOf.
type Layout struct {
	prefixBits uint
	lengthBits uint
	fmt        format.NodeFormat
}

var layouts = map[format.NodeFormat]Layout{
	format.FormatP8L8:   {prefixBits: 8, lengthBits: 8, fmt: format.FormatP8L8},
	format.FormatP8L16:  {prefixBits: 8, lengthBits: 16, fmt: format.FormatP8L16},
	format.FormatP16L8:  {prefixBits: 16, lengthBits: 8, fmt: format.FormatP16L8},
	format.FormatP16L16: {prefixBits: 16, lengthBits: 16, fmt: format.FormatP16L16},
}

// LayoutOf returns the layout for the given node format.
// Returns errs.ErrBadFormat for anything but the four concrete formats.
func LayoutOf(f format.NodeFormat) (Layout, error) {
	l, ok := layouts[f]
	if !ok {
		return Layout{}, fmt.Errorf("%w: 0x%02x", errs.ErrBadFormat, uint8(f))
	}

	return l, nil
}

// MustLayoutOf returns the layout for a format known to be valid.
// It panics on an invalid format; use it only after header validation.
func MustLayoutOf(f format.NodeFormat) Layout {
	l, err := LayoutOf(f)
	if err != nil {
		panic(err)
	}

	return l
}

// Format returns the node format this layout describes.
func (l Layout) Format() format.NodeFormat { return l.fmt }

// Size returns the packed record size in bytes.
func (l Layout) Size() int { return int(l.prefixBits/8 + l.lengthBits/8 + 1) }

// PrefixMax returns the largest value the prefix field can hold.
func (l Layout) PrefixMax() uint64 { return 1<<l.prefixBits - 1 }

// LengthMax returns the largest value the length field can hold.
func (l Layout) LengthMax() uint64 { return 1<<l.lengthBits - 1 }

// MaxSkip returns the largest gap a single Skip record can cover:
// PrefixMax | 255<<P.
func (l Layout) MaxSkip() uint64 { return l.PrefixMax() | 0xFF<<l.prefixBits }

// MaxLong returns the largest run length a single Signal+Long pair can
// cover: LengthMax | PrefixMax<<L.
func (l Layout) MaxLong() uint64 { return l.LengthMax() | l.PrefixMax()<<l.lengthBits }

// Node is the decoded form of one packed record. Prefix and Length are held
// widened to uint64; the layout's Append/Decode narrow them to the wire
// widths. Field values never exceed the layout's maxima when produced by the
// constructors below.
type Node struct {
	Prefix uint64
	Length uint64
	Value  byte
}

// Role classifies how a record must be interpreted. Long records are not a
// Role: they are identified positionally, as the record following a Signal.
type Role uint8

const (
	RoleStandard Role = iota
	RoleSkip
	RoleSignal
)

// Role returns the role encoded by the record's field values.
func (n Node) Role() Role {
	if n.Length != 0 {
		return RoleStandard
	}
	if n.Value != 0 {
		return RoleSkip
	}

	return RoleSignal
}

// Skip builds a Skip record covering as much of totalGap as the layout
// allows and returns the record plus the number of gap bytes it consumed.
// The caller emits Skip records until the residual gap is <= PrefixMax.
//
// Precondition: totalGap > PrefixMax.
func (l Layout) Skip(totalGap uint64) (Node, uint64) {
	if maxSkip := l.MaxSkip(); totalGap > maxSkip {
		return Node{Prefix: l.PrefixMax(), Length: 0, Value: 0xFF}, maxSkip
	}

	return Node{
		Prefix: totalGap & l.PrefixMax(),
		Length: 0,
		Value:  byte(totalGap >> l.prefixBits),
	}, totalGap
}

// Signal builds a Signal record carrying the given prefix.
// Precondition: prefix <= PrefixMax.
func (l Layout) Signal(prefix uint64) Node {
	return Node{Prefix: prefix, Length: 0, Value: 0}
}

// Long builds a Long record covering as much of totalLen as the layout
// allows and returns the record plus the run length it consumed. When
// totalLen fits MaxLong the whole remainder is consumed in one record.
//
// Precondition: totalLen > LengthMax.
func (l Layout) Long(totalLen uint64, runValue byte) (Node, uint64) {
	if maxLong := l.MaxLong(); totalLen > maxLong {
		return Node{Prefix: l.PrefixMax(), Length: l.LengthMax(), Value: runValue}, maxLong
	}

	return Node{
		Prefix: totalLen >> l.lengthBits,
		Length: totalLen & l.LengthMax(),
		Value:  runValue,
	}, totalLen
}

// Standard builds a Standard record. The caller guarantees length > 0,
// otherwise the record would decode as a Skip or Signal.
func (l Layout) Standard(prefix, length uint64, value byte) Node {
	return Node{Prefix: prefix, Length: length, Value: value}
}

// LongLength returns the (P+L)-bit run length encoded by a Long record:
// length | prefix<<L.
func (l Layout) LongLength(n Node) uint64 {
	return n.Length | n.Prefix<<l.lengthBits
}

// SkipLength returns the gap covered by a Skip record: prefix | value<<P.
func (l Layout) SkipLength(n Node) uint64 {
	return n.Prefix | uint64(n.Value)<<l.prefixBits
}
