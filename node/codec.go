package node

import "github.com/arloliu/rlepack/endian"

// Append serializes the record to dst field-by-field and returns the
// extended slice. Multi-byte fields use the engine's byte order; the packed
// record is never written as a raw memory image.
func (l Layout) Append(dst []byte, n Node, engine endian.EndianEngine) []byte {
	if l.prefixBits == 8 {
		dst = append(dst, byte(n.Prefix))
	} else {
		dst = engine.AppendUint16(dst, uint16(n.Prefix))
	}
	if l.lengthBits == 8 {
		dst = append(dst, byte(n.Length))
	} else {
		dst = engine.AppendUint16(dst, uint16(n.Length))
	}

	return append(dst, n.Value)
}

// Decode reads one packed record from the start of src, which must hold at
// least Size() bytes.
func (l Layout) Decode(src []byte, engine endian.EndianEngine) Node {
	_ = src[l.Size()-1]

	var n Node
	off := 0
	if l.prefixBits == 8 {
		n.Prefix = uint64(src[0])
		off = 1
	} else {
		n.Prefix = uint64(engine.Uint16(src[0:2]))
		off = 2
	}
	if l.lengthBits == 8 {
		n.Length = uint64(src[off])
		off++
	} else {
		n.Length = uint64(engine.Uint16(src[off : off+2]))
		off += 2
	}
	n.Value = src[off]

	return n
}

// AppendAll serializes a node sequence to dst in order.
func (l Layout) AppendAll(dst []byte, nodes []Node, engine endian.EndianEngine) []byte {
	for _, n := range nodes {
		dst = l.Append(dst, n, engine)
	}

	return dst
}
