package compress

// Compressor compresses a byte payload.
//
// Memory management: the returned slice is owned by the caller and the input
// slice is not modified. NoOpCodec returns the input slice itself; the other
// codecs return a newly allocated slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's transformation.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}
