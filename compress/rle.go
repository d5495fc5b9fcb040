package compress

import "github.com/arloliu/rlepack/codec"

// RLECodec adapts the rlepack container codec to the Codec interface.
//
// Compress returns errs.ErrInefficient when no node format saves bytes on
// a non-empty input; callers that need a total function should fall back to
// storing the payload verbatim. Empty input compresses to nil without error.
type RLECodec struct{}

var _ Codec = (*RLECodec)(nil)

// NewRLECodec creates an RLE codec instance.
func NewRLECodec() RLECodec {
	return RLECodec{}
}

// Compress deflates data into an rlepack container.
func (RLECodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return codec.Deflate(data)
}

// Decompress inflates an rlepack container back to the original bytes.
func (RLECodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return codec.Inflate(data)
}
