package archive

import "fmt"

// Method identifies a compression algorithm applied to a container
// payload. Values mirror a packed compression nibble: small, dense,
// and stable across format revisions.
type Method uint8

const (
	// MethodNone stores the payload uncompressed.
	MethodNone Method = 0x1
	// MethodZstd compresses with Zstandard, favoring ratio over speed.
	MethodZstd Method = 0x2
	// MethodS2 fills the S2 slot with gozstd's streaming writer at a
	// fast compression level, balancing speed and ratio.
	MethodS2 Method = 0x3
	// MethodLZ4 compresses with LZ4, favoring decompression speed.
	MethodLZ4 Method = 0x4
)

// String renders the method name for logging and error messages.
func (m Method) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodZstd:
		return "zstd"
	case MethodS2:
		return "s2"
	case MethodLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses a byte slice, typically an already-encoded
// save payload.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Method]Codec{
	MethodNone: NewNoOpCodec(),
	MethodZstd: NewZstdCodec(),
	MethodS2:   NewS2Codec(),
	MethodLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for method.
func GetCodec(method Method) (Codec, error) {
	if codec, ok := builtinCodecs[method]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("archive: unsupported compression method %d", method)
}
