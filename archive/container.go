package archive

import (
	"encoding/binary"
	"fmt"

	"github.com/colonize-reborn/sav/integrity"
)

// headerSize is the container's fixed prefix: one method byte, four
// bytes of little-endian decompressed length, eight bytes of
// little-endian xxHash64 checksum of the decompressed payload.
const headerSize = 1 + 4 + 8

// Pack compresses data with the codec for method and wraps it in a
// small container: [method byte][uint32 decompressed length][uint64
// checksum][compressed payload].
func Pack(method Method, data []byte) ([]byte, error) {
	codec, err := GetCodec(method)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("archive: compress with %s: %w", method, err)
	}

	out := make([]byte, headerSize+len(compressed))
	out[0] = byte(method)
	binary.LittleEndian.PutUint32(out[1:5], uint32(len(data)))
	binary.LittleEndian.PutUint64(out[5:13], integrity.Checksum(data))
	copy(out[headerSize:], compressed)
	return out, nil
}

// Unpack reverses Pack, verifying the decompressed payload's checksum
// before returning it.
func Unpack(blob []byte) ([]byte, error) {
	if len(blob) < headerSize {
		return nil, fmt.Errorf("archive: container too short: %d bytes", len(blob))
	}

	method := Method(blob[0])
	wantLen := binary.LittleEndian.Uint32(blob[1:5])
	wantSum := binary.LittleEndian.Uint64(blob[5:13])

	codec, err := GetCodec(method)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(blob[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("archive: decompress with %s: %w", method, err)
	}

	if uint32(len(data)) != wantLen {
		return nil, fmt.Errorf("archive: decompressed length %d does not match header length %d", len(data), wantLen)
	}
	if !integrity.Verify(data, wantSum) {
		return nil, fmt.Errorf("archive: checksum mismatch, container is corrupt")
	}

	return data, nil
}
