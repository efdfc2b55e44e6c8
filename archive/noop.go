package archive

// NoOpCodec passes data through unchanged. Useful when the payload is
// already small or has been found incompressible (e.g. it is itself a
// compressed archive container).
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec returns a NoOpCodec.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
