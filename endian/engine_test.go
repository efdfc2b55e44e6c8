package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGetLittleEndianEngine verifies the engine every cursor in this
// module defaults to: binary.LittleEndian, putting/reading a
// multi-byte value LSB-first.
func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	buf := make([]byte, 2)
	engine.PutUint16(buf, 0x0102)
	require.Equal(t, byte(0x02), buf[0])
	require.Equal(t, byte(0x01), buf[1])
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

// TestEngineEquality verifies the little- and big-endian engines are
// comparable with ==, the property decodeN/encodeN and FixedBits rely
// on to branch on byte order without a type switch.
func TestEngineEquality(t *testing.T) {
	require.Equal(t, GetLittleEndianEngine(), GetLittleEndianEngine())
	require.True(t, GetLittleEndianEngine() == GetLittleEndianEngine())
	require.False(t, GetLittleEndianEngine() == GetBigEndianEngine())
}
