package archive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	require := require.New(t)

	payload := []byte(strings.Repeat("colonize save payload ", 200))

	for _, method := range []Method{MethodNone, MethodZstd, MethodS2, MethodLZ4} {
		packed, err := Pack(method, payload)
		require.NoError(err, "method %s", method)

		unpacked, err := Unpack(packed)
		require.NoError(err, "method %s", method)
		require.Equal(payload, unpacked, "method %s", method)
	}
}

func TestPackEmptyPayload(t *testing.T) {
	require := require.New(t)

	for _, method := range []Method{MethodNone, MethodZstd, MethodS2, MethodLZ4} {
		packed, err := Pack(method, nil)
		require.NoError(err)

		unpacked, err := Unpack(packed)
		require.NoError(err)
		require.Empty(unpacked)
	}
}

func TestUnpackRejectsCorruptContainer(t *testing.T) {
	require := require.New(t)

	packed, err := Pack(MethodZstd, []byte("a save buffer"))
	require.NoError(err)

	corrupt := append([]byte(nil), packed...)
	corrupt[len(corrupt)-1] ^= 0xFF

	_, err = Unpack(corrupt)
	require.Error(err)
}

func TestUnpackRejectsShortContainer(t *testing.T) {
	require := require.New(t)

	_, err := Unpack([]byte{1, 2, 3})
	require.Error(err)
}

func TestGetCodecUnknownMethod(t *testing.T) {
	require := require.New(t)

	_, err := GetCodec(Method(0xFF))
	require.Error(err)
}
