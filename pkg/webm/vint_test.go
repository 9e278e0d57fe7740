package webm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVintWidth(t *testing.T) {
	cases := []struct {
		first byte
		width int
	}{
		{0x80, 1},
		{0xff, 1},
		{0x40, 2},
		{0x7f, 2},
		{0x20, 3},
		{0x10, 4},
		{0x08, 5},
		{0x04, 6},
		{0x02, 7},
		{0x01, 8},
	}
	for _, tc := range cases {
		width, err := vintWidth(tc.first)
		require.NoError(t, err)
		require.Equal(t, tc.width, width, "first byte 0x%02x", tc.first)
	}

	_, err := vintWidth(0x00)
	require.ErrorIs(t, err, ErrMalformedVINT)
}

func TestDecodeID(t *testing.T) {
	// Marker bits are part of the canonical ID value.
	require.Equal(t, uint32(0xa3), decodeID([]byte{0xa3}))
	require.Equal(t, uint32(0x4489), decodeID([]byte{0x44, 0x89}))
	require.Equal(t, uint32(0x2ad7b1), decodeID([]byte{0x2a, 0xd7, 0xb1}))
	require.Equal(t, uint32(0x1a45dfa3), decodeID([]byte{0x1a, 0x45, 0xdf, 0xa3}))
}

func TestDecodeSize(t *testing.T) {
	cases := []struct {
		name  string
		buf   []byte
		value uint64
		known bool
	}{
		{"one byte", []byte{0x81}, 1, true},
		{"one byte max", []byte{0xfe}, 126, true},
		{"marker stripped", []byte{0x40, 0x7f}, 127, true},
		{"two bytes", []byte{0x41, 0x23}, 0x123, true},
		{"eight bytes", []byte{0x01, 0, 0, 0, 0, 0, 0x12, 0x34}, 0x1234, true},
		{"unknown one byte", []byte{0xff}, 0, false},
		{"unknown two bytes", []byte{0x7f, 0xff}, 0, false},
		{"unknown eight bytes", []byte{0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, known := decodeSize(tc.buf)
			require.Equal(t, tc.known, known)
			if known {
				require.Equal(t, tc.value, v)
			}
		})
	}
}

func TestEncodeSize(t *testing.T) {
	require.Equal(t, []byte{0x84}, encodeSize(4, 1))
	require.Equal(t, []byte{0x40, 0x04}, encodeSize(4, 2))
	require.Equal(t, []byte{0x10, 0x00, 0x12, 0x34}, encodeSize(0x1234, 4))

	// Round trip at every width.
	for width := 1; width <= 8; width++ {
		buf := encodeSize(99, width)
		require.Len(t, buf, width)

		w, err := vintWidth(buf[0])
		require.NoError(t, err)
		require.Equal(t, width, w)

		v, known := decodeSize(buf)
		require.True(t, known)
		require.Equal(t, uint64(99), v)
	}
}

func TestEncodeUnknownSize(t *testing.T) {
	for width := 1; width <= 8; width++ {
		buf := encodeUnknownSize(width)
		require.Len(t, buf, width)

		w, err := vintWidth(buf[0])
		require.NoError(t, err)
		require.Equal(t, width, w)

		_, known := decodeSize(buf)
		require.False(t, known)
	}
	require.Equal(t, []byte{0xff}, encodeUnknownSize(1))
	require.Equal(t, []byte{0x1f, 0xff, 0xff, 0xff}, encodeUnknownSize(4))
}

func TestSizeWidth(t *testing.T) {
	cases := []struct {
		value uint64
		width int
	}{
		{0, 1},
		{126, 1},
		{127, 2}, // 127 is the one-byte unknown-size pattern.
		{1<<14 - 2, 2},
		{1<<14 - 1, 3},
		{1<<49 - 2, 7},
		{1<<49 - 1, 8},
	}
	for _, tc := range cases {
		width, err := sizeWidth(tc.value)
		require.NoError(t, err)
		require.Equal(t, tc.width, width, "value %d", tc.value)
	}

	_, err := sizeWidth(1<<56 - 1)
	require.Error(t, err)
}
