package webm

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrMalformedVINT no length marker bit in the first byte.
var ErrMalformedVINT = errors.New("malformed variable-length integer")

// vintWidth returns the total encoded width in bytes, derived from the
// position of the first set bit in the first byte.
func vintWidth(first byte) (int, error) {
	if first == 0 {
		return 0, ErrMalformedVINT
	}
	return 9 - bits.Len8(first), nil
}

// decodeID accumulates an element ID big-endian. Unlike sizes, IDs keep
// their marker bits as part of the canonical value.
func decodeID(buf []byte) uint32 {
	var v uint32
	for _, b := range buf {
		v = v<<8 | uint32(b)
	}
	return v
}

// decodeSize accumulates a size value big-endian with the marker bits of
// the first byte stripped. The second return is false for the reserved
// all-ones "unknown size" encoding, which means the element runs to the
// end of its enclosing scope.
func decodeSize(buf []byte) (uint64, bool) {
	width := len(buf)
	v := uint64(buf[0] & (0xff >> width))
	for _, b := range buf[1:] {
		v = v<<8 | uint64(b)
	}
	if v == 1<<(7*width)-1 {
		return 0, false
	}
	return v, true
}

// encodeSize encodes a size value at a fixed width, marker bit included.
func encodeSize(v uint64, width int) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	out[0] |= 0x80 >> (width - 1)
	return out
}

// encodeUnknownSize returns the all-ones size encoding at a fixed width.
func encodeUnknownSize(width int) []byte {
	out := make([]byte, width)
	out[0] = 0xff >> (width - 1)
	for i := 1; i < width; i++ {
		out[i] = 0xff
	}
	return out
}

// sizeWidth returns the narrowest width that can hold v as a known size.
// The all-ones pattern of each width is reserved, hence the -1.
func sizeWidth(v uint64) (int, error) {
	for width := 1; width <= 8; width++ {
		if v < 1<<(7*width)-1 {
			return width, nil
		}
	}
	return 0, fmt.Errorf("size %d does not fit in a VINT", v)
}
