package webm

import (
	"bytes"

	"github.com/icza/bitio"
)

// vp8Keyframe reports whether a VP8 frame is a keyframe. The frame tag
// is little-endian, the frame type is the lowest bit of the first byte.
func vp8Keyframe(frame []byte) bool {
	return len(frame) > 0 && frame[0]&0x01 == 0
}

// vp9Keyframe reads the start of the VP9 uncompressed header to check
// the frame type. The header is a plain MSB-first bit stream.
func vp9Keyframe(frame []byte) bool {
	br := bitio.NewReader(bytes.NewReader(frame))

	frameMarker, err := br.ReadBits(2)
	if err != nil || frameMarker != 0b10 {
		return false
	}

	profileLow, err := br.ReadBits(1)
	if err != nil {
		return false
	}
	profileHigh, err := br.ReadBits(1)
	if err != nil {
		return false
	}
	if profileHigh<<1|profileLow == 3 {
		// Reserved zero bit after profile 3.
		if _, err := br.ReadBits(1); err != nil {
			return false
		}
	}

	showExistingFrame, err := br.ReadBits(1)
	if err != nil || showExistingFrame == 1 {
		return false
	}

	frameType, err := br.ReadBits(1)
	return err == nil && frameType == 0
}
