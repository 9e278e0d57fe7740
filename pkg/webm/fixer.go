// Package webm rewrites the temporal metadata of recorded WebM containers.
//
// A MediaRecorder-style producer stamps frames with real capture times,
// which jitter with the rendering loop. FixFrameRate restructures the raw
// container so every timestamp is derived from the frame ordinal and a
// fixed target rate instead, leaving all other bytes untouched.
package webm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Number of nanoseconds per timecode unit, forced into every output.
const canonicalTimecodeScale = 1000000

// Fixer errors.
var (
	// ErrShortBlock a SimpleBlock too small to hold its timecode field.
	ErrShortBlock = errors.New("SimpleBlock payload shorter than 3 bytes")

	// ErrTimecodeOverflow a cluster Timecode past the 4-byte range.
	ErrTimecodeOverflow = errors.New("cluster Timecode exceeds 32 bits")
)

// fixContext is the mutable state threaded through one transform pass.
type fixContext struct {
	fps        float64
	frameCount int

	// Global frame ordinal, bumped once per SimpleBlock.
	frame int

	// Value of frame when the current cluster was entered. The cluster
	// Timecode is derived from it.
	clusterStart int
}

// FixFrameRate returns a copy of the container with all timestamps
// recomputed for a constant frame rate. frameCount is the number of
// frames the producer submitted and is trusted for the Duration; it is
// not checked against the blocks actually present (Probe can do that).
//
// The input buffer is never modified. On any decode or rewrite error no
// output is produced; callers that prefer a jittery recording over none
// at all should fall back to the input bytes.
func FixFrameRate(buf []byte, fps float64, frameCount int) ([]byte, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("invalid frame rate: %v", fps)
	}
	if frameCount < 0 {
		return nil, fmt.Errorf("invalid frame count: %d", frameCount)
	}

	fc := fixContext{fps: fps, frameCount: frameCount}
	chunks, err := fixRange(buf, 0, len(buf), &fc)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	out := make([]byte, 0, total)
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	return out, nil
}

// fixRange transforms one nesting level and returns the output spans in
// document order.
func fixRange(buf []byte, start, length int, fc *fixContext) ([][]byte, error) {
	r := newElementReader(buf, start, length)

	var out [][]byte
	for {
		el, err := r.next()
		if err != nil {
			return nil, err
		}
		if el == nil {
			return out, nil
		}

		chunks, err := fixElement(buf, el, fc)
		if err != nil {
			return nil, err
		}
		out = append(out, chunks...)
	}
}

func fixElement(buf []byte, el *element, fc *fixContext) ([][]byte, error) {
	switch el.reg.ID {
	case idEBML, idSegment:
		return fixMaster(buf, el, fc)

	case idCluster:
		fc.clusterStart = fc.frame
		return fixMaster(buf, el, fc)

	case idInfo:
		return fixInfo(buf, el, fc)

	case idTimecodeScale:
		return [][]byte{el.id, encodeSize(4, 1), beUint32(canonicalTimecodeScale)}, nil

	case idDuration:
		// Superseded by the Duration synthesized under Info.
		return nil, nil

	case idTimecode:
		tc := roundMillis(fc.clusterStart, fc.fps)
		if tc > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d", ErrTimecodeOverflow, tc)
		}
		return [][]byte{el.id, encodeSize(4, 1), beUint32(uint32(tc))}, nil

	case idSimpleBlock:
		if len(el.payload) < 3 {
			return nil, fmt.Errorf("%w: %d at %d", ErrShortBlock, len(el.payload), el.payloadPos)
		}
		// Track number byte, then the two relative timecode bytes.
		head := make([]byte, 3)
		head[0] = el.payload[0]
		binary.BigEndian.PutUint16(head[1:], uint16(int16(roundMillis(fc.frame, fc.fps))))
		fc.frame++
		return [][]byte{el.id, el.size, head, el.payload[3:]}, nil

	default:
		return [][]byte{el.id, el.size, el.payload}, nil
	}
}

// fixMaster re-emits a container with the unknown-size encoding and
// recurses. The content below it changes size during this same pass, so
// the size cannot be stated up front.
func fixMaster(buf []byte, el *element, fc *fixContext) ([][]byte, error) {
	children, err := fixRange(buf, el.payloadPos, len(el.payload), fc)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, len(children)+2)
	out = append(out, el.id, encodeUnknownSize(len(el.size)))
	return append(out, children...), nil
}

// fixInfo recurses first so the TimecodeScale inside is canonicalized,
// then appends the synthesized Duration and restates Info's own size
// from the actual rewritten content.
func fixInfo(buf []byte, el *element, fc *fixContext) ([][]byte, error) {
	children, err := fixRange(buf, el.payloadPos, len(el.payload), fc)
	if err != nil {
		return nil, err
	}
	children = append(children, durationElement(float64(fc.frameCount)/fc.fps*1000)...)

	total := 0
	for _, chunk := range children {
		total += len(chunk)
	}

	width := len(el.size)
	if minWidth, err := sizeWidth(uint64(total)); err != nil {
		return nil, fmt.Errorf("Info size: %w", err)
	} else if minWidth > width {
		width = minWidth
	}

	out := make([][]byte, 0, len(children)+2)
	out = append(out, el.id, encodeSize(uint64(total), width))
	return append(out, children...), nil
}

// durationElement builds a Duration element holding the stream length in
// milliseconds as an 8-byte float.
func durationElement(ms float64) [][]byte {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, math.Float64bits(ms))
	return [][]byte{{0x44, 0x89}, encodeSize(8, 1), payload}
}

// roundMillis returns frame n's timestamp in milliseconds at a fixed rate.
func roundMillis(n int, fps float64) int64 {
	return int64(math.Round(float64(n) * 1000 / fps))
}

func beUint32(v uint32) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, v)
	return out
}
