package webm

import "encoding/binary"

// Test container builders.

func testElement(id []byte, payload []byte) []byte {
	width, err := sizeWidth(uint64(len(payload)))
	if err != nil {
		panic(err)
	}
	out := append([]byte{}, id...)
	out = append(out, encodeSize(uint64(len(payload)), width)...)
	return append(out, payload...)
}

func testMaster(id []byte, children ...[]byte) []byte {
	var payload []byte
	for _, child := range children {
		payload = append(payload, child...)
	}
	return testElement(id, payload)
}

// testSimpleBlock builds a SimpleBlock for track 1 with the given
// relative timecode, flags and frame bytes.
func testSimpleBlock(timecode int16, flags byte, frame []byte) []byte {
	payload := []byte{0x81, 0, 0, flags}
	binary.BigEndian.PutUint16(payload[1:3], uint16(timecode))
	return testElement([]byte{0xa3}, append(payload, frame...))
}

var (
	ebmlID          = []byte{0x1a, 0x45, 0xdf, 0xa3}
	segmentID       = []byte{0x18, 0x53, 0x80, 0x67}
	infoID          = []byte{0x15, 0x49, 0xa9, 0x66}
	timecodeScaleID = []byte{0x2a, 0xd7, 0xb1}
	durationID      = []byte{0x44, 0x89}
	muxingAppID     = []byte{0x4d, 0x80}
	clusterID       = []byte{0x1f, 0x43, 0xb6, 0x75}
	timecodeID      = []byte{0xe7}
	docTypeID       = []byte{0x42, 0x82}
	tracksID        = []byte{0x16, 0x54, 0xae, 0x6b}
	trackEntryID    = []byte{0xae}
	trackNumberID   = []byte{0xd7}
	trackTypeID     = []byte{0x83}
	codecIDID       = []byte{0x86}
	videoID         = []byte{0xe0}
	pixelWidthID    = []byte{0xb0}
	pixelHeightID   = []byte{0xba}
)
