package webm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVP8Keyframe(t *testing.T) {
	// Frame type is the lowest bit of the first frame-tag byte.
	require.True(t, vp8Keyframe([]byte{0x30, 0x01, 0x00}))
	require.False(t, vp8Keyframe([]byte{0x31, 0x01, 0x00}))
	require.False(t, vp8Keyframe(nil))
}

func TestVP9Keyframe(t *testing.T) {
	cases := []struct {
		name  string
		frame []byte
		want  bool
	}{
		{"keyframe", []byte{0x80, 0x49, 0x83, 0x42}, true},
		{"inter frame", []byte{0x84, 0x49, 0x83, 0x42}, false},
		// frame_marker 01 is not a VP9 frame.
		{"bad marker", []byte{0x40, 0x49, 0x83, 0x42}, false},
		// show_existing_frame set, no header follows.
		{"show existing", []byte{0x88, 0x00}, false},
		{"empty", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, vp9Keyframe(tc.frame))
		})
	}
}
