package webm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderSequence(t *testing.T) {
	buf := append(
		testElement(timecodeID, []byte{0x05}),
		testElement(muxingAppID, []byte("rec"))...)

	r := newElementReader(buf, 0, len(buf))

	el, err := r.next()
	require.NoError(t, err)
	require.Equal(t, "Timecode", el.reg.Name)
	require.Equal(t, []byte{0xe7}, el.id)
	require.Equal(t, []byte{0x81}, el.size)
	require.Equal(t, []byte{0x05}, el.payload)
	require.Equal(t, 2, el.payloadPos)
	require.False(t, el.unknownSize)

	el, err = r.next()
	require.NoError(t, err)
	require.Equal(t, "MuxingApp", el.reg.Name)
	require.Equal(t, []byte("rec"), el.payload)

	el, err = r.next()
	require.NoError(t, err)
	require.Nil(t, el)
}

func TestReaderSubRange(t *testing.T) {
	inner := testElement(timecodeID, []byte{0x07})
	buf := testMaster(clusterID, inner)

	r := newElementReader(buf, 0, len(buf))
	cluster, err := r.next()
	require.NoError(t, err)
	require.Equal(t, "Cluster", cluster.reg.Name)

	// Recurse one level the way the fixer does.
	cr := newElementReader(buf, cluster.payloadPos, len(cluster.payload))
	el, err := cr.next()
	require.NoError(t, err)
	require.Equal(t, "Timecode", el.reg.Name)
	require.Equal(t, []byte{0x07}, el.payload)
}

func TestReaderUnknownSizeStops(t *testing.T) {
	// A segment with the unknown-size sentinel runs to the end of the
	// range, so nothing can follow it at this level.
	buf := append([]byte{}, segmentID...)
	buf = append(buf, 0xff) // Unknown size.
	tail := testElement(timecodeID, []byte{0x01})
	buf = append(buf, tail...)

	r := newElementReader(buf, 0, len(buf))

	el, err := r.next()
	require.NoError(t, err)
	require.Equal(t, "Segment", el.reg.Name)
	require.True(t, el.unknownSize)
	require.Equal(t, tail, el.payload)

	el, err = r.next()
	require.NoError(t, err)
	require.Nil(t, el)
}

func TestReaderErrors(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		err  error
	}{
		{"unknown id", []byte{0x42, 0x42, 0x81, 0x00}, ErrUnknownElement},
		{"id wider than schema", []byte{0x08, 0x01, 0x02, 0x03, 0x04, 0x81}, ErrUnknownElement},
		{"malformed id vint", []byte{0x00, 0x81}, ErrMalformedVINT},
		{"malformed size vint", []byte{0xe7, 0x00}, ErrMalformedVINT},
		{"missing size", []byte{0xe7}, ErrTruncated},
		{"payload overrun", []byte{0xe7, 0x85, 0x01}, ErrTruncated},
		{"id overruns buffer", []byte{0x1a, 0x45}, ErrTruncated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newElementReader(tc.buf, 0, len(tc.buf))
			_, err := r.next()
			require.ErrorIs(t, err, tc.err)
		})
	}
}
