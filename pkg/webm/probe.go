package webm

// Info is what Probe could extract from a container.
type Info struct {
	DocType string

	// First video track.
	CodecID string
	Width   int
	Height  int

	Clusters  int
	Frames    int // SimpleBlocks on the video track.
	Keyframes int
}

// Probe walks a container and extracts stream metadata and frame counts.
// It shares the fixer's decoder, so it fails on the same malformed input
// the fixer would reject.
func Probe(buf []byte) (*Info, error) {
	p := prober{videoTrack: -1}
	if err := p.walk(buf, 0, len(buf)); err != nil {
		return nil, err
	}
	return &p.info, nil
}

type prober struct {
	info       Info
	videoTrack int64 // -1 until the video TrackEntry is seen.

	// Accumulated across the current TrackEntry's children.
	trackNum  int64
	trackType int64
	codecID   string
	width     int
	height    int
}

const trackTypeVideo = 1

func (p *prober) walk(buf []byte, start, length int) error {
	r := newElementReader(buf, start, length)
	for {
		el, err := r.next()
		if err != nil {
			return err
		}
		if el == nil {
			return nil
		}

		switch el.reg.ID {
		case idCluster:
			p.info.Clusters++

		case idTrackEntry:
			p.trackNum = 0
			p.trackType = 0
			p.codecID = ""
			p.width = 0
			p.height = 0
			if err := p.walk(buf, el.payloadPos, len(el.payload)); err != nil {
				return err
			}
			if p.trackType == trackTypeVideo && p.videoTrack == -1 {
				p.videoTrack = p.trackNum
				p.info.CodecID = p.codecID
				p.info.Width = p.width
				p.info.Height = p.height
			}
			continue

		case idDocType:
			p.info.DocType = string(el.payload)
		case idTrackNumber:
			p.trackNum = int64(decodeUint(el.payload))
		case idTrackType:
			p.trackType = int64(decodeUint(el.payload))
		case idCodecID:
			p.codecID = string(el.payload)
		case idPixelWidth:
			p.width = int(decodeUint(el.payload))
		case idPixelHeight:
			p.height = int(decodeUint(el.payload))

		case idSimpleBlock:
			if len(el.payload) < 4 {
				return ErrShortBlock
			}
			track := int64(el.payload[0] & 0x7f)
			if p.videoTrack != -1 && track != p.videoTrack {
				continue
			}
			p.info.Frames++
			if p.isKeyframe(el.payload) {
				p.info.Keyframes++
			}
			continue
		}

		if el.reg.Type == typeMaster {
			if err := p.walk(buf, el.payloadPos, len(el.payload)); err != nil {
				return err
			}
		}
	}
}

// isKeyframe checks the SimpleBlock keyframe flag, falling back to the
// codec bitstream for muxers that leave the flag unset.
func (p *prober) isKeyframe(payload []byte) bool {
	const (
		flagKeyframe = 0x80
		flagLacing   = 0x06
	)

	flags := payload[3]
	if flags&flagKeyframe != 0 {
		return true
	}
	if flags&flagLacing != 0 {
		// Laced frame data, no fixed frame offset to inspect.
		return false
	}

	frame := payload[4:]
	switch p.info.CodecID {
	case "V_VP8":
		return vp8Keyframe(frame)
	case "V_VP9":
		return vp9Keyframe(frame)
	}
	return false
}

// decodeUint accumulates an unsigned element value big-endian.
func decodeUint(buf []byte) uint64 {
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return v
}
