package webm

import (
	"errors"
	"fmt"
)

// Decode errors.
var (
	ErrUnknownElement = errors.New("unknown element id")
	ErrTruncated      = errors.New("element overruns buffer")
)

// element is one decoded element header. All slices alias the buffer the
// reader was created over; the payload of an unknown-size element spans
// the rest of the enclosing scope.
type element struct {
	reg     register
	id      []byte // Raw ID bytes, marker included.
	size    []byte // Raw size bytes.
	payload []byte

	// Absolute offset of the payload, for in-place diagnostics.
	payloadPos int

	// The size field held the reserved all-ones pattern. Nothing can
	// follow such an element at the same nesting level.
	unknownSize bool
}

// elementReader produces the elements of one nesting level lazily.
// It never recurses into master elements, callers do that by creating
// a new reader over a child's payload span.
type elementReader struct {
	buf  []byte
	pos  int
	end  int
	done bool
}

func newElementReader(buf []byte, start, length int) *elementReader {
	return &elementReader{buf: buf, pos: start, end: start + length}
}

// next decodes the element at the cursor and advances past it.
// It returns nil when the range is exhausted.
func (r *elementReader) next() (*element, error) {
	if r.done || r.pos >= r.end {
		return nil, nil
	}

	var el element

	idStart := r.pos
	idWidth, err := vintWidth(r.buf[r.pos])
	if err != nil {
		return nil, fmt.Errorf("element id at %d: %w", idStart, err)
	}
	if idWidth > 4 {
		// Legal EBML ids reach 8 bytes but the WebM schema stops at 4,
		// so a wider id cannot be a known element.
		return nil, fmt.Errorf("element id at %d: %d bytes wide: %w",
			idStart, idWidth, ErrUnknownElement)
	}
	if r.pos+idWidth > r.end {
		return nil, fmt.Errorf("element id at %d: %w", idStart, ErrTruncated)
	}
	el.id = r.buf[r.pos : r.pos+idWidth]
	r.pos += idWidth

	id := decodeID(el.id)
	reg, known := lookupRegister(id)
	if !known {
		return nil, fmt.Errorf("%w: 0x%x at %d", ErrUnknownElement, id, idStart)
	}
	el.reg = reg

	if r.pos >= r.end {
		return nil, fmt.Errorf("%q at %d: missing size: %w", reg.Name, idStart, ErrTruncated)
	}
	sw, err := vintWidth(r.buf[r.pos])
	if err != nil {
		return nil, fmt.Errorf("%q size at %d: %w", reg.Name, r.pos, err)
	}
	if r.pos+sw > r.end {
		return nil, fmt.Errorf("%q size at %d: %w", reg.Name, r.pos, ErrTruncated)
	}
	el.size = r.buf[r.pos : r.pos+sw]
	r.pos += sw

	el.payloadPos = r.pos
	size, known := decodeSize(el.size)
	if !known {
		// Unknown size, the payload runs to the end of the scope and
		// nothing can follow it at this level.
		el.unknownSize = true
		el.payload = r.buf[r.pos:r.end]
		r.done = true
		return &el, nil
	}

	if uint64(r.end-r.pos) < size {
		return nil, fmt.Errorf("%q at %d: payload of %d bytes: %w",
			reg.Name, idStart, size, ErrTruncated)
	}
	el.payload = r.buf[r.pos : r.pos+int(size)]
	r.pos += int(size)

	return &el, nil
}
