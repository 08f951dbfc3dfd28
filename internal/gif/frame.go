// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package gif

// Frame bundles one Graphic Control Extension with the segments that follow
// it up to (but not including) the next GCE or the trailer. A Frame owns no
// bytes: dropping it never invalidates the input buffer it was parsed from.
type Frame struct {
	Ordinal               int
	DelayCentis           uint16
	IsTransparent         bool
	TransparentColorIndex byte

	gif  *RawGif
	data []byte // owned byte range: just past this frame's GCE to the next sentinel
}

// Header returns the parent GIF's Logical Screen Descriptor.
func (f *Frame) Header() Header {
	return f.gif.Header
}

// GlobalColorTable returns the parent GIF's global color table, if present.
func (f *Frame) GlobalColorTable() (ColorTable, bool) {
	return f.gif.GlobalCT, f.gif.HasGCT
}

// FrameIter is a pull-based iterator over a RawGif's frames. Calling Next
// invalidates any LZW decoding state tied to the previous frame, though not
// its bytes: a frame's byte range may always be safely re-walked later.
type FrameIter struct {
	remain []byte
	gif    *RawGif
	n      int
	done   bool
}

// Frames returns a fresh frame iterator over g's segment stream.
func (g *RawGif) Frames() *FrameIter {
	return &FrameIter{remain: g.body, gif: g}
}

// Next returns the next frame, or (nil, nil) once the stream is exhausted
// (either a trailer was reached, no GCE was found, or a junk-after-trailer
// lookahead truncated iteration early). A non-nil error indicates a genuine parse
// failure unrelated to locating a frame boundary.
func (it *FrameIter) Next() (*Frame, error) {
	if it.done || len(it.remain) == 0 {
		return nil, nil
	}

	gce, afterGCE, ok, err := it.findNextGCE(it.remain)
	if err != nil {
		return nil, err
	}
	if !ok {
		it.done = true
		return nil, nil
	}

	boundary, err := it.findFrameBoundary(afterGCE)
	if err != nil {
		return nil, err
	}

	frameLen := len(afterGCE) - len(boundary)
	frame := &Frame{
		Ordinal:               it.n,
		DelayCentis:           gce.DelayCentis,
		IsTransparent:         gce.IsTransparent,
		TransparentColorIndex: gce.TransparentColorIndex,
		gif:                   it.gif,
		data:                  afterGCE[:frameLen:frameLen],
	}
	it.n++
	it.remain = boundary
	if len(boundary) == 0 {
		it.done = true
	}
	return frame, nil
}

// findNextGCE walks cursor looking for a GraphicControl extension, returning
// the tail just past it. A Trailer or a junk-after-trailer lookahead ends
// the search with ok=false and no error.
func (it *FrameIter) findNextGCE(cursor []byte) (gce GraphicControl, afterGCE []byte, ok bool, err error) {
	for len(cursor) > 0 {
		tail, seg, err := parseSegment(cursor)
		if err != nil {
			if IsKind(err, ErrJunkAfterTrailer) {
				return GraphicControl{}, nil, false, nil
			}
			return GraphicControl{}, nil, false, err
		}
		if es, isExt := seg.(ExtensionSegment); isExt {
			if g, isGCE := es.Block.(GraphicControl); isGCE {
				return g, tail, true, nil
			}
		}
		if _, isTrailer := seg.(TrailerSegment); isTrailer {
			return GraphicControl{}, nil, false, nil
		}
		cursor = tail
	}
	return GraphicControl{}, nil, false, nil
}

// findFrameBoundary walks cursor without yielding, stopping at (and
// returning, unconsumed) the next GCE, the trailer marker, or the point
// where a junk-after-trailer lookahead must stop.
func (it *FrameIter) findFrameBoundary(cursor []byte) ([]byte, error) {
	for len(cursor) > 0 {
		before := cursor
		tail, seg, err := parseSegment(cursor)
		if err != nil {
			if IsKind(err, ErrJunkAfterTrailer) {
				return before, nil
			}
			return nil, err
		}
		if es, isExt := seg.(ExtensionSegment); isExt {
			if _, isGCE := es.Block.(GraphicControl); isGCE {
				return before, nil
			}
		}
		if _, isTrailer := seg.(TrailerSegment); isTrailer {
			return before, nil
		}
		cursor = tail
	}
	return cursor, nil
}
