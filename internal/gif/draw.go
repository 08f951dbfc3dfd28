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

// Point is a pixel coordinate in the logical screen's coordinate space.
type Point struct {
	X, Y int
}

// DrawTarget is the caller-supplied collaborator that pixels are pushed to.
// Color-space conversion beyond raw 24-bit RGB, and the framebuffer itself,
// are out of this package's scope (§1) — DrawTarget is the seam. An error
// returned from Draw is treated as opaque and propagated verbatim to the
// caller of Frame.Draw.
type DrawTarget interface {
	Draw(p Point, r, g, b byte) error
}

// Draw runs this frame's image data through the LZW decoder and pushes each
// resulting pixel to target, row-major, left-to-right within a row,
// top-to-bottom across rows. Interlaced images (ImageBlock.IsInterlaced) are
// not de-interlaced: rows are emitted in encoded order, which is a known
// limitation carried over unchanged from the source (§9).
func (f *Frame) Draw(target DrawTarget) error {
	cursor := f.data
	for len(cursor) > 0 {
		before := cursor
		tail, seg, err := parseSegment(cursor)
		if err != nil {
			return err
		}
		cursor = tail

		switch s := seg.(type) {
		case ImageSegment:
			if err := f.drawImage(s.Image, target); err != nil {
				return err
			}
		case ExtensionSegment:
			if _, isGCE := s.Block.(GraphicControl); isGCE {
				// Can't normally occur within a frame's owned byte range
				// (the frame iterator stops at the next GCE), but honor
				// the rule defensively: a GCE mid-frame ends this draw.
				_ = before
				return nil
			}
		case TrailerSegment:
			return nil
		}
	}
	return nil
}

func (f *Frame) drawImage(img ImageBlock, target DrawTarget) error {
	localCT, hasLocalCT := img.LocalCT, img.HasLocalCT
	globalCT, hasGlobalCT := f.GlobalColorTable()

	src := newSubBlockStream(img.subBlocks)
	dec := newDecoder(&src, img.LZWMinCodeSize)

	width := int(img.Width)
	if width == 0 {
		return nil
	}

	idx := 0
	for {
		chunk, end, err := dec.decodeNext()
		if err != nil {
			return err
		}
		if end {
			return nil
		}
		for _, p := range chunk {
			x := int(img.Left) + idx%width
			y := int(img.Top) + idx/width
			idx++

			if img.IsInterlaced {
				// Known limitation (§9): rows are not reordered out of
				// interlace pass order, so (x, y) here is the row-major
				// position within the encoded stream, not the final
				// display position.
			}

			if f.IsTransparent && p == f.TransparentColorIndex {
				continue
			}

			r, g, b, ok := lookupColor(p, localCT, hasLocalCT, globalCT, hasGlobalCT)
			if !ok {
				return errInvalidByte("no color table available for pixel")
			}

			if err := target.Draw(Point{X: x, Y: y}, r, g, b); err != nil {
				return err
			}
		}
	}
}

func lookupColor(index byte, local ColorTable, hasLocal bool, global ColorTable, hasGlobal bool) (r, g, b byte, ok bool) {
	if hasLocal {
		if r, g, b, ok := local.Get(index); ok {
			return r, g, b, true
		}
		return 0, 0, 0, false
	}
	if hasGlobal {
		return global.Get(index)
	}
	return 0, 0, 0, false
}
