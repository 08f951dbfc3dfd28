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

// Package render is the minimal concrete collaborator that turns a decoded
// frame into pixels somewhere real. internal/gif never allocates a
// framebuffer and never knows about color.RGBA (§1 of the core design); this
// package is the caller-side seam that does, so the CLI commands have
// something to draw into.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ostafen/tinygif/internal/gif"
)

// Target is a gif.DrawTarget backed by a flat framebuffer sized to a GIF's
// logical screen. It does not clip: a Draw call outside the buffer's bounds
// is an error, since that would indicate a frame whose geometry disagrees
// with the header it was parsed from.
type Target struct {
	img *image.RGBA
}

// NewTarget allocates a framebuffer matching hdr's logical screen dimensions.
func NewTarget(hdr gif.Header) *Target {
	return &Target{
		img: image.NewRGBA(image.Rect(0, 0, int(hdr.Width), int(hdr.Height))),
	}
}

// Draw implements gif.DrawTarget.
func (t *Target) Draw(p gif.Point, r, g, b byte) error {
	bounds := t.img.Bounds()
	if p.X < bounds.Min.X || p.X >= bounds.Max.X || p.Y < bounds.Min.Y || p.Y >= bounds.Max.Y {
		return fmt.Errorf("render: pixel (%d, %d) outside %dx%d framebuffer", p.X, p.Y, bounds.Dx(), bounds.Dy())
	}
	t.img.SetRGBA(p.X, p.Y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
	return nil
}

// Image returns the framebuffer drawn into so far.
func (t *Target) Image() *image.RGBA {
	return t.img
}

// Reset clears the framebuffer to fully transparent black so the same Target
// can be reused across frames without reallocating.
func (t *Target) Reset() {
	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, color.RGBA{})
		}
	}
}
