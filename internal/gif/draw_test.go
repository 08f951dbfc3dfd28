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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedPixel struct {
	p       Point
	r, g, b byte
}

type fakeTarget struct {
	pixels []recordedPixel
	fail   error
}

func (f *fakeTarget) Draw(p Point, r, g, b byte) error {
	if f.fail != nil {
		return f.fail
	}
	f.pixels = append(f.pixels, recordedPixel{p, r, g, b})
	return nil
}

func TestDrawEmitsSinglePixel(t *testing.T) {
	g, err := Parse(onePixelFrameGIF)
	require.NoError(t, err)
	frame, err := g.Frames().Next()
	require.NoError(t, err)

	target := &fakeTarget{}
	require.NoError(t, frame.Draw(target))

	require.Len(t, target.pixels, 1)
	px := target.pixels[0]
	require.Equal(t, Point{X: 0, Y: 0}, px.p)
	require.Equal(t, byte(0), px.r)
	require.Equal(t, byte(0), px.g)
	require.Equal(t, byte(0), px.b)
}

func TestDrawPropagatesTargetError(t *testing.T) {
	g, err := Parse(onePixelFrameGIF)
	require.NoError(t, err)
	frame, err := g.Frames().Next()
	require.NoError(t, err)

	boom := errors.New("draw target failure")
	target := &fakeTarget{fail: boom}
	require.ErrorIs(t, frame.Draw(target), boom)
}

func TestDrawSkipsTransparentPixel(t *testing.T) {
	g, err := Parse(onePixelFrameGIF)
	require.NoError(t, err)
	frame, err := g.Frames().Next()
	require.NoError(t, err)
	frame.IsTransparent = true
	frame.TransparentColorIndex = 0

	target := &fakeTarget{}
	require.NoError(t, frame.Draw(target))
	require.Empty(t, target.pixels)
}

func TestLookupColorFallsBackToGlobal(t *testing.T) {
	global := newColorTable([]byte{1, 2, 3})
	r, g, b, ok := lookupColor(0, ColorTable{}, false, global, true)
	require.True(t, ok)
	require.Equal(t, byte(1), r)
	require.Equal(t, byte(2), g)
	require.Equal(t, byte(3), b)

	_, _, _, ok = lookupColor(0, ColorTable{}, false, ColorTable{}, false)
	require.False(t, ok)
}
