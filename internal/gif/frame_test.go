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
	"testing"

	"github.com/stretchr/testify/require"
)

// onePixelFrameGIF is scenario 3: a Graphic Control Extension (delay 10cs, no
// transparency) immediately followed by the 1x1 image block from
// soloImageGIF, sharing a global color table of two black entries.
var onePixelFrameGIF = []byte{
	'G', 'I', 'F', '8', '9', 'a',
	0x01, 0x00, 0x01, 0x00,
	0x80, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 2-entry global table, both black

	0x21, 0xF9, 0x04, 0x00, 0x0A, 0x00, 0x00, 0x00, // GCE: delay=10, opaque

	0x2C,
	0x00, 0x00,
	0x00, 0x00,
	0x01, 0x00,
	0x01, 0x00,
	0x00,
	0x02,
	0x02, 0x44, 0x01,
	0x00,

	0x3B,
}

func TestFrameIteratorYieldsOneFrame(t *testing.T) {
	g, err := Parse(onePixelFrameGIF)
	require.NoError(t, err)

	it := g.Frames()
	frame, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, frame)
	require.Equal(t, 0, frame.Ordinal)
	require.Equal(t, uint16(10), frame.DelayCentis)
	require.False(t, frame.IsTransparent)

	next, err := it.Next()
	require.NoError(t, err)
	require.Nil(t, next)
}

// TestFrameIteratorRecoversFromJunkAfterTrailer mirrors scenario 6: a byte
// appended after the trailer must not prevent the frame already fully parsed
// from being handed to the caller.
func TestFrameIteratorRecoversFromJunkAfterTrailer(t *testing.T) {
	data := append(append([]byte(nil), onePixelFrameGIF...), 0x99)
	g, err := Parse(data)
	require.NoError(t, err)

	frame, err := g.Frames().Next()
	require.NoError(t, err)
	require.NotNil(t, frame)
	require.Equal(t, uint16(10), frame.DelayCentis)

	require.True(t, IsKind(g.Validate(), ErrJunkAfterTrailer))
}

func TestFrameHeaderAndGlobalColorTable(t *testing.T) {
	g, err := Parse(onePixelFrameGIF)
	require.NoError(t, err)
	frame, err := g.Frames().Next()
	require.NoError(t, err)

	require.Equal(t, g.Header, frame.Header())
	ct, ok := frame.GlobalColorTable()
	require.True(t, ok)
	require.Equal(t, 2, ct.Len())
}
