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

// soloImageGIF carries a single 1x1 image block with no preceding Graphic
// Control Extension: a 2-entry global color table (black, white) and an LZW
// stream that decodes to one pixel of color index 0.
var soloImageGIF = []byte{
	'G', 'I', 'F', '8', '9', 'a',
	0x01, 0x00, 0x01, 0x00, // 1x1
	0x80, 0x00, 0x00, // global color table present, 2 entries
	0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, // black, white
	0x2C,             // image separator
	0x00, 0x00, // left
	0x00, 0x00, // top
	0x01, 0x00, // width
	0x01, 0x00, // height
	0x00,             // packed: no local table, no interlace
	0x02,             // LZW minimum code size
	0x02, 0x44, 0x01, // sub-block: clear, literal 0, end
	0x00, // terminator
	0x3B, // trailer
}

func TestParseImageBlockWithoutGCE(t *testing.T) {
	g, err := Parse(soloImageGIF)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	tail, seg, err := parseSegment(g.body)
	require.NoError(t, err)
	img, ok := seg.(ImageSegment)
	require.True(t, ok)
	require.Equal(t, uint16(1), img.Image.Width)
	require.Equal(t, uint8(2), img.Image.LZWMinCodeSize)

	_, trailer, err := parseSegment(tail)
	require.NoError(t, err)
	require.IsType(t, TrailerSegment{}, trailer)
}

func TestFramesSkipsUngatedImageBlock(t *testing.T) {
	// Decision: an Image Block with no preceding GCE is not surfaced as a
	// frame. It still parses cleanly; it simply never reaches a DrawTarget
	// through the frame iterator.
	g, err := Parse(soloImageGIF)
	require.NoError(t, err)

	frame, err := g.Frames().Next()
	require.NoError(t, err)
	require.Nil(t, frame)
}

func TestJunkAfterTrailerByte(t *testing.T) {
	data := append(append([]byte(nil), soloImageGIF...), 0xAA)
	g, err := Parse(data)
	require.NoError(t, err)

	err = g.Validate()
	require.True(t, IsKind(err, ErrJunkAfterTrailer))
}

func TestNetscapeLoopCount(t *testing.T) {
	data := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00, 0x01, 0x00,
		0x00, 0x00, 0x00,
		0x21, 0xFF, 0x0B, // application extension, 11-byte block
		'N', 'E', 'T', 'S', 'C', 'A', 'P', 'E', '2', '.', '0',
		0x03, 0x01, 0x05, 0x00, // sub-block: always-1, repetitions=5 (LE)
		0x00, // terminator
		0x3B,
	}
	g, err := Parse(data)
	require.NoError(t, err)

	count, ok := g.LoopCount()
	require.True(t, ok)
	require.Equal(t, uint16(5), count)
}

func TestUnknownApplicationExtensionIsSkipped(t *testing.T) {
	data := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00, 0x01, 0x00,
		0x00, 0x00, 0x00,
		0x21, 0xFF, 0x03, 'F', 'O', 'O', // 3-byte, non-standard app block size
		0x02, 0xAB, 0xCD, // one sub-block
		0x00,
		0x3B,
	}
	g, err := Parse(data)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	_, ok := g.LoopCount()
	require.False(t, ok)
}
