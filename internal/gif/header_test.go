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

// emptyGIF is the minimal legal GIF from scenario 1: a bare Logical Screen
// Descriptor, no color table, no segments, straight to the trailer.
var emptyGIF = []byte{
	'G', 'I', 'F', '8', '9', 'a',
	0x01, 0x00, // width = 1
	0x01, 0x00, // height = 1
	0x00, // packed: no global color table
	0x00, // background color index
	0x00, // pixel aspect ratio
	0x3B, // trailer
}

func TestParseMinimalGIF(t *testing.T) {
	g, err := Parse(emptyGIF)
	require.NoError(t, err)
	require.Equal(t, V89a, g.Header.Version)
	require.Equal(t, uint16(1), g.Header.Width)
	require.Equal(t, uint16(1), g.Header.Height)
	require.False(t, g.HasGCT)
	require.NoError(t, g.Validate())

	_, ok := g.LoopCount()
	require.False(t, ok)

	it := g.Frames()
	frame, err := it.Next()
	require.NoError(t, err)
	require.Nil(t, frame)
}

func TestParseRejectsBadSignature(t *testing.T) {
	data := append([]byte(nil), emptyGIF...)
	data[0] = 'X'
	_, err := Parse(data)
	require.True(t, IsKind(err, ErrInvalidFileSignature))
}

func TestParseTruncatedHeader(t *testing.T) {
	for n := 0; n < len(emptyGIF)-1; n++ {
		_, err := Parse(emptyGIF[:n])
		require.Error(t, err, "prefix of length %d must fail", n)
	}
}

func TestColorTableOutOfRange(t *testing.T) {
	ct := newColorTable([]byte{10, 20, 30})
	r, g, b, ok := ct.Get(0)
	require.True(t, ok)
	require.Equal(t, byte(10), r)
	require.Equal(t, byte(20), g)
	require.Equal(t, byte(30), b)

	_, _, _, ok = ct.Get(1)
	require.False(t, ok)
}

func TestGlobalColorTableLen(t *testing.T) {
	require.Equal(t, 2, globalColorTableLen(0x80))  // exponent 0
	require.Equal(t, 256, globalColorTableLen(0x87)) // exponent 7
}
