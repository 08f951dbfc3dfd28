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

func TestTake1(t *testing.T) {
	tail, b, err := take1([]byte{0x42, 0x43})
	require.NoError(t, err)
	require.Equal(t, byte(0x42), b)
	require.Equal(t, []byte{0x43}, tail)

	_, _, err = take1(nil)
	require.True(t, IsKind(err, ErrUnexpectedEOF))
}

func TestTake3(t *testing.T) {
	tail, out, err := take3([]byte("GIF89a"))
	require.NoError(t, err)
	require.Equal(t, [3]byte{'G', 'I', 'F'}, out)
	require.Equal(t, []byte("89a"), tail)

	_, _, err = take3([]byte("GI"))
	require.True(t, IsKind(err, ErrUnexpectedEOF))
}

func TestTakeSliceDoesNotGrowCapacity(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	tail, slice, err := takeSlice(buf, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, slice)
	require.Equal(t, []byte{3, 4, 5}, tail)
	require.Equal(t, 2, cap(slice), "slice must be capped so append can't clobber the tail")

	_, _, err = takeSlice(buf, 99)
	require.True(t, IsKind(err, ErrUnexpectedEOF))
}

func TestLeU16(t *testing.T) {
	tail, v, err := leU16([]byte{0x01, 0x00, 0xFF})
	require.NoError(t, err)
	require.Equal(t, uint16(1), v)
	require.Equal(t, []byte{0xFF}, tail)
}
