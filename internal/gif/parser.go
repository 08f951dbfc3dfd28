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

import "encoding/binary"

// take1 reads a single byte, returning the unread tail.
func take1(buf []byte) (tail []byte, b byte, err error) {
	if len(buf) < 1 {
		return nil, 0, errEOF()
	}
	return buf[1:], buf[0], nil
}

// take3 reads a fixed 3-byte array, returning the unread tail.
func take3(buf []byte) (tail []byte, out [3]byte, err error) {
	if len(buf) < 3 {
		return nil, out, errEOF()
	}
	copy(out[:], buf[:3])
	return buf[3:], out, nil
}

// takeSlice borrows the next n bytes of buf without copying, returning the
// unread tail.
func takeSlice(buf []byte, n int) (tail []byte, slice []byte, err error) {
	if len(buf) < n {
		return nil, nil, errEOF()
	}
	return buf[n:], buf[:n:n], nil
}

// leU16 reads a little-endian uint16, returning the unread tail.
func leU16(buf []byte) (tail []byte, v uint16, err error) {
	tail, raw, err := takeSlice(buf, 2)
	if err != nil {
		return nil, 0, err
	}
	return tail, binary.LittleEndian.Uint16(raw), nil
}
