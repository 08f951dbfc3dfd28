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

// bitStream pulls variable-width, little-endian-packed codes out of a
// subBlockStream. GIF-LZW convention: within a byte, bits are consumed LSB
// first; once 8 bits are drained, the next byte's LSB concatenates on the
// high side of the result.
type bitStream struct {
	src       *subBlockStream
	byte      byte
	bitCursor uint8 // next unread bit within byte, in [0, 8]
}

func newBitStream(src *subBlockStream) bitStream {
	return bitStream{src: src, bitCursor: 8} // 8 forces a read on first use
}

// nextBits returns the next n bits (n in [1, 15]) as a uint16, or ok=false
// as soon as the underlying byte stream is exhausted — even mid-code. A
// partial code at end of stream is silently dropped; the LZW decoder treats
// this as clean end-of-stream.
func (b *bitStream) nextBits(n uint8) (v uint16, ok bool) {
	if b.bitCursor == 8 {
		byt, hasByte := b.src.next()
		if !hasByte {
			return 0, false
		}
		b.byte = byt
		b.bitCursor = 0
	}

	res := uint16(b.byte >> b.bitCursor)
	filled := 8 - b.bitCursor

	if filled >= n {
		b.bitCursor += n
		return res & ((1 << n) - 1), true
	}

	for filled < n {
		byt, hasByte := b.src.next()
		if !hasByte {
			return 0, false
		}
		b.byte = byt
		res |= uint16(b.byte) << filled
		filled += 8
	}

	b.bitCursor = n - (filled - 8)
	return res & ((1 << n) - 1), true
}
