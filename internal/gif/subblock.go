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

// subBlockStream flattens a GIF sub-block chain (len|data, len|data, ..., 0x00)
// into a plain byte iterator, borrowing from the underlying buffer the whole
// way through: no sub-block is ever copied.
type subBlockStream struct {
	remains      []byte // unread chain tail, starting at a length byte
	currentBlock []byte // bytes of the block currently being emitted
	cursor       int    // next unread index within currentBlock
	done         bool
}

// newSubBlockStream constructs a stream over data, which must start at the
// first length byte of the chain.
func newSubBlockStream(data []byte) subBlockStream {
	s := subBlockStream{remains: data}
	s.loadBlock()
	return s
}

// loadBlock reads one length-prefixed block header from s.remains into
// s.currentBlock. A zero length terminates the stream.
func (s *subBlockStream) loadBlock() {
	if len(s.remains) == 0 {
		s.done = true
		s.currentBlock = nil
		return
	}
	n := int(s.remains[0])
	if n == 0 {
		s.done = true
		s.currentBlock = nil
		s.remains = s.remains[1:]
		return
	}
	// A truncated chain is treated the same as a clean end: the LZW layer
	// tolerates mid-stream exhaustion (§4.4's permissive end-of-stream rule).
	if len(s.remains) < 1+n {
		s.done = true
		s.currentBlock = nil
		s.remains = nil
		return
	}
	s.currentBlock = s.remains[1 : 1+n]
	s.remains = s.remains[1+n:]
	s.cursor = 0
}

// next returns the next byte in the chain, or ok=false once the terminating
// zero-length block (or a truncated chain) has been reached. Once reached,
// it stays reached.
func (s *subBlockStream) next() (b byte, ok bool) {
	if s.done {
		return 0, false
	}
	b = s.currentBlock[s.cursor]
	s.cursor++
	if s.cursor == len(s.currentBlock) {
		s.loadBlock()
	}
	return b, true
}

// skipSubBlocks advances buf past an entire sub-block chain (including the
// terminating zero byte) without retaining any of its bytes, returning the
// unread tail. Used by extension parsing, which only needs to skip payloads
// it does not interpret.
func skipSubBlocks(buf []byte) (tail []byte, err error) {
	for {
		var size byte
		buf, size, err = take1(buf)
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return buf, nil
		}
		buf, _, err = takeSlice(buf, int(size))
		if err != nil {
			return nil, err
		}
	}
}

// spanSubBlocks returns the full byte range of a sub-block chain starting at
// buf (including every length prefix and the terminating zero byte) and the
// tail following it, without copying.
func spanSubBlocks(buf []byte) (span, tail []byte, err error) {
	cursor := buf
	for {
		var size byte
		cursor, size, err = take1(cursor)
		if err != nil {
			return nil, nil, err
		}
		if size == 0 {
			consumed := len(buf) - len(cursor)
			return buf[:consumed:consumed], cursor, nil
		}
		cursor, _, err = takeSlice(cursor, int(size))
		if err != nil {
			return nil, nil, err
		}
	}
}
