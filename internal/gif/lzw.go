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

const (
	maxCodeSize = 12
	maxEntries  = 1 << maxCodeSize // 4096

	// noneCode is the packed "no predecessor" sentinel for a dictionary
	// entry. Using the max uint16 instead of a tagged Option shaves 8KB off
	// the worst-case table size, which is the shape §9 calls out as
	// preferred for constrained targets.
	noneCode uint16 = 0xFFFF
)

// dictEntry is one row of the LZW decoding dictionary: the code it was
// extended from (or noneCode for a root literal) and the single byte
// appended at this step.
type dictEntry struct {
	prev uint16
	lit  byte
}

// decodingDict is the bounded LZW table plus its reconstruction scratch
// buffer, both preallocated to the worst case (4096 entries / bytes) so
// decoding never allocates.
type decodingDict struct {
	minSize uint8
	table   [maxEntries]dictEntry
	n       int // number of live entries

	buffer [maxEntries]byte
	bufLen int
}

func newDecodingDict(minSize uint8) decodingDict {
	d := decodingDict{minSize: minSize}
	d.reset()
	return d
}

// reset clears the table, re-seeds the 2^minSize root literals, then pushes
// the clear and end code tombstones so the next pushed entry lands at the
// correct numeric code.
func (d *decodingDict) reset() {
	d.n = 0
	for i := 0; i < 1<<d.minSize; i++ {
		d.table[d.n] = dictEntry{prev: noneCode, lit: byte(i)}
		d.n++
	}
	// clear_code and end_code: reserved placeholders, never followed.
	d.table[d.n] = dictEntry{prev: noneCode, lit: 0}
	d.n++
	d.table[d.n] = dictEntry{prev: noneCode, lit: 0}
	d.n++
}

// push appends one entry, returning an error if the table is already full.
func (d *decodingDict) push(prev uint16, lit byte) error {
	if d.n >= maxEntries {
		return errInvalidByte("dictionary table full")
	}
	d.table[d.n] = dictEntry{prev: prev, lit: lit}
	d.n++
	return nil
}

// nextCode returns the code the next push would occupy.
func (d *decodingDict) nextCode() uint16 {
	return uint16(d.n)
}

// reconstruct walks code -> prev -> prev -> ... into the scratch buffer,
// reverses it, and returns the resulting bytes. It fails with ErrInvalidByte
// if code points outside the table or the chain is long enough to indicate a
// cycle.
func (d *decodingDict) reconstruct(code uint16) ([]byte, error) {
	d.bufLen = 0
	cur := code
	for cur != noneCode {
		if int(cur) >= d.n {
			return nil, errInvalidByte("code out of range")
		}
		if d.bufLen >= maxEntries {
			return nil, errInvalidByte("cycle in decoding table")
		}
		e := d.table[cur]
		d.buffer[d.bufLen] = e.lit
		d.bufLen++
		cur = e.prev
	}
	reverseBytes(d.buffer[:d.bufLen])
	return d.buffer[:d.bufLen], nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// decoder is the LZW decompressor: it consumes variable-width codes from a
// bitStream and emits variable-length byte runs reconstructed from the
// decoding dictionary.
type decoder struct {
	bs          bitStream
	dict        decodingDict
	prev        uint16 // "previous code" latch; noneCode right after a clear
	oneByte     [1]byte
	codeSize    uint8
	minCodeSize uint8
	clearCode   uint16
	endCode     uint16
}

// newDecoder constructs a decoder reading from src, seeded with minCodeSize
// (in [2, 8] per the wire format).
func newDecoder(src *subBlockStream, minCodeSize uint8) decoder {
	clearCode := uint16(1) << minCodeSize
	return decoder{
		bs:          newBitStream(src),
		dict:        newDecodingDict(minCodeSize),
		prev:        noneCode,
		codeSize:    minCodeSize + 1,
		minCodeSize: minCodeSize,
		clearCode:   clearCode,
		endCode:     clearCode + 1,
	}
}

// decodeNext reads one code and returns the bytes it decodes to. end is true
// once the end code has been read or the bit stream is exhausted (including a
// clean mid-code truncation); this is not an error. Any padding bits after
// the end code are never decoded. out is only valid until the next call to
// decodeNext.
func (d *decoder) decodeNext() (out []byte, end bool, err error) {
	code, ok := d.bs.nextBits(d.codeSize)
	if !ok {
		return nil, true, nil
	}

	if code == d.clearCode {
		d.dict.reset()
		d.codeSize = d.minCodeSize + 1
		d.prev = noneCode
		return nil, false, nil
	}
	if code == d.endCode {
		return nil, true, nil
	}

	next := d.dict.nextCode()
	if code > next {
		return nil, false, errInvalidByte("forward code reference")
	}

	var result []byte
	if d.prev == noneCode {
		d.oneByte[0] = byte(code)
		result = d.oneByte[:]
	} else if code == next {
		// KwKwK: the code being decoded is the one about to be assigned.
		w, rerr := d.dict.reconstruct(d.prev)
		if rerr != nil {
			return nil, false, rerr
		}
		k := w[0]
		if err := d.dict.push(d.prev, k); err != nil {
			return nil, false, err
		}
		result, err = d.dict.reconstruct(code)
		if err != nil {
			return nil, false, err
		}
	} else {
		s, rerr := d.dict.reconstruct(code)
		if rerr != nil {
			return nil, false, rerr
		}
		k := s[0]
		if err := d.dict.push(d.prev, k); err != nil {
			return nil, false, err
		}
		result = s
	}

	if next == (uint16(1)<<d.codeSize)-1 && d.codeSize < maxCodeSize {
		d.codeSize++
	}
	d.prev = code
	return result, false, nil
}
