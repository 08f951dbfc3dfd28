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

// Version is the GIF dialect declared by the header's 3-byte version field.
type Version int

const (
	V87a Version = iota
	V89a
)

func (v Version) String() string {
	if v == V87a {
		return "87a"
	}
	return "89a"
}

// Header is the parsed 13-byte Logical Screen Descriptor.
type Header struct {
	Version                Version
	Width, Height          uint16
	HasGlobalColorTable    bool
	ColorResolution        uint8 // 3 bits, 0..7
	GlobalColorTableSorted bool
	BackgroundColorIndex   uint8
}

// globalColorTableLen returns 2^(packed&0x07 + 1), the invariant from §3.
func globalColorTableLen(packed byte) int {
	return 1 << ((packed & 0x07) + 1)
}

// ColorTable is a borrowed view over a packed 24-bit RGB palette: a
// contiguous slice of length 3*N for N entries. Indexing never traps; an
// out-of-range index reports ok=false.
type ColorTable struct {
	data []byte
}

func newColorTable(data []byte) ColorTable {
	return ColorTable{data: data}
}

// Len returns the number of RGB entries in the table.
func (c ColorTable) Len() int {
	return len(c.data) / 3
}

// Get returns the RGB triplet at index, or ok=false if index is out of range.
func (c ColorTable) Get(index uint8) (r, g, b byte, ok bool) {
	off := int(index) * 3
	if off+3 > len(c.data) {
		return 0, 0, 0, false
	}
	return c.data[off], c.data[off+1], c.data[off+2], true
}

// parseHeader parses the 3-byte magic, 3-byte version, the 7-byte rest of
// the Logical Screen Descriptor, and the optional global color table. It
// returns the unread tail, the header, and the global color table if
// present.
func parseHeader(buf []byte) (tail []byte, hdr Header, gct ColorTable, hasGCT bool, err error) {
	buf, magic, err := take3(buf)
	if err != nil {
		return nil, Header{}, ColorTable{}, false, err
	}
	if magic != [3]byte{'G', 'I', 'F'} {
		return nil, Header{}, ColorTable{}, false, errBadSignature(magic)
	}

	buf, ver, err := take3(buf)
	if err != nil {
		return nil, Header{}, ColorTable{}, false, err
	}

	var version Version
	switch ver {
	case [3]byte{'8', '7', 'a'}:
		version = V87a
	case [3]byte{'8', '9', 'a'}:
		version = V89a
	default:
		return nil, Header{}, ColorTable{}, false, errBadSignature(ver)
	}

	buf, width, err := leU16(buf)
	if err != nil {
		return nil, Header{}, ColorTable{}, false, err
	}
	buf, height, err := leU16(buf)
	if err != nil {
		return nil, Header{}, ColorTable{}, false, err
	}

	buf, packed, err := take1(buf)
	if err != nil {
		return nil, Header{}, ColorTable{}, false, err
	}
	hasGlobal := packed&0x80 != 0
	colorRes := (packed & 0x70) >> 4
	sorted := packed&0x08 != 0

	buf, bgIndex, err := take1(buf)
	if err != nil {
		return nil, Header{}, ColorTable{}, false, err
	}

	buf, _ /* pixel aspect ratio, ignored */, err = take1(buf)
	if err != nil {
		return nil, Header{}, ColorTable{}, false, err
	}

	hdr = Header{
		Version:                version,
		Width:                  width,
		Height:                 height,
		HasGlobalColorTable:    hasGlobal,
		ColorResolution:        colorRes,
		GlobalColorTableSorted: sorted,
		BackgroundColorIndex:   bgIndex,
	}

	if !hasGlobal {
		return buf, hdr, ColorTable{}, false, nil
	}

	n := globalColorTableLen(packed)
	buf, raw, err := takeSlice(buf, n*3)
	if err != nil {
		return nil, Header{}, ColorTable{}, false, err
	}
	return buf, hdr, newColorTable(raw), true, nil
}

// RawGif is the parsed header, the optional global color table, and the
// tail slice beginning at the first segment.
type RawGif struct {
	Header     Header
	GlobalCT   ColorTable
	HasGCT     bool
	body       []byte // everything after the Logical Screen Descriptor and global color table
}

// Parse parses the Logical Screen Descriptor at the start of data. The
// returned RawGif borrows from data for as long as it is used; data must
// not be mutated or freed while the RawGif (or anything derived from it,
// such as a Frame) is still alive.
func Parse(data []byte) (*RawGif, error) {
	tail, hdr, gct, hasGCT, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	return &RawGif{
		Header:   hdr,
		GlobalCT: gct,
		HasGCT:   hasGCT,
		body:     tail,
	}, nil
}

// Validate walks every segment from the first one after the Logical Screen
// Descriptor through the trailer, surfacing any parse failure — including
// JunkAfterTrailerByte — to the caller. Unlike Frames, which recovers from a
// late trailer to preserve whatever frame it already has in hand (§7), this
// is a strict pass meant for validating a file end to end.
func (g *RawGif) Validate() error {
	remain := g.body
	for len(remain) > 0 {
		tail, seg, err := parseSegment(remain)
		if err != nil {
			return err
		}
		if _, isTrailer := seg.(TrailerSegment); isTrailer {
			return nil
		}
		remain = tail
	}
	return nil
}

// LoopCount scans the segment stream for a Netscape application extension
// and returns its repetition count. It does not change the iteration state
// of Frames(); it is a read-only lookahead, computed lazily on demand. ok is
// false if no such extension is present before the trailer.
func (g *RawGif) LoopCount() (count uint16, ok bool) {
	remain := g.body
	for len(remain) > 0 {
		tail, seg, err := parseSegment(remain)
		if err != nil {
			return 0, false
		}
		if ext, isExt := seg.(ExtensionSegment); isExt {
			if napp, isNapp := ext.Block.(NetscapeApplication); isNapp {
				return napp.Repetitions, true
			}
		}
		if _, isTrailer := seg.(TrailerSegment); isTrailer {
			return 0, false
		}
		remain = tail
	}
	return 0, false
}
