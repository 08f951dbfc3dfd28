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

// Segment markers.
const (
	sExtension       = 0x21
	sImageDescriptor = 0x2C
	sTrailer         = 0x3B
)

// Extension labels.
const (
	eText           = 0x01 // Plain Text
	eGraphicControl = 0xF9
	eComment        = 0xFE
	eApplication    = 0xFF
)

// Packed-field masks, shared by the Logical Screen Descriptor and the Image
// Descriptor.
const (
	fColorTable         = 1 << 7
	fInterlace          = 1 << 6
	fColorTableBitsMask = 0x07
)

// Segment is the sum type Image | Extension | Trailer that a GIF's data
// stream is made of after the Logical Screen Descriptor.
type Segment interface {
	isSegment()
}

// ImageSegment wraps an Image Block.
type ImageSegment struct {
	Image ImageBlock
}

func (ImageSegment) isSegment() {}

// ExtensionSegment wraps a parsed extension block.
type ExtensionSegment struct {
	Block ExtensionBlock
}

func (ExtensionSegment) isSegment() {}

// TrailerSegment marks the 0x3B end of the data stream.
type TrailerSegment struct{}

func (TrailerSegment) isSegment() {}

// ExtensionBlock is the sum type of every recognized (and unrecognized)
// extension payload.
type ExtensionBlock interface {
	isExtensionBlock()
}

// GraphicControl carries a frame's delay and transparency.
type GraphicControl struct {
	IsTransparent         bool
	TransparentColorIndex byte
	DelayCentis           uint16
}

func (GraphicControl) isExtensionBlock() {}

// NetscapeApplication is the `NETSCAPE2.0` application extension's loop
// count.
type NetscapeApplication struct {
	Repetitions uint16
}

func (NetscapeApplication) isExtensionBlock() {}

// Application is any application extension other than NETSCAPE2.0; its
// content is skipped and not retained.
type Application struct{}

func (Application) isExtensionBlock() {}

// Comment carries a Comment Extension's borrowed sub-block bytes, which the
// core never interprets.
type Comment struct{ Data []byte }

func (Comment) isExtensionBlock() {}

// PlainText carries a Plain Text Extension's borrowed sub-block bytes.
type PlainText struct{ Data []byte }

func (PlainText) isExtensionBlock() {}

// Unknown carries any extension label this package does not recognize.
type Unknown struct {
	Label byte
	Data  []byte
}

func (Unknown) isExtensionBlock() {}

// ImageBlock is one Image Descriptor plus its geometry, optional local color
// table, LZW minimum code size, and the borrowed byte range of its
// length-prefixed sub-block chain (length bytes and terminator included).
type ImageBlock struct {
	Left, Top, Width, Height uint16
	IsInterlaced             bool
	LZWMinCodeSize           uint8
	LocalCT                  ColorTable
	HasLocalCT               bool
	subBlocks                []byte
}

// parseSegment dispatches on the marker byte and returns the parsed
// Segment plus the unread tail.
func parseSegment(buf []byte) (tail []byte, seg Segment, err error) {
	buf, marker, err := take1(buf)
	if err != nil {
		return nil, nil, err
	}

	switch marker {
	case sExtension:
		tail, ext, err := parseExtensionBlock(buf)
		if err != nil {
			return nil, nil, err
		}
		return tail, ExtensionSegment{Block: ext}, nil

	case sImageDescriptor:
		tail, img, err := parseImageBlock(buf)
		if err != nil {
			return nil, nil, err
		}
		return tail, ImageSegment{Image: img}, nil

	case sTrailer:
		if len(buf) != 0 {
			return nil, nil, errJunkAfterTrailer()
		}
		return buf, TrailerSegment{}, nil

	default:
		return nil, nil, errInvalidByte("unexpected segment marker")
	}
}

func parseImageBlock(buf []byte) (tail []byte, img ImageBlock, err error) {
	buf, left, err := leU16(buf)
	if err != nil {
		return nil, ImageBlock{}, err
	}
	buf, top, err := leU16(buf)
	if err != nil {
		return nil, ImageBlock{}, err
	}
	buf, width, err := leU16(buf)
	if err != nil {
		return nil, ImageBlock{}, err
	}
	buf, height, err := leU16(buf)
	if err != nil {
		return nil, ImageBlock{}, err
	}
	buf, packed, err := take1(buf)
	if err != nil {
		return nil, ImageBlock{}, err
	}

	img = ImageBlock{
		Left:         left,
		Top:          top,
		Width:        width,
		Height:       height,
		IsInterlaced: packed&fInterlace != 0,
		HasLocalCT:   packed&fColorTable != 0,
	}

	if img.HasLocalCT {
		n := globalColorTableLen(packed)
		var raw []byte
		buf, raw, err = takeSlice(buf, n*3)
		if err != nil {
			return nil, ImageBlock{}, err
		}
		img.LocalCT = newColorTable(raw)
	}

	buf, minCodeSize, err := take1(buf)
	if err != nil {
		return nil, ImageBlock{}, err
	}
	img.LZWMinCodeSize = minCodeSize

	span, tail, err := spanSubBlocks(buf)
	if err != nil {
		return nil, ImageBlock{}, err
	}
	img.subBlocks = span

	return tail, img, nil
}

func parseExtensionBlock(buf []byte) (tail []byte, block ExtensionBlock, err error) {
	buf, label, err := take1(buf)
	if err != nil {
		return nil, nil, err
	}

	switch label {
	case eGraphicControl:
		return parseGraphicControl(buf)
	case eApplication:
		return parseApplication(buf)
	case eComment:
		data, tail, err := spanSubBlocks(buf)
		if err != nil {
			return nil, nil, err
		}
		return tail, Comment{Data: data}, nil
	case eText:
		data, tail, err := spanSubBlocks(buf)
		if err != nil {
			return nil, nil, err
		}
		return tail, PlainText{Data: data}, nil
	default:
		data, tail, err := spanSubBlocks(buf)
		if err != nil {
			return nil, nil, err
		}
		return tail, Unknown{Label: label, Data: data}, nil
	}
}

func parseGraphicControl(buf []byte) (tail []byte, block ExtensionBlock, err error) {
	buf, blockSize, err := take1(buf)
	if err != nil {
		return nil, nil, err
	}
	if blockSize != 4 {
		return nil, nil, errInvalidByte("invalid graphic control block size")
	}
	buf, packed, err := take1(buf)
	if err != nil {
		return nil, nil, err
	}
	buf, delay, err := leU16(buf)
	if err != nil {
		return nil, nil, err
	}
	buf, transIdx, err := take1(buf)
	if err != nil {
		return nil, nil, err
	}
	buf, terminator, err := take1(buf)
	if err != nil {
		return nil, nil, err
	}
	if terminator != 0 {
		return nil, nil, errInvalidByte("invalid graphic control terminator")
	}
	return buf, GraphicControl{
		IsTransparent:         packed&0x01 != 0,
		TransparentColorIndex: transIdx,
		DelayCentis:           delay,
	}, nil
}

var netscapeSig = [11]byte{'N', 'E', 'T', 'S', 'C', 'A', 'P', 'E', '2', '.', '0'}

func parseApplication(buf []byte) (tail []byte, block ExtensionBlock, err error) {
	buf, blockSize, err := take1(buf)
	if err != nil {
		return nil, nil, err
	}
	if blockSize != 11 {
		data, tail, err := skipApplicationData(buf, blockSize)
		if err != nil {
			return nil, nil, err
		}
		_ = data
		return tail, Application{}, nil
	}

	buf, appID, err := takeSlice(buf, 11)
	if err != nil {
		return nil, nil, err
	}

	if string(appID) == string(netscapeSig[:]) {
		tail, napp, ok, err := tryParseNetscapeBody(buf)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			return tail, napp, nil
		}
		// Not shaped like the NETSCAPE2.0 loop-count sub-block after all:
		// fall through and skip it like any other application extension.
	}

	tail, err = skipSubBlocks(buf)
	if err != nil {
		return nil, nil, err
	}
	return tail, Application{}, nil
}

func skipApplicationData(buf []byte, size byte) (data, tail []byte, err error) {
	buf, data, err = takeSlice(buf, int(size))
	if err != nil {
		return nil, nil, err
	}
	tail, err = skipSubBlocks(buf)
	if err != nil {
		return nil, nil, err
	}
	return data, tail, nil
}

func tryParseNetscapeBody(buf []byte) (tail []byte, napp NetscapeApplication, ok bool, err error) {
	buf, subSize, err := take1(buf)
	if err != nil {
		return nil, NetscapeApplication{}, false, err
	}
	if subSize != 3 {
		tail, err = skipSubBlocksFrom(buf, subSize)
		return tail, NetscapeApplication{}, false, err
	}
	buf, alwaysOne, err := take1(buf)
	if err != nil {
		return nil, NetscapeApplication{}, false, err
	}
	if alwaysOne != 1 {
		// 2 bytes remain unconsumed in this 3-byte sub-block.
		tail, err = skipSubBlocksFrom(buf, 2)
		return tail, NetscapeApplication{}, false, err
	}
	buf, repetitions, err := leU16(buf)
	if err != nil {
		return nil, NetscapeApplication{}, false, err
	}
	buf, terminator, err := take1(buf)
	if err != nil {
		return nil, NetscapeApplication{}, false, err
	}
	if terminator != 0 {
		return nil, NetscapeApplication{}, false, errInvalidByte("invalid application extension terminator")
	}
	return buf, NetscapeApplication{Repetitions: repetitions}, true, nil
}

// skipSubBlocksFrom skips the remainder of the current sub-block (already
// known to be `already` bytes past its length prefix) plus whatever chain
// follows.
func skipSubBlocksFrom(buf []byte, already byte) (tail []byte, err error) {
	if already > 0 {
		buf, _, err = takeSlice(buf, int(already))
		if err != nil {
			return nil, err
		}
	}
	return skipSubBlocks(buf)
}
