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

// Package gif is a streaming decoder for the GIF87a/GIF89a format. It parses
// a complete GIF held in memory and hands the caller an ordered (x, y, color)
// pixel stream per frame; it never copies bytes out of the input buffer, and
// the LZW decoder works in fixed-size tables sized for the worst case. It is
// not allocation-free: FrameIter.Next allocates one small Frame per frame it
// yields.
package gif

import "fmt"

// ErrKind classifies a parse failure. It follows a BMP-style image-decoder
// error taxonomy; the kinds that don't apply to GIF are kept as reserved.
type ErrKind int

const (
	// ErrUnexpectedEOF: a primitive reached the end of the buffer while
	// expecting more bytes.
	ErrUnexpectedEOF ErrKind = iota

	// ErrInvalidFileSignature: the magic or version bytes are not GIF87a/GIF89a.
	ErrInvalidFileSignature

	// ErrInvalidByte: malformed flags, an unexpected segment marker, a bad
	// GCE block size/terminator, an LZW code out of range, a cycle in the
	// LZW table, or a dictionary/reconstruction buffer overflow.
	ErrInvalidByte

	// ErrJunkAfterTrailer: bytes remain after the 0x3B trailer.
	ErrJunkAfterTrailer

	// Reserved, carried over from the BMP-style taxonomy; this package never
	// produces these.
	ErrUnsupportedBpp
	ErrUnsupportedCompressionMethod
	ErrUnsupportedHeaderLength
	ErrUnsupportedChannelMasks
	ErrInvalidImageDimensions
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnexpectedEOF:
		return "unexpected end of file"
	case ErrInvalidFileSignature:
		return "invalid file signature"
	case ErrInvalidByte:
		return "invalid byte"
	case ErrJunkAfterTrailer:
		return "junk after trailer byte"
	case ErrUnsupportedBpp:
		return "unsupported bits per pixel"
	case ErrUnsupportedCompressionMethod:
		return "unsupported compression method"
	case ErrUnsupportedHeaderLength:
		return "unsupported header length"
	case ErrUnsupportedChannelMasks:
		return "unsupported channel masks"
	case ErrInvalidImageDimensions:
		return "invalid image dimensions"
	default:
		return "unknown error"
	}
}

// ParseError is the single error type produced by this package's parsing and
// LZW-decoding paths. Signature carries the offending bytes when Kind is
// ErrInvalidFileSignature; it is empty otherwise.
type ParseError struct {
	Kind      ErrKind
	Signature [3]byte
	msg       string
}

func (e *ParseError) Error() string {
	if e.Kind == ErrInvalidFileSignature {
		return fmt.Sprintf("gif: %s: %q", e.Kind, e.Signature[:])
	}
	if e.msg != "" {
		return fmt.Sprintf("gif: %s: %s", e.Kind, e.msg)
	}
	return fmt.Sprintf("gif: %s", e.Kind)
}

func errEOF() error {
	return &ParseError{Kind: ErrUnexpectedEOF}
}

func errInvalidByte(msg string) error {
	return &ParseError{Kind: ErrInvalidByte, msg: msg}
}

func errBadSignature(sig [3]byte) error {
	return &ParseError{Kind: ErrInvalidFileSignature, Signature: sig}
}

func errJunkAfterTrailer() error {
	return &ParseError{Kind: ErrJunkAfterTrailer}
}

// IsKind reports whether err is a *ParseError of the given kind.
func IsKind(err error, k ErrKind) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Kind == k
}
