//go:build linux
// +build linux

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
package fuse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/ostafen/tinygif/internal/gif"
	"github.com/ostafen/tinygif/internal/render"
)

// FrameFS exposes one read-only file per decoded frame, named
// "frame-0000.ppm", "frame-0001.ppm", and so on. Each file's bytes are
// produced lazily, the first time it is stat'ed or read, by running the frame through
// the LZW decoder and the draw driver; the result is cached so repeated reads
// (and `cat`, which re-opens and re-reads) don't re-decode.
type FrameFS struct {
	hdr    gif.Header
	frames []*gif.Frame

	mtx   sync.Mutex
	cache map[int][]byte
}

// NewFrameFS collects every frame g yields up front (a Frame is a small view
// that copies none of the source buffer — see internal/gif) and builds a
// filesystem over them.
func NewFrameFS(g *gif.RawGif) (*FrameFS, error) {
	var frames []*gif.Frame
	it := g.Frames()
	for {
		f, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("fuse: collecting frames: %w", err)
		}
		if f == nil {
			break
		}
		frames = append(frames, f)
	}
	return &FrameFS{
		hdr:    g.Header,
		frames: frames,
		cache:  make(map[int][]byte),
	}, nil
}

func (fsys *FrameFS) Root() (fs.Node, error) {
	return &Dir{fs: fsys}, nil
}

func frameName(i int) string {
	return fmt.Sprintf("frame-%04d.ppm", i)
}

// render decodes frame i to PPM bytes, caching the result.
func (fsys *FrameFS) render(i int) ([]byte, error) {
	fsys.mtx.Lock()
	defer fsys.mtx.Unlock()

	if b, ok := fsys.cache[i]; ok {
		return b, nil
	}

	target := render.NewTarget(fsys.hdr)
	if err := fsys.frames[i].Draw(target); err != nil {
		return nil, fmt.Errorf("fuse: rendering %s: %w", frameName(i), err)
	}

	var buf bytes.Buffer
	if err := target.WritePPM(&buf); err != nil {
		return nil, err
	}
	fsys.cache[i] = buf.Bytes()
	return fsys.cache[i], nil
}

// Dir implements fs.Node, fs.HandleReadDirAller and fs.NodeStringLookuper.
type Dir struct {
	fs *FrameFS
}

func (d *Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0555
	return nil
}

func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	for i := range d.fs.frames {
		if frameName(i) == name {
			return &File{fs: d.fs, index: i}, nil
		}
	}
	return nil, fuse.ENOENT
}

func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	entries := make([]fuse.Dirent, len(d.fs.frames))
	for i := range d.fs.frames {
		entries[i] = fuse.Dirent{
			Inode: uint64(i + 1),
			Name:  frameName(i),
			Type:  fuse.DT_File,
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// File implements fs.Node and fs.HandleReader. Its size is only known once
// the frame has been rendered at least once; Attr triggers that render so
// `ls -l` reports a correct size without requiring a prior read.
type File struct {
	fs    *FrameFS
	index int
}

func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	data, err := f.fs.render(f.index)
	if err != nil {
		return err
	}
	a.Mode = 0444
	a.Size = uint64(len(data))
	a.Mtime = time.Now()
	return nil
}

func (f *File) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	data, err := f.fs.render(f.index)
	if err != nil {
		return err
	}

	size := int64(req.Size)
	offset := req.Offset
	if offset >= int64(len(data)) {
		resp.Data = []byte{}
		return nil
	}
	if offset+size > int64(len(data)) {
		size = int64(len(data)) - offset
	}

	buf := make([]byte, size)
	n, err := io.NewSectionReader(bytes.NewReader(data), offset, size).Read(buf)
	if err != nil && err != io.EOF {
		return err
	}
	resp.Data = buf[:n]
	return nil
}
