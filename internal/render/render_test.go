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
package render_test

import (
	"bytes"
	"testing"

	"github.com/ostafen/tinygif/internal/gif"
	"github.com/ostafen/tinygif/internal/render"
	"github.com/stretchr/testify/require"
)

func TestTargetDrawAndWritePPM(t *testing.T) {
	hdr := gif.Header{Width: 2, Height: 1}
	target := render.NewTarget(hdr)

	require.NoError(t, target.Draw(gif.Point{X: 0, Y: 0}, 10, 20, 30))
	require.NoError(t, target.Draw(gif.Point{X: 1, Y: 0}, 40, 50, 60))

	var buf bytes.Buffer
	require.NoError(t, target.WritePPM(&buf))

	want := "P6\n2 1\n255\n" + string([]byte{10, 20, 30, 40, 50, 60})
	require.Equal(t, want, buf.String())
}

func TestTargetDrawOutOfBoundsErrors(t *testing.T) {
	target := render.NewTarget(gif.Header{Width: 1, Height: 1})
	err := target.Draw(gif.Point{X: 5, Y: 5}, 0, 0, 0)
	require.Error(t, err)
}

func TestTargetReset(t *testing.T) {
	target := render.NewTarget(gif.Header{Width: 1, Height: 1})
	require.NoError(t, target.Draw(gif.Point{X: 0, Y: 0}, 255, 255, 255))
	target.Reset()

	var buf bytes.Buffer
	require.NoError(t, target.WritePPM(&buf))
	require.Equal(t, "P6\n1 1\n255\n"+string([]byte{0, 0, 0}), buf.String())
}
