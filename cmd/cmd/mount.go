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
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ostafen/tinygif/internal/fuse"
	"github.com/ostafen/tinygif/internal/gif"
	"github.com/ostafen/tinygif/internal/mmap"
)

func DefineMountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount <file.gif>",
		Short: "FUSE-mount a directory of one .ppm file per decoded frame",
		Long: `The 'mount' command parses a GIF and serves its frames as a read-only
directory of synthetic files, one PPM image per frame, named
frame-0000.ppm, frame-0001.ppm, and so on. Each file is decoded on first
access (stat or read) and cached until unmount. Linux only.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunMount,
	}
	cmd.Flags().StringP("mountpoint", "m", "", "directory to mount at; defaults to the GIF's base name without extension, with _mnt appended")
	return cmd
}

func RunMount(cmd *cobra.Command, args []string) error {
	mf, err := mmap.NewMmapFile(args[0])
	if err != nil {
		return fmt.Errorf("gif: reading %s: %w", args[0], err)
	}
	defer mf.Close()

	g, err := gif.Parse(mf.Data)
	if err != nil {
		return fmt.Errorf("gif: parsing %s: %w", args[0], err)
	}

	mountpoint, _ := cmd.Flags().GetString("mountpoint")
	if mountpoint == "" {
		mountpoint = getMountpoint(args[0])
	}

	return fuse.Mount(mountpoint, g)
}

// getMountpoint derives a mountpoint name from a GIF's file name by
// stripping its extension and appending "_mnt".
func getMountpoint(gifPath string) string {
	baseName := filepath.Base(gifPath)
	ext := filepath.Ext(baseName)
	return strings.TrimSuffix(baseName, ext) + "_mnt"
}
