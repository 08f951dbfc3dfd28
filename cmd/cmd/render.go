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
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/ostafen/tinygif/internal/gif"
	"github.com/ostafen/tinygif/internal/logger"
	"github.com/ostafen/tinygif/internal/mmap"
	"github.com/ostafen/tinygif/internal/render"
	"github.com/ostafen/tinygif/pkg/util/format"
)

func DefineRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "render <file.gif> <output_dir>",
		Short:        "Decode every frame to a .ppm file in output_dir",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunRender,
	}
	cmd.Flags().Bool("no-spinner", false, "disable the progress spinner")
	return cmd
}

func RunRender(cmd *cobra.Command, args []string) error {
	log := logger.New(os.Stdout, logger.InfoLevel)

	mf, err := mmap.NewMmapFile(args[0])
	if err != nil {
		return fmt.Errorf("gif: reading %s: %w", args[0], err)
	}
	defer mf.Close()

	g, err := gif.Parse(mf.Data)
	if err != nil {
		return fmt.Errorf("gif: parsing %s: %w", args[0], err)
	}

	outDir := args[1]
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("gif: creating %s: %w", outDir, err)
	}

	noSpinner, _ := cmd.Flags().GetBool("no-spinner")
	var s *spinner.Spinner
	if !noSpinner {
		s = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = " decoding frames..."
		s.Start()
		defer s.Stop()
	}

	target := render.NewTarget(g.Header)
	var totalBytes int64

	it := g.Frames()
	for {
		frame, err := it.Next()
		if err != nil {
			return fmt.Errorf("gif: walking frames of %s: %w", args[0], err)
		}
		if frame == nil {
			break
		}

		target.Reset()
		if err := frame.Draw(target); err != nil {
			return fmt.Errorf("gif: decoding frame %d of %s: %w", frame.Ordinal, args[0], err)
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("frame-%04d.ppm", frame.Ordinal))
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("gif: creating %s: %w", outPath, err)
		}
		err = target.WritePPM(f)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("gif: writing %s: %w", outPath, err)
		}
		if closeErr != nil {
			return fmt.Errorf("gif: closing %s: %w", outPath, closeErr)
		}

		info, err := os.Stat(outPath)
		if err == nil {
			totalBytes += info.Size()
		}
		if s != nil {
			s.Suffix = fmt.Sprintf(" decoded frame %d (%s written)", frame.Ordinal, format.FormatBytes(totalBytes))
		}
	}

	if s != nil {
		s.Stop()
	}
	log.Infof("wrote %s across %s", format.FormatBytes(totalBytes), outDir)
	return nil
}
