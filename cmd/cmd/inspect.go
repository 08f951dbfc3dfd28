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
	"text/tabwriter"

	"github.com/ostafen/tinygif/internal/gif"
	"github.com/ostafen/tinygif/internal/logger"
	"github.com/ostafen/tinygif/internal/mmap"
	"github.com/spf13/cobra"
)

func DefineInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.gif>",
		Short: "Print a GIF's header and frame metadata without decoding pixels",
		Long: `The 'inspect' command parses a GIF's Logical Screen Descriptor and walks
its segment stream, reporting the header, the loop count (if a NETSCAPE2.0
application extension is present), and the delay/transparency of every
frame. It never runs the LZW decoder.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunInspect,
	}
	return cmd
}

func RunInspect(cmd *cobra.Command, args []string) error {
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

	log.Infof("version: GIF%s", g.Header.Version)
	log.Infof("logical screen: %dx%d", g.Header.Width, g.Header.Height)
	if g.HasGCT {
		log.Infof("global color table: %d entries", g.GlobalCT.Len())
	} else {
		log.Info("global color table: none")
	}

	if count, ok := g.LoopCount(); ok {
		log.Infof("loop count: %d", count)
	} else {
		log.Info("loop count: not specified (play once)")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tDELAY (cs)\tTRANSPARENT")

	it := g.Frames()
	for {
		frame, err := it.Next()
		if err != nil {
			return fmt.Errorf("gif: walking frames of %s: %w", args[0], err)
		}
		if frame == nil {
			break
		}
		fmt.Fprintf(w, "%d\t%d\t%v\n", frame.Ordinal, frame.DelayCentis, frame.IsTransparent)
	}
	return w.Flush()
}
