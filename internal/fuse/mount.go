//go:build !linux
// +build !linux

package fuse

import (
	"fmt"

	"github.com/ostafen/tinygif/internal/gif"
)

func Mount(mountpoint string, g *gif.RawGif) error {
	return fmt.Errorf("FUSE mount is only supported on Linux")
}
