// blockshade - shaded convex solids in the terminal
// Every cell is a half block, so each terminal row holds two pixels.
//
// Commands:
//
//	bounce          - Icosphere bouncing off the terminal edges
//	spin [shape]    - Interactive cube, pyramid, icosphere or uvsphere
//	view <model>    - Hull of a glTF/GLB point cloud
//	snapshot [shape]- Render a single frame to stdout
//
// Controls (spin and view):
//
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation and zoom
//	X           - Toggle wireframe
//	F           - Toggle flat shading
//	+/-         - Zoom
//	Esc         - Quit
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
)

var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}
