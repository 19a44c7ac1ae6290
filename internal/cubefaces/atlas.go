package cubefaces

import (
	"fmt"

	"cubetext/internal/meshgen"
	"cubetext/internal/ui"
)

// DefaultPanelSize is the side of one square panel in pixels.
const DefaultPanelSize = 512

// MaxAtlasBytes bounds the RGBA size of the atlas. raylib reads render targets back
// through a fixed 1<<24 byte window, so larger atlases cannot be baked.
const MaxAtlasBytes = 1 << 24

// MaxPanelSize is the largest panel side whose atlas fits in MaxAtlasBytes.
const MaxPanelSize = 836

// Atlas is the off-screen texture the panels are rendered into: FaceCount square
// panels side by side.
type Atlas struct {
	PanelSize int
}

// Width returns the atlas width in pixels.
func (a Atlas) Width() int {
	return a.PanelSize * meshgen.FaceCount
}

// Height returns the atlas height in pixels.
func (a Atlas) Height() int {
	return a.PanelSize
}

// Validate rejects atlases that cannot hold six whole panels.
func (a Atlas) Validate() error {
	if a.PanelSize <= 0 {
		return fmt.Errorf("cubefaces: panel size must be positive, got %d", a.PanelSize)
	}
	if n := a.Width() * a.Height() * 4; n > MaxAtlasBytes {
		return fmt.Errorf("cubefaces: %dx%d atlas needs %d bytes, limit %d (panel size at most %d)",
			a.Width(), a.Height(), n, MaxAtlasBytes, MaxPanelSize)
	}
	if a.Width()%meshgen.FaceCount != 0 {
		return fmt.Errorf("cubefaces: atlas width %d is not a multiple of %d", a.Width(), meshgen.FaceCount)
	}
	return nil
}

// StripRect returns the pixel rectangle of face f's panel.
func (a Atlas) StripRect(f meshgen.Face) ui.Rect {
	s := float32(a.PanelSize)
	return ui.Rect{X: float32(f) * s, Y: 0, Width: s, Height: s}
}
