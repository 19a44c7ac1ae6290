package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
	maxLogLines    = 6
)

// Overlay draws FPS and heap usage at the top-right and the latest log lines at the
// bottom-left. Everything is off until enabled.
type Overlay struct {
	ShowFPS  bool
	ShowLog  bool
	Lines    func(n int) []string // source of log lines, e.g. (*logger.Logger).Tail
	frame    uint32
	statText string
	mem      runtime.MemStats
}

// New returns an overlay with everything hidden.
func New() *Overlay {
	return &Overlay{}
}

// Draw renders enabled overlays. Call last in the draw loop.
func (o *Overlay) Draw() {
	o.frame++
	if o.ShowFPS {
		if o.statText == "" || o.frame%updateInterval == 0 {
			runtime.ReadMemStats(&o.mem)
			o.statText = fmt.Sprintf("FPS: %d  Mem: %.2f MiB", rl.GetFPS(), float64(o.mem.Alloc)/(1024*1024))
		}
		w := rl.MeasureText(o.statText, fontSize)
		rl.DrawText(o.statText, int32(rl.GetScreenWidth())-w-padding, padding, fontSize, rl.Green)
	}
	if o.ShowLog && o.Lines != nil {
		lines := o.Lines(maxLogLines)
		y := int32(rl.GetScreenHeight()) - padding - int32(len(lines))*lineHeight
		for _, line := range lines {
			rl.DrawText(line, padding, y, fontSize, rl.LightGray)
			y += lineHeight
		}
	}
}
