package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the demo window.
type Window struct {
	Width, Height int
	Title         string
	Fullscreen    bool
	TargetFPS     int
	Hidden        bool
}

// Open creates the window and GL context. Every other function in this package needs it.
func Open(w Window) {
	var flags uint32 = rl.FlagMsaa4xHint | rl.FlagWindowResizable
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	if w.Hidden {
		flags |= rl.FlagWindowHidden
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	if w.TargetFPS > 0 {
		rl.SetTargetFPS(int32(w.TargetFPS))
	}
}

// Close destroys the window opened by Open.
func Close() {
	rl.CloseWindow()
}

// Run drives the main loop until the window is closed. Each frame it calls update with the
// frame time in seconds, then clears the screen and calls draw.
func Run(update func(dt float32), draw func()) {
	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
