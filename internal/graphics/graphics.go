package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"demo-scenes/internal/config"
)

// Run opens the window and drives the frame loop: update (input, commands, simulation),
// then clear and draw. The loop is not capped; with VSync set the swap waits for the display.
// ESC toggles the command bar, so the window closes only through its close button.
// cleanup, if set, runs while the GL context still exists.
func Run(win config.Window, update, draw, cleanup func()) {
	var flags uint32 = rl.FlagWindowResizable
	if win.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()
	if cleanup != nil {
		defer cleanup()
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(0)

	bg := rl.NewColor(win.Background[0], win.Background[1], win.Background[2], win.Background[3])
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		draw()
		rl.EndDrawing()
	}
}
