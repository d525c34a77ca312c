package hud

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: FPS and memory text are rebuilt every N frames to limit allocations.
	updateInterval = 30
)

// HUD draws the frame rate (top-right) and the demo's status lines (top-left).
type HUD struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStatus   bool
	// Status supplies the lines drawn top-left, usually the demo's Status.
	Status func() []string

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a HUD showing FPS and status.
func New(status func() []string) *HUD {
	return &HUD{ShowFPS: true, ShowStatus: true, Status: status}
}

// Toggle flips the named overlay: "fps", "mem" or "status".
func (h *HUD) Toggle(name string) error {
	switch name {
	case "fps":
		h.ShowFPS = !h.ShowFPS
	case "mem":
		h.ShowMemAlloc = !h.ShowMemAlloc
	case "status":
		h.ShowStatus = !h.ShowStatus
	default:
		return fmt.Errorf("unknown overlay %q", name)
	}
	return nil
}

// Draw renders the enabled overlays. Call after the scene, before the command bar.
func (h *HUD) Draw() {
	h.frameCount++
	update := h.frameCount%updateInterval == 0
	if (h.ShowFPS && h.lastFpsText == "") || (h.ShowMemAlloc && h.lastMemText == "") {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if h.ShowFPS {
		if update {
			h.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(h.lastFpsText, screenW, y)
		y += lineHeight
	}
	if h.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&h.lastMemStats)
			h.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(h.lastMemStats.Alloc)/(1024*1024))
		}
		drawRight(h.lastMemText, screenW, y)
	}

	if h.ShowStatus && h.Status != nil {
		for i, line := range h.Status() {
			rl.DrawText(line, padding, int32(padding+i*lineHeight), fontSize, rl.LightGray)
		}
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
