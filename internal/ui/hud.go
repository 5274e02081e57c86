package ui

import (
	"fmt"
	"image"
	"image/color"

	"lifepaint/internal/core"
	"lifepaint/internal/render"
)

// HUD draws the run state indicator and the live-cell counter over the board.
type HUD struct {
	width, height int
	cellSize      int
}

// NewHUD returns a HUD for a window of the given pixel size.
func NewHUD(width, height, cellSize int) *HUD {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &HUD{width: width, height: height, cellSize: cellSize}
}

// Draw paints the status label centred near the bottom edge and the counter
// in the top-right corner.
func (h *HUD) Draw(r render.Renderer, mode core.Mode, alive int) {
	r.DrawText(mode.String(), h.statusAt(), statusColor(mode), render.AnchorCenter)
	r.DrawText(CountLabel(alive), h.countAt(), render.TextFg, render.AnchorTopRight)
}

// CountLabel formats the live-cell counter.
func CountLabel(alive int) string {
	return fmt.Sprintf("Alive Cells: %d", alive)
}

func (h *HUD) statusAt() image.Point {
	return image.Pt(h.width/2, h.height-statusInset*h.cellSize)
}

func (h *HUD) countAt() image.Point {
	return image.Pt(h.width-countInset*h.cellSize, countInset*h.cellSize)
}

func statusColor(m core.Mode) color.Color {
	if m == core.Running {
		return render.RunningFg
	}
	return render.PausedFg
}

const (
	statusInset = 2
	countInset  = 1
)
