package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sns/internal/scene"
	"sns/internal/shape"
)

// canvasRect is where the canvas sits on screen, in terminal cells.
// Every cell shows two vertically stacked pixels.
type canvasRect struct {
	X, Y       int
	Cols, Rows int
}

// toCanvas maps a terminal cell to the center of its area in canvas units.
// inside is false for cells outside the pane; p is still computed for them.
func (r canvasRect) toCanvas(x, y int) (p shape.Point, inside bool) {
	if r.Cols <= 0 || r.Rows <= 0 {
		return shape.Point{}, false
	}
	cx, cy := x-r.X, y-r.Y
	p = shape.Point{
		X: floorDiv((2*cx+1)*scene.CanvasSize, 2*r.Cols),
		Y: floorDiv((2*cy+1)*scene.CanvasSize, 2*r.Rows),
	}
	return p, cx >= 0 && cy >= 0 && cx < r.Cols && cy < r.Rows
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// halfBlocks renders img with "▀": foreground is the upper pixel, background the lower one.
// Runs of identical cells share one style.
func halfBlocks(img image.Image, cols, rows int) string {
	b := img.Bounds()
	var sb strings.Builder
	for row := range rows {
		var (
			run    int
			runTop string
			runBot string
			flush  = func() {
				if run == 0 {
					return
				}
				st := lipgloss.NewStyle().Foreground(lipgloss.Color(runTop)).Background(lipgloss.Color(runBot))
				sb.WriteString(st.Render(strings.Repeat("▀", run)))
				run = 0
			}
		)
		for col := range cols {
			top := hexOf(img.At(b.Min.X+col, b.Min.Y+2*row))
			bot := hexOf(img.At(b.Min.X+col, b.Min.Y+2*row+1))
			if run > 0 && (top != runTop || bot != runBot) {
				flush()
			}
			runTop, runBot = top, bot
			run++
		}
		flush()
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func hexOf(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
