package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas slices a sprite sheet into a grid of equally sized cells, addressed
// in row-major order. It is read-only after construction; the animation core
// only reads its cell count as the defensive bound for frame indices.
type Atlas struct {
	sheet *ebiten.Image
	cellW int
	cellH int
	cols  int
	cells []*ebiten.Image
}

// NewAtlas builds an atlas from a sheet whose dimensions are exact multiples
// of the cell size.
func NewAtlas(sheet *ebiten.Image, cellW, cellH int) (*Atlas, error) {
	if sheet == nil {
		return nil, fmt.Errorf("atlas: nil sheet")
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("atlas: invalid cell size %dx%d", cellW, cellH)
	}
	bounds := sheet.Bounds()
	if bounds.Dx()%cellW != 0 || bounds.Dy()%cellH != 0 {
		return nil, fmt.Errorf("atlas: sheet %dx%d not divisible by cell %dx%d",
			bounds.Dx(), bounds.Dy(), cellW, cellH)
	}

	cols := bounds.Dx() / cellW
	rows := bounds.Dy() / cellH
	a := &Atlas{
		sheet: sheet,
		cellW: cellW,
		cellH: cellH,
		cols:  cols,
		cells: make([]*ebiten.Image, 0, cols*rows),
	}
	for i := 0; i < cols*rows; i++ {
		col := i % cols
		row := i / cols
		sx := bounds.Min.X + col*cellW
		sy := bounds.Min.Y + row*cellH
		r := image.Rect(sx, sy, sx+cellW, sy+cellH)
		a.cells = append(a.cells, sheet.SubImage(r).(*ebiten.Image))
	}
	return a, nil
}

// CellCount returns the total number of cells in the grid.
func (a *Atlas) CellCount() int {
	if a == nil {
		return 0
	}
	return len(a.cells)
}

// Cell returns the image for a 0-based row-major cell index, or nil when the
// index is out of range.
func (a *Atlas) Cell(i int) *ebiten.Image {
	if a == nil || i < 0 || i >= len(a.cells) {
		return nil
	}
	return a.cells[i]
}

// CellSize returns the per-cell pixel dimensions.
func (a *Atlas) CellSize() (w, h int) {
	if a == nil {
		return 0, 0
	}
	return a.cellW, a.cellH
}
