package render

import "github.com/lixenwraith/whack/constants"

// Rect is a screen-space rectangle
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout places Rows x Cols holes in the field above the status bar
// Holes are numbered row-major from 0
type Layout struct {
	width, height int
	rows, cols    int
	holes         []Rect
}

// NewLayout computes hole positions for a screen of width x height
func NewLayout(width, height, rows, cols int) *Layout {
	l := &Layout{rows: rows, cols: cols}
	l.Resize(width, height)
	return l
}

// Resize recomputes hole positions for new screen dimensions
func (l *Layout) Resize(width, height int) {
	l.width, l.height = width, height
	l.holes = l.holes[:0]
	if l.rows <= 0 || l.cols <= 0 {
		return
	}

	fieldHeight := max(height-constants.StatusBarLines, 0)
	cellW := width / l.cols
	cellH := fieldHeight / l.rows
	holeW := min(constants.HoleWidth, cellW)
	holeH := min(constants.HoleHeight, cellH)

	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			l.holes = append(l.holes, Rect{
				X:      col*cellW + (cellW-holeW)/2,
				Y:      row*cellH + (cellH-holeH)/2,
				Width:  holeW,
				Height: holeH,
			})
		}
	}
}

// Holes returns the number of holes
func (l *Layout) Holes() int {
	return l.rows * l.cols
}

// Size returns the screen dimensions the layout was computed for
func (l *Layout) Size() (int, int) {
	return l.width, l.height
}

// FieldHeight returns the rows available above the status bar
func (l *Layout) FieldHeight() int {
	return max(l.height-constants.StatusBarLines, 0)
}

// HoleRect returns the screen rectangle of hole i
func (l *Layout) HoleRect(i int) Rect {
	if i < 0 || i >= len(l.holes) {
		return Rect{}
	}
	return l.holes[i]
}

// HoleAt returns the hole under (x, y)
func (l *Layout) HoleAt(x, y int) (int, bool) {
	for i, r := range l.holes {
		if r.Width > 0 && r.Height > 0 && r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// Center returns the centre cell of hole i, used for key hits
func (l *Layout) Center(i int) (int, int) {
	r := l.HoleRect(i)
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Pan returns hole i's stereo position from -1 (left column) to 1 (right column)
func (l *Layout) Pan(i int) float64 {
	if l.cols <= 1 || i < 0 {
		return 0
	}
	col := i % l.cols
	return 2*float64(col)/float64(l.cols-1) - 1
}

// Pans returns the stereo position of every hole
func (l *Layout) Pans() []float64 {
	pans := make([]float64, l.Holes())
	for i := range pans {
		pans[i] = l.Pan(i)
	}
	return pans
}
