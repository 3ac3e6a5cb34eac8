// Package text renders layout trees as plain-text box drawings for terminal
// inspection. The renderer owns all cell geometry: the engine only supplies
// qualitative direction and a 0-100 proportion, which is partitioned into
// character cells here.
package text

import (
	"math"
	"strings"

	"github.com/tilekit/docktree/pkg/layout"
)

// MinCells is the smallest width or height a region may be squeezed to.
// Below this a box has no interior left to draw.
const MinCells = 3

// Render draws the layout tree into a width×height character grid. Each
// panel becomes a box listing its form titles in stack order, with the panel
// id in the top border. Splitters are invisible: they only partition space
// between their children along their direction, giving Size percent to the
// primary child.
func Render(root layout.Node, width, height int) string {
	if width < MinCells {
		width = MinCells
	}
	if height < MinCells {
		height = MinCells
	}
	c := newCanvas(width, height)
	c.draw(root, 0, 0, width, height)
	return c.String()
}

type canvas struct {
	cells  [][]rune
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &canvas{cells: cells, width: width, height: height}
}

func (c *canvas) String() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func (c *canvas) draw(n layout.Node, x, y, w, h int) {
	if w < MinCells || h < MinCells {
		return
	}
	switch n := n.(type) {
	case *layout.Panel:
		c.drawPanel(n, x, y, w, h)
	case *layout.Splitter:
		share := n.Size / 100
		if n.Direction == layout.Horizontal {
			pw := clamp(int(math.Round(float64(w)*share)), MinCells, w-MinCells)
			c.draw(n.Primary, x, y, pw, h)
			c.draw(n.Secondary, x+pw, y, w-pw, h)
		} else {
			ph := clamp(int(math.Round(float64(h)*share)), MinCells, h-MinCells)
			c.draw(n.Primary, x, y, w, ph)
			c.draw(n.Secondary, x, y+ph, w, h-ph)
		}
	}
}

func (c *canvas) drawPanel(p *layout.Panel, x, y, w, h int) {
	for i := 0; i < w; i++ {
		c.set(x+i, y, '-')
		c.set(x+i, y+h-1, '-')
	}
	for i := 0; i < h; i++ {
		c.set(x, y+i, '|')
		c.set(x+w-1, y+i, '|')
	}
	c.set(x, y, '+')
	c.set(x+w-1, y, '+')
	c.set(x, y+h-1, '+')
	c.set(x+w-1, y+h-1, '+')

	c.text(x+2, y, " "+p.ID()+" ", w-4)

	row := y + 1
	for _, f := range p.Forms {
		if row >= y+h-1 {
			break
		}
		c.text(x+2, row, f.Title, w-4)
		row++
	}
}

func (c *canvas) text(x, y int, s string, max int) {
	if max <= 0 {
		return
	}
	runes := []rune(s)
	if len(runes) > max {
		runes = runes[:max]
	}
	for i, r := range runes {
		c.set(x+i, y, r)
	}
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
