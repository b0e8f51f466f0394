package universe

import (
	"fmt"
	"sort"
)

//Board is the Game of Life field with hard edges
//the live cells are stored as a set of coordinates, the dead cells are not stored at all
type Board struct {
	width  int
	height int
	live   map[Cell]struct{}
}

//NewBoard creates the Board with the given dimensions and live cells
//fails with ErrInvalidBoard if a dimension is not positive or any cell is out of bounds
func NewBoard(width int, height int, live []Cell) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimension %v x %v", ErrInvalidBoard, width, height)
	}
	b := Board{width: width, height: height, live: make(map[Cell]struct{}, len(live))}
	for _, c := range live {
		if !b.inBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: cell (%v, %v) is outside %v x %v", ErrInvalidBoard, c.X, c.Y, width, height)
		}
		b.live[c] = struct{}{}
	}
	return &b, nil
}

//Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

//Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

//Population returns the count of live cells
func (b *Board) Population() int {
	return len(b.live)
}

//IsAlive reports whether the cell at x, y is alive, positions outside the board are dead
func (b *Board) IsAlive(x int, y int) bool {
	_, ok := b.live[Cell{x, y}]
	return ok
}

//LiveCells returns a copy of the live cells sorted row by row
func (b *Board) LiveCells() []Cell {
	cells := make([]Cell, 0, len(b.live))
	for c := range b.live {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

//Equal reports whether both boards have the same dimensions and the same live cells
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.width != o.width || b.height != o.height || len(b.live) != len(o.live) {
		return false
	}
	for c := range b.live {
		if _, ok := o.live[c]; !ok {
			return false
		}
	}
	return true
}

//Step advances the board to the next generation
//only the neighbourhoods of the live cells are evaluated, any other cell is dead and stays dead
//the new live set is built aside and replaces the old one at once
func (b *Board) Step() {
	next := make(map[Cell]struct{}, len(b.live))
	b.walkCandidates(func(c Cell) {
		if b.cellNextState(c.X, c.Y) {
			next[c] = struct{}{}
		}
	})
	b.live = next
}

//walkCandidates calls the cb function once for each cell that may change its state on the next step
func (b *Board) walkCandidates(cb func(c Cell)) {
	seen := make(map[Cell]struct{}, len(b.live)*9)
	for c := range b.live {
		for i := -1; i < 2; i++ {
			for j := -1; j < 2; j++ {
				n := Cell{c.X + i, c.Y + j}
				if !b.inBounds(n.X, n.Y) {
					continue
				}
				if _, ok := seen[n]; ok {
					continue
				}
				seen[n] = struct{}{}
				cb(n)
			}
		}
	}
}

//cellNextState calculates the next state for the cell
func (b *Board) cellNextState(x int, y int) (live bool) {
	//calculate neighbors
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			//coordinates outside the board are never alive
			if b.IsAlive(x+i, y+j) {
				liveNeighbours++
			}
		}
	}

	switch liveNeighbours {
	case 3:
		return true
	case 2:
		return b.IsAlive(x, y)
	}
	return false
}

func (b *Board) inBounds(x int, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}
