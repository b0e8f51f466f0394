package view

import (
	"strings"

	"lifeterm/src/universe"
)

//Drawer converts the board into rows of symbols
type Drawer struct {
	Live      string //live cell symbol
	Dead      string //dead cell symbol
	Separator string //placed between the cells of a row
}

//NewDrawer creates the Drawer producing the board text format: 1 and 0 separated by spaces
func NewDrawer() Drawer {
	return Drawer{Live: "1", Dead: "0", Separator: " "}
}

//Draw returns one line per board row, the top row first, without the trailing line feed
func (d Drawer) Draw(b *universe.Board) string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		if y != 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.row(b, y, b.Width()))
	}
	return sb.String()
}

//row renders the first n cells of the row y
func (d Drawer) row(b *universe.Board, y int, n int) string {
	var sb strings.Builder
	for x := 0; x < n; x++ {
		if x != 0 {
			sb.WriteString(d.Separator)
		}
		if b.IsAlive(x, y) {
			sb.WriteString(d.Live)
		} else {
			sb.WriteString(d.Dead)
		}
	}
	return sb.String()
}
