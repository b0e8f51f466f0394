package universe

import (
	"errors"
	"time"
)

//ErrInvalidBoard is returned when a board can't be built from the given dimensions, cells or text
var ErrInvalidBoard = errors.New("invalid board")

//Cell is a position on the board, x is the column and y is the row
type Cell struct {
	X int
	Y int
}

//Status represents the status of a running board at concrete moment
type Status struct {
	Iteration     int
	Population    int
	IterationTime time.Duration
}

//Template represent the seeding template which can be used to load the board with predefined data
type Template struct {
	Name  string   //template name
	Descr string   //template descr
	Rows  []string //rows in the board text format
}
