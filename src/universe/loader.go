package universe

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	deadSymbol = "0"
	liveSymbol = "1"
)

//Loader builds a Board from the text grid produced by a LineSource
//
//	1 1 1 1 0
//	0 1 1 0 0
//	0 1 1 1 0
type Loader struct {
	src LineSource
}

//NewLoader creates the Loader reading from src
func NewLoader(src LineSource) *Loader {
	return &Loader{src: src}
}

//Load reads all lines from the source and creates the Board
//empty input, empty rows, ragged rows and symbols other than 0 and 1 fail with ErrInvalidBoard
func (l *Loader) Load() (*Board, error) {
	var (
		live   []Cell
		width  int
		height int
	)
	for {
		line, err := l.src.NextLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, fmt.Errorf("%w: row %v is empty", ErrInvalidBoard, height+1)
		}
		values := strings.Split(line, " ")
		if height == 0 {
			width = len(values)
		} else if len(values) != width {
			return nil, fmt.Errorf("%w: row %v has %v cells, expected %v", ErrInvalidBoard, height+1, len(values), width)
		}
		for x, v := range values {
			switch v {
			case liveSymbol:
				live = append(live, Cell{x, height})
			case deadSymbol:
			default:
				return nil, fmt.Errorf("%w: row %v has unknown symbol %q", ErrInvalidBoard, height+1, v)
			}
		}
		height++
	}
	if height == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}
	return NewBoard(width, height, live)
}
