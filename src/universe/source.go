package universe

import (
	"bufio"
	"io"
	"io/ioutil"
	"strings"
)

//LineSource produces the board description line by line, io.EOF marks the end of input
type LineSource interface {
	NextLine() (string, error)
}

//StreamSource reads the lines from an interactive stream until a blank line
type StreamSource struct {
	sc   *bufio.Scanner
	done bool
}

//NewStreamSource creates the StreamSource over r
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{sc: bufio.NewScanner(r)}
}

//NextLine returns the next line, io.EOF is returned on a blank line or when the stream is over
func (s *StreamSource) NextLine() (string, error) {
	if s.done {
		return "", io.EOF
	}
	if !s.sc.Scan() {
		s.done = true
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimRight(s.sc.Text(), "\r")
	if line == "" {
		s.done = true
		return "", io.EOF
	}
	return line, nil
}

//LinesSource serves the lines kept in memory
type LinesSource struct {
	lines []string
	pos   int
}

//NewLinesSource creates the LinesSource, the lines are served as is
func NewLinesSource(lines []string) *LinesSource {
	return &LinesSource{lines: lines}
}

//NextLine returns the next line or io.EOF when all lines are served
func (s *LinesSource) NextLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	s.pos++
	return s.lines[s.pos-1], nil
}

//OpenFileSource reads the whole file and serves its lines
//trailing blank lines are dropped so the file may end with a line feed
func OpenFileSource(path string) (*LinesSource, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return NewLinesSource(lines), nil
}
