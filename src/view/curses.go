package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lifeterm/src/universe"
)

const (
	keyQuit  Key = 'q'
	keyCtrlC Key = 0x03
)

const (
	pollPeriod = time.Second
	boardRow   = 4 //the first screen row of the board
)

//CursesAnimator animates the board in the raw terminal until 'q' is pressed
type CursesAnimator struct {
	open   SessionOpener
	drawer Drawer
	poll   time.Duration
}

//NewCursesAnimator creates the CursesAnimator, open is called once per Animate
func NewCursesAnimator(open SessionOpener) *CursesAnimator {
	return &CursesAnimator{open: open, drawer: NewDrawer(), poll: pollPeriod}
}

//Animate draws the board, waits up to a second for a key and steps the board
//the terminal session is closed on every way out
func (a *CursesAnimator) Animate(ctx context.Context, b *universe.Board) (err error) {
	s, err := a.open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for iteration := 0; ctx.Err() == nil; iteration++ {
		if err = a.drawFrame(s, b, iteration); err != nil {
			return err
		}
		if k, ok := s.PollKey(a.poll); ok && (k == keyQuit || k == keyCtrlC) {
			return nil
		}
		b.Step()
	}
	return nil
}

func (a *CursesAnimator) drawFrame(s TerminalSession, b *universe.Board, iteration int) error {
	s.DrawText(0, 0, "Game Of Life")
	s.DrawText(1, 0, "Welcome to the game of life! Hit q to quit")
	s.DrawText(3, 0, fmt.Sprintf("Iteration %d", iteration))
	for i, row := range strings.Split(a.drawer.Draw(b), "\n") {
		s.DrawText(boardRow+i, 0, row)
	}
	return s.Refresh()
}
