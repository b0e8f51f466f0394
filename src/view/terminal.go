package view

import (
	"sync"
	"time"

	"github.com/nsf/termbox-go"
)

//Key is a key read from the terminal, printable keys are their runes
type Key rune

//TerminalSession is the raw terminal acquired for the duration of an animation
type TerminalSession interface {
	DrawText(row int, col int, s string)
	Refresh() error
	//PollKey waits up to timeout for a key press
	PollKey(timeout time.Duration) (Key, bool)
	Close() error
}

//SessionOpener acquires the terminal
type SessionOpener func() (TerminalSession, error)

//termboxSession is the TerminalSession over termbox
//the events are read by the pump goroutine, the board never leaves the caller's goroutine
type termboxSession struct {
	events chan termbox.Event
	done   chan struct{}
	wg     sync.WaitGroup
}

//OpenTermbox switches the terminal to the raw mode
func OpenTermbox() (TerminalSession, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		termbox.Close()
		return nil, err
	}
	s := termboxSession{
		events: make(chan termbox.Event, 16),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.pump()
	return &s, nil
}

//pump forwards the terminal events until the session is interrupted
func (s *termboxSession) pump() {
	defer s.wg.Done()
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		//after close the events are dropped, termbox.Interrupt waits for PollEvent
		select {
		case s.events <- ev:
		case <-s.done:
		}
	}
}

func (s *termboxSession) DrawText(row int, col int, text string) {
	x := col
	for _, r := range text {
		termbox.SetCell(x, row, r, termbox.ColorDefault, termbox.ColorDefault)
		x++
	}
}

func (s *termboxSession) Refresh() error {
	return termbox.Flush()
}

func (s *termboxSession) PollKey(timeout time.Duration) (Key, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev := <-s.events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Ch != 0 {
				return Key(ev.Ch), true
			}
			return Key(ev.Key), true
		case <-timer.C:
			return 0, false
		}
	}
}

//Close stops the pump and restores the terminal
func (s *termboxSession) Close() error {
	close(s.done)
	termbox.Interrupt()
	s.wg.Wait()
	termbox.Close()
	return nil
}
