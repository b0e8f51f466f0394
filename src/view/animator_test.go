package view

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"lifeterm/src/universe"
)

func blinker(t *testing.T) *universe.Board {
	return newBoard(t, 3, 3, universe.Cell{X: 1, Y: 0}, universe.Cell{X: 1, Y: 1}, universe.Cell{X: 1, Y: 2})
}

func glider(t *testing.T) *universe.Board {
	return newBoard(t, 6, 6,
		universe.Cell{X: 1, Y: 0}, universe.Cell{X: 2, Y: 1},
		universe.Cell{X: 0, Y: 2}, universe.Cell{X: 1, Y: 2}, universe.Cell{X: 2, Y: 2})
}

func TestSingleFrameFirst(t *testing.T) {
	var out bytes.Buffer
	b := glider(t)
	expected := NewDrawer().Draw(b) + "\n"
	if err := NewSingleFrameAnimator(1, &out).Animate(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	if out.String() != expected {
		t.Errorf("got %q, expected %q", out.String(), expected)
	}
	if !b.Equal(glider(t)) {
		t.Errorf("the board must not be stepped for the first frame")
	}
}

func TestSingleFrameThird(t *testing.T) {
	manual := glider(t)
	manual.Step()
	manual.Step()
	expected := NewDrawer().Draw(manual) + "\n"

	var out bytes.Buffer
	if err := NewSingleFrameAnimator(3, &out).Animate(context.Background(), glider(t)); err != nil {
		t.Fatal(err)
	}
	if out.String() != expected {
		t.Errorf("got %q, expected %q", out.String(), expected)
	}
}

//cancelWriter cancels the context after n writes
type cancelWriter struct {
	bytes.Buffer
	n      int
	cancel context.CancelFunc
}

func (w *cancelWriter) Write(p []byte) (int, error) {
	w.n--
	if w.n == 0 {
		w.cancel()
	}
	return w.Buffer.Write(p)
}

func TestPrintAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := &cancelWriter{n: 3, cancel: cancel}

	if err := NewPrintAllAnimator(0, w).Animate(ctx, blinker(t)); err != nil {
		t.Fatal(err)
	}
	vertical := "0 1 0\n0 1 0\n0 1 0"
	horizontal := "0 0 0\n1 1 1\n0 0 0"
	expected := vertical + "\n\n" + horizontal + "\n\n" + vertical + "\n\n"
	if w.String() != expected {
		t.Errorf("got %q, expected %q", w.String(), expected)
	}
}

func TestPrintAllStopsDuringPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &cancelWriter{n: 1, cancel: cancel}

	b := blinker(t)
	done := make(chan error, 1)
	go func() { done <- NewPrintAllAnimator(time.Hour, w).Animate(ctx, b) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("the animator didn't stop on cancel")
	}
	if strings.Count(w.String(), "\n\n") != 1 {
		t.Errorf("expected exactly one frame, got %q", w.String())
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrintAllWriteError(t *testing.T) {
	if err := NewPrintAllAnimator(0, errWriter{}).Animate(context.Background(), blinker(t)); err == nil {
		t.Error("expected the write error")
	}
}

//fakeSession records the screen and serves the keys from the list, an empty list means no key pressed
type fakeSession struct {
	screen    map[int]string
	keys      []Key
	refreshes int
	closed    bool
	failOn    int
}

func newFakeSession(keys ...Key) *fakeSession {
	return &fakeSession{screen: map[int]string{}, keys: keys}
}

func (s *fakeSession) DrawText(row int, col int, text string) {
	s.screen[row] = text
}

func (s *fakeSession) Refresh() error {
	s.refreshes++
	if s.failOn != 0 && s.refreshes == s.failOn {
		return errors.New("refresh failed")
	}
	return nil
}

func (s *fakeSession) PollKey(time.Duration) (Key, bool) {
	if len(s.keys) == 0 {
		return 0, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, k != 0
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

func (s *fakeSession) opener() SessionOpener {
	return func() (TerminalSession, error) { return s, nil }
}

func TestCursesQuit(t *testing.T) {
	s := newFakeSession(0, 'x', 'q')
	b := blinker(t)
	if err := NewCursesAnimator(s.opener()).Animate(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	if !s.closed {
		t.Error("the session is not closed")
	}
	if s.refreshes != 3 {
		t.Errorf("got %v frames, expected 3", s.refreshes)
	}
	if s.screen[0] != "Game Of Life" || s.screen[3] != "Iteration 2" {
		t.Errorf("unexpected header %q %q", s.screen[0], s.screen[3])
	}
	//two steps were done before 'q', the blinker is vertical again
	if !b.Equal(blinker(t)) {
		t.Errorf("got %v", b.LiveCells())
	}
	for i, row := range []string{"0 1 0", "0 1 0", "0 1 0"} {
		if s.screen[boardRow+i] != row {
			t.Errorf("row %v: got %q, expected %q", i, s.screen[boardRow+i], row)
		}
	}
}

func TestCursesCtrlC(t *testing.T) {
	s := newFakeSession(keyCtrlC)
	if err := NewCursesAnimator(s.opener()).Animate(context.Background(), blinker(t)); err != nil {
		t.Fatal(err)
	}
	if !s.closed || s.refreshes != 1 {
		t.Errorf("closed=%v frames=%v", s.closed, s.refreshes)
	}
}

func TestCursesClosesOnError(t *testing.T) {
	s := newFakeSession()
	s.failOn = 2
	if err := NewCursesAnimator(s.opener()).Animate(context.Background(), blinker(t)); err == nil {
		t.Fatal("expected the refresh error")
	}
	if !s.closed {
		t.Error("the session is not closed")
	}
}

func TestCursesClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newFakeSession()
	if err := NewCursesAnimator(s.opener()).Animate(ctx, blinker(t)); err != nil {
		t.Fatal(err)
	}
	if !s.closed || s.refreshes != 0 {
		t.Errorf("closed=%v frames=%v", s.closed, s.refreshes)
	}
}

func TestCursesOpenError(t *testing.T) {
	open := func() (TerminalSession, error) { return nil, errors.New("not a terminal") }
	if err := NewCursesAnimator(open).Animate(context.Background(), blinker(t)); err == nil {
		t.Fatal("expected the open error")
	}
}
